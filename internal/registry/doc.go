// Package registry provides the central "glue" for the puzzle system.
//
// The Registry stores mappings between the solver names used in manifests
// (e.g., "guard_patrol") and the compiled Go functions that solve them.
// Puzzle modules add themselves through the Module interface.
//
// During application startup the loaded manifests are validated against the
// registry, so a manifest naming an unknown solver fails before any puzzle
// runs.
package registry

// Package yaml_adapter provides the YAML implementation of the config.Loader
// interface, for manifests written as `*.yaml` or `*.yml` files with a
// top-level `puzzles` list.
package yaml_adapter

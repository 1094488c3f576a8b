// Package executor runs the puzzles of a loaded manifest against their
// registered solvers and reports the answers.
package executor

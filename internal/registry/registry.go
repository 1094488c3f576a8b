package registry

import (
	"context"
	"sort"
)

// Module is the interface that all puzzle modules must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Answer is the pair of results every puzzle produces.
type Answer struct {
	Part1 string
	Part2 string
}

// Options carries run-time settings shared by all solvers.
type Options struct {
	// Workers bounds the goroutines a solver may use for its search.
	Workers int
}

// SolveFunc turns the non-blank lines of a puzzle input into an Answer.
type SolveFunc func(ctx context.Context, lines []string, opts Options) (Answer, error)

// Registry holds all the registered solvers for a single application instance.
type Registry struct {
	SolverRegistry map[string]*RegisteredSolver
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		SolverRegistry: make(map[string]*RegisteredSolver),
	}
}

// Solver returns the solver registered under name.
func (r *Registry) Solver(name string) (*RegisteredSolver, bool) {
	s, ok := r.SolverRegistry[name]
	return s, ok
}

// Names returns the registered solver names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.SolverRegistry))
	for name := range r.SolverRegistry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package registry

import (
	"fmt"
	"log/slog"
)

// RegisteredSolver holds the compiled Go parts of a puzzle solver.
type RegisteredSolver struct {
	Day         int
	Description string
	Fn          SolveFunc
}

// RegisterSolver registers a Go function under a manifest solver name.
func (r *Registry) RegisterSolver(name string, solver *RegisteredSolver) {
	if _, exists := r.SolverRegistry[name]; exists {
		panic(fmt.Sprintf("solver with name '%s' already registered", name))
	}
	if solver == nil || solver.Fn == nil {
		panic(fmt.Sprintf("solver '%s' has no function", name))
	}
	slog.Debug("Registering solver.", "name", name, "day", solver.Day)
	r.SolverRegistry[name] = solver
}

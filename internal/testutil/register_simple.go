package testutil

import "github.com/specialistvlad/labpatrol/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single solver.
type SimpleModule struct {
	Name   string
	Solver *registry.RegisteredSolver
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Name != "" && m.Solver != nil {
		r.RegisterSolver(m.Name, m.Solver)
	}
}

package testutil

import (
	"context"

	"github.com/specialistvlad/labpatrol/internal/registry"
)

// NoOpModule registers a "noop" solver that ignores its input and answers
// "0" to both parts. It is useful for tests about loading and output
// rather than solving.
type NoOpModule struct{}

// Register registers the "noop" solver.
func (m *NoOpModule) Register(r *registry.Registry) {
	r.RegisterSolver("noop", &registry.RegisteredSolver{
		Day:         0,
		Description: "Answers zero.",
		Fn: func(ctx context.Context, lines []string, opts registry.Options) (registry.Answer, error) {
			return registry.Answer{Part1: "0", Part2: "0"}, nil
		},
	})
}

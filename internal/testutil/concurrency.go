package testutil

import (
	"context"
	"strconv"
	"sync"

	"github.com/specialistvlad/labpatrol/internal/registry"
)

// RecorderModule registers a "recorder" solver that records every call it
// receives and answers with the line count and the worker count.
type RecorderModule struct {
	mu    sync.Mutex
	calls []Call
}

// Register registers the "recorder" solver.
func (m *RecorderModule) Register(r *registry.Registry) {
	r.RegisterSolver("recorder", &registry.RegisteredSolver{
		Day:         99,
		Description: "Records its calls.",
		Fn: func(ctx context.Context, lines []string, opts registry.Options) (registry.Answer, error) {
			m.mu.Lock()
			m.calls = append(m.calls, Call{Lines: append([]string(nil), lines...), Workers: opts.Workers})
			m.mu.Unlock()
			return registry.Answer{Part1: strconv.Itoa(len(lines)), Part2: strconv.Itoa(opts.Workers)}, nil
		},
	})
}

// Calls returns a copy of the recorded calls, in call order.
func (m *RecorderModule) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Call(nil), m.calls...)
}

// Package guard_patrol solves the lab guard puzzle: how many cells the guard
// covers before leaving the map, and how many single new obstructions would
// trap it in a loop instead.
package guard_patrol

import (
	"context"
	"fmt"
	"strconv"

	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/lab"
	"github.com/specialistvlad/labpatrol/internal/patrol"
	"github.com/specialistvlad/labpatrol/internal/registry"
)

// Name is the solver name used in manifests.
const Name = "guard_patrol"

// Day is the puzzle day this solver answers.
const Day = 6

// Module implements the registry.Module interface for this package.
type Module struct{}

// Solve parses the lab, walks the guard once on the untouched map, then
// searches the walked cells for loop-inducing obstructions.
func Solve(ctx context.Context, lines []string, opts registry.Options) (registry.Answer, error) {
	logger := ctxlog.FromContext(ctx)

	grid, err := lab.Parse(lines)
	if err != nil {
		return registry.Answer{}, err
	}
	logger.Debug("Lab parsed.", "rows", grid.Rows(), "cols", grid.Cols(), "start", grid.Start().Position.String(), "facing", grid.Start().Facing.String())

	baseline, err := patrol.Simulate(grid)
	if err != nil {
		return registry.Answer{}, fmt.Errorf("baseline patrol: %w", err)
	}
	if baseline.Outcome != patrol.Exited {
		return registry.Answer{}, &lab.MalformedInputError{Reason: "guard never leaves the unobstructed map"}
	}
	logger.Debug("Baseline patrol finished.", "visited", baseline.DistinctVisited, "steps", baseline.Steps)

	loops, err := patrol.CountLoopObstructions(ctx, grid, baseline.Visited, patrol.SearchOptions{Workers: opts.Workers})
	if err != nil {
		return registry.Answer{}, fmt.Errorf("obstruction search: %w", err)
	}

	return registry.Answer{
		Part1: strconv.Itoa(baseline.DistinctVisited),
		Part2: strconv.Itoa(loops),
	}, nil
}

// Register registers the solver with the engine.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterSolver(Name, &registry.RegisteredSolver{
		Day:         Day,
		Description: "Guard patrol: distinct cells visited and loop-inducing obstructions.",
		Fn:          Solve,
	})
}

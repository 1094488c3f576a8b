package patrol

import (
	"context"
	"fmt"

	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/lab"
	"golang.org/x/sync/errgroup"
)

// SearchOptions tunes an obstruction search.
type SearchOptions struct {
	// Workers is the number of concurrent simulations. Values below 2 run
	// the search on the calling goroutine.
	Workers int
	// Limit, when positive, evaluates only the first Limit candidates.
	Limit int
}

// Candidates returns the cells worth obstructing: every visited position
// except the guard's start, in first-visit order.
func Candidates(grid *lab.Grid, visited *VisitedSet) []lab.Position {
	start := grid.Start().Position
	out := make([]lab.Position, 0, visited.Len())
	for _, p := range visited.order {
		if p != start {
			out = append(out, p)
		}
	}
	return out
}

// CountLoopObstructions returns how many single-obstacle placements trap the
// guard in a loop. visited must come from an unobstructed run on grid.
func CountLoopObstructions(ctx context.Context, grid *lab.Grid, visited *VisitedSet, opts SearchOptions) (int, error) {
	found, err := FindLoopObstructions(ctx, grid, visited, opts)
	if err != nil {
		return 0, err
	}
	return len(found), nil
}

// FindLoopObstructions simulates the guard once per candidate obstruction,
// each time on a private copy of grid, and returns the positions whose
// obstacle makes the guard loop. Results are in first-visit order whatever
// the worker count.
func FindLoopObstructions(ctx context.Context, grid *lab.Grid, visited *VisitedSet, opts SearchOptions) ([]lab.Position, error) {
	logger := ctxlog.FromContext(ctx)

	candidates := Candidates(grid, visited)
	if opts.Limit > 0 && opts.Limit < len(candidates) {
		candidates = candidates[:opts.Limit]
	}
	workers := opts.Workers
	if workers > len(candidates) {
		workers = len(candidates)
	}
	logger.Debug("Obstruction search started.", "candidates", len(candidates), "workers", workers)

	loops := make([]bool, len(candidates))
	var err error
	if workers < 2 {
		err = searchSequential(ctx, grid, candidates, loops)
	} else {
		err = searchParallel(ctx, grid, candidates, loops, workers)
	}
	if err != nil {
		logger.Debug("Obstruction search aborted.", "error", err)
		return nil, err
	}

	var found []lab.Position
	for i, loop := range loops {
		if loop {
			found = append(found, candidates[i])
		}
	}
	logger.Debug("Obstruction search finished.", "loops", len(found))
	return found, nil
}

func searchSequential(ctx context.Context, grid *lab.Grid, candidates []lab.Position, loops []bool) error {
	for i, p := range candidates {
		if err := ctx.Err(); err != nil {
			return err
		}
		loop, err := tryObstruction(grid, p)
		if err != nil {
			return err
		}
		loops[i] = loop
	}
	return nil
}

// searchParallel feeds candidate indexes to a fixed pool of workers. Each
// worker writes only the loops slots of the indexes it received.
func searchParallel(ctx context.Context, grid *lab.Grid, candidates []lab.Position, loops []bool, workers int) error {
	logger := ctxlog.FromContext(ctx)
	g, gctx := errgroup.WithContext(ctx)
	jobs := make(chan int)

	g.Go(func() error {
		defer close(jobs)
		for i := range candidates {
			select {
			case jobs <- i:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	for id := 0; id < workers; id++ {
		g.Go(func() error {
			for i := range jobs {
				if err := gctx.Err(); err != nil {
					return err
				}
				loop, err := tryObstruction(grid, candidates[i])
				if err != nil {
					return err
				}
				loops[i] = loop
			}
			logger.Debug("Search worker finished.", "workerID", id)
			return nil
		})
	}

	return g.Wait()
}

func tryObstruction(grid *lab.Grid, p lab.Position) (bool, error) {
	res, err := Simulate(grid.WithObstacle(p))
	if err != nil {
		return false, fmt.Errorf("obstruction at %v: %w", p, err)
	}
	return res.Outcome == Looping, nil
}

package patrol

import "github.com/specialistvlad/labpatrol/internal/lab"

// Result summarizes one simulation run.
type Result struct {
	// DistinctVisited is the number of distinct cells the guard stood on,
	// start included.
	DistinctVisited int
	Outcome         Outcome
	// Steps is the number of moves made.
	Steps   int
	Visited *VisitedSet
}

// MaxSteps is the move ceiling for a run on grid: twice the size of the
// (position, facing) state space. A repeated state is always detected well
// before it, so reaching it only guards against a broken recurrence check.
func MaxSteps(grid *lab.Grid) int {
	return grid.Size() * lab.NumFacings * 2
}

// Simulate walks a fresh guard across grid until it exits or loops.
func Simulate(grid *lab.Grid) (Result, error) {
	w := NewWalker(grid)
	limit := MaxSteps(grid)

	for {
		outcome, err := w.Step()
		if err != nil {
			return Result{}, err
		}
		if outcome == Running && w.steps > limit {
			w.outcome = Looping
		}
		if w.outcome != Running {
			return Result{
				DistinctVisited: w.visited.Len(),
				Outcome:         w.outcome,
				Steps:           w.steps,
				Visited:         w.visited,
			}, nil
		}
	}
}

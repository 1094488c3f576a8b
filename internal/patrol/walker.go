package patrol

import (
	"fmt"

	"github.com/specialistvlad/labpatrol/internal/lab"
)

// Outcome is the state of a simulation run.
type Outcome int

const (
	// Running means the guard is still on the map and no state has repeated.
	Running Outcome = iota
	// Exited means the guard's next cell was off the map.
	Exited
	// Looping means a (position, facing) state occurred a second time.
	Looping
)

func (o Outcome) String() string {
	switch o {
	case Running:
		return "running"
	case Exited:
		return "exited"
	case Looping:
		return "looping"
	}
	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Walker advances one guard across one grid, a step at a time. A Walker is
// single-use and not safe for concurrent use.
type Walker struct {
	grid    *lab.Grid
	guard   lab.Guard
	visited *VisitedSet
	states  *stateCounter
	steps   int
	outcome Outcome
	err     error
}

// NewWalker places a fresh guard at the grid's starting marker. The start
// position counts as visited and the start state as observed.
func NewWalker(grid *lab.Grid) *Walker {
	w := &Walker{
		grid:    grid,
		guard:   grid.Start(),
		visited: NewVisitedSet(grid),
		states:  newStateCounter(grid),
	}
	w.visited.Add(w.guard.Position)
	w.states.observe(w.guard)
	return w
}

// Guard returns the current guard state.
func (w *Walker) Guard() lab.Guard { return w.guard }

// Steps returns the number of moves made so far. Turns are not moves.
func (w *Walker) Steps() int { return w.steps }

// Outcome returns the current state.
func (w *Walker) Outcome() Outcome { return w.outcome }

// Visited returns the live visited set.
func (w *Walker) Visited() *VisitedSet { return w.visited }

// Step performs one transition. The guard turns clockwise, without moving,
// while the cell ahead is an obstacle; four blocked facings is a
// *GuardEnclosedError. If the cell ahead is off the map the walker moves to
// Exited. Otherwise the guard moves and the walker reports Looping if the
// new state was already observed. Once terminal or failed, Step keeps
// returning the same result.
func (w *Walker) Step() (Outcome, error) {
	if w.err != nil || w.outcome != Running {
		return w.outcome, w.err
	}

	guard := w.guard
	ahead := guard.Ahead()
	for turns := 1; ; turns++ {
		if !w.grid.InBounds(ahead) {
			w.guard = guard
			w.outcome = Exited
			return w.outcome, nil
		}
		if w.grid.CellAt(ahead) == lab.Empty {
			break
		}
		if turns == lab.NumFacings {
			w.err = &GuardEnclosedError{Position: guard.Position}
			return w.outcome, w.err
		}
		guard = guard.TurnRight()
		ahead = guard.Ahead()
	}

	guard.Position = ahead
	w.guard = guard
	w.steps++
	w.visited.Add(guard.Position)
	if w.states.observe(guard) > 1 {
		w.outcome = Looping
	}
	return w.outcome, nil
}

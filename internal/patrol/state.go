package patrol

import "github.com/specialistvlad/labpatrol/internal/lab"

// stateCounter counts occurrences of (position, facing) states for a single
// run, one slot per state in a flat buffer.
type stateCounter struct {
	grid   *lab.Grid
	counts []uint8
}

func newStateCounter(grid *lab.Grid) *stateCounter {
	return &stateCounter{
		grid:   grid,
		counts: make([]uint8, grid.Size()*lab.NumFacings),
	}
}

// observe records g and returns how many times its state has now been seen.
// Counts saturate; only "more than once" matters to callers.
func (s *stateCounter) observe(g lab.Guard) int {
	i := s.grid.Index(g.Position)*lab.NumFacings + int(g.Facing)
	if s.counts[i] < 255 {
		s.counts[i]++
	}
	return int(s.counts[i])
}

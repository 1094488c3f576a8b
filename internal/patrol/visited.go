package patrol

import "github.com/specialistvlad/labpatrol/internal/lab"

// VisitedSet is the set of distinct positions touched by the guard during one
// run. Membership is a per-cell bitmap; Positions keeps first-visit order.
type VisitedSet struct {
	grid  *lab.Grid
	seen  []bool
	order []lab.Position
}

// NewVisitedSet returns an empty set sized for grid.
func NewVisitedSet(grid *lab.Grid) *VisitedSet {
	return &VisitedSet{
		grid: grid,
		seen: make([]bool, grid.Size()),
	}
}

// Add records p and reports whether it was new. p must be in bounds.
func (v *VisitedSet) Add(p lab.Position) bool {
	i := v.grid.Index(p)
	if v.seen[i] {
		return false
	}
	v.seen[i] = true
	v.order = append(v.order, p)
	return true
}

// Contains reports whether p was visited. Out-of-bounds positions never are.
func (v *VisitedSet) Contains(p lab.Position) bool {
	if !v.grid.InBounds(p) {
		return false
	}
	return v.seen[v.grid.Index(p)]
}

// Len returns the number of distinct positions.
func (v *VisitedSet) Len() int {
	return len(v.order)
}

// Positions returns the visited positions in first-visit order. The slice
// is owned by the caller.
func (v *VisitedSet) Positions() []lab.Position {
	out := make([]lab.Position, len(v.order))
	copy(out, v.order)
	return out
}

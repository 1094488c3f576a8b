package lab

import "fmt"

// Position is a zero-indexed cell coordinate. Row grows downward.
type Position struct {
	Row int
	Col int
}

// Add returns the component-wise sum of p and d.
func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

// Step returns the position one cell ahead of p in direction f.
func (p Position) Step(f Facing) Position {
	return p.Add(f.Vector())
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

package lab

// Guard is the mutable part of a patrol: where the guard stands and which
// way it faces. A Guard is a plain value; copying it is how simulations get
// a fresh one.
type Guard struct {
	Position Position
	Facing   Facing
}

// TurnRight returns the guard rotated a quarter turn clockwise in place.
func (g Guard) TurnRight() Guard {
	g.Facing = g.Facing.TurnRight()
	return g
}

// Ahead returns the cell the guard would enter with its next move.
func (g Guard) Ahead() Position {
	return g.Position.Step(g.Facing)
}

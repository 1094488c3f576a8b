package lab

import "fmt"

// Facing is one of the four cardinal directions a guard can face.
// The constants are declared in clockwise order.
type Facing uint8

const (
	Up Facing = iota
	Right
	Down
	Left
)

// NumFacings is the size of the Facing domain.
const NumFacings = 4

var facingVectors = [NumFacings]Position{
	Up:    {Row: -1, Col: 0},
	Right: {Row: 0, Col: 1},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
}

var facingMarkers = [NumFacings]byte{
	Up:    '^',
	Right: '>',
	Down:  'v',
	Left:  '<',
}

// TurnRight returns the facing after a quarter turn clockwise.
func (f Facing) TurnRight() Facing {
	return (f + 1) % NumFacings
}

// Vector returns the one-step offset for the facing.
func (f Facing) Vector() Position {
	return facingVectors[f]
}

// Marker returns the puzzle-text symbol for a guard with this facing.
func (f Facing) Marker() byte {
	return facingMarkers[f]
}

func (f Facing) String() string {
	switch f {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Facing(%d)", uint8(f))
}

// facingFromMarker maps a guard symbol to its facing.
func facingFromMarker(b byte) (Facing, bool) {
	for f, m := range facingMarkers {
		if m == b {
			return Facing(f), true
		}
	}
	return 0, false
}

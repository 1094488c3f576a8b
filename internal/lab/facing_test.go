package lab

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFacing_TurnRightCycle(t *testing.T) {
	t.Parallel()

	require.Equal(t, Right, Up.TurnRight())
	require.Equal(t, Down, Right.TurnRight())
	require.Equal(t, Left, Down.TurnRight())
	require.Equal(t, Up, Left.TurnRight())
}

func TestFacing_Vectors(t *testing.T) {
	t.Parallel()

	origin := Position{Row: 5, Col: 5}
	require.Equal(t, Position{Row: 4, Col: 5}, origin.Step(Up))
	require.Equal(t, Position{Row: 5, Col: 6}, origin.Step(Right))
	require.Equal(t, Position{Row: 6, Col: 5}, origin.Step(Down))
	require.Equal(t, Position{Row: 5, Col: 4}, origin.Step(Left))
}

func TestFacing_Markers(t *testing.T) {
	t.Parallel()

	for f := Facing(0); f < NumFacings; f++ {
		got, ok := facingFromMarker(f.Marker())
		require.True(t, ok)
		require.Equal(t, f, got)
	}
	_, ok := facingFromMarker('#')
	require.False(t, ok)
	require.Equal(t, "left", Left.String())
	require.Equal(t, "Facing(9)", Facing(9).String())
}

func TestGuard_TurnRightKeepsPosition(t *testing.T) {
	t.Parallel()

	g := Guard{Position: Position{Row: 2, Col: 3}, Facing: Left}
	turned := g.TurnRight()

	require.Equal(t, Up, turned.Facing)
	require.Equal(t, g.Position, turned.Position)
	require.Equal(t, Position{Row: 1, Col: 3}, turned.Ahead())
	require.Equal(t, Left, g.Facing, "TurnRight returns a new value")
}

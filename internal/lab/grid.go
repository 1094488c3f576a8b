package lab

import (
	"fmt"
	"strings"
)

// Cell is a terrain kind.
type Cell uint8

const (
	Empty Cell = iota
	Obstacle
)

const (
	emptySymbol    = '.'
	obstacleSymbol = '#'
)

func (c Cell) String() string {
	switch c {
	case Empty:
		return "empty"
	case Obstacle:
		return "obstacle"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Grid is the lab floor: rows*cols terrain cells stored row-major in one
// flat buffer, plus the guard's starting state.
type Grid struct {
	rows  int
	cols  int
	cells []Cell
	start Guard
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the guard state derived from the input marker.
func (g *Grid) Start() Guard { return g.start }

// Size returns rows*cols.
func (g *Grid) Size() int { return g.rows * g.cols }

// InBounds reports whether p lies on the grid. A guard whose next cell is
// out of bounds leaves the map.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Index returns the row-major offset of p. p must be in bounds.
func (g *Grid) Index(p Position) int {
	return p.Row*g.cols + p.Col
}

// CellAt returns the terrain at p. It panics if p is out of bounds.
func (g *Grid) CellAt(p Position) Cell {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("lab: position %v outside %dx%d grid", p, g.rows, g.cols))
	}
	return g.cells[g.Index(p)]
}

// WithObstacle returns a copy of g with an obstacle at p. The receiver is
// never modified and the copy shares no memory with it. It panics if p is
// out of bounds.
func (g *Grid) WithObstacle(p Position) *Grid {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("lab: obstacle position %v outside %dx%d grid", p, g.rows, g.cols))
	}
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	cells[g.Index(p)] = Obstacle

	return &Grid{
		rows:  g.rows,
		cols:  g.cols,
		cells: cells,
		start: g.start,
	}
}

// String renders the grid back to puzzle text, guard marker included.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p := Position{Row: r, Col: c}
			switch {
			case p == g.start.Position:
				sb.WriteByte(g.start.Facing.Marker())
			case g.cells[g.Index(p)] == Obstacle:
				sb.WriteByte(obstacleSymbol)
			default:
				sb.WriteByte(emptySymbol)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

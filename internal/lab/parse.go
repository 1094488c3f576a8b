package lab

import (
	"fmt"
	"unicode/utf8"
)

// Parse builds a Grid from puzzle text lines. Every line must have the same
// non-zero length and use only '.', '#' and exactly one guard marker
// ('^', '>', 'v' or '<'). Failures are reported as *MalformedInputError.
func Parse(lines []string) (*Grid, error) {
	if len(lines) == 0 {
		return nil, &MalformedInputError{Reason: "no grid lines"}
	}

	rows := len(lines)
	cols := len(lines[0])
	if cols == 0 {
		return nil, &MalformedInputError{Line: 1, Reason: "empty grid line"}
	}

	g := &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Cell, rows*cols),
	}

	guards := 0
	for r, line := range lines {
		if err := checkASCII(line, r); err != nil {
			return nil, err
		}
		if len(line) != cols {
			return nil, &MalformedInputError{
				Line:   r + 1,
				Reason: fmt.Sprintf("non-rectangular grid: line has %d columns, expected %d", len(line), cols),
			}
		}
		for c := 0; c < cols; c++ {
			ch := line[c]
			switch ch {
			case emptySymbol:
				// zero value
			case obstacleSymbol:
				g.cells[r*cols+c] = Obstacle
			default:
				facing, ok := facingFromMarker(ch)
				if !ok {
					return nil, &MalformedInputError{
						Line:   r + 1,
						Column: c + 1,
						Reason: fmt.Sprintf("unrecognized character %q", ch),
					}
				}
				guards++
				if guards > 1 {
					return nil, &MalformedInputError{
						Line:   r + 1,
						Column: c + 1,
						Reason: "more than one guard marker",
					}
				}
				g.start = Guard{Position: Position{Row: r, Col: c}, Facing: facing}
			}
		}
	}

	if guards == 0 {
		return nil, &MalformedInputError{Reason: "no guard marker"}
	}
	return g, nil
}

// checkASCII rejects the first non-ASCII rune of line so that columns stay
// byte offsets. Columns in the error count runes.
func checkASCII(line string, row int) error {
	col := 0
	for _, ch := range line {
		col++
		if ch >= utf8.RuneSelf {
			return &MalformedInputError{
				Line:   row + 1,
				Column: col,
				Reason: fmt.Sprintf("non-ASCII character %q", ch),
			}
		}
	}
	return nil
}

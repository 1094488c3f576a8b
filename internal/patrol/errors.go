package patrol

import (
	"fmt"

	"github.com/specialistvlad/labpatrol/internal/lab"
)

// GuardEnclosedError reports a guard with obstacles on all four sides. It
// cannot happen on well-formed puzzle input and is never treated as a loop.
type GuardEnclosedError struct {
	Position lab.Position
}

// Error implements the error interface for GuardEnclosedError.
func (e *GuardEnclosedError) Error() string {
	return fmt.Sprintf("guard enclosed at %v: all four directions are blocked", e.Position)
}

package lab

import "fmt"

// MalformedInputError reports puzzle text that cannot describe a valid lab.
// Line and Column are 1-based and zero when the problem is not tied to a
// single character.
type MalformedInputError struct {
	Line   int
	Column int
	Reason string
}

// Error implements the error interface for MalformedInputError.
func (e *MalformedInputError) Error() string {
	if e.Line > 0 && e.Column > 0 {
		return fmt.Sprintf("malformed input at line %d, column %d: %s", e.Line, e.Column, e.Reason)
	}
	if e.Line > 0 {
		return fmt.Sprintf("malformed input at line %d: %s", e.Line, e.Reason)
	}
	return "malformed input: " + e.Reason
}

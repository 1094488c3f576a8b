package testutil

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// AssertPuzzleSolved checks the log output within a HarnessResult to confirm
// that a specific puzzle was solved.
func AssertPuzzleSolved(t *testing.T, result *HarnessResult, puzzle string) {
	t.Helper()

	for _, line := range strings.Split(result.LogOutput, "\n") {
		if strings.Contains(line, "Puzzle solved.") && strings.Contains(line, fmt.Sprintf("puzzle=%s ", puzzle)) {
			return
		}
	}
	require.Fail(t, fmt.Sprintf("expected log output for puzzle '%s' was not found in logs", puzzle))
}

// AssertAnswer checks that the printed output contains the answer block
// for the given header, e.g. "Day 6".
func AssertAnswer(t *testing.T, result *HarnessResult, header, part1, part2 string) {
	t.Helper()

	block := fmt.Sprintf("%s:\nPart 1: %s\nPart 2: %s\n\n", header, part1, part2)
	require.Contains(t, result.Output, block)
}

package integration_tests

import (
	"errors"
	"testing"

	"github.com/specialistvlad/labpatrol/internal/app"
	"github.com/specialistvlad/labpatrol/internal/lab"
	"github.com/specialistvlad/labpatrol/internal/patrol"
	"github.com/specialistvlad/labpatrol/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestErrors_MalformedInput validates that bad lab files fail the run with
// a MalformedInputError and print nothing.
func TestErrors_MalformedInput(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    string
		contains string
	}{
		{name: "unknown character", input: "..\n.X\n^.\n", contains: "line 2, column 2"},
		{name: "no guard", input: "...\n.#.\n", contains: "no guard"},
		{name: "two guards", input: "^.\n.>\n", contains: "line 2, column 2"},
		{name: "ragged rows", input: "...\n.^\n", contains: "non-rectangular"},
		{name: "looping baseline", input: ".#..\n...#\n#^..\n..#.\n", contains: "never leaves"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Act ---
			result := testutil.RunIntegrationTest(t, map[string]string{"lab.txt": tc.input}, app.Config{InputPath: "lab.txt"})

			// --- Assert ---
			require.Error(t, result.Err)
			var malformed *lab.MalformedInputError
			require.True(t, errors.As(result.Err, &malformed), "got %T: %v", result.Err, result.Err)
			require.Contains(t, result.Err.Error(), tc.contains)
			require.Empty(t, result.Output)
		})
	}
}

// TestErrors_GuardEnclosed validates that a guard boxed in on all four
// sides aborts the run with a GuardEnclosedError.
func TestErrors_GuardEnclosed(t *testing.T) {
	t.Parallel()

	// --- Act ---
	result := testutil.RunIntegrationTest(t, map[string]string{"lab.txt": ".#.\n#^#\n.#.\n"}, app.Config{InputPath: "lab.txt"})

	// --- Assert ---
	require.Error(t, result.Err)
	var enclosed *patrol.GuardEnclosedError
	require.True(t, errors.As(result.Err, &enclosed))
	require.Equal(t, lab.Position{Row: 1, Col: 1}, enclosed.Position)
}

// TestErrors_MissingInputFile validates that a manifest pointing at a
// missing input fails during execution.
func TestErrors_MissingInputFile(t *testing.T) {
	t.Parallel()

	manifest := `
		puzzle "day6" {
			input = "nowhere.txt"
			solver = "guard_patrol"
		}
	`

	result := testutil.RunHCLManifestTest(t, manifest, nil)

	require.Error(t, result.Err)
	require.Contains(t, result.Err.Error(), "puzzle 'day6'")
	require.Contains(t, result.Err.Error(), "failed to open input")
}

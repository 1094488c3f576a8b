package integration_tests

import (
	"testing"

	"github.com/specialistvlad/labpatrol/internal/app"
	"github.com/specialistvlad/labpatrol/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestSample_FromHCLManifest validates the worked example end to end:
// manifest loading, solving, expectation checks and printed output.
func TestSample_FromHCLManifest(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	manifest := `
		puzzle "day6" {
			solver = "guard_patrol"
			input  = "inputs/sample.txt"
			expect {
				part1 = 41
				part2 = 6
			}
		}
	`

	// --- Act ---
	result := testutil.RunHCLManifestTest(t, manifest, map[string]string{
		"inputs/sample.txt": testutil.SampleInput,
	})

	// --- Assert ---
	require.NoError(t, result.Err)
	require.Equal(t, "Day 6:\nPart 1: 41\nPart 2: 6\n\n", result.Output)
	testutil.AssertPuzzleSolved(t, result, "day6")
	require.Len(t, result.Results, 1)
	require.Equal(t, 6, result.Results[0].Day)
}

// TestSample_SingleInputMode runs the same lab without any manifest.
func TestSample_SingleInputMode(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	files := map[string]string{"day6.txt": testutil.SampleInput}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{InputPath: "day6.txt", Workers: 4})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertAnswer(t, result, "Day 6", "41", "6")
}

// TestSample_WorkerCountsAgree verifies that the answer does not depend on
// how many search workers are used.
func TestSample_WorkerCountsAgree(t *testing.T) {
	t.Parallel()

	for _, workers := range []int{1, 2, 3, 16} {
		files := map[string]string{"day6.txt": testutil.SampleInput}

		result := testutil.RunIntegrationTest(t, files, app.Config{InputPath: "day6.txt", Workers: workers})

		require.NoError(t, result.Err, "workers=%d", workers)
		testutil.AssertAnswer(t, result, "Day 6", "41", "6")
	}
}

// TestSample_CRLFAndBlankLines verifies that Windows line endings and
// blank lines in the input file are ignored.
func TestSample_CRLFAndBlankLines(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	input := "\r\n....#.....\r\n.........#\r\n..........\r\n..#.......\r\n.......#..\r\n" +
		"..........\r\n.#..^.....\r\n........#.\r\n#.........\r\n......#...\r\n\r\n"
	files := map[string]string{"day6.txt": input}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{InputPath: "day6.txt"})

	// --- Assert ---
	require.NoError(t, result.Err)
	testutil.AssertAnswer(t, result, "Day 6", "41", "6")
}

package integration_tests

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/specialistvlad/labpatrol/internal/app"
	"github.com/specialistvlad/labpatrol/internal/testutil"
	"github.com/stretchr/testify/require"
)

// TestLogging_FileFanOut validates that --log-file receives JSON records
// while the console keeps its own format.
func TestLogging_FileFanOut(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	logFile := filepath.Join(t.TempDir(), "run.log")
	files := map[string]string{"day6.txt": testutil.SampleInput}

	// --- Act ---
	result := testutil.RunIntegrationTest(t, files, app.Config{InputPath: "day6.txt", LogFile: logFile})
	require.NoError(t, result.Err)
	require.NoError(t, result.App.Close())

	// --- Assert ---
	require.Contains(t, result.LogOutput, "msg=\"Puzzle solved.\"")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	require.Contains(t, string(data), `"msg":"Puzzle solved."`)
	require.Contains(t, string(data), `"part1":"41"`)
}

// TestLogging_JSONConsole validates the json console format.
func TestLogging_JSONConsole(t *testing.T) {
	t.Parallel()

	files := map[string]string{"day6.txt": testutil.SampleInput}

	result := testutil.RunIntegrationTest(t, files, app.Config{InputPath: "day6.txt", LogFormat: "json", LogLevel: "info"})

	require.NoError(t, result.Err)
	for _, line := range strings.Split(strings.TrimSpace(result.LogOutput), "\n") {
		require.True(t, strings.HasPrefix(line, "{"), "not a JSON record: %s", line)
	}
	require.NotContains(t, result.LogOutput, `"level":"DEBUG"`)
}

// TestListSolvers validates the solver listing.
func TestListSolvers(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	out := &bytes.Buffer{}
	cfg, err := app.NewConfig(app.Config{ListSolvers: true, LogFormat: "text", LogLevel: "error", Workers: 1})
	require.NoError(t, err)
	a, err := app.NewApp(out, &bytes.Buffer{}, cfg, app.DefaultLoader())
	require.NoError(t, err)

	// --- Act ---
	require.NoError(t, a.ListSolvers())

	// --- Assert ---
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	require.True(t, strings.HasPrefix(lines[0], "SOLVER"))
	require.True(t, strings.HasPrefix(lines[1], "guard_patrol"))
	require.Contains(t, lines[1], " 6 ")
}

package testutil

import (
	"testing"

	"github.com/specialistvlad/labpatrol/internal/app"
)

// SampleInput is the worked example lab: 41 cells visited, 6 loop
// obstructions.
const SampleInput = `....#.....
.........#
..........
..#.......
.......#..
..........
.#..^.....
........#.
#.........
......#...
`

// RunHCLManifestTest runs a single HCL manifest, written as main.hcl, next
// to the given input files.
func RunHCLManifestTest(t *testing.T, manifestHCL string, inputs map[string]string) *HarnessResult {
	t.Helper()

	files := map[string]string{"main.hcl": manifestHCL}
	for name, content := range inputs {
		files[name] = content
	}
	return RunIntegrationTest(t, files, app.Config{})
}

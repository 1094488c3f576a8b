package yaml_adapter

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func ptr(s string) *string { return &s }

func TestLoader_Load_Success(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := writeManifest(t, dir, "puzzles.yaml", `
puzzles:
  - name: day6
    solver: guard_patrol
    input: inputs/day6.txt
    expect:
      part1: "41"
      part2: "6"
  - name: guard_patrol
    input: /abs/real.txt
`)
	writeManifest(t, dir, "ignored.hcl", `puzzle "x" { input = "x.txt" }`)

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)

	want := []*config.Puzzle{
		{
			Name:   "day6",
			Solver: "guard_patrol",
			Input:  filepath.Join(dir, "inputs", "day6.txt"),
			Source: file,
			Expect: &config.Expectation{Part1: ptr("41"), Part2: ptr("6")},
		},
		{
			Name:   "guard_patrol",
			Solver: "guard_patrol",
			Input:  "/abs/real.txt",
			Source: file,
		},
	}
	if diff := cmp.Diff(want, model.Puzzles); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Load_YmlAndEmptyFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.yml", "puzzles:\n  - name: a\n    input: a.txt\n")
	writeManifest(t, dir, "b.yaml", "\n\n")

	model, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 1)
	require.Equal(t, "a", model.Puzzles[0].Solver)
}

func TestLoader_Load_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "unknown field", content: "puzzles:\n  - name: a\n    inptu: a.txt\n", wantErr: "field inptu not found"},
		{name: "missing name", content: "puzzles:\n  - input: a.txt\n", wantErr: "puzzle #1 has no name"},
		{name: "bad syntax", content: "puzzles: [\n", wantErr: "failed to decode YAML file"},
		{name: "duplicate", content: "puzzles:\n  - name: a\n  - name: a\n", wantErr: `puzzle "a" declared twice`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			writeManifest(t, dir, "m.yaml", tc.content)

			_, err := NewLoader().Load(context.Background(), dir)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestFindFilesByExtension(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "b.hcl"), "")
	writeFile(t, filepath.Join(root, "a.yaml"), "")
	writeFile(t, filepath.Join(root, "nested", "c.yml"), "")
	writeFile(t, filepath.Join(root, "notes.txt"), "")

	// --- Act ---
	got, err := FindFilesByExtension(root, ".yaml", ".yml")

	// --- Assert ---
	require.NoError(t, err)
	want := []string{
		filepath.Join(root, "a.yaml"),
		filepath.Join(root, "nested", "c.yml"),
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("files mismatch (-want +got):\n%s", diff)
	}
}

func TestFindFilesByExtension_SingleFileAndMissing(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	file := filepath.Join(root, "m.hcl")
	writeFile(t, file, "")

	got, err := FindFilesByExtension(file, ".hcl")
	require.NoError(t, err)
	require.Equal(t, []string{file}, got)

	got, err = FindFilesByExtension(file, ".yaml")
	require.NoError(t, err)
	require.Empty(t, got)

	got, err = FindFilesByExtension(filepath.Join(root, "missing"), ".hcl")
	require.NoError(t, err)
	require.Empty(t, got)

	require.Panics(t, func() { _, _ = FindFilesByExtension(root) })
}

func TestReadLines_DropsBlankLines(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "day6.txt")
	writeFile(t, path, "..#\r\n\n.^.\n   \n...\n\n")

	lines, err := ReadLines(path)
	require.NoError(t, err)
	require.Equal(t, []string{"..#", ".^.", "..."}, lines)
}

func TestReadLines_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := ReadLines(filepath.Join(t.TempDir(), "nope.txt"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

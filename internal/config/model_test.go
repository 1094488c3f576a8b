package config

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func puzzle(name, source string) *Puzzle {
	return &Puzzle{Name: name, Solver: "guard_patrol", Input: name + ".txt", Source: source}
}

func TestModel_AddRejectsDuplicates(t *testing.T) {
	t.Parallel()

	m := NewModel()
	require.NoError(t, m.Add(puzzle("day6", "a.hcl")))

	err := m.Add(puzzle("day6", "b.yaml"))
	require.Error(t, err)
	require.Contains(t, err.Error(), `puzzle "day6" declared twice (a.hcl and b.yaml)`)

	err = m.Add(&Puzzle{Source: "c.hcl"})
	require.ErrorContains(t, err, "has no name")
}

func TestModel_Filter(t *testing.T) {
	t.Parallel()

	m := NewModel()
	for _, n := range []string{"day6", "sample", "big"} {
		require.NoError(t, m.Add(puzzle(n, "m.hcl")))
	}

	all, err := m.Filter(nil)
	require.NoError(t, err)
	require.Same(t, m, all)

	some, err := m.Filter([]string{"big", "day6"})
	require.NoError(t, err)
	names := make([]string, 0, len(some.Puzzles))
	for _, p := range some.Puzzles {
		names = append(names, p.Name)
	}
	if diff := cmp.Diff([]string{"day6", "big"}, names); diff != "" {
		t.Errorf("filter kept wrong puzzles (-want +got):\n%s", diff)
	}

	_, err = m.Filter([]string{"day6", "zeta", "alpha"})
	require.EqualError(t, err, "unknown puzzle(s): alpha, zeta")
}

type stubLoader struct {
	model *Model
	err   error
}

func (s *stubLoader) Load(context.Context, ...string) (*Model, error) {
	return s.model, s.err
}

func TestMultiLoader_MergesInOrder(t *testing.T) {
	t.Parallel()

	first := NewModel()
	require.NoError(t, first.Add(puzzle("a", "a.hcl")))
	second := NewModel()
	require.NoError(t, second.Add(puzzle("b", "b.yaml")))

	model, err := NewMultiLoader(&stubLoader{model: first}, &stubLoader{model: second}).Load(context.Background(), "x")
	require.NoError(t, err)
	require.Len(t, model.Puzzles, 2)
	require.Equal(t, "a", model.Puzzles[0].Name)
	require.Equal(t, "b", model.Puzzles[1].Name)
}

func TestMultiLoader_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	_, err := NewMultiLoader(&stubLoader{err: boom}).Load(context.Background())
	require.ErrorIs(t, err, boom)

	dup := NewModel()
	require.NoError(t, dup.Add(puzzle("a", "a.hcl")))
	_, err = NewMultiLoader(&stubLoader{model: dup}, &stubLoader{model: dup}).Load(context.Background())
	require.ErrorContains(t, err, "failed to merge manifests")
}

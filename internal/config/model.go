package config

import (
	"fmt"
	"sort"
	"strings"
)

// Model is the unified, format-agnostic representation of every puzzle
// manifest the application loaded.
type Model struct {
	Puzzles []*Puzzle
}

// Puzzle is the format-agnostic representation of one `puzzle` entry.
type Puzzle struct {
	// Name identifies the puzzle in output and in the --only filter.
	Name string
	// Solver is the registry key of the solver that handles the input.
	Solver string
	// Input is the path of the puzzle text, already resolved against the
	// manifest's directory.
	Input string
	// Source is the manifest file the puzzle was declared in.
	Source string
	Expect *Expectation
}

// Expectation holds known answers to check results against. A nil part is
// not checked.
type Expectation struct {
	Part1 *string
	Part2 *string
}

// NewModel returns an empty model.
func NewModel() *Model {
	return &Model{}
}

// Puzzle returns the puzzle with the given name.
func (m *Model) Puzzle(name string) (*Puzzle, bool) {
	for _, p := range m.Puzzles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// Add appends p, rejecting duplicate names.
func (m *Model) Add(p *Puzzle) error {
	if p.Name == "" {
		return fmt.Errorf("puzzle declared in %s has no name", p.Source)
	}
	if prev, ok := m.Puzzle(p.Name); ok {
		return fmt.Errorf("puzzle %q declared twice (%s and %s)", p.Name, prev.Source, p.Source)
	}
	m.Puzzles = append(m.Puzzles, p)
	return nil
}

// Merge appends every puzzle of other to m.
func (m *Model) Merge(other *Model) error {
	if other == nil {
		return nil
	}
	for _, p := range other.Puzzles {
		if err := m.Add(p); err != nil {
			return err
		}
	}
	return nil
}

// Filter returns a model with only the named puzzles, keeping declaration
// order. An empty list returns m unchanged. Unknown names are an error.
func (m *Model) Filter(names []string) (*Model, error) {
	if len(names) == 0 {
		return m, nil
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}

	out := NewModel()
	for _, p := range m.Puzzles {
		if _, ok := wanted[p.Name]; ok {
			out.Puzzles = append(out.Puzzles, p)
			delete(wanted, p.Name)
		}
	}
	if len(wanted) > 0 {
		missing := make([]string, 0, len(wanted))
		for n := range wanted {
			missing = append(missing, n)
		}
		sort.Strings(missing)
		return nil, fmt.Errorf("unknown puzzle(s): %s", strings.Join(missing, ", "))
	}
	return out, nil
}

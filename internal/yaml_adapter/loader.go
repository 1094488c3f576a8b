package yaml_adapter

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/fsutil"
	"gopkg.in/yaml.v3"
)

// fileRoot mirrors the top level of a YAML manifest.
type fileRoot struct {
	Puzzles []puzzleEntry `yaml:"puzzles"`
}

type puzzleEntry struct {
	Name   string       `yaml:"name"`
	Solver string       `yaml:"solver"`
	Input  string       `yaml:"input"`
	Expect *expectEntry `yaml:"expect"`
}

type expectEntry struct {
	Part1 *string `yaml:"part1"`
	Part2 *string `yaml:"part2"`
}

// Loader is the YAML-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new YAML manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads every YAML manifest found under paths.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("YAML loader started.", "path_count", len(paths))

	model := config.NewModel()
	seen := make(map[string]struct{})
	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".yaml", ".yml")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, file := range files {
			if _, ok := seen[file]; ok {
				continue
			}
			seen[file] = struct{}{}
			if err := l.loadFile(ctx, model, file); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("YAML loading complete.", "files", len(seen), "puzzles", len(model.Puzzles))
	return model, nil
}

func (l *Loader) loadFile(ctx context.Context, model *config.Model, file string) error {
	logger := ctxlog.FromContext(ctx)

	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read YAML file %s: %w", file, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		logger.Warn("Skipping empty YAML manifest.", "file", file)
		return nil
	}

	var root fileRoot
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		return fmt.Errorf("failed to decode YAML file %s: %w", file, err)
	}

	for i, entry := range root.Puzzles {
		puzzle := translatePuzzle(entry, file)
		if puzzle.Name == "" {
			return fmt.Errorf("failed to decode YAML file %s: puzzle #%d has no name", file, i+1)
		}
		if err := model.Add(puzzle); err != nil {
			return err
		}
		logger.Debug("Loaded YAML puzzle.", "puzzle", puzzle.Name, "file", file)
	}
	return nil
}

// translatePuzzle converts a YAML entry into the agnostic model.
func translatePuzzle(e puzzleEntry, file string) *config.Puzzle {
	input := e.Input
	if input != "" && !filepath.IsAbs(input) {
		input = filepath.Join(filepath.Dir(file), input)
	}
	solver := e.Solver
	if solver == "" {
		solver = e.Name
	}

	p := &config.Puzzle{
		Name:   e.Name,
		Solver: solver,
		Input:  input,
		Source: file,
	}
	if e.Expect != nil {
		p.Expect = &config.Expectation{Part1: e.Expect.Part1, Part2: e.Expect.Part2}
	}
	return p
}

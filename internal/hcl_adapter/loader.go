package hcl_adapter

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/fsutil"
)

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL manifest loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load orchestrates the HCL manifest loading process. Every `.hcl` file
// found under paths is parsed and its puzzles appended in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	model := config.NewModel()

	var hclFiles []string
	seen := make(map[string]struct{})
	for _, path := range paths {
		files, err := fsutil.FindFilesByExtension(path, ".hcl")
		if err != nil {
			return nil, fmt.Errorf("error accessing path %s: %w", path, err)
		}
		for _, f := range files {
			if _, wasSeen := seen[f]; !wasSeen {
				hclFiles = append(hclFiles, f)
				seen[f] = struct{}{}
			}
		}
	}
	logger.Debug("Discovered HCL files.", "count", len(hclFiles))

	parser := hclparse.NewParser()

	for _, file := range hclFiles {
		hclFile, diags := parser.ParseHCLFile(file)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
		}

		var root fileRoot
		diags = gohcl.DecodeBody(hclFile.Body, nil, &root)
		if diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
		}

		for _, p := range root.Puzzles {
			puzzle, err := l.translatePuzzle(ctx, p, file)
			if err != nil {
				return nil, fmt.Errorf("failed to translate HCL file %s: %w", file, err)
			}
			if err := model.Add(puzzle); err != nil {
				return nil, err
			}
		}
	}

	logger.Debug("HCL loading complete.", "puzzles", len(model.Puzzles))
	return model, nil
}

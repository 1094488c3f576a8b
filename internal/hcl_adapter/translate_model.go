// This file contains the logic for translating HCL schema structs into the
// format-agnostic configuration model defined in the config package.

package hcl_adapter

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
)

// translatePuzzle converts the HCL-specific puzzle schema into the agnostic model.
func (l *Loader) translatePuzzle(ctx context.Context, p *Puzzle, file string) (*config.Puzzle, error) {
	logger := ctxlog.FromContext(ctx).With("puzzle", p.Name, "file", file)
	ctx = ctxlog.WithLogger(ctx, logger)

	logger.Debug("Translating HCL puzzle to internal config model.")

	if !isExprDefined(ctx, p.Input, "input") {
		diag := &hcl.Diagnostic{
			Severity: hcl.DiagError,
			Summary:  "Missing required argument",
			Detail:   fmt.Sprintf("The argument \"input\" is required in puzzle %q.", p.Name),
		}
		if p.Input != nil {
			subject := p.Input.Range()
			diag.Subject = &subject
		}
		return nil, hcl.Diagnostics{diag}
	}

	input, err := evalString(ctx, p.Input, "input")
	if err != nil {
		return nil, fmt.Errorf("puzzle '%s': %w", p.Name, err)
	}
	if input != "" && !filepath.IsAbs(input) {
		input = filepath.Join(filepath.Dir(file), input)
	}

	solver := p.Name
	if isExprDefined(ctx, p.Solver, "solver") {
		solver, err = evalString(ctx, p.Solver, "solver")
		if err != nil {
			return nil, fmt.Errorf("puzzle '%s': %w", p.Name, err)
		}
	} else {
		logger.Debug("`solver` attribute is not defined. Using the block label.")
	}

	expect, err := l.translateExpect(ctx, p)
	if err != nil {
		return nil, fmt.Errorf("puzzle '%s': %w", p.Name, err)
	}

	return &config.Puzzle{
		Name:   p.Name,
		Solver: solver,
		Input:  input,
		Source: file,
		Expect: expect,
	}, nil
}

// translateExpect decodes the optional `expect` block.
func (l *Loader) translateExpect(ctx context.Context, p *Puzzle) (*config.Expectation, error) {
	if p.Remain == nil {
		return nil, nil
	}
	content, diags := p.Remain.Content(puzzleBodySchema)
	if diags.HasErrors() {
		return nil, diags
	}
	block, diags := findUniqueBlock(content.Blocks, "expect")
	if diags.HasErrors() {
		return nil, diags
	}
	if block == nil {
		return nil, nil
	}

	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, diags
	}

	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)

	expect := &config.Expectation{}
	for _, name := range names {
		if _, ok := expectAttributes[name]; !ok {
			attr := attrs[name]
			return nil, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Unsupported argument",
				Detail:   fmt.Sprintf("An argument named %q is not expected here; use part1 or part2.", name),
				Subject:  &attr.NameRange,
			}}
		}
		val, err := evalString(ctx, attrs[name].Expr, "expect."+name)
		if err != nil {
			return nil, err
		}
		switch name {
		case "part1":
			expect.Part1 = &val
		case "part2":
			expect.Part2 = &val
		}
	}
	return expect, nil
}

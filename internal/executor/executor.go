package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
	"github.com/specialistvlad/labpatrol/internal/fsutil"
	"github.com/specialistvlad/labpatrol/internal/registry"
)

// ErrExpectationMismatch is wrapped by the error returned when a manifest
// `expect` value disagrees with a computed answer.
var ErrExpectationMismatch = errors.New("answer does not match expectation")

// Result is the outcome of one puzzle.
type Result struct {
	Puzzle   *config.Puzzle
	Day      int
	Answer   registry.Answer
	Duration time.Duration
}

// Executor is responsible for running every puzzle of a model, in
// declaration order, and writing the answers to its output.
type Executor struct {
	model    *config.Model
	registry *registry.Registry
	opts     registry.Options
	out      io.Writer
}

// New creates an executor. The model must already be validated against reg.
func New(model *config.Model, reg *registry.Registry, opts registry.Options, out io.Writer) *Executor {
	return &Executor{
		model:    model,
		registry: reg,
		opts:     opts,
		out:      out,
	}
}

// Run solves each puzzle in turn. It stops at the first failure; answers
// that were already printed stay printed.
func (e *Executor) Run(ctx context.Context) ([]Result, error) {
	logger := ctxlog.FromContext(ctx)
	results := make([]Result, 0, len(e.model.Puzzles))

	for _, p := range e.model.Puzzles {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res, err := e.runPuzzle(ctx, p)
		if err != nil {
			logger.Error("Puzzle failed.", "puzzle", p.Name, "error", err)
			return results, fmt.Errorf("puzzle '%s': %w", p.Name, err)
		}
		results = append(results, res)

		if err := writeResult(e.out, res); err != nil {
			return results, fmt.Errorf("failed to write result: %w", err)
		}
		if err := checkExpectation(p, res.Answer); err != nil {
			return results, err
		}
	}
	return results, nil
}

func (e *Executor) runPuzzle(ctx context.Context, p *config.Puzzle) (Result, error) {
	logger := ctxlog.FromContext(ctx).With("puzzle", p.Name, "solver", p.Solver)
	ctx = ctxlog.WithLogger(ctx, logger)

	solver, ok := e.registry.Solver(p.Solver)
	if !ok {
		return Result{}, fmt.Errorf("solver '%s' is not registered", p.Solver)
	}

	lines, err := fsutil.ReadLines(p.Input)
	if err != nil {
		return Result{}, err
	}
	logger.Debug("Input loaded.", "input", p.Input, "lines", len(lines))

	started := time.Now()
	answer, err := solver.Fn(ctx, lines, e.opts)
	if err != nil {
		return Result{}, err
	}
	elapsed := time.Since(started)
	logger.Info("Puzzle solved.", "day", solver.Day, "part1", answer.Part1, "part2", answer.Part2, "duration", elapsed)

	return Result{
		Puzzle:   p,
		Day:      solver.Day,
		Answer:   answer,
		Duration: elapsed,
	}, nil
}

// writeResult prints one answer block:
//
//	Day 6:
//	Part 1: 41
//	Part 2: 6
func writeResult(w io.Writer, res Result) error {
	header := fmt.Sprintf("Day %d", res.Day)
	if res.Puzzle.Name != fmt.Sprintf("day%d", res.Day) {
		header = fmt.Sprintf("Day %d (%s)", res.Day, res.Puzzle.Name)
	}
	_, err := fmt.Fprintf(w, "%s:\nPart 1: %s\nPart 2: %s\n\n", header, res.Answer.Part1, res.Answer.Part2)
	return err
}

func checkExpectation(p *config.Puzzle, got registry.Answer) error {
	if p.Expect == nil {
		return nil
	}
	var errs []error
	if want := p.Expect.Part1; want != nil && *want != got.Part1 {
		errs = append(errs, fmt.Errorf("puzzle '%s' part 1: got %s, want %s: %w", p.Name, got.Part1, *want, ErrExpectationMismatch))
	}
	if want := p.Expect.Part2; want != nil && *want != got.Part2 {
		errs = append(errs, fmt.Errorf("puzzle '%s' part 2: got %s, want %s: %w", p.Name, got.Part2, *want, ErrExpectationMismatch))
	}
	return errors.Join(errs...)
}

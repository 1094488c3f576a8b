package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/labpatrol/internal/config"
	"github.com/specialistvlad/labpatrol/internal/ctxlog"
)

// ValidateModel performs a parity check between the manifests and the Go
// code: every puzzle must name a registered solver and an input.
func (r *Registry) ValidateModel(ctx context.Context, model *config.Model) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, p := range model.Puzzles {
		if p.Input == "" {
			errs = append(errs, fmt.Sprintf("puzzle '%s': no input file declared", p.Name))
		}
		if _, ok := r.SolverRegistry[p.Solver]; !ok {
			errs = append(errs, fmt.Sprintf("puzzle '%s': solver '%s' is not registered (known: %s)", p.Name, p.Solver, strings.Join(r.Names(), ", ")))
			continue
		}
		logger.Debug("Puzzle bound to solver.", "puzzle", p.Name, "solver", p.Solver)
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	return nil
}

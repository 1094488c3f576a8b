package config

import (
	"context"
	"fmt"

	"github.com/specialistvlad/labpatrol/internal/ctxlog"
)

// Loader is the interface for a format-specific manifest loader.
type Loader interface {
	// Load reads every manifest of its format found under the given paths
	// and translates them into the format-agnostic model. Paths that do not
	// exist are skipped.
	Load(ctx context.Context, paths ...string) (*Model, error)
}

// multiLoader runs several format-specific loaders over the same paths.
type multiLoader struct {
	loaders []Loader
}

// NewMultiLoader returns a Loader that merges the models produced by all
// given loaders, in order.
func NewMultiLoader(loaders ...Loader) Loader {
	return &multiLoader{loaders: loaders}
}

// Load implements Loader.
func (m *multiLoader) Load(ctx context.Context, paths ...string) (*Model, error) {
	logger := ctxlog.FromContext(ctx)
	merged := NewModel()
	for i, l := range m.loaders {
		model, err := l.Load(ctx, paths...)
		if err != nil {
			return nil, err
		}
		if err := merged.Merge(model); err != nil {
			return nil, fmt.Errorf("failed to merge manifests: %w", err)
		}
		logger.Debug("Loader finished.", "loader", i, "puzzles", len(model.Puzzles))
	}
	return merged, nil
}

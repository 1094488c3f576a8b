package testutil

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/labpatrol/internal/app"
	"github.com/specialistvlad/labpatrol/internal/executor"
	"github.com/specialistvlad/labpatrol/internal/registry"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// HarnessResult holds the outcomes of an integration test run.
type HarnessResult struct {
	// Root is the temporary directory the files were written to.
	Root      string
	Output    string
	LogOutput string
	Results   []executor.Result
	Err       error
	App       *app.App
}

// RunIntegrationTest provides a standardized harness for running integration tests
// using a default background context.
func RunIntegrationTest(t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()
	return RunIntegrationTestWithContext(context.Background(), t, files, cfg, modules...)
}

// RunIntegrationTestWithContext writes files into a temporary tree, points
// cfg at it and runs the app end to end. Relative ManifestPath and InputPath
// values are resolved against the tree; with neither set the whole tree is
// the manifest path. Logging defaults to debug text.
func RunIntegrationTestWithContext(ctx context.Context, t *testing.T, files map[string]string, cfg app.Config, modules ...registry.Module) *HarnessResult {
	t.Helper()

	tmpDir := t.TempDir()
	for name, content := range files {
		filePath := filepath.Join(tmpDir, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(filePath), 0755))
		require.NoError(t, os.WriteFile(filePath, []byte(content), 0644))
	}

	switch {
	case cfg.InputPath != "":
		if !filepath.IsAbs(cfg.InputPath) {
			cfg.InputPath = filepath.Join(tmpDir, cfg.InputPath)
		}
	case cfg.ManifestPath == "":
		cfg.ManifestPath = tmpDir
	case !filepath.IsAbs(cfg.ManifestPath):
		cfg.ManifestPath = filepath.Join(tmpDir, cfg.ManifestPath)
	}
	if cfg.Solver == "" {
		cfg.Solver = "guard_patrol"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.Workers == 0 {
		cfg.Workers = 2
	}

	out := &SafeBuffer{}
	logBuffer := &SafeBuffer{}
	result := &HarnessResult{Root: tmpDir}

	defer func() {
		if os.Getenv("LABPATROL_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	}()

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		result.Err = err
		return result
	}

	var testApp *app.App
	var panicErr any
	func() {
		defer func() {
			if r := recover(); r != nil {
				panicErr = r
			}
		}()
		testApp, err = app.NewApp(out, logBuffer, appConfig, app.DefaultLoader(), modules...)
	}()

	if panicErr != nil {
		result.LogOutput = logBuffer.String()
		result.Err = fmt.Errorf("application startup panicked | %v", panicErr)
		return result
	}
	if err != nil {
		result.Err = err
		return result
	}
	t.Cleanup(func() { _ = testApp.Close() })

	result.App = testApp
	result.Results, result.Err = testApp.Run(ctx)
	result.Output = out.String()
	result.LogOutput = logBuffer.String()
	return result
}

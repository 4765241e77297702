// Package testsupport provides shared helpers and fakes for easyshell
// tests: temp-dir configs with fast probe timing and in-memory stand-ins
// for the windowing engine.
package testsupport

import (
	"path/filepath"
	"testing"

	"easyshell/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp log directory and
// probe timing fast enough for tests. It applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Probe.TimeoutSeconds = 3
	cfg.Probe.IntervalMS = 20
	cfg.Probe.DialTimeoutMS = 100

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithDevBackend switches the config to dev mode with the given
// interpreter and project root.
func WithDevBackend(pythonBin, projectRoot string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Backend.DevMode = true
		cfg.Backend.PythonBin = pythonBin
		cfg.Paths.ProjectRoot = projectRoot
	}
}

// WithBackendBin points production mode at an explicit backend binary.
func WithBackendBin(path string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Backend.BackendBin = path
	}
}

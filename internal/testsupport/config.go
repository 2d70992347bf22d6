// Package testsupport provides shared helpers for package tests: temp-dir
// configs, file fixtures, and a fully populated sample metadata document.
package testsupport

import (
	"path/filepath"
	"testing"

	"loopcast/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.InputDir = filepath.Join(base, "in")
	cfg.Paths.OutputDir = filepath.Join(base, "out")
	cfg.Paths.LogDir = filepath.Join(base, "logs")

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("ensure directories: %v", err)
	}
	return &cfg
}

// WithTimezone overrides the scheduling time zone on the test config.
func WithTimezone(name string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Scheduling.Timezone = name
	}
}

// WithWindow replaces or adds one scheduling window on the test config.
func WithWindow(key string, window config.Window) ConfigOption {
	return func(cfg *config.Config) {
		if cfg.Scheduling.Windows == nil {
			cfg.Scheduling.Windows = map[string]config.Window{}
		}
		cfg.Scheduling.Windows[key] = window
	}
}

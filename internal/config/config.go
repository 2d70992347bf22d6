package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Paths contains directory configuration.
type Paths struct {
	InputDir  string `toml:"input_dir"`
	OutputDir string `toml:"output_dir"`
	LogDir    string `toml:"log_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Window describes one locked posting window: a weekday (Monday=0 through
// Sunday=6), a time of day in HH:MM form, and a tolerance in minutes around
// that time.
type Window struct {
	Weekday      int    `toml:"weekday"`
	Time         string `toml:"time"`
	ToleranceMin int    `toml:"tolerance_min"`
}

// Scheduling contains the dispatch guardrail settings: the named time zone
// the windows are anchored in and the locked window table itself.
type Scheduling struct {
	Timezone string            `toml:"timezone"`
	Windows  map[string]Window `toml:"windows"`
}

// YouTube contains credential file locations for the YouTube adapter.
type YouTube struct {
	ClientSecretsFile string `toml:"client_secrets_file"`
	TokenFile         string `toml:"token_file"`
}

// Reddit contains defaults for the Reddit adapter and outbox.
type Reddit struct {
	DefaultSubreddit string `toml:"default_subreddit"`
}

// Config encapsulates all configuration values for loopcast.
//
// Configuration sections by subsystem:
//   - Paths: input, output, and log directories
//   - Logging: log format and level
//   - Scheduling: time zone and locked posting windows
//   - YouTube: OAuth credential file locations
//   - Reddit: outbox defaults
type Config struct {
	Paths      Paths      `toml:"paths"`
	Logging    Logging    `toml:"logging"`
	Scheduling Scheduling `toml:"scheduling"`
	YouTube    YouTube    `toml:"youtube"`
	Reddit     Reddit     `toml:"reddit"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return ExpandPath("~/.config/loopcast/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. The second return is
// the resolved config path; the third reports whether the file existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := ExpandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("loopcast.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories loopcast needs to run.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Paths.InputDir, c.Paths.OutputDir, c.Paths.LogDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// MetadataPath returns the expected metadata document location inside the input directory.
func (c *Config) MetadataPath() string {
	return filepath.Join(c.Paths.InputDir, "meta.toml")
}

// MediaInputDir returns the directory holding the authored media inputs.
func (c *Config) MediaInputDir() string {
	return filepath.Join(c.Paths.InputDir, "media")
}

// WriteSample writes the embedded sample configuration to the given path.
// It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	return os.WriteFile(path, []byte(sampleConfig), 0o644)
}

// ExpandPath expands a leading ~ and returns a cleaned absolute path.
func ExpandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}

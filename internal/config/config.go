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
	// LogDir receives easyshell.log plus the single-instance lock file.
	LogDir string `toml:"log_dir"`
	// ProjectRoot pins the dev backend's working directory so its relative
	// imports resolve. Empty means the current working directory.
	ProjectRoot string `toml:"project_root"`
	// ResourcesDir is where the packaged backend binary lives in production
	// builds. Empty means the directory of the running executable.
	ResourcesDir string `toml:"resources_dir"`
}

// Backend contains configuration for resolving the backend command.
type Backend struct {
	// DevMode selects the interpreter-driven backend instead of the
	// packaged binary.
	DevMode bool `toml:"dev_mode"`
	// PythonBin is the interpreter used in dev mode. Falls back to the
	// EASY_PYTHON_BIN environment variable, then "python3".
	PythonBin string `toml:"python_bin"`
	// BackendBin overrides the packaged backend binary path in production
	// mode. Falls back to the EASY_BACKEND_BIN environment variable.
	BackendBin string `toml:"backend_bin"`
}

// Probe contains readiness probe timing.
type Probe struct {
	TimeoutSeconds int `toml:"timeout_seconds"`
	IntervalMS     int `toml:"interval_ms"`
	DialTimeoutMS  int `toml:"dial_timeout_ms"`
}

// SettingsWindow contains the fixed geometry for the settings sub-window.
type SettingsWindow struct {
	Title  string `toml:"title"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for easyshell.
//
// Configuration sections by subsystem:
//   - Paths: log directory, dev project root, packaged resources dir
//   - Backend: launch mode and interpreter/binary overrides
//   - Probe: readiness probe deadline and per-attempt timing
//   - SettingsWindow: settings sub-window title and geometry
//   - Logging: log format and level
type Config struct {
	Paths          Paths          `toml:"paths"`
	Backend        Backend        `toml:"backend"`
	Probe          Probe          `toml:"probe"`
	SettingsWindow SettingsWindow `toml:"settings_window"`
	Logging        Logging        `toml:"logging"`
}

// DefaultConfigPath returns the absolute path to the default configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/easyshell/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded and normalized. Conventional .env
// files are loaded first so environment fallbacks observe them.
func Load(path string) (*Config, string, bool, error) {
	loadEnvFiles()

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
		expanded, err := expandPath(path)
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

	projectPath, err := filepath.Abs("easyshell.toml")
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

// EnsureDirectories creates the directories the shell writes to.
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(c.Paths.LogDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Paths.LogDir, err)
	}
	return nil
}

// SampleConfig returns the embedded sample configuration file contents.
func SampleConfig() string {
	return sampleConfig
}

func expandPath(pathValue string) (string, error) {
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

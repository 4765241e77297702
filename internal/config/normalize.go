package config

import (
	"fmt"
	"os"
	"strings"
)

// Environment variables consumed as configuration fallbacks.
const (
	EnvPythonBin  = "EASY_PYTHON_BIN"
	EnvBackendBin = "EASY_BACKEND_BIN"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	if err := c.normalizeBackend(); err != nil {
		return err
	}
	c.normalizeProbe()
	c.normalizeSettingsWindow()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	if c.Paths.ProjectRoot, err = expandPath(strings.TrimSpace(c.Paths.ProjectRoot)); err != nil {
		return fmt.Errorf("paths.project_root: %w", err)
	}
	if c.Paths.ResourcesDir, err = expandPath(strings.TrimSpace(c.Paths.ResourcesDir)); err != nil {
		return fmt.Errorf("paths.resources_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeBackend() error {
	c.Backend.PythonBin = strings.TrimSpace(c.Backend.PythonBin)
	if c.Backend.PythonBin == "" || c.Backend.PythonBin == defaultPythonBin {
		if value, ok := os.LookupEnv(EnvPythonBin); ok && strings.TrimSpace(value) != "" {
			c.Backend.PythonBin = strings.TrimSpace(value)
		}
	}
	if c.Backend.PythonBin == "" {
		c.Backend.PythonBin = defaultPythonBin
	}

	c.Backend.BackendBin = strings.TrimSpace(c.Backend.BackendBin)
	if c.Backend.BackendBin == "" {
		if value, ok := os.LookupEnv(EnvBackendBin); ok {
			c.Backend.BackendBin = strings.TrimSpace(value)
		}
	}
	if c.Backend.BackendBin != "" {
		expanded, err := expandPath(c.Backend.BackendBin)
		if err != nil {
			return fmt.Errorf("backend.backend_bin: %w", err)
		}
		c.Backend.BackendBin = expanded
	}
	return nil
}

func (c *Config) normalizeProbe() {
	if c.Probe.TimeoutSeconds <= 0 {
		c.Probe.TimeoutSeconds = defaultProbeTimeoutSeconds
	}
	if c.Probe.IntervalMS <= 0 {
		c.Probe.IntervalMS = defaultProbeIntervalMS
	}
	if c.Probe.DialTimeoutMS <= 0 {
		c.Probe.DialTimeoutMS = defaultProbeDialTimeoutMS
	}
}

func (c *Config) normalizeSettingsWindow() {
	if strings.TrimSpace(c.SettingsWindow.Title) == "" {
		c.SettingsWindow.Title = defaultSettingsWindowTitle
	}
	if c.SettingsWindow.Width <= 0 {
		c.SettingsWindow.Width = defaultSettingsWindowWidth
	}
	if c.SettingsWindow.Height <= 0 {
		c.SettingsWindow.Height = defaultSettingsWindowHeight
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	// The backend's settings store spells verbose logging "deep".
	if c.Logging.Level == "deep" {
		c.Logging.Level = "debug"
	}
}

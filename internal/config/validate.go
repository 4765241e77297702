package config

import (
	"errors"
	"fmt"
	"time"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateBackend(); err != nil {
		return err
	}
	if err := c.validateProbe(); err != nil {
		return err
	}
	if err := c.validateSettingsWindow(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateBackend() error {
	if c.Backend.DevMode && c.Backend.PythonBin == "" {
		return errors.New("backend.python_bin must be set when backend.dev_mode is true")
	}
	return nil
}

func (c *Config) validateProbe() error {
	timeout := time.Duration(c.Probe.TimeoutSeconds) * time.Second
	dial := time.Duration(c.Probe.DialTimeoutMS) * time.Millisecond
	if dial >= timeout {
		return fmt.Errorf("probe.dial_timeout_ms (%d) must stay well below probe.timeout_seconds (%d)", c.Probe.DialTimeoutMS, c.Probe.TimeoutSeconds)
	}
	interval := time.Duration(c.Probe.IntervalMS) * time.Millisecond
	if interval >= timeout {
		return fmt.Errorf("probe.interval_ms (%d) must stay below probe.timeout_seconds (%d)", c.Probe.IntervalMS, c.Probe.TimeoutSeconds)
	}
	return nil
}

func (c *Config) validateSettingsWindow() error {
	if c.SettingsWindow.Width <= 0 || c.SettingsWindow.Height <= 0 {
		return errors.New("settings_window.width and settings_window.height must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
		return nil
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
}

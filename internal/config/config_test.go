package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"easyshell/internal/config"
)

func TestLoadDefaultsAndExpandsPaths(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.EnvPythonBin, "")
	t.Setenv(config.EnvBackendBin, "")

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if resolved == "" {
		t.Fatal("expected resolved path")
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}

	wantLogs := filepath.Join(tempHome, ".local", "share", "easyshell", "logs")
	if cfg.Paths.LogDir != wantLogs {
		t.Fatalf("unexpected log dir: got %q want %q", cfg.Paths.LogDir, wantLogs)
	}
	if cfg.Backend.DevMode {
		t.Fatal("expected dev_mode disabled by default")
	}
	if cfg.Backend.PythonBin != "python3" {
		t.Fatalf("unexpected python bin: %q", cfg.Backend.PythonBin)
	}
	if cfg.Probe.TimeoutSeconds != 10 || cfg.Probe.IntervalMS != 150 || cfg.Probe.DialTimeoutMS != 250 {
		t.Fatalf("unexpected probe defaults: %+v", cfg.Probe)
	}
	if cfg.SettingsWindow.Title != "Easy Settings" {
		t.Fatalf("unexpected settings window title: %q", cfg.SettingsWindow.Title)
	}
	if cfg.Logging.Format != "console" || cfg.Logging.Level != "info" {
		t.Fatalf("unexpected logging defaults: %+v", cfg.Logging)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	if info, err := os.Stat(cfg.Paths.LogDir); err != nil || !info.IsDir() {
		t.Fatalf("expected log dir to exist: %v", err)
	}
}

func TestLoadReadsFileAndNormalizes(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	t.Setenv(config.EnvPythonBin, "")
	t.Setenv(config.EnvBackendBin, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	contents := strings.Join([]string{
		"[backend]",
		"dev_mode = true",
		"python_bin = \"  python3.11 \"",
		"",
		"[logging]",
		"level = \"DEEP\"",
		"format = \"JSON\"",
	}, "\n")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected config at %q to be used, got %q exists=%v", path, resolved, exists)
	}
	if !cfg.Backend.DevMode {
		t.Fatal("expected dev_mode enabled")
	}
	if cfg.Backend.PythonBin != "python3.11" {
		t.Fatalf("expected trimmed python bin, got %q", cfg.Backend.PythonBin)
	}
	if cfg.Logging.Level != "debug" {
		t.Fatalf("expected deep level to map to debug, got %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Fatalf("expected lowercased format, got %q", cfg.Logging.Format)
	}
}

func TestEnvironmentFallbacks(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)
	python := filepath.Join(tempHome, "venv", "bin", "python")
	backend := filepath.Join(tempHome, "backend-bin")
	t.Setenv(config.EnvPythonBin, python)
	t.Setenv(config.EnvBackendBin, backend)

	cfg, _, _, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Backend.PythonBin != python {
		t.Fatalf("expected python bin from env, got %q", cfg.Backend.PythonBin)
	}
	if cfg.Backend.BackendBin != backend {
		t.Fatalf("expected backend bin from env, got %q", cfg.Backend.BackendBin)
	}
}

func TestValidateRejectsBadProbeTiming(t *testing.T) {
	cfg := config.Default()
	cfg.Probe.TimeoutSeconds = 1
	cfg.Probe.DialTimeoutMS = 1500
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for dial timeout above deadline")
	}
}

func TestValidateRejectsUnknownLogFormat(t *testing.T) {
	cfg := config.Default()
	cfg.Logging.Format = "xml"
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected validation error for unknown log format")
	}
}

func TestSampleConfigParses(t *testing.T) {
	if !strings.Contains(config.SampleConfig(), "[probe]") {
		t.Fatal("sample config missing probe section")
	}
}

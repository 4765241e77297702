package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"easyshell/internal/config"
)

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := New(Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestNewWritesToConfiguredFile(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "out.log")

	logger, err := New(Options{Level: "debug", Format: "json", OutputPaths: []string{logPath}, ErrorOutputPaths: []string{logPath}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	logger.Info("hello", String("port", "1234"))

	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"hello"`) {
		t.Fatalf("log file missing record: %s", data)
	}
	if !strings.Contains(string(data), `"port":"1234"`) {
		t.Fatalf("log file missing attr: %s", data)
	}
}

func TestNewFromConfigCreatesLogDir(t *testing.T) {
	cfg := config.Default()
	cfg.Paths.LogDir = filepath.Join(t.TempDir(), "logs")

	logger, err := NewFromConfig(&cfg)
	if err != nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	logger.Info("boot")

	if _, err := os.Stat(filepath.Join(cfg.Paths.LogDir, "easyshell.log")); err != nil {
		t.Fatalf("expected easyshell.log to exist: %v", err)
	}
}

func TestConsoleHandlerRendersComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	handler := newConsoleHandler(&buf, levelVar, false)
	logger := NewComponentLogger(slog.New(handler), "supervisor")

	logger.Info("backend spawned", Int(FieldPID, 42), String("binary", "a b"))

	out := buf.String()
	if !strings.Contains(out, "[supervisor]") {
		t.Fatalf("missing component tag: %q", out)
	}
	if !strings.Contains(out, "pid=42") {
		t.Fatalf("missing pid field: %q", out)
	}
	if !strings.Contains(out, `binary="a b"`) {
		t.Fatalf("expected quoted value with spaces: %q", out)
	}
}

func TestConsoleHandlerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	levelVar := new(slog.LevelVar)
	levelVar.Set(slog.LevelWarn)
	logger := slog.New(newConsoleHandler(&buf, levelVar, false))

	logger.Info("suppressed")
	logger.Warn("kept")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "kept") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestParseLevelMapsDeepToDebug(t *testing.T) {
	if got := parseLevel("deep"); got != slog.LevelDebug {
		t.Fatalf("parseLevel(deep) = %v", got)
	}
	if got := parseLevel("unknown"); got != slog.LevelInfo {
		t.Fatalf("parseLevel(unknown) = %v", got)
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	logger := NewNop()
	logger.Error("goes nowhere", Error(os.ErrNotExist))
}

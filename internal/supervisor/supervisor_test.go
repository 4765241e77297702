package supervisor_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"testing"
	"time"

	"easyshell/internal/backend"
	"easyshell/internal/logging"
	"easyshell/internal/supervisor"
)

func writeStub(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "backend-stub")
	script := "#!/bin/sh\n" + body + "\n"
	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		t.Fatalf("write stub: %v", err)
	}
	return path
}

func processGone(pid int) bool {
	return syscall.Kill(pid, 0) != nil
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func TestSpawnAndShutdown(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	stub := writeStub(t, "sleep 30")

	if err := sup.Spawn(backend.Command{Path: stub}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	if !sup.Alive() {
		t.Fatal("expected child to be alive after spawn")
	}
	pid := sup.PID()
	if pid <= 0 {
		t.Fatalf("unexpected pid %d", pid)
	}

	sup.Shutdown()

	if sup.Alive() {
		t.Fatal("expected slot to be empty after shutdown")
	}
	waitFor(t, "child to die", func() bool { return processGone(pid) })
}

func TestShutdownIsIdempotent(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	stub := writeStub(t, "sleep 30")

	if err := sup.Spawn(backend.Command{Path: stub}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	sup.Shutdown()
	// Second call must find the slot empty and do nothing.
	sup.Shutdown()

	if sup.PID() != 0 {
		t.Fatalf("expected empty slot, pid=%d", sup.PID())
	}
}

func TestShutdownWithoutSpawnIsNoop(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	sup.Shutdown()
}

func TestSpawnRejectsMissingBinary(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	err := sup.Spawn(backend.Command{Path: filepath.Join(t.TempDir(), "does-not-exist")})
	if !errors.Is(err, supervisor.ErrSpawn) {
		t.Fatalf("expected ErrSpawn, got %v", err)
	}
	if sup.Alive() {
		t.Fatal("failed spawn must not occupy the slot")
	}
}

func TestSpawnRejectsSecondChild(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	stub := writeStub(t, "sleep 30")

	if err := sup.Spawn(backend.Command{Path: stub}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	t.Cleanup(sup.Shutdown)

	err := sup.Spawn(backend.Command{Path: stub})
	if !errors.Is(err, supervisor.ErrAlreadyRunning) {
		t.Fatalf("expected ErrAlreadyRunning, got %v", err)
	}
}

func TestSpawnAppliesEnvAndDir(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out.txt")
	stub := writeStub(t, `printf '%s %s' "$EASY_API_PORT" "$PWD" > `+out)

	sup := supervisor.New(logging.NewNop())
	err := sup.Spawn(backend.Command{
		Path: stub,
		Env:  map[string]string{"EASY_API_PORT": "9999"},
		Dir:  dir,
	})
	if err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	t.Cleanup(sup.Shutdown)

	waitFor(t, "stub output", func() bool {
		data, err := os.ReadFile(out)
		return err == nil && len(data) > 0
	})
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	fields := strings.Fields(string(data))
	if len(fields) != 2 || fields[0] != "9999" {
		t.Fatalf("unexpected stub output %q", data)
	}
	if fields[1] != dir {
		t.Fatalf("expected workdir %q, got %q", dir, fields[1])
	}
}

func TestStderrForwardedToLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sup.log")
	logger, err := logging.New(logging.Options{
		Level:            "debug",
		Format:           "json",
		OutputPaths:      []string{logPath},
		ErrorOutputPaths: []string{logPath},
	})
	if err != nil {
		t.Fatalf("logging.New: %v", err)
	}

	sup := supervisor.New(logger)
	stub := writeStub(t, `echo "boom" >&2`)
	if err := sup.Spawn(backend.Command{Path: stub}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	t.Cleanup(sup.Shutdown)

	waitFor(t, "stderr line in log", func() bool {
		data, err := os.ReadFile(logPath)
		return err == nil && strings.Contains(string(data), "backend: boom")
	})
}

func TestAliveReflectsNaturalExit(t *testing.T) {
	sup := supervisor.New(logging.NewNop())
	stub := writeStub(t, "exit 0")

	if err := sup.Spawn(backend.Command{Path: stub}); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	waitFor(t, "child to exit", func() bool { return !sup.Alive() })

	// Shutdown after natural exit stays quiet.
	sup.Shutdown()
}

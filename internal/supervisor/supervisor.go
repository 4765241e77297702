package supervisor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"sync"

	"easyshell/internal/backend"
	"easyshell/internal/logging"
)

// ErrSpawn marks an OS-level launch failure (missing binary, permission
// denied). It is fatal to startup; callers classify it with errors.Is.
var ErrSpawn = errors.New("backend spawn failed")

// ErrAlreadyRunning reports a second spawn while a child is live.
var ErrAlreadyRunning = errors.New("backend already running")

// Supervisor holds the single backend child process.
type Supervisor struct {
	logger *slog.Logger

	mu    sync.Mutex
	child *exec.Cmd
	done  chan struct{}
}

// New constructs a supervisor. A nil logger is replaced with a no-op one.
func New(logger *slog.Logger) *Supervisor {
	return &Supervisor{logger: logging.NewComponentLogger(logger, "supervisor")}
}

// SupportsProcessGroups reports whether this platform can isolate the
// child in its own process group. Where it returns false, Spawn falls
// back to a plain child process.
func SupportsProcessGroups() bool {
	return supportsProcessGroups
}

// Spawn launches the resolved backend command. Stdin stays disabled (the
// backend never reads interactive input); stderr is forwarded line by
// line into the log so backend failures are visible in the shell's own
// output.
func (s *Supervisor) Spawn(cmd backend.Command) error {
	child := exec.Command(cmd.Path, cmd.Args...)
	child.Dir = cmd.Dir
	child.Env = mergedEnv(cmd.Env)
	isolate(child)

	stderr, err := child.StderrPipe()
	if err != nil {
		return fmt.Errorf("%w: stderr pipe: %w", ErrSpawn, err)
	}

	s.mu.Lock()
	if s.child != nil {
		s.mu.Unlock()
		return ErrAlreadyRunning
	}
	if err := child.Start(); err != nil {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s: %w", ErrSpawn, cmd.Path, err)
	}
	done := make(chan struct{})
	s.child = child
	s.done = done
	s.mu.Unlock()

	s.logger.Info("backend spawned",
		logging.Int(logging.FieldPID, child.Process.Pid),
		logging.String("binary", cmd.Path),
	)

	go s.drain(child, stderr, done)
	return nil
}

// drain forwards backend stderr into the log and reaps the child once
// its output closes.
func (s *Supervisor) drain(child *exec.Cmd, stderr io.Reader, done chan struct{}) {
	scanner := bufio.NewScanner(stderr)
	for scanner.Scan() {
		s.logger.Warn("backend: " + scanner.Text())
	}
	err := child.Wait()
	close(done)
	if err != nil {
		s.logger.Debug("backend exited", logging.Error(err))
	}
}

// Shutdown takes the child out of the slot and terminates it. A second
// call finds the slot empty and does nothing. Termination failures are
// logged, not escalated: the application is closing regardless.
func (s *Supervisor) Shutdown() {
	s.mu.Lock()
	child, done := s.child, s.done
	s.child = nil
	s.done = nil
	s.mu.Unlock()

	if child == nil || child.Process == nil {
		return
	}
	select {
	case <-done:
		// Child already exited on its own; nothing left to kill.
		return
	default:
	}
	if err := terminate(child.Process); err != nil {
		s.logger.Warn("failed to terminate backend",
			logging.Int(logging.FieldPID, child.Process.Pid),
			logging.Error(err),
		)
		return
	}
	s.logger.Info("backend terminated", logging.Int(logging.FieldPID, child.Process.Pid))
}

// Alive reports whether a child currently occupies the slot and has not
// exited yet.
func (s *Supervisor) Alive() bool {
	s.mu.Lock()
	child, done := s.child, s.done
	s.mu.Unlock()

	if child == nil {
		return false
	}
	select {
	case <-done:
		return false
	default:
		return true
	}
}

// PID returns the child's process id, or zero when no child is held.
func (s *Supervisor) PID() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.child == nil || s.child.Process == nil {
		return 0
	}
	return s.child.Process.Pid
}

func mergedEnv(overrides map[string]string) []string {
	if len(overrides) == 0 {
		return nil // inherit the parent environment untouched
	}
	env := os.Environ()
	for key, value := range overrides {
		env = append(env, key+"="+value)
	}
	return env
}

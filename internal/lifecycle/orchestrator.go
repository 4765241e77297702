package lifecycle

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"

	"easyshell/internal/backend"
	"easyshell/internal/config"
	"easyshell/internal/endpoint"
	"easyshell/internal/logging"
	"easyshell/internal/probe"
	"easyshell/internal/supervisor"
	"easyshell/internal/ui"
)

// Orchestrator sequences startup and shutdown of the backend and
// publishes the resulting endpoint to the UI layer.
type Orchestrator struct {
	cfg     *config.Config
	logger  *slog.Logger
	sup     *supervisor.Supervisor
	windows ui.Registry
	emitter ui.Emitter

	lockPath string
	lock     *flock.Flock
	runID    string

	mu           sync.Mutex
	state        State
	ep           endpoint.Endpoint
	haveEndpoint bool
	locked       bool
}

// New constructs an orchestrator with initialized collaborators.
func New(cfg *config.Config, logger *slog.Logger, sup *supervisor.Supervisor, windows ui.Registry, emitter ui.Emitter) (*Orchestrator, error) {
	if cfg == nil || sup == nil || windows == nil || emitter == nil {
		return nil, errors.New("orchestrator requires config, supervisor, window registry, and emitter")
	}

	runID := uuid.NewString()
	lockPath := filepath.Join(cfg.Paths.LogDir, "easyshell.lock")
	return &Orchestrator{
		cfg:      cfg,
		logger:   logging.NewComponentLogger(logger, "lifecycle").With(logging.String(logging.FieldRunID, runID)),
		sup:      sup,
		windows:  windows,
		emitter:  emitter,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		runID:    runID,
		state:    StateNotStarted,
	}, nil
}

// Startup runs the full launch sequence synchronously on the calling
// goroutine. Run it on a background setup task: it blocks until the
// backend is reachable or a step fails, and every failure is terminal.
func (o *Orchestrator) Startup(ctx context.Context) error {
	if err := o.cfg.EnsureDirectories(); err != nil {
		return o.fail(fmt.Errorf("prepare directories: %w", err))
	}

	held, err := o.lock.TryLock()
	if err != nil {
		return o.fail(fmt.Errorf("acquire lock: %w", err))
	}
	if !held {
		return o.fail(errors.New("another easyshell instance is already running"))
	}
	o.setLocked(true)

	ep, err := endpoint.Allocate()
	if err != nil {
		return o.fail(err)
	}
	o.transition(StatePortAllocated, logging.Int(logging.FieldPort, int(ep.Port)))

	mode := o.mode()
	cmd, err := backend.Resolve(mode, o.cfg, ep)
	if err != nil {
		return o.fail(err)
	}
	o.transition(StateCommandResolved, logging.String("mode", string(mode)), logging.String("binary", cmd.Path))

	if err := o.sup.Spawn(cmd); err != nil {
		return o.fail(err)
	}
	o.transition(StateSpawned, logging.Int(logging.FieldPID, o.sup.PID()))

	o.transition(StateProbingReady)
	if err := probe.WaitReady(ctx, ep, o.probeOptions()); err != nil {
		return o.fail(err)
	}
	o.transition(StateReady)

	o.mu.Lock()
	o.ep = ep
	o.haveEndpoint = true
	o.mu.Unlock()

	o.publish(ep)
	o.transition(StateRunning, logging.String(logging.FieldEndpoint, ep.URL()))
	return nil
}

// Endpoint returns the published endpoint. The boolean is false until
// startup reached readiness.
func (o *Orchestrator) Endpoint() (endpoint.Endpoint, bool) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.ep, o.haveEndpoint
}

// BackendAlive reports whether the backend child process is still
// running.
func (o *Orchestrator) BackendAlive() bool {
	return o.sup.Alive()
}

// State returns the current lifecycle state.
func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// BindSignals attaches the orchestrator's handlers to the UI signals.
// Each signal gets exactly one handler.
func (o *Orchestrator) BindSignals(d *ui.Dispatcher) error {
	if err := d.Bind(ui.SignalFrontendReady, o.HandleFrontendReady); err != nil {
		return err
	}
	if err := d.Bind(ui.SignalOpenSettings, func() {
		if err := o.HandleOpenSettings(); err != nil {
			o.logger.Warn("open settings", logging.Error(err))
		}
	}); err != nil {
		return err
	}
	return d.Bind(ui.SignalCloseRequested, o.HandleMainWindowClose)
}

// HandleFrontendReady reveals and focuses the main window. The window
// starts hidden so users never see an unstyled view before the endpoint
// is known.
func (o *Orchestrator) HandleFrontendReady() {
	main, ok := o.windows.Get(ui.MainLabel)
	if !ok {
		o.logger.Warn("frontend ready but main window missing")
		return
	}
	if err := main.Show(); err != nil {
		o.logger.Warn("show main window", logging.Error(err))
	}
	if err := main.Focus(); err != nil {
		o.logger.Warn("focus main window", logging.Error(err))
	}
}

// HandleOpenSettings opens the settings singleton. An existing window is
// brought to front and re-injected with the current endpoint, covering
// the case where it was created before the endpoint became available; a
// missing one is created per the fixed configuration.
func (o *Orchestrator) HandleOpenSettings() error {
	if window, ok := o.windows.Get(ui.SettingsLabel); ok {
		if err := window.Focus(); err != nil {
			return fmt.Errorf("focus settings window: %w", err)
		}
		o.injectEndpoint(window)
		return nil
	}

	window, err := o.windows.CreateSettings(ui.SettingsOptions{
		Title:  o.cfg.SettingsWindow.Title,
		Width:  o.cfg.SettingsWindow.Width,
		Height: o.cfg.SettingsWindow.Height,
	})
	if err != nil {
		return fmt.Errorf("create settings window: %w", err)
	}
	o.injectEndpoint(window)
	return nil
}

// HandleMainWindowClose runs on the main window's close request: close
// every other window, then terminate the backend. Safe to call on any
// state; the supervisor's shutdown is idempotent.
func (o *Orchestrator) HandleMainWindowClose() {
	o.transition(StateShuttingDown)

	for _, window := range o.windows.All() {
		if window.Label() == ui.MainLabel {
			continue
		}
		if err := window.Close(); err != nil {
			o.logger.Warn("close window", logging.String("window", window.Label()), logging.Error(err))
		}
	}

	o.sup.Shutdown()
	o.releaseLock()
	o.transition(StateTerminated)
}

// Close releases everything the orchestrator holds. Used on startup
// error paths; redundant after HandleMainWindowClose.
func (o *Orchestrator) Close() {
	o.sup.Shutdown()
	o.releaseLock()
	o.transition(StateTerminated)
}

// publish delivers the endpoint over both channels: the named event for
// listeners and a direct script injection for views that attached before
// the event fired. Delivery is at-least-once and idempotent.
func (o *Orchestrator) publish(ep endpoint.Endpoint) {
	url := ep.URL()
	if err := o.emitter.Emit(ui.EventAPIBase, url); err != nil {
		o.logger.Warn("emit endpoint event", logging.Error(err))
	}
	if main, ok := o.windows.Get(ui.MainLabel); ok {
		if err := main.Eval(ui.APIBaseScript(url)); err != nil {
			o.logger.Warn("inject endpoint into main window", logging.Error(err))
		}
	}
}

func (o *Orchestrator) injectEndpoint(window ui.Window) {
	ep, ok := o.Endpoint()
	if !ok {
		return
	}
	if err := window.Eval(ui.APIBaseScript(ep.URL())); err != nil {
		o.logger.Warn("inject endpoint",
			logging.String("window", window.Label()),
			logging.Error(err),
		)
	}
}

func (o *Orchestrator) mode() backend.Mode {
	if o.cfg.Backend.DevMode {
		return backend.ModeDevelopment
	}
	return backend.ModeProduction
}

func (o *Orchestrator) probeOptions() probe.Options {
	return probe.Options{
		Timeout:     time.Duration(o.cfg.Probe.TimeoutSeconds) * time.Second,
		Interval:    time.Duration(o.cfg.Probe.IntervalMS) * time.Millisecond,
		DialTimeout: time.Duration(o.cfg.Probe.DialTimeoutMS) * time.Millisecond,
	}
}

// fail logs the startup error, tears down whatever was already started,
// and marks the run terminated. Startup failures are surfaced once and
// never retried.
func (o *Orchestrator) fail(err error) error {
	o.logger.Error("startup aborted", logging.String(logging.FieldState, string(o.State())), logging.Error(err))
	o.sup.Shutdown()
	o.releaseLock()
	o.transition(StateTerminated)
	return err
}

func (o *Orchestrator) setLocked(locked bool) {
	o.mu.Lock()
	o.locked = locked
	o.mu.Unlock()
}

func (o *Orchestrator) releaseLock() {
	o.mu.Lock()
	locked := o.locked
	o.locked = false
	o.mu.Unlock()
	if !locked {
		return
	}
	if err := o.lock.Unlock(); err != nil {
		o.logger.Warn("release instance lock", logging.String("lock", o.lockPath), logging.Error(err))
	}
}

func (o *Orchestrator) transition(next State, attrs ...logging.Attr) {
	o.mu.Lock()
	current := o.state
	if !current.CanTransition(next) {
		o.mu.Unlock()
		if current != next {
			o.logger.Debug("ignoring state transition",
				logging.String("from", string(current)),
				logging.String("to", string(next)),
			)
		}
		return
	}
	o.state = next
	o.mu.Unlock()

	args := append([]logging.Attr{logging.String(logging.FieldState, string(next))}, attrs...)
	o.logger.Info("state changed", logging.Args(args...)...)
}

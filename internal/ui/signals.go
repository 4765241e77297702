package ui

import (
	"fmt"
	"sync"
)

// Signal names a message the UI layer sends to the core. Each signal has
// exactly one handler.
type Signal string

const (
	// SignalFrontendReady fires when the main view finished loading; the
	// handler reveals and focuses the main window.
	SignalFrontendReady Signal = "frontend-ready"
	// SignalOpenSettings requests the settings singleton; the handler
	// opens or refocuses it.
	SignalOpenSettings Signal = "open-settings"
	// SignalCloseRequested fires when the main window is asked to close;
	// the handler closes secondary windows and shuts the backend down.
	SignalCloseRequested Signal = "close-requested"
)

// Dispatcher routes signals to their single bound handler. Dispatch runs
// the handler on the calling goroutine, which the engine guarantees is
// its UI thread.
type Dispatcher struct {
	mu       sync.Mutex
	handlers map[Signal]func()
}

// NewDispatcher returns an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{handlers: make(map[Signal]func())}
}

// Bind registers the handler for a signal. Every signal has exactly one
// handler; binding twice is a programming error.
func (d *Dispatcher) Bind(signal Signal, handler func()) error {
	if handler == nil {
		return fmt.Errorf("signal %q: handler is required", signal)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, exists := d.handlers[signal]; exists {
		return fmt.Errorf("signal %q already bound", signal)
	}
	d.handlers[signal] = handler
	return nil
}

// Dispatch invokes the handler bound to the signal. Unknown signals are
// reported so wiring mistakes surface early.
func (d *Dispatcher) Dispatch(signal Signal) error {
	d.mu.Lock()
	handler, ok := d.handlers[signal]
	d.mu.Unlock()
	if !ok {
		return fmt.Errorf("no handler bound for signal %q", signal)
	}
	handler()
	return nil
}

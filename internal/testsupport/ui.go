package testsupport

import (
	"sync"

	"easyshell/internal/ui"
)

// FakeWindow records the operations the lifecycle core performs on it.
type FakeWindow struct {
	mu       sync.Mutex
	label    string
	registry *FakeRegistry

	shown   int
	focused int
	closed  int
	scripts []string
}

func (w *FakeWindow) Label() string { return w.label }

func (w *FakeWindow) Show() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.shown++
	return nil
}

func (w *FakeWindow) Focus() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.focused++
	return nil
}

func (w *FakeWindow) Close() error {
	w.mu.Lock()
	w.closed++
	w.mu.Unlock()
	if w.registry != nil {
		w.registry.remove(w.label)
	}
	return nil
}

func (w *FakeWindow) Eval(script string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.scripts = append(w.scripts, script)
	return nil
}

// ShowCount reports how many times Show was called.
func (w *FakeWindow) ShowCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.shown
}

// FocusCount reports how many times Focus was called.
func (w *FakeWindow) FocusCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.focused
}

// CloseCount reports how many times Close was called.
func (w *FakeWindow) CloseCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.closed
}

// Scripts returns a copy of every script injected into the window.
func (w *FakeWindow) Scripts() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]string, len(w.scripts))
	copy(out, w.scripts)
	return out
}

// FakeRegistry is an in-memory windowing engine with a pre-registered
// main window.
type FakeRegistry struct {
	mu              sync.Mutex
	windows         map[string]*FakeWindow
	settingsCreated int
	lastSettings    ui.SettingsOptions
}

// NewFakeRegistry builds a registry holding only the main window.
func NewFakeRegistry() *FakeRegistry {
	r := &FakeRegistry{windows: make(map[string]*FakeWindow)}
	r.windows[ui.MainLabel] = &FakeWindow{label: ui.MainLabel, registry: r}
	return r
}

func (r *FakeRegistry) Get(label string) (ui.Window, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	window, ok := r.windows[label]
	if !ok {
		return nil, false
	}
	return window, true
}

func (r *FakeRegistry) All() []ui.Window {
	r.mu.Lock()
	defer r.mu.Unlock()
	all := make([]ui.Window, 0, len(r.windows))
	for _, window := range r.windows {
		all = append(all, window)
	}
	return all
}

func (r *FakeRegistry) CreateSettings(opts ui.SettingsOptions) (ui.Window, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.settingsCreated++
	r.lastSettings = opts
	window := &FakeWindow{label: ui.SettingsLabel, registry: r}
	r.windows[ui.SettingsLabel] = window
	return window, nil
}

func (r *FakeRegistry) remove(label string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.windows, label)
}

// Window returns the fake window registered under label for assertions.
func (r *FakeRegistry) Window(label string) (*FakeWindow, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	window, ok := r.windows[label]
	return window, ok
}

// SettingsCreated reports how many settings windows were created.
func (r *FakeRegistry) SettingsCreated() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settingsCreated
}

// LastSettingsOptions returns the options of the most recent settings
// window creation.
func (r *FakeRegistry) LastSettingsOptions() ui.SettingsOptions {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lastSettings
}

// EmittedEvent is one Emit call observed by the fake emitter.
type EmittedEvent struct {
	Name    string
	Payload string
}

// FakeEmitter records emitted events.
type FakeEmitter struct {
	mu     sync.Mutex
	events []EmittedEvent
}

func (e *FakeEmitter) Emit(event string, payload string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, EmittedEvent{Name: event, Payload: payload})
	return nil
}

// Events returns a copy of every emitted event.
func (e *FakeEmitter) Events() []EmittedEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]EmittedEvent, len(e.events))
	copy(out, e.events)
	return out
}

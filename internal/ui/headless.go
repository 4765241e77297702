package ui

import (
	"log/slog"
	"sync"

	"easyshell/internal/logging"
)

// Headless is a Registry and Emitter for runs without a windowing engine
// (development from a terminal, CI). Window operations and events are
// logged instead of rendered; the lifecycle core behaves exactly as it
// would against a real engine binding.
type Headless struct {
	logger *slog.Logger

	mu      sync.Mutex
	windows map[string]*headlessWindow
}

// NewHeadless builds a headless engine with the main window already
// registered (hidden, as the real engine starts it).
func NewHeadless(logger *slog.Logger) *Headless {
	h := &Headless{
		logger:  logging.NewComponentLogger(logger, "ui"),
		windows: make(map[string]*headlessWindow),
	}
	h.windows[MainLabel] = &headlessWindow{label: MainLabel, engine: h}
	return h
}

func (h *Headless) Get(label string) (Window, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	window, ok := h.windows[label]
	return window, ok
}

func (h *Headless) All() []Window {
	h.mu.Lock()
	defer h.mu.Unlock()
	all := make([]Window, 0, len(h.windows))
	for _, window := range h.windows {
		all = append(all, window)
	}
	return all
}

func (h *Headless) CreateSettings(opts SettingsOptions) (Window, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	window := &headlessWindow{label: SettingsLabel, engine: h}
	h.windows[SettingsLabel] = window
	h.logger.Info("settings window created",
		logging.String("title", opts.Title),
		logging.Int("width", opts.Width),
		logging.Int("height", opts.Height),
	)
	return window, nil
}

func (h *Headless) Emit(event string, payload string) error {
	h.logger.Info("event emitted", logging.String("event", event), logging.String("payload", payload))
	return nil
}

func (h *Headless) remove(label string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.windows, label)
}

type headlessWindow struct {
	label  string
	engine *Headless
}

func (w *headlessWindow) Label() string { return w.label }

func (w *headlessWindow) Show() error {
	w.engine.logger.Debug("window shown", logging.String("window", w.label))
	return nil
}

func (w *headlessWindow) Focus() error {
	w.engine.logger.Debug("window focused", logging.String("window", w.label))
	return nil
}

func (w *headlessWindow) Close() error {
	w.engine.remove(w.label)
	w.engine.logger.Debug("window closed", logging.String("window", w.label))
	return nil
}

func (w *headlessWindow) Eval(script string) error {
	w.engine.logger.Debug("script injected",
		logging.String("window", w.label),
		logging.Int("script_bytes", len(script)),
	)
	return nil
}

package ui

// Window labels. The main window always exists; the settings window is
// an optional singleton.
const (
	MainLabel     = "main"
	SettingsLabel = "settings"
)

// EventAPIBase is the named event carrying the backend base URL. It is
// emitted once per run; views that attach later pick the URL up from the
// injected global instead.
const EventAPIBase = "easy://api-base"

// Window is a single webview window owned by the engine.
type Window interface {
	Label() string
	Show() error
	Focus() error
	Close() error
	// Eval runs a script in the window's page context.
	Eval(script string) error
}

// SettingsOptions describes the fixed configuration of the settings
// sub-window.
type SettingsOptions struct {
	Title  string
	Width  int
	Height int
}

// Registry is the windowing engine surface the lifecycle core drives.
// Implementations live with the engine binding; the core never creates
// windows other than through CreateSettings.
type Registry interface {
	// Get returns the window with the given label, if it exists.
	Get(label string) (Window, bool)
	// All returns every open window.
	All() []Window
	// CreateSettings opens the settings sub-window sized and styled per
	// opts. The registry must register it under SettingsLabel.
	CreateSettings(opts SettingsOptions) (Window, error)
}

// Emitter publishes a named event to every attached UI client.
type Emitter interface {
	Emit(event string, payload string) error
}

package backend

// Mode selects which backend variant to launch.
type Mode string

const (
	// ModeDevelopment runs the backend under an interpreter against the
	// project sources.
	ModeDevelopment Mode = "development"
	// ModeProduction runs the packaged backend binary.
	ModeProduction Mode = "production"
)

// Environment variables delivered to the spawned backend in production
// mode. The backend binds the host/port they carry.
const (
	EnvAPIHost = "EASY_API_HOST"
	EnvAPIPort = "EASY_API_PORT"
)

// appTarget is the ASGI application the dev interpreter serves. Fixed:
// the dev backend always lives at this import path relative to the
// project root.
const appTarget = "api.server:app"

// Command is a fully resolved backend invocation. Built once from build
// mode, environment, and installation layout; never mutated afterwards.
type Command struct {
	// Path is the executable or interpreter to run.
	Path string
	// Args are the command-line arguments, without the program name.
	Args []string
	// Env holds environment overrides layered on the parent environment.
	Env map[string]string
	// Dir is the working directory; empty means inherit.
	Dir string
}

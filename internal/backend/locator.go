package backend

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"

	"easyshell/internal/config"
	"easyshell/internal/endpoint"
)

// ErrResolve marks a failure to determine what backend command to run.
// It is fatal to startup; callers classify it with errors.Is.
var ErrResolve = errors.New("backend resolution failed")

// Resolve builds the backend command for the given mode. The endpoint
// must already be allocated; dev mode receives it as flags, production
// mode as environment variables.
func Resolve(mode Mode, cfg *config.Config, ep endpoint.Endpoint) (Command, error) {
	if cfg == nil {
		return Command{}, fmt.Errorf("%w: config is required", ErrResolve)
	}
	if !ep.Valid() {
		return Command{}, fmt.Errorf("%w: endpoint not allocated", ErrResolve)
	}

	switch mode {
	case ModeDevelopment:
		return resolveDev(cfg, ep), nil
	case ModeProduction:
		return resolveProd(cfg, ep)
	default:
		return Command{}, fmt.Errorf("%w: unknown mode %q", ErrResolve, mode)
	}
}

func resolveDev(cfg *config.Config, ep endpoint.Endpoint) Command {
	return Command{
		Path: cfg.Backend.PythonBin,
		Args: []string{
			"-m", "uvicorn", appTarget,
			"--host", ep.Host,
			"--port", strconv.Itoa(int(ep.Port)),
		},
		Dir: cfg.Paths.ProjectRoot,
	}
}

func resolveProd(cfg *config.Config, ep endpoint.Endpoint) (Command, error) {
	path := cfg.Backend.BackendBin
	if path == "" {
		dir, err := resourcesDir(cfg)
		if err != nil {
			return Command{}, fmt.Errorf("%w: %w", ErrResolve, err)
		}
		path = filepath.Join(dir, sidecarName(runtime.GOOS, runtime.GOARCH))
	}
	return Command{
		Path: path,
		Env: map[string]string{
			EnvAPIHost: ep.Host,
			EnvAPIPort: strconv.Itoa(int(ep.Port)),
		},
	}, nil
}

// resourcesDir locates the directory holding packaged backend binaries:
// the configured resources dir, else the directory of the running
// executable.
func resourcesDir(cfg *config.Config) (string, error) {
	if cfg.Paths.ResourcesDir != "" {
		return cfg.Paths.ResourcesDir, nil
	}
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("determine resource directory: %w", err)
	}
	return filepath.Dir(exe), nil
}

// sidecarName names the packaged backend binary the way the bundler
// does: a fixed prefix plus the platform target triple, with .exe
// appended on Windows.
func sidecarName(goos, goarch string) string {
	name := "backend-" + targetTriple(goos, goarch)
	if goos == "windows" {
		name += ".exe"
	}
	return name
}

func targetTriple(goos, goarch string) string {
	arch := map[string]string{
		"amd64": "x86_64",
		"arm64": "aarch64",
		"386":   "i686",
	}[goarch]
	if arch == "" {
		arch = goarch
	}

	switch goos {
	case "darwin":
		return arch + "-apple-darwin"
	case "windows":
		return arch + "-pc-windows-msvc"
	case "linux":
		return arch + "-unknown-linux-gnu"
	default:
		return arch + "-unknown-" + goos
	}
}

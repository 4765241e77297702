// Package config loads, normalizes, and validates easyshell configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, loads conventional .env files, and honours
// environment fallbacks such as EASY_PYTHON_BIN and EASY_BACKEND_BIN. The
// Config type centralizes every knob the shell needs: backend launch mode
// and overrides, readiness probe timing, settings-window geometry, and log
// output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config

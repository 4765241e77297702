// Package lifecycle sequences the backend's life alongside the
// application's.
//
// Startup runs synchronously on a background setup goroutine: acquire
// the single-instance lock, allocate the loopback endpoint, resolve the
// backend command for the current build mode, spawn it under the
// supervisor, wait for readiness, then publish the endpoint to the UI
// through both the named event and direct script injection. Shutdown is
// wired to the main window's close signal: secondary windows close
// first, then the supervisor terminates the backend.
//
// Any failure before the backend is ready aborts startup; nothing is
// retried. The orchestrator also owns the settings-window singleton
// flow and the explicit state machine tracking the backend's progress
// from NotStarted to Terminated.
package lifecycle

// Package supervisor owns the backend child process.
//
// The running process handle lives in a single mutex-guarded slot shared
// between the startup goroutine and the window-close handler. The lock is
// held only to take or replace the handle, never across a blocking call.
// Spawn disables stdin and, where the platform supports it, places the
// child in its own process group so terminal signals aimed at the shell
// do not reach the backend. Shutdown is idempotent: it empties the slot,
// terminates whatever was there, and reports kill failures as warnings
// only since the application is exiting anyway.
package supervisor

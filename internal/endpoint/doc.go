// Package endpoint owns the loopback address the backend listens on.
//
// It allocates an OS-assigned ephemeral port by binding 127.0.0.1:0,
// reading the chosen port back, and releasing the listener so the backend
// process can bind it. The resulting Endpoint is the single source of
// truth for how the UI and any other component reach the backend; it is
// built once per application run and never mutated.
//
// The window between releasing the listener and the backend binding the
// port is an accepted race: another process could steal the port, which
// surfaces later as a readiness timeout rather than a distinct error.
package endpoint

// Package ui is the boundary between the lifecycle core and the
// rendering/windowing engine.
//
// The engine (a webview toolkit) is an external collaborator; this
// package defines the narrow surface the core drives: windows that can
// be shown, focused, closed, and injected with script, a registry that
// tracks the main window and creates the settings sub-window, and an
// emitter for named events. It also carries the typed signals the UI
// sends back to the core and the script payload that publishes the API
// base URL into a view's script context.
//
// Keep this package toolkit-free. Engine bindings implement these
// interfaces in the hosting application; tests use the fakes in
// testsupport.
package ui

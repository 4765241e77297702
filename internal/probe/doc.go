// Package probe waits for a spawned backend to start accepting TCP
// connections.
//
// The wait is a bounded retry loop: short-timeout dials with a sleep
// between attempts until one connects or the overall deadline elapses.
// It runs synchronously on the caller's goroutine and never overshoots
// the deadline by more than one interval. The clock is injectable so
// tests can drive the loop deterministically.
package probe

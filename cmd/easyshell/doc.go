// Package main hosts the easyshell entrypoint and command graph.
//
// The Cobra-based command tree wires the lifecycle orchestrator to a
// windowing engine (headless when run from a terminal), plus
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands or
// flags here.
package main

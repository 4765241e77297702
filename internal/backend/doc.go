// Package backend resolves the command that launches the Easy API backend.
//
// Two variants exist. Development runs the backend under a Python
// interpreter (uvicorn against the checked-out sources) and passes the
// allocated host/port as command-line flags. Production runs the packaged
// backend binary from the application's resource directory, named by
// target triple, and passes host/port through EASY_API_HOST and
// EASY_API_PORT instead.
//
// Resolution never checks that the candidate file exists; a missing
// binary surfaces as a spawn failure, keeping resolve errors for genuine
// configuration problems such as an undeterminable resource directory.
package backend

package ui

import (
	"encoding/json"
	"fmt"
)

// apiBaseGlobal is the property the injected script sets on window so
// clients that attached before the event fired can read the URL directly.
const apiBaseGlobal = "__EASY_API_BASE__"

// APIBaseScript builds the script that publishes the backend base URL
// into a view's page context: a global for late readers and a
// CustomEvent for listeners. Together with the emitted EventAPIBase this
// gives at-least-once, idempotent delivery regardless of when a client
// attaches.
func APIBaseScript(url string) string {
	quoted, _ := json.Marshal(url)
	return fmt.Sprintf(
		"window.%s = %s; window.dispatchEvent(new CustomEvent(%q, { detail: %s }));",
		apiBaseGlobal, quoted, EventAPIBase, quoted,
	)
}

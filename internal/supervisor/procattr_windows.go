//go:build windows

package supervisor

import (
	"os"
	"os/exec"
)

const supportsProcessGroups = false

func isolate(*exec.Cmd) {}

func terminate(p *os.Process) error {
	return p.Kill()
}

//go:build !windows

package supervisor

import (
	"os"
	"os/exec"
	"syscall"

	"golang.org/x/sys/unix"
)

const supportsProcessGroups = true

// isolate places the child in its own process group so signals delivered
// to the shell's controlling terminal do not propagate to the backend.
func isolate(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
}

// terminate kills the child's whole process group, falling back to the
// single process when the group kill is refused (for example when the
// child already exited and the group is gone).
func terminate(p *os.Process) error {
	if err := unix.Kill(-p.Pid, unix.SIGKILL); err == nil {
		return nil
	}
	return p.Kill()
}

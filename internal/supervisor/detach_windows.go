//go:build windows

package supervisor

import (
	"os/exec"
	"syscall"
)

// CREATE_BREAKAWAY_FROM_JOB is not exported by the syscall package.
const createBreakawayFromJob = 0x01000000

// setDetached keeps the backend out of the shell's console and implicit job
// object, so a crashing parent does not tear it down before Stop runs.
func setDetached(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP | createBreakawayFromJob,
	}
}

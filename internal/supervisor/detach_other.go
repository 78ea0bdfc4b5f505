//go:build !windows

package supervisor

import "os/exec"

// setDetached is a no-op on POSIX platforms; the child runs in its own
// process group only on Windows, where console inheritance is the problem.
func setDetached(cmd *exec.Cmd) {}

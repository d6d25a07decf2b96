//go:build unix

package wrapper

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func signalExitCode(state procState) (int, bool) {
	ws, ok := state.Sys().(syscall.WaitStatus)
	if !ok {
		return 0, false
	}
	if us := unix.WaitStatus(ws); us.Signaled() {
		return 128 + int(us.Signal()), true
	}
	return 0, false
}

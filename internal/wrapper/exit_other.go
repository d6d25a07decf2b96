//go:build !unix

package wrapper

// No signal termination outside unix; the generic fallback applies.
func signalExitCode(procState) (int, bool) {
	return 0, false
}

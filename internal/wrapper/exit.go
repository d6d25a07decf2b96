package wrapper

// procState is the subset of os.ProcessState the exit-code translation
// needs.
type procState interface {
	Exited() bool
	ExitCode() int
	Sys() any
}

// translateExit converts a finished child's state into the wrapper's exit
// code: an explicit exit code passes through verbatim, death by signal N
// becomes 128+N on platforms that have signals, anything else is 255.
func translateExit(state procState) int {
	if state.Exited() {
		return state.ExitCode()
	}
	if code, ok := signalExitCode(state); ok {
		return code
	}
	return 255
}

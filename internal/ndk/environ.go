package ndk

import "os"

// Environ is a read-only view of environment variables. Resolution reads
// through this interface so tests can supply a synthetic environment
// without touching the process state.
type Environ interface {
	Lookup(key string) (string, bool)
}

// OSEnviron reads the real process environment.
type OSEnviron struct{}

func (OSEnviron) Lookup(key string) (string, bool) {
	return os.LookupEnv(key)
}

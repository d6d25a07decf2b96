// Package wrapper re-invokes cargo with the environment needed to
// cross-compile for an Android target, then reports cargo's own exit code.
package wrapper

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/chenxiaolong/cargo-android/internal/ndk"
)

// Config is the wrapper's own configuration, read once from the environment
// at startup. Everything else in the environment belongs to cargo and the
// resolved toolchain.
type Config struct {
	Cargo   string // path to the real cargo executable
	Verbose bool   // dump injected variables to stderr before spawning
	Env     ndk.Environ
	Host    ndk.Host
}

// NewConfig builds the wrapper configuration from env.
func NewConfig(env ndk.Environ) (*Config, error) {
	cargo, ok := env.Lookup("CARGO")
	if !ok {
		return nil, fmt.Errorf("CARGO must be set")
	}
	verbose, _ := env.Lookup("CARGO_ANDROID_VERBOSE")

	return &Config{
		Cargo:   cargo,
		Verbose: verbose != "",
		Env:     env,
		Host:    ndk.CurrentHost(),
	}, nil
}

// Driver spawns the build driver and reports its exit code. The extra
// variables are layered on top of the parent environment.
type Driver interface {
	Run(name string, args []string, extraEnv map[string]string) (int, error)
}

// ExecDriver runs the child with inherited standard streams and blocks
// until it terminates. There is no timeout; interactive children work.
type ExecDriver struct{}

func (ExecDriver) Run(name string, args []string, extraEnv map[string]string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	env := os.Environ()
	for _, k := range sortedKeys(extraEnv) {
		env = append(env, k+"="+extraEnv[k])
	}
	cmd.Env = env

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("%s: %v", cmd, err)
	}
	if err := cmd.Wait(); err != nil && cmd.ProcessState == nil {
		return 0, fmt.Errorf("%s: %v", cmd, err)
	}
	return translateExit(cmd.ProcessState), nil
}

// Run scans cargo's arguments, resolves the NDK toolchain when an Android
// target is requested, and re-invokes cargo through driver. Resolution is
// all-or-nothing: on any error the child is never spawned.
func Run(cfg *Config, args []string, driver Driver) (int, error) {
	target, err := scanTarget(args)
	if err != nil {
		return 0, err
	}

	extra := map[string]string{}
	if target != "" && strings.Contains(target, "android") {
		tc, err := ndk.Resolve(target, cfg.Env, cfg.Host)
		if err != nil {
			return 0, err
		}
		extra = tc.Environ()
	}

	if cfg.Verbose {
		dumpEnv(os.Stderr, extra)
	}
	return driver.Run(cfg.Cargo, args, extra)
}

func dumpEnv(w io.Writer, vars map[string]string) {
	for _, k := range sortedKeys(vars) {
		fmt.Fprintf(w, "%s=%s\n", k, vars[k])
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

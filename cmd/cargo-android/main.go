// cargo-android is a cargo external subcommand that sets up the Android NDK
// cross-compilation environment before handing everything else to cargo.
//
// cargo invokes it as "cargo-android android <args...>", so the forwarded
// tail starts at os.Args[2]. That tail is scanned for --target and passed
// to cargo untouched.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/chenxiaolong/cargo-android/internal/ndk"
	"github.com/chenxiaolong/cargo-android/internal/wrapper"
)

func main() {
	os.Exit(run(os.Args))
}

func run(argv []string) int {
	var args []string
	if len(argv) > 2 {
		args = argv[2:]
	}

	cfg, err := wrapper.NewConfig(ndk.OSEnviron{})
	if err != nil {
		fatal(err)
		return 255
	}

	code, err := wrapper.Run(cfg, args, wrapper.ExecDriver{})
	if err != nil {
		fatal(err)
		return 255
	}
	return code
}

var errPrefix = color.New(color.FgRed, color.Bold).Sprint("error:")

func fatal(err error) {
	fmt.Fprintln(os.Stderr, errPrefix, err)
}

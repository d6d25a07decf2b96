package ndk

import "runtime"

// Host describes the NDK layout conventions of the machine running the
// build. The NDK only ships x86_64 host toolchains, so the prebuilt
// directory segment is always <os>-x86_64.
type Host struct {
	// PrebuiltDir is the directory name under toolchains/llvm/prebuilt.
	PrebuiltDir string
	// ExeSuffix is appended to native tool binaries (llvm-ar).
	ExeSuffix string
	// ClangSuffix is appended to the per-API clang driver, which is a
	// batch script on Windows.
	ClangSuffix string
}

// CurrentHost returns the conventions for the running OS.
func CurrentHost() Host {
	return hostFor(runtime.GOOS)
}

func hostFor(goos string) Host {
	switch goos {
	case "darwin":
		return Host{PrebuiltDir: "darwin-x86_64"}
	case "windows":
		return Host{PrebuiltDir: "windows-x86_64", ExeSuffix: ".exe", ClangSuffix: ".cmd"}
	default:
		return Host{PrebuiltDir: "linux-x86_64"}
	}
}

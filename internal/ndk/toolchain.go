// Package ndk resolves the Android NDK cross-compilation toolchain for a
// Rust target triple: the prebuilt llvm toolchain directory, the sysroot,
// the API level and the per-target tool binaries.
package ndk

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Toolchain holds the resolved paths and API level for one target triple.
type Toolchain struct {
	Triple  string
	API     uint8
	Dir     string
	Sysroot string
	AR      string
	Clang   string

	rustFlags    string
	hasRustFlags bool
}

// Triples whose NDK compiler binaries use a different prefix than the Rust
// target name. The environment variables still use the Rust name.
var compilerTriples = map[string]string{
	"armv7-linux-androideabi":       "armv7a-linux-androideabi",
	"thumbv7neon-linux-androideabi": "armv7a-linux-androideabi",
}

func compilerTriple(triple string) string {
	if t, ok := compilerTriples[triple]; ok {
		return t
	}
	return triple
}

// Resolve locates the toolchain for target under the host's NDK layout.
// It is all-or-nothing: on any error no partial result is returned.
func Resolve(target string, env Environ, host Host) (*Toolchain, error) {
	ndkRoot, ok := env.Lookup("ANDROID_NDK_ROOT")
	if !ok {
		return nil, fmt.Errorf("ANDROID_NDK_ROOT must be set when building for Android")
	}

	dir := filepath.Join(ndkRoot, "toolchains", "llvm", "prebuilt", host.PrebuiltDir)
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("toolchain directory not found: %s", dir)
	}

	sysroot := filepath.Join(dir, "sysroot")

	api, err := apiLevel(target, sysroot, env)
	if err != nil {
		return nil, err
	}

	tc := &Toolchain{
		Triple:  target,
		API:     api,
		Dir:     dir,
		Sysroot: sysroot,
		AR:      filepath.Join(dir, "bin", "llvm-ar"+host.ExeSuffix),
		Clang: filepath.Join(dir, "bin",
			fmt.Sprintf("%s%d-clang%s", compilerTriple(target), api, host.ClangSuffix)),
	}

	if target == "x86_64-linux-android" {
		if err := tc.addBuiltinsWorkaround(env); err != nil {
			return nil, err
		}
	}
	return tc, nil
}

// apiLevel returns the ANDROID_API override if set, otherwise the highest
// versioned platform directory under the sysroot for the target.
func apiLevel(target, sysroot string, env Environ) (uint8, error) {
	if v, ok := env.Lookup("ANDROID_API"); ok {
		api, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid ANDROID_API: %q", v)
		}
		return uint8(api), nil
	}

	libDir := filepath.Join(sysroot, "usr", "lib", target)
	entries, err := os.ReadDir(libDir)
	if err != nil {
		return 0, fmt.Errorf("%s: %v", libDir, err)
	}

	var max uint64
	found := false
	for _, e := range entries {
		api, err := strconv.ParseUint(e.Name(), 10, 8)
		if err != nil {
			continue
		}
		if !found || api > max {
			max = api
			found = true
		}
	}
	if !found {
		return 0, fmt.Errorf("failed to get API list from: %s", libDir)
	}
	return uint8(max), nil
}

// addBuiltinsWorkaround appends clang's builtins runtime library to the
// global rustc flags. Rust's prebuilt x86_64-linux-android standard library
// references compiler-rt symbols the NDK linker driver does not pull in on
// its own (rust-lang/rust#109717).
func (t *Toolchain) addBuiltinsWorkaround(env Environ) error {
	clangDir := filepath.Join(t.Dir, "lib", "clang")
	entries, err := os.ReadDir(clangDir)
	if err != nil {
		return fmt.Errorf("failed to list directory: %s: %v", clangDir, err)
	}
	if len(entries) == 0 {
		return fmt.Errorf("missing clang version: %s", clangDir)
	}

	rtDir := filepath.Join(clangDir, entries[0].Name(), "lib", "linux")
	if !utf8.ValidString(rtDir) {
		return fmt.Errorf("invalid UTF-8: %q", rtDir)
	}

	// Global flags completely override CARGO_TARGET_<triple>_RUSTFLAGS, so
	// the extra flags have to be appended to the global value.
	flags := parseRustFlags(env)
	flags = append(flags, "-L", rtDir, "-l", "static=clang_rt.builtins-x86_64-android")
	t.rustFlags = encodeRustFlags(flags)
	t.hasRustFlags = true
	return nil
}

// Environ returns the variables cargo needs to cross-compile for the
// target. The map is built fresh on each call and never touches the
// process environment.
func (t *Toolchain) Environ() map[string]string {
	upper := strings.ToUpper(strings.ReplaceAll(t.Triple, "-", "_"))

	vars := map[string]string{
		"AR_" + t.Triple:                       t.AR,
		"CC_" + t.Triple:                       t.Clang,
		"BINDGEN_EXTRA_CLANG_ARGS_" + t.Triple: "--sysroot=" + t.Sysroot,
		"CARGO_TARGET_" + upper + "_LINKER":    t.Clang,
	}
	if t.hasRustFlags {
		vars["CARGO_ENCODED_RUSTFLAGS"] = t.rustFlags
	}
	return vars
}

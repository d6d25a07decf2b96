package ndk

import "strings"

// flagSep is the unit separator cargo uses in CARGO_ENCODED_RUSTFLAGS.
const flagSep = "\x1f"

// parseRustFlags reads any pre-existing global rustc flags from env. The
// encoded form takes precedence over the plain space-separated RUSTFLAGS;
// only the latter is trimmed and stripped of empty tokens.
func parseRustFlags(env Environ) []string {
	if s, ok := env.Lookup("CARGO_ENCODED_RUSTFLAGS"); ok {
		return strings.Split(s, flagSep)
	}
	if s, ok := env.Lookup("RUSTFLAGS"); ok {
		var flags []string
		for _, f := range strings.Split(s, " ") {
			if f = strings.TrimSpace(f); f != "" {
				flags = append(flags, f)
			}
		}
		return flags
	}
	return nil
}

func encodeRustFlags(flags []string) string {
	return strings.Join(flags, flagSep)
}

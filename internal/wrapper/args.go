package wrapper

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// scanTarget finds the value of the first --target flag in cargo's argument
// list without consuming anything; cargo itself honors the first occurrence
// and so do we. Returns "" when no target was requested.
//
// Arguments that are not valid UTF-8 are skipped, unless the target value
// itself would have come from one (either a --target= form or the value
// after a bare --target), which is an error.
func scanTarget(args []string) (string, error) {
	nextIsTarget := false
	for _, arg := range args {
		if !utf8.ValidString(arg) {
			if nextIsTarget || strings.HasPrefix(arg, "--target=") {
				return "", fmt.Errorf("invalid UTF-8: %q", arg)
			}
			continue
		}

		if nextIsTarget {
			return arg, nil
		}
		if arg == "--target" {
			nextIsTarget = true
		} else if value, ok := strings.CutPrefix(arg, "--target="); ok {
			return value, nil
		}
	}
	return "", nil
}

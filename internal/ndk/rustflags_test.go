package ndk

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var parseRustFlagsTests = []struct {
	env  fakeEnv
	want []string
}{
	{
		env: fakeEnv{},
	},
	{
		env:  fakeEnv{"CARGO_ENCODED_RUSTFLAGS": "-C\x1fopt-level=3"},
		want: []string{"-C", "opt-level=3"},
	},
	{
		// The encoded form is split verbatim, empties included.
		env:  fakeEnv{"CARGO_ENCODED_RUSTFLAGS": ""},
		want: []string{""},
	},
	{
		env:  fakeEnv{"RUSTFLAGS": "-C opt-level=3"},
		want: []string{"-C", "opt-level=3"},
	},
	{
		// The space-separated form is trimmed and stripped of empties.
		env:  fakeEnv{"RUSTFLAGS": "  -C   link-arg=-s "},
		want: []string{"-C", "link-arg=-s"},
	},
	{
		env: fakeEnv{"RUSTFLAGS": "   "},
	},
	{
		// Encoded wins when both are set.
		env: fakeEnv{
			"CARGO_ENCODED_RUSTFLAGS": "-C\x1fdebuginfo=2",
			"RUSTFLAGS":               "-C opt-level=3",
		},
		want: []string{"-C", "debuginfo=2"},
	},
}

func TestParseRustFlags(t *testing.T) {
	for i, test := range parseRustFlagsTests {
		assert.Equal(t, test.want, parseRustFlags(test.env), "test #%d", i)
	}
}

func TestEncodeRustFlags(t *testing.T) {
	assert.Equal(t, "", encodeRustFlags(nil))
	assert.Equal(t, "-L\x1f/path", encodeRustFlags([]string{"-L", "/path"}))
}

package pipeline

// Notes:
// - Preprocess: tests NUL replacement, optional UTF-8 validation and that
//   the caller's slice is never modified.

import (
	"bytes"
	"testing"
	"unicode/utf8"
)

func TestPreprocess(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		validate bool
		want     string
	}{
		{"unchanged", "# Title\n", false, "# Title\n"},
		{"empty", "", true, ""},
		{"NUL replaced", "a\x00b\x00", false, "a\uFFFDb\uFFFD"},
		{"invalid kept without validation", "a\xffb", false, "a\xffb"},
		{"invalid replaced", "a\xffb", true, "a\uFFFDb"},
		{"invalid run is one replacement", "a\xff\xfe\xfdb", true, "a\uFFFDb"},
		{"truncated sequence", "a\xe2\x82", true, "a\uFFFD"},
		{"valid multibyte kept", "caf\u00e9 \u2014", true, "caf\u00e9 \u2014"},
		{"NUL and invalid", "\x00\xff", true, "\uFFFD\uFFFD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			in := []byte(tt.in)
			orig := bytes.Clone(in)

			got := Preprocess(in, tt.validate)
			if string(got) != tt.want {
				t.Errorf("Preprocess(%q, %v) = %q, want %q", tt.in, tt.validate, got, tt.want)
			}
			if !bytes.Equal(in, orig) {
				t.Errorf("Preprocess modified its input: %q", in)
			}
			if tt.validate && !utf8.Valid(got) {
				t.Errorf("validated output is not UTF-8: %q", got)
			}
		})
	}
}

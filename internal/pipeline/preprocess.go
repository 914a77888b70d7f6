package pipeline

import (
	"bytes"
)

// ReplacementChar is substituted for NUL bytes and, when validation is on,
// for invalid UTF-8 sequences.
const ReplacementChar = "\uFFFD"

// Preprocess prepares raw input for parsing. NUL bytes are always replaced
// with U+FFFD. When validateUTF8 is set, each maximal invalid UTF-8 sequence
// is also replaced with U+FFFD. The input slice is never modified.
func Preprocess(source []byte, validateUTF8 bool) []byte {
	out := source
	if bytes.IndexByte(out, 0) >= 0 {
		out = bytes.ReplaceAll(out, []byte{0}, []byte(ReplacementChar))
	}
	if validateUTF8 {
		out = bytes.ToValidUTF8(out, []byte(ReplacementChar))
	}
	return out
}

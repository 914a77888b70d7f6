package render

import (
	"strings"

	"github.com/muesli/reflow/wordwrap"
)

// Placeholders use Unicode Private Use Area characters. They never appear
// in rendered markup and survive the word wrapper unchanged.
const (
	protectedSpace   = "\uE000" // space the wrapper must not break at
	protectedNewline = "\uE001" // newline that is not a wrap point
	hardBreakMark    = "\uE002" // hard line break, expanded per format
)

var (
	protector = strings.NewReplacer(" ", protectedSpace, "\n", protectedNewline)
	restorer  = strings.NewReplacer(protectedSpace, " ", protectedNewline, "\n")
)

// protect makes s a single unbreakable word for the wrapper.
func protect(s string) string {
	return protector.Replace(s)
}

// restore turns placeholders back into the characters they stand for.
func restore(s string) string {
	return restorer.Replace(s)
}

// wrap breaks s at spaces so that no line exceeds width columns, unless a
// single word is longer than width. Existing newlines are kept. Hyphens are
// not break points. A width of 0 returns s unchanged.
func wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	if width == 1 {
		// wordwrap never breaks before a word as wide as its limit.
		lines := strings.Split(s, "\n")
		for i, l := range lines {
			lines[i] = strings.Join(strings.Fields(l), "\n")
		}
		return strings.Join(lines, "\n")
	}
	ww := wordwrap.NewWriter(width)
	ww.Breakpoints = nil
	_, _ = ww.Write([]byte(s))
	_ = ww.Close()
	return ww.String()
}

// narrow reduces a wrap width by a container's indentation. Wrapping
// stays enabled (width >= 1) once it was requested.
func narrow(width, by int) int {
	if width <= 0 {
		return 0
	}
	if width-by < 1 {
		return 1
	}
	return width - by
}

// escapeWords applies fn to every space- or newline-delimited word of s.
// Renderers use it to neutralize words that would act as markup when the
// wrapper moves them to the start of a line.
func escapeWords(s string, fn func(string) string) string {
	var b strings.Builder
	b.Grow(len(s))
	start := 0
	for i := 0; i <= len(s); i++ {
		if i < len(s) && s[i] != ' ' && s[i] != '\n' {
			continue
		}
		b.WriteString(fn(s[start:i]))
		if i < len(s) {
			b.WriteByte(s[i])
		}
		start = i + 1
	}
	return b.String()
}

// fillParagraph wraps inline output and splits it into restored lines.
// Hard breaks (hardBreakMark) split the paragraph into parts; each part is
// wrapped on its own and parts are joined with the lines from sep.
func fillParagraph(text string, width int, sep []string) []string {
	var lines []string
	for i, part := range strings.Split(text, hardBreakMark) {
		if i > 0 {
			lines = append(lines, sep...)
		}
		part = strings.Trim(part, " ")
		if part == "" {
			continue
		}
		lines = append(lines, strings.Split(restore(wrap(part, width)), "\n")...)
	}
	return lines
}

// singleLine collapses line breaks and hard break marks into single spaces,
// for text that must stay on one request line.
func singleLine(s string) string {
	return strings.Join(strings.Fields(strings.ReplaceAll(s, hardBreakMark, " ")), " ")
}

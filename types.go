package mdconv

import (
	"fmt"
	"strings"
)

// Format selects the renderer used for a conversion.
type Format int

// Output formats. The zero value is not a valid selector.
const (
	FormatNone Format = iota
	FormatHTML
	FormatXML
	FormatMan
	FormatCommonMark
	FormatLaTeX
)

// DefaultFormat is used when no format is requested.
const DefaultFormat = FormatHTML

var formatNames = map[Format]string{
	FormatHTML:       "html",
	FormatXML:        "xml",
	FormatMan:        "man",
	FormatCommonMark: "commonmark",
	FormatLaTeX:      "latex",
}

// Formats returns the valid format names in declaration order.
func Formats() []string {
	return []string{"html", "xml", "man", "commonmark", "latex"}
}

// ParseFormat converts a format name to a Format.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseFormat(name string) (Format, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for f, n := range formatNames {
		if n == normalized {
			return f, nil
		}
	}
	return FormatNone, fmt.Errorf("%w: %q (must be one of %s)", ErrUnknownFormat, name, strings.Join(Formats(), ", "))
}

// String returns the format name, or "Format(n)" for invalid values.
func (f Format) String() string {
	if n, ok := formatNames[f]; ok {
		return n
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Valid reports whether f is one of the five output formats.
func (f Format) Valid() bool {
	_, ok := formatNames[f]
	return ok
}

// Wraps reports whether the renderer for f honours the wrap width.
func (f Format) Wraps() bool {
	return f == FormatMan || f == FormatCommonMark || f == FormatLaTeX
}

// Options is a bitset of independent render switches.
type Options uint

// Render options. The zero value selects the defaults.
const (
	OptSourcePos    Options = 1 << iota // attach source positions
	OptHardBreaks                       // render soft breaks as hard breaks
	OptNoBreaks                         // render soft breaks as spaces
	OptUnsafe                           // pass raw HTML and dangerous URLs through
	OptSmart                            // typographic punctuation
	OptValidateUTF8                     // replace invalid UTF-8 with U+FFFD

	OptDefault Options = 0
)

// optionNames lists options in bit order; names match the CLI flags.
var optionNames = []struct {
	opt  Options
	name string
}{
	{OptSourcePos, "sourcepos"},
	{OptHardBreaks, "hardbreaks"},
	{OptNoBreaks, "nobreaks"},
	{OptUnsafe, "unsafe"},
	{OptSmart, "smart"},
	{OptValidateUTF8, "validate-utf8"},
}

// OptionNames returns every option name in bit order.
func OptionNames() []string {
	names := make([]string, len(optionNames))
	for i, o := range optionNames {
		names[i] = o.name
	}
	return names
}

// ParseOption converts a single option name to its bit.
func ParseOption(name string) (Options, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	for _, o := range optionNames {
		if o.name == normalized {
			return o.opt, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownOption, name)
}

// Has reports whether every bit of flag is set.
func (o Options) Has(flag Options) bool {
	return o&flag == flag
}

// String lists the set option names joined by "|", or "default".
func (o Options) String() string {
	var names []string
	for _, n := range optionNames {
		if o.Has(n.opt) {
			names = append(names, n.name)
		}
	}
	if len(names) == 0 {
		return "default"
	}
	return strings.Join(names, "|")
}

// Config holds the settings of one conversion.
// It is copied into the parser session, so later changes have no effect
// on a session already created.
type Config struct {
	Format    Format
	Options   Options
	Width     int  // wrap width; 0 disables wrapping
	Highlight bool // syntax-highlight fenced code (HTML only)
}

// DefaultConfig returns HTML output with no options and no wrapping.
func DefaultConfig() Config {
	return Config{Format: DefaultFormat}
}

// Validate checks the format selector and the wrap width.
func (c Config) Validate() error {
	if !c.Format.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownFormat, c.Format)
	}
	if c.Width < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means no wrap)", ErrInvalidWidth, c.Width)
	}
	return nil
}

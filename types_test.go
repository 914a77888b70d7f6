package mdconv

// Notes:
// - Format: tests name parsing (case, whitespace), String and Valid for
//   in-range and out-of-range values.
// - Options: tests name parsing, Has on combined bits and String ordering.
// - Config: tests Validate for format and width boundaries.

import (
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestParseFormat - Format selector parsing
// ---------------------------------------------------------------------------

func TestParseFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		want    Format
		wantErr error
	}{
		{"html", "html", FormatHTML, nil},
		{"xml", "xml", FormatXML, nil},
		{"man", "man", FormatMan, nil},
		{"commonmark", "commonmark", FormatCommonMark, nil},
		{"latex", "latex", FormatLaTeX, nil},
		{"upper case", "HTML", FormatHTML, nil},
		{"mixed case with spaces", "  LaTeX ", FormatLaTeX, nil},
		{"empty", "", FormatNone, ErrUnknownFormat},
		{"unknown", "pdf", FormatNone, ErrUnknownFormat},
		{"prefix only", "common", FormatNone, ErrUnknownFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ParseFormat(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseFormat(%q) error = %v, want %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}

	t.Run("error lists valid formats", func(t *testing.T) {
		t.Parallel()

		_, err := ParseFormat("rtf")
		for _, name := range Formats() {
			if !strings.Contains(err.Error(), name) {
				t.Errorf("error %q should mention %q", err, name)
			}
		}
	})
}

func TestFormat_StringAndValid(t *testing.T) {
	t.Parallel()

	for _, name := range Formats() {
		f, err := ParseFormat(name)
		if err != nil {
			t.Fatalf("ParseFormat(%q) error = %v", name, err)
		}
		if !f.Valid() {
			t.Errorf("%v.Valid() = false, want true", f)
		}
		if f.String() != name {
			t.Errorf("String() = %q, want %q", f.String(), name)
		}
	}

	for _, f := range []Format{FormatNone, Format(99), Format(-1)} {
		if f.Valid() {
			t.Errorf("Format(%d).Valid() = true, want false", int(f))
		}
		if !strings.HasPrefix(f.String(), "Format(") {
			t.Errorf("String() = %q, want Format(n)", f.String())
		}
	}

	if DefaultFormat != FormatHTML {
		t.Errorf("DefaultFormat = %v, want html", DefaultFormat)
	}
}

func TestFormat_Wraps(t *testing.T) {
	t.Parallel()

	want := map[Format]bool{
		FormatHTML:       false,
		FormatXML:        false,
		FormatMan:        true,
		FormatCommonMark: true,
		FormatLaTeX:      true,
	}
	for f, w := range want {
		if got := f.Wraps(); got != w {
			t.Errorf("%v.Wraps() = %v, want %v", f, got, w)
		}
	}
}

// ---------------------------------------------------------------------------
// TestOptions - Option bitset
// ---------------------------------------------------------------------------

func TestParseOption(t *testing.T) {
	t.Parallel()

	for _, name := range OptionNames() {
		opt, err := ParseOption(name)
		if err != nil {
			t.Fatalf("ParseOption(%q) error = %v", name, err)
		}
		if opt.String() != name {
			t.Errorf("ParseOption(%q).String() = %q", name, opt.String())
		}
	}

	if _, err := ParseOption("Smart "); err != nil {
		t.Errorf("ParseOption should ignore case and spaces, got %v", err)
	}
	if _, err := ParseOption("turbo"); !errors.Is(err, ErrUnknownOption) {
		t.Errorf("ParseOption(turbo) error = %v, want ErrUnknownOption", err)
	}
}

func TestOptions_HasAndString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		opts Options
		want string
	}{
		{"default", OptDefault, "default"},
		{"single", OptSmart, "smart"},
		{"bit order", OptValidateUTF8 | OptSourcePos | OptNoBreaks, "sourcepos|nobreaks|validate-utf8"},
		{"break pair", OptHardBreaks | OptNoBreaks, "hardbreaks|nobreaks"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.opts.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}

	combined := OptSmart | OptUnsafe
	if !combined.Has(OptSmart) || !combined.Has(OptUnsafe) || !combined.Has(OptSmart|OptUnsafe) {
		t.Error("Has should report every set bit")
	}
	if combined.Has(OptSourcePos) || combined.Has(OptSmart|OptSourcePos) {
		t.Error("Has should require all requested bits")
	}
}

// ---------------------------------------------------------------------------
// TestConfig_Validate - Config validation
// ---------------------------------------------------------------------------

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"default", DefaultConfig(), nil},
		{"every option", Config{Format: FormatMan, Options: OptSourcePos | OptHardBreaks | OptNoBreaks | OptUnsafe | OptSmart | OptValidateUTF8, Width: 80}, nil},
		{"zero format", Config{}, ErrUnknownFormat},
		{"out of range format", Config{Format: Format(42)}, ErrUnknownFormat},
		{"negative width", Config{Format: FormatLaTeX, Width: -1}, ErrInvalidWidth},
		{"width on html is accepted", Config{Format: FormatHTML, Width: 30}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

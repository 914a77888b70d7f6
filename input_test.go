package mdconv

// Notes:
// - ReadInputs: tests concatenation order, "-" as stdin, reading stdin at
//   most once and error wrapping for missing files.

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// countingReader counts reads that returned data.
type countingReader struct {
	r     io.Reader
	reads int
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	if n > 0 {
		c.reads++
	}
	return n, err
}

// ---------------------------------------------------------------------------
// TestReadInputs - Input concatenation
// ---------------------------------------------------------------------------

func TestReadInputs(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	a := filepath.Join(dir, "a.md")
	b := filepath.Join(dir, "b.md")
	if err := os.WriteFile(a, []byte("A\n"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}
	if err := os.WriteFile(b, []byte("B\n"), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	tests := []struct {
		name  string
		paths []string
		stdin string
		want  string
	}{
		{"no paths reads stdin", nil, "S\n", "S\n"},
		{"files in order", []string{b, a}, "unused", "B\nA\n"},
		{"dash reads stdin", []string{a, "-", b}, "S\n", "A\nS\nB\n"},
		{"stdin read once", []string{"-", a, "-"}, "S\n", "S\nA\n"},
		{"same file twice", []string{a, a}, "", "A\nA\n"},
		{"empty stdin", nil, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ReadInputs(tt.paths, strings.NewReader(tt.stdin))
			if err != nil {
				t.Fatalf("ReadInputs() error = %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("ReadInputs() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadInputs_Errors(t *testing.T) {
	t.Parallel()

	missing := filepath.Join(t.TempDir(), "missing.md")

	_, err := ReadInputs([]string{missing}, nil)
	if !errors.Is(err, ErrReadInput) {
		t.Errorf("error = %v, want ErrReadInput", err)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("error = %v, want os.ErrNotExist in chain", err)
	}
	if !strings.Contains(err.Error(), "missing.md") {
		t.Errorf("error %q should name the path", err)
	}

	_, err = ReadInputs(nil, io.MultiReader(strings.NewReader("x"), &errReader{}))
	if !errors.Is(err, ErrReadInput) || !strings.Contains(err.Error(), "<stdin>") {
		t.Errorf("stdin error = %v, want ErrReadInput naming <stdin>", err)
	}
}

func TestReadInputs_StdinOnce(t *testing.T) {
	t.Parallel()

	stdin := &countingReader{r: strings.NewReader("once\n")}
	got, err := ReadInputs([]string{"-", "-", "-"}, stdin)
	if err != nil {
		t.Fatalf("ReadInputs() error = %v", err)
	}
	if string(got) != "once\n" {
		t.Errorf("ReadInputs() = %q", got)
	}
	if stdin.reads != 1 {
		t.Errorf("stdin data reads = %d, want 1", stdin.reads)
	}
}

// ---------------------------------------------------------------------------
// TestReadSource - Single reader
// ---------------------------------------------------------------------------

func TestReadSource(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	buf.WriteString("kept ")
	if err := ReadSource(&buf, strings.NewReader("appended")); err != nil {
		t.Fatalf("ReadSource() error = %v", err)
	}
	if err := ReadSource(&buf, nil); err != nil {
		t.Fatalf("ReadSource(nil) error = %v", err)
	}
	if buf.String() != "kept appended" {
		t.Errorf("buffer = %q", buf.String())
	}
}

// errReader fails every read.
type errReader struct{}

func (*errReader) Read([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

package mdconv

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

// StdinName names standard input among the input paths.
const StdinName = "-"

// ReadInputs concatenates the named inputs in order into one buffer. With
// no paths, stdin is read. The path "-" also reads stdin; stdin is read at
// most once.
func ReadInputs(paths []string, stdin io.Reader) ([]byte, error) {
	var buf bytes.Buffer
	if len(paths) == 0 {
		if err := ReadSource(&buf, stdin); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadInput, "<stdin>", err)
		}
		return buf.Bytes(), nil
	}

	stdinRead := false
	for _, path := range paths {
		if path == StdinName {
			if stdinRead {
				continue
			}
			stdinRead = true
			if err := ReadSource(&buf, stdin); err != nil {
				return nil, fmt.Errorf("%w %q: %w", ErrReadInput, "<stdin>", err)
			}
			continue
		}
		if err := readFile(&buf, path); err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrReadInput, path, err)
		}
	}
	return buf.Bytes(), nil
}

// ReadSource appends everything r yields to buf. The buffer grows as
// needed; there is no size limit.
func ReadSource(buf *bytes.Buffer, r io.Reader) error {
	if r == nil {
		return nil
	}
	_, err := buf.ReadFrom(r)
	return err
}

func readFile(buf *bytes.Buffer, path string) error {
	f, err := os.Open(path) // #nosec G304 -- user-provided path
	if err != nil {
		return err
	}
	defer f.Close()
	return ReadSource(buf, f)
}

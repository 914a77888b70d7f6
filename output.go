package mdconv

import (
	"fmt"
	"io"
)

// Output is a rendered document. The buffer belongs to the Output until
// Release.
type Output struct {
	format   Format
	buf      []byte
	released bool
}

var _ io.WriterTo = (*Output)(nil)

// Format returns the format the output was rendered in.
func (o *Output) Format() Format {
	return o.format
}

// Bytes returns the rendered bytes. The slice is only valid until Release.
func (o *Output) Bytes() []byte {
	return o.buf
}

// Len returns the size of the rendered output in bytes.
func (o *Output) Len() int {
	return len(o.buf)
}

// WriteTo writes the rendered bytes to w unchanged.
func (o *Output) WriteTo(w io.Writer) (int64, error) {
	if o.released {
		return 0, ErrOutputReleased
	}
	n, err := w.Write(o.buf)
	if err != nil {
		return int64(n), fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}
	if n != len(o.buf) {
		return int64(n), fmt.Errorf("%w: %w", ErrWriteOutput, io.ErrShortWrite)
	}
	return int64(n), nil
}

// Release drops the rendered buffer. A second call is a no-op.
func (o *Output) Release() {
	o.buf = nil
	o.released = true
}

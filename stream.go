package nhuff

import (
	"bufio"
	"fmt"
	"io"
)

// Writer encodes bytes written to it with a fixed Table and forwards the
// digit stream to an underlying writer.
type Writer struct {
	w   *bufio.Writer
	t   *Table
	buf []byte
	err error
}

// NewWriter returns a Writer encoding into w with t.
func NewWriter(w io.Writer, t *Table) *Writer {
	return &Writer{w: bufio.NewWriter(w), t: t}
}

// Write encodes p. A byte without a codeword fails the whole call before
// anything from p is forwarded.
func (w *Writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	enc, err := w.t.Encode(w.buf, p)
	if err != nil {
		return 0, err
	}
	w.buf = enc
	if _, err := w.w.Write(enc); err != nil {
		w.err = err
		return 0, err
	}
	return len(p), nil
}

// Close flushes buffered digits. It does not close the underlying writer.
func (w *Writer) Close() error {
	if w.err != nil {
		return w.err
	}
	w.err = w.w.Flush()
	return w.err
}

// Reader decodes a digit stream read from an underlying reader.
type Reader struct {
	r    *bufio.Reader
	t    *Table
	node int32
	off  int64
	err  error
}

// NewReader returns a Reader decoding digits from r with t.
func NewReader(r io.Reader, t *Table) *Reader {
	return &Reader{r: bufio.NewReader(r), t: t}
}

// Read fills p with decoded symbols. A stream ending inside a codeword
// yields ErrMalformedStream instead of io.EOF.
func (r *Reader) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && r.err == nil {
		c, err := r.r.ReadByte()
		if err == io.EOF {
			if r.node != 0 {
				err = fmt.Errorf("%w: stream ends inside a codeword at offset %d", ErrMalformedStream, r.off)
			}
			r.err = err
			break
		}
		if err != nil {
			r.err = err
			break
		}
		var (
			sym  byte
			emit bool
		)
		r.node, sym, emit, err = r.t.step(r.node, c, r.off)
		r.off++
		if err != nil {
			r.err = err
			break
		}
		if emit {
			p[n] = sym
			n++
		}
	}
	if n > 0 {
		return n, nil
	}
	return 0, r.err
}

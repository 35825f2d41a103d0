package nhuff

import "fmt"

// Encode appends the codeword of every input byte, in order, to buf[:0]
// and returns the result. buf may be nil. On ErrUnknownSymbol nothing is
// returned; the table must cover the whole alphabet of input.
func (t *Table) Encode(buf, input []byte) ([]byte, error) {
	if cap(buf) < len(input) {
		buf = make([]byte, 0, len(input))
	}
	out := buf[:0]
	for i, b := range input {
		c := t.codes[b]
		if c == "" {
			return nil, fmt.Errorf("%w: byte 0x%02x at offset %d", ErrUnknownSymbol, b, i)
		}
		out = append(out, c...)
	}
	return out, nil
}

// EncodeAll encodes input into a newly allocated slice.
func (t *Table) EncodeAll(input []byte) ([]byte, error) {
	return t.Encode(nil, input)
}

package nhuff

import (
	"fmt"
	"unsafe"
)

// step advances the decode state node by one digit character. It reports
// the symbol when the digit completes a codeword, in which case next is the
// root again. off is only used for error messages.
func (t *Table) step(node int32, c byte, off int64) (next int32, sym byte, emit bool, err error) {
	d := digitValue(c)
	if d < 0 || d >= t.radix {
		return 0, 0, false, fmt.Errorf("%w: invalid digit %q at offset %d for radix %d", ErrMalformedStream, c, off, t.radix)
	}
	next = t.trie[node].child[d]
	if next == 0 {
		return 0, 0, false, fmt.Errorf("%w: no codeword continues with %q at offset %d", ErrMalformedStream, c, off)
	}
	if n := &t.trie[next]; n.leaf {
		return 0, n.sym, true, nil
	}
	return next, 0, false, nil
}

// Decode parses src as a concatenation of codewords and appends the
// symbols to buf[:0]. buf may be nil. Decoding walks the code trie one digit
// at a time, so it runs in time linear in len(src).
//
// ErrMalformedStream is returned, with no output, for characters outside the
// radix alphabet, digit sequences that match no codeword, and streams that
// end in the middle of a codeword.
func (t *Table) Decode(buf, src []byte) ([]byte, error) {
	out := buf[:0]
	node := int32(0)
	for i, c := range src {
		var (
			sym  byte
			emit bool
			err  error
		)
		node, sym, emit, err = t.step(node, c, int64(i))
		if err != nil {
			return nil, err
		}
		if emit {
			out = append(out, sym)
		}
	}
	if node != 0 {
		return nil, fmt.Errorf("%w: stream ends inside a codeword", ErrMalformedStream)
	}
	return out, nil
}

// DecodeAll decodes src into a newly allocated slice.
func (t *Table) DecodeAll(src []byte) ([]byte, error) {
	return t.Decode(nil, src)
}

// DecodeString decodes a digit string into a newly allocated slice.
func (t *Table) DecodeString(s string) ([]byte, error) {
	return t.Decode(nil, unsafe.Slice(unsafe.StringData(s), len(s)))
}

// decodeScan is the reference decoder: at each position it tries prefixes
// of length 1, 2, ... until one is a codeword. Prefix-freedom makes the
// first hit the only one. It costs O(len(src) * MaxCodeLen) and exists to
// cross-check Decode.
func (t *Table) decodeScan(src []byte) ([]byte, error) {
	out := make([]byte, 0, len(src))
	for pos := 0; pos < len(src); {
		matched := false
		for l := 1; l <= t.maxLen && pos+l <= len(src); l++ {
			if sym, ok := t.inverse[string(src[pos:pos+l])]; ok {
				out = append(out, sym)
				pos += l
				matched = true
				break
			}
		}
		if !matched {
			return nil, fmt.Errorf("%w: no codeword at offset %d", ErrMalformedStream, pos)
		}
	}
	return out, nil
}

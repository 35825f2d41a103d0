package nhuff

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// WriteTo serializes the Table to w. The encoded digit stream never carries
// the table, so this is how a table travels out-of-band to the decoder.
// Layout:
// - 8 bytes version word: (version<<32)|(radix<<16)|nSymbols
// - per symbol, in depth-first order: symbol byte, codeword length byte,
// codeword digits
func (t *Table) WriteTo(w io.Writer) (int64, error) {
	ver := (tableVersion << 32) |
		(uint64(t.radix) << 16) |
		uint64(len(t.order))
	var (
		n    int64
		buf8 [8]byte
	)
	binary.LittleEndian.PutUint64(buf8[:], ver)
	if nn, err := w.Write(buf8[:]); err != nil {
		return n, err
	} else {
		n += int64(nn)
	}
	entry := make([]byte, 0, 2+t.maxLen)
	for _, sym := range t.order {
		code := t.codes[sym]
		entry = append(entry[:0], sym, byte(len(code)))
		entry = append(entry, code...)
		if nn, err := w.Write(entry); err != nil {
			return n, err
		} else {
			n += int64(nn)
		}
	}
	return n, nil
}

// ReadFrom deserializes a Table from r. The codewords are re-validated:
// every digit must be below the radix and the set must be prefix-free.
func (t *Table) ReadFrom(r io.Reader) (int64, error) {
	var (
		n   int64
		hdr [8]byte
	)
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return n, err
	}
	n += 8
	ver := binary.LittleEndian.Uint64(hdr[:])
	if ver>>32 != tableVersion {
		return n, ErrBadVersion
	}
	radix := int((ver >> 16) & 0xFFFF)
	if err := checkRadix(radix); err != nil {
		return n, err
	}
	count := int(ver & 0xFFFF)
	if count == 0 || count > 256 {
		return n, fmt.Errorf("%w: %d symbols", ErrMalformedTable, count)
	}

	entries := make([]codeEntry, 0, count)
	var (
		head [2]byte
		code [maxCodeLen]byte
	)
	for range count {
		if _, err := io.ReadFull(r, head[:]); err != nil {
			return n, err
		}
		n += 2
		l := int(head[1])
		if _, err := io.ReadFull(r, code[:l]); err != nil {
			return n, err
		}
		n += int64(l)
		entries = append(entries, codeEntry{sym: head[0], code: string(code[:l])})
	}

	tbl, err := newTable(radix, entries)
	if err != nil {
		return n, err
	}
	*t = *tbl
	return n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t *Table) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := t.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Table) UnmarshalBinary(data []byte) error {
	_, err := t.ReadFrom(bytes.NewReader(data))
	return err
}

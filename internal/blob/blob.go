// Package blob frames serialized code tables for storage: a one-byte codec
// tag followed by the table bytes, optionally zstd-compressed.
package blob

import (
	"errors"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/axiomhq/nhuff"
)

type Codec byte

const (
	None Codec = iota
	Zstd
)

var ErrUnknownCodec = errors.New("blob: unknown codec")

func (c Codec) String() string {
	switch c {
	case None:
		return "none"
	case Zstd:
		return "zstd"
	}
	return fmt.Sprintf("codec(%d)", byte(c))
}

// ParseCodec maps a codec name to its Codec.
func ParseCodec(s string) (Codec, error) {
	switch s {
	case "none", "":
		return None, nil
	case "zstd":
		return Zstd, nil
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownCodec, s)
}

// --- ZSTD helpers ---

func mustNewZstdEncoder() *zstd.Encoder {
	enc, err := zstd.NewWriter(
		nil,
		zstd.WithEncoderConcurrency(1),
		zstd.WithEncoderLevel(zstd.SpeedBetterCompression),
		zstd.WithLowerEncoderMem(true),
	)
	if err != nil {
		panic(err)
	}
	return enc
}

func mustNewZstdDecoder() *zstd.Decoder {
	dec, err := zstd.NewReader(
		nil,
		zstd.WithDecoderConcurrency(1),
		zstd.WithDecoderLowmem(true),
	)
	if err != nil {
		panic(err)
	}
	return dec
}

var zstdEncPool = sync.Pool{
	New: func() any {
		return mustNewZstdEncoder()
	},
}

var zstdDecPool = sync.Pool{
	New: func() any {
		return mustNewZstdDecoder()
	},
}

// Pack prefixes data with the codec tag and compresses it as requested.
func Pack(c Codec, data []byte) ([]byte, error) {
	switch c {
	case None:
		return append([]byte{byte(None)}, data...), nil
	case Zstd:
		enc := zstdEncPool.Get().(*zstd.Encoder)
		out := enc.EncodeAll(data, []byte{byte(Zstd)})
		zstdEncPool.Put(enc)
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, byte(c))
}

// Unpack reverses Pack.
func Unpack(b []byte) ([]byte, error) {
	if len(b) == 0 {
		return nil, errors.New("blob: empty")
	}
	switch Codec(b[0]) {
	case None:
		return b[1:], nil
	case Zstd:
		dec := zstdDecPool.Get().(*zstd.Decoder)
		out, err := dec.DecodeAll(b[1:], nil)
		zstdDecPool.Put(dec)
		if err != nil {
			return nil, fmt.Errorf("blob: zstd: %w", err)
		}
		return out, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownCodec, b[0])
}

// MarshalTable serializes t and packs it with c.
func MarshalTable(t *nhuff.Table, c Codec) ([]byte, error) {
	raw, err := t.MarshalBinary()
	if err != nil {
		return nil, err
	}
	return Pack(c, raw)
}

// UnmarshalTable unpacks b and deserializes the table inside.
func UnmarshalTable(b []byte) (*nhuff.Table, error) {
	raw, err := Unpack(b)
	if err != nil {
		return nil, err
	}
	var t nhuff.Table
	if err := t.UnmarshalBinary(raw); err != nil {
		return nil, err
	}
	return &t, nil
}

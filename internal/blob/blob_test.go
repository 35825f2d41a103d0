package blob

import (
	"bytes"
	"errors"
	"testing"

	"github.com/axiomhq/nhuff"
)

func TestPackUnpack(t *testing.T) {
	data := bytes.Repeat([]byte("table bytes "), 100)
	for _, c := range []Codec{None, Zstd} {
		t.Run(c.String(), func(t *testing.T) {
			packed, err := Pack(c, data)
			if err != nil {
				t.Fatalf("pack: %v", err)
			}
			if Codec(packed[0]) != c {
				t.Fatalf("tag %d", packed[0])
			}
			if c == Zstd && len(packed) >= len(data) {
				t.Fatalf("zstd did not shrink repetitive data: %d >= %d", len(packed), len(data))
			}
			got, err := Unpack(packed)
			if err != nil {
				t.Fatalf("unpack: %v", err)
			}
			if !bytes.Equal(got, data) {
				t.Fatalf("mismatch")
			}
		})
	}
}

func TestUnpackErrors(t *testing.T) {
	if _, err := Unpack(nil); err == nil {
		t.Fatalf("empty blob accepted")
	}
	if _, err := Unpack([]byte{9, 1, 2}); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("unknown tag: %v", err)
	}
	if _, err := Unpack(append([]byte{byte(Zstd)}, "definitely not zstd"...)); err == nil {
		t.Fatalf("corrupt zstd accepted")
	}
	if _, err := Pack(Codec(7), nil); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("pack unknown codec: %v", err)
	}
}

func TestParseCodec(t *testing.T) {
	for in, want := range map[string]Codec{"": None, "none": None, "zstd": Zstd} {
		got, err := ParseCodec(in)
		if err != nil || got != want {
			t.Fatalf("ParseCodec(%q)=%v,%v", in, got, err)
		}
	}
	if _, err := ParseCodec("gzip"); !errors.Is(err, ErrUnknownCodec) {
		t.Fatalf("gzip: %v", err)
	}
}

func TestTableRoundtrip(t *testing.T) {
	input := []byte("out-of-band tables travel in blobs")
	tbl, err := nhuff.Train(input, 4)
	if err != nil {
		t.Fatalf("train: %v", err)
	}
	b, err := MarshalTable(tbl, Zstd)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	tbl2, err := UnmarshalTable(b)
	if err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	enc, _ := tbl.EncodeAll(input)
	got, err := tbl2.DecodeAll(enc)
	if err != nil || !bytes.Equal(got, input) {
		t.Fatalf("roundtrip: %v", err)
	}
}

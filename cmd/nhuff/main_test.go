package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEncodeDecodeFiles(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	enc := filepath.Join(dir, "in.huf")
	out := filepath.Join(dir, "out.txt")
	data := []byte("the file layer only moves bytes around; the codec does the work\n")
	if err := os.WriteFile(in, data, 0o644); err != nil {
		t.Fatal(err)
	}

	for _, z := range []string{"-z=true", "-z=false"} {
		var stdout bytes.Buffer
		if err := runEncode([]string{"-d", "3", z, in, enc}, &stdout); err != nil {
			t.Fatalf("encode %s: %v", z, err)
		}
		if _, err := os.Stat(enc + ".tab"); err != nil {
			t.Fatalf("table file: %v", err)
		}
		digits, _ := os.ReadFile(enc)
		if strings.Trim(string(digits), "012") != "" {
			t.Fatalf("non-ternary output")
		}

		if err := runDecode([]string{enc, out}, &stdout); err != nil {
			t.Fatalf("decode: %v", err)
		}
		got, _ := os.ReadFile(out)
		if !bytes.Equal(got, data) {
			t.Fatalf("roundtrip mismatch")
		}
	}
}

func TestDecodeTruncatedLeavesNoOutput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	enc := filepath.Join(dir, "in.huf")
	out := filepath.Join(dir, "out.txt")
	if err := os.WriteFile(in, []byte("ccccbbbaa"), 0o644); err != nil {
		t.Fatal(err)
	}
	var stdout bytes.Buffer
	if err := runEncode([]string{in, enc}, &stdout); err != nil {
		t.Fatalf("encode: %v", err)
	}
	digits, _ := os.ReadFile(enc)
	if err := os.WriteFile(enc, digits[:len(digits)-1], 0o644); err != nil {
		t.Fatal(err)
	}
	if err := runDecode([]string{enc, out}, &stdout); err == nil {
		t.Fatalf("truncated stream decoded")
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Fatalf("output written despite failure: %v", err)
	}
}

func TestStatAndTree(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	if err := os.WriteFile(in, []byte("aabbbcccc"), 0o644); err != nil {
		t.Fatal(err)
	}

	var stdout bytes.Buffer
	if err := runStat([]string{"-d", "2, 3", in}, &stdout); err != nil {
		t.Fatalf("stat: %v", err)
	}
	if !strings.Contains(stdout.String(), "distinct:") {
		t.Fatalf("stat output %q", stdout.String())
	}

	stdout.Reset()
	if err := runTree([]string{in}, &stdout); err != nil {
		t.Fatalf("tree: %v", err)
	}
	if !strings.HasPrefix(stdout.String(), "(9, -)\n") {
		t.Fatalf("tree output %q", stdout.String())
	}

	if err := runStat([]string{"-d", "2,x", in}, &stdout); err == nil {
		t.Fatalf("bad radix list accepted")
	}
}

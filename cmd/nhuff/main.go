package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/axiomhq/nhuff"
	"github.com/axiomhq/nhuff/internal/blob"
	"github.com/axiomhq/nhuff/internal/report"
	"github.com/axiomhq/nhuff/pkg/logger"
)

const usage = `Encode: nhuff encode [-d radix] [-z=false] <input> <output>   (table written to <output>.tab)
Decode: nhuff decode [-table path] <input> <output>
Stats:  nhuff stat [-d 2,3,16] <input>
Tree:   nhuff tree [-d radix] <input>
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	var err error
	switch os.Args[1] {
	case "encode":
		err = runEncode(os.Args[2:], os.Stdout)
	case "decode":
		err = runDecode(os.Args[2:], os.Stdout)
	case "stat":
		err = runStat(os.Args[2:], os.Stdout)
	case "tree":
		err = runTree(os.Args[2:], os.Stdout)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, os.Args[1]+" error:", err)
		os.Exit(1)
	}
}

func tablePath(output string) string { return output + ".tab" }

func runEncode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("encode", flag.ContinueOnError)
	radix := fs.Int("d", 2, "radix (2..36)")
	compressTable := fs.Bool("z", true, "zstd-compress the table file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("want <input> <output>, got %d arguments", fs.NArg())
	}
	in, out := fs.Arg(0), fs.Arg(1)

	data, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	start := time.Now()
	tbl, err := nhuff.Train(data, *radix, nhuff.WithLogger(logger.New()))
	if err != nil {
		return err
	}
	enc, err := tbl.EncodeAll(data)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	codec := blob.None
	if *compressTable {
		codec = blob.Zstd
	}
	tb, err := blob.MarshalTable(tbl, codec)
	if err != nil {
		return err
	}
	if err := writeFileAtomic(tablePath(out), tb); err != nil {
		return err
	}
	if err := writeFileAtomic(out, enc); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Encoded %s (radix=%d, %d symbols) → %s (%d digits) in %s\n",
		in, *radix, tbl.Len(), out, len(enc), elapsed)
	return nil
}

func runDecode(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("decode", flag.ContinueOnError)
	table := fs.String("table", "", "table file (default <input>.tab)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("want <input> <output>, got %d arguments", fs.NArg())
	}
	in, out := fs.Arg(0), fs.Arg(1)
	if *table == "" {
		*table = tablePath(in)
	}

	tb, err := os.ReadFile(*table)
	if err != nil {
		return err
	}
	tbl, err := blob.UnmarshalTable(tb)
	if err != nil {
		return fmt.Errorf("table %s: %w", *table, err)
	}
	digits, err := os.ReadFile(in)
	if err != nil {
		return err
	}
	start := time.Now()
	dec, err := tbl.DecodeAll(digits)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	if err := writeFileAtomic(out, dec); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Decoded %s → %s (%d bytes) in %s\n", in, out, len(dec), elapsed)
	return nil
}

func runStat(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("stat", flag.ContinueOnError)
	radixes := fs.String("d", "2,3,4,8,16,36", "comma-separated radixes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("want <input>, got %d arguments", fs.NArg())
	}
	ds, err := parseRadixes(*radixes)
	if err != nil {
		return err
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	r, err := report.Build(data, ds, nil)
	if err != nil {
		return err
	}
	_, err = r.WriteTo(stdout)
	return err
}

func runTree(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("tree", flag.ContinueOnError)
	radix := fs.Int("d", 2, "radix (2..36)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("want <input>, got %d arguments", fs.NArg())
	}
	data, err := os.ReadFile(fs.Arg(0))
	if err != nil {
		return err
	}
	f, err := nhuff.Count(data)
	if err != nil {
		return err
	}
	root, err := nhuff.BuildTree(f.Weights(), *radix)
	if err != nil {
		return err
	}
	_, err = root.WriteTo(stdout)
	return err
}

func parseRadixes(s string) ([]int, error) {
	var out []int
	for _, part := range strings.Split(s, ",") {
		d, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("radix %q: %w", part, err)
		}
		out = append(out, d)
	}
	return out, nil
}

// writeFileAtomic writes data next to path and renames it into place, so a
// failed run never leaves a partial output file.
func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

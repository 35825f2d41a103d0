// Package report measures how an input codes under several radixes and
// sets the result against the Shannon bound and a binary huff0 block coder.
package report

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"

	"github.com/klauspost/compress"
	"github.com/klauspost/compress/huff0"

	"github.com/axiomhq/nhuff"
	"github.com/axiomhq/nhuff/pkg/logger"
)

// RadixStat describes the code built for one radix.
type RadixStat struct {
	Radix        int
	MaxCodeLen   int
	AvgDigits    float64 // expected codeword length in digits
	EquivBits    float64 // AvgDigits * log2(Radix)
	EncodedBytes int     // length of the digit stream
	EncodeTime   time.Duration
	DecodeTime   time.Duration
}

// Report summarizes one input.
type Report struct {
	Bytes        int
	Distinct     int
	EntropyBits  float64 // Shannon entropy per byte
	ShannonBytes int     // entropy lower bound for the whole input
	Estimate     float64 // klauspost/compress compressibility estimate
	Huff0Bytes   int     // binary huff0 output, blockwise
	Radixes      []RadixStat
}

// Build trains, encodes and decodes data once per radix. A radix whose
// roundtrip does not reproduce data is an error.
func Build(data []byte, radixes []int, log logger.Logger) (*Report, error) {
	if log == nil {
		log = logger.Nop()
	}
	f, err := nhuff.Count(data)
	if err != nil {
		return nil, err
	}
	shannon := compress.ShannonEntropyBits(data)
	r := &Report{
		Bytes:        len(data),
		Distinct:     f.Len(),
		EntropyBits:  float64(shannon) / float64(len(data)),
		ShannonBytes: shannon / 8,
		Estimate:     compress.Estimate(data),
	}
	if r.Huff0Bytes, err = huff0Size(data); err != nil {
		return nil, err
	}

	for _, d := range radixes {
		st, err := measure(data, f, d)
		if err != nil {
			return nil, fmt.Errorf("radix %d: %w", d, err)
		}
		log.Infof("radix %d: %.3f digits/byte, encode %s, decode %s", d, st.AvgDigits, st.EncodeTime, st.DecodeTime)
		r.Radixes = append(r.Radixes, st)
	}
	return r, nil
}

func measure(data []byte, f *nhuff.Frequencies, radix int) (RadixStat, error) {
	st := RadixStat{Radix: radix}

	start := time.Now()
	tbl, err := nhuff.TrainFrequencies(f, radix)
	if err != nil {
		return st, err
	}
	enc, err := tbl.EncodeAll(data)
	if err != nil {
		return st, err
	}
	st.EncodeTime = time.Since(start)

	start = time.Now()
	dec, err := tbl.DecodeAll(enc)
	if err != nil {
		return st, err
	}
	st.DecodeTime = time.Since(start)
	if !bytes.Equal(dec, data) {
		return st, errors.New("roundtrip mismatch")
	}

	if st.AvgDigits, err = tbl.ExpectedLength(f); err != nil {
		return st, err
	}
	st.MaxCodeLen = tbl.MaxCodeLen()
	st.EquivBits = st.AvgDigits * math.Log2(float64(radix))
	st.EncodedBytes = len(enc)
	return st, nil
}

// huff0Size compresses data in huff0 blocks and sums the output sizes.
// Blocks huff0 refuses are counted raw, RLE blocks as one byte.
func huff0Size(data []byte) (int, error) {
	var (
		s     huff0.Scratch
		total int
	)
	s.Reuse = huff0.ReusePolicyNone
	for len(data) > 0 {
		n := min(len(data), huff0.BlockSizeMax)
		out, _, err := huff0.Compress1X(data[:n], &s)
		switch {
		case err == nil:
			total += len(out)
		case errors.Is(err, huff0.ErrIncompressible):
			total += n
		case errors.Is(err, huff0.ErrUseRLE):
			total++
		default:
			return 0, fmt.Errorf("huff0: %w", err)
		}
		data = data[n:]
	}
	return total, nil
}

// WriteTo prints the report as aligned text.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	fmt.Fprintf(cw, "bytes:\t%d\n", r.Bytes)
	fmt.Fprintf(cw, "distinct:\t%d\n", r.Distinct)
	fmt.Fprintf(cw, "entropy:\t%.4f bits/byte\n", r.EntropyBits)
	fmt.Fprintf(cw, "shannon limit:\t%d bytes\n", r.ShannonBytes)
	fmt.Fprintf(cw, "estimate:\t%.4f\n", r.Estimate)
	fmt.Fprintf(cw, "huff0:\t%d bytes\n\n", r.Huff0Bytes)
	if cw.err != nil {
		return cw.n, cw.err
	}

	tw := tabwriter.NewWriter(cw, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "radix\tmax len\tdigits/byte\tbits/byte\tencoded\tencode\tdecode")
	for _, st := range r.Radixes {
		fmt.Fprintf(tw, "%d\t%d\t%.4f\t%.4f\t%d\t%s\t%s\n",
			st.Radix, st.MaxCodeLen, st.AvgDigits, st.EquivBits, st.EncodedBytes, st.EncodeTime, st.DecodeTime)
	}
	if err := tw.Flush(); err != nil {
		return cw.n, err
	}
	return cw.n, cw.err
}

type countWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

package nhuff

import (
	"fmt"
	"sync"
)

// Weight pairs a symbol with its occurrence count.
type Weight struct {
	Symbol byte
	Count  uint64
}

// Frequencies tracks symbol counts for one input snapshot.
//
// Symbols are remembered in the order they were first seen; that order is
// the tie-break used when two symbols carry equal weight, which keeps tree
// construction reproducible for a given input.
type Frequencies struct {
	counts [256]uint64
	seen   [256]bool
	order  []byte // distinct symbols, first-seen order
	total  uint64
}

// Count tabulates the occurrences of every byte in data.
func Count(data []byte) (*Frequencies, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	f := &Frequencies{}
	f.add(data)
	return f, nil
}

// CountParallel counts data in up to parts partitions concurrently and
// merges the partial counts in partition order. The result is identical to
// Count(data), including first-seen order.
func CountParallel(data []byte, parts int) (*Frequencies, error) {
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}
	parts = min(max(parts, 1), len(data))
	if parts == 1 {
		return Count(data)
	}

	var (
		partial = make([]Frequencies, parts)
		size    = (len(data) + parts - 1) / parts
		wg      sync.WaitGroup
	)
	for i := range parts {
		start := i * size
		if start >= len(data) {
			break
		}
		end := min(start+size, len(data))
		wg.Add(1)
		go func(f *Frequencies, chunk []byte) {
			defer wg.Done()
			f.add(chunk)
		}(&partial[i], data[start:end])
	}
	wg.Wait()

	f := &Frequencies{}
	for i := range partial {
		f.Merge(&partial[i])
	}
	return f, nil
}

// NewFrequencies builds a table from explicit weights. Repeated symbols are
// summed; zero weights are kept so the symbol still receives a codeword.
func NewFrequencies(weights []Weight) (*Frequencies, error) {
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}
	f := &Frequencies{}
	for _, w := range weights {
		f.inc(w.Symbol, w.Count)
	}
	return f, nil
}

func (f *Frequencies) add(data []byte) {
	for _, b := range data {
		f.inc(b, 1)
	}
}

func (f *Frequencies) inc(sym byte, n uint64) {
	if !f.seen[sym] {
		f.seen[sym] = true
		f.order = append(f.order, sym)
	}
	f.counts[sym] += n
	f.total += n
}

// Merge adds the counts of other into f. Symbols new to f are appended in
// other's first-seen order.
func (f *Frequencies) Merge(other *Frequencies) {
	for _, sym := range other.order {
		f.inc(sym, other.counts[sym])
	}
}

// Count returns the occurrences of sym.
func (f *Frequencies) Count(sym byte) uint64 { return f.counts[sym] }

// Contains reports whether sym was seen.
func (f *Frequencies) Contains(sym byte) bool { return f.seen[sym] }

// Len returns the number of distinct symbols.
func (f *Frequencies) Len() int { return len(f.order) }

// Total returns the sum of all counts.
func (f *Frequencies) Total() uint64 { return f.total }

// Weights returns one pair per distinct symbol in first-seen order.
func (f *Frequencies) Weights() []Weight {
	out := make([]Weight, len(f.order))
	for i, sym := range f.order {
		out[i] = Weight{Symbol: sym, Count: f.counts[sym]}
	}
	return out
}

func (f *Frequencies) String() string {
	return fmt.Sprintf("Frequencies{distinct=%d total=%d}", f.Len(), f.total)
}

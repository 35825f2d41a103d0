package nhuff

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"
)

func TestCountBasic(t *testing.T) {
	f, err := Count([]byte("aabbbcccc"))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if f.Len() != 3 || f.Total() != 9 {
		t.Fatalf("len=%d total=%d", f.Len(), f.Total())
	}
	want := []Weight{{'a', 2}, {'b', 3}, {'c', 4}}
	got := f.Weights()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("weights[%d]=%v want %v", i, got[i], want[i])
		}
	}
	if f.Contains('z') || f.Count('z') != 0 {
		t.Fatalf("unexpected symbol z")
	}
}

func TestCountFirstSeenOrder(t *testing.T) {
	f, err := Count([]byte("zyxzyx"))
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	got := f.Weights()
	if got[0].Symbol != 'z' || got[1].Symbol != 'y' || got[2].Symbol != 'x' {
		t.Fatalf("order not first-seen: %v", got)
	}
}

func TestCountEmpty(t *testing.T) {
	if _, err := Count(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("Count(nil): %v", err)
	}
	if _, err := CountParallel(nil, 4); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("CountParallel(nil): %v", err)
	}
	if _, err := NewFrequencies(nil); !errors.Is(err, ErrEmptyInput) {
		t.Fatalf("NewFrequencies(nil): %v", err)
	}
}

func TestCountParallelMatchesCount(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	data := make([]byte, 10007)
	for i := range data {
		data[i] = byte(rng.Intn(40) + 'A')
	}
	want, _ := Count(data)
	for _, parts := range []int{0, 1, 2, 3, 8, 64, len(data) + 5} {
		got, err := CountParallel(data, parts)
		if err != nil {
			t.Fatalf("parts=%d: %v", parts, err)
		}
		if got.Total() != want.Total() || got.Len() != want.Len() {
			t.Fatalf("parts=%d: total/len mismatch", parts)
		}
		gw, ww := got.Weights(), want.Weights()
		for i := range ww {
			if gw[i] != ww[i] {
				t.Fatalf("parts=%d: weights[%d]=%v want %v", parts, i, gw[i], ww[i])
			}
		}
	}
}

func TestMergeAndNewFrequencies(t *testing.T) {
	a, _ := Count([]byte("abc"))
	b, _ := Count(bytes.Repeat([]byte("dc"), 3))
	a.Merge(b)
	if a.Count('c') != 4 || a.Count('d') != 3 || a.Len() != 4 || a.Total() != 9 {
		t.Fatalf("merge: %v %v", a, a.Weights())
	}

	f, err := NewFrequencies([]Weight{{'x', 0}, {'y', 2}, {'x', 3}})
	if err != nil {
		t.Fatalf("NewFrequencies: %v", err)
	}
	if f.Count('x') != 3 || f.Len() != 2 || f.Weights()[0].Symbol != 'x' {
		t.Fatalf("NewFrequencies: %v", f.Weights())
	}
}

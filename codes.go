package nhuff

import (
	"fmt"
	"maps"
)

// Table is an immutable code table: a bijection between symbols and
// codewords plus the decode trie derived from it. A Table is built by
// Generate, Train or ReadFrom and is safe for concurrent use.
type Table struct {
	radix   int
	codes   [256]string     // symbol -> codeword, "" when absent
	order   []byte          // symbols in depth-first (codeword) order
	inverse map[string]byte // codeword -> symbol
	maxLen  int
	trie    []trieNode // trie[0] is the root
}

// trieNode is one decode state. child holds trie indices; 0 means no edge,
// since the root is never a child.
type trieNode struct {
	child [MaxRadix]int32
	sym   byte
	leaf  bool
}

type codeEntry struct {
	sym  byte
	code string
}

// Generate walks the tree depth first, extending the path with digit i when
// descending into child i, and assigns each leaf the codeword spelled by its
// path. A lone leaf root receives the codeword "0".
func Generate(root *Node, radix int) (*Table, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, ErrEmptyInput
	}
	if root.Leaf() {
		return newTable(radix, []codeEntry{{sym: root.symbol, code: numerals[:1]}})
	}

	var (
		entries []codeEntry
		path    []int
	)
	var visit func(n *Node) error
	visit = func(n *Node) error {
		if n.Leaf() {
			code, err := pathToCode(path, radix)
			if err != nil {
				return err
			}
			entries = append(entries, codeEntry{sym: n.symbol, code: code})
			return nil
		}
		if len(n.children) > radix {
			return fmt.Errorf("%w: node has %d children", ErrInvalidRadix, len(n.children))
		}
		for i, c := range n.children {
			path = append(path, i)
			if err := visit(c); err != nil {
				return err
			}
			path = path[:len(path)-1]
		}
		return nil
	}
	if err := visit(root); err != nil {
		return nil, err
	}
	return newTable(radix, entries)
}

// newTable installs entries into the forward, inverse and trie structures,
// rejecting repeated symbols, repeated codewords and prefix collisions.
func newTable(radix int, entries []codeEntry) (*Table, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyInput
	}
	t := &Table{
		radix:   radix,
		order:   make([]byte, 0, len(entries)),
		inverse: make(map[string]byte, len(entries)),
		trie:    make([]trieNode, 1, 2*len(entries)),
	}
	for _, e := range entries {
		if len(e.code) == 0 || len(e.code) > maxCodeLen {
			return nil, fmt.Errorf("%w: codeword length %d for symbol %q", ErrMalformedTable, len(e.code), e.sym)
		}
		if prev, ok := t.inverse[e.code]; ok {
			return nil, fmt.Errorf("%w: %q assigned to %q and %q", ErrDuplicateCode, e.code, prev, e.sym)
		}
		if t.codes[e.sym] != "" {
			return nil, fmt.Errorf("%w: symbol %q listed twice", ErrMalformedTable, e.sym)
		}
		if err := t.insert(e); err != nil {
			return nil, err
		}
		t.codes[e.sym] = e.code
		t.inverse[e.code] = e.sym
		t.order = append(t.order, e.sym)
		t.maxLen = max(t.maxLen, len(e.code))
	}
	return t, nil
}

func (t *Table) insert(e codeEntry) error {
	node := int32(0)
	for i := 0; i < len(e.code); i++ {
		d := digitValue(e.code[i])
		if d < 0 || d >= t.radix {
			return fmt.Errorf("%w: digit %q in codeword %q exceeds radix %d", ErrMalformedTable, e.code[i], e.code, t.radix)
		}
		if t.trie[node].leaf {
			return fmt.Errorf("%w: codeword %q extends codeword of %q", ErrMalformedTable, e.code, t.trie[node].sym)
		}
		next := t.trie[node].child[d]
		if next == 0 {
			next = int32(len(t.trie))
			t.trie = append(t.trie, trieNode{})
			t.trie[node].child[d] = next
		}
		node = next
	}
	n := &t.trie[node]
	if n.leaf {
		return fmt.Errorf("%w: %q assigned to %q and %q", ErrDuplicateCode, e.code, n.sym, e.sym)
	}
	for _, c := range n.child {
		if c != 0 {
			return fmt.Errorf("%w: codeword %q of %q is a prefix of another codeword", ErrMalformedTable, e.code, e.sym)
		}
	}
	n.leaf = true
	n.sym = e.sym
	return nil
}

// Radix returns the digit alphabet size.
func (t *Table) Radix() int { return t.radix }

// Len returns the number of symbols with a codeword.
func (t *Table) Len() int { return len(t.order) }

// MaxCodeLen returns the length of the longest codeword.
func (t *Table) MaxCodeLen() int { return t.maxLen }

// Codeword returns the codeword for sym.
func (t *Table) Codeword(sym byte) (string, bool) {
	c := t.codes[sym]
	return c, c != ""
}

// Lookup returns the symbol whose codeword is code.
func (t *Table) Lookup(code string) (byte, bool) {
	sym, ok := t.inverse[code]
	return sym, ok
}

// Symbols returns the coded symbols in depth-first order.
func (t *Table) Symbols() []byte {
	return append([]byte(nil), t.order...)
}

// Codes returns a copy of the forward mapping.
func (t *Table) Codes() map[byte]string {
	out := make(map[byte]string, len(t.order))
	for _, sym := range t.order {
		out[sym] = t.codes[sym]
	}
	return out
}

// Inverse returns a copy of the codeword -> symbol mapping.
func (t *Table) Inverse() map[string]byte { return maps.Clone(t.inverse) }

// ExpectedLength returns the weighted mean codeword length, in digits,
// under the profile f. Every symbol of f must have a codeword.
func (t *Table) ExpectedLength(f *Frequencies) (float64, error) {
	if f == nil || f.Total() == 0 {
		return 0, ErrEmptyInput
	}
	var digits uint64
	for _, w := range f.Weights() {
		c := t.codes[w.Symbol]
		if c == "" {
			return 0, fmt.Errorf("%w: %q", ErrUnknownSymbol, w.Symbol)
		}
		digits += w.Count * uint64(len(c))
	}
	return float64(digits) / float64(f.Total()), nil
}

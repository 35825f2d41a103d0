package nhuff

import (
	"container/heap"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Node is a vertex of the merge tree: a leaf carrying one symbol, or an
// internal node owning 2..radix children whose weights sum to its own.
type Node struct {
	weight   uint64
	symbol   byte
	children []*Node
	seq      int // insertion order, breaks weight ties
}

// Leaf reports whether n carries a symbol.
func (n *Node) Leaf() bool { return len(n.children) == 0 }

// Symbol returns the leaf symbol; it is meaningless for internal nodes.
func (n *Node) Symbol() byte { return n.symbol }

// Weight returns the node weight.
func (n *Node) Weight() uint64 { return n.weight }

// Children returns the ordered children; child i is reached by digit i.
func (n *Node) Children() []*Node { return n.children }

// Depth returns the length of the longest root-to-leaf path.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.children {
		d = max(d, c.Depth()+1)
	}
	return d
}

// WriteTo dumps the tree one node per line, indented by depth with tabs.
// Leaves print as (weight, 'symbol'), internal nodes as (weight, -).
func (n *Node) WriteTo(w io.Writer) (int64, error) {
	var total int64
	var visit func(node *Node, level int) error
	visit = func(node *Node, level int) error {
		label := "-"
		if node.Leaf() {
			label = strconv.QuoteRuneToASCII(rune(node.symbol))
		}
		nn, err := fmt.Fprintf(w, "%s(%d, %s)\n", strings.Repeat("\t", level), node.weight, label)
		total += int64(nn)
		if err != nil {
			return err
		}
		for _, c := range node.children {
			if err := visit(c, level+1); err != nil {
				return err
			}
		}
		return nil
	}
	err := visit(n, 0)
	return total, err
}

// nodeHeap is a min-heap over (weight, seq). Merged nodes receive a seq
// larger than every existing node, so among equal weights they sort after
// the nodes already present.
type nodeHeap []*Node

func (h nodeHeap) Len() int { return len(h) }

func (h nodeHeap) Less(i, j int) bool {
	if h[i].weight != h[j].weight {
		return h[i].weight < h[j].weight
	}
	return h[i].seq < h[j].seq
}

func (h nodeHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *nodeHeap) Push(x any) { *h = append(*h, x.(*Node)) }

func (h *nodeHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[0 : n-1]
	return x
}

// firstMergeSize returns how many nodes the first merge combines so that
// every later merge takes exactly radix nodes and the last one leaves a
// single root.
func firstMergeSize(n, radix int) int {
	if n <= 1 {
		return n
	}
	return 2 + (n-2)%(radix-1)
}

// BuildTree constructs the optimal radix-ary merge tree for weights, which
// must list each symbol once. Equal weights are ordered by position in
// weights.
//
// A single symbol yields a lone leaf. Its weight should then be 1 (the
// whole probability mass); any other weight is logged as a warning.
func BuildTree(weights []Weight, radix int, opts ...Option) (*Node, error) {
	if err := checkRadix(radix); err != nil {
		return nil, err
	}
	if len(weights) == 0 {
		return nil, ErrEmptyInput
	}
	o := newOptions(opts)

	if len(weights) == 1 {
		w := weights[0]
		if w.Count != 1 {
			o.log.Warnf("nhuff: single symbol %q has weight %d, not a normalized probability of 1", w.Symbol, w.Count)
		}
		return &Node{weight: w.Count, symbol: w.Symbol}, nil
	}

	h := make(nodeHeap, len(weights))
	for i, w := range weights {
		h[i] = &Node{weight: w.Count, symbol: w.Symbol, seq: i}
	}
	heap.Init(&h)
	seq := len(weights)

	combine := func(m int) {
		children := make([]*Node, 0, m)
		var sum uint64
		for i := 0; i < m && h.Len() > 0; i++ {
			c := heap.Pop(&h).(*Node)
			children = append(children, c)
			sum += c.weight
		}
		heap.Push(&h, &Node{weight: sum, children: children, seq: seq})
		seq++
	}

	combine(firstMergeSize(h.Len(), radix))
	for h.Len() > 1 {
		combine(radix)
	}
	return heap.Pop(&h).(*Node), nil
}

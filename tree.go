package huffman

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// ErrEmptyInput is returned by Build when the frequency table contains no
// runes at all.  There is no Huffman tree for an empty alphabet.
var ErrEmptyInput = errors.New("huffman: cannot build a tree from an empty frequency table")

// Tree is a fully built Huffman tree.  All nodes live in a single arena
// owned by the Tree; Node handles address into it by index.  A Tree is
// immutable once Build returns it.
type Tree struct {
	nodes  []node
	leaves int
}

// Build constructs the Huffman tree for the given frequency table.
//
// The arena holds 2n-1 slots for n distinct runes.  The first n slots are
// leaves, created in the table's iteration order; each following slot is an
// internal node merging the two lowest-weight earlier slots not yet
// consumed by a previous merge.  When several unconsumed nodes share the
// lowest weight, the earliest slot wins.  This tie-break makes the exact
// shape deterministic for a fixed leaf order, though any weight-optimal
// tree would be an equally valid result.
//
// An empty table yields ErrEmptyInput.  A single-rune table yields a tree
// whose root is the lone leaf, with no merges performed.
func Build(table FreqTable) (*Tree, error) {
	leaves := make([]node, 0, table.Len())
	table.Each(func(ch rune, weight uint64) {
		leaves = append(leaves, node{ch: ch, weight: weight, left: noChild, right: noChild})
	})
	return buildFromLeaves(leaves)
}

// buildFromLeaves runs the merge loop over an explicit leaf order.
func buildFromLeaves(leaves []node) (*Tree, error) {
	n := len(leaves)
	if n == 0 {
		return nil, ErrEmptyInput
	}

	total := 2*n - 1
	nodes := make([]node, 0, total)
	nodes = append(nodes, leaves...)

	// consumed[i] records that slot i was already taken as a child.  This
	// replaces a parent back-reference on the node itself: the only thing
	// the merge loop needs to know about a parent is whether one exists.
	consumed := make([]bool, total)

	for len(nodes) < total {
		m1 := findMin(nodes, consumed)
		assert.Assertf(m1 != noChild, "no unconsumed node among %d slots", len(nodes))
		consumed[m1] = true

		m2 := findMin(nodes, consumed)
		assert.Assertf(m2 != noChild, "only one unconsumed node among %d slots", len(nodes))
		consumed[m2] = true

		nodes = append(nodes, node{
			ch:     InvalidRune,
			weight: nodes[m1].weight + nodes[m2].weight,
			left:   m1,
			right:  m2,
		})
	}

	return &Tree{nodes: nodes, leaves: n}, nil
}

// findMin returns the slot index of the lowest-weight node not yet consumed
// by a merge, or noChild if every slot is consumed.  The strict comparison
// keeps the first minimal slot on ties.
func findMin(nodes []node, consumed []bool) int32 {
	best := noChild
	var min uint64
	for i := range nodes {
		if consumed[i] {
			continue
		}
		if best == noChild || nodes[i].weight < min {
			best = int32(i)
			min = nodes[i].weight
		}
	}
	return best
}

// Root returns the handle to the root node.  Every other node is reachable
// from it through Left and Right.
func (t *Tree) Root() Node {
	return t.handle(int32(len(t.nodes)) - 1)
}

// NumNodes is the total number of nodes in the tree, always 2n-1 for n
// leaves.
func (t *Tree) NumNodes() int {
	return len(t.nodes)
}

// NumLeaves is the number of leaf nodes, one per distinct rune of the
// original input.
func (t *Tree) NumLeaves() int {
	return t.leaves
}

// Walk visits every node in depth-first pre-order, left child before right,
// calling fn with each node and its depth in edges below the root.
func (t *Tree) Walk(fn func(n Node, depth int)) {
	type stackItem struct {
		ref   int32
		depth int
	}

	stack := make([]stackItem, 0, 16)
	stack = append(stack, stackItem{int32(len(t.nodes)) - 1, 0})
	for len(stack) != 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		fn(t.handle(top.ref), top.depth)

		nd := t.nodes[top.ref]
		if !nd.isLeaf() {
			stack = append(stack, stackItem{nd.right, top.depth + 1})
			stack = append(stack, stackItem{nd.left, top.depth + 1})
		}
	}
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	fmt.Fprintf(&buf, "\tNumNodes() = %d\n", t.NumNodes())
	fmt.Fprintf(&buf, "\tNumLeaves() = %d\n", t.NumLeaves())
	t.Walk(func(n Node, depth int) {
		fmt.Fprintf(&buf, "\t%s%s\n", strings.Repeat("  ", depth), n)
	})
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) handle(ref int32) Node {
	if ref == noChild {
		return Node{}
	}
	return Node{tree: t, ref: ref}
}

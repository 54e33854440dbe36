package huffman

import (
	"fmt"
)

// InvalidRune is returned by Node.Rune to clearly indicate that no rune is
// being returned, i.e. for internal nodes and for the zero Node.
const InvalidRune = rune(-1)

// noChild marks an absent child slot.
const noChild = int32(-1)

// node is a single arena slot.  Leaves hold a rune and no children;
// internal nodes hold InvalidRune and exactly two child slot indexes.
type node struct {
	ch     rune
	weight uint64
	left   int32
	right  int32
}

func (nd node) isLeaf() bool {
	return nd.left == noChild && nd.right == noChild
}

// Node is a read-only handle to a single node of a Tree.  The zero Node is
// invalid; it is returned wherever a child is absent, and every accessor on
// it returns the corresponding zero or sentinel value.
type Node struct {
	tree *Tree
	ref  int32
}

// Valid reports whether this Node refers to an actual tree node.
func (n Node) Valid() bool {
	return n.tree != nil
}

// IsLeaf reports whether this Node is a leaf, i.e. holds a rune and has no
// children.
func (n Node) IsLeaf() bool {
	return n.tree != nil && n.tree.nodes[n.ref].isLeaf()
}

// Rune is the rune held by this leaf, or InvalidRune if this Node is an
// internal node or invalid.
func (n Node) Rune() rune {
	if !n.IsLeaf() {
		return InvalidRune
	}
	return n.tree.nodes[n.ref].ch
}

// Weight is this node's weight: the occurrence count of its rune for a
// leaf, or the sum of its children's weights for an internal node.
func (n Node) Weight() uint64 {
	if n.tree == nil {
		return 0
	}
	return n.tree.nodes[n.ref].weight
}

// Left is this node's left child, or the zero Node if this Node is a leaf
// or invalid.
func (n Node) Left() Node {
	if n.tree == nil {
		return Node{}
	}
	return n.tree.handle(n.tree.nodes[n.ref].left)
}

// Right is this node's right child, or the zero Node if this Node is a leaf
// or invalid.
func (n Node) Right() Node {
	if n.tree == nil {
		return Node{}
	}
	return n.tree.handle(n.tree.nodes[n.ref].right)
}

// String returns the string representation of this Node.
func (n Node) String() string {
	switch {
	case n.tree == nil:
		return "(no node)"
	case n.IsLeaf():
		return fmt.Sprintf("(leaf %q weight %d)", n.Rune(), n.Weight())
	default:
		return fmt.Sprintf("(node weight %d)", n.Weight())
	}
}

var _ fmt.Stringer = Node{}

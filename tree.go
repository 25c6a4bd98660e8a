package huffman

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/assert"
)

// NodeID identifies a node within a Tree.
type NodeID int32

// InvalidNode is returned by some methods to clearly indicate that no node is
// being returned.
const InvalidNode = NodeID(-1)

// Tree is a binary encoding tree.  Nodes live in an arena owned by the Tree
// and refer to their children by NodeID.
//
// Every node is either a leaf, which holds a Symbol and has no children, or
// an interior node, which has both a zero child and a one child and no
// Symbol.  The Tree API makes any other state unrepresentable.
//
// The zero value is an empty Tree with no root.
//
type Tree struct {
	nodes   []treeNode
	root    NodeID
	hasRoot bool
}

type treeNode struct {
	symbol Symbol
	zero   NodeID
	one    NodeID
}

// NewTree returns an empty Tree with room for capacity nodes.
func NewTree(capacity int) *Tree {
	return &Tree{nodes: make([]treeNode, 0, capacity)}
}

// AddLeaf adds a new leaf holding symbol.
func (t *Tree) AddLeaf(symbol Symbol) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{symbol: symbol, zero: InvalidNode, one: InvalidNode})
	return id
}

// AddInterior adds a new interior node whose children are zero and one.
// Both children must already exist in this Tree.
func (t *Tree) AddInterior(zero NodeID, one NodeID) NodeID {
	assert.Assertf(t.contains(zero), "zero child %d does not exist in tree of %d nodes", zero, len(t.nodes))
	assert.Assertf(t.contains(one), "one child %d does not exist in tree of %d nodes", one, len(t.nodes))
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{zero: zero, one: one})
	return id
}

// SetRoot designates the root of this Tree.
func (t *Tree) SetRoot(id NodeID) {
	assert.Assertf(t.contains(id), "root %d does not exist in tree of %d nodes", id, len(t.nodes))
	t.root = id
	t.hasRoot = true
}

// Root returns the root of this Tree, or InvalidNode if the Tree is empty.
func (t *Tree) Root() NodeID {
	if !t.hasRoot {
		return InvalidNode
	}
	return t.root
}

// Len returns the number of nodes in the arena.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// IsLeaf returns true iff id is a leaf.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.node(id).zero == InvalidNode
}

// Symbol returns the Symbol held by leaf id.
func (t *Tree) Symbol(id NodeID) Symbol {
	n := t.node(id)
	assert.Assertf(n.zero == InvalidNode, "node %d is not a leaf", id)
	return n.symbol
}

// Child returns the zero or one child of interior node id, as selected by
// bit.
func (t *Tree) Child(id NodeID, bit Bit) NodeID {
	n := t.node(id)
	assert.Assertf(n.zero != InvalidNode, "node %d is not an interior node", id)
	if bit == Zero {
		return n.zero
	}
	return n.one
}

// Zero returns the zero child of interior node id.
func (t *Tree) Zero(id NodeID) NodeID {
	return t.Child(id, Zero)
}

// One returns the one child of interior node id.
func (t *Tree) One(id NodeID) NodeID {
	return t.Child(id, One)
}

// NumLeaves returns the number of leaves reachable from the root.
func (t *Tree) NumLeaves() int {
	if !t.hasRoot {
		return 0
	}
	var count int
	t.walk(t.root, nil, func(id NodeID, path Bits) {
		if t.IsLeaf(id) {
			count++
		}
	})
	return count
}

// Height returns the length of the longest root-to-leaf path.  An empty tree
// and a single leaf both have height 0.
func (t *Tree) Height() int {
	if !t.hasRoot {
		return 0
	}
	var height int
	t.walk(t.root, nil, func(id NodeID, path Bits) {
		if len(path) > height {
			height = len(path)
		}
	})
	return height
}

// Equal returns true iff both trees have the same shape and the same symbols
// at the same leaves.  Arena layout is not compared.
func (t *Tree) Equal(other *Tree) bool {
	if !t.hasRoot || !other.hasRoot {
		return t.hasRoot == other.hasRoot
	}
	return equalSubtrees(t, t.root, other, other.root)
}

func equalSubtrees(a *Tree, aID NodeID, b *Tree, bID NodeID) bool {
	aLeaf, bLeaf := a.IsLeaf(aID), b.IsLeaf(bID)
	if aLeaf || bLeaf {
		return aLeaf && bLeaf && a.Symbol(aID) == b.Symbol(bID)
	}
	return equalSubtrees(a, a.Zero(aID), b, b.Zero(bID)) &&
		equalSubtrees(a, a.One(aID), b, b.One(bID))
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer.  Nodes are listed in pre-order, keyed by their path from the root.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if t.hasRoot {
		t.walk(t.root, nil, func(id NodeID, path Bits) {
			if t.IsLeaf(id) {
				fmt.Fprintf(&buf, "\tNode(%s) = %q\n", path, byte(t.Symbol(id)))
			} else {
				fmt.Fprintf(&buf, "\tNode(%s) = *\n", path)
			}
		})
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// walk visits id and its descendants in pre-order, zero child first.
func (t *Tree) walk(id NodeID, path Bits, fn func(NodeID, Bits)) {
	fn(id, path)
	if t.IsLeaf(id) {
		return
	}
	t.walk(t.Zero(id), append(path[:len(path):len(path)], Zero), fn)
	t.walk(t.One(id), append(path[:len(path):len(path)], One), fn)
}

func (t *Tree) contains(id NodeID) bool {
	return id >= 0 && int(id) < len(t.nodes)
}

func (t *Tree) node(id NodeID) treeNode {
	assert.Assertf(t.contains(id), "node %d does not exist in tree of %d nodes", id, len(t.nodes))
	return t.nodes[id]
}

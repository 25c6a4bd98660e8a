package huffman

import (
	"fmt"
)

// Flatten serializes t into its pre-order flat form.  Each leaf contributes a
// 0 bit to bits and its Symbol to leaves.  Each interior node contributes a 1
// bit, followed by the flat form of its zero child and then its one child.
//
// An empty tree flattens to empty sequences.
//
func Flatten(t *Tree) (bits Bits, leaves []Symbol) {
	if t.Root() == InvalidNode {
		return Bits{}, []Symbol{}
	}
	bits = make(Bits, 0, t.Len())
	leaves = make([]Symbol, 0, (t.Len()+1)/2)
	flattenNode(t, t.Root(), &bits, &leaves)
	return bits, leaves
}

func flattenNode(t *Tree, id NodeID, bits *Bits, leaves *[]Symbol) {
	if t.IsLeaf(id) {
		*bits = append(*bits, Zero)
		*leaves = append(*leaves, t.Symbol(id))
		return
	}
	*bits = append(*bits, One)
	flattenNode(t, t.Zero(id), bits, leaves)
	flattenNode(t, t.One(id), bits, leaves)
}

// Unflatten reconstructs the Tree whose flat form is (bits, leaves).  It is
// the exact inverse of Flatten.
//
// The flat form must describe exactly one non-empty tree with at most one
// leaf per Symbol: running out of bits or leaves, a bit other than 0 or 1,
// unconsumed bits or leaves, a repeated leaf Symbol, and more leaves than
// there are Symbols are all reported as ErrMalformedEncoding.
//
func Unflatten(bits Bits, leaves []Symbol) (*Tree, error) {
	if len(bits) == 0 {
		return nil, fmt.Errorf("empty tree bits: %w", ErrMalformedEncoding)
	}

	// With at most NumSymbols leaves the tree has at most 2*NumSymbols-1
	// nodes, which also bounds the recursion depth.
	if len(leaves) > NumSymbols {
		return nil, fmt.Errorf("%d tree leaves exceed the %d-symbol alphabet: %w", len(leaves), NumSymbols, ErrMalformedEncoding)
	}
	if len(bits) > 2*NumSymbols-1 {
		return nil, fmt.Errorf("%d tree bits exceed the %d-node limit: %w", len(bits), 2*NumSymbols-1, ErrMalformedEncoding)
	}

	u := unflattener{
		tree:   NewTree(len(bits)),
		bits:   bits,
		leaves: leaves,
	}
	root, err := u.node()
	if err != nil {
		return nil, err
	}
	if u.bitIndex != len(bits) {
		return nil, fmt.Errorf("%d trailing tree bits after complete tree: %w", len(bits)-u.bitIndex, ErrMalformedEncoding)
	}
	if u.leafIndex != len(leaves) {
		return nil, fmt.Errorf("%d trailing tree leaves after complete tree: %w", len(leaves)-u.leafIndex, ErrMalformedEncoding)
	}
	u.tree.SetRoot(root)
	return u.tree, nil
}

type unflattener struct {
	tree      *Tree
	bits      Bits
	leaves    []Symbol
	bitIndex  int
	leafIndex int
	seen      [NumSymbols]bool
}

func (u *unflattener) node() (NodeID, error) {
	if u.bitIndex >= len(u.bits) {
		return InvalidNode, fmt.Errorf("tree bits exhausted after %d bits: %w", u.bitIndex, ErrMalformedEncoding)
	}
	bit := u.bits[u.bitIndex]
	u.bitIndex++

	switch bit {
	case Zero:
		if u.leafIndex >= len(u.leaves) {
			return InvalidNode, fmt.Errorf("tree leaves exhausted after %d leaves: %w", u.leafIndex, ErrMalformedEncoding)
		}
		symbol := u.leaves[u.leafIndex]
		if u.seen[symbol] {
			return InvalidNode, fmt.Errorf("repeated tree leaf %q at index %d: %w", byte(symbol), u.leafIndex, ErrMalformedEncoding)
		}
		u.seen[symbol] = true
		u.leafIndex++
		return u.tree.AddLeaf(symbol), nil

	case One:
		zero, err := u.node()
		if err != nil {
			return InvalidNode, err
		}
		one, err := u.node()
		if err != nil {
			return InvalidNode, err
		}
		return u.tree.AddInterior(zero, one), nil

	default:
		return InvalidNode, fmt.Errorf("invalid tree bit %s at index %d: %w", bit, u.bitIndex-1, ErrMalformedEncoding)
	}
}

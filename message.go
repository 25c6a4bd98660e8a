package huffman

import (
	"bytes"
	"fmt"
	"io"
	"sort"
)

// PathTable maps each Symbol to its bit path from the root of a Tree.
type PathTable map[Symbol]Bits

// BuildPathTable computes the bit path of every leaf of t: a 0 for each step
// into a zero child and a 1 for each step into a one child.
//
// A tree consisting of a single leaf maps that leaf's Symbol to the empty
// path.  If a Symbol appears at more than one leaf, the leaf found first in
// pre-order wins.
//
func BuildPathTable(t *Tree) PathTable {
	if t.Root() == InvalidNode {
		return PathTable{}
	}
	return pathsFrom(t, t.Root())
}

func pathsFrom(t *Tree, id NodeID) PathTable {
	if t.IsLeaf(id) {
		return PathTable{t.Symbol(id): Bits{}}
	}
	zeroPaths := pathsFrom(t, t.Zero(id))
	onePaths := pathsFrom(t, t.One(id))
	out := make(PathTable, len(zeroPaths)+len(onePaths))
	for symbol, path := range zeroPaths {
		out[symbol] = prependBit(Zero, path)
	}
	for symbol, path := range onePaths {
		if _, found := out[symbol]; !found {
			out[symbol] = prependBit(One, path)
		}
	}
	return out
}

// Encode appends the path of each byte of text, in order.  It fails with
// ErrUnknownSymbol if some byte has no path.
func (table PathTable) Encode(text string) (Bits, error) {
	out := make(Bits, 0, len(text))
	for index := 0; index < len(text); index++ {
		path, found := table[Symbol(text[index])]
		if !found {
			return nil, fmt.Errorf("byte %q at index %d: %w", text[index], index, ErrUnknownSymbol)
		}
		out = append(out, path...)
	}
	return out, nil
}

// Dump writes a programmer-readable debugging dump of the PathTable to the
// given writer, in ascending Symbol order.
func (table PathTable) Dump(w io.Writer) (int64, error) {
	keys := make([]Symbol, 0, len(table))
	for symbol := range table {
		keys = append(keys, symbol)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	var buf bytes.Buffer
	buf.WriteString("PathTable{\n")
	for _, symbol := range keys {
		fmt.Fprintf(&buf, "\tEncode(%q) = %s\n", byte(symbol), table[symbol])
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// Encode encodes text against t.  Every byte of text must have a leaf in t.
func Encode(t *Tree, text string) (Bits, error) {
	if t.Root() == InvalidNode {
		return nil, fmt.Errorf("cannot encode against an empty tree: %w", ErrMalformedEncoding)
	}
	return BuildPathTable(t).Encode(text)
}

// Decode decodes bits against t.  Starting at the root, each bit selects the
// zero or one child; whenever a leaf is reached its Symbol is emitted and the
// walk restarts at the root.
//
// Decoding empty bits yields empty text.  A trailing partial path, or any
// bits at all against a tree with no interior nodes, is reported as
// ErrMalformedEncoding.
//
func Decode(t *Tree, bits Bits) (string, error) {
	root := t.Root()
	if root == InvalidNode {
		return "", fmt.Errorf("cannot decode against an empty tree: %w", ErrMalformedEncoding)
	}
	if len(bits) == 0 {
		return "", nil
	}
	if t.IsLeaf(root) {
		return "", fmt.Errorf("cannot decode %d bits against a single-leaf tree: %w", len(bits), ErrMalformedEncoding)
	}

	out := make([]Symbol, 0, len(bits)/2)
	current := root
	for index, bit := range bits {
		if !bit.IsValid() {
			return "", fmt.Errorf("invalid message bit %s at index %d: %w", bit, index, ErrMalformedEncoding)
		}
		current = t.Child(current, bit)
		if t.IsLeaf(current) {
			out = append(out, t.Symbol(current))
			current = root
		}
	}
	if current != root {
		return "", fmt.Errorf("message ends with a partial path after %d complete symbols: %w", len(out), ErrMalformedEncoding)
	}
	return textOf(out), nil
}

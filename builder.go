package huffman

import (
	"container/heap"
	"fmt"
	"math"
)

// BuildTreeFromText counts the symbols of text and builds the Huffman tree
// for those counts.
func BuildTreeFromText(text string) (*Tree, error) {
	freqs, err := CountFrequencies(text)
	if err != nil {
		return nil, err
	}
	return BuildTree(&freqs)
}

// BuildTree builds an optimal prefix code tree for the given frequencies.
//
// Each Symbol with a non-zero count starts out as a leaf, inserted in
// ascending Symbol order.  The two lowest-weight nodes are repeatedly popped
// and merged into a new interior node, the first one popped becoming the zero
// child and the second one the one child, until a single node (the root)
// remains.
//
// Ties between equal weights are broken deterministically: an interior node
// is popped before a leaf, and otherwise the node inserted first is popped
// first.
//
func BuildTree(freqs *FrequencyTable) (*Tree, error) {
	symbols := freqs.Symbols()
	numLeaves := len(symbols)
	if numLeaves < 2 {
		return nil, fmt.Errorf("cannot build tree from %d distinct symbols: %w", numLeaves, ErrInvalidInput)
	}

	// A full binary tree with n leaves has exactly n-1 interior nodes.
	t := NewTree(2*numLeaves - 1)

	// Step 1: build a minheap of leaves.

	h := weightHeap{list: make([]weightedNode, 0, numLeaves)}
	for _, symbol := range symbols {
		h.add(t.AddLeaf(symbol), freqs[symbol], false)
	}
	h.Init()

	// Step 2: pop two nodes, merge them, push the merged node back.

	for h.Len() > 1 {
		a := heap.Pop(&h).(weightedNode)
		b := heap.Pop(&h).(weightedNode)

		// Compute weight using saturating addition
		weight := a.weight + b.weight
		if weight < a.weight {
			weight = math.MaxUint64
		}

		h.push(t.AddInterior(a.id, b.id), weight, true)
	}

	root := heap.Pop(&h).(weightedNode)
	t.SetRoot(root.id)
	return t, nil
}

// type weightedNode + type weightHeap {{{

type weightedNode struct {
	id       NodeID
	weight   uint64
	interior bool
	seq      uint32
}

type weightHeap struct {
	list    []weightedNode
	nextSeq uint32
}

func (h *weightHeap) Init() {
	heap.Init(h)
}

// add appends a node without restoring the heap invariant; call Init after.
func (h *weightHeap) add(id NodeID, weight uint64, interior bool) {
	h.list = append(h.list, weightedNode{id, weight, interior, h.nextSeq})
	h.nextSeq++
}

func (h *weightHeap) push(id NodeID, weight uint64, interior bool) {
	heap.Push(h, weightedNode{id, weight, interior, h.nextSeq})
	h.nextSeq++
}

func (h *weightHeap) Len() int {
	return len(h.list)
}

func (h *weightHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *weightHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if a.weight != b.weight {
		return a.weight < b.weight
	}
	if a.interior != b.interior {
		return a.interior
	}
	return a.seq < b.seq
}

func (h *weightHeap) Push(x interface{}) {
	h.list = append(h.list, x.(weightedNode))
}

func (h *weightHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*weightHeap)(nil)

// }}}

package huffpack

import (
	"bytes"
	"container/heap"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// treeNode is one slot in the tree arena: either a leaf carrying a symbol,
// or an internal node carrying two child indexes.
type treeNode struct {
	weight uint32
	left   int32
	right  int32
	symbol byte
	leaf   bool
}

// Tree is the Huffman coding tree for one frequency table, stored as an
// arena of nodes with integer child indexes.
//
// Construction is deterministic: leaves enter the arena in ascending byte
// order, internal nodes follow in creation order, and weight ties always
// select the smaller arena index.  Encoder and decoder therefore derive the
// identical tree from the same frequency table, which the container format
// depends on.
//
type Tree struct {
	nodes []treeNode
	root  int32
}

// Init builds the coding tree for the given frequency table, replacing any
// previous state.  It fails with ErrEmptyAlphabet if no byte value has a
// nonzero count.  A table with exactly one distinct symbol produces a tree
// whose root is that single leaf.
func (t *Tree) Init(freqs *FrequencyTable) error {
	numLeaves := freqs.NumDistinct()
	if numLeaves == 0 {
		return ErrEmptyAlphabet
	}

	// The finished tree holds exactly (2n - 1) nodes: n leaves plus one
	// internal node per merge.
	arena := make([]treeNode, 2*numLeaves-1)
	next := int32(0)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			arena[next] = treeNode{weight: freq, symbol: byte(symbol), leaf: true}
			next++
		}
	}

	h := nodeHeap{arena: arena, list: make([]int32, numLeaves)}
	for i := range h.list {
		h.list[i] = int32(i)
	}
	h.Init()

	for h.Len() > 1 {
		a := heap.Pop(&h).(int32)
		b := heap.Pop(&h).(int32)

		// Compute the merged weight using saturating addition.
		weightSum := arena[a].weight + arena[b].weight
		if weightSum < arena[a].weight {
			weightSum = math.MaxUint32
		}

		arena[next] = treeNode{weight: weightSum, left: a, right: b}
		heap.Push(&h, next)
		next++
	}

	root := heap.Pop(&h).(int32)
	assert.Assertf(next == int32(len(arena)), "built %d nodes, arena holds %d", next, len(arena))

	*t = Tree{nodes: arena, root: root}
	return nil
}

// NumLeaves returns the number of distinct symbols this tree codes for.
func (t Tree) NumLeaves() int {
	return (len(t.nodes) + 1) / 2
}

// Dump writes a programmer-readable debugging dump of the tree to the given
// writer, one node per line in preorder.
func (t Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if len(t.nodes) != 0 {
		t.dumpNode(&buf, t.root, 0)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (t Tree) DebugString() string {
	var sb strings.Builder
	_, _ = t.Dump(&sb)
	return sb.String()
}

func (t Tree) dumpNode(buf *bytes.Buffer, index int32, depth int) {
	node := t.nodes[index]
	buf.WriteByte('\t')
	buf.WriteString(strings.Repeat(".\t", depth))
	if node.leaf {
		fmt.Fprintf(buf, "Leaf{symbol: %#04x, weight: %d}\n", node.symbol, node.weight)
		return
	}
	fmt.Fprintf(buf, "Internal{weight: %d}\n", node.weight)
	t.dumpNode(buf, node.left, depth+1)
	t.dumpNode(buf, node.right, depth+1)
}

// type nodeHeap {{{

// nodeHeap is a min-heap of arena indexes ordered by (weight, index).  Arena
// order doubles as insertion order, which keeps weight ties stable.
type nodeHeap struct {
	arena []treeNode
	list  []int32
}

func (h *nodeHeap) Init() {
	heap.Init(h)
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	if h.arena[a].weight != h.arena[b].weight {
		return h.arena[a].weight < h.arena[b].weight
	}
	return a < b
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(int32))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}

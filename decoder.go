package huffpack

// Decoder turns an MSB-first bit sequence back into symbols by walking a
// coding tree one bit at a time.
type Decoder struct {
	tree *Tree
	cur  int32
}

// Init points this Decoder at the given tree and rewinds the walk to the
// root, replacing any previous state.
func (d *Decoder) Init(t *Tree) {
	*d = Decoder{tree: t, cur: t.root}
}

// Step advances the walk by one bit: false descends left, true descends
// right.  When the walk reaches a leaf, Step returns that leaf's symbol with
// ok set, and the next call starts over from the root.
//
// A tree whose root is itself a leaf emits its symbol on every bit,
// matching the one-bit codes Encoder assigns for single-symbol alphabets.
//
func (d *Decoder) Step(bit bool) (symbol byte, ok bool) {
	node := d.tree.nodes[d.cur]
	if node.leaf {
		return node.symbol, true
	}

	if bit {
		d.cur = node.right
	} else {
		d.cur = node.left
	}

	node = d.tree.nodes[d.cur]
	if !node.leaf {
		return 0, false
	}
	d.cur = d.tree.root
	return node.symbol, true
}

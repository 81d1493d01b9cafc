package huffpack

import (
	"bytes"
	"fmt"
	"io"
	mathbits "math/bits"
	"strings"

	"github.com/chronos-tachyon/assert"
)

// Encoder holds the symbol-to-code table derived from one coding tree.
type Encoder struct {
	codes   []Code
	minSize byte
	maxSize byte
}

// Init populates the code table by walking the given tree depth-first,
// replacing any previous state.  Descending to a left child appends a 0 bit
// and descending to a right child appends a 1 bit; the accumulated bit
// sequence at each leaf becomes that symbol's code.
//
// A tree whose root is itself a leaf gets the one-bit code "0" for its only
// symbol; Decoder applies the matching convention and emits that symbol once
// per consumed payload bit.
//
func (e *Encoder) Init(t *Tree) {
	enc := Encoder{codes: make([]Code, NumSymbols)}

	rootNode := t.nodes[t.root]
	if rootNode.leaf {
		enc.codes[rootNode.symbol] = MakeCode(1, 0)
		enc.minSize = 1
		enc.maxSize = 1
		*e = enc
		return
	}

	// Walk the tree using an explicit stack.
	//
	// We use stackItem.x to keep track of where we are in the tree walk:
	//   x=0 → We just arrived at stackItem for the first time
	//   x=1 → We have already processed the left child
	//   x=2 → We have already processed both children
	//
	// Only internal nodes are pushed, so the stack never grows beyond the
	// tree height.

	type stackItem struct {
		node int32
		hc   Code
		x    byte
	}

	// Capacity hint only; degenerate trees run deeper and the stack grows
	// as needed.
	stackCap := mathbits.Len32(uint32(t.NumLeaves())) + 1
	stack := make([]stackItem, 0, stackCap)
	var stackLen uint
	var hasMinMax bool

	stackTop := func() *stackItem {
		return &stack[stackLen-1]
	}

	stackPush := func(node int32, hc Code) {
		stack = append(stack, stackItem{node: node, hc: hc})
		stackLen++
	}

	stackPop := func() {
		stackLen--
		stack[stackLen] = stackItem{}
		stack = stack[:stackLen]
	}

	processChild := func(index int32, hc Code) {
		assert.Assertf(hc.Size <= maxCodeBits, "code length %d > maxCodeBits %d", hc.Size, maxCodeBits)

		node := t.nodes[index]
		if !node.leaf {
			stackPush(index, hc)
			return
		}

		enc.codes[node.symbol] = hc
		size := hc.Size
		if !hasMinMax {
			hasMinMax = true
			enc.minSize = size
			enc.maxSize = size
		} else if enc.minSize > size {
			enc.minSize = size
		} else if enc.maxSize < size {
			enc.maxSize = size
		}
	}

	stackPush(t.root, Code{})
	for stackLen != 0 {
		top := stackTop()
		x := top.x
		top.x++
		switch x {
		case 0:
			processChild(t.nodes[top.node].left, top.hc.Append(0))
		case 1:
			processChild(t.nodes[top.node].right, top.hc.Append(1))
		case 2:
			stackPop()
		}
	}

	*e = enc
}

// Encode returns the code for the given byte.  It fails with ErrNoCode if
// the byte has no entry in the table, i.e. it never occurred in the
// frequency table the tree was built from.
func (e Encoder) Encode(b byte) (Code, error) {
	hc := e.codes[b]
	if hc.Size == 0 {
		return Code{}, fmt.Errorf("byte %#04x: %w", b, ErrNoCode)
	}
	return hc, nil
}

// MinSize is the bit length of the shortest assigned code.
func (e Encoder) MinSize() byte {
	return e.minSize
}

// MaxSize is the bit length of the longest assigned code.
func (e Encoder) MaxSize() byte {
	return e.maxSize
}

// Dump writes a programmer-readable debugging dump of the Encoder's current
// state to the given writer.  Only symbols with an assigned code are listed.
func (e Encoder) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Encoder{\n")
	fmt.Fprintf(&buf, "\tMinSize() = %d\n", e.minSize)
	fmt.Fprintf(&buf, "\tMaxSize() = %d\n", e.maxSize)
	for symbol := 0; symbol < len(e.codes); symbol++ {
		hc := e.codes[symbol]
		if hc.Size == 0 {
			continue
		}
		fmt.Fprintf(&buf, "\tEncode(%#04x) = %s\n", symbol, hc)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

// DebugString returns Dump's output as a string.
func (e Encoder) DebugString() string {
	var sb strings.Builder
	_, _ = e.Dump(&sb)
	return sb.String()
}

// String returns a one-line summary of this Encoder.
func (e Encoder) String() string {
	var numCodes int
	for _, hc := range e.codes {
		if hc.Size != 0 {
			numCodes++
		}
	}
	return fmt.Sprintf("(Huffman code table with %d symbols, with code lengths of %d .. %d bits)", numCodes, e.minSize, e.maxSize)
}

var _ fmt.Stringer = Encoder{}

package huffpack

import (
	"fmt"
	"strconv"
)

// maxCodeBits is the upper bound on the length of any code built by this
// package.  Weights along a root-to-leaf chain grow at least as fast as the
// Fibonacci numbers, and frequencies saturate at 32 bits, so the deepest
// reachable leaf sits well short of 64 bits.
const maxCodeBits = 64

// Code represents a sequence of bits produced by walking the coding tree.
type Code struct {
	// Size holds the number of valid bits.
	Size byte

	// Bits holds the actual values of the bits.  The bit at position
	// (Size - 1) is the first bit of the sequence, so that WriteBits-style
	// MSB-first emitters output the sequence in traversal order.
	Bits uint64
}

// MakeCode is a convenience function that constructs a Code.
func MakeCode(size byte, bits uint64) Code {
	return Code{Size: size, Bits: bits}
}

// Append returns a copy of this Code extended by one bit.
func (hc Code) Append(bit byte) Code {
	return Code{Size: hc.Size + 1, Bits: hc.Bits<<1 | uint64(bit)}
}

// String returns the string representation of this Code.
func (hc Code) String() string {
	if hc.Size == 0 {
		return "\"\""
	}
	format := "%0" + strconv.FormatUint(uint64(hc.Size), 10) + "b"
	return strconv.Quote(fmt.Sprintf(format, hc.Bits))
}

var _ fmt.Stringer = Code{}

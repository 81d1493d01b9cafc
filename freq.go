package huffpack

import (
	"math"
)

// NumSymbols is the size of the alphabet: one symbol per possible byte value.
const NumSymbols = 256

// FrequencyTable maps each possible byte value to its occurrence count.
type FrequencyTable [NumSymbols]uint32

// CountFrequencies tallies the occurrences of each byte value in data.  An
// empty input yields the all-zero table.
//
// Counts saturate at the 32-bit maximum instead of wrapping, because the
// container stores each frequency in 4 bytes.  The encoder builds its tree
// from the same saturated table it serializes, so encode and decode always
// agree on the tree.
//
func CountFrequencies(data []byte) FrequencyTable {
	var ft FrequencyTable
	for _, b := range data {
		if ft[b] != math.MaxUint32 {
			ft[b]++
		}
	}
	return ft
}

// NumDistinct returns the number of byte values with a nonzero count.
func (ft *FrequencyTable) NumDistinct() int {
	var n int
	for _, freq := range ft {
		if freq != 0 {
			n++
		}
	}
	return n
}

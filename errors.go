package huffpack

import (
	"errors"
)

// Errors returned by Encode, Decode, and the builders they drive.  Callers
// should match them with errors.Is, as the returned errors usually carry
// additional context.
var (
	// ErrEmptyAlphabet means there were no symbols to build a tree from,
	// i.e. the input stream (or the decoded frequency table) was empty.
	ErrEmptyAlphabet = errors.New("huffpack: empty alphabet")

	// ErrNoCode means a byte had no entry in the code table.  This cannot
	// happen when the table was built from the same input being encoded.
	ErrNoCode = errors.New("huffpack: no code for symbol")

	// ErrBadMagic means the container does not start with the expected
	// format marker.
	ErrBadMagic = errors.New("huffpack: bad magic")

	// ErrTruncatedHeader means the container is shorter than the header it
	// claims to have, or the header declares an impossible symbol count.
	ErrTruncatedHeader = errors.New("huffpack: truncated header")

	// ErrCorruptStream means the bit payload does not satisfy the header's
	// accounting: the declared bit count is unsatisfiable or the stream
	// ends before it is exhausted.
	ErrCorruptStream = errors.New("huffpack: corrupt bit stream")
)

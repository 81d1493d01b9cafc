package huffpack

import (
	"bytes"
	"fmt"

	"github.com/icza/bitio"
)

// Encode compresses src into a self-describing container: a header carrying
// the per-symbol frequency table, followed by the Huffman-coded payload.
// It fails with ErrEmptyAlphabet if src is empty.
func Encode(src []byte) ([]byte, error) {
	freqs := CountFrequencies(src)

	var tree Tree
	if err := tree.Init(&freqs); err != nil {
		return nil, err
	}

	var enc Encoder
	enc.Init(&tree)

	var buf bytes.Buffer
	buf.Grow(headerBaseLen + entryLen*tree.NumLeaves() + len(src)/2)
	writeHeader(&buf, &freqs)

	bw := bitio.NewWriter(&buf)
	for _, b := range src {
		hc, err := enc.Encode(b)
		if err != nil {
			return nil, err
		}
		bw.TryWriteBits(hc.Bits, hc.Size)
	}
	if err := bw.TryError; err != nil {
		return nil, fmt.Errorf("write payload: %w", err)
	}

	padding, err := bw.Align()
	if err != nil {
		return nil, fmt.Errorf("flush payload: %w", err)
	}

	out := buf.Bytes()
	out[paddingOffset] = padding
	return out, nil
}

// Decode reverses Encode: it parses the container header, rebuilds the
// coding tree from the embedded frequency table, and walks the payload bit
// stream back into the original bytes.
//
// Tree construction is deterministic, so decoding always walks the exact
// tree the encoder built.  Failures are reported as ErrBadMagic,
// ErrTruncatedHeader, ErrEmptyAlphabet, or ErrCorruptStream.
//
func Decode(src []byte) ([]byte, error) {
	freqs, padding, payload, err := parseContainer(src)
	if err != nil {
		return nil, err
	}

	var tree Tree
	if err := tree.Init(&freqs); err != nil {
		return nil, err
	}

	var dec Decoder
	dec.Init(&tree)

	total := int64(len(payload))*8 - int64(padding)

	out := make([]byte, 0, decodedSizeHint(&freqs, total))
	br := bitio.NewReader(bytes.NewReader(payload))
	for i := int64(0); i < total; i++ {
		bit, err := br.ReadBool()
		if err != nil {
			return nil, fmt.Errorf("payload bit %d of %d: %w", i, total, ErrCorruptStream)
		}
		if symbol, ok := dec.Step(bit); ok {
			out = append(out, symbol)
		}
	}

	// A traversal still in progress at this point ran into the final
	// byte's padding; it carries no symbol.
	return out, nil
}

// decodedSizeHint estimates the decoded length for preallocation.  The
// frequency sum is the exact length for an honest header; the payload's bit
// count caps it, since every decoded symbol consumes at least one bit.
func decodedSizeHint(freqs *FrequencyTable, totalBits int64) int64 {
	var sum int64
	for _, freq := range freqs {
		sum += int64(freq)
	}
	if sum > totalBits {
		return totalBits
	}
	return sum
}

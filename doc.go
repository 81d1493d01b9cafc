// Package huffpack implements a static Huffman compressor for byte streams.
// The encoded container is self-describing: a per-symbol frequency table
// travels alongside the bit-packed payload, so the decoder can rebuild the
// exact coding tree the encoder used.
//
// References:
//
//	<https://en.wikipedia.org/wiki/Huffman_coding>
//
//	D. A. Huffman, "A Method for the Construction of Minimum-Redundancy
//	Codes", Proceedings of the IRE 40(9), 1952
//
package huffpack

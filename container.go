package huffpack

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Container layout, all multi-byte fields big-endian:
//
//	offset 0    4 bytes      magic
//	offset 4    4 bytes      number of distinct symbols N (0 < N <= 256)
//	offset 8    1 byte       padding-bit count in the final payload byte, 0..7
//	offset 9    N * 5 bytes  entries of (1 byte symbol, 4 bytes frequency)
//	offset 9+5N remainder    bit-packed payload, MSB-first
//
const (
	// Magic identifies the container format ("HUFF" in ASCII).
	Magic uint32 = 0x48554646

	headerBaseLen = 9
	entryLen      = 5
	paddingOffset = 8
)

// writeHeader appends the container header for the given frequency table to
// buf, writing a zero placeholder for the padding-bit count.  Entries appear
// in ascending symbol order.  The byte at paddingOffset is patched once the
// payload has been flushed and the real count is known.
func writeHeader(buf *bytes.Buffer, freqs *FrequencyTable) {
	putU32(buf, Magic)
	putU32(buf, uint32(freqs.NumDistinct()))
	buf.WriteByte(0)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if freq := freqs[symbol]; freq != 0 {
			buf.WriteByte(byte(symbol))
			putU32(buf, freq)
		}
	}
}

// parseContainer splits src into its header fields and payload, validating
// the header's structure on the way.
func parseContainer(src []byte) (freqs FrequencyTable, padding byte, payload []byte, err error) {
	if len(src) < headerBaseLen {
		err = fmt.Errorf("container is %d bytes, fixed header needs %d: %w", len(src), headerBaseLen, ErrTruncatedHeader)
		return
	}

	if magic := binary.BigEndian.Uint32(src[0:4]); magic != Magic {
		err = fmt.Errorf("magic %#08x at offset 0, want %#08x: %w", magic, Magic, ErrBadMagic)
		return
	}

	numEntries := binary.BigEndian.Uint32(src[4:8])
	if numEntries > NumSymbols {
		err = fmt.Errorf("header declares %d distinct symbols, alphabet has %d: %w", numEntries, NumSymbols, ErrTruncatedHeader)
		return
	}

	entriesLen := int(numEntries) * entryLen
	if len(src) < headerBaseLen+entriesLen {
		err = fmt.Errorf("container is %d bytes, header with %d entries needs %d: %w", len(src), numEntries, headerBaseLen+entriesLen, ErrTruncatedHeader)
		return
	}

	padding = src[paddingOffset]
	payload = src[headerBaseLen+entriesLen:]

	if padding > 7 {
		err = fmt.Errorf("padding-bit count %d at offset %d, want 0..7: %w", padding, paddingOffset, ErrCorruptStream)
		return
	}
	if len(payload) == 0 && padding != 0 {
		err = fmt.Errorf("%d padding bits declared for an empty payload: %w", padding, ErrCorruptStream)
		return
	}

	for i := 0; i < int(numEntries); i++ {
		off := headerBaseLen + i*entryLen
		freqs[src[off]] = binary.BigEndian.Uint32(src[off+1 : off+entryLen])
	}
	return
}

func putU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

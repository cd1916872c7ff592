package chromaprint

import (
	"fmt"
)

const (
	// Deltas below the escape value are stored inline as 3 bits; larger
	// deltas write the escape marker and spill the remainder into a
	// separate 5-bit stream.
	compressEscape        = 7
	compressNormalBits    = 3
	compressExceptionBits = 5
	compressHeaderSize    = 4
)

// CompressFingerprint encodes fingerprint words into the compact binary
// interchange form. Consecutive words are XOR-ed and the set bit positions
// of each difference are delta coded. The algorithm identifier is stored in
// the leading header byte.
func CompressFingerprint(words []uint32, algorithm int) []byte {
	normal := newBitWriter()
	exceptional := newBitWriter()

	var previous uint32
	for i, word := range words {
		diff := word
		if i > 0 {
			diff = word ^ previous
		}
		previous = word

		last := -1
		for bit := 0; bit < 32; bit++ {
			if diff&(1<<uint(bit)) == 0 {
				continue
			}
			delta := bit - last
			last = bit
			if delta >= compressEscape {
				normal.write(compressEscape, compressNormalBits)
				exceptional.write(uint32(delta-compressEscape), compressExceptionBits)
			} else {
				normal.write(uint32(delta), compressNormalBits)
			}
		}
		normal.write(0, compressNormalBits)
	}

	out := make([]byte, 0, compressHeaderSize+len(normal.bytes())+len(exceptional.bytes()))
	out = append(out,
		byte(algorithm),
		byte(len(words)>>16),
		byte(len(words)>>8),
		byte(len(words)))
	out = append(out, normal.bytes()...)
	out = append(out, exceptional.bytes()...)
	return out
}

// DecompressFingerprint decodes data produced by CompressFingerprint,
// returning the fingerprint words and the algorithm identifier from the
// header.
func DecompressFingerprint(data []byte) ([]uint32, int, error) {
	if len(data) < compressHeaderSize {
		return nil, 0, fmt.Errorf("%w: %d bytes is shorter than the header", ErrInvalidFingerprintData, len(data))
	}
	algorithm := int(data[0])
	wordCount := int(data[1])<<16 | int(data[2])<<8 | int(data[3])

	// Every word carries at least a 3-bit terminator, so the payload bounds
	// the plausible word count before anything is allocated for it.
	if wordCount*compressNormalBits > (len(data)-compressHeaderSize)*8 {
		return nil, 0, fmt.Errorf("%w: word count %d exceeds payload size", ErrInvalidFingerprintData, wordCount)
	}

	reader := newBitReader(data[compressHeaderSize:])

	// First pass over the 3-bit stream: collect raw deltas per word. The
	// 5-bit exception stream starts at the next byte boundary after the
	// final word terminator.
	deltas := make([][]int, wordCount)
	for i := 0; i < wordCount; i++ {
		for {
			value, ok := reader.read(compressNormalBits)
			if !ok {
				return nil, 0, fmt.Errorf("%w: truncated delta stream", ErrInvalidFingerprintData)
			}
			if value == 0 {
				break
			}
			deltas[i] = append(deltas[i], int(value))
		}
	}

	reader.align()
	words := make([]uint32, wordCount)
	var previous uint32
	for i := range deltas {
		var diff uint32
		bit := -1
		for _, delta := range deltas[i] {
			if delta == compressEscape {
				extra, ok := reader.read(compressExceptionBits)
				if !ok {
					return nil, 0, fmt.Errorf("%w: truncated exception stream", ErrInvalidFingerprintData)
				}
				delta += int(extra)
			}
			bit += delta
			if bit > 31 {
				return nil, 0, fmt.Errorf("%w: bit offset %d out of range", ErrInvalidFingerprintData, bit)
			}
			diff |= 1 << uint(bit)
		}
		previous ^= diff
		words[i] = previous
	}
	return words, algorithm, nil
}

// bitWriter packs values most significant bit first into a byte buffer.
type bitWriter struct {
	buf     []byte
	current uint32
	filled  uint
}

func newBitWriter() *bitWriter {
	return &bitWriter{}
}

func (w *bitWriter) write(value uint32, bits uint) {
	w.current = w.current<<bits | value
	w.filled += bits
	for w.filled >= 8 {
		w.filled -= 8
		w.buf = append(w.buf, byte(w.current>>w.filled))
	}
}

// bytes returns the written data, flushing any partial byte padded with
// zero bits.
func (w *bitWriter) bytes() []byte {
	if w.filled > 0 {
		w.buf = append(w.buf, byte(w.current<<(8-w.filled)))
		w.current = 0
		w.filled = 0
	}
	return w.buf
}

// bitReader consumes values most significant bit first.
type bitReader struct {
	data   []byte
	offset int
	bit    uint
}

func newBitReader(data []byte) *bitReader {
	return &bitReader{data: data}
}

func (r *bitReader) read(bits uint) (uint32, bool) {
	var value uint32
	for i := uint(0); i < bits; i++ {
		if r.offset >= len(r.data) {
			return 0, false
		}
		value <<= 1
		if r.data[r.offset]&(1<<(7-r.bit)) != 0 {
			value |= 1
		}
		r.bit++
		if r.bit == 8 {
			r.bit = 0
			r.offset++
		}
	}
	return value, true
}

// align skips to the next byte boundary.
func (r *bitReader) align() {
	if r.bit != 0 {
		r.bit = 0
		r.offset++
	}
}

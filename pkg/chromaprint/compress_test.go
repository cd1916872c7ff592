package chromaprint

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundTrip(t *testing.T, words []uint32, algorithm int) {
	t.Helper()
	data := CompressFingerprint(words, algorithm)
	decoded, gotAlgorithm, err := DecompressFingerprint(data)
	require.NoError(t, err)
	assert.Equal(t, algorithm, gotAlgorithm)
	assert.Equal(t, words, decoded)
}

func TestCompressEmpty(t *testing.T) {
	data := CompressFingerprint(nil, 1)
	assert.Equal(t, []byte{1, 0, 0, 0}, data)

	decoded, algorithm, err := DecompressFingerprint(data)
	require.NoError(t, err)
	assert.Equal(t, 1, algorithm)
	assert.Empty(t, decoded)
}

func TestCompressSingleWords(t *testing.T) {
	roundTrip(t, []uint32{0}, 0)
	roundTrip(t, []uint32{1}, 0)
	roundTrip(t, []uint32{1 << 31}, 0)
	roundTrip(t, []uint32{0xFFFFFFFF}, 0)
	roundTrip(t, []uint32{0x55555555}, 0)
}

func TestCompressLargeBitGaps(t *testing.T) {
	// Single set bits at high positions exercise the escape stream.
	roundTrip(t, []uint32{1 << 7, 1 << 15, 1 << 23, 1 << 31}, 1)
	roundTrip(t, []uint32{1, 1 << 31, 1, 1 << 31}, 1)
}

func TestCompressRepeatedWords(t *testing.T) {
	// Identical consecutive words produce empty differences.
	roundTrip(t, []uint32{0xDEADBEEF, 0xDEADBEEF, 0xDEADBEEF}, 1)
}

func TestCompressRandomWords(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := make([]uint32, 300)
	for i := range words {
		words[i] = rng.Uint32()
	}
	roundTrip(t, words, 2)
}

func TestCompressAlgorithmByte(t *testing.T) {
	for _, algorithm := range []int{0, 1, 2, 3, 4} {
		data := CompressFingerprint([]uint32{123456}, algorithm)
		assert.Equal(t, byte(algorithm), data[0])
	}
}

func TestDecompressTooShort(t *testing.T) {
	for _, data := range [][]byte{nil, {}, {1}, {1, 0}, {1, 0, 0}} {
		_, _, err := DecompressFingerprint(data)
		assert.ErrorIs(t, err, ErrInvalidFingerprintData)
	}
}

func TestDecompressOverstatedWordCount(t *testing.T) {
	// A header claiming the maximum word count over an empty payload must
	// be rejected up front rather than allocated for.
	_, _, err := DecompressFingerprint([]byte{1, 0xFF, 0xFF, 0xFF})
	assert.ErrorIs(t, err, ErrInvalidFingerprintData)

	// Same claim over a payload far too small to terminate every word.
	_, _, err = DecompressFingerprint([]byte{1, 0xFF, 0xFF, 0xFF, 0x24, 0x92})
	assert.ErrorIs(t, err, ErrInvalidFingerprintData)
}

func TestDecompressTruncated(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := make([]uint32, 50)
	for i := range words {
		words[i] = rng.Uint32()
	}
	data := CompressFingerprint(words, 1)

	_, _, err := DecompressFingerprint(data[:len(data)/2])
	assert.ErrorIs(t, err, ErrInvalidFingerprintData)
}

package chromaprint

import (
	"errors"
	"fmt"
)

// Usage errors: caller mistakes that are reported synchronously and are
// never retried internally.
var (
	// ErrNotStarted is returned by Consume and Finish when no run is
	// active, including after Finish without a new Start.
	ErrNotStarted = errors.New("chromaprint: fingerprinting not started")

	// ErrNotFinished is returned by Fingerprint before Finish.
	ErrNotFinished = errors.New("chromaprint: fingerprinting not finished")

	// ErrInvalidSampleRate is returned by Start for a zero sample rate or
	// one that differs from the configuration's processing rate; the
	// caller is responsible for resampling beforehand.
	ErrInvalidSampleRate = errors.New("chromaprint: invalid sample rate")

	// ErrInvalidChannels is returned by Start for a zero channel count.
	ErrInvalidChannels = errors.New("chromaprint: invalid channel count")

	// ErrBadSampleCount is returned by Consume when the sample count is
	// not a multiple of the declared channel count.
	ErrBadSampleCount = errors.New("chromaprint: sample count not a multiple of channel count")
)

// ErrInvalidFingerprintData is the decode error kind: every failure of
// DecompressFingerprint wraps it.
var ErrInvalidFingerprintData = errors.New("chromaprint: invalid fingerprint data")

func errUnknownAlgorithm(id int) error {
	return fmt.Errorf("%w: unknown algorithm %d", ErrInvalidFingerprintData, id)
}

// Package wavio reads WAV files into interleaved 16-bit PCM and converts
// them to the fingerprinting sample rate. Decoding and resampling stay out
// of the core fingerprint package on purpose; the fingerprinter only ever
// sees PCM at its processing rate.
package wavio

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-audio/wav"
	resampler "github.com/tphakala/go-audio-resampler"
)

// ErrUnsupportedFile is returned for files that are not valid WAV audio.
var ErrUnsupportedFile = errors.New("wavio: unsupported or invalid audio file")

// Audio is decoded PCM. Samples are interleaved when Channels > 1.
type Audio struct {
	Samples    []int16
	SampleRate int
	Channels   int
}

// Duration returns the audio length in seconds.
func (a *Audio) Duration() float64 {
	if a.SampleRate == 0 || a.Channels == 0 {
		return 0
	}
	return float64(len(a.Samples)) / float64(a.Channels) / float64(a.SampleRate)
}

// Truncate drops everything after the first seconds of audio.
func (a *Audio) Truncate(seconds float64) {
	if seconds <= 0 {
		return
	}
	limit := int(seconds*float64(a.SampleRate)) * a.Channels
	if limit < len(a.Samples) {
		a.Samples = a.Samples[:limit]
	}
}

// ReadFile decodes a WAV file into 16-bit PCM, rescaling other bit depths.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: %w", err)
	}
	defer f.Close()

	decoder := wav.NewDecoder(f)
	if !decoder.IsValidFile() {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFile, path)
	}

	buf, err := decoder.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: decoding %s: %w", path, err)
	}
	if buf.Format == nil || buf.Format.NumChannels == 0 || buf.Format.SampleRate == 0 {
		return nil, fmt.Errorf("%w: %s has no format information", ErrUnsupportedFile, path)
	}

	depth := int(buf.SourceBitDepth)
	if depth == 0 {
		depth = 16
	}

	samples := make([]int16, len(buf.Data))
	switch {
	case depth == 16:
		for i, v := range buf.Data {
			samples[i] = int16(v)
		}
	case depth > 16:
		shift := uint(depth - 16)
		for i, v := range buf.Data {
			samples[i] = int16(v >> shift)
		}
	default:
		shift := uint(16 - depth)
		for i, v := range buf.Data {
			samples[i] = int16(v << shift)
		}
	}

	return &Audio{
		Samples:    samples,
		SampleRate: buf.Format.SampleRate,
		Channels:   buf.Format.NumChannels,
	}, nil
}

// ResampleTo converts the audio to the given sample rate, channel by
// channel. It is a no-op when the rates already agree.
func (a *Audio) ResampleTo(rate int) error {
	if rate <= 0 {
		return fmt.Errorf("wavio: invalid target rate %d", rate)
	}
	if a.SampleRate == rate {
		return nil
	}

	frames := len(a.Samples) / a.Channels
	channel := make([]float64, frames)
	resampled := make([][]float64, a.Channels)
	outFrames := 0

	for ch := 0; ch < a.Channels; ch++ {
		for i := 0; i < frames; i++ {
			channel[i] = float64(a.Samples[i*a.Channels+ch]) / 32768.0
		}
		out, err := resampler.ResampleMono(channel, float64(a.SampleRate), float64(rate), resampler.QualityHigh)
		if err != nil {
			return fmt.Errorf("wavio: resampling %d Hz to %d Hz: %w", a.SampleRate, rate, err)
		}
		resampled[ch] = out
		if ch == 0 || len(out) < outFrames {
			outFrames = len(out)
		}
	}

	samples := make([]int16, outFrames*a.Channels)
	for ch, out := range resampled {
		for i := 0; i < outFrames; i++ {
			samples[i*a.Channels+ch] = clampSample(out[i] * 32767.0)
		}
	}

	a.Samples = samples
	a.SampleRate = rate
	return nil
}

func clampSample(v float64) int16 {
	if v > 32767 {
		return 32767
	}
	if v < -32768 {
		return -32768
	}
	return int16(v)
}

package wavio

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestWAV(t *testing.T, rate, channels int, data []int) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.wav")
	f, err := os.Create(path)
	require.NoError(t, err)

	enc := wav.NewEncoder(f, rate, 16, channels, 1)
	buf := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: channels, SampleRate: rate},
		Data:           data,
		SourceBitDepth: 16,
	}
	require.NoError(t, enc.Write(buf))
	require.NoError(t, enc.Close())
	require.NoError(t, f.Close())
	return path
}

func TestReadFileRoundTrip(t *testing.T) {
	data := []int{0, 1000, -1000, 32767, -32768, 42}
	path := writeTestWAV(t, 44100, 2, data)

	a, err := ReadFile(path)
	require.NoError(t, err)

	assert.Equal(t, 44100, a.SampleRate)
	assert.Equal(t, 2, a.Channels)
	require.Len(t, a.Samples, len(data))
	for i, v := range data {
		assert.Equal(t, int16(v), a.Samples[i])
	}
}

func TestReadFileRejectsGarbage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-audio.wav")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a wav"), 0o644))

	_, err := ReadFile(path)
	assert.ErrorIs(t, err, ErrUnsupportedFile)
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "nope.wav"))
	assert.Error(t, err)
}

func TestDuration(t *testing.T) {
	a := &Audio{Samples: make([]int16, 44100*2), SampleRate: 44100, Channels: 2}
	assert.InDelta(t, 1.0, a.Duration(), 1e-9)

	empty := &Audio{}
	assert.Zero(t, empty.Duration())
}

func TestTruncate(t *testing.T) {
	a := &Audio{Samples: make([]int16, 1000), SampleRate: 100, Channels: 2}

	a.Truncate(0)
	assert.Len(t, a.Samples, 1000)

	a.Truncate(2)
	assert.Len(t, a.Samples, 400)

	// Longer than the audio: no change.
	a.Truncate(60)
	assert.Len(t, a.Samples, 400)
}

func TestResampleToSameRateIsNoop(t *testing.T) {
	samples := []int16{1, 2, 3, 4}
	a := &Audio{Samples: samples, SampleRate: 11025, Channels: 1}

	require.NoError(t, a.ResampleTo(11025))
	assert.Equal(t, samples, a.Samples)
}

func TestResampleToHalvesRate(t *testing.T) {
	const inRate, outRate = 22050, 11025
	n := inRate / 2
	a := &Audio{Samples: make([]int16, n), SampleRate: inRate, Channels: 1}
	for i := range a.Samples {
		a.Samples[i] = int16(8000 * math.Sin(2*math.Pi*440*float64(i)/float64(inRate)))
	}

	require.NoError(t, a.ResampleTo(outRate))

	assert.Equal(t, outRate, a.SampleRate)
	assert.InDelta(t, float64(n)/2, float64(len(a.Samples)), float64(n)/20)
}

func TestResampleToInvalidRate(t *testing.T) {
	a := &Audio{Samples: []int16{1}, SampleRate: 44100, Channels: 1}
	assert.Error(t, a.ResampleTo(0))
}

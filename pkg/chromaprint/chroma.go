package chromaprint

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// featureConsumer receives one feature vector per analysis frame. Stages of
// the pipeline are chained through this interface; the slice is only valid
// for the duration of the call.
type featureConsumer interface {
	ConsumeFeatures(features []float64)
	Reset()
}

// chroma folds a spectral energy frame into 12 pitch-class bins. Every FFT
// bin inside the analyzable frequency range contributes its energy to the
// bin of its note, octave-independent; with interpolation enabled the energy
// is split between the two nearest pitch classes based on how far the bin's
// frequency sits from the note center.
type chroma struct {
	interpolate bool
	notes       []int
	notesFrac   []float64
	minIndex    int
	maxIndex    int
	features    [numChromaBands]float64
	consumer    featureConsumer
}

func newChroma(minFreq, maxFreq, frameSize, sampleRate int, interpolate bool, consumer featureConsumer) *chroma {
	c := &chroma{
		interpolate: interpolate,
		notes:       make([]int, frameSize),
		notesFrac:   make([]float64, frameSize),
		consumer:    consumer,
	}
	c.prepareNotes(minFreq, maxFreq, frameSize, sampleRate)
	return c
}

func (c *chroma) prepareNotes(minFreq, maxFreq, frameSize, sampleRate int) {
	c.minIndex = max(freqToIndex(minFreq, frameSize, sampleRate), 1)
	c.maxIndex = min(freqToIndex(maxFreq, frameSize, sampleRate), frameSize/2)
	for i := c.minIndex; i < c.maxIndex; i++ {
		freq := indexToFreq(i, frameSize, sampleRate)
		octave := freqToOctave(freq)
		note := numChromaBands * (octave - math.Floor(octave))
		c.notes[i] = int(math.Floor(note))
		c.notesFrac[i] = note - math.Floor(note)
	}
}

func (c *chroma) ConsumeFeatures(frame []float64) {
	for i := range c.features {
		c.features[i] = 0.0
	}
	for i := c.minIndex; i < c.maxIndex; i++ {
		energy := frame[i]
		note := c.notes[i]
		if c.interpolate {
			note2 := note
			a := 1.0
			if c.notesFrac[i] < 0.5 {
				note2 = (note + numChromaBands - 1) % numChromaBands
				a = 0.5 + c.notesFrac[i]
			}
			if c.notesFrac[i] > 0.5 {
				note2 = (note + 1) % numChromaBands
				a = 1.5 - c.notesFrac[i]
			}
			c.features[note] += energy * a
			c.features[note2] += energy * (1.0 - a)
		} else {
			c.features[note] += energy
		}
	}

	c.consumer.ConsumeFeatures(c.features[:])
}

func (c *chroma) Reset() {
	c.consumer.Reset()
}

func freqToIndex(freq, frameSize, sampleRate int) int {
	return int(math.Round(float64(frameSize) * float64(freq) / float64(sampleRate)))
}

func indexToFreq(i, frameSize, sampleRate int) float64 {
	return float64(i) * float64(sampleRate) / float64(frameSize)
}

func freqToOctave(freq float64) float64 {
	const base = 440.0 / 16.0
	return math.Log2(freq / base)
}

// chromaFilterBuffer is sized for the longest supported coefficient set.
const chromaFilterBuffer = 8

// chromaFilter smooths the chroma frame sequence over time with a short
// FIR filter. The first len(coefficients)-1 frames only prime the buffer.
type chromaFilter struct {
	coefficients []float64
	buffer       [chromaFilterBuffer][numChromaBands]float64
	result       [numChromaBands]float64
	bufferOffset int
	bufferSize   int
	consumer     featureConsumer
}

func newChromaFilter(coefficients []float64, consumer featureConsumer) *chromaFilter {
	return &chromaFilter{
		coefficients: coefficients,
		bufferSize:   1,
		consumer:     consumer,
	}
}

func (f *chromaFilter) ConsumeFeatures(features []float64) {
	copy(f.buffer[f.bufferOffset][:], features)
	f.bufferOffset = (f.bufferOffset + 1) % chromaFilterBuffer
	if f.bufferSize >= len(f.coefficients) {
		offset := (f.bufferOffset + chromaFilterBuffer - len(f.coefficients)) % chromaFilterBuffer
		for i := range f.result {
			f.result[i] = 0.0
			for j, coeff := range f.coefficients {
				f.result[i] += f.buffer[(offset+j)%chromaFilterBuffer][i] * coeff
			}
		}
		f.consumer.ConsumeFeatures(f.result[:])
	} else {
		f.bufferSize++
	}
}

func (f *chromaFilter) Reset() {
	f.bufferSize = 1
	f.bufferOffset = 0
	f.consumer.Reset()
}

// chromaNormalizer scales each chroma vector to unit Euclidean norm,
// zeroing near-silent frames instead of amplifying noise.
type chromaNormalizer struct {
	scratch  [numChromaBands]float64
	consumer featureConsumer
}

func newChromaNormalizer(consumer featureConsumer) *chromaNormalizer {
	return &chromaNormalizer{consumer: consumer}
}

func (n *chromaNormalizer) ConsumeFeatures(features []float64) {
	copy(n.scratch[:], features)
	normalizeVector(n.scratch[:], 0.01)
	n.consumer.ConsumeFeatures(n.scratch[:])
}

func (n *chromaNormalizer) Reset() {
	n.consumer.Reset()
}

func normalizeVector(values []float64, eps float64) {
	norm := floats.Norm(values, 2)
	if norm < eps {
		for i := range values {
			values[i] = 0.0
		}
		return
	}
	floats.Scale(1.0/norm, values)
}

package chromaprint

import (
	"math"

	"github.com/mjibson/go-dsp/fft"
)

// framer slices the incoming mono sample stream into overlapping
// Hamming-windowed frames and hands the spectral energy of each frame to
// the chroma stage. The pending buffer never holds more than one frame of
// samples once frames start flowing.
type framer struct {
	frameSize    int
	frameOverlap int

	window   []float64
	pending  []float64
	frame    []float64
	spectrum []float64

	framesEmitted int

	consumer featureConsumer
}

func newFramer(frameSize, frameOverlap int, consumer featureConsumer) *framer {
	return &framer{
		frameSize:    frameSize,
		frameOverlap: frameOverlap,
		window:       makeHammingWindow(frameSize, 1.0),
		frame:        make([]float64, frameSize),
		spectrum:     make([]float64, frameSize/2+1),
		consumer:     consumer,
	}
}

func (f *framer) hopSize() int {
	return f.frameSize - f.frameOverlap
}

// Consume buffers samples and emits every complete frame they form.
func (f *framer) Consume(samples []float64) {
	f.pending = append(f.pending, samples...)

	consumed := 0
	for len(f.pending)-consumed >= f.frameSize {
		f.emitFrame(f.pending[consumed : consumed+f.frameSize])
		consumed += f.hopSize()
	}
	if consumed > 0 {
		n := copy(f.pending, f.pending[consumed:])
		f.pending = f.pending[:n]
	}
}

// Flush handles the trailing partial frame. The remainder is zero-padded
// into one final frame only when at least one frame has already been
// emitted and a full hop of fresh samples remains beyond the retained
// overlap; otherwise it is dropped. Consume leaves less than one hop of
// fresh samples behind, so in practice the remainder is always dropped and
// the word sequence matches one computed from only the complete frames. A
// stream shorter than one frame yields an empty fingerprint either way.
func (f *framer) Flush() {
	fresh := len(f.pending)
	if f.framesEmitted > 0 {
		fresh -= f.frameOverlap
	}
	if f.framesEmitted > 0 && fresh >= f.hopSize() {
		for len(f.pending) < f.frameSize {
			f.pending = append(f.pending, 0.0)
		}
		f.emitFrame(f.pending[:f.frameSize])
	}
	f.pending = f.pending[:0]
}

func (f *framer) emitFrame(samples []float64) {
	for i, s := range samples {
		f.frame[i] = s * f.window[i]
	}

	spectrum := fft.FFTReal(f.frame)
	for i := 0; i <= f.frameSize/2; i++ {
		re := real(spectrum[i])
		im := imag(spectrum[i])
		f.spectrum[i] = re*re + im*im
	}

	f.framesEmitted++
	f.consumer.ConsumeFeatures(f.spectrum)
}

func (f *framer) Reset() {
	f.pending = f.pending[:0]
	f.framesEmitted = 0
	f.consumer.Reset()
}

func makeHammingWindow(size int, scale float64) []float64 {
	window := make([]float64, size)
	for i := range window {
		window[i] = scale * (0.54 - 0.46*math.Cos(2.0*math.Pi*float64(i)/float64(size-1)))
	}
	return window
}

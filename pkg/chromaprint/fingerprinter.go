package chromaprint

import (
	"fmt"

	"github.com/darksv/go-chromaprint/internal/logging"
)

// Fingerprinter computes a fingerprint from a stream of PCM samples. All
// per-run state (sample queue, integral image, word list) is owned by the
// Fingerprinter; Start begins a fresh independent run and discards prior
// state. A Fingerprinter is not safe for concurrent use, but independent
// Fingerprinters share nothing and may run in parallel.
type Fingerprinter struct {
	cfg    *Configuration
	logger logging.Logger

	framer    *framer
	chain     *calculator
	silence   *silenceRemover
	channels  int
	started   bool
	finished  bool
	sampleBuf []float64
	monoBuf   []int16
}

// New creates a fingerprinting context bound to one configuration. The
// configuration is shared and read-only; it may outlive the context.
func New(cfg *Configuration) *Fingerprinter {
	calc := newCalculator(cfg.classifiers, cfg.maxFilterWidth)
	normalizer := newChromaNormalizer(calc)
	filter := newChromaFilter(cfg.filterCoefficients, normalizer)
	chromaStage := newChroma(minChromaFreq, maxChromaFreq, cfg.frameSize, cfg.SampleRate(), cfg.interpolate, filter)

	fp := &Fingerprinter{
		cfg:    cfg,
		framer: newFramer(cfg.frameSize, cfg.frameOverlap, chromaStage),
		chain:  calc,
		logger: logging.WithFields(logging.Fields{
			"component": "fingerprinter",
			"algorithm": cfg.ID(),
		}),
	}
	if cfg.removeSilence {
		fp.silence = newSilenceRemover(cfg.silenceThreshold)
	}
	return fp
}

// Start begins a new fingerprinting run, discarding any previous state.
// The sample rate must match the configuration's processing rate; the
// caller resamples beforehand if needed.
func (fp *Fingerprinter) Start(sampleRate, channels int) error {
	if sampleRate <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	if sampleRate != fp.cfg.SampleRate() {
		return fmt.Errorf("%w: got %d Hz, configuration requires %d Hz",
			ErrInvalidSampleRate, sampleRate, fp.cfg.SampleRate())
	}
	if channels <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}

	fp.channels = channels
	fp.framer.Reset()
	if fp.silence != nil {
		fp.silence.reset()
	}
	fp.started = true
	fp.finished = false

	fp.logger.Debug("started fingerprinting run", logging.Fields{
		"sample_rate": sampleRate,
		"channels":    channels,
	})
	return nil
}

// Consume appends interleaved 16-bit samples to the run. It processes all
// provided samples before returning and may emit any number of fingerprint
// words internally.
func (fp *Fingerprinter) Consume(samples []int16) error {
	if !fp.started || fp.finished {
		return ErrNotStarted
	}
	if len(samples)%fp.channels != 0 {
		return fmt.Errorf("%w: %d samples for %d channels", ErrBadSampleCount, len(samples), fp.channels)
	}

	mono := fp.downmix(samples)
	if fp.silence != nil {
		mono = fp.silence.process(mono)
	}
	if len(mono) == 0 {
		return nil
	}

	if cap(fp.sampleBuf) < len(mono) {
		fp.sampleBuf = make([]float64, len(mono))
	}
	buf := fp.sampleBuf[:len(mono)]
	for i, s := range mono {
		buf[i] = float64(s) / 32767.0
	}
	fp.framer.Consume(buf)
	return nil
}

// downmix averages interleaved channels into mono. Mono input is passed
// through untouched.
func (fp *Fingerprinter) downmix(samples []int16) []int16 {
	if fp.channels == 1 {
		return samples
	}

	frames := len(samples) / fp.channels
	if cap(fp.monoBuf) < frames {
		fp.monoBuf = make([]int16, frames)
	}
	mono := fp.monoBuf[:frames]

	if fp.channels == 2 {
		for i := range mono {
			mono[i] = int16((int32(samples[2*i]) + int32(samples[2*i+1])) / 2)
		}
		return mono
	}
	for i := range mono {
		var sum int32
		for ch := 0; ch < fp.channels; ch++ {
			sum += int32(samples[i*fp.channels+ch])
		}
		mono[i] = int16(sum / int32(fp.channels))
	}
	return mono
}

// Finish flushes the trailing partial frame and finalizes the word list.
// Calling Consume again without a new Start is an error.
func (fp *Fingerprinter) Finish() error {
	if !fp.started {
		return ErrNotStarted
	}
	if fp.finished {
		return nil
	}
	fp.framer.Flush()
	fp.finished = true

	fp.logger.Debug("finished fingerprinting run", logging.Fields{
		"words": len(fp.chain.fingerprint()),
	})
	return nil
}

// Fingerprint returns the finalized fingerprint words. It is only valid
// after Finish; the returned slice is a copy and stays valid across later
// runs.
func (fp *Fingerprinter) Fingerprint() ([]uint32, error) {
	if !fp.finished {
		return nil, ErrNotFinished
	}
	words := fp.chain.fingerprint()
	out := make([]uint32, len(words))
	copy(out, words)
	return out, nil
}

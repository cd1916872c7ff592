package chromaprint

// Algorithm-level constants shared by all presets.
const (
	numChromaBands = 12

	defaultFrameSize    = 4096
	defaultFrameOverlap = defaultFrameSize - defaultFrameSize/3

	// Sample rate the fingerprint algorithm operates at. Callers are
	// expected to deliver PCM already converted to this rate.
	processingSampleRate = 11025

	minChromaFreq = 28
	maxChromaFreq = 3520
)

// chromaFilterCoefficients smooth chroma vectors over time before
// classification.
var chromaFilterCoefficients = []float64{0.25, 0.75, 1.0, 0.75, 0.25}

// Configuration is an immutable bundle of fingerprinting parameters.
// Two fingerprints are only comparable when produced with the same
// configuration, so use one of the Preset constructors rather than
// building configurations ad hoc.
type Configuration struct {
	id          int
	classifiers []classifier

	frameSize    int
	frameOverlap int

	filterCoefficients []float64
	interpolate        bool

	removeSilence    bool
	silenceThreshold int

	maxFilterWidth int

	// Matcher parameters.
	matchFilterWindow   int
	matchThreshold      float64
	minMatchLength      int
	matchDriftTolerance int
}

func newConfiguration(id int, classifiers []classifier) *Configuration {
	maxWidth := 0
	for _, c := range classifiers {
		if w := c.filter.width; w > maxWidth {
			maxWidth = w
		}
	}
	return &Configuration{
		id:                 id,
		classifiers:        classifiers,
		frameSize:          defaultFrameSize,
		frameOverlap:       defaultFrameOverlap,
		filterCoefficients: chromaFilterCoefficients,
		maxFilterWidth:     maxWidth,

		matchFilterWindow:   9,
		matchThreshold:      10.0,
		minMatchLength:      8,
		matchDriftTolerance: 2,
	}
}

// PresetTest1 is algorithm 0, the original classifier set.
func PresetTest1() *Configuration {
	return newConfiguration(0, classifiersTest1)
}

// PresetTest2 is algorithm 1 and the recommended default.
func PresetTest2() *Configuration {
	return newConfiguration(1, classifiersTest2)
}

// PresetTest3 is algorithm 2: the same classifiers as PresetTest2 with
// chroma interpolation enabled.
func PresetTest3() *Configuration {
	cfg := newConfiguration(2, classifiersTest2)
	cfg.interpolate = true
	return cfg
}

// PresetTest4 is algorithm 3: PresetTest2 with leading silence removal.
func PresetTest4() *Configuration {
	cfg := newConfiguration(3, classifiersTest2)
	cfg.removeSilence = true
	cfg.silenceThreshold = 50
	return cfg
}

// PresetTest5 is algorithm 4: PresetTest2 with half-sized frames, doubling
// the temporal resolution of the fingerprint.
func PresetTest5() *Configuration {
	cfg := newConfiguration(4, classifiersTest2)
	cfg.frameSize = defaultFrameSize / 2
	cfg.frameOverlap = defaultFrameSize/2 - defaultFrameSize/4
	return cfg
}

// PresetByID returns the preset for a compressed fingerprint's algorithm ID.
func PresetByID(id int) (*Configuration, error) {
	switch id {
	case 0:
		return PresetTest1(), nil
	case 1:
		return PresetTest2(), nil
	case 2:
		return PresetTest3(), nil
	case 3:
		return PresetTest4(), nil
	case 4:
		return PresetTest5(), nil
	}
	return nil, errUnknownAlgorithm(id)
}

// DefaultConfiguration returns the recommended preset.
func DefaultConfiguration() *Configuration {
	return PresetTest2()
}

// ID is the algorithm identifier stored in compressed fingerprints.
func (c *Configuration) ID() int { return c.id }

// SampleRate is the PCM sample rate the fingerprinter expects.
func (c *Configuration) SampleRate() int { return processingSampleRate }

// FrameSize is the number of samples in one analysis frame.
func (c *Configuration) FrameSize() int { return c.frameSize }

// FrameOverlap is the number of samples shared by consecutive frames.
func (c *Configuration) FrameOverlap() int { return c.frameOverlap }

// HopSize is the number of fresh samples consumed per analysis frame.
func (c *Configuration) HopSize() int { return c.frameSize - c.frameOverlap }

// ItemDuration is the audio duration covered by one fingerprint word,
// in seconds.
func (c *Configuration) ItemDuration() float64 {
	return float64(c.HopSize()) / float64(c.SampleRate())
}

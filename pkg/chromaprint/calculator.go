package chromaprint

// integralImageRows bounds the history retained by the rolling integral
// image. Classifier look-back is at most 16 frames, so this leaves ample
// slack while keeping memory constant for unbounded streams.
const integralImageRows = 255

// calculator feeds chroma frames into the integral image and, once the
// widest classifier's look-back window is covered, emits one fingerprint
// word per frame.
type calculator struct {
	classifiers    []classifier
	maxFilterWidth int
	image          *integralImage
	words          []uint32
}

func newCalculator(classifiers []classifier, maxFilterWidth int) *calculator {
	return &calculator{
		classifiers:    classifiers,
		maxFilterWidth: maxFilterWidth,
		image:          newIntegralImage(integralImageRows),
	}
}

func (c *calculator) ConsumeFeatures(features []float64) {
	c.image.addRow(features)
	if c.image.numRows() >= c.maxFilterWidth {
		c.words = append(c.words, c.subfingerprint(c.image.numRows()-c.maxFilterWidth))
	}
}

// subfingerprint packs every classifier's Gray-coded 2-bit output into one
// word, first classifier in the most significant bits.
func (c *calculator) subfingerprint(offset int) uint32 {
	var bits uint32
	for _, cl := range c.classifiers {
		bits = bits<<2 | cl.classify(c.image, offset)
	}
	return bits
}

func (c *calculator) fingerprint() []uint32 {
	return c.words
}

func (c *calculator) Reset() {
	c.image.reset()
	c.words = c.words[:0]
}

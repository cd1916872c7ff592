package chromaprint

import "math"

// filterKind selects one of the six rectangular comparison patterns a
// classifier can compute over the integral image. The patterns contrast
// region sums along the time axis, the pitch-class axis, or both.
type filterKind uint8

const (
	// o o      whole region vs. nothing
	filterWhole filterKind = iota
	// upper half vs. lower half (pitch-class split)
	filterHalvesY
	// right half vs. left half (time split)
	filterHalvesX
	// diagonal quadrants vs. anti-diagonal quadrants
	filterQuadrants
	// middle third vs. outer thirds (pitch-class split)
	filterThirdsY
	// middle third vs. outer thirds (time split)
	filterThirdsX
)

// filter is one geometric region-sum pattern. x is the frame offset passed
// at classification time; y is the pitch-class origin; width is the look-back
// in frames and height the span in pitch classes.
type filter struct {
	kind   filterKind
	y      int
	height int
	width  int
}

type comparator func(a, b float64) float64

// subtractLog compresses the dynamic range of region energies before
// comparing them. The +1 keeps the result finite for silent regions.
func subtractLog(a, b float64) float64 {
	r := math.Log((1.0 + a) / (1.0 + b))
	return r
}

func (f filter) apply(img *integralImage, x int) float64 {
	switch f.kind {
	case filterWhole:
		return filter0(img, x, f.y, f.width, f.height, subtractLog)
	case filterHalvesY:
		return filter1(img, x, f.y, f.width, f.height, subtractLog)
	case filterHalvesX:
		return filter2(img, x, f.y, f.width, f.height, subtractLog)
	case filterQuadrants:
		return filter3(img, x, f.y, f.width, f.height, subtractLog)
	case filterThirdsY:
		return filter4(img, x, f.y, f.width, f.height, subtractLog)
	case filterThirdsX:
		return filter5(img, x, f.y, f.width, f.height, subtractLog)
	}
	return 0
}

func filter0(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	a := img.area(x, y, x+w, y+h)
	return cmp(a, 0.0)
}

func filter1(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	h2 := h / 2

	a := img.area(x, y+h2, x+w, y+h)
	b := img.area(x, y, x+w, y+h2)

	return cmp(a, b)
}

func filter2(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	w2 := w / 2

	a := img.area(x+w2, y, x+w, y+h)
	b := img.area(x, y, x+w2, y+h)

	return cmp(a, b)
}

func filter3(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	w2 := w / 2
	h2 := h / 2

	a := img.area(x, y+h2, x+w2, y+h) + img.area(x+w2, y, x+w, y+h2)
	b := img.area(x, y, x+w2, y+h2) + img.area(x+w2, y+h2, x+w, y+h)

	return cmp(a, b)
}

func filter4(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	h3 := h / 3

	a := img.area(x, y+h3, x+w, y+2*h3)
	b := img.area(x, y, x+w, y+h3) + img.area(x, y+2*h3, x+w, y+h)

	return cmp(a, b)
}

func filter5(img *integralImage, x, y, w, h int, cmp comparator) float64 {
	w3 := w / 3

	a := img.area(x+w3, y, x+2*w3, y+h)
	b := img.area(x, y, x+w3, y+h) + img.area(x+2*w3, y, x+w, y+h)

	return cmp(a, b)
}

// quantizer partitions the real line into four levels via three ordered
// thresholds.
type quantizer struct {
	t0, t1, t2 float64
}

func (q quantizer) quantize(value float64) uint32 {
	if value < q.t1 {
		if value < q.t0 {
			return 0
		}
		return 1
	}
	if value < q.t2 {
		return 2
	}
	return 3
}

// grayCode maps quantization levels to 2-bit codes so that adjacent levels
// differ in exactly one bit. This is what makes the fingerprint robust to
// small perturbations of the underlying feature values.
var grayCode = [4]uint32{0, 1, 3, 2}

// classifier computes one 2-bit slice of a fingerprint word.
type classifier struct {
	filter    filter
	quantizer quantizer
}

func (c classifier) classify(img *integralImage, offset int) uint32 {
	value := c.filter.apply(img, offset)
	return grayCode[c.quantizer.quantize(value)]
}

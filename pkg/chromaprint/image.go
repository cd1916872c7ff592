package chromaprint

import "fmt"

// integralImage is a rolling 2-D cumulative-sum table over
// (frame, pitch class). Each appended row stores running sums along both
// axes, so the sum of any rectangular region is four lookups. Only the
// trailing maxRows rows are retained, which bounds memory for arbitrarily
// long streams; classifiers only ever look back a fixed number of frames.
type integralImage struct {
	maxRows int
	columns int
	rows    int
	data    []float64
}

func newIntegralImage(maxRows int) *integralImage {
	return &integralImage{maxRows: maxRows + 1}
}

// addRow appends one feature vector, accumulating it into the cumulative
// table. All rows must have the same length.
func (im *integralImage) addRow(row []float64) {
	if im.columns == 0 {
		im.columns = len(row)
		im.data = make([]float64, im.maxRows*im.columns)
	}
	if len(row) != im.columns {
		panic(fmt.Sprintf("chromaprint: integral image row has %d columns, want %d", len(row), im.columns))
	}

	dst := im.row(im.rows)
	sum := 0.0
	for i, cell := range row {
		sum += cell
		dst[i] = sum
	}

	if im.rows > 0 {
		prev := im.row(im.rows - 1)
		for i := range dst {
			dst[i] += prev[i]
		}
	}

	im.rows++
}

func (im *integralImage) numRows() int {
	return im.rows
}

func (im *integralImage) row(i int) []float64 {
	i %= im.maxRows
	return im.data[i*im.columns : (i+1)*im.columns]
}

// area returns the sum over rows [r1, r2) and columns [c1, c2). The row
// range must lie within the retained window; violating that is a
// programming error in the caller, since classifier look-back is bounded
// by construction.
func (im *integralImage) area(r1, c1, r2, c2 int) float64 {
	if r1 > im.rows || r2 > im.rows || c1 > im.columns || c2 > im.columns {
		panic(fmt.Sprintf("chromaprint: area query (%d,%d)-(%d,%d) out of range for %dx%d image",
			r1, c1, r2, c2, im.rows, im.columns))
	}
	if im.rows > im.maxRows && (r1 <= im.rows-im.maxRows || r2 <= im.rows-im.maxRows) {
		panic(fmt.Sprintf("chromaprint: area query (%d,%d)-(%d,%d) outside retained window", r1, c1, r2, c2))
	}

	if r1 == r2 || c1 == c2 {
		return 0.0
	}

	if r1 == 0 {
		row := im.row(r2 - 1)
		if c1 == 0 {
			return row[c2-1]
		}
		return row[c2-1] - row[c1-1]
	}

	row1 := im.row(r1 - 1)
	row2 := im.row(r2 - 1)
	if c1 == 0 {
		return row2[c2-1] - row1[c2-1]
	}
	return row2[c2-1] - row1[c2-1] - row2[c1-1] + row1[c1-1]
}

func (im *integralImage) reset() {
	im.data = nil
	im.rows = 0
	im.columns = 0
}

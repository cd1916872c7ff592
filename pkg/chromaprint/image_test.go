package chromaprint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntegralImageRolling(t *testing.T) {
	image := newIntegralImage(4)
	image.addRow([]float64{1, 2, 3})

	assert.Equal(t, 3, image.columns)
	assert.Equal(t, 1, image.numRows())

	assert.InDelta(t, 1.0, image.area(0, 0, 1, 1), 1e-9)
	assert.InDelta(t, 2.0, image.area(0, 1, 1, 2), 1e-9)
	assert.InDelta(t, 3.0, image.area(0, 2, 1, 3), 1e-9)
	assert.InDelta(t, 1.0+2.0+3.0, image.area(0, 0, 1, 3), 1e-9)

	image.addRow([]float64{4, 5, 6})

	assert.Equal(t, 2, image.numRows())
	assert.InDelta(t, 4.0, image.area(1, 0, 2, 1), 1e-9)
	assert.InDelta(t, 5.0, image.area(1, 1, 2, 2), 1e-9)
	assert.InDelta(t, 6.0, image.area(1, 2, 2, 3), 1e-9)
	assert.InDelta(t, 21.0, image.area(0, 0, 2, 3), 1e-9)

	image.addRow([]float64{7, 8, 9})
	image.addRow([]float64{10, 11, 12})

	assert.Equal(t, 4, image.numRows())
	assert.InDelta(t, 78.0, image.area(0, 0, 4, 3), 1e-9)

	// The first row has now rolled out of the retained window.
	image.addRow([]float64{13, 14, 15})

	assert.Equal(t, 5, image.numRows())
	assert.InDelta(t, 4.0, image.area(1, 0, 2, 1), 1e-9)
	assert.InDelta(t, 5.0, image.area(1, 1, 2, 2), 1e-9)
	assert.InDelta(t, 6.0, image.area(1, 2, 2, 3), 1e-9)
	assert.InDelta(t, 13.0, image.area(4, 0, 5, 1), 1e-9)
	assert.InDelta(t, 14.0, image.area(4, 1, 5, 2), 1e-9)
	assert.InDelta(t, 15.0, image.area(4, 2, 5, 3), 1e-9)
	assert.InDelta(t, (4.0+5.0+6.0)+(7.0+8.0+9.0)+(10.0+11.0+12.0)+(13.0+14.0+15.0),
		image.area(1, 0, 5, 3), 1e-9)

	image.addRow([]float64{16, 17, 18})

	assert.Equal(t, 6, image.numRows())
	assert.InDelta(t, 7.0, image.area(2, 0, 3, 1), 1e-9)
	assert.InDelta(t, 8.0, image.area(2, 1, 3, 2), 1e-9)
	assert.InDelta(t, 9.0, image.area(2, 2, 3, 3), 1e-9)
	assert.InDelta(t, 16.0, image.area(5, 0, 6, 1), 1e-9)
	assert.InDelta(t, 17.0, image.area(5, 1, 6, 2), 1e-9)
	assert.InDelta(t, 18.0, image.area(5, 2, 6, 3), 1e-9)
	assert.InDelta(t, (7.0+8.0+9.0)+(10.0+11.0+12.0)+(13.0+14.0+15.0)+(16.0+17.0+18.0),
		image.area(2, 0, 6, 3), 1e-9)
}

func TestIntegralImageEmptyRegion(t *testing.T) {
	image := newIntegralImage(4)
	image.addRow([]float64{1, 2, 3})

	assert.Zero(t, image.area(0, 0, 0, 3))
	assert.Zero(t, image.area(0, 1, 1, 1))
}

func TestIntegralImageReset(t *testing.T) {
	image := newIntegralImage(4)
	image.addRow([]float64{1, 2, 3})
	image.addRow([]float64{4, 5, 6})
	image.reset()

	assert.Equal(t, 0, image.numRows())

	image.addRow([]float64{2, 4})
	assert.Equal(t, 2, image.columns)
	assert.InDelta(t, 6.0, image.area(0, 0, 1, 2), 1e-9)
}

func TestIntegralImageEvictedRowPanics(t *testing.T) {
	image := newIntegralImage(2)
	for i := 0; i < 5; i++ {
		image.addRow([]float64{float64(i), float64(i)})
	}

	assert.Panics(t, func() {
		image.area(0, 0, 1, 2)
	})
	assert.NotPanics(t, func() {
		image.area(3, 0, 5, 2)
	})
}

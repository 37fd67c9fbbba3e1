package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestShapes_BoundingBoxes(t *testing.T) {
	expected := []Pt{{3, 0}, {2, 2}, {2, 2}, {0, 3}, {1, 1}}
	for i := range Shapes {
		s := &Shapes[i]
		assert.Equal(t, expected[i], Pt{s.MaxX, s.MaxY}, "shape %d", i)

		// The bounding box starts at (0, 0).
		minPt := s.Points[0]
		for _, p := range s.Points {
			minPt.X = min(minPt.X, p.X)
			minPt.Y = min(minPt.Y, p.Y)
		}
		assert.Equal(t, Pt{0, 0}, minPt, "shape %d", i)
	}
	assert.Equal(t, 4, MaxShapeHeight)
}

func TestShapes_RowMasks(t *testing.T) {
	assert.Equal(t, []uint8{0b1111}, Shapes[0].rows)
	assert.Equal(t, []uint8{0b010, 0b111, 0b010}, Shapes[1].rows)
	assert.Equal(t, []uint8{0b111, 0b100, 0b100}, Shapes[2].rows)
	assert.Equal(t, []uint8{1, 1, 1, 1}, Shapes[3].rows)
	assert.Equal(t, []uint8{0b11, 0b11}, Shapes[4].rows)
}

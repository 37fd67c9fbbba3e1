package main

const NumShapes = 5

// RockShape is one of the five rocks that fall in the chamber. Its points are
// offsets from the bottom-left corner of its bounding box, so the bounding box
// always starts at (0, 0) and ends at (MaxX, MaxY).
type RockShape struct {
	Points []Pt
	MaxX   int
	MaxY   int
	// rows[i] has bit x set if the shape has a point at (x, i).
	rows []uint8
}

func newRockShape(points ...Pt) RockShape {
	var s RockShape
	s.Points = points
	for _, p := range points {
		s.MaxX = max(s.MaxX, p.X)
		s.MaxY = max(s.MaxY, p.Y)
	}
	s.rows = make([]uint8, s.MaxY+1)
	for _, p := range points {
		s.rows[p.Y] |= 1 << p.X
	}
	return s
}

// Height is the number of rows the shape occupies.
func (s *RockShape) Height() int {
	return s.MaxY + 1
}

// Shapes is the piece library, in the order in which rocks fall. It is never
// modified after initialization.
var Shapes = [NumShapes]RockShape{
	// ####
	newRockShape(Pt{0, 0}, Pt{1, 0}, Pt{2, 0}, Pt{3, 0}),
	// .#.
	// ###
	// .#.
	newRockShape(Pt{1, 0}, Pt{0, 1}, Pt{1, 1}, Pt{2, 1}, Pt{1, 2}),
	// ..#
	// ..#
	// ###
	newRockShape(Pt{0, 0}, Pt{1, 0}, Pt{2, 0}, Pt{2, 1}, Pt{2, 2}),
	// #
	// #
	// #
	// #
	newRockShape(Pt{0, 0}, Pt{0, 1}, Pt{0, 2}, Pt{0, 3}),
	// ##
	// ##
	newRockShape(Pt{0, 0}, Pt{1, 0}, Pt{0, 1}, Pt{1, 1}),
}

// MaxShapeHeight is the height of the tallest shape in the library.
var MaxShapeHeight = func() (h int) {
	for i := range Shapes {
		h = max(h, Shapes[i].Height())
	}
	return
}()

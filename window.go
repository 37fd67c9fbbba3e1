package main

import "fmt"

const (
	ChamberWidth = 7
	fullRow      = uint8(1<<ChamberWidth - 1)
	// SpawnGap is the number of empty rows between the top of the tower and
	// the bottom of a newly spawned rock.
	SpawnGap = 3
)

// MinWindowRows is the smallest window that can hold a spawned rock above the
// tower with some rows of the tower still underneath it.
var MinWindowRows = 2 * (MaxShapeHeight + SpawnGap + 1)

// Window holds the top rows of the tower. The tower can be much taller than
// the window, so the rows are a ring buffer: when a rock needs room above the
// tower, the bottom row is dropped and its slot is reused as the new top row.
//
// Window-local row y is absolute row y+HeightShift. Each row is a bit mask
// where bit x is set if the cell in column x is occupied.
type Window struct {
	rows  []uint8
	start int // index in rows of local row 0
	// HeightShift is the absolute row of local row 0. It only ever increases.
	HeightShift int
}

// NewWindow makes a window with the chamber floor as its bottom row. The floor
// is absolute row -1, so the first rock lands on absolute row 0.
func NewWindow(nRows int) Window {
	if nRows < MinWindowRows {
		Check(fmt.Errorf("window of %d rows is smaller than the minimum of %d",
			nRows, MinWindowRows))
	}
	w := Window{rows: make([]uint8, nRows), HeightShift: -1}
	w.rows[0] = fullRow
	return w
}

func (w *Window) Cap() int {
	return len(w.rows)
}

// Row returns the contents of window-local row y.
func (w *Window) Row(y int) uint8 {
	if y < 0 || y >= len(w.rows) {
		Check(fmt.Errorf("row %d is outside the window (shift %d, %d rows)",
			y, w.HeightShift, len(w.rows)))
	}
	return w.rows[(w.start+y)%len(w.rows)]
}

func (w *Window) setRow(y int, row uint8) {
	if y <= 0 || y >= len(w.rows) {
		Check(fmt.Errorf("writing row %d outside the window (shift %d, %d rows)",
			y, w.HeightShift, len(w.rows)))
	}
	w.rows[(w.start+y)%len(w.rows)] = row
}

// Occupied tests the cell at column x of window-local row y.
func (w *Window) Occupied(x, y int) bool {
	return w.Row(y)&(1<<x) != 0
}

// GrowFor slides the window up until it has room for the shape spawned
// SpawnGap rows above top, which is an absolute height.
func (w *Window) GrowFor(top int, s *RockShape) {
	for len(w.rows) <= top+SpawnGap+s.MaxY-w.HeightShift {
		w.rows[w.start] = 0
		w.start = (w.start + 1) % len(w.rows)
		w.HeightShift++
	}
}

// Collides checks if the shape placed with its corner at the absolute position
// pos overlaps occupied cells. Walls are not checked here.
func (w *Window) Collides(s *RockShape, pos Pt) bool {
	for i, mask := range s.rows {
		if w.Row(pos.Y+i-w.HeightShift)&(mask<<pos.X) != 0 {
			return true
		}
	}
	return false
}

// Freeze writes the cells of the block into the window and returns the
// absolute height of the top of the block.
func (w *Window) Freeze(b *RockBlock) int {
	y := b.Pos.Y - w.HeightShift
	if y <= 0 {
		Check(fmt.Errorf("rock frozen at absolute row %d, at or below the "+
			"window bottom %d", b.Pos.Y, w.HeightShift))
	}
	for i, mask := range b.Shape.rows {
		w.setRow(y+i, w.Row(y+i)|mask<<b.Pos.X)
	}
	return b.Pos.Y + b.Shape.MaxY + 1
}

// Equal compares the contents of two windows row by row. The windows are equal
// even if their absolute positions differ.
func (w *Window) Equal(other *Window) bool {
	if len(w.rows) != len(other.rows) {
		return false
	}
	for y := range w.rows {
		if w.Row(y) != other.Row(y) {
			return false
		}
	}
	return true
}

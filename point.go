package main

// Pt is used both for absolute positions in the chamber and for offsets
// relative to the bottom-left corner of a rock shape. Y grows upwards.
type Pt struct {
	X int
	Y int
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

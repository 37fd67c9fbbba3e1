package main

import (
	"fmt"
	"slices"
)

// SpawnX is the column of the left edge of a newly spawned rock.
const SpawnX = 2

// Phase is the state of the chamber's step engine.
type Phase int

const (
	// Spawning means there is no falling rock and the next Advance spawns
	// one.
	Spawning Phase = iota
	Falling
	Frozen
	Done
)

func (p Phase) String() string {
	switch p {
	case Spawning:
		return "spawning"
	case Falling:
		return "falling"
	case Frozen:
		return "frozen"
	case Done:
		return "done"
	}
	return fmt.Sprintf("Phase(%d)", int(p))
}

// RockBlock is a rock while it falls. Pos is the absolute position of the
// bottom-left corner of its shape.
type RockBlock struct {
	Shape *RockShape
	Pos   Pt
}

// Chamber rules
// - Rocks appear one at a time, in the order of Shapes, with their left edge
// SpawnX columns from the left wall and their bottom SpawnGap rows above the
// highest rock or the floor.
// - Each gravity tick, the rock is first pushed by the next jet, then falls
// one row.
// - A push that would move the rock into a wall or another rock does
// nothing.
// - A fall that would move the rock into the floor or another rock freezes
// it in place instead, and the next rock appears.
type Chamber struct {
	Window
	Jets JetFeed
	// TopHeight is the absolute height of the tower made of frozen rocks.
	TopHeight int
	// Block is the falling rock or nil if there is none.
	Block    *RockBlock
	ShapeIdx int
	JetIdx   int
	// Pieces is the number of rocks frozen so far.
	Pieces int64
	phase  Phase
}

func NewChamber(jets JetFeed, windowRows int) *Chamber {
	if jets.Len() == 0 {
		Check(ErrNoJets)
	}
	return &Chamber{
		Window: NewWindow(windowRows),
		Jets:   jets,
		phase:  Spawning,
	}
}

func (c *Chamber) Phase() Phase {
	return c.phase
}

// Clone makes a deep copy. The jet feed is shared because it is never
// modified.
func (c *Chamber) Clone() *Chamber {
	clone := *c
	clone.rows = slices.Clone(c.rows)
	if c.Block != nil {
		b := *c.Block
		clone.Block = &b
	}
	return &clone
}

// Advance performs one transition of the step engine and returns the new
// phase. limit is the total number of frozen rocks after which the chamber
// stops.
func (c *Chamber) Advance(limit int64) Phase {
	switch c.phase {
	case Spawning:
		c.Spawn()
		c.phase = Falling
	case Falling:
		c.Shift()
		if c.Drop() {
			c.phase = Frozen
		}
	case Frozen, Done:
		if c.Pieces >= limit {
			c.phase = Done
		} else {
			c.phase = Spawning
		}
	}
	return c.phase
}

// Spawn places the next rock above the tower, making room for it in the
// window first.
func (c *Chamber) Spawn() {
	if c.Block != nil {
		Check(fmt.Errorf("spawning a rock while rock %d is still falling",
			c.Pieces))
	}
	shape := &Shapes[c.ShapeIdx]
	c.ShapeIdx = (c.ShapeIdx + 1) % NumShapes

	c.GrowFor(c.TopHeight, shape)
	c.Block = &RockBlock{
		Shape: shape,
		Pos:   Pt{SpawnX, c.TopHeight + SpawnGap},
	}
}

// Shift pushes the falling rock with the next jet. It returns false if the
// push was blocked, in which case the rock did not move. A jet is consumed
// either way.
func (c *Chamber) Shift() bool {
	dir, next := c.Jets.Next(c.JetIdx)
	c.JetIdx = next

	b := c.Block
	if b == nil {
		return false
	}
	pos := b.Pos.Plus(Pt{dir, 0})
	if pos.X < 0 || pos.X+b.Shape.MaxX >= ChamberWidth {
		return false
	}
	if c.Collides(b.Shape, pos) {
		return false
	}
	b.Pos = pos
	return true
}

// Drop moves the falling rock down one row or freezes it if it cannot fall
// further. It returns true if the rock froze.
func (c *Chamber) Drop() bool {
	b := c.Block
	if b == nil {
		return false
	}
	if b.Pos.Y <= c.HeightShift {
		Check(fmt.Errorf("rock %d fell to row %d, below the window bottom %d",
			c.Pieces, b.Pos.Y, c.HeightShift))
	}
	pos := b.Pos.Minus(Pt{0, 1})
	if !c.Collides(b.Shape, pos) {
		b.Pos = pos
		return false
	}

	previous := c.TopHeight
	c.TopHeight = max(c.TopHeight, c.Freeze(b))
	Assert(c.TopHeight >= previous)
	c.Block = nil
	c.Pieces++
	return true
}

// DropPieces lets n more rocks fall until each of them freezes.
func (c *Chamber) DropPieces(n int64) {
	if n <= 0 {
		return
	}
	limit := c.Pieces + n
	for c.Advance(limit) != Done {
	}
}

func (c *Chamber) DropPiece() {
	c.DropPieces(1)
}

// RunToSync drops rocks in sets of NumShapes until the jet feed is back at its
// first push. It returns the number of rocks dropped.
func (c *Chamber) RunToSync() int64 {
	var n int64
	for {
		c.DropPieces(NumShapes)
		n += NumShapes
		if c.JetIdx == 0 {
			return n
		}
	}
}

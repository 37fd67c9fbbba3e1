package main

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func randomFeed(seed uint64, n int) JetFeed {
	r := NewRand(seed)
	return RandomJets(&r, n)
}

func TestChamber_FirstRocks(t *testing.T) {
	c := NewChamber(sampleFeed(t), 200)
	assert.Equal(t, Spawning, c.Phase())

	c.DropPiece()
	assert.Equal(t, Done, c.Phase())
	assert.Nil(t, c.Block)
	assert.Equal(t, int64(1), c.Pieces)
	assert.Equal(t, 1, c.TopHeight)
	assert.Equal(t, 4, c.JetIdx)
	// ..####.
	assert.Equal(t, uint8(0b0111100), c.Row(1))

	c.DropPiece()
	assert.Equal(t, 4, c.TopHeight)
	c.DropPiece()
	assert.Equal(t, 6, c.TopHeight)
	assert.Equal(t, 3, c.ShapeIdx)
}

func TestChamber_Sample2022(t *testing.T) {
	for _, rows := range []int{100, 200} {
		c := NewChamber(sampleFeed(t), rows)
		c.DropPieces(2022)
		assert.Equal(t, 3068, c.TopHeight)
		assert.Equal(t, int64(2022), c.Pieces)
	}
}

func TestChamber_SpawnGap(t *testing.T) {
	feeds := []JetFeed{sampleFeed(t), randomFeed(1, 100), randomFeed(2, 7)}
	for _, jets := range feeds {
		c := NewChamber(jets, 200)
		require.Equal(t, Falling, c.Advance(math.MaxInt64))
		assert.Equal(t, Pt{SpawnX, SpawnGap}, c.Block.Pos)

		// The rock spawned above the floor falls for SpawnGap ticks before
		// it can touch anything.
		for range SpawnGap {
			assert.Equal(t, Falling, c.Advance(math.MaxInt64))
		}
		assert.Equal(t, Frozen, c.Advance(math.MaxInt64))
		assert.Equal(t, 1, c.TopHeight)
	}
}

func TestChamber_BlockedShiftLeavesBlockUnchanged(t *testing.T) {
	for seed := range uint64(5) {
		c := NewChamber(randomFeed(seed, 101), 200)
		blocked := 0
		for c.Pieces < 500 {
			if c.Block == nil {
				c.Spawn()
				continue
			}
			before := *c.Block
			if c.Shift() {
				assert.Equal(t, before.Pos.Y, c.Block.Pos.Y)
				assert.Equal(t, 1, abs(c.Block.Pos.X-before.Pos.X))
			} else {
				assert.Equal(t, before, *c.Block)
				blocked++
			}
			c.Drop()
		}
		assert.Greater(t, blocked, 0)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func TestChamber_MonotonicAndBounded(t *testing.T) {
	c := NewChamber(randomFeed(3, 1000), 100)
	top := c.TopHeight
	shift := c.HeightShift
	for c.Pieces < 3000 {
		c.Advance(math.MaxInt64)
		assert.GreaterOrEqual(t, c.TopHeight, top)
		assert.GreaterOrEqual(t, c.HeightShift, shift)
		top = c.TopHeight
		shift = c.HeightShift
	}
	// The window slid up with the tower but kept its size.
	assert.Equal(t, 100, c.Cap())
	assert.Greater(t, c.HeightShift, 1000)
	assert.Less(t, c.TopHeight-c.HeightShift, c.Cap())
}

func TestChamber_DropBelowWindowPanics(t *testing.T) {
	c := NewChamber(sampleFeed(t), 16)
	c.Block = &RockBlock{&Shapes[4], Pt{0, c.HeightShift}}
	assert.Panics(t, func() { c.Drop() })
}

func TestChamber_SpawnWhileFallingPanics(t *testing.T) {
	c := NewChamber(sampleFeed(t), 200)
	c.Spawn()
	assert.Panics(t, func() { c.Spawn() })
}

func TestChamber_DropNothing(t *testing.T) {
	c := NewChamber(sampleFeed(t), 200)
	c.DropPieces(0)
	assert.Equal(t, Spawning, c.Phase())
	assert.Equal(t, int64(0), c.Pieces)
	assert.False(t, c.Drop())
}

func TestChamber_CloneIsIndependent(t *testing.T) {
	c := NewChamber(sampleFeed(t), 200)
	c.DropPieces(100)
	for c.Advance(math.MaxInt64) != Falling {
	}

	clone := c.Clone()
	assert.True(t, c.Window.Equal(&clone.Window))
	assert.Equal(t, *c.Block, *clone.Block)

	clone.DropPieces(50)
	assert.Equal(t, int64(100), c.Pieces)
	assert.NotNil(t, c.Block)
	assert.False(t, c.Window.Equal(&clone.Window))

	// Both continue the same way.
	c.DropPieces(50)
	assert.Equal(t, clone.TopHeight, c.TopHeight)
	assert.True(t, SameState(c, clone))
}

func TestChamber_RunToSync(t *testing.T) {
	c := NewChamber(sampleFeed(t), 200)
	n := c.RunToSync()
	assert.Equal(t, 0, c.JetIdx)
	assert.Equal(t, int64(0), n%NumShapes)
	assert.Equal(t, n, c.Pieces)
}

func TestChamber_Deterministic(t *testing.T) {
	jets := randomFeed(11, 333)
	c1 := NewChamber(jets, 200)
	c2 := NewChamber(jets, 200)
	for range 20 {
		c1.DropPieces(100)
		c2.DropPieces(100)
		assert.Equal(t, c1.TopHeight, c2.TopHeight)
		assert.Equal(t, c1.StateBytes(), c2.StateBytes())
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"github.com/kamstrup/intmap"
)

var ErrNoCycle = errors.New("no cycle found")

// Cycle describes the periodic behavior of a chamber: once the chamber has
// dropped Start batches of rocks, every Period more batches add Gain to the
// height of the tower.
type Cycle struct {
	Method    string
	BatchSize int64
	// Start is a batch count from which the chamber is known to repeat.
	Start  int64
	Period int64
	Gain   int64
	// HeightA and HeightB are the heights of the two states found to be
	// identical, Period batches apart.
	HeightA int64
	HeightB int64
	// Iterations is the number of iterations the detector needed.
	Iterations int64

	jets       JetFeed
	windowRows int
	// anchor is the chamber after anchorBatches batches, in the periodic
	// part. Extrapolation continues from a copy of it.
	anchor        *Chamber
	anchorBatches int64
}

// Pieces is the number of rocks in one period.
func (c *Cycle) Pieces() int64 {
	return c.Period * c.BatchSize
}

// FindCycle runs the detector selected by cfg.CycleMethod.
func FindCycle(jets JetFeed, cfg Config) (*Cycle, error) {
	switch cfg.CycleMethod {
	case TwoSpeed:
		return FindCycleTwoSpeed(jets, cfg.WindowRows, cfg.BatchSize,
			cfg.MaxIterations)
	case History:
		return FindCycleHistory(jets, cfg.WindowRows, cfg.BatchSize,
			cfg.MaxIterations)
	}
	return nil, fmt.Errorf("unknown cycle method %q", cfg.CycleMethod)
}

// FindCycleTwoSpeed advances two chambers, one batch per iteration for the
// first and two batches per iteration for the second, until they reach the
// same state. After s iterations the first chamber dropped s batches and the
// second 2s, so the state after s batches repeats every s batches.
func FindCycleTwoSpeed(jets JetFeed, windowRows int, batchSize int64,
	maxIterations int64) (*Cycle, error) {
	a := NewChamber(jets, windowRows)
	b := NewChamber(jets, windowRows)

	for s := int64(1); s <= maxIterations; s++ {
		a.DropPieces(batchSize)
		b.DropPieces(2 * batchSize)
		if !SameState(a, b) {
			continue
		}
		return &Cycle{
			Method:        TwoSpeed,
			BatchSize:     batchSize,
			Start:         s,
			Period:        s,
			Gain:          int64(b.TopHeight - a.TopHeight),
			HeightA:       int64(a.TopHeight),
			HeightB:       int64(b.TopHeight),
			Iterations:    s,
			jets:          jets,
			windowRows:    windowRows,
			anchor:        b,
			anchorBatches: 2 * s,
		}, nil
	}
	return nil, fmt.Errorf("two-speed detector, %d iterations of %d rocks: %w",
		maxIterations, batchSize, ErrNoCycle)
}

type visit struct {
	batches int64
	height  int64
	state   []byte
}

// FindCycleHistory drops batches into a single chamber and remembers every
// state it sees. The first state seen twice gives the exact start and period
// of the cycle.
func FindCycleHistory(jets JetFeed, windowRows int, batchSize int64,
	maxIterations int64) (*Cycle, error) {
	c := NewChamber(jets, windowRows)
	seen := intmap.New[uint64, []visit](1024)

	for i := int64(0); i <= maxIterations; i++ {
		if i > 0 {
			c.DropPieces(batchSize)
		}
		state := c.StateBytes()
		sig := c.Signature()
		visits, _ := seen.Get(sig)
		for _, v := range visits {
			if !bytes.Equal(v.state, state) {
				continue
			}
			height := int64(c.TopHeight)
			return &Cycle{
				Method:        History,
				BatchSize:     batchSize,
				Start:         v.batches,
				Period:        i - v.batches,
				Gain:          height - v.height,
				HeightA:       v.height,
				HeightB:       height,
				Iterations:    i,
				jets:          jets,
				windowRows:    windowRows,
				anchor:        c,
				anchorBatches: i,
			}, nil
		}
		seen.Put(sig, append(visits, visit{i, int64(c.TopHeight), state}))
	}
	return nil, fmt.Errorf("history detector, %d states of %d rocks: %w",
		seen.Len(), batchSize, ErrNoCycle)
}

// HeightAfter returns the height of the tower after the given number of rocks,
// simulating at most one period past the anchor.
func (c *Cycle) HeightAfter(pieces int64) int64 {
	batches := pieces / c.BatchSize
	rest := pieces % c.BatchSize

	// Before the periodic part, nothing can be extrapolated.
	if batches < c.Start {
		chamber := NewChamber(c.jets, c.windowRows)
		chamber.DropPieces(pieces)
		return int64(chamber.TopHeight)
	}

	ahead := batches - c.anchorBatches
	nCycles := FloorDiv(ahead, c.Period)
	extra := ahead - nCycles*c.Period

	chamber := c.anchor.Clone()
	for range extra {
		chamber.DropPieces(c.BatchSize)
	}
	chamber.DropPieces(rest)
	return int64(chamber.TopHeight) + nCycles*c.Gain
}

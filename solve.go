package main

import (
	"errors"
	"fmt"
)

var ErrCrossCheck = errors.New("extrapolated height differs from simulated height")

type Answers struct {
	Part1 int64
	Part2 int64
	Cycle *Cycle
}

// SimulateHeight drops rocks one by one and returns the height of the tower.
func SimulateHeight(jets JetFeed, windowRows int, pieces int64) int64 {
	c := NewChamber(jets, windowRows)
	c.DropPieces(pieces)
	return int64(c.TopHeight)
}

// Solve computes the height after cfg.Part1Pieces rocks by direct simulation
// and after cfg.Part2Pieces rocks by extrapolating from a cycle.
func Solve(jets JetFeed, cfg Config) (a Answers, err error) {
	a.Part1 = SimulateHeight(jets, cfg.WindowRows, cfg.Part1Pieces)

	a.Cycle, err = FindCycle(jets, cfg)
	if err != nil {
		return a, err
	}
	a.Part2 = a.Cycle.HeightAfter(cfg.Part2Pieces)

	if cfg.CrossCheckPieces > 0 {
		err = CrossCheck(a.Cycle, jets, cfg.WindowRows, cfg.CrossCheckPieces)
	}
	return a, err
}

// CrossCheck compares the extrapolated height with the simulated height for a
// number of rocks small enough to simulate.
func CrossCheck(cycle *Cycle, jets JetFeed, windowRows int, pieces int64) error {
	extrapolated := cycle.HeightAfter(pieces)
	simulated := SimulateHeight(jets, windowRows, pieces)
	if extrapolated != simulated {
		return fmt.Errorf("%d rocks, %s cycle of %d rocks: extrapolated %d, "+
			"simulated %d: %w", pieces, cycle.Method, cycle.Pieces(),
			extrapolated, simulated, ErrCrossCheck)
	}
	return nil
}

package main

import (
	"errors"
	"fmt"
	"io/fs"
)

var ErrScenarioFailed = errors.New("scenario failed")

// Scenario is a jet pattern with a known tower height, such as the example
// from the puzzle text.
type Scenario struct {
	Name   string `yaml:"Name"`
	Jets   string `yaml:"Jets"`
	Pieces int64  `yaml:"Pieces"`
	Height int64  `yaml:"Height"`
	// Simulate forces direct simulation instead of extrapolation.
	Simulate bool `yaml:"Simulate"`
}

type ScenarioSet struct {
	Scenarios []Scenario `yaml:"Scenarios"`
}

func LoadScenarios(fsys fs.FS, filename string) (set ScenarioSet) {
	LoadYAML(fsys, filename, &set)
	return
}

// Run computes the height for the scenario with the settings of cfg.
func (s *Scenario) Run(cfg Config) (int64, error) {
	jets, err := ParseJets(s.Jets)
	if err != nil {
		return 0, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	if s.Simulate {
		return SimulateHeight(jets, cfg.WindowRows, s.Pieces), nil
	}
	cycle, err := FindCycle(jets, cfg)
	if err != nil {
		return 0, fmt.Errorf("scenario %s: %w", s.Name, err)
	}
	return cycle.HeightAfter(s.Pieces), nil
}

// Check runs every scenario and fails on the first wrong height.
func (set *ScenarioSet) Check(cfg Config) error {
	for i := range set.Scenarios {
		s := &set.Scenarios[i]
		height, err := s.Run(cfg)
		if err != nil {
			return err
		}
		if height != s.Height {
			return fmt.Errorf("scenario %s: got height %d, want %d: %w",
				s.Name, height, s.Height, ErrScenarioFailed)
		}
	}
	return nil
}

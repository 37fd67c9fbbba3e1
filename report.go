package main

import (
	"github.com/goccy/go-yaml"
	"github.com/google/uuid"
)

// SimulationVersion identifies the rules of the simulation. If a change to the
// chamber makes any rock fall differently, SimulationVersion must change as
// well. RegressionPieces rocks are hashed into the report's RegressionId to
// catch changes that forgot to do this.
const SimulationVersion = 1

const RegressionPieces = 2022

// Report is the record of one run. Id is unique per run, so reports of
// different runs over the same input can be told apart.
type Report struct {
	Id                string `yaml:"Id"`
	SimulationVersion int64  `yaml:"SimulationVersion"`
	Input             string `yaml:"Input"`
	Jets              int    `yaml:"Jets"`
	Part1Pieces       int64  `yaml:"Part1Pieces"`
	Part1             int64  `yaml:"Part1"`
	Part2Pieces       int64  `yaml:"Part2Pieces"`
	Part2             int64  `yaml:"Part2"`
	CycleMethod       string `yaml:"CycleMethod"`
	CycleStart        int64  `yaml:"CycleStart"`
	CyclePieces       int64  `yaml:"CyclePieces"`
	CycleGain         int64  `yaml:"CycleGain"`
	RegressionId      string `yaml:"RegressionId"`
}

func NewReport(input string, jets JetFeed, cfg Config, a Answers) (r Report) {
	r.Id = uuid.New().String()
	r.SimulationVersion = SimulationVersion
	r.Input = input
	r.Jets = jets.Len()
	r.Part1Pieces = cfg.Part1Pieces
	r.Part1 = a.Part1
	r.Part2Pieces = cfg.Part2Pieces
	r.Part2 = a.Part2
	if a.Cycle != nil {
		r.CycleMethod = a.Cycle.Method
		r.CycleStart = a.Cycle.Start * a.Cycle.BatchSize
		r.CyclePieces = a.Cycle.Pieces()
		r.CycleGain = a.Cycle.Gain
	}
	r.RegressionId = RegressionId(jets, cfg.WindowRows, RegressionPieces)
	return
}

func (r *Report) Serialize() []byte {
	data, err := yaml.Marshal(r)
	Check(err)
	return data
}

func DeserializeReport(data []byte) (r Report) {
	err := yaml.Unmarshal(data, &r)
	Check(err)
	return
}

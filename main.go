package main

import (
	"fmt"
	"log"
	"os"
)

// Usage: pyroclastic [input-file]
//
// The input file defaults to InputFile from data/config.yaml.
func main() {
	log.SetFlags(log.Ltime | log.Lmicroseconds)

	fsys := DataFS(".")
	cfg, err := LoadConfig(fsys, "data/config.yaml")
	if err != nil {
		log.Fatal(err)
	}

	if cfg.ScenarioFile != "" {
		scenarios := LoadScenarios(fsys, cfg.ScenarioFile)
		if err := scenarios.Check(cfg); err != nil {
			log.Fatal(err)
		}
		log.Printf("%d scenarios passed", len(scenarios.Scenarios))
	}

	input := cfg.InputFile
	if len(os.Args) == 2 {
		input = os.Args[1]
	}
	text, err := ReadInput(input)
	if err != nil {
		log.Fatalf("reading input: %v", err)
	}
	jets, err := ParseJets(text)
	if err != nil {
		log.Fatalf("%s: %v", input, err)
	}
	log.Printf("%s: %d jets", input, jets.Len())

	answers, err := Solve(jets, cfg)
	if err != nil {
		log.Fatal(err)
	}
	c := answers.Cycle
	log.Printf("%s cycle after %d iterations: starts by rock %d, repeats "+
		"every %d rocks, adds %d rows", c.Method, c.Iterations,
		c.Start*c.BatchSize, c.Pieces(), c.Gain)

	report := NewReport(input, jets, cfg, answers)
	log.Printf("run %s, regression id %s", report.Id, report.RegressionId)
	if cfg.RecordToFile {
		WriteFile(cfg.RecordingFile, report.Serialize())
	}

	fmt.Println("Part 1:", answers.Part1)
	fmt.Println("Part 2:", answers.Part2)
}

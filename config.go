package main

import (
	"errors"
	"fmt"
	"github.com/goccy/go-yaml"
	"io/fs"
)

const (
	TwoSpeed = "two-speed"
	History  = "history"
)

type Config struct {
	InputFile  string `yaml:"InputFile"`
	WindowRows int    `yaml:"WindowRows"`
	// BatchSize is the number of rocks dropped between two comparisons of
	// the chamber states while looking for a cycle.
	BatchSize     int64  `yaml:"BatchSize"`
	MaxIterations int64  `yaml:"MaxIterations"`
	Part1Pieces   int64  `yaml:"Part1Pieces"`
	Part2Pieces   int64  `yaml:"Part2Pieces"`
	CycleMethod   string `yaml:"CycleMethod"`
	// CrossCheckPieces is a number of rocks small enough to simulate
	// directly. If not 0, the extrapolated height for this many rocks is
	// compared against the simulated one.
	CrossCheckPieces int64  `yaml:"CrossCheckPieces"`
	ScenarioFile     string `yaml:"ScenarioFile"`
	RecordToFile     bool   `yaml:"RecordToFile"`
	RecordingFile    string `yaml:"RecordingFile"`
}

func DefaultConfig() Config {
	return Config{
		InputFile:     "input.txt",
		WindowRows:    200,
		BatchSize:     NumShapes,
		MaxIterations: 100000,
		Part1Pieces:   2022,
		Part2Pieces:   1000000000000,
		CycleMethod:   TwoSpeed,
		RecordingFile: "report.yaml",
	}
}

func LoadYAML(fsys fs.FS, filename string, v any) {
	data, err := fs.ReadFile(fsys, filename)
	Check(err)
	err = yaml.Unmarshal(data, v)
	Check(err)
}

// LoadConfig reads the config file over the defaults, so keys missing from
// the file keep their default values.
func LoadConfig(fsys fs.FS, filename string) (Config, error) {
	cfg := DefaultConfig()
	data, err := fs.ReadFile(fsys, filename)
	if err != nil {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", filename, err)
	}
	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	var errs []error
	if c.WindowRows < MinWindowRows {
		errs = append(errs, fmt.Errorf("WindowRows is %d, must be at least %d",
			c.WindowRows, MinWindowRows))
	}
	// Both chambers must be at the same shape when their states are
	// compared.
	if c.BatchSize <= 0 || c.BatchSize%NumShapes != 0 {
		errs = append(errs, fmt.Errorf("BatchSize is %d, must be a positive "+
			"multiple of %d", c.BatchSize, NumShapes))
	}
	if c.MaxIterations <= 0 {
		errs = append(errs, fmt.Errorf("MaxIterations is %d, must be positive",
			c.MaxIterations))
	}
	if c.Part1Pieces < 0 || c.Part2Pieces < 0 || c.CrossCheckPieces < 0 {
		errs = append(errs, errors.New("piece counts cannot be negative"))
	}
	if c.CycleMethod != TwoSpeed && c.CycleMethod != History {
		errs = append(errs, fmt.Errorf("CycleMethod is %q, must be %q or %q",
			c.CycleMethod, TwoSpeed, History))
	}
	if c.RecordToFile && c.RecordingFile == "" {
		errs = append(errs, errors.New("RecordToFile is set but RecordingFile "+
			"is empty"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// Package config loads companion.yaml and turns it into stage settings.
//
// Precedence, lowest first: built-in defaults, the config file, CLI flags.
// The file is decoded over the defaults; flags are merged with mergo.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"dario.cat/mergo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"companion-generator/internal/engine"
	"companion-generator/internal/gen"
	"companion-generator/internal/logger"
	"companion-generator/internal/plan"
)

// DefaultFile is the config file looked up when none is given.
const DefaultFile = "companion.yaml"

// Config is the decoded companion.yaml.
type Config struct {
	// Inputs are doublestar patterns of snapshot files.
	Inputs []string `yaml:"inputs"`
	// Output is the directory generated files are written to.
	Output string `yaml:"output"`
	// Jobs bounds parallel synthesis; zero means GOMAXPROCS.
	Jobs int `yaml:"jobs"`
	// Header lines start every emitted unit.
	Header []string `yaml:"header"`
	// NoHeader drops the header entirely.
	NoHeader bool `yaml:"no_header"`
	// Usings are the namespaces imported by every emitted unit.
	Usings   []string `yaml:"usings"`
	Markers  Markers  `yaml:"markers"`
	LogLevel string   `yaml:"log_level"`
	// MaxSuggestions caps "did you mean" hints per diagnostic.
	MaxSuggestions int `yaml:"max_suggestions"`
}

// Markers lists the attribute names recognized for each marker kind.
type Markers struct {
	PickFrom            []string `yaml:"pick_from"`
	OptionalConstructor []string `yaml:"optional_constructor"`
}

// Default returns the built-in configuration.
func Default() *Config {
	rc := plan.DefaultConfig()
	gc := gen.DefaultGeneratorConfig()

	return &Config{
		Inputs: []string{"**/*.snapshot.yaml"},
		Output: "generated",
		Header: gc.Header,
		Usings: gc.Usings,
		Markers: Markers{
			PickFrom:            rc.PickFromNames,
			OptionalConstructor: rc.OptionalConstructorNames,
		},
		LogLevel:       string(logger.InfoLevel),
		MaxSuggestions: rc.MaxSuggestions,
	}
}

// Load reads path from fsys on top of Default. Keys present in the file win
// even when empty, so "usings: []" drops the default usings. A missing file
// is not an error when optional is true.
func Load(fsys afero.Fs, path string, optional bool) (*Config, error) {
	cfg := Default()

	data, err := afero.ReadFile(fsys, path)

	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	case optional && errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Merge overrides c with every non-zero field of other. Zero fields of other
// are treated as unset.
func (c *Config) Merge(other *Config) error {
	if err := mergo.Merge(c, other, mergo.WithOverride); err != nil {
		return fmt.Errorf("failed to merge config: %w", err)
	}

	return c.Validate()
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must not be negative, got %d", c.Jobs)
	}

	if c.MaxSuggestions < 0 {
		return fmt.Errorf("max_suggestions must not be negative, got %d", c.MaxSuggestions)
	}

	if _, ok := logger.ParseLevel(c.LogLevel); !ok {
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}

	return nil
}

// Engine returns the stage settings described by c.
func (c *Config) Engine() engine.Config {
	header := c.Header
	if c.NoHeader {
		header = nil
	}

	return engine.Config{
		Resolution: plan.ResolutionConfig{
			PickFromNames:            c.Markers.PickFrom,
			OptionalConstructorNames: c.Markers.OptionalConstructor,
			MaxSuggestions:           c.MaxSuggestions,
		},
		Generator: gen.GeneratorConfig{
			Header: header,
			Usings: c.Usings,
			Jobs:   c.Jobs,
		},
	}
}

// Logger returns the logger configuration for c.
func (c *Config) Logger() *logger.Config {
	cfg := logger.DefaultConfig()
	cfg.Level, _ = logger.ParseLevel(c.LogLevel)

	return cfg
}

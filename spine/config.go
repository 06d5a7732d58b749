// SPDX-License-Identifier: MIT

package spine

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the YAML form of the estimator parameters. Absent keys keep
// their defaults; unknown keys are rejected.
//
//	random_walk_number: 10
//	random_walk_length: 40
//	beta: 0.5
//	k: 10
//	structural_rate: 0.5
//	seed: 42
//	epsilon: 1.0e-6
type Config struct {
	RandomWalkNumber int     `yaml:"random_walk_number"`
	RandomWalkLength int     `yaml:"random_walk_length"`
	Beta             float64 `yaml:"beta"`
	K                int     `yaml:"k"`
	StructuralRate   float64 `yaml:"structural_rate"`
	Seed             uint64  `yaml:"seed"`
	Epsilon          float64 `yaml:"epsilon"`
}

// DefaultConfig mirrors DefaultOptions.
func DefaultConfig() Config {
	return Config{
		RandomWalkNumber: DefaultWalkNumber,
		RandomWalkLength: DefaultWalkLength,
		Beta:             DefaultBeta,
		K:                DefaultK,
		StructuralRate:   DefaultStructuralRate,
		Seed:             DefaultSeed,
		Epsilon:          DefaultEpsilon,
	}
}

// LoadConfig reads a YAML config file. An empty path yields the defaults.
func LoadConfig(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("LoadConfig: %w", err)
	}

	return ParseConfig(data)
}

// ParseConfig decodes a YAML document strictly over the defaults and
// validates the result. An empty document yields the defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return DefaultConfig(), fmt.Errorf("ParseConfig: %w: %v", ErrInvalidConfiguration, err)
	}
	if err := cfg.Validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("ParseConfig: %w", err)
	}

	return cfg, nil
}

// Validate runs the same checks as New.
func (c Config) Validate() error {
	o := DefaultOptions()
	for _, opt := range c.Options() {
		opt(&o)
	}

	return o.validate()
}

// Options converts c into functional options for New.
func (c Config) Options() []Option {
	return []Option{
		WithWalkNumber(c.RandomWalkNumber),
		WithWalkLength(c.RandomWalkLength),
		WithBeta(c.Beta),
		WithK(c.K),
		WithStructuralRate(c.StructuralRate),
		WithSeed(c.Seed),
		WithEpsilon(c.Epsilon),
	}
}

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultCapacity = 10
	DefaultDataDir  = ".arraylist"
	DefaultRepeats  = 3
	DefaultGrowthN  = 100
)

var DefaultBenchSizes = []int{1_000, 10_000, 100_000}

type Config struct {
	Capacity int          `yaml:"capacity"`
	DataDir  string       `yaml:"data_dir"`
	Scenario string       `yaml:"scenario"`
	Bench    BenchConfig  `yaml:"bench"`
	Growth   GrowthConfig `yaml:"growth"`
}

type BenchConfig struct {
	Sizes   []int `yaml:"sizes"`
	Repeats int   `yaml:"repeats"`
}

type GrowthConfig struct {
	N int `yaml:"n"`
}

func DefaultConfig() *Config {
	return &Config{
		Capacity: DefaultCapacity,
		DataDir:  DefaultDataDir,
		Bench: BenchConfig{
			Sizes:   append([]int(nil), DefaultBenchSizes...),
			Repeats: DefaultRepeats,
		},
		Growth: GrowthConfig{N: DefaultGrowthN},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects settings no command can run with. A zero capacity is
// valid and selects the list's default constructor.
func (c *Config) Validate() error {
	if c.Capacity < 0 {
		return fmt.Errorf("capacity must not be negative, got %d", c.Capacity)
	}
	if c.Bench.Repeats <= 0 {
		return fmt.Errorf("bench repeats must be positive, got %d", c.Bench.Repeats)
	}
	for _, n := range c.Bench.Sizes {
		if n <= 0 {
			return fmt.Errorf("bench sizes must be positive, got %d", n)
		}
	}
	if c.Growth.N < 0 {
		return fmt.Errorf("growth n must not be negative, got %d", c.Growth.N)
	}
	return nil
}

func (c *Config) Clone() *Config {
	cp := *c
	cp.Bench.Sizes = append([]int(nil), c.Bench.Sizes...)
	return &cp
}

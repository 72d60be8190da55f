package config

import "sort"

var Presets = map[string]*Config{
	"default": {
		Capacity: DefaultCapacity,
		DataDir:  DefaultDataDir,
		Bench:    BenchConfig{Sizes: []int{1_000, 10_000, 100_000}, Repeats: DefaultRepeats},
		Growth:   GrowthConfig{N: DefaultGrowthN},
	},
	"tiny": {
		Capacity: 1,
		DataDir:  DefaultDataDir,
		Bench:    BenchConfig{Sizes: []int{10, 100, 1_000}, Repeats: 5},
		Growth:   GrowthConfig{N: 20},
	},
	"small": {
		Capacity: 4,
		DataDir:  DefaultDataDir,
		Bench:    BenchConfig{Sizes: []int{100, 1_000, 10_000}, Repeats: DefaultRepeats},
		Growth:   GrowthConfig{N: 50},
	},
	"large": {
		Capacity: 1024,
		DataDir:  DefaultDataDir,
		Bench:    BenchConfig{Sizes: []int{100_000, 1_000_000}, Repeats: 2},
		Growth:   GrowthConfig{N: 1_000_000},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

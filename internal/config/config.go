// Package config loads the interpreter's optional TOML configuration file,
// using a DefaultConfig-then-DecodeFile pattern.
package config

import "github.com/BurntSushi/toml"

// Config holds settings for Specky's CLI collaborators: nothing here
// affects evaluator semantics, only how the CLI drives it.
type Config struct {
	Benchmark struct {
		MaxIterations int `toml:"max_iterations"`
		MaxSeconds    int `toml:"max_seconds"`
	} `toml:"benchmark"`

	Trace struct {
		Enabled bool   `toml:"enabled"`
		Output  string `toml:"output"` // not read by the CLI; trace lines always go to stderr
	} `toml:"trace"`
}

// Default returns the configuration used when no file is loaded: a
// benchmark run stops after 100,000 iterations or 10 seconds, whichever
// comes first, and tracing is off.
func Default() *Config {
	cfg := &Config{}
	cfg.Benchmark.MaxIterations = 100000
	cfg.Benchmark.MaxSeconds = 10
	cfg.Trace.Enabled = false
	return cfg
}

// Load reads and merges a TOML file at path over Default.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

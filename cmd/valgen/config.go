// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/valgen/base/iox/tomlx"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/pflag"
)

// DefaultConfigFile is the config file read when --config is not given.
// It is optional: a missing default file is not an error.
const DefaultConfigFile = "~/.config/valgen/config.toml"

// Config is the configuration for valgen, read from a TOML file
// and then overridden by any command line flags that are set.
type Config struct {

	// Preset is the name of the preset to select; it takes
	// precedence over Index when set, except that an --index flag
	// overrides a Preset from the config file.
	Preset string

	// Index is the index of the preset to select. Out of range
	// indexes are clamped to the nearest preset.
	Index int

	// Samples is the number of evaluations of each parameter per run.
	Samples int

	// Runs is the number of sampling runs, each with its own seed.
	Runs int

	// Seed is the base random seed; run i uses Seed+i+1.
	Seed int64

	// Steps is the number of presets to step through in the cycle command.
	Steps int
}

// Defaults sets the default configuration values.
func (c *Config) Defaults() {
	*c = Config{Samples: 1000, Runs: 1, Seed: 1, Steps: 5}
}

// Validate returns an error for values that cannot be used.
func (c *Config) Validate() error {
	if c.Samples < 1 {
		return fmt.Errorf("samples must be at least 1, not %d", c.Samples)
	}
	if c.Runs < 1 {
		return fmt.Errorf("runs must be at least 1, not %d", c.Runs)
	}
	if c.Steps < 0 {
		return fmt.Errorf("steps must not be negative, not %d", c.Steps)
	}
	return nil
}

// AddFlags adds flags for the config fields to the given flag set,
// with the current values as defaults.
func (c *Config) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "name of the preset to select")
	fs.IntVar(&c.Index, "index", c.Index, "index of the preset to select (clamped to the available presets)")
	fs.IntVarP(&c.Samples, "samples", "n", c.Samples, "number of evaluations per parameter per run")
	fs.IntVar(&c.Runs, "runs", c.Runs, "number of sampling runs")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "base random seed")
	fs.IntVar(&c.Steps, "steps", c.Steps, "number of presets to step through")
}

// Open loads the config from the given TOML file, keeping the values
// of any flags that were set on the command line. An empty file name
// opens [DefaultConfigFile] if it exists.
func (c *Config) Open(file string, fs *pflag.FlagSet) error {
	explicit := file != ""
	if !explicit {
		file = DefaultConfigFile
	}
	path, err := homedir.Expand(file)
	if err != nil {
		return err
	}
	if _, err := os.Stat(path); err != nil {
		if !explicit && os.IsNotExist(err) {
			slog.Debug("no config file", "path", path)
			return nil
		}
		return err
	}

	fc := Config{}
	fc.Defaults()
	if err := tomlx.Open(&fc, path); err != nil {
		return err
	}
	set := map[string]bool{}
	fs.Visit(func(f *pflag.Flag) { set[f.Name] = true })
	keep := func(name string, apply func()) {
		if !set[name] {
			apply()
		}
	}
	keep("preset", func() {
		// an index given on the command line wins over a preset name in the file
		if !set["index"] {
			c.Preset = fc.Preset
		}
	})
	keep("index", func() { c.Index = fc.Index })
	keep("samples", func() { c.Samples = fc.Samples })
	keep("runs", func() { c.Runs = fc.Runs })
	keep("seed", func() { c.Seed = fc.Seed })
	keep("steps", func() { c.Steps = fc.Steps })
	slog.Info("loaded config", "path", path)
	return nil
}

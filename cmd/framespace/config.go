// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cogentcore.org/framespace/base/errors"
	"cogentcore.org/framespace/scene"
	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the config file, looked for in the
// current directory and then in ~/.config/framespace.
const ConfigFile = "framespace.toml"

// Config is the configuration shared by all framespace commands.
// Values come from the defaults, then the first config file found,
// then command line flags.
type Config struct {

	// Scene is the TOML or YAML file that named frames are read from.
	Scene string `toml:"scene"`

	// Format is the output format: text, json or yaml.
	Format string `toml:"format"`

	// Tolerance is the tolerance for validating frames given
	// by basis vectors in the scene file.
	Tolerance float32 `toml:"tolerance"`

	// the verbosity flags
	Verbose     bool `toml:"-"`
	VeryVerbose bool `toml:"-"`
	Quiet       bool `toml:"-"`
}

// DefaultConfig returns the config used when no config file sets a value.
func DefaultConfig() *Config {
	return &Config{
		Scene:     "scene.toml",
		Format:    "text",
		Tolerance: scene.DefaultTolerance,
	}
}

// ConfigPaths returns the paths at which the config file is looked for,
// in order of precedence.
func ConfigPaths() []string {
	paths := []string{ConfigFile}
	if home := errors.Log1(homedir.Dir()); home != "" {
		paths = append(paths, filepath.Join(home, ".config", "framespace", ConfigFile))
	}
	return paths
}

// LoadConfig returns the default config updated from the first
// of the given files that exists.
func LoadConfig(paths ...string) (*Config, error) {
	c := DefaultConfig()
	for _, p := range paths {
		b, err := os.ReadFile(p)
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return c, err
		}
		if err := toml.Unmarshal(b, c); err != nil {
			return c, fmt.Errorf("config %q: %w", p, err)
		}
		return c, nil
	}
	return c, nil
}

// OpenScene opens the scene file named in the config.
func (c *Config) OpenScene() (*scene.Scene, error) {
	fn, err := c.ScenePath()
	if err != nil {
		return nil, err
	}
	sc := scene.New()
	sc.Tolerance = c.Tolerance
	if err := sc.Load(fn); err != nil {
		return nil, err
	}
	return sc, nil
}

// ScenePath returns the scene file name with any leading ~ expanded.
func (c *Config) ScenePath() (string, error) {
	return homedir.Expand(c.Scene)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package config holds the settings of the r2delaunay command.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Config describes one rendering run: how many points to generate, from which seed,
// and where to draw them.
type Config struct {
	Seed   int64  `yaml:"seed"`
	Points int    `yaml:"points"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Output string `yaml:"output"`
	// Format is "svg" or "png". When empty it is taken from the extension of Output.
	Format string `yaml:"format"`
}

func Default() Config {
	return Config{
		Seed:   12345,
		Points: 500,
		Width:  1000,
		Height: 1000,
		Output: "delaunay.svg",
	}
}

// Load reads a YAML settings file. Keys missing from the file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "config: reading settings file")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "config: parsing settings YAML")
	}
	return cfg, nil
}

// ResolvedFormat returns the output format, falling back to the extension of Output.
func (c Config) ResolvedFormat() string {
	if c.Format != "" {
		return strings.ToLower(c.Format)
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(c.Output)), ".")
}

func (c Config) Validate() error {
	if c.Points < 0 {
		return errors.Errorf("config: points %d must not be negative", c.Points)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return errors.Errorf("config: canvas %dx%d must be positive", c.Width, c.Height)
	}
	if c.Output == "" {
		return errors.New("config: output path is empty")
	}
	switch f := c.ResolvedFormat(); f {
	case FormatSVG, FormatPNG:
	default:
		return errors.Errorf("config: unknown format %q", f)
	}
	return nil
}

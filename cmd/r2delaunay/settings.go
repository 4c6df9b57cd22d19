// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"github.com/2dChan/r2delaunay/internal/config"
	"github.com/spf13/cobra"
)

// settingsFlags mirrors config.Config on the command line. Only flags set explicitly
// override the settings file.
type settingsFlags struct {
	seed   int64
	points int
	width  int
	height int
	output string
	format string
}

func (f *settingsFlags) register(cmd *cobra.Command, output bool) {
	def := config.Default()

	fs := cmd.Flags()
	fs.Int64VarP(&f.seed, "seed", "s", def.Seed, "random seed")
	fs.IntVarP(&f.points, "points", "n", def.Points, "number of points")
	if !output {
		return
	}
	fs.IntVar(&f.width, "width", def.Width, "canvas width in pixels")
	fs.IntVar(&f.height, "height", def.Height, "canvas height in pixels")
	fs.StringVarP(&f.output, "output", "o", def.Output, "output file")
	fs.StringVar(&f.format, "format", def.Format, "svg or png, taken from the output extension when empty")
}

func loadSettings(cmd *cobra.Command, path string, f *settingsFlags) (config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("seed") {
		cfg.Seed = f.seed
	}
	if fs.Changed("points") {
		cfg.Points = f.points
	}
	if fs.Changed("width") {
		cfg.Width = f.width
	}
	if fs.Changed("height") {
		cfg.Height = f.height
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("format") {
		cfg.Format = f.format
	}

	return cfg, cfg.Validate()
}

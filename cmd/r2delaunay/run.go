// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/2dChan/r2delaunay"
	"github.com/2dChan/r2delaunay/internal/config"
	"github.com/2dChan/r2delaunay/internal/render"
	"github.com/2dChan/r2delaunay/utils"
	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
)

// lowerHullEps is the tolerance handed to quickhull by the lower hull check.
const lowerHullEps = 1e-12

func triangulate(cfg config.Config) (*r2delaunay.Triangulation, error) {
	points := utils.GenerateRandomPoints(cfg.Points, cfg.Seed)
	dt, err := r2delaunay.NewTriangulation(points)
	if err != nil {
		return nil, errors.Wrapf(err, "triangulating %d points (seed %d)", cfg.Points, cfg.Seed)
	}
	return dt, nil
}

func runRender(out io.Writer, cfg config.Config) (err error) {
	dt, err := triangulate(cfg)
	if err != nil {
		return err
	}
	sc, err := render.NewScene(dt.Mesh, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}

	file, err := os.Create(cfg.Output)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing output file")
		}
	}()

	switch cfg.ResolvedFormat() {
	case config.FormatPNG:
		err = sc.WritePNG(file)
	default:
		err = sc.WriteSVG(file)
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%s %s: %d triangles, %d hull points, %d skipped\n",
		aurora.Green("wrote"), cfg.Output, len(dt.Triangles()), len(dt.Hull()), len(dt.Skipped))
	return nil
}

func runVerify(out io.Writer, cfg config.Config) error {
	dt, err := triangulate(cfg)
	if err != nil {
		return err
	}

	checks := []struct {
		name string
		fn   func() error
	}{
		{"mesh", dt.Validate},
		{"lower hull", func() error {
			if dt.NumVertices() < 5 {
				return nil
			}
			return dt.CompareLowerHull(lowerHullEps)
		}},
	}

	failed := 0
	for _, c := range checks {
		if err := c.fn(); err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", aurora.Red("FAIL"), c.name, err)
			continue
		}
		fmt.Fprintf(out, "%s %s\n", aurora.Green("ok"), c.name)
	}
	fmt.Fprintf(out, "%d vertices, %d faces, %d edges, %d skipped\n",
		dt.NumVertices(), dt.NumFaces(), dt.NumEdges(), len(dt.Skipped))

	if failed > 0 {
		return errors.Errorf("%d of %d checks failed", failed, len(checks))
	}
	return nil
}

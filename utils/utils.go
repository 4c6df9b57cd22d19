// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package utils provides utility functions for generating planar point sets.

package utils

import (
	"math/rand"

	"github.com/golang/geo/r2"
)

// GenerateRandomPoints generates cnt points uniformly distributed in the unit square.
// The seed parameter ensures reproducibility.
func GenerateRandomPoints(cnt int, seed int64) []r2.Point {
	//nolint:gosec
	random := rand.New(rand.NewSource(seed))
	points := make([]r2.Point, cnt)

	for i := range cnt {
		points[i] = r2.Point{
			X: random.Float64(),
			Y: random.Float64(),
		}
	}

	return points
}

// GenerateGridPoints generates an nx by ny lattice with the given spacing, starting at
// the origin. Lattices are heavily cocircular and collinear, which makes them a useful
// stress input.
func GenerateGridPoints(nx, ny int, spacing float64) []r2.Point {
	points := make([]r2.Point, 0, nx*ny)
	for j := range ny {
		for i := range nx {
			points = append(points, r2.Point{X: float64(i) * spacing, Y: float64(j) * spacing})
		}
	}
	return points
}

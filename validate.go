// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"slices"

	"github.com/2dChan/r2delaunay/geometry"
	"github.com/2dChan/r2delaunay/lifting"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Validate performs several sanity checks on the Triangulation: the mesh invariants,
// counter-clockwise finite faces, the face count implied by Euler's formula and a
// brute-force empty circumcircle test against every vertex. It returns nil if no
// issues were found. The circumcircle test is quadratic, so it is meant for tests and
// debugging.
func (dt *Triangulation) Validate() error {
	if err := dt.Mesh.Validate(); err != nil {
		return err
	}

	var positions []r2.Point
	for v := range dt.Vertices() {
		if p, ok := v.Position(); ok {
			positions = append(positions, p)
		}
	}

	numFinite := 0
	for f := range dt.FiniteFaces() {
		numFinite++
		tri, _ := f.Triangle()
		if !geometry.Orientation(tri[0], tri[1], tri[2]) {
			return errors.Errorf("r2delaunay: face %d is not counter-clockwise", f.Index())
		}
		for _, p := range positions {
			if geometry.InCircle(p, tri[0], tri[1], tri[2]) {
				return errors.Errorf("r2delaunay: point %v lies inside the circumcircle of face %d", p, f.Index())
			}
		}
	}

	n := len(positions)
	h := len(dt.Hull())
	if want := 2*n - h - 2; numFinite != want {
		return errors.Errorf("r2delaunay: %d finite faces, want %d for %d points with %d on the hull",
			numFinite, want, n, h)
	}
	return nil
}

// CompareLowerHull checks that the finite faces are exactly the triangles found by
// lifting.Triangles. Only meaningful when no four vertices are cocircular.
func (dt *Triangulation) CompareLowerHull(eps float64) error {
	var (
		positions []r2.Point
		ids       []int
	)
	for v := range dt.Vertices() {
		if p, ok := v.Position(); ok {
			idx, _ := v.PointIndex()
			positions = append(positions, p)
			ids = append(ids, idx)
		}
	}

	lower, err := lifting.Triangles(positions, eps)
	if err != nil {
		return errors.Wrap(err, "r2delaunay: lower hull")
	}

	want := make(map[[3]int]struct{}, len(lower))
	for _, t := range lower {
		want[canonicalTriangle([3]int{ids[t[0]], ids[t[1]], ids[t[2]]})] = struct{}{}
	}

	got := dt.Triangles()
	for _, t := range got {
		if _, ok := want[canonicalTriangle(t)]; !ok {
			return errors.Errorf("r2delaunay: triangle %v is not on the lower hull", t)
		}
	}
	if len(got) != len(want) {
		return errors.Errorf("r2delaunay: %d triangles, lower hull has %d", len(got), len(want))
	}
	return nil
}

// canonicalTriangle rotates t so that its smallest index comes first, keeping the
// winding.
func canonicalTriangle(t [3]int) [3]int {
	i := slices.Index(t[:], slices.Min(t[:]))
	return [3]int{t[i], t[(i+1)%3], t[(i+2)%3]}
}

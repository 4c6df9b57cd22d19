// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package lifting computes Delaunay triangles independently of the incremental builder:
// points are lifted onto the paraboloid z = x² + y² and the downward-facing faces of
// their convex hull are projected back to the plane.
//
// The result is only unique for points in general position; four or more cocircular
// points admit several Delaunay triangulations.
package lifting

import (
	"github.com/2dChan/r2delaunay/geometry"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/markus-wa/quickhull-go/v2"
	"github.com/pkg/errors"
)

// Lift maps p onto the paraboloid z = x² + y².
func Lift(p r2.Point) r3.Vector {
	return r3.Vector{X: p.X, Y: p.Y, Z: p.X*p.X + p.Y*p.Y}
}

// Triangles returns the Delaunay triangles of points as counter-clockwise index triples.
// eps is handed to quickhull and also bounds how close to vertical a hull face may be
// before it is discarded.
func Triangles(points []r2.Point, eps float64) ([][3]int, error) {
	numPoints := len(points)
	if numPoints < 4 {
		return nil,
			errors.Errorf("lifting: insufficient points %d for a hull (minimum 4 required)", numPoints)
	}

	lifted := make([]r3.Vector, numPoints)
	var centroid r3.Vector
	for i, p := range points {
		lifted[i] = Lift(p)
		centroid = centroid.Add(lifted[i])
	}
	centroid = centroid.Mul(1 / float64(numPoints))

	qh := new(quickhull.QuickHull)
	ch := qh.ConvexHull(lifted, true, true, eps)
	if len(ch.Indices) == 0 || len(ch.Indices)%3 != 0 {
		return nil, errors.Errorf("lifting: inconsistent number of indices %d returned from QuickHull", len(ch.Indices))
	}

	tris := make([][3]int, 0, len(ch.Indices)/6)
	for i := 0; i < len(ch.Indices); i += 3 {
		t := [3]int{ch.Indices[i], ch.Indices[i+1], ch.Indices[i+2]}
		a, b, c := lifted[t[0]], lifted[t[1]], lifted[t[2]]

		normal := b.Sub(a).Cross(c.Sub(a))
		if normal.Dot(a.Sub(centroid)) < 0 {
			normal = normal.Mul(-1)
		}
		if normal.Z >= -eps*normal.Norm() {
			continue
		}

		if !geometry.Orientation(points[t[0]], points[t[1]], points[t[2]]) {
			t[1], t[2] = t[2], t[1]
		}
		tris = append(tris, t)
	}

	if len(tris) == 0 {
		return nil, errors.New("lifting: no lower hull faces, points may be collinear")
	}
	return tris, nil
}

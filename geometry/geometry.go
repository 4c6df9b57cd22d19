// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package geometry provides the numeric predicates used by the triangulation.
//
// All functions use plain float64 arithmetic. Results for nearly collinear or nearly
// cocircular inputs are not robust.
package geometry

import (
	"math"

	"github.com/golang/geo/r2"
)

// Orientation reports whether the turn p0 -> p1 -> p2 is strictly counter-clockwise.
// Collinear and clockwise inputs both return false.
func Orientation(p0, p1, p2 r2.Point) bool {
	return p1.Sub(p0).Cross(p2.Sub(p0)) > 0
}

// circumdelta returns the circumcenter of p0, p1, p2 relative to p0.
func circumdelta(p0, p1, p2 r2.Point) r2.Point {
	d := p1.Sub(p0)
	e := p2.Sub(p0)

	bl := d.Dot(d)
	cl := e.Dot(e)
	k := 0.5 / d.Cross(e)

	return r2.Point{
		X: (e.Y*bl - d.Y*cl) * k,
		Y: (d.X*cl - e.X*bl) * k,
	}
}

// SquaredCircumradius returns the squared radius of the circle through p0, p1, p2.
// It is only meant for comparisons; collinear inputs yield +Inf or NaN.
func SquaredCircumradius(p0, p1, p2 r2.Point) float64 {
	c := circumdelta(p0, p1, p2)
	return c.Dot(c)
}

// Circumcenter returns the center of the circle through p0, p1, p2.
// The result is not finite when the points are collinear.
func Circumcenter(p0, p1, p2 r2.Point) r2.Point {
	return p0.Add(circumdelta(p0, p1, p2))
}

// InCircle reports whether p lies strictly inside the circle through p0, p1, p2.
// The winding of p0, p1, p2 does not matter; for collinear p0, p1, p2 it returns false.
func InCircle(p, p0, p1, p2 r2.Point) bool {
	d := p0.Sub(p)
	e := p1.Sub(p)
	f := p2.Sub(p)

	ap := d.Dot(d)
	bp := e.Dot(e)
	cp := f.Dot(f)

	det := d.X*(e.Y*cp-bp*f.Y) - d.Y*(e.X*cp-bp*f.X) + ap*(e.X*f.Y-e.Y*f.X)

	area := p1.Sub(p0).Cross(p2.Sub(p0))
	switch {
	case area > 0:
		return det > 0
	case area < 0:
		return det < 0
	}
	return false
}

func DistanceSquared(a, b r2.Point) float64 {
	d := a.Sub(b)
	return d.Dot(d)
}

// IsFinite reports whether both coordinates of p are finite numbers.
func IsFinite(p r2.Point) bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) && !math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package r2delaunay computes Delaunay triangulations of planar point sets by
// incremental insertion and exposes them as half-edge meshes.
package r2delaunay

import (
	"github.com/2dChan/r2delaunay/halfedge"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	defaultEps = 1e-12
)

// ErrNoSeedTriangle is returned when the input does not contain three usable,
// non-collinear points.
var ErrNoSeedTriangle = errors.New("r2delaunay: no valid seed triangle")

// Triangulation is a Delaunay triangulation. Faces of the embedded mesh that touch the
// infinite vertex represent the exterior.
type Triangulation struct {
	*halfedge.Mesh

	// Skipped holds, in ascending order, the indices of input points that are not
	// vertices of the mesh: non-finite points, repeated points and points the
	// insertion could not place.
	Skipped []int
}

// Hull returns the point indices of the convex hull in counter-clockwise order.
func (dt *Triangulation) Hull() []int {
	start := dt.Vertex(halfedge.InfiniteVertex).Edge()
	hull := make([]int, 0)
	for s := start; ; {
		p, _ := s.Next().Origin().PointIndex()
		hull = append(hull, p)
		s = s.Twin().Next()
		if s == start {
			break
		}
	}
	return hull
}

type TriangulationOptions struct {
	// Eps is the relative tolerance below which the seed triangle counts as collinear.
	Eps float64
}

type TriangulationOption func(*TriangulationOptions) error

// WithEps sets the seed degeneracy tolerance. eps must lie in (0, 1).
func WithEps(eps float64) TriangulationOption {
	return func(o *TriangulationOptions) error {
		if eps <= 0 || eps >= 1 {
			return errors.Errorf("r2delaunay: eps %v out of range (0 1)", eps)
		}
		o.Eps = eps
		return nil
	}
}

// NewTriangulation computes the Delaunay triangulation of points.
//
// The input slice is copied and left untouched. It returns an error wrapping
// ErrNoSeedTriangle when fewer than three distinct finite points exist or all of them
// are collinear.
func NewTriangulation(points []r2.Point, setters ...TriangulationOption) (*Triangulation, error) {
	opts := TriangulationOptions{
		Eps: defaultEps,
	}
	for _, set := range setters {
		if err := set(&opts); err != nil {
			return nil, err
		}
	}

	b := newBuilder(points)
	if err := b.build(opts.Eps); err != nil {
		return nil, err
	}

	m, err := halfedge.New(b.points, b.halfEdges, b.faces, b.vertices)
	if err != nil {
		return nil, errors.Wrap(err, "r2delaunay: inconsistent mesh")
	}

	return &Triangulation{
		Mesh:    m,
		Skipped: b.skipped,
	}, nil
}

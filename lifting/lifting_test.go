// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package lifting

import (
	"slices"
	"testing"

	"github.com/2dChan/r2delaunay/geometry"
	"github.com/2dChan/r2delaunay/utils"
	"github.com/golang/geo/r2"
	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

const testEps = 1e-12

func TestLift(t *testing.T) {
	tests := []struct {
		in   r2.Point
		want r3.Vector
	}{
		{r2.Point{X: 0, Y: 0}, r3.Vector{X: 0, Y: 0, Z: 0}},
		{r2.Point{X: 1, Y: 2}, r3.Vector{X: 1, Y: 2, Z: 5}},
		{r2.Point{X: -3, Y: 0.5}, r3.Vector{X: -3, Y: 0.5, Z: 9.25}},
	}
	for _, tt := range tests {
		if got := Lift(tt.in); got != tt.want {
			t.Errorf("Lift(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTriangles_InsufficientPoints(t *testing.T) {
	for n := range 4 {
		points := utils.GenerateRandomPoints(n, 0)
		if _, err := Triangles(points, testEps); err == nil {
			t.Errorf("Triangles(%d points) error = nil, want non-nil", n)
		}
	}
}

func TestTriangles_Kite(t *testing.T) {
	points := []r2.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: -1}}

	tris, err := Triangles(points, testEps)
	if err != nil {
		t.Fatalf("Triangles(...) error = %v, want nil", err)
	}

	want := [][3]int{{0, 3, 2}, {1, 2, 3}}
	if diff := cmp.Diff(want, canonical(tris), sortTriangles); diff != "" {
		t.Errorf("Triangles(...) mismatch (-want +got):\n%s", diff)
	}
}

func TestTriangles_RandomPoints(t *testing.T) {
	points := utils.GenerateRandomPoints(200, 0)

	tris, err := Triangles(points, testEps)
	if err != nil {
		t.Fatalf("Triangles(...) error = %v, want nil", err)
	}

	for _, tri := range tris {
		a, b, c := points[tri[0]], points[tri[1]], points[tri[2]]
		if !geometry.Orientation(a, b, c) {
			t.Errorf("triangle %v is not counter-clockwise", tri)
		}
		for i, p := range points {
			if slices.Contains(tri[:], i) {
				continue
			}
			if geometry.InCircle(p, a, b, c) {
				t.Errorf("point %d lies inside the circumcircle of %v", i, tri)
			}
		}
	}
}

// Helpers

var sortTriangles = cmpopts.SortSlices(func(a, b [3]int) bool {
	return slices.Compare(a[:], b[:]) < 0
})

func canonical(tris [][3]int) [][3]int {
	out := make([][3]int, len(tris))
	for i, t := range tris {
		j := slices.Index(t[:], slices.Min(t[:]))
		out[i] = [3]int{t[j], t[(j+1)%3], t[(j+2)%3]}
	}
	return out
}

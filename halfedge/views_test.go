// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"testing"

	"github.com/golang/geo/r2"
	"github.com/google/go-cmp/cmp"
)

// Mesh views

func TestMesh_ViewPanics(t *testing.T) {
	m := mustNewTriangleMesh(t)
	tests := []struct {
		name string
		fn   func()
	}{
		{"Edge(-1)", func() { m.Edge(-1) }},
		{"Edge(n)", func() { m.Edge(m.NumHalfEdges()) }},
		{"Face(-1)", func() { m.Face(-1) }},
		{"Face(n)", func() { m.Face(m.NumFaces()) }},
		{"Vertex(-1)", func() { m.Vertex(-1) }},
		{"Vertex(n)", func() { m.Vertex(m.NumVertices()) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("m.%s did not panic, want panic", tt.name)
				}
			}()
			tt.fn()
		})
	}
}

func TestMesh_Edges(t *testing.T) {
	m := mustNewTriangleMesh(t)

	var got []int
	for e := range m.Edges() {
		got = append(got, e.Index())
	}
	want := []int{0, 2, 4, 6, 8, 10}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("m.Edges() mismatch (-want +got):\n%s", diff)
	}

	// The sequence is restartable and stops early on break.
	n := 0
	for range m.Edges() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("m.Edges() yielded %d edges before break, want 2", n)
	}
}

func TestMesh_HalfEdgesTwin(t *testing.T) {
	m := mustNewTriangleMesh(t)
	n := 0
	for e := range m.HalfEdges() {
		n++
		if got := e.Twin().Twin().Index(); got != e.Index() {
			t.Errorf("Edge(%d).Twin().Twin() = %d, want %d", e.Index(), got, e.Index())
		}
		if e.Twin().ID() != e.ID() {
			t.Errorf("Edge(%d).Twin().ID() = %d, want %d", e.Index(), e.Twin().ID(), e.ID())
		}
	}
	if n != m.NumHalfEdges() {
		t.Errorf("m.HalfEdges() yielded %d, want %d", n, m.NumHalfEdges())
	}
}

func TestMesh_FacesAndFiniteFaces(t *testing.T) {
	m := mustNewTriangleMesh(t)

	var all, finite []int
	for f := range m.Faces() {
		all = append(all, f.Index())
	}
	for f := range m.FiniteFaces() {
		finite = append(finite, f.Index())
	}
	if diff := cmp.Diff([]int{0, 1, 2, 3}, all); diff != "" {
		t.Errorf("m.Faces() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{0}, finite); diff != "" {
		t.Errorf("m.FiniteFaces() mismatch (-want +got):\n%s", diff)
	}
}

// Edge

func TestEdge_Navigation(t *testing.T) {
	m := mustNewTriangleMesh(t)

	e := m.Edge(0)
	if got := e.Next().Index(); got != 2 {
		t.Errorf("Edge(0).Next() = %d, want 2", got)
	}
	if got := e.Prev().Index(); got != 4 {
		t.Errorf("Edge(0).Prev() = %d, want 4", got)
	}
	if got := e.Face().Index(); got != 0 {
		t.Errorf("Edge(0).Face() = %d, want 0", got)
	}
	if got := e.Twin().Face().Index(); got != 1 {
		t.Errorf("Edge(0).Twin().Face() = %d, want 1", got)
	}
	o, d := e.Vertices()
	if o.Index() != 1 || d.Index() != 2 {
		t.Errorf("Edge(0).Vertices() = (%d, %d), want (1, 2)", o.Index(), d.Index())
	}
	if d.Index() != e.Destination().Index() {
		t.Errorf("Edge(0).Destination() = %d, want %d", e.Destination().Index(), d.Index())
	}
	if !e.IsFinite() {
		t.Errorf("Edge(0).IsFinite() = false, want true")
	}
	if m.Edge(6).IsFinite() {
		t.Errorf("Edge(6).IsFinite() = true, want false")
	}
}

// Face

func TestFace_Edges(t *testing.T) {
	m := mustNewTriangleMesh(t)
	for f := range m.Faces() {
		var got []int
		for e := range f.Edges() {
			got = append(got, e.Index())
			if e.Face().Index() != f.Index() {
				t.Errorf("Face(%d) edge %d belongs to face %d", f.Index(), e.Index(), e.Face().Index())
			}
		}
		if len(got) != 3 {
			t.Errorf("Face(%d).Edges() yielded %v, want 3 edges", f.Index(), got)
		}
		if got[0] != f.Edge().Index() {
			t.Errorf("Face(%d).Edges() starts at %d, want %d", f.Index(), got[0], f.Edge().Index())
		}
	}
}

func TestFace_Vertices(t *testing.T) {
	m := mustNewTriangleMesh(t)
	tests := []struct {
		face int
		want []int
	}{
		{0, []int{1, 2, 3}},
		{1, []int{2, 1, 0}},
		{2, []int{3, 2, 0}},
		{3, []int{1, 3, 0}},
	}
	for _, tt := range tests {
		var got []int
		for v := range m.Face(tt.face).Vertices() {
			got = append(got, v.Index())
		}
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("Face(%d).Vertices() mismatch (-want +got):\n%s", tt.face, diff)
		}
	}
}

func TestFace_Triangle(t *testing.T) {
	m := mustNewTriangleMesh(t)

	tri, ok := m.Face(0).Triangle()
	if !ok {
		t.Fatalf("Face(0).Triangle() ok = false, want true")
	}
	want := [3]r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: 1}}
	if diff := cmp.Diff(want, tri); diff != "" {
		t.Errorf("Face(0).Triangle() mismatch (-want +got):\n%s", diff)
	}

	for i := 1; i < m.NumFaces(); i++ {
		if _, ok := m.Face(i).Triangle(); ok {
			t.Errorf("Face(%d).Triangle() ok = true, want false", i)
		}
		if _, ok := m.Face(i).PointIndices(); ok {
			t.Errorf("Face(%d).PointIndices() ok = true, want false", i)
		}
		if m.Face(i).IsFinite() {
			t.Errorf("Face(%d).IsFinite() = true, want false", i)
		}
	}
}

// Vertex

func TestVertex_Position(t *testing.T) {
	m := mustNewTriangleMesh(t)

	if _, ok := m.Vertex(InfiniteVertex).Position(); ok {
		t.Errorf("Vertex(0).Position() ok = true, want false")
	}
	if _, ok := m.Vertex(InfiniteVertex).PointIndex(); ok {
		t.Errorf("Vertex(0).PointIndex() ok = true, want false")
	}
	if m.Vertex(InfiniteVertex).IsFinite() {
		t.Errorf("Vertex(0).IsFinite() = true, want false")
	}

	for i := 1; i < m.NumVertices(); i++ {
		v := m.Vertex(i)
		p, ok := v.Position()
		if !ok {
			t.Fatalf("Vertex(%d).Position() ok = false, want true", i)
		}
		if want := m.Point(i - 1); p != want {
			t.Errorf("Vertex(%d).Position() = %v, want %v", i, p, want)
		}
	}
}

func TestVertex_Edge(t *testing.T) {
	m := mustNewTriangleMesh(t)
	for v := range m.Vertices() {
		if got := v.Edge().Origin().Index(); got != v.Index() {
			t.Errorf("Vertex(%d).Edge().Origin() = %d, want %d", v.Index(), got, v.Index())
		}
	}
}

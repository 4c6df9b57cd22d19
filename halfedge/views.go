// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package halfedge

import (
	"iter"

	"github.com/golang/geo/r2"
)

// Edge is a view of a half-edge in a Mesh.
type Edge struct {
	idx int
	m   *Mesh
}

// Face is a view of a face in a Mesh.
type Face struct {
	idx int
	m   *Mesh
}

// Vertex is a view of a vertex in a Mesh.
type Vertex struct {
	idx int
	m   *Mesh
}

// Edge returns the view of half-edge i.
func (m *Mesh) Edge(i int) Edge {
	if i < 0 || i >= len(m.halfEdges) {
		panic("Edge: index out of range")
	}
	return Edge{idx: i, m: m}
}

func (m *Mesh) Face(i int) Face {
	if i < 0 || i >= len(m.faces) {
		panic("Face: index out of range")
	}
	return Face{idx: i, m: m}
}

func (m *Mesh) Vertex(i int) Vertex {
	if i < 0 || i >= len(m.vertices) {
		panic("Vertex: index out of range")
	}
	return Vertex{idx: i, m: m}
}

// Edges yields one half-edge per undirected edge (the even half-edge of each pair).
func (m *Mesh) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := 0; i < len(m.halfEdges); i += 2 {
			if !yield(Edge{idx: i, m: m}) {
				return
			}
		}
	}
}

// HalfEdges yields every half-edge.
func (m *Mesh) HalfEdges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		for i := range m.halfEdges {
			if !yield(Edge{idx: i, m: m}) {
				return
			}
		}
	}
}

func (m *Mesh) Faces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for i := range m.faces {
			if !yield(Face{idx: i, m: m}) {
				return
			}
		}
	}
}

// FiniteFaces yields the faces not touching the infinite vertex, i.e. the triangles.
func (m *Mesh) FiniteFaces() iter.Seq[Face] {
	return func(yield func(Face) bool) {
		for f := range m.Faces() {
			if f.IsFinite() && !yield(f) {
				return
			}
		}
	}
}

// Vertices yields every vertex, the infinite vertex included.
func (m *Mesh) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for i := range m.vertices {
			if !yield(Vertex{idx: i, m: m}) {
				return
			}
		}
	}
}

// Edge

func (e Edge) Index() int {
	return e.idx
}

// ID returns the index of the undirected edge, shared by both half-edges of a pair.
func (e Edge) ID() int {
	return e.idx / 2
}

func (e Edge) Twin() Edge {
	return Edge{idx: Twin(e.idx), m: e.m}
}

func (e Edge) Next() Edge {
	return Edge{idx: e.m.halfEdges[e.idx].Next, m: e.m}
}

// Prev returns the half-edge preceding e on its face.
func (e Edge) Prev() Edge {
	return e.Next().Next()
}

func (e Edge) Origin() Vertex {
	return Vertex{idx: e.m.halfEdges[e.idx].Origin, m: e.m}
}

func (e Edge) Destination() Vertex {
	return e.Twin().Origin()
}

// Face returns the face to the left of e.
func (e Edge) Face() Face {
	return Face{idx: e.m.halfEdges[e.idx].Face, m: e.m}
}

// Vertices returns the origin of e and the origin of its twin.
func (e Edge) Vertices() (Vertex, Vertex) {
	return e.Origin(), e.Destination()
}

// IsFinite reports whether neither endpoint is the infinite vertex.
func (e Edge) IsFinite() bool {
	return e.Origin().IsFinite() && e.Destination().IsFinite()
}

// Face

func (f Face) Index() int {
	return f.idx
}

// Edge returns the half-edge the face record points at.
func (f Face) Edge() Edge {
	return Edge{idx: f.m.faces[f.idx].Edge, m: f.m}
}

// Edges walks the face boundary starting at the stored half-edge until it returns to it.
func (f Face) Edges() iter.Seq[Edge] {
	return func(yield func(Edge) bool) {
		start := f.m.faces[f.idx].Edge
		e := start
		for {
			if !yield(Edge{idx: e, m: f.m}) {
				return
			}
			e = f.m.halfEdges[e].Next
			if e == start {
				return
			}
		}
	}
}

// Vertices yields the origins of Edges.
func (f Face) Vertices() iter.Seq[Vertex] {
	return func(yield func(Vertex) bool) {
		for e := range f.Edges() {
			if !yield(e.Origin()) {
				return
			}
		}
	}
}

// IsFinite reports whether the face is a real triangle rather than part of the exterior.
func (f Face) IsFinite() bool {
	for v := range f.Vertices() {
		if !v.IsFinite() {
			return false
		}
	}
	return true
}

// PointIndices returns the point indices of the face's corners in boundary order.
// ok is false for faces touching the infinite vertex.
func (f Face) PointIndices() (idx [3]int, ok bool) {
	i := 0
	for v := range f.Vertices() {
		p, finite := v.PointIndex()
		if !finite || i == len(idx) {
			return [3]int{}, false
		}
		idx[i] = p
		i++
	}
	return idx, i == len(idx)
}

// Triangle returns the corner positions in boundary order.
// ok is false for faces touching the infinite vertex.
func (f Face) Triangle() (tri [3]r2.Point, ok bool) {
	idx, ok := f.PointIndices()
	if !ok {
		return tri, false
	}
	for i, p := range idx {
		tri[i] = f.m.points[p]
	}
	return tri, true
}

// Vertex

func (v Vertex) Index() int {
	return v.idx
}

// Edge returns a half-edge originating at v.
func (v Vertex) Edge() Edge {
	return Edge{idx: v.m.vertices[v.idx].Edge, m: v.m}
}

// PointIndex returns the index of v's point in the mesh's point array.
// ok is false for the infinite vertex.
func (v Vertex) PointIndex() (int, bool) {
	p := v.m.vertices[v.idx].Point
	if p == NoPoint {
		return 0, false
	}
	return p, true
}

// Position returns the coordinate of v, or false for the infinite vertex.
func (v Vertex) Position() (r2.Point, bool) {
	p, ok := v.PointIndex()
	if !ok {
		return r2.Point{}, false
	}
	return v.m.points[p], true
}

func (v Vertex) IsFinite() bool {
	return v.m.vertices[v.idx].Point != NoPoint
}

// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package halfedge implements an index-addressed half-edge mesh specialised for
// triangulations of the plane.
//
// Half-edges are stored in pairs: the twin of half-edge e is e^1. Vertex 0 is the
// infinite vertex; faces touching it cover the unbounded exterior.
package halfedge

import (
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	// InfiniteVertex is the index of the synthetic vertex representing the exterior.
	InfiniteVertex = 0
	// NoPoint marks a vertex without a position.
	NoPoint = -1
)

// HalfEdge is a directed edge. Following Next walks the boundary of Face
// counter-clockwise.
type HalfEdge struct {
	Origin int
	Next   int
	Face   int
}

// FaceRecord references one boundary half-edge of a face.
type FaceRecord struct {
	Edge int
}

// VertexRecord stores the point index of a vertex (NoPoint for the infinite vertex) and
// one half-edge originating at it.
type VertexRecord struct {
	Point int
	Edge  int
}

// Twin returns the index of the half-edge paired with e.
func Twin(e int) int {
	return e ^ 1
}

// Mesh is an immutable triangulated planar subdivision.
type Mesh struct {
	points    []r2.Point
	halfEdges []HalfEdge
	faces     []FaceRecord
	vertices  []VertexRecord
}

// New assembles a mesh from fully formed arrays. The mesh takes ownership of the slices
// and never modifies them. It returns an error if the arrays violate the invariants
// checked by Validate.
func New(points []r2.Point, halfEdges []HalfEdge, faces []FaceRecord, vertices []VertexRecord) (*Mesh, error) {
	m := &Mesh{
		points:    points,
		halfEdges: halfEdges,
		faces:     faces,
		vertices:  vertices,
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return m, nil
}

// Validate checks the structural invariants of the mesh: twin pairing, faces closing
// after exactly three steps, face and vertex references pointing at matching
// half-edges, and vertex 0 being the only vertex without a point.
func (m *Mesh) Validate() error {
	numHalfEdges := len(m.halfEdges)
	numFaces := len(m.faces)
	numVertices := len(m.vertices)

	if numHalfEdges%2 != 0 {
		return errors.Errorf("halfedge: odd number of half-edges %d", numHalfEdges)
	}
	if numVertices == 0 || m.vertices[InfiniteVertex].Point != NoPoint {
		return errors.New("halfedge: vertex 0 must be the infinite vertex")
	}

	for i, he := range m.halfEdges {
		if he.Origin < 0 || he.Origin >= numVertices {
			return errors.Errorf("halfedge: half-edge %d origin %d out of range [0 %d)", i, he.Origin, numVertices)
		}
		if he.Next < 0 || he.Next >= numHalfEdges {
			return errors.Errorf("halfedge: half-edge %d next %d out of range [0 %d)", i, he.Next, numHalfEdges)
		}
		if he.Face < 0 || he.Face >= numFaces {
			return errors.Errorf("halfedge: half-edge %d face %d out of range [0 %d)", i, he.Face, numFaces)
		}
		if m.halfEdges[he.Next].Origin != m.halfEdges[Twin(i)].Origin {
			return errors.Errorf("halfedge: half-edge %d next %d does not start at its destination", i, he.Next)
		}
		if he.Origin == m.halfEdges[Twin(i)].Origin {
			return errors.Errorf("halfedge: half-edge %d is a loop at vertex %d", i, he.Origin)
		}
	}

	for i, f := range m.faces {
		if f.Edge < 0 || f.Edge >= numHalfEdges {
			return errors.Errorf("halfedge: face %d edge %d out of range [0 %d)", i, f.Edge, numHalfEdges)
		}
		e := f.Edge
		for step := range 3 {
			if m.halfEdges[e].Face != i {
				return errors.Errorf("halfedge: face %d boundary half-edge %d (step %d) belongs to face %d",
					i, e, step, m.halfEdges[e].Face)
			}
			e = m.halfEdges[e].Next
		}
		if e != f.Edge {
			return errors.Errorf("halfedge: face %d boundary does not close after 3 steps", i)
		}
	}

	for i, v := range m.vertices {
		if i != InfiniteVertex && (v.Point < 0 || v.Point >= len(m.points)) {
			return errors.Errorf("halfedge: vertex %d point %d out of range [0 %d)", i, v.Point, len(m.points))
		}
		if v.Edge < 0 || v.Edge >= numHalfEdges {
			return errors.Errorf("halfedge: vertex %d edge %d out of range [0 %d)", i, v.Edge, numHalfEdges)
		}
		if m.halfEdges[v.Edge].Origin != i {
			return errors.Errorf("halfedge: vertex %d incident half-edge %d originates at %d",
				i, v.Edge, m.halfEdges[v.Edge].Origin)
		}
	}

	return nil
}

// NumEdges returns the number of undirected edges.
func (m *Mesh) NumEdges() int {
	return len(m.halfEdges) / 2
}

func (m *Mesh) NumHalfEdges() int {
	return len(m.halfEdges)
}

func (m *Mesh) NumFaces() int {
	return len(m.faces)
}

// NumVertices returns the number of vertices, including the infinite vertex.
func (m *Mesh) NumVertices() int {
	return len(m.vertices)
}

// NumPoints returns the length of the point array the mesh was built from.
func (m *Mesh) NumPoints() int {
	return len(m.points)
}

func (m *Mesh) Point(i int) r2.Point {
	if i < 0 || i >= len(m.points) {
		panic("Point: index out of range")
	}
	return m.points[i]
}

// Triangles returns the point indices of every finite face in counter-clockwise order.
func (m *Mesh) Triangles() [][3]int {
	tris := make([][3]int, 0, len(m.faces))
	for f := range m.FiniteFaces() {
		tri, _ := f.PointIndices()
		tris = append(tris, tri)
	}
	return tris
}

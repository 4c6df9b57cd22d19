// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package r2delaunay

import (
	"cmp"
	"math"
	"slices"

	"github.com/2dChan/r2delaunay/geometry"
	"github.com/2dChan/r2delaunay/halfedge"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const infinite = halfedge.InfiniteVertex

// builder owns the mesh arrays while they are being filled.
//
// The hull is tracked through spokes: half-edges leaving the infinite vertex. A spoke s
// lies in the outer face of the hull edge from origin(next(next(s))) to origin(next(s)),
// and the hull interior is to the left of that edge. The spoke of the following hull
// edge is next(twin(s)).
type builder struct {
	points    []r2.Point
	halfEdges []halfedge.HalfEdge
	faces     []halfedge.FaceRecord
	vertices  []halfedge.VertexRecord

	skipped []int
	stack   []int
}

func newBuilder(points []r2.Point) *builder {
	n := len(points) + 1
	return &builder{
		points:    slices.Clone(points),
		halfEdges: make([]halfedge.HalfEdge, 0, 6*n),
		faces:     make([]halfedge.FaceRecord, 0, 2*n),
		vertices:  make([]halfedge.VertexRecord, 0, n),
	}
}

type pointDist struct {
	idx  int
	dist float64
}

func (b *builder) build(eps float64) error {
	usable := b.usablePoints()

	i0, i1, i2, err := findSeedTriangle(b.points, usable, eps)
	if err != nil {
		return err
	}
	b.addSeedTriangle(i0, i1, i2)

	center := geometry.Circumcenter(b.points[i0], b.points[i1], b.points[i2])
	order := make([]pointDist, 0, len(usable))
	for _, i := range usable {
		if i == i0 || i == i1 || i == i2 {
			continue
		}
		order = append(order, pointDist{idx: i, dist: geometry.DistanceSquared(center, b.points[i])})
	}
	slices.SortFunc(order, func(x, y pointDist) int {
		if c := cmp.Compare(x.dist, y.dist); c != 0 {
			return c
		}
		return cmp.Compare(x.idx, y.idx)
	})

	for _, pd := range order {
		if !b.insert(pd.idx) {
			b.skipped = append(b.skipped, pd.idx)
		}
	}
	slices.Sort(b.skipped)

	return nil
}

// usablePoints returns the indices of finite points, keeping the first of any exact
// duplicates. Everything else is recorded as skipped.
func (b *builder) usablePoints() []int {
	usable := make([]int, 0, len(b.points))
	seen := make(map[r2.Point]struct{}, len(b.points))
	for i, p := range b.points {
		if !geometry.IsFinite(p) {
			b.skipped = append(b.skipped, i)
			continue
		}
		if _, ok := seen[p]; ok {
			b.skipped = append(b.skipped, i)
			continue
		}
		seen[p] = struct{}{}
		usable = append(usable, i)
	}
	return usable
}

// findSeedTriangle picks the point closest to the bounding box center, its nearest
// neighbour, and the third point giving the smallest circumcircle. The result is in
// counter-clockwise order.
func findSeedTriangle(points []r2.Point, usable []int, eps float64) (int, int, int, error) {
	if len(usable) < 3 {
		return 0, 0, 0, errors.Wrapf(ErrNoSeedTriangle, "%d usable points, need at least 3", len(usable))
	}

	bbox := r2.EmptyRect()
	for _, i := range usable {
		bbox = bbox.AddPoint(points[i])
	}

	i0 := closestPoint(points, usable, bbox.Center(), -1)
	i1 := closestPoint(points, usable, points[i0], i0)

	i2 := -1
	best := math.Inf(1)
	for _, i := range usable {
		if i == i0 || i == i1 {
			continue
		}
		// NaN and +Inf (collinear candidates) never compare less.
		if r := geometry.SquaredCircumradius(points[i0], points[i1], points[i]); r < best {
			best, i2 = r, i
		}
	}
	if i2 < 0 {
		return 0, 0, 0, errors.Wrap(ErrNoSeedTriangle, "all points are collinear")
	}

	d := points[i1].Sub(points[i0])
	e := points[i2].Sub(points[i0])
	cross := d.Cross(e)
	if math.Abs(cross) <= eps*math.Max(d.Dot(d), e.Dot(e)) {
		return 0, 0, 0, errors.Wrapf(ErrNoSeedTriangle, "seed triangle (%d %d %d) is degenerate", i0, i1, i2)
	}
	if cross < 0 {
		i1, i2 = i2, i1
	}
	return i0, i1, i2, nil
}

func closestPoint(points []r2.Point, usable []int, target r2.Point, exclude int) int {
	closest := -1
	best := math.Inf(1)
	for _, i := range usable {
		if i == exclude {
			continue
		}
		if d := geometry.DistanceSquared(points[i], target); closest < 0 || d < best {
			closest, best = i, d
		}
	}
	return closest
}

// addSeedTriangle creates vertices 1, 2, 3 for the counter-clockwise seed triangle
// (i0, i1, i2) and joins each of them to the infinite vertex.
func (b *builder) addSeedTriangle(i0, i1, i2 int) {
	b.vertices = append(b.vertices,
		halfedge.VertexRecord{Point: halfedge.NoPoint, Edge: 6},
		halfedge.VertexRecord{Point: i0, Edge: 0},
		halfedge.VertexRecord{Point: i1, Edge: 2},
		halfedge.VertexRecord{Point: i2, Edge: 4},
	)

	b.faces = append(b.faces,
		halfedge.FaceRecord{Edge: 0},
		halfedge.FaceRecord{Edge: 1},
		halfedge.FaceRecord{Edge: 3},
		halfedge.FaceRecord{Edge: 5},
	)

	b.halfEdges = append(b.halfEdges,
		halfedge.HalfEdge{Origin: 1, Next: 2, Face: 0},
		halfedge.HalfEdge{Origin: 2, Next: 7, Face: 1},
		halfedge.HalfEdge{Origin: 2, Next: 4, Face: 0},
		halfedge.HalfEdge{Origin: 3, Next: 9, Face: 2},
		halfedge.HalfEdge{Origin: 3, Next: 0, Face: 0},
		halfedge.HalfEdge{Origin: 1, Next: 11, Face: 3},
		halfedge.HalfEdge{Origin: infinite, Next: 5, Face: 3},
		halfedge.HalfEdge{Origin: 1, Next: 8, Face: 1},
		halfedge.HalfEdge{Origin: infinite, Next: 1, Face: 1},
		halfedge.HalfEdge{Origin: 2, Next: 10, Face: 2},
		halfedge.HalfEdge{Origin: infinite, Next: 3, Face: 2},
		halfedge.HalfEdge{Origin: 3, Next: 6, Face: 3},
	)
}

func (b *builder) pos(v int) r2.Point {
	return b.points[b.vertices[v].Point]
}

func (b *builder) next(e int) int {
	return b.halfEdges[e].Next
}

func (b *builder) origin(e int) int {
	return b.halfEdges[e].Origin
}

// hullEdge returns the endpoints of the hull edge whose outer face holds spoke s.
func (b *builder) hullEdge(s int) (from, to int) {
	return b.origin(b.next(b.next(s))), b.origin(b.next(s))
}

// visible reports whether p lies strictly outside the hull edge of spoke s.
func (b *builder) visible(p r2.Point, s int) bool {
	from, to := b.hullEdge(s)
	return geometry.Orientation(p, b.pos(to), b.pos(from))
}

// findVisibleEdge walks the hull from the tracked spoke until it finds a hull edge
// visible from p.
func (b *builder) findVisibleEdge(p r2.Point) (int, bool) {
	start := b.vertices[infinite].Edge
	s := start
	for {
		if b.visible(p, s) {
			return s, true
		}
		s = b.next(halfedge.Twin(s))
		if s == start {
			return 0, false
		}
	}
}

// insert adds point pi outside the current hull. It reports false if no hull edge is
// visible from the point, in which case the mesh is unchanged.
func (b *builder) insert(pi int) bool {
	p := b.points[pi]
	s, ok := b.findVisibleEdge(p)
	if !ok {
		return false
	}

	v := len(b.vertices)
	b.vertices = append(b.vertices, halfedge.VertexRecord{Point: pi})

	back := b.addTriangle(v, s)
	b.fanForward(v, s)
	b.fanBackward(v, back)
	return true
}

// addTriangle joins vertex v to the hull edge a->b of spoke s. The outer face of that
// edge becomes the triangle (b, a, v), and two new outer faces are created for the hull
// edges a->v and v->b. Spoke s stays in the outer face of v->b; the returned spoke
// (infinite->v) lies in the outer face of a->v.
func (b *builder) addTriangle(v, s int) int {
	eba := b.next(s)
	eainf := b.next(eba)
	va := b.origin(eainf)
	vb := b.origin(eba)
	fab := b.halfEdges[s].Face

	n := len(b.halfEdges)
	f1 := len(b.faces)
	f2 := f1 + 1

	b.halfEdges = append(b.halfEdges,
		halfedge.HalfEdge{Origin: va, Next: n + 2, Face: fab},
		halfedge.HalfEdge{Origin: v, Next: eainf, Face: f1},
		halfedge.HalfEdge{Origin: v, Next: eba, Face: fab},
		halfedge.HalfEdge{Origin: vb, Next: n + 4, Face: f2},
		halfedge.HalfEdge{Origin: v, Next: s, Face: f2},
		halfedge.HalfEdge{Origin: infinite, Next: n + 1, Face: f1},
	)
	b.faces = append(b.faces,
		halfedge.FaceRecord{Edge: n + 1},
		halfedge.FaceRecord{Edge: n + 3},
	)

	b.halfEdges[eba].Next = n
	b.halfEdges[eainf].Next = n + 5
	b.halfEdges[eainf].Face = f1
	b.halfEdges[s].Next = n + 3
	b.halfEdges[s].Face = f2
	b.faces[fab].Edge = eba

	b.vertices[v].Edge = n + 2
	b.vertices[infinite].Edge = n + 5

	b.legalize(eba)
	return n + 5
}

// fanForward keeps adding triangles (c, b, v) while the hull edge b->c following v is
// visible from v. Each step recycles the spoke pair of b into the edge v-c.
func (b *builder) fanForward(v, s int) {
	p := b.pos(v)
	for {
		t := b.next(halfedge.Twin(s))
		if !b.visible(p, t) {
			return
		}

		vb, vc := b.hullEdge(t)
		bp := b.next(s)
		pinf := b.next(bp)
		cb := b.next(t)
		fbc := b.halfEdges[t].Face
		fpb := b.halfEdges[s].Face
		x := halfedge.Twin(s)

		b.halfEdges[x] = halfedge.HalfEdge{Origin: v, Next: cb, Face: fbc}
		b.halfEdges[cb].Next = bp
		b.halfEdges[bp].Next = x
		b.halfEdges[bp].Face = fbc

		b.halfEdges[s] = halfedge.HalfEdge{Origin: vc, Next: pinf, Face: fpb}
		b.halfEdges[pinf].Next = t
		b.halfEdges[t].Next = s
		b.halfEdges[t].Face = fpb

		b.faces[fbc].Edge = cb
		b.faces[fpb].Edge = s
		b.vertices[vb].Edge = bp
		b.vertices[infinite].Edge = t

		b.legalize(cb)
		s = t
	}
}

// fanBackward mirrors fanForward on the hull edge z->a preceding v, adding triangles
// (a, z, v). Spoke q (infinite->v) stays in the outer face of the new hull edge.
func (b *builder) fanBackward(v, q int) {
	p := b.pos(v)
	for {
		pa := b.next(q)
		ainf := b.next(pa)
		r := halfedge.Twin(ainf)
		if !b.visible(p, r) {
			return
		}

		vz, va := b.hullEdge(r)
		az := b.next(r)
		zinf := b.next(az)
		fza := b.halfEdges[r].Face
		fap := b.halfEdges[q].Face

		b.halfEdges[r] = halfedge.HalfEdge{Origin: vz, Next: pa, Face: fza}
		b.halfEdges[az].Next = r
		b.halfEdges[pa].Next = az
		b.halfEdges[pa].Face = fza

		b.halfEdges[ainf] = halfedge.HalfEdge{Origin: v, Next: zinf, Face: fap}
		b.halfEdges[zinf].Next = q
		b.halfEdges[zinf].Face = fap
		b.halfEdges[q].Next = ainf

		b.faces[fza].Edge = az
		b.faces[fap].Edge = q
		b.vertices[va].Edge = az
		b.vertices[infinite].Edge = q

		b.legalize(az)
	}
}

// legalize restores the empty circumcircle property around edge e by Lawson flips.
// e must lie in a finite triangle; the edges opposite the new point after a flip are
// re-tested from an explicit stack.
func (b *builder) legalize(start int) {
	b.stack = append(b.stack[:0], start)
	for len(b.stack) > 0 {
		e := b.stack[len(b.stack)-1]
		b.stack = b.stack[:len(b.stack)-1]

		// e = u->v, e1 = v->p, e2 = p->u; across e: t = v->u, f1 = u->q, f2 = q->v.
		e1 := b.next(e)
		e2 := b.next(e1)
		t := halfedge.Twin(e)
		f1 := b.next(t)
		f2 := b.next(f1)

		q := b.origin(f2)
		if q == infinite {
			continue
		}
		u, v, p := b.origin(e), b.origin(e1), b.origin(e2)
		if !geometry.InCircle(b.pos(q), b.pos(u), b.pos(v), b.pos(p)) {
			continue
		}

		b.flip(e)
		b.stack = append(b.stack, f2, f1)
	}
}

// flip replaces edge u-v, shared by triangles (u, v, p) and (v, u, q), with p-q.
// The result is triangles (p, u, q) and (q, v, p), keeping the face indices.
func (b *builder) flip(e int) {
	e1 := b.next(e)
	e2 := b.next(e1)
	t := halfedge.Twin(e)
	f1 := b.next(t)
	f2 := b.next(f1)

	u, v := b.origin(e), b.origin(e1)
	p, q := b.origin(e2), b.origin(f2)
	f0 := b.halfEdges[e].Face
	ft := b.halfEdges[t].Face

	b.halfEdges[e] = halfedge.HalfEdge{Origin: q, Next: e2, Face: f0}
	b.halfEdges[e2].Next = f1
	b.halfEdges[f1].Next = e
	b.halfEdges[f1].Face = f0

	b.halfEdges[t] = halfedge.HalfEdge{Origin: p, Next: f2, Face: ft}
	b.halfEdges[f2].Next = e1
	b.halfEdges[e1].Next = t
	b.halfEdges[e1].Face = ft

	b.faces[f0].Edge = e2
	b.faces[ft].Edge = f2
	b.vertices[u].Edge = f1
	b.vertices[v].Edge = e1
}

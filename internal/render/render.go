// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

// Package render draws the finite part of a triangulation: every edge whose endpoints
// both have a position, then every finite vertex. The point bounding box is scaled
// into the canvas with the y axis pointing up.
package render

import (
	"io"
	"math"

	"github.com/2dChan/r2delaunay/halfedge"
	svg "github.com/ajstarks/svgo"
	"github.com/fogleman/gg"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

const (
	padding     = 10
	pointRadius = 3

	backgroundStyle = "fill:rgb(255,255,255)"
	edgeStyle       = "stroke:rgb(170,170,170);stroke-width:1;stroke-opacity:1.0"
	siteStyle       = "fill:rgb(0,0,255)"
)

// Segment is a finite edge of the mesh in canvas coordinates.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Scene is the drawable content of a mesh mapped onto a width x height canvas.
type Scene struct {
	Width, Height int
	Segments      []Segment
	Sites         []r2.Point
}

// NewScene maps the finite edges and vertices of m onto the canvas.
func NewScene(m *halfedge.Mesh, width, height int) (*Scene, error) {
	if width <= 2*padding || height <= 2*padding {
		return nil, errors.Errorf("render: canvas %dx%d is too small", width, height)
	}

	bounds := r2.EmptyRect()
	for v := range m.Vertices() {
		if p, ok := v.Position(); ok {
			bounds = bounds.AddPoint(p)
		}
	}
	if bounds.IsEmpty() {
		return nil, errors.New("render: mesh has no finite vertices")
	}
	toCanvas := projection(bounds, width, height)

	sc := &Scene{Width: width, Height: height}
	for e := range m.Edges() {
		v0, v1 := e.Vertices()
		p0, ok0 := v0.Position()
		p1, ok1 := v1.Position()
		if !ok0 || !ok1 {
			continue
		}
		a, b := toCanvas(p0), toCanvas(p1)
		sc.Segments = append(sc.Segments, Segment{X0: a.X, Y0: a.Y, X1: b.X, Y1: b.Y})
	}
	for v := range m.Vertices() {
		if p, ok := v.Position(); ok {
			sc.Sites = append(sc.Sites, toCanvas(p))
		}
	}
	return sc, nil
}

// projection returns the mapping of bounds into the padded canvas, keeping the aspect
// ratio and flipping y.
func projection(bounds r2.Rect, width, height int) func(r2.Point) r2.Point {
	size := bounds.Size()
	w := float64(width - 2*padding)
	h := float64(height - 2*padding)

	scale := math.Inf(1)
	if size.X > 0 {
		scale = w / size.X
	}
	if size.Y > 0 {
		scale = math.Min(scale, h/size.Y)
	}
	if math.IsInf(scale, 1) {
		scale = 1
	}

	offX := padding + (w-size.X*scale)/2
	offY := padding + (h-size.Y*scale)/2
	return func(p r2.Point) r2.Point {
		return r2.Point{
			X: offX + (p.X-bounds.X.Lo)*scale,
			Y: float64(height) - (offY + (p.Y-bounds.Y.Lo)*scale),
		}
	}
}

// WriteSVG writes the scene as an SVG document.
func (sc *Scene) WriteSVG(w io.Writer) error {
	ew := &errWriter{w: w}

	canvas := svg.New(ew)
	canvas.Start(sc.Width, sc.Height)
	canvas.Rect(0, 0, sc.Width, sc.Height, backgroundStyle)
	for _, s := range sc.Segments {
		canvas.Line(round(s.X0), round(s.Y0), round(s.X1), round(s.Y1), edgeStyle)
	}
	for _, p := range sc.Sites {
		canvas.Circle(round(p.X), round(p.Y), pointRadius, siteStyle)
	}
	canvas.End()

	return errors.Wrap(ew.err, "render: writing svg")
}

// WritePNG rasterises the scene and encodes it as PNG.
func (sc *Scene) WritePNG(w io.Writer) error {
	dc := gg.NewContext(sc.Width, sc.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	dc.SetRGB255(170, 170, 170)
	dc.SetLineWidth(1)
	for _, s := range sc.Segments {
		dc.DrawLine(s.X0, s.Y0, s.X1, s.Y1)
	}
	dc.Stroke()

	dc.SetRGB255(0, 0, 255)
	for _, p := range sc.Sites {
		dc.DrawCircle(p.X, p.Y, pointRadius)
	}
	dc.Fill()

	return errors.Wrap(dc.EncodePNG(w), "render: writing png")
}

func round(v float64) int {
	return int(math.Round(v))
}

// errWriter keeps the first write error; svgo discards them.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(p)
	ew.err = err
	return n, err
}

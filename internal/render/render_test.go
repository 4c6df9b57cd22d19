// Copyright (c) 2026 Andrey Kriulin
// Licensed under the MIT License.
// See the LICENSE file in the project root for full license text.

package render

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/2dChan/r2delaunay"
	"github.com/2dChan/r2delaunay/utils"
	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScene_Square(t *testing.T) {
	sc := mustNewScene(t, squarePoints(), 120, 120)

	// Four sides and one diagonal; edges to the infinite vertex are not drawn.
	assert.Len(t, sc.Segments, 5)
	assert.ElementsMatch(t, []r2.Point{
		{X: 10, Y: 110},
		{X: 110, Y: 110},
		{X: 110, Y: 10},
		{X: 10, Y: 10},
	}, sc.Sites)
}

func TestNewScene_KeepsAspectRatio(t *testing.T) {
	points := []r2.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}
	sc := mustNewScene(t, points, 220, 220)

	// Width 2 fills the 200px drawing area; height 1 is centred vertically.
	assert.ElementsMatch(t, []r2.Point{
		{X: 10, Y: 160},
		{X: 210, Y: 160},
		{X: 210, Y: 60},
		{X: 10, Y: 60},
	}, sc.Sites)
}

func TestNewScene_TooSmall(t *testing.T) {
	dt, err := r2delaunay.NewTriangulation(squarePoints())
	require.NoError(t, err)

	_, err = NewScene(dt.Mesh, 2*padding, 100)
	assert.Error(t, err)
}

func TestScene_WriteSVG(t *testing.T) {
	dt, err := r2delaunay.NewTriangulation(utils.GenerateRandomPoints(50, 0))
	require.NoError(t, err)
	sc, err := NewScene(dt.Mesh, 400, 300)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, sc.WriteSVG(&buf))

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Equal(t, len(sc.Segments), strings.Count(out, "<line"))
	assert.Equal(t, 50, strings.Count(out, "<circle"))
	assert.Equal(t, 3*50-len(dt.Hull())-3, len(sc.Segments))
}

func TestScene_WriteSVG_WriteError(t *testing.T) {
	sc := mustNewScene(t, squarePoints(), 100, 100)
	assert.Error(t, sc.WriteSVG(failingWriter{}))
}

func TestScene_WritePNG(t *testing.T) {
	sc := mustNewScene(t, squarePoints(), 64, 48)

	var buf bytes.Buffer
	require.NoError(t, sc.WritePNG(&buf))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 48, img.Bounds().Dy())

	// Background stays white away from the drawing.
	r, g, b, _ := img.At(1, 1).RGBA()
	assert.Equal(t, [3]uint32{0xffff, 0xffff, 0xffff}, [3]uint32{r, g, b})
}

// Helpers

func squarePoints() []r2.Point {
	return []r2.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}}
}

func mustNewScene(t *testing.T, points []r2.Point, width, height int) *Scene {
	t.Helper()
	dt, err := r2delaunay.NewTriangulation(points)
	require.NoError(t, err)
	sc, err := NewScene(dt.Mesh, width, height)
	require.NoError(t, err)
	return sc
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("write failed")
}

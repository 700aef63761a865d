package svg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/juruen/vecnote/scene"
)

func testScene() *scene.Scene {
	pen := scene.Stroke{Color: scene.Black, Width: 2}
	return &scene.Scene{
		Primitives: []scene.Primitive{
			scene.Path{
				Points: []scene.Point{{X: 0, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: -2}, {X: 0, Y: -2}},
				Fill:   scene.Color{R: 1, A: 1},
			},
			scene.Line{From: scene.Point{X: 0, Y: 0}, To: scene.Point{X: 5, Y: 5}, Arrow: true, Stroke: pen},
			scene.Rect{HalfW: 5, HalfH: 5, Transform: scene.Identity, Stroke: pen},
			scene.Ellipse{Rx: 3, Ry: 4, Transform: scene.Matrix{A: 1, D: 1, Tx: 100, Ty: 100}, Stroke: pen},
			scene.Polyline{Points: []scene.Point{{X: 0, Y: 0}, {X: 1, Y: 1}}, Stroke: pen},
			scene.Text{Pos: scene.Point{X: 10, Y: 20}, Content: "a < b & c", FontSize: 24, Fill: scene.Black},
		},
		Viewport:   scene.Viewport{MinX: -50, MinY: -50, Width: 200, Height: 200},
		Background: scene.Background,
	}
}

func TestWriteDocumentShape(t *testing.T) {
	out := string(Marshal(testScene()))

	assert.True(t, strings.HasPrefix(out, `<svg xmlns="http://www.w3.org/2000/svg"`))
	assert.Contains(t, out, `viewBox="-50 -50 200 200"`)
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
}

func TestWritePrimitives(t *testing.T) {
	out := string(Marshal(testScene()))

	assert.Contains(t, out, `<path d="M0 2L10 2L10 -2L0 -2Z" fill="rgba(255,0,0,1)" stroke="none"/>`)
	assert.Contains(t, out, `marker-end=`)
	assert.Contains(t, out, `<rect x="-5" y="-5" width="10" height="10"`)
	assert.Contains(t, out, `<ellipse cx="0" cy="0" rx="3" ry="4"`)
	assert.Contains(t, out, `transform="matrix(1 0 0 1 100 100)"`)
	assert.Contains(t, out, `<polyline points="0,0 1,1"`)
	assert.Contains(t, out, `stroke-linecap="round"`)
}

func TestWriteEscapesText(t *testing.T) {
	out := string(Marshal(testScene()))
	assert.Contains(t, out, `>a &lt; b &amp; c</text>`)
}

func TestWriteNoTransformAttrForIdentity(t *testing.T) {
	s := &scene.Scene{
		Primitives: []scene.Primitive{
			scene.Rect{HalfW: 1, HalfH: 1, Transform: scene.Identity, Stroke: scene.Stroke{Color: scene.Black, Width: 2}},
		},
		Viewport:   scene.Viewport{Width: 800, Height: 600},
		Background: scene.Background,
	}
	out := string(Marshal(s))
	assert.NotContains(t, out, "transform=")
}

func TestMarkerIDsUnique(t *testing.T) {
	pen := scene.Stroke{Color: scene.Black, Width: 2}
	s := &scene.Scene{
		Primitives: []scene.Primitive{
			scene.Line{To: scene.Point{X: 1, Y: 0}, Arrow: true, Stroke: pen},
			scene.Line{To: scene.Point{X: 2, Y: 0}, Arrow: true, Stroke: pen},
		},
		Viewport:   scene.Viewport{Width: 800, Height: 600},
		Background: scene.Background,
	}
	out := string(Marshal(s))

	first := strings.Index(out, `<marker id="`)
	second := strings.Index(out[first+1:], `<marker id="`)
	assert.GreaterOrEqual(t, second, 0, "both arrows should define a marker")

	idOf := func(chunk string) string {
		start := strings.Index(chunk, `id="`) + len(`id="`)
		return chunk[start : start+strings.Index(chunk[start:], `"`)]
	}
	assert.NotEqual(t, idOf(out[first:]), idOf(out[first+1+second:]))
}

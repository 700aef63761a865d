package raster

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/juruen/vecnote/scene"
)

func TestDrawDimensions(t *testing.T) {
	s := &scene.Scene{
		Viewport:   scene.Viewport{Width: 800, Height: 600},
		Background: scene.Background,
	}
	img := Draw(s, 400)
	assert.Equal(t, 400, img.Bounds().Dx())
	assert.Equal(t, 300, img.Bounds().Dy())
}

func TestDrawBackground(t *testing.T) {
	s := &scene.Scene{
		Viewport:   scene.Viewport{Width: 100, Height: 100},
		Background: scene.Color{R: 1, G: 0, B: 0, A: 1},
	}
	img := Draw(s, 10)
	r, g, b, a := img.At(5, 5).RGBA()
	assert.Equal(t, uint32(0xffff), r)
	assert.Equal(t, uint32(0), g)
	assert.Equal(t, uint32(0), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestDrawFilledPath(t *testing.T) {
	s := &scene.Scene{
		Primitives: []scene.Primitive{
			scene.Path{
				Points: []scene.Point{{X: 10, Y: 10}, {X: 90, Y: 10}, {X: 90, Y: 90}, {X: 10, Y: 90}},
				Fill:   scene.Black,
			},
		},
		Viewport:   scene.Viewport{Width: 100, Height: 100},
		Background: scene.Color{R: 1, G: 1, B: 1, A: 1},
	}
	img := Draw(s, 100)

	// Center is inside the filled square, a corner is not.
	center := color.NRGBAModel.Convert(img.At(50, 50)).(color.NRGBA)
	corner := color.NRGBAModel.Convert(img.At(2, 2)).(color.NRGBA)
	assert.Less(t, int(center.R), 64, "center should be filled black")
	assert.Greater(t, int(corner.R), 200, "corner should stay background")
}

func TestDrawStrokedLine(t *testing.T) {
	s := &scene.Scene{
		Primitives: []scene.Primitive{
			scene.Line{
				From:   scene.Point{X: 0, Y: 50},
				To:     scene.Point{X: 100, Y: 50},
				Stroke: scene.Stroke{Color: scene.Black, Width: 4},
			},
		},
		Viewport:   scene.Viewport{Width: 100, Height: 100},
		Background: scene.Color{R: 1, G: 1, B: 1, A: 1},
	}
	img := Draw(s, 100)

	on := color.NRGBAModel.Convert(img.At(50, 50)).(color.NRGBA)
	off := color.NRGBAModel.Convert(img.At(50, 10)).(color.NRGBA)
	assert.Less(t, int(on.R), 64)
	assert.Greater(t, int(off.R), 200)
}

func TestThumbnail(t *testing.T) {
	s := &scene.Scene{
		Viewport:   scene.Viewport{Width: 800, Height: 400},
		Background: scene.Background,
	}
	img := Draw(s, 800)

	small := Thumbnail(img, 200)
	require.Equal(t, 200, small.Bounds().Dx())
	assert.Equal(t, 100, small.Bounds().Dy())

	// Already small enough: returned unchanged.
	same := Thumbnail(small, 400)
	assert.Equal(t, small, same)
}

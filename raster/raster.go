// Package raster rasterizes a rendered scene into a bitmap, by
// wrapping rasterx.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/nfnt/resize"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/juruen/vecnote/scene"
)

const ellipseSegments = 64

// Renderer maps scene coordinates onto one target image.
type Renderer struct {
	filler *rasterx.Filler
	dasher *rasterx.Dasher
	img    *image.RGBA

	scale      float32
	minX, minY float32
}

// Draw rasterizes the scene into a new image of the given pixel width;
// the height follows from the viewport aspect ratio.
func Draw(s *scene.Scene, width int) *image.RGBA {
	vp := s.Viewport
	scale := float32(width) / vp.Width
	height := int(math32.Ceil(vp.Height * scale))
	if height < 1 {
		height = 1
	}

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(nrgba(s.Background)), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(width, height, img, img.Bounds())
	rd := &Renderer{
		filler: rasterx.NewFiller(width, height, scanner),
		dasher: rasterx.NewDasher(width, height, scanner),
		img:    img,
		scale:  scale,
		minX:   vp.MinX,
		minY:   vp.MinY,
	}

	for _, p := range s.Primitives {
		rd.primitive(p)
	}
	return img
}

// EncodePNG writes the scene as a PNG image of the given width.
func EncodePNG(w io.Writer, s *scene.Scene, width int) error {
	return png.Encode(w, Draw(s, width))
}

// Thumbnail scales the rendered image down to at most maxWidth pixels.
func Thumbnail(img image.Image, maxWidth int) image.Image {
	if img.Bounds().Dx() <= maxWidth {
		return img
	}
	return resize.Resize(uint(maxWidth), 0, img, resize.Lanczos3)
}

func (rd *Renderer) primitive(p scene.Primitive) {
	switch v := p.(type) {
	case scene.Path:
		rd.fillPolygon(v.Points, scene.Identity, v.Fill)
	case scene.Line:
		rd.line(v)
	case scene.Rect:
		corners := []scene.Point{
			{X: -v.HalfW, Y: -v.HalfH},
			{X: v.HalfW, Y: -v.HalfH},
			{X: v.HalfW, Y: v.HalfH},
			{X: -v.HalfW, Y: v.HalfH},
		}
		rd.strokePolygon(corners, v.Transform, true, v.Stroke)
	case scene.Ellipse:
		rd.strokePolygon(flattenEllipse(v.Rx, v.Ry), v.Transform, true, v.Stroke)
	case scene.Curve:
		rd.curve(v)
	case scene.Polyline:
		rd.strokePolygon(v.Points, v.Transform, v.Closed, v.Stroke)
	case scene.Text:
		rd.text(v)
	}
}

func (rd *Renderer) fillPolygon(points []scene.Point, m scene.Matrix, fill scene.Color) {
	if len(points) < 3 {
		return
	}
	rd.filler.Clear()
	rd.filler.Start(rd.device(m.Apply(points[0].X, points[0].Y)))
	for _, p := range points[1:] {
		rd.filler.Line(rd.device(m.Apply(p.X, p.Y)))
	}
	rd.filler.Stop(true)
	rd.filler.SetColor(nrgba(fill))
	rd.filler.Draw()
}

func (rd *Renderer) strokePolygon(points []scene.Point, m scene.Matrix, closed bool, pen scene.Stroke) {
	if len(points) < 2 {
		return
	}
	rd.setStroke(pen)
	rd.dasher.Start(rd.device(m.Apply(points[0].X, points[0].Y)))
	for _, p := range points[1:] {
		rd.dasher.Line(rd.device(m.Apply(p.X, p.Y)))
	}
	rd.dasher.Stop(closed)
	rd.dasher.SetColor(nrgba(pen.Color))
	rd.dasher.Draw()
	rd.dasher.Clear()
}

func (rd *Renderer) line(l scene.Line) {
	rd.setStroke(l.Stroke)
	rd.dasher.Start(rd.device(l.From.X, l.From.Y))
	rd.dasher.Line(rd.device(l.To.X, l.To.Y))
	rd.dasher.Stop(false)
	rd.dasher.SetColor(nrgba(l.Stroke.Color))
	rd.dasher.Draw()
	rd.dasher.Clear()

	if l.Arrow {
		rd.arrowHead(l)
	}
}

// arrowHead fills a triangle at the tip, aligned with the segment.
func (rd *Renderer) arrowHead(l scene.Line) {
	dx, dy := l.To.X-l.From.X, l.To.Y-l.From.Y
	length := math32.Hypot(dx, dy)
	if length == 0 {
		return
	}
	dx, dy = dx/length, dy/length
	size := 4*l.Stroke.Width + 4

	base := scene.Point{X: l.To.X - dx*size, Y: l.To.Y - dy*size}
	half := size / 2
	head := []scene.Point{
		l.To,
		{X: base.X - dy*half, Y: base.Y + dx*half},
		{X: base.X + dy*half, Y: base.Y - dx*half},
	}
	rd.fillPolygon(head, scene.Identity, l.Stroke.Color)
}

func (rd *Renderer) curve(c scene.Curve) {
	rd.setStroke(c.Stroke)
	rd.dasher.Start(rd.device(c.Start.X, c.Start.Y))
	if c.Quadratic {
		rd.dasher.QuadBezier(rd.device(c.Control1.X, c.Control1.Y), rd.device(c.End.X, c.End.Y))
	} else {
		rd.dasher.CubeBezier(rd.device(c.Control1.X, c.Control1.Y), rd.device(c.Control2.X, c.Control2.Y), rd.device(c.End.X, c.End.Y))
	}
	rd.dasher.Stop(false)
	rd.dasher.SetColor(nrgba(c.Stroke.Color))
	rd.dasher.Draw()
	rd.dasher.Clear()
}

// text draws with the fixed bitmap fallback face; the scene's font
// size only influenced layout bounds, not glyph shapes here.
func (rd *Renderer) text(t scene.Text) {
	x, y := rd.pixel(t.Pos.X, t.Pos.Y)
	d := font.Drawer{
		Dst:  rd.img,
		Src:  image.NewUniform(nrgba(t.Fill)),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(t.Content)
}

func (rd *Renderer) setStroke(pen scene.Stroke) {
	width := fixed.Int26_6(pen.Width * rd.scale * 64)
	rd.dasher.SetStroke(width, fixed.Int26_6(4*64),
		rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round, nil, 0)
}

// pixel maps a scene coordinate to device space.
func (rd *Renderer) pixel(x, y float32) (float32, float32) {
	return (x - rd.minX) * rd.scale, (y - rd.minY) * rd.scale
}

func (rd *Renderer) device(x, y float32) fixed.Point26_6 {
	px, py := rd.pixel(x, y)
	return fixed.Point26_6{X: fixed.Int26_6(px * 64), Y: fixed.Int26_6(py * 64)}
}

// flattenEllipse approximates the local-space ellipse outline with a
// fixed-count polygon, so transforms can be applied per vertex.
func flattenEllipse(rx, ry float32) []scene.Point {
	points := make([]scene.Point, ellipseSegments)
	for i := range points {
		a := 2 * math32.Pi * float32(i) / ellipseSegments
		points[i] = scene.Point{X: rx * math32.Cos(a), Y: ry * math32.Sin(a)}
	}
	return points
}

func nrgba(c scene.Color) color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: channel(c.A)}
}

func channel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

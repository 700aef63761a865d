package render

import (
	"github.com/juruen/vecnote/encoding/vn"
	"github.com/juruen/vecnote/scene"
)

// Visual-weight scale factor applied to the configured stroke width
// before outline expansion.
const brushWidthScale float32 = 2

// Crude per-character advance as a fraction of the font size, used to
// estimate text bounds without real glyph metrics.
const textAdvanceFactor float32 = 0.6

// builder converts document elements into scene primitives while
// accumulating the running bounding box. One builder serves exactly
// one render pass.
type builder struct {
	prims []scene.Primitive
	box   *scene.Box
}

func newBuilder() *builder {
	return &builder{box: scene.NewBox()}
}

// component processes one document slot. Components without a stroke
// are inert; an element is exactly one of the three variants.
func (b *builder) component(c vn.Component) {
	el := c.Stroke
	if el == nil {
		return
	}
	switch {
	case el.Brush != nil:
		b.brushStroke(el.Brush)
	case el.Shape != nil:
		b.shapeStroke(el.Shape)
	case el.Text != nil:
		b.textStroke(el.Text)
	}
}

// brushStroke expands the freehand centerline into a filled outline.
// Bounds come from the raw centerline, not the expanded outline, so a
// very wide pressure can visually exceed the viewport.
func (b *builder) brushStroke(br *vn.BrushStroke) {
	if br.Start == nil || br.Start.Point == nil {
		return
	}

	points := make([]scene.Point, 0, len(br.LineTo)+1)
	pressures := make([]float32, 0, len(br.LineTo)+1)

	points = append(points, scene.Point{X: br.Start.Point.X, Y: br.Start.Point.Y})
	pressures = append(pressures, br.Start.PressureOrDefault())

	for _, seg := range br.LineTo {
		if seg.Point == nil {
			continue
		}
		points = append(points, scene.Point{X: seg.Point.X, Y: seg.Point.Y})
		pressures = append(pressures, seg.PressureOrDefault())
	}

	for _, p := range points {
		b.box.Update(p.X, p.Y)
	}

	pen := strokeOf(br.Style)
	poly := outline(points, pressures, pen.Width*brushWidthScale)
	if len(poly) == 0 {
		return
	}

	b.prims = append(b.prims, scene.Path{Points: poly, Fill: pen.Color})
}

// shapeStroke unwraps the single shape nesting level and dispatches on
// the populated primitive. Elements with no recognized variant are
// skipped silently.
func (b *builder) shapeStroke(ss *vn.ShapeStroke) {
	sh := ss.Shape
	if sh == nil {
		return
	}
	pen := strokeOf(ss.Style)

	switch {
	case sh.Rect != nil:
		b.rect(sh.Rect, pen)
	case sh.Ellipse != nil:
		b.ellipse(sh.Ellipse, pen)
	case sh.Line != nil:
		b.line(sh.Line, pen)
	case sh.Arrow != nil:
		b.arrow(sh.Arrow, pen)
	case sh.Cubic != nil:
		b.cubic(sh.Cubic, pen)
	case sh.Quadratic != nil:
		b.quadratic(sh.Quadratic, pen)
	case sh.Polyline != nil:
		b.polyline(sh.Polyline, false, pen)
	case sh.Polygon != nil:
		b.polyline(sh.Polygon, true, pen)
	}
}

func (b *builder) rect(r *vn.RectShape, pen scene.Stroke) {
	if r.HalfExtents == nil {
		return
	}
	hx, hy := r.HalfExtents.X, r.HalfExtents.Y
	b.prims = append(b.prims, scene.Rect{
		HalfW:     hx,
		HalfH:     hy,
		Transform: matrixOf(r.Transform),
		Stroke:    pen,
	})
	// Bounds are approximated from the translation offset only; a
	// transformless rect leaves the box untouched.
	if r.Transform != nil {
		tx, ty := r.Transform.TranslateX(), r.Transform.TranslateY()
		b.box.Update(tx-hx, ty-hy)
		b.box.Update(tx+hx, ty+hy)
	}
}

func (b *builder) ellipse(e *vn.EllipseShape, pen scene.Stroke) {
	if e.Radii == nil {
		return
	}
	rx, ry := e.Radii.X, e.Radii.Y
	b.prims = append(b.prims, scene.Ellipse{
		Rx:        rx,
		Ry:        ry,
		Transform: matrixOf(e.Transform),
		Stroke:    pen,
	})
	if e.Transform != nil {
		tx, ty := e.Transform.TranslateX(), e.Transform.TranslateY()
		b.box.Update(tx-rx, ty-ry)
		b.box.Update(tx+rx, ty+ry)
	}
}

func (b *builder) line(l *vn.LineShape, pen scene.Stroke) {
	if l.Start == nil || l.End == nil {
		return
	}
	b.prims = append(b.prims, scene.Line{
		From:   scene.Point{X: l.Start.X, Y: l.Start.Y},
		To:     scene.Point{X: l.End.X, Y: l.End.Y},
		Stroke: pen,
	})
	b.box.Update(l.Start.X, l.Start.Y)
	b.box.Update(l.End.X, l.End.Y)
}

func (b *builder) arrow(a *vn.ArrowShape, pen scene.Stroke) {
	if a.Start == nil || a.Tip == nil {
		return
	}
	b.prims = append(b.prims, scene.Line{
		From:   scene.Point{X: a.Start.X, Y: a.Start.Y},
		To:     scene.Point{X: a.Tip.X, Y: a.Tip.Y},
		Arrow:  true,
		Stroke: pen,
	})
	b.box.Update(a.Start.X, a.Start.Y)
	b.box.Update(a.Tip.X, a.Tip.Y)
}

// Bezier bounds come from the endpoints only; control points are
// ignored.
func (b *builder) cubic(c *vn.CubicShape, pen scene.Stroke) {
	if c.Start == nil || c.Control1 == nil || c.Control2 == nil || c.End == nil {
		return
	}
	b.prims = append(b.prims, scene.Curve{
		Start:    scene.Point{X: c.Start.X, Y: c.Start.Y},
		Control1: scene.Point{X: c.Control1.X, Y: c.Control1.Y},
		Control2: scene.Point{X: c.Control2.X, Y: c.Control2.Y},
		End:      scene.Point{X: c.End.X, Y: c.End.Y},
		Stroke:   pen,
	})
	b.box.Update(c.Start.X, c.Start.Y)
	b.box.Update(c.End.X, c.End.Y)
}

func (b *builder) quadratic(q *vn.QuadShape, pen scene.Stroke) {
	if q.Start == nil || q.Control == nil || q.End == nil {
		return
	}
	b.prims = append(b.prims, scene.Curve{
		Start:     scene.Point{X: q.Start.X, Y: q.Start.Y},
		Control1:  scene.Point{X: q.Control.X, Y: q.Control.Y},
		End:       scene.Point{X: q.End.X, Y: q.End.Y},
		Quadratic: true,
		Stroke:    pen,
	})
	b.box.Update(q.Start.X, q.Start.Y)
	b.box.Update(q.End.X, q.End.Y)
}

// polyline bounds are computed from the raw points before the optional
// transform is applied; the transform affects the rendered primitive
// only.
func (b *builder) polyline(p *vn.PolylineShape, closed bool, pen scene.Stroke) {
	if len(p.Points) == 0 {
		return
	}
	points := make([]scene.Point, len(p.Points))
	for i, pt := range p.Points {
		points[i] = scene.Point{X: pt.X, Y: pt.Y}
		b.box.Update(pt.X, pt.Y)
	}
	b.prims = append(b.prims, scene.Polyline{
		Points:    points,
		Closed:    closed,
		Transform: matrixOf(p.Transform),
		Stroke:    pen,
	})
}

// textStroke places a text run at the transform translation. Bounds use
// a crude advance-based estimate, not glyph metrics.
func (b *builder) textStroke(t *vn.TextStroke) {
	var tx, ty float32
	if t.Transform != nil {
		tx, ty = t.Transform.TranslateX(), t.Transform.TranslateY()
	}

	size := vn.DefaultFontSize
	fill := scene.Black
	if t.Style != nil {
		if t.Style.FontSize != nil {
			size = *t.Style.FontSize
		}
		if t.Style.Color != nil {
			fill = colorOf(*t.Style.Color)
		}
	}

	b.prims = append(b.prims, scene.Text{
		Pos:      scene.Point{X: tx, Y: ty},
		Content:  t.Text,
		FontSize: size,
		Fill:     fill,
	})

	w := float32(len([]rune(t.Text))) * size * textAdvanceFactor
	b.box.Update(tx, ty)
	b.box.Update(tx+w, ty+size)
}

// scene assembles the final output from everything processed so far.
func (b *builder) scene() *scene.Scene {
	return &scene.Scene{
		Primitives: b.prims,
		Viewport:   b.box.Viewport(),
		Background: scene.Background,
	}
}

// strokeOf resolves the effective pen of a stroke style: the first
// populated sub-style in smooth, rough, technic order, with black and
// width 2 as the absent-style defaults.
func strokeOf(s *vn.Style) scene.Stroke {
	pen := s.Pen()
	out := scene.Stroke{Color: scene.Black, Width: vn.DefaultStrokeWidth}
	if pen == nil {
		return out
	}
	if pen.StrokeWidth != nil {
		out.Width = *pen.StrokeWidth
	}
	if pen.Color != nil {
		out.Color = colorOf(*pen.Color)
	}
	return out
}

func colorOf(c vn.Color) scene.Color {
	return scene.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

func matrixOf(t *vn.Transform) scene.Matrix {
	if t == nil {
		return scene.Identity
	}
	return scene.Matrix{
		A: t[0], B: t[1],
		C: t[3], D: t[4],
		Tx: t[6], Ty: t[7],
	}
}

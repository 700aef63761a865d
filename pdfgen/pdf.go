// Package pdfgen writes a rendered scene as a single-page PDF.
package pdfgen

import (
	"io"
	"os"

	"github.com/chewxy/math32"
	"github.com/unidoc/unipdf/v3/contentstream"
	"github.com/unidoc/unipdf/v3/contentstream/draw"
	"github.com/unidoc/unipdf/v3/creator"

	"github.com/juruen/vecnote/scene"
)

// Options control PDF generation.
type Options struct {
	// Scale multiplies scene units into PDF points. Zero means 1:1.
	Scale float64
}

// Generator produces a PDF page from one scene.
type Generator struct {
	scene   *scene.Scene
	options Options
}

func NewGenerator(s *scene.Scene, options Options) *Generator {
	if options.Scale == 0 {
		options.Scale = 1
	}
	return &Generator{scene: s, options: options}
}

// Write builds the page and writes the finished PDF.
func (g *Generator) Write(w io.Writer) error {
	vp := g.scene.Viewport
	width := float64(vp.Width) * g.options.Scale
	height := float64(vp.Height) * g.options.Scale

	c := creator.New()
	c.SetPageSize(creator.PageSize{width, height})
	page := c.NewPage()

	cc := contentstream.NewContentCreator()

	bg := g.scene.Background
	cc.Add_q()
	cc.Add_rg(float64(bg.R), float64(bg.G), float64(bg.B))
	cc.Add_re(0, 0, width, height)
	cc.Add_f()
	cc.Add_Q()

	p := &pageWriter{cc: cc, vp: vp, scale: g.options.Scale, height: height}
	for _, prim := range g.scene.Primitives {
		p.primitive(prim)
	}

	if err := page.AppendContentStream(string(cc.Operations().Bytes())); err != nil {
		return err
	}

	// Text runs go through the creator so it handles fonts.
	for _, prim := range g.scene.Primitives {
		t, ok := prim.(scene.Text)
		if !ok {
			continue
		}
		par := c.NewParagraph(t.Content)
		par.SetFontSize(float64(t.FontSize) * g.options.Scale)
		par.SetColor(creator.ColorRGBFromArithmetic(float64(t.Fill.R), float64(t.Fill.G), float64(t.Fill.B)))
		x, y := p.topDown(t.Pos.X, t.Pos.Y)
		par.SetPos(x, y)
		if err := c.Draw(par); err != nil {
			return err
		}
	}

	return c.Write(w)
}

// WriteToFile writes the PDF to the named file.
func (g *Generator) WriteToFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return g.Write(f)
}

type pageWriter struct {
	cc     *contentstream.ContentCreator
	vp     scene.Viewport
	scale  float64
	height float64
}

// point maps a scene coordinate into PDF user space (origin bottom
// left, y up).
func (p *pageWriter) point(x, y float32) (float64, float64) {
	px := float64(x-p.vp.MinX) * p.scale
	py := p.height - float64(y-p.vp.MinY)*p.scale
	return px, py
}

// topDown maps a scene coordinate into creator space (origin top left).
func (p *pageWriter) topDown(x, y float32) (float64, float64) {
	return float64(x-p.vp.MinX) * p.scale, float64(y-p.vp.MinY) * p.scale
}

func (p *pageWriter) primitive(prim scene.Primitive) {
	switch v := prim.(type) {
	case scene.Path:
		p.fillPolygon(v.Points, scene.Identity, v.Fill)
	case scene.Line:
		p.line(v)
	case scene.Rect:
		corners := []scene.Point{
			{X: -v.HalfW, Y: -v.HalfH},
			{X: v.HalfW, Y: -v.HalfH},
			{X: v.HalfW, Y: v.HalfH},
			{X: -v.HalfW, Y: v.HalfH},
		}
		p.strokePolygon(corners, v.Transform, true, v.Stroke)
	case scene.Ellipse:
		p.ellipse(v)
	case scene.Curve:
		p.curve(v)
	case scene.Polyline:
		p.strokePolygon(v.Points, v.Transform, v.Closed, v.Stroke)
	case scene.Text:
		// handled by the creator pass
	}
}

func (p *pageWriter) stroke(pen scene.Stroke) {
	p.cc.Add_w(float64(pen.Width) * p.scale)
	p.cc.Add_RG(float64(pen.Color.R), float64(pen.Color.G), float64(pen.Color.B))
}

func (p *pageWriter) strokePolygon(points []scene.Point, m scene.Matrix, closed bool, pen scene.Stroke) {
	if len(points) < 2 {
		return
	}
	p.cc.Add_q()
	p.stroke(pen)

	path := draw.NewPath()
	for _, pt := range points {
		x, y := p.point(m.Apply(pt.X, pt.Y))
		path = path.AppendPoint(draw.NewPoint(x, y))
	}
	draw.DrawPathWithCreator(path, p.cc)
	if closed {
		p.cc.Add_h()
	}
	p.cc.Add_S()
	p.cc.Add_Q()
}

func (p *pageWriter) fillPolygon(points []scene.Point, m scene.Matrix, fill scene.Color) {
	if len(points) < 3 {
		return
	}
	p.cc.Add_q()
	p.cc.Add_rg(float64(fill.R), float64(fill.G), float64(fill.B))

	path := draw.NewPath()
	for _, pt := range points {
		x, y := p.point(m.Apply(pt.X, pt.Y))
		path = path.AppendPoint(draw.NewPoint(x, y))
	}
	draw.DrawPathWithCreator(path, p.cc)
	p.cc.Add_h()
	p.cc.Add_f()
	p.cc.Add_Q()
}

func (p *pageWriter) line(l scene.Line) {
	p.cc.Add_q()
	p.stroke(l.Stroke)
	x1, y1 := p.point(l.From.X, l.From.Y)
	x2, y2 := p.point(l.To.X, l.To.Y)
	p.cc.Add_m(x1, y1)
	p.cc.Add_l(x2, y2)
	p.cc.Add_S()
	p.cc.Add_Q()

	if l.Arrow {
		p.arrowHead(l)
	}
}

func (p *pageWriter) arrowHead(l scene.Line) {
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
	p.fillPolygon(head, scene.Identity, l.Stroke.Color)
}

func (p *pageWriter) curve(cv scene.Curve) {
	p.cc.Add_q()
	p.stroke(cv.Stroke)
	x0, y0 := p.point(cv.Start.X, cv.Start.Y)
	x3, y3 := p.point(cv.End.X, cv.End.Y)
	p.cc.Add_m(x0, y0)
	if cv.Quadratic {
		// Degree elevation to the cubic operator.
		cx, cy := p.point(cv.Control1.X, cv.Control1.Y)
		c1x, c1y := x0+2*(cx-x0)/3, y0+2*(cy-y0)/3
		c2x, c2y := x3+2*(cx-x3)/3, y3+2*(cy-y3)/3
		p.cc.Add_c(c1x, c1y, c2x, c2y, x3, y3)
	} else {
		c1x, c1y := p.point(cv.Control1.X, cv.Control1.Y)
		c2x, c2y := p.point(cv.Control2.X, cv.Control2.Y)
		p.cc.Add_c(c1x, c1y, c2x, c2y, x3, y3)
	}
	p.cc.Add_S()
	p.cc.Add_Q()
}

// kappa for one quadrant of an ellipse approximated by a cubic.
const kappa = 0.5522848

func (p *pageWriter) ellipse(e scene.Ellipse) {
	p.cc.Add_q()
	p.stroke(e.Stroke)

	rx, ry := e.Rx, e.Ry
	kx, ky := kappa*rx, kappa*ry
	// Quadrant control polygons in local space, mapped through the
	// element transform. Affine maps preserve bezier control points.
	quads := [4][3]scene.Point{
		{{X: rx, Y: ky}, {X: kx, Y: ry}, {X: 0, Y: ry}},
		{{X: -kx, Y: ry}, {X: -rx, Y: ky}, {X: -rx, Y: 0}},
		{{X: -rx, Y: -ky}, {X: -kx, Y: -ry}, {X: 0, Y: -ry}},
		{{X: kx, Y: -ry}, {X: rx, Y: -ky}, {X: rx, Y: 0}},
	}

	sx, sy := p.point(e.Transform.Apply(rx, 0))
	p.cc.Add_m(sx, sy)
	for _, q := range quads {
		c1x, c1y := p.point(e.Transform.Apply(q[0].X, q[0].Y))
		c2x, c2y := p.point(e.Transform.Apply(q[1].X, q[1].Y))
		ex, ey := p.point(e.Transform.Apply(q[2].X, q[2].Y))
		p.cc.Add_c(c1x, c1y, c2x, c2y, ex, ey)
	}
	p.cc.Add_h()
	p.cc.Add_S()
	p.cc.Add_Q()
}

// Package svg writes a rendered scene as an SVG document.
package svg

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/juruen/vecnote/scene"
)

type svgWriter struct {
	io.Writer
	markerSeq int
	markerTag string
}

// Write emits the scene as a standalone SVG document.
func Write(out io.Writer, s *scene.Scene) error {
	// Unique marker namespace so several documents can be inlined
	// into one host page without id collisions.
	w := &svgWriter{Writer: out, markerTag: uuid.New().String()}

	vp := s.Viewport
	fmt.Fprintf(w, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="%s %s %s %s">`,
		num(vp.Width), num(vp.Height), num(vp.MinX), num(vp.MinY), num(vp.Width), num(vp.Height))

	fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
		num(vp.MinX), num(vp.MinY), num(vp.Width), num(vp.Height), cssColor(s.Background))

	for _, p := range s.Primitives {
		w.primitive(p)
	}

	_, err := fmt.Fprintf(w, "</svg>\n")
	return err
}

// Marshal renders the scene to an in-memory SVG document.
func Marshal(s *scene.Scene) []byte {
	var buf bytes.Buffer
	Write(&buf, s)
	return buf.Bytes()
}

func (w *svgWriter) primitive(p scene.Primitive) {
	switch v := p.(type) {
	case scene.Path:
		w.path(v)
	case scene.Line:
		w.line(v)
	case scene.Rect:
		w.rect(v)
	case scene.Ellipse:
		w.ellipse(v)
	case scene.Curve:
		w.curve(v)
	case scene.Polyline:
		w.polyline(v)
	case scene.Text:
		w.text(v)
	}
}

func (w *svgWriter) path(p scene.Path) {
	if len(p.Points) == 0 {
		return
	}
	var d strings.Builder
	fmt.Fprintf(&d, "M%s %s", num(p.Points[0].X), num(p.Points[0].Y))
	for _, pt := range p.Points[1:] {
		fmt.Fprintf(&d, "L%s %s", num(pt.X), num(pt.Y))
	}
	d.WriteString("Z")
	fmt.Fprintf(w, `<path d="%s" fill="%s" stroke="none"/>`, d.String(), cssColor(p.Fill))
}

func (w *svgWriter) line(l scene.Line) {
	marker := ""
	if l.Arrow {
		id := fmt.Sprintf("arrow-%s-%d", w.markerTag, w.markerSeq)
		w.markerSeq++
		fmt.Fprintf(w, `<defs><marker id="%s" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="6" markerHeight="6" orient="auto"><path d="M0 0L10 5L0 10z" fill="%s"/></marker></defs>`,
			id, cssColor(l.Stroke.Color))
		marker = fmt.Sprintf(` marker-end="url(#%s)"`, id)
	}
	fmt.Fprintf(w, `<line x1="%s" y1="%s" x2="%s" y2="%s"%s%s/>`,
		num(l.From.X), num(l.From.Y), num(l.To.X), num(l.To.Y), strokeAttrs(l.Stroke), marker)
}

func (w *svgWriter) rect(r scene.Rect) {
	fmt.Fprintf(w, `<rect x="%s" y="%s" width="%s" height="%s"%s%s/>`,
		num(-r.HalfW), num(-r.HalfH), num(2*r.HalfW), num(2*r.HalfH),
		strokeAttrs(r.Stroke), transformAttr(r.Transform))
}

func (w *svgWriter) ellipse(e scene.Ellipse) {
	fmt.Fprintf(w, `<ellipse cx="0" cy="0" rx="%s" ry="%s"%s%s/>`,
		num(e.Rx), num(e.Ry), strokeAttrs(e.Stroke), transformAttr(e.Transform))
}

func (w *svgWriter) curve(c scene.Curve) {
	var d string
	if c.Quadratic {
		d = fmt.Sprintf("M%s %s Q%s %s %s %s",
			num(c.Start.X), num(c.Start.Y),
			num(c.Control1.X), num(c.Control1.Y),
			num(c.End.X), num(c.End.Y))
	} else {
		d = fmt.Sprintf("M%s %s C%s %s %s %s %s %s",
			num(c.Start.X), num(c.Start.Y),
			num(c.Control1.X), num(c.Control1.Y),
			num(c.Control2.X), num(c.Control2.Y),
			num(c.End.X), num(c.End.Y))
	}
	fmt.Fprintf(w, `<path d="%s"%s/>`, d, strokeAttrs(c.Stroke))
}

func (w *svgWriter) polyline(p scene.Polyline) {
	var pts strings.Builder
	for i, pt := range p.Points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%s,%s", num(pt.X), num(pt.Y))
	}
	tag := "polyline"
	if p.Closed {
		tag = "polygon"
	}
	fmt.Fprintf(w, `<%s points="%s"%s%s/>`, tag, pts.String(), strokeAttrs(p.Stroke), transformAttr(p.Transform))
}

func (w *svgWriter) text(t scene.Text) {
	fmt.Fprintf(w, `<text x="%s" y="%s" font-size="%s" font-family="sans-serif" fill="%s">%s</text>`,
		num(t.Pos.X), num(t.Pos.Y), num(t.FontSize), cssColor(t.Fill), escapeText(t.Content))
}

func strokeAttrs(s scene.Stroke) string {
	return fmt.Sprintf(` fill="none" stroke="%s" stroke-width="%s" stroke-linecap="round" stroke-linejoin="round"`,
		cssColor(s.Color), num(s.Width))
}

func transformAttr(m scene.Matrix) string {
	if m.IsIdentity() {
		return ""
	}
	return fmt.Sprintf(` transform="matrix(%s %s %s %s %s %s)"`,
		num(m.A), num(m.B), num(m.C), num(m.D), num(m.Tx), num(m.Ty))
}

func cssColor(c scene.Color) string {
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", channel(c.R), channel(c.G), channel(c.B), num(c.A))
}

func channel(v float32) int {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return int(v*255 + 0.5)
}

var textEscaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")

func escapeText(s string) string {
	return textEscaper.Replace(s)
}

func num(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

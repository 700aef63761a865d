// Package vn decodes the compressed vector-note file format.
//
// A .vn file is a gzip stream whose inflated content is a UTF-8 JSON
// document. Only the fields the renderer consumes are modeled here;
// unknown fields are ignored.
package vn

// Defaults applied when an optional field is absent from a document.
const (
	DefaultPressure    float32 = 0.5
	DefaultStrokeWidth float32 = 2
	DefaultFontSize    float32 = 32
	DefaultAlpha       float32 = 1
)

// Document is the root of a parsed note. It is constructed once per
// render pass and never mutated.
type Document struct {
	Version    string      `json:"version"`
	Components []Component `json:"-"`
}

// envelope is the raw top-level shape of the file. The renderer only
// consumes the stroke component list buried under the engine snapshot.
type envelope struct {
	Version string `json:"version"`
	Data    *struct {
		EngineSnapshot *struct {
			StrokeComponents *[]Component `json:"stroke_components"`
		} `json:"engine_snapshot"`
	} `json:"data"`
}

// Component is an optional-wrapped slot in the document's element
// sequence. A component without a stroke is inert.
type Component struct {
	Stroke *Element `json:"stroke"`
}

// Element is one drawable stroke. Exactly one of the three variants is
// populated; an element with none populated contributes nothing.
type Element struct {
	Brush *BrushStroke `json:"brushstroke"`
	Shape *ShapeStroke `json:"shapestroke"`
	Text  *TextStroke  `json:"textstroke"`
}

// Point is a raw coordinate pair. No unit conversion is applied.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

// Transform packs a 3x3 affine matrix in column-major order. Only
// indices 0,1 (first column), 3,4 (second column) and 6,7 (translation)
// are consumed; 2,5,8 are the homogeneous row.
type Transform [9]float32

// TranslateX returns the x translation component.
func (t Transform) TranslateX() float32 { return t[6] }

// TranslateY returns the y translation component.
func (t Transform) TranslateY() float32 { return t[7] }

// BrushStroke is a freehand pressure-sensitive stroke. The centerline
// is stored in absolute coordinates.
type BrushStroke struct {
	Start  *BrushPoint  `json:"start"`
	LineTo []BrushPoint `json:"lineto"`
	Style  *Style       `json:"style"`
}

// BrushPoint is one centerline sample with an optional pressure value.
type BrushPoint struct {
	Point    *Point   `json:"point"`
	Pressure *float32 `json:"pressure"`
}

// PressureOrDefault returns the recorded pressure, or DefaultPressure
// when the sample carries none.
func (p BrushPoint) PressureOrDefault() float32 {
	if p.Pressure == nil {
		return DefaultPressure
	}
	return *p.Pressure
}

// ShapeStroke wraps a geometric primitive description plus a style.
// The format nests the variant union one level below the element.
type ShapeStroke struct {
	Shape *Shape `json:"shape"`
	Style *Style `json:"style"`
}

// Shape is the primitive union. Exactly one variant is populated.
type Shape struct {
	Rect      *RectShape     `json:"rect"`
	Ellipse   *EllipseShape  `json:"ellipse"`
	Line      *LineShape     `json:"line"`
	Arrow     *ArrowShape    `json:"arrow"`
	Cubic     *CubicShape    `json:"cubic"`
	Quadratic *QuadShape     `json:"quadratic"`
	Polyline  *PolylineShape `json:"polyline"`
	Polygon   *PolylineShape `json:"polygon"`
}

// RectShape spans [-hx,-hy]..[+hx,+hy] around the local origin.
type RectShape struct {
	HalfExtents *Point     `json:"half_extents"`
	Transform   *Transform `json:"transform"`
}

// EllipseShape is centered at the local origin.
type EllipseShape struct {
	Radii     *Point     `json:"radii"`
	Transform *Transform `json:"transform"`
}

type LineShape struct {
	Start *Point `json:"start"`
	End   *Point `json:"end"`
}

// ArrowShape is a line with a directional head at the tip end.
type ArrowShape struct {
	Start *Point `json:"start"`
	Tip   *Point `json:"tip"`
}

type CubicShape struct {
	Start    *Point `json:"start"`
	Control1 *Point `json:"control1"`
	Control2 *Point `json:"control2"`
	End      *Point `json:"end"`
}

type QuadShape struct {
	Start   *Point `json:"start"`
	Control *Point `json:"control"`
	End     *Point `json:"end"`
}

// PolylineShape carries an ordered point sequence. The same shape backs
// both the open polyline and the closed polygon variants.
type PolylineShape struct {
	Points    []Point    `json:"points"`
	Transform *Transform `json:"transform"`
}

// TextStroke places literal text at the transform's translation offset.
type TextStroke struct {
	Text      string     `json:"text"`
	Transform *Transform `json:"transform"`
	Style     *TextStyle `json:"style"`
}

type TextStyle struct {
	FontSize *float32 `json:"font_size"`
	Color    *Color   `json:"color"`
}

// Style is a tagged choice among the three pen kinds. Exactly one is
// populated per stroke.
type Style struct {
	Smooth  *SubStyle `json:"smooth"`
	Rough   *SubStyle `json:"rough"`
	Technic *SubStyle `json:"technic"`
}

// Pen returns the first populated sub-style in smooth, rough, technic
// order, or nil when the style is entirely absent.
func (s *Style) Pen() *SubStyle {
	if s == nil {
		return nil
	}
	switch {
	case s.Smooth != nil:
		return s.Smooth
	case s.Rough != nil:
		return s.Rough
	case s.Technic != nil:
		return s.Technic
	}
	return nil
}

// SubStyle carries the stroke parameters of one pen kind.
type SubStyle struct {
	StrokeWidth *float32 `json:"stroke_width"`
	Color       *Color   `json:"color"`
}

// Color holds sRGB components, each nominally in [0,1]. A missing
// alpha decodes as DefaultAlpha.
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

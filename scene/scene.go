// Package scene holds the resolution-independent output of a render
// pass: an ordered list of drawing primitives plus the viewport that
// frames them. Scenes are consumed by the svg, raster and pdfgen
// backends.
package scene

// Background is the fixed page color behind every rendered note.
var Background = Color{R: 0.98, G: 0.98, B: 0.96, A: 1}

// Scene is the assembled output of one render pass. Primitives are in
// document order; later entries draw on top.
type Scene struct {
	Primitives []Primitive
	Viewport   Viewport
	Background Color
}

// Viewport frames the scene.
type Viewport struct {
	MinX, MinY    float32
	Width, Height float32
}

// Color is an sRGB color with components in [0,1].
type Color struct {
	R, G, B, A float32
}

// Black is the default stroke and text color.
var Black = Color{A: 1}

// Matrix is the consumed part of a document affine transform: a 2x2
// linear map (A..D) plus a translation (Tx, Ty).
type Matrix struct {
	A, B, C, D float32
	Tx, Ty     float32
}

// Identity is the no-op transform.
var Identity = Matrix{A: 1, D: 1}

// Apply maps a local coordinate pair through the transform.
func (m Matrix) Apply(x, y float32) (float32, float32) {
	return m.A*x + m.C*y + m.Tx, m.B*x + m.D*y + m.Ty
}

// IsIdentity reports whether applying the matrix is a no-op.
func (m Matrix) IsIdentity() bool {
	return m == Identity
}

// Point is a scene-space coordinate pair.
type Point struct {
	X, Y float32
}

// Stroke carries the pen parameters shared by all outline primitives.
// Caps and joins are always round.
type Stroke struct {
	Color Color
	Width float32
}

// Primitive is a closed union over the drawable kinds. Exactly the
// types in this package implement it.
type Primitive interface {
	primitive()
}

// Path is a closed filled outline, produced by brush stroke expansion.
// It has no stroke pass of its own.
type Path struct {
	Points []Point
	Fill   Color
}

// Line is a straight segment, optionally with an arrowhead at To.
type Line struct {
	From, To Point
	Arrow    bool
	Stroke   Stroke
}

// Rect spans [-HalfW,-HalfH]..[+HalfW,+HalfH] in local space, mapped
// through Transform.
type Rect struct {
	HalfW, HalfH float32
	Transform    Matrix
	Stroke       Stroke
}

// Ellipse is centered on the local origin, mapped through Transform.
type Ellipse struct {
	Rx, Ry    float32
	Transform Matrix
	Stroke    Stroke
}

// Curve is a Bezier segment. Cubic curves carry two control points;
// quadratic curves leave Control2 unset and Quadratic true.
type Curve struct {
	Start, End         Point
	Control1, Control2 Point
	Quadratic          bool
	Stroke             Stroke
}

// Polyline is an ordered open or closed point sequence, mapped through
// Transform.
type Polyline struct {
	Points    []Point
	Closed    bool
	Transform Matrix
	Stroke    Stroke
}

// Text is a literal text run anchored at Pos.
type Text struct {
	Pos      Point
	Content  string
	FontSize float32
	Fill     Color
}

func (Path) primitive()     {}
func (Line) primitive()     {}
func (Rect) primitive()     {}
func (Ellipse) primitive()  {}
func (Curve) primitive()    {}
func (Polyline) primitive() {}
func (Text) primitive()     {}

package scene

import "github.com/chewxy/math32"

// Margin added to every side of the bounding box when deriving the
// viewport.
const ViewportMargin float32 = 50

// Default viewport used when no element contributed any bounds.
const (
	DefaultViewportWidth  float32 = 800
	DefaultViewportHeight float32 = 600
)

// Box is the running bounding accumulator of one render pass. It is
// owned by the pass and never shared across invocations.
type Box struct {
	MinX, MinY float32
	MaxX, MaxY float32
}

// NewBox returns an empty accumulator.
func NewBox() *Box {
	return &Box{
		MinX: math32.Inf(1),
		MinY: math32.Inf(1),
		MaxX: math32.Inf(-1),
		MaxY: math32.Inf(-1),
	}
}

// Update widens the box to include the point.
func (b *Box) Update(x, y float32) {
	b.MinX = math32.Min(b.MinX, x)
	b.MinY = math32.Min(b.MinY, y)
	b.MaxX = math32.Max(b.MaxX, x)
	b.MaxY = math32.Max(b.MaxY, y)
}

// Empty reports whether no point was ever accumulated.
func (b *Box) Empty() bool {
	return b.MinX > b.MaxX || b.MinY > b.MaxY
}

// Viewport derives the final frame: the accumulated bounds plus the
// fixed margin, or the default 800x600 frame at the origin when the
// box is still empty.
func (b *Box) Viewport() Viewport {
	if b.Empty() {
		return Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	}
	return Viewport{
		MinX:   b.MinX - ViewportMargin,
		MinY:   b.MinY - ViewportMargin,
		Width:  b.MaxX - b.MinX + 2*ViewportMargin,
		Height: b.MaxY - b.MinY + 2*ViewportMargin,
	}
}

package render

import (
	"github.com/chewxy/math32"

	"github.com/juruen/vecnote/scene"
)

// outline expands a centerline with per-point pressures into a closed
// filled polygon. points and pressures have the same length; baseWidth
// is the full stroke width at pressure 1.
//
// The direction at each point is a central difference (next-prev for
// interior points, one-sided at the ends). Rotating it 90 degrees
// gives the outward normal; each point is offset by +-half-thickness
// along it, where half-thickness is baseWidth*pressure/2. The outline
// is the left side forward followed by the right side reversed.
//
// Fewer than 2 points produce no geometry. Coincident points degrade
// to a unit-length fallback direction rather than dividing by zero;
// the resulting sliver is accepted as-is.
func outline(points []scene.Point, pressures []float32, baseWidth float32) []scene.Point {
	n := len(points)
	if n < 2 {
		return nil
	}

	left := make([]scene.Point, n)
	right := make([]scene.Point, n)

	for i := 0; i < n; i++ {
		var dx, dy float32
		switch i {
		case 0:
			dx = points[1].X - points[0].X
			dy = points[1].Y - points[0].Y
		case n - 1:
			dx = points[n-1].X - points[n-2].X
			dy = points[n-1].Y - points[n-2].Y
		default:
			dx = points[i+1].X - points[i-1].X
			dy = points[i+1].Y - points[i-1].Y
		}

		nx, ny := normalize(-dy, dx)
		half := baseWidth * pressures[i] / 2

		left[i] = scene.Point{X: points[i].X + nx*half, Y: points[i].Y + ny*half}
		right[i] = scene.Point{X: points[i].X - nx*half, Y: points[i].Y - ny*half}
	}

	out := make([]scene.Point, 0, 2*n)
	out = append(out, left...)
	for i := n - 1; i >= 0; i-- {
		out = append(out, right[i])
	}
	return out
}

// normalize scales (x, y) to unit length, falling back to length 1 for
// a degenerate zero vector.
func normalize(x, y float32) (float32, float32) {
	l := math32.Hypot(x, y)
	if l == 0 {
		l = 1
	}
	return x / l, y / l
}

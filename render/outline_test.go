package render

import (
	"testing"

	"github.com/juruen/vecnote/scene"
)

func TestOutlineHorizontalSegment(t *testing.T) {
	points := []scene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	pressures := []float32{1, 1}

	out := outline(points, pressures, 4)
	want := []scene.Point{{X: 0, Y: 2}, {X: 10, Y: 2}, {X: 10, Y: -2}, {X: 0, Y: -2}}
	if len(out) != len(want) {
		t.Fatalf("expected %d points, got %d", len(want), len(out))
	}
	for i := range want {
		if !approx(out[i].X, want[i].X) || !approx(out[i].Y, want[i].Y) {
			t.Errorf("point %d: got %+v, want %+v", i, out[i], want[i])
		}
	}
}

func TestOutlinePressureTaper(t *testing.T) {
	points := []scene.Point{{X: 0, Y: 0}, {X: 10, Y: 0}}
	pressures := []float32{1, 0.25}

	out := outline(points, pressures, 4)
	// Full thickness at the start, a quarter at the end.
	if !approx(out[0].Y, 2) || !approx(out[1].Y, 0.5) {
		t.Errorf("taper not applied: %+v", out)
	}
}

func TestOutlineDegenerate(t *testing.T) {
	if out := outline([]scene.Point{{X: 1, Y: 1}}, []float32{1}, 4); out != nil {
		t.Errorf("single point should produce no geometry, got %v", out)
	}
	if out := outline(nil, nil, 4); out != nil {
		t.Errorf("empty centerline should produce no geometry, got %v", out)
	}
}

func TestOutlineCoincidentPoints(t *testing.T) {
	// Zero-length direction falls back to unit length instead of
	// dividing by zero; the thin sliver is accepted as-is.
	points := []scene.Point{{X: 5, Y: 5}, {X: 5, Y: 5}}
	out := outline(points, []float32{1, 1}, 4)
	if len(out) != 4 {
		t.Fatalf("expected 4 outline points, got %d", len(out))
	}
	for _, p := range out {
		if p.X != 5 || p.Y != 5 {
			t.Errorf("degenerate normal should not offset points: %+v", p)
		}
	}
}

func approx(a, b float32) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < 1e-4
}

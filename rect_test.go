package ggplay

import (
	"math"
	"testing"
)

func TestRectStandardize(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		want Rect
	}{
		{"positive", R(1, 2, 3, 4), R(1, 2, 3, 4)},
		{"negative width", R(10, 0, -4, 2), R(6, 0, 4, 2)},
		{"negative height", R(0, 10, 2, -4), R(0, 6, 2, 4)},
		{"both negative", R(5, 5, -5, -5), R(0, 0, 5, 5)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Standardize(); got != tt.want {
				t.Errorf("%v.Standardize() = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestRectApply(t *testing.T) {
	tests := []struct {
		name string
		r    Rect
		m    Matrix
		want Rect
	}{
		{"identity", R(0, 0, 100, 200), Identity(), R(0, 0, 100, 200)},
		{"translate", R(0, 0, 10, 10), Translate(5, -5), R(5, -5, 10, 10)},
		{"scale", R(1, 1, 2, 2), Scale(2, 3), R(2, 3, 4, 6)},
		{"negative scale", R(1, 1, 2, 2), Scale(-1, 1), R(-3, 1, 2, 2)},
		{"rotate 90deg", R(0, 0, 100, 200), Rotate(math.Pi / 2), R(-200, 0, 200, 100)},
		{"rotate 180deg", R(-100, -100, 200, 200), Rotate(math.Pi), R(-100, -100, 200, 200)},
		{"rotate 45deg", R(0, 0, 1, 1), Rotate(math.Pi / 4), R(-math.Sqrt2/2, 0, math.Sqrt2, math.Sqrt2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.Apply(tt.m); !got.ApproxEqual(tt.want, 1e-9) {
				t.Errorf("%v.Apply(%+v) = %v, want %v", tt.r, tt.m, got, tt.want)
			}
		})
	}
}

func TestRectApplyContainsTransformedCorners(t *testing.T) {
	r := R(-30, 12, 75, 40)
	for _, a := range []float64{0.1, 1, 2.5, -0.8} {
		m := Rotate(a)
		box := r.Apply(m)
		lo, hi := box.Min(), box.Max()
		for _, c := range []Point{r.Min(), r.Max(), Pt(r.X+r.W, r.Y), Pt(r.X, r.Y+r.H)} {
			p := m.TransformPoint(c)
			if p.X < lo.X-eps || p.X > hi.X+eps || p.Y < lo.Y-eps || p.Y > hi.Y+eps {
				t.Errorf("angle %g: corner %v maps to %v outside %v", a, c, p, box)
			}
		}
	}
}

func TestRectAccessors(t *testing.T) {
	r := RectFrom(Pt(1, 2), Sz(3, 4))
	if r != R(1, 2, 3, 4) {
		t.Errorf("RectFrom = %v", r)
	}
	if r.Origin() != Pt(1, 2) || r.Size() != Sz(3, 4) {
		t.Errorf("Origin/Size = %v %v", r.Origin(), r.Size())
	}
	if r.Center() != Pt(2.5, 4) {
		t.Errorf("Center() = %v, want (2.5, 4)", r.Center())
	}
	if r.Area() != 12 {
		t.Errorf("Area() = %g, want 12", r.Area())
	}
	if !R(1, 1, 0, 5).IsEmpty() || r.IsEmpty() {
		t.Error("IsEmpty mismatch")
	}
	if R(math.NaN(), 0, 1, 1).IsFinite() || !r.IsFinite() {
		t.Error("IsFinite mismatch")
	}
}

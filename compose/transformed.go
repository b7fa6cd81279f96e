package compose

import "github.com/gogpu/ggplay"

// Transformed draws Original through Transform.
type Transformed struct {
	Original  Shape
	Transform ggplay.Matrix
}

var _ Shape = Transformed{}

// BoundingBox maps the bounding box of the innermost untransformed shape
// through the product of every nested transform. For a single wrapper this
// is the original bounding box mapped through Transform; nested rotations
// give the same box as one rotation by the summed angle.
func (t Transformed) BoundingBox() ggplay.Rect {
	inner, m := t.Flatten()
	return inner.BoundingBox().Apply(m)
}

// Flatten returns the innermost shape that is not a Transformed and the
// combined transform of every wrapper around it.
func (t Transformed) Flatten() (Shape, ggplay.Matrix) {
	m := t.Transform
	inner := t.Original
	for {
		u, ok := inner.(Transformed)
		if !ok {
			return inner, m
		}
		m = m.Multiply(u.Transform)
		inner = u.Original
	}
}

// Draw saves the canvas state, concatenates Transform, draws Original and
// restores the state.
func (t Transformed) Draw(c ggplay.Canvas) {
	_ = ggplay.Scoped(c, func() error {
		c.Transform(t.Transform)
		t.Original.Draw(c)
		return nil
	})
}

// Rotated nests t in another rotation.
func (t Transformed) Rotated(angle float64) Shape {
	return Rotate(t, angle)
}

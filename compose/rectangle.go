package compose

import "github.com/gogpu/ggplay"

// Rectangle is a filled axis-aligned rectangle.
type Rectangle struct {
	Origin ggplay.Point
	Size   ggplay.Size
	Color  ggplay.RGBA
}

var _ Shape = Rectangle{}

// NewRectangle creates a red rectangle.
func NewRectangle(origin ggplay.Point, size ggplay.Size) Rectangle {
	return Rectangle{Origin: origin, Size: size, Color: ggplay.Red}
}

// BoundingBox returns the rectangle's own geometry.
func (r Rectangle) BoundingBox() ggplay.Rect {
	return ggplay.RectFrom(r.Origin, r.Size)
}

// Draw fills the bounding box.
func (r Rectangle) Draw(c ggplay.Canvas) {
	c.SetFillColor(r.Color)
	c.FillRect(r.BoundingBox())
}

// Rotated returns Rotate(r, angle).
func (r Rectangle) Rotated(angle float64) Shape {
	return Rotate(r, angle)
}

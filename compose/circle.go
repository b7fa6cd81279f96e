package compose

import (
	"errors"
	"fmt"
	"math"

	"github.com/gogpu/ggplay"
)

// ErrInvalidRadius is returned by Circle.Validate.
var ErrInvalidRadius = errors.New("compose: radius must be a non-negative number")

// Circle is a filled circle.
type Circle struct {
	Center ggplay.Point
	Radius float64
	Color  ggplay.RGBA
}

var _ Shape = Circle{}

// NewCircle creates a green circle.
func NewCircle(center ggplay.Point, radius float64) Circle {
	return Circle{Center: center, Radius: radius, Color: ggplay.Green}
}

// Validate reports a radius that is negative or not a finite number.
// Drawing never checks it.
func (c Circle) Validate() error {
	if c.Radius < 0 || math.IsNaN(c.Radius) || math.IsInf(c.Radius, 0) {
		return fmt.Errorf("%w: %g", ErrInvalidRadius, c.Radius)
	}
	return nil
}

// BoundingBox returns the square enclosing the circle.
func (c Circle) BoundingBox() ggplay.Rect {
	return ggplay.R(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Radius*2, c.Radius*2)
}

// Draw fills the ellipse inscribed in the bounding box.
func (c Circle) Draw(dc ggplay.Canvas) {
	dc.SetFillColor(c.Color)
	dc.FillEllipse(c.BoundingBox())
}

// Rotated returns Rotate(c, angle).
func (c Circle) Rotated(angle float64) Shape {
	return Rotate(c, angle)
}

// Package hierarchy models drawable shapes as a base type with overriding
// leaf types.
//
// Go has no classes, so the base Shape is a struct embedded by each leaf and
// the leaf registers itself with the base. Methods defined on the base
// dispatch through that registration, which gives Image the late binding a
// virtual call would. Leaves register on construction and again on every
// Image call, so a leaf copied by value renders its own fields. The base's own Draw and BoundingBox are
// abstract: reaching them is a programming error and panics with an error
// wrapping ErrAbstract.
//
//	r := hierarchy.NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
//	img := r.Image()
package hierarchy

import (
	"errors"
	"fmt"
	"image"

	"github.com/gogpu/ggplay"
)

// ErrAbstract is wrapped by the value a base Shape panics with when one of
// its abstract methods is reached.
var ErrAbstract = errors.New("hierarchy: abstract method called")

// Drawable is the method set a leaf overrides.
type Drawable interface {
	Draw(c ggplay.Canvas)
	BoundingBox() ggplay.Rect
}

// Shape is the base of the hierarchy. A Shape that is not embedded in a
// leaf has no overrides.
type Shape struct {
	self Drawable
}

// Draw is abstract. It panics.
func (s *Shape) Draw(ggplay.Canvas) {
	panic(fmt.Errorf("%w: Shape.Draw", ErrAbstract))
}

// BoundingBox is abstract. It panics.
func (s *Shape) BoundingBox() ggplay.Rect {
	panic(fmt.Errorf("%w: Shape.BoundingBox", ErrAbstract))
}

// Image renders the most derived shape into a bitmap covering its bounding
// box.
func (s *Shape) Image(opts ...ggplay.RendererOption) *image.RGBA {
	d := s.dispatch()
	r := ggplay.NewImageRenderer(d.BoundingBox(), opts...)
	return r.Image(d.Draw)
}

// dispatch returns the overriding leaf, or s itself when there is none.
func (s *Shape) dispatch() Drawable {
	if s.self != nil {
		return s.self
	}
	return s
}

// Rectangle is a filled axis-aligned rectangle. The zero color is replaced
// by red in NewRectangle.
type Rectangle struct {
	Shape
	Origin ggplay.Point
	Size   ggplay.Size
	Color  ggplay.RGBA
}

// NewRectangle creates a red rectangle.
func NewRectangle(origin ggplay.Point, size ggplay.Size) *Rectangle {
	r := &Rectangle{Origin: origin, Size: size, Color: ggplay.Red}
	r.self = r
	return r
}

// Image binds r as the override and renders it.
func (r *Rectangle) Image(opts ...ggplay.RendererOption) *image.RGBA {
	r.self = r
	return r.Shape.Image(opts...)
}

// BoundingBox returns the rectangle's own geometry.
func (r *Rectangle) BoundingBox() ggplay.Rect {
	return ggplay.RectFrom(r.Origin, r.Size)
}

// Draw fills the bounding box.
func (r *Rectangle) Draw(c ggplay.Canvas) {
	c.SetFillColor(r.Color)
	c.FillRect(r.BoundingBox())
}

// Circle is a filled circle.
type Circle struct {
	Shape
	Center ggplay.Point
	Radius float64
	Color  ggplay.RGBA
}

// NewCircle creates a green circle.
func NewCircle(center ggplay.Point, radius float64) *Circle {
	c := &Circle{Center: center, Radius: radius, Color: ggplay.Green}
	c.self = c
	return c
}

// Image binds c as the override and renders it.
func (c *Circle) Image(opts ...ggplay.RendererOption) *image.RGBA {
	c.self = c
	return c.Shape.Image(opts...)
}

// BoundingBox returns the square enclosing the circle.
func (c *Circle) BoundingBox() ggplay.Rect {
	return ggplay.R(c.Center.X-c.Radius, c.Center.Y-c.Radius, c.Radius*2, c.Radius*2)
}

// Draw fills the ellipse inscribed in the bounding box.
func (c *Circle) Draw(dc ggplay.Canvas) {
	dc.SetFillColor(c.Color)
	dc.FillEllipse(c.BoundingBox())
}

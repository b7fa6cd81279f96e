package ggplay

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter circle
// with a cubic Bezier curve.
const kappa = 0.5522847498307936

// Context is the software Canvas. It fills anti-aliased paths into an
// *image.RGBA.
type Context struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	matrix Matrix
	fill   RGBA
	stack  []contextState
}

// contextState is the part of a Context saved by Push.
type contextState struct {
	matrix Matrix
	fill   RGBA
}

// NewContext creates a context drawing into a new transparent image of the
// given size.
func NewContext(width, height int) *Context {
	return NewContextForRGBA(image.NewRGBA(image.Rect(0, 0, width, height)))
}

// NewContextForRGBA creates a context drawing into img. Device coordinate
// (0,0) maps to img.Bounds().Min.
func NewContextForRGBA(img *image.RGBA) *Context {
	b := img.Bounds()
	return &Context{
		img:    img,
		ras:    vector.NewRasterizer(b.Dx(), b.Dy()),
		matrix: Identity(),
		fill:   Black,
	}
}

// Width returns the width of the target image.
func (c *Context) Width() int { return c.img.Bounds().Dx() }

// Height returns the height of the target image.
func (c *Context) Height() int { return c.img.Bounds().Dy() }

// Image returns the target image.
func (c *Context) Image() *image.RGBA { return c.img }

// Clear fills the whole image with col, ignoring the transform.
func (c *Context) Clear(col RGBA) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(col.Color()), image.Point{}, draw.Src)
}

// Push saves the current state (transform and fill color).
func (c *Context) Push() {
	c.stack = append(c.stack, contextState{matrix: c.matrix, fill: c.fill})
}

// Pop restores the last saved state.
func (c *Context) Pop() {
	if len(c.stack) == 0 {
		Logger().Warn("ggplay: Pop without matching Push")
		return
	}
	s := c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.matrix = s.matrix
	c.fill = s.fill
}

// Depth returns the number of saved states.
func (c *Context) Depth() int { return len(c.stack) }

// Transform multiplies the current transformation matrix by m.
// The transformation is applied in the order: current * m.
func (c *Context) Transform(m Matrix) {
	c.matrix = c.matrix.Multiply(m)
}

// SetTransform replaces the current transformation matrix.
func (c *Context) SetTransform(m Matrix) {
	c.matrix = m
}

// Matrix returns a copy of the current transformation matrix.
func (c *Context) Matrix() Matrix { return c.matrix }

// SetFillColor sets the color used by FillRect and FillEllipse.
func (c *Context) SetFillColor(col RGBA) {
	c.fill = col
}

// FillColor returns the current fill color.
func (c *Context) FillColor() RGBA { return c.fill }

// FillRect fills r, mapped through the current transform.
func (c *Context) FillRect(r Rect) {
	if !c.fillable(r) {
		return
	}
	lo, hi := r.Min(), r.Max()
	c.begin()
	c.moveTo(lo)
	c.lineTo(Pt(hi.X, lo.Y))
	c.lineTo(hi)
	c.lineTo(Pt(lo.X, hi.Y))
	c.ras.ClosePath()
	c.fillPath()
}

// FillEllipse fills the ellipse inscribed in r, mapped through the current
// transform.
func (c *Context) FillEllipse(r Rect) {
	if !c.fillable(r) {
		return
	}
	r = r.Standardize()
	ctr := r.Center()
	rx, ry := r.W/2, r.H/2
	ox, oy := rx*kappa, ry*kappa
	x, y := ctr.X, ctr.Y

	c.begin()
	c.moveTo(Pt(x+rx, y))
	c.cubeTo(Pt(x+rx, y+oy), Pt(x+ox, y+ry), Pt(x, y+ry))
	c.cubeTo(Pt(x-ox, y+ry), Pt(x-rx, y+oy), Pt(x-rx, y))
	c.cubeTo(Pt(x-rx, y-oy), Pt(x-ox, y-ry), Pt(x, y-ry))
	c.cubeTo(Pt(x+ox, y-ry), Pt(x+rx, y-oy), Pt(x+rx, y))
	c.ras.ClosePath()
	c.fillPath()
}

// fillable reports whether filling r can change any pixel.
func (c *Context) fillable(r Rect) bool {
	if r.IsEmpty() || c.fill.A <= 0 || c.img.Bounds().Empty() {
		return false
	}
	if !r.IsFinite() {
		Logger().Warn("ggplay: skipping non-finite fill", "rect", r)
		return false
	}
	// A singular transform collapses the shape to a line or point.
	det := c.matrix.A*c.matrix.E - c.matrix.B*c.matrix.D
	return math.Abs(det) >= 1e-12
}

func (c *Context) begin() {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())
}

func (c *Context) device(p Point) (float32, float32) {
	d := c.matrix.TransformPoint(p)
	return float32(d.X), float32(d.Y)
}

func (c *Context) moveTo(p Point) {
	c.ras.MoveTo(c.device(p))
}

func (c *Context) lineTo(p Point) {
	c.ras.LineTo(c.device(p))
}

func (c *Context) cubeTo(b, cc, d Point) {
	bx, by := c.device(b)
	cx, cy := c.device(cc)
	dx, dy := c.device(d)
	c.ras.CubeTo(bx, by, cx, cy, dx, dy)
}

func (c *Context) fillPath() {
	b := c.img.Bounds()
	c.ras.Draw(c.img, b, image.NewUniform(c.fill.Color()), image.Point{})
}

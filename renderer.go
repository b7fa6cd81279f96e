package ggplay

import (
	"image"
	"math"
)

// MaxDimension is the largest width or height, in pixels, an ImageRenderer
// allocates. Larger bounds render as an empty image.
const MaxDimension = 1 << 14

// ImageRenderer allocates bitmaps covering a fixed bounds rectangle and runs
// a draw callback against a Context mapped onto them.
//
// The bounds origin maps to the top-left pixel, so shapes keep their own
// coordinates and the renderer crops to whatever the bounds cover.
type ImageRenderer struct {
	bounds Rect
	opts   rendererOptions
}

// NewImageRenderer creates a renderer for the given bounds.
func NewImageRenderer(bounds Rect, opts ...RendererOption) *ImageRenderer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &ImageRenderer{bounds: bounds.Standardize(), opts: o}
}

// Bounds returns the standardized bounds the renderer covers.
func (r *ImageRenderer) Bounds() Rect { return r.bounds }

// Scale returns the number of pixels per unit.
func (r *ImageRenderer) Scale() float64 { return r.opts.scale }

// PixelSize returns the width and height of the bitmaps Image allocates.
func (r *ImageRenderer) PixelSize() (width, height int) {
	if !r.bounds.IsFinite() {
		return 0, 0
	}
	s := r.opts.scale
	w := math.Ceil(r.bounds.W*s - 1e-9)
	h := math.Ceil(r.bounds.H*s - 1e-9)
	if w <= 0 || h <= 0 || w > MaxDimension || h > MaxDimension {
		return 0, 0
	}
	return int(w), int(h)
}

// Image allocates a bitmap, invokes draw exactly once with a canvas whose
// coordinates match the renderer bounds and returns the bitmap.
func (r *ImageRenderer) Image(draw func(Canvas)) *image.RGBA {
	w, h := r.PixelSize()
	log := Logger()
	if w == 0 || h == 0 {
		log.Warn("ggplay: rendering empty image", "bounds", r.bounds, "scale", r.opts.scale)
	} else {
		log.Debug("ggplay: rendering image", "bounds", r.bounds, "width", w, "height", h)
	}

	dc := NewContext(w, h)
	if r.opts.background.A > 0 {
		dc.Clear(r.opts.background)
	}
	s := r.opts.scale
	dc.SetTransform(Scale(s, s).Multiply(Translate(-r.bounds.X, -r.bounds.Y)))

	draw(dc)

	if dc.Depth() != 0 {
		log.Warn("ggplay: draw returned with unbalanced Push", "depth", dc.Depth())
	}
	return dc.Image()
}

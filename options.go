package ggplay

// RendererOption configures an ImageRenderer during creation.
//
// Example:
//
//	r := ggplay.NewImageRenderer(bounds,
//	    ggplay.WithScale(2),
//	    ggplay.WithBackground(ggplay.White),
//	)
type RendererOption func(*rendererOptions)

// rendererOptions holds optional configuration for ImageRenderer creation.
type rendererOptions struct {
	scale      float64
	background RGBA
}

// defaultOptions returns the default renderer options: one pixel per unit
// and a transparent background.
func defaultOptions() rendererOptions {
	return rendererOptions{
		scale:      1,
		background: Transparent,
	}
}

// WithScale sets the number of pixels per unit of the bounds.
// Values that are not positive are ignored.
func WithScale(s float64) RendererOption {
	return func(o *rendererOptions) {
		if s > 0 && isFinite(s) {
			o.scale = s
		}
	}
}

// WithBackground fills the bitmap with c before drawing.
func WithBackground(c RGBA) RendererOption {
	return func(o *rendererOptions) {
		o.background = c
	}
}

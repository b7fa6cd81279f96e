package ggplay

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
)

// RGBA represents a color with red, green, blue, and alpha components.
// Each component is in the range [0, 1] and is not premultiplied.
type RGBA struct {
	R, G, B, A float64
}

// Color converts RGBA to the standard color.Color interface.
func (c RGBA) Color() color.Color {
	return color.NRGBA{
		R: uint8(clamp255(c.R*255 + 0.5)),
		G: uint8(clamp255(c.G*255 + 0.5)),
		B: uint8(clamp255(c.B*255 + 0.5)),
		A: uint8(clamp255(c.A*255 + 0.5)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// ParseColor parses any CSS color: names ("red"), hex ("#f00", "#ff000080"),
// rgb(), rgba(), hsl() and hwb() notations.
func ParseColor(s string) (RGBA, error) {
	c, err := csscolorparser.Parse(s)
	if err != nil {
		return RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	return RGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// Hex creates a color from a hex string such as "#ff8800".
// Returns opaque black if the string is not a valid color.
func Hex(hex string) RGBA {
	if hex != "" && hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := ParseColor(hex)
	if err != nil {
		return Black
	}
	return c
}

// HSL creates a color from HSL values.
// h is hue [0, 360), s is saturation [0, 1], l is lightness [0, 1].
func HSL(h, s, l float64) RGBA {
	c := colorful.Hsl(h, s, l).Clamped()
	return RGB(c.R, c.G, c.B)
}

// Lerp blends c toward other in CIE-L*a*b* space; alpha is interpolated
// linearly.
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	a := colorful.Color{R: c.R, G: c.G, B: c.B}
	b := colorful.Color{R: other.R, G: other.G, B: other.B}
	m := a.BlendLab(b, t).Clamped()
	return RGBA{R: m.R, G: m.G, B: m.B, A: c.A + (other.A-c.A)*t}
}

// Hex returns the color as "#rrggbb".
func (c RGBA) Hex() string {
	return colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped().Hex()
}

// clamp255 restricts a value to [0, 255] range.
func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA{}
)

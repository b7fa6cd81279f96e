package ggplay

import (
	"image/color"
	"math"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want RGBA
	}{
		{"red", Red},
		{"green", RGB(0, 128.0/255, 0)},
		{"#00f", Blue},
		{"#ffffff", White},
		{"rgb(0, 0, 0)", Black},
		{"transparent", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if err != nil {
				t.Fatalf("ParseColor(%q) error: %v", tt.in, err)
			}
			if !colorsClose(got, tt.want) {
				t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseColorInvalid(t *testing.T) {
	if _, err := ParseColor("not-a-color"); err == nil {
		t.Error("ParseColor(not-a-color) error = nil, want error")
	}
}

func TestHex(t *testing.T) {
	if got := Hex("ff0000"); !colorsClose(got, Red) {
		t.Errorf("Hex(ff0000) = %+v, want red", got)
	}
	if got := Hex("zzz"); got != Black {
		t.Errorf("Hex(zzz) = %+v, want black", got)
	}
	if got := Red.Hex(); got != "#ff0000" {
		t.Errorf("Red.Hex() = %q, want #ff0000", got)
	}
}

func TestHSL(t *testing.T) {
	tests := []struct {
		h, s, l float64
		want    RGBA
	}{
		{0, 1, 0.5, Red},
		{120, 1, 0.5, Green},
		{240, 1, 0.5, Blue},
		{0, 0, 1, White},
		{0, 0, 0, Black},
	}
	for _, tt := range tests {
		if got := HSL(tt.h, tt.s, tt.l); !colorsClose(got, tt.want) {
			t.Errorf("HSL(%g, %g, %g) = %+v, want %+v", tt.h, tt.s, tt.l, got, tt.want)
		}
	}
}

func TestColorRoundTrip(t *testing.T) {
	c := color.NRGBA{R: 10, G: 20, B: 30, A: 255}
	if got := FromColor(c).Color(); got != c {
		t.Errorf("round trip = %v, want %v", got, c)
	}
}

func TestLerpEndpoints(t *testing.T) {
	if got := Red.Lerp(Blue, 0); !colorsClose(got, Red) {
		t.Errorf("Lerp(0) = %+v, want red", got)
	}
	if got := Red.Lerp(Blue, 1); !colorsClose(got, Blue) {
		t.Errorf("Lerp(1) = %+v, want blue", got)
	}
}

func colorsClose(a, b RGBA) bool {
	const tol = 1.0 / 255
	return math.Abs(a.R-b.R) <= tol && math.Abs(a.G-b.G) <= tol &&
		math.Abs(a.B-b.B) <= tol && math.Abs(a.A-b.A) <= tol
}

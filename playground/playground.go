// Package playground lays out the two pages of the shapes playground as
// data: each page holds the demo lines it evaluates, and each demo renders
// through the image path of its own page.
package playground

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/gogpu/ggplay"
	"github.com/gogpu/ggplay/compose"
	"github.com/gogpu/ggplay/hierarchy"
)

// ErrUnknownPage is returned by Lookup for a page name that does not exist.
var ErrUnknownPage = errors.New("playground: unknown page")

// Page names.
const (
	Original = "original"
	Finished = "finished"
)

// Drawable is what both pages' shapes have in common.
type Drawable interface {
	Draw(c ggplay.Canvas)
	BoundingBox() ggplay.Rect
}

// Demo is one demo line of a page.
type Demo struct {
	Name string
	// Source is the demo line as a reader would type it.
	Source string
	// Rotatable reports whether Angle has any effect.
	Rotatable bool
	// Angle is the rotation the page uses by default.
	Angle float64
	// Shape builds the demo's shape rotated by angle.
	Shape func(angle float64) Drawable
	// Image builds the shape and renders it the way its page does.
	Image func(angle float64, opts ...ggplay.RendererOption) *image.RGBA
}

// Page is one playground page.
type Page struct {
	Name  string
	Title string
	Demos []Demo
}

// Pages returns the original and the finished page, in that order.
func Pages() []Page {
	return []Page{originalPage(), finishedPage()}
}

// Lookup returns the page with the given name.
func Lookup(name string) (Page, error) {
	for _, p := range Pages() {
		if p.Name == name {
			return p, nil
		}
	}
	return Page{}, fmt.Errorf("%w: %q", ErrUnknownPage, name)
}

// Result is a rendered demo.
type Result struct {
	Page  string
	Demo  string
	Image *image.RGBA
}

// Render renders every demo of p at its default angle.
func Render(p Page, opts ...ggplay.RendererOption) []Result {
	log := ggplay.Logger()
	results := make([]Result, 0, len(p.Demos))
	for _, d := range p.Demos {
		log.Debug("playground: rendering demo", "page", p.Name, "demo", d.Name)
		results = append(results, Result{
			Page:  p.Name,
			Demo:  d.Name,
			Image: d.Image(d.Angle, opts...),
		})
	}
	return results
}

func originalPage() Page {
	rect := func(float64) *hierarchy.Rectangle {
		return hierarchy.NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
	}
	circle := func(float64) *hierarchy.Circle {
		return hierarchy.NewCircle(ggplay.Pt(0, 0), 100)
	}
	return Page{
		Name:  Original,
		Title: "Class hierarchy",
		Demos: []Demo{
			{
				Name:   "rectangle",
				Source: "NewRectangle(Pt(0, 0), Sz(100, 200)).Image()",
				Shape:  func(a float64) Drawable { return rect(a) },
				Image: func(a float64, opts ...ggplay.RendererOption) *image.RGBA {
					return rect(a).Image(opts...)
				},
			},
			{
				Name:   "circle",
				Source: "NewCircle(Pt(0, 0), 100).Image()",
				Shape:  func(a float64) Drawable { return circle(a) },
				Image: func(a float64, opts ...ggplay.RendererOption) *image.RGBA {
					return circle(a).Image(opts...)
				},
			},
		},
	}
}

func finishedPage() Page {
	demo := func(name, source string, angle float64, build func(float64) compose.Shape) Demo {
		return Demo{
			Name:      name,
			Source:    source,
			Rotatable: true,
			Angle:     angle,
			Shape:     func(a float64) Drawable { return build(a) },
			Image: func(a float64, opts ...ggplay.RendererOption) *image.RGBA {
				return compose.Image(build(a), opts...)
			},
		}
	}
	rect := compose.NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
	circle := compose.NewCircle(ggplay.Pt(0, 0), 100)
	return Page{
		Name:  Finished,
		Title: "Shape interface",
		Demos: []Demo{
			demo("rectangle", "NewRectangle(Pt(0, 0), Sz(100, 200)).Rotated(math.Pi / 6)", math.Pi/6,
				func(a float64) compose.Shape { return rect.Rotated(a) }),
			demo("circle", "NewCircle(Pt(0, 0), 100).Rotated(math.Pi)", math.Pi,
				func(a float64) compose.Shape { return circle.Rotated(a) }),
			demo("rectangle-in-place", "RotateAboutCenter(NewRectangle(Pt(0, 0), Sz(100, 200)), math.Pi / 6)", math.Pi/6,
				func(a float64) compose.Shape { return compose.RotateAboutCenter(rect, a) }),
		},
	}
}

// Package ggplay provides the drawing collaborator shared by the two shape
// playground pages.
//
// # Overview
//
// ggplay contrasts two ways of modeling drawable 2D shapes. The pages live in
// sub-packages; this package supplies what both treat as a black box:
// geometry primitives, colors, a drawing surface and an image renderer.
//
//	import "github.com/gogpu/ggplay"
//
//	r := ggplay.NewImageRenderer(ggplay.R(-100, -100, 200, 200))
//	img := r.Image(func(c ggplay.Canvas) {
//		c.SetFillColor(ggplay.Green)
//		c.FillEllipse(ggplay.R(-100, -100, 200, 200))
//	})
//
// # Pages
//
//   - hierarchy: an abstract base shape with Rectangle and Circle leaves
//   - compose: a Shape interface with Rectangle, Circle and a Transformed
//     decorator that adds rotation without subclassing
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left of the rendered bounds
//   - X increases right
//   - Y increases down
//   - Angles in radians, rotation about the coordinate origin
package ggplay

// Version information
const (
	// Version is the current version of the playground
	Version = "0.1.0"
)

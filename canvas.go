package ggplay

// Canvas is the drawing surface a shape draws against.
//
// It keeps a current transform and fill color. Push and Pop save and restore
// both; Transform concatenates onto the current transform so that the given
// matrix is applied to shape coordinates first.
type Canvas interface {
	Push()
	Pop()
	Transform(m Matrix)
	SetFillColor(c RGBA)
	FillRect(r Rect)
	FillEllipse(in Rect)
}

// Scoped pushes the canvas state, runs fn and pops the state again on every
// exit path of fn, including a panic.
func Scoped(c Canvas, fn func() error) error {
	c.Push()
	defer c.Pop()
	return fn()
}

package hierarchy

import (
	"errors"
	"testing"

	"github.com/gogpu/ggplay"
	"github.com/gogpu/ggplay/recording"
)

func TestRectangleBoundingBox(t *testing.T) {
	r := NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
	if got, want := r.BoundingBox(), ggplay.R(0, 0, 100, 200); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}

	r = NewRectangle(ggplay.Pt(-3, 7), ggplay.Sz(4, 5))
	if got, want := r.BoundingBox(), ggplay.RectFrom(r.Origin, r.Size); got != want {
		t.Errorf("BoundingBox() = %v, want %v", got, want)
	}
}

func TestCircleBoundingBox(t *testing.T) {
	tests := []struct {
		center ggplay.Point
		radius float64
		want   ggplay.Rect
	}{
		{ggplay.Pt(0, 0), 100, ggplay.R(-100, -100, 200, 200)},
		{ggplay.Pt(10, 20), 5, ggplay.R(5, 15, 10, 10)},
		{ggplay.Pt(1, 1), 0, ggplay.R(1, 1, 0, 0)},
	}
	for _, tt := range tests {
		if got := NewCircle(tt.center, tt.radius).BoundingBox(); got != tt.want {
			t.Errorf("Circle(%v, %g).BoundingBox() = %v, want %v", tt.center, tt.radius, got, tt.want)
		}
	}
}

func TestDefaultColors(t *testing.T) {
	if c := NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(1, 1)).Color; c != ggplay.Red {
		t.Errorf("rectangle color = %+v, want red", c)
	}
	if c := NewCircle(ggplay.Pt(0, 0), 1).Color; c != ggplay.Green {
		t.Errorf("circle color = %+v, want green", c)
	}
}

func TestDrawCommands(t *testing.T) {
	rect := NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200))
	got := recording.Record(rect.Draw).Commands()
	want := []recording.Command{
		recording.SetFillColorCommand{Color: ggplay.Red},
		recording.FillRectCommand{Rect: ggplay.R(0, 0, 100, 200)},
	}
	assertCommands(t, got, want)

	circle := NewCircle(ggplay.Pt(0, 0), 100)
	got = recording.Record(circle.Draw).Commands()
	want = []recording.Command{
		recording.SetFillColorCommand{Color: ggplay.Green},
		recording.FillEllipseCommand{Rect: ggplay.R(-100, -100, 200, 200)},
	}
	assertCommands(t, got, want)
}

func TestImageDispatchesToLeaf(t *testing.T) {
	img := NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(100, 200)).Image()
	if b := img.Bounds(); b.Dx() != 100 || b.Dy() != 200 {
		t.Fatalf("rectangle image size = %dx%d, want 100x200", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(50, 100)); px != ggplay.Red {
		t.Errorf("rectangle pixel = %+v, want red", px)
	}

	img = NewCircle(ggplay.Pt(0, 0), 100).Image()
	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 200 {
		t.Fatalf("circle image size = %dx%d, want 200x200", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(100, 100)); px != ggplay.Green {
		t.Errorf("circle center pixel = %+v, want green", px)
	}
	if px := ggplay.FromColor(img.At(2, 2)); px.A != 0 {
		t.Errorf("circle corner pixel = %+v, want transparent", px)
	}
}

func TestBaseShapeAborts(t *testing.T) {
	tests := []struct {
		name string
		call func(s *Shape)
	}{
		{"Draw", func(s *Shape) { s.Draw(recording.NewRecorder()) }},
		{"BoundingBox", func(s *Shape) { _ = s.BoundingBox() }},
		{"Image", func(s *Shape) { _ = s.Image() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catchAbort(func() { tt.call(new(Shape)) })
			if !errors.Is(err, ErrAbstract) {
				t.Errorf("%s on base Shape: recovered %v, want ErrAbstract", tt.name, err)
			}
		})
	}
}

func TestCopiedLeafRendersItsOwnFields(t *testing.T) {
	orig := NewRectangle(ggplay.Pt(0, 0), ggplay.Sz(10, 10))
	r := *orig
	r.Color = ggplay.Blue
	r.Size = ggplay.Sz(30, 30)

	img := r.Image()
	if b := img.Bounds(); b.Dx() != 30 || b.Dy() != 30 {
		t.Fatalf("copied rectangle image size = %dx%d, want 30x30", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(20, 20)); px != ggplay.Blue {
		t.Errorf("copied rectangle pixel = %+v, want blue", px)
	}

	img = orig.Image()
	if b := img.Bounds(); b.Dx() != 10 || b.Dy() != 10 {
		t.Fatalf("original rectangle image size = %dx%d, want 10x10", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(5, 5)); px != ggplay.Red {
		t.Errorf("original rectangle pixel = %+v, want red", px)
	}

	c := *NewCircle(ggplay.Pt(0, 0), 10)
	c.Color = ggplay.Blue
	c.Radius = 20
	img = c.Image()
	if b := img.Bounds(); b.Dx() != 40 || b.Dy() != 40 {
		t.Fatalf("copied circle image size = %dx%d, want 40x40", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(20, 20)); px != ggplay.Blue {
		t.Errorf("copied circle center pixel = %+v, want blue", px)
	}
}

func TestLeafLiteralBindsOnImage(t *testing.T) {
	r := &Rectangle{Origin: ggplay.Pt(0, 0), Size: ggplay.Sz(4, 2), Color: ggplay.Green}
	img := r.Image()
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 2 {
		t.Fatalf("image size = %dx%d, want 4x2", b.Dx(), b.Dy())
	}
	if px := ggplay.FromColor(img.At(1, 1)); px != ggplay.Green {
		t.Errorf("pixel = %+v, want green", px)
	}
}

// catchAbort runs fn and returns the error it panicked with, or nil if it
// returned normally.
func catchAbort(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err, _ = r.(error)
		}
	}()
	fn()
	return nil
}

func assertCommands(t *testing.T, got, want []recording.Command) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d commands %v, want %d %v", len(got), got, len(want), want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("command %d = %v, want %v", i, got[i], want[i])
		}
	}
}

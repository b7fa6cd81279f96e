// Command ggplayview shows the shapes playground in a window.
//
// Keys:
//
//	Tab          next page
//	Left, Right  rotate the shapes of the finished page
//	Space        reset the rotation
//	Q, Escape    quit
//
// Below each shape the viewer prints the canvas calls its Draw makes.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/spf13/pflag"

	"github.com/gogpu/ggplay"
	"github.com/gogpu/ggplay/internal/config"
	"github.com/gogpu/ggplay/playground"
	"github.com/gogpu/ggplay/recording"
)

const (
	screenWidth  = 960
	screenHeight = 640
	margin       = 16
	headerHeight = 56
	rotateStep   = math.Pi / 180
)

var (
	background = ggplay.HSL(220, 0.15, 0.92)
	accent     = ggplay.HSL(35, 0.9, 0.6)

	// Rotatable demos sit on a warmer backdrop than fixed ones.
	fixedBackdrop     = background.Lerp(ggplay.White, 0.5)
	rotatableBackdrop = background.Lerp(accent, 0.25)
)

type panel struct {
	demo     playground.Demo
	image    *ebiten.Image
	commands string
}

type viewer struct {
	pages  []playground.Page
	page   int
	delta  float64
	opts   []ggplay.RendererOption
	panels []panel
	dirty  bool
	log    *slog.Logger
}

func newViewer(opts []ggplay.RendererOption, log *slog.Logger) *viewer {
	return &viewer{
		pages: playground.Pages(),
		opts:  opts,
		dirty: true,
		log:   log,
	}
}

func (v *viewer) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		return ebiten.Termination
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		v.page = (v.page + 1) % len(v.pages)
		v.dirty = true
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		v.delta = 0
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		v.delta -= rotateStep
		v.dirty = true
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		v.delta += rotateStep
		v.dirty = true
	}
	if v.dirty {
		v.rebuild()
		v.dirty = false
	}
	return nil
}

// rebuild renders the current page's demos at the current rotation.
func (v *viewer) rebuild() {
	for _, p := range v.panels {
		if p.image != nil {
			p.image.Deallocate()
		}
	}
	page := v.pages[v.page]
	v.panels = v.panels[:0]
	for _, d := range page.Demos {
		angle := d.Angle
		if d.Rotatable {
			angle += v.delta
		}
		rgba := d.Image(angle, v.opts...)
		p := panel{
			demo:     d,
			commands: recording.Record(d.Shape(angle).Draw).String(),
		}
		if !rgba.Bounds().Empty() {
			p.image = ebiten.NewImageFromImage(rgba)
		}
		v.panels = append(v.panels, p)
	}
	v.log.Debug("rebuilt page", "page", page.Name, "delta", v.delta)
}

func (v *viewer) Draw(screen *ebiten.Image) {
	screen.Fill(background.Color())

	page := v.pages[v.page]
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s (%s)  rotation %+.0f deg  [Tab] page  [Left/Right] rotate  [Space] reset",
		page.Title, page.Name, v.delta*180/math.Pi), margin, margin)

	if len(v.panels) == 0 {
		return
	}
	colWidth := (screenWidth - margin) / len(v.panels)
	for i, p := range v.panels {
		x := margin + i*colWidth
		backdrop := fixedBackdrop
		if p.demo.Rotatable {
			backdrop = rotatableBackdrop
		}
		vector.DrawFilledRect(screen, float32(x), headerHeight, float32(colWidth-margin), screenHeight-headerHeight-margin, backdrop.Color(), false)
		ebitenutil.DebugPrintAt(screen, p.demo.Name, x, headerHeight-20)

		imgHeight := 0
		if p.image != nil {
			b := p.image.Bounds()
			fit := math.Min(1, float64(colWidth-margin)/float64(b.Dx()))
			fit = math.Min(fit, float64(screenHeight/2)/float64(b.Dy()))
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Scale(fit, fit)
			op.GeoM.Translate(float64(x), headerHeight)
			op.Filter = ebiten.FilterLinear
			screen.DrawImage(p.image, op)
			imgHeight = int(float64(b.Dy()) * fit)
		}
		ebitenutil.DebugPrintAt(screen, p.commands, x, headerHeight+imgHeight+margin)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	cfg, err := config.FromOS("ggplayview")
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	log := cfg.Logger(os.Stderr)
	ggplay.SetLogger(log)

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("ggplay: " + ggplay.Version)
	if err := ebiten.RunGame(newViewer(cfg.RendererOptions(), log)); err != nil {
		log.Error("viewer failed", "err", err)
		os.Exit(1)
	}
}

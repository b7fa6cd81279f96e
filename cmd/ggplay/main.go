// Command ggplay renders every demo of the shapes playground to image files.
//
// Usage:
//
//	ggplay [--out dir] [--format png|jpeg|bmp|tiff] [--scale n] [--page name]...
//
// Each demo is written to <out>/<page>-<demo>.<format>.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"

	"github.com/gogpu/ggplay"
	"github.com/gogpu/ggplay/internal/config"
	"github.com/gogpu/ggplay/playground"
)

func main() {
	cfg, err := config.FromOS("ggplay")
	if errors.Is(err, pflag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	log := cfg.Logger(os.Stderr)
	ggplay.SetLogger(log)

	if err := run(cfg, log); err != nil {
		log.Error("ggplay failed", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	pages, err := selectPages(cfg.Pages)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cfg.Out, 0o755); err != nil {
		return err
	}

	for _, p := range pages {
		for _, res := range playground.Render(p, cfg.RendererOptions()...) {
			path := filepath.Join(cfg.Out, fmt.Sprintf("%s-%s.%s", res.Page, res.Demo, cfg.Format))
			if err := ggplay.SaveImage(path, res.Image); err != nil {
				return fmt.Errorf("save %s/%s: %w", res.Page, res.Demo, err)
			}
			b := res.Image.Bounds()
			log.Info("wrote image", "path", path, "width", b.Dx(), "height", b.Dy())
		}
	}
	return nil
}

func selectPages(names []string) ([]playground.Page, error) {
	if len(names) == 0 {
		return playground.Pages(), nil
	}
	pages := make([]playground.Page, 0, len(names))
	for _, n := range names {
		p, err := playground.Lookup(n)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

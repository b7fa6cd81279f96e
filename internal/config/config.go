// Package config holds the settings shared by the ggplay commands.
//
// Every flag has an environment variable fallback; an explicit flag wins
// over the environment, which wins over the default.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/gogpu/ggplay"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// Environment variable names.
const (
	EnvOut        = "GGPLAY_OUT"
	EnvFormat     = "GGPLAY_FORMAT"
	EnvScale      = "GGPLAY_SCALE"
	EnvBackground = "GGPLAY_BACKGROUND"
	EnvDebug      = "GGPLAY_DEBUG"
)

// Config is the parsed and validated configuration.
type Config struct {
	// Out is the directory images are written to.
	Out string
	// Format is the image format to encode.
	Format ggplay.Format
	// Scale is the number of pixels per unit.
	Scale float64
	// Background fills each image before drawing. Transparent by default.
	Background ggplay.RGBA
	// Pages restricts rendering to the named pages. Empty means all.
	Pages []string
	// Debug enables debug logging.
	Debug bool
}

// RendererOptions returns the renderer options the configuration implies.
func (c *Config) RendererOptions() []ggplay.RendererOption {
	return []ggplay.RendererOption{
		ggplay.WithScale(c.Scale),
		ggplay.WithBackground(c.Background),
	}
}

// Logger returns a text logger writing to w, at debug level when Debug is
// set and info level otherwise.
func (c *Config) Logger(w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if c.Debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Parse parses args (without the program name). lookupEnv is usually
// os.LookupEnv. Usage and errors are written to output.
func Parse(name string, args []string, lookupEnv func(string) (string, bool), output io.Writer) (*Config, error) {
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.SetOutput(output)

	out := fs.StringP("out", "o", envString(lookupEnv, EnvOut, "."), "directory to write images to ($"+EnvOut+")")
	format := fs.StringP("format", "f", envString(lookupEnv, EnvFormat, "png"), "image format: "+strings.Join(ggplay.Formats(), ", ")+" ($"+EnvFormat+")")
	scale := fs.Float64P("scale", "s", 1, "pixels per unit ($"+EnvScale+")")
	background := fs.StringP("background", "b", envString(lookupEnv, EnvBackground, "transparent"), "CSS background color ($"+EnvBackground+")")
	pages := fs.StringSliceP("page", "p", nil, "page to render, repeatable: original, finished (default all)")
	debug := fs.BoolP("debug", "d", false, "print debug logs ($"+EnvDebug+")")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg := &Config{Out: *out, Pages: *pages, Debug: *debug, Scale: *scale}

	if !fs.Changed("scale") {
		if v, ok := lookupEnv(EnvScale); ok {
			s, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("%w: $%s: %w", ErrInvalid, EnvScale, err)
			}
			cfg.Scale = s
		}
	}
	if !fs.Changed("debug") {
		if v, ok := lookupEnv(EnvDebug); ok {
			d, err := strconv.ParseBool(v)
			if err != nil {
				return nil, fmt.Errorf("%w: $%s: %w", ErrInvalid, EnvDebug, err)
			}
			cfg.Debug = d
		}
	}

	f, err := ggplay.ParseFormat(*format)
	if err != nil {
		return nil, fmt.Errorf("%w: format: %w", ErrInvalid, err)
	}
	cfg.Format = f

	bg, err := ggplay.ParseColor(*background)
	if err != nil {
		return nil, fmt.Errorf("%w: background: %w", ErrInvalid, err)
	}
	cfg.Background = bg

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FromOS parses the process arguments and environment.
func FromOS(name string) (*Config, error) {
	return Parse(name, os.Args[1:], os.LookupEnv, os.Stderr)
}

// Validate checks the fields that parsing cannot.
func (c *Config) Validate() error {
	if !(c.Scale > 0) || c.Scale > 64 {
		return fmt.Errorf("%w: scale %g is outside (0, 64]", ErrInvalid, c.Scale)
	}
	if c.Out == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalid)
	}
	return nil
}

func envString(lookupEnv func(string) (string, bool), key, def string) string {
	if v, ok := lookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// Package config loads the optional quadview TOML file.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	toml "github.com/pelletier/go-toml/v2"

	"quadview/internal/render"
)

type Colors struct {
	Background string  `toml:"background"`
	Stroke     string  `toml:"stroke"`
	Fill       string  `toml:"fill"`
	FillAlpha  float64 `toml:"fill_alpha"`
	Accent     string  `toml:"accent"`
	Text       string  `toml:"text"`
}

// Config mirrors the file layout. Keys left out of the file keep their
// Default values.
type Config struct {
	Labels    string  `toml:"labels"`
	Angles    string  `toml:"angles"`
	Unit      string  `toml:"unit"`
	UnitScale float64 `toml:"unit_scale"`
	OriginX   float64 `toml:"origin_x"`
	Width     int     `toml:"width"`
	Height    int     `toml:"height"`
	Colors    Colors  `toml:"colors"`
}

func Default() Config {
	return Config{
		Labels:    render.LabelsConverted.String(),
		Angles:    render.AnglesIllustrative.String(),
		Unit:      render.DefaultUnit,
		UnitScale: 10,
		OriginX:   render.DefaultOriginX,
		Width:     480,
		Height:    300,
		Colors: Colors{
			Background: "#0b0f14",
			Stroke:     "#ffffff",
			Fill:       "#4f46e5",
			FillAlpha:  0.06,
			Accent:     "#00ffff",
			Text:       "#ffffff",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		var de *toml.DecodeError
		if errors.As(err, &de) {
			row, col := de.Position()
			return Config{}, fmt.Errorf("parse config %s:%d:%d: %w", path, row, col, err)
		}
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := render.ParseLabelStyle(c.Labels); err != nil {
		return err
	}
	if _, err := render.ParseAngleMode(c.Angles); err != nil {
		return err
	}
	if c.UnitScale <= 0 {
		return fmt.Errorf("unit_scale must be positive, got %v", c.UnitScale)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Colors.FillAlpha < 0 || c.Colors.FillAlpha > 1 {
		return fmt.Errorf("colors.fill_alpha must be within [0, 1], got %v", c.Colors.FillAlpha)
	}
	for _, col := range []struct{ name, value string }{
		{"background", c.Colors.Background},
		{"stroke", c.Colors.Stroke},
		{"fill", c.Colors.Fill},
		{"accent", c.Colors.Accent},
		{"text", c.Colors.Text},
	} {
		if _, err := colorful.Hex(col.value); err != nil {
			return fmt.Errorf("colors.%s: %w", col.name, err)
		}
	}
	return nil
}

// Background is the surface clear color.
func (c Config) Background() color.Color {
	return parseColor(c.Colors.Background, 1)
}

// RenderOptions maps the file onto renderer options. Call Validate first;
// invalid values fall back to the defaults.
func (c Config) RenderOptions() render.Options {
	labels, _ := render.ParseLabelStyle(c.Labels)
	angles, _ := render.ParseAngleMode(c.Angles)
	return render.Options{
		Labels:    labels,
		Angles:    angles,
		Unit:      c.Unit,
		UnitScale: c.UnitScale,
		OriginX:   c.OriginX,
		Palette: render.Palette{
			Stroke: parseColor(c.Colors.Stroke, 1),
			Fill:   parseColor(c.Colors.Fill, c.Colors.FillAlpha),
			Accent: parseColor(c.Colors.Accent, 1),
			Text:   parseColor(c.Colors.Text, 1),
		},
	}
}

// parseColor returns nil for unparsable input so render defaults apply.
func parseColor(hex string, alpha float64) color.Color {
	c, err := colorful.Hex(hex)
	if err != nil {
		return nil
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(alpha*255 + 0.5)}
}

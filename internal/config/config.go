// seehuhn.de/go/framebuffer - polygon rasterization into bitmap images
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config reads the scene description used by the polybmp command.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/framebuffer"
	"seehuhn.de/go/framebuffer/rgb"
)

// Output formats.
const (
	FormatBMP  = "bmp"  // 24-bit bitmap, channels from 0x00RRGGBB
	FormatRGBA = "rgba" // generic bitmap encoder, channels from 0xRRGGBBAA
)

// Config describes what to draw and where to write the result.
type Config struct {
	Width      int            `json:"width" toml:"width"`
	Height     int            `json:"height" toml:"height"`
	Background string         `json:"background" toml:"background"`
	Color      string         `json:"color" toml:"color"`
	Polygons   [][][2]float64 `json:"polygons" toml:"polygons"`
	Output     string         `json:"output" toml:"output"`
	Format     string         `json:"format" toml:"format"`
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	Output string
	Width  int
	Height int
	Format string
}

// Default returns the configuration used when no file is given:
// a white triangle on black in an 800x600 image.
func Default() Config {
	return Config{
		Width:      800,
		Height:     600,
		Background: "#000000",
		Color:      "#ffffff",
		Polygons: [][][2]float64{
			{{100, 100}, {400, 100}, {250, 300}},
		},
		Output: "output.bmp",
		Format: FormatBMP,
	}
}

// Load reads a config file. Files ending in .toml are parsed as TOML,
// all others as JSON. Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		err = json.Unmarshal(data, &cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies the CLI flags and fills in defaults for all fields
// which are still empty. Flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	if flags.Output != "" {
		c.Output = flags.Output
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Format != "" {
		c.Format = flags.Format
	}

	def := Default()
	if c.Width == 0 {
		c.Width = def.Width
	}
	if c.Height == 0 {
		c.Height = def.Height
	}
	if c.Background == "" {
		c.Background = def.Background
	}
	if c.Color == "" {
		c.Color = def.Color
	}
	if c.Polygons == nil {
		c.Polygons = def.Polygons
	}
	if c.Output == "" {
		c.Output = def.Output
	}
	if c.Format == "" {
		c.Format = def.Format
	}
}

// Validate checks that the configuration can be rendered.
func (c *Config) Validate() error {
	var errs []error
	if c.Width <= 0 || c.Height <= 0 {
		errs = append(errs, fmt.Errorf("config: invalid size %dx%d", c.Width, c.Height))
	}
	if c.Format != FormatBMP && c.Format != FormatRGBA {
		errs = append(errs, fmt.Errorf("config: unknown format %q", c.Format))
	}
	if _, err := rgb.Parse(c.Background); err != nil {
		errs = append(errs, fmt.Errorf("config: background: %w", err))
	}
	if _, err := rgb.Parse(c.Color); err != nil {
		errs = append(errs, fmt.Errorf("config: color: %w", err))
	}
	return errors.Join(errs...)
}

// Scene is a validated configuration, converted to the types used for
// drawing.
type Scene struct {
	Width, Height int
	Background    framebuffer.DrawColor
	Color         framebuffer.DrawColor
	Polygons      [][]vec.Vec2
}

// Scene validates the configuration and converts it for drawing.
func (c *Config) Scene() (*Scene, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	bg, _ := rgb.Parse(c.Background)
	fg, _ := rgb.Parse(c.Color)

	s := &Scene{
		Width:      c.Width,
		Height:     c.Height,
		Background: bg.DrawColor(),
		Color:      fg.DrawColor(),
	}
	for _, poly := range c.Polygons {
		vv := make([]vec.Vec2, len(poly))
		for i, p := range poly {
			vv[i] = vec.Vec2{X: p[0], Y: p[1]}
		}
		s.Polygons = append(s.Polygons, vv)
	}
	return s, nil
}

// Render draws the scene into a new buffer.
func (s *Scene) Render() *framebuffer.Buffer {
	b := framebuffer.New(s.Width, s.Height)
	b.SetBackground(s.Background)
	b.Clear()
	b.SetDrawColor(s.Color)

	r := framebuffer.NewRasterizer()
	for _, poly := range s.Polygons {
		r.Polygon(b, poly)
	}
	return b
}

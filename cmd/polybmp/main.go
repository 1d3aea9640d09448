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

// Command polybmp draws filled polygons and saves the result as a bitmap.
//
// Without a config file it draws a white triangle on black into an
// 800x600 image and writes output.bmp.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"seehuhn.de/go/framebuffer"
	"seehuhn.de/go/framebuffer/bmp"
	"seehuhn.de/go/framebuffer/internal/config"
)

func main() {
	configFile := flag.String("config", "", "Path to a JSON or TOML scene file")
	output := flag.String("o", "", "Output file (default: output.bmp)")
	width := flag.Int("width", 0, "Image width in pixels (default: 800)")
	height := flag.Int("height", 0, "Image height in pixels (default: 600)")
	format := flag.String("format", "", "Output format: bmp or rgba (default: bmp)")
	verbose := flag.Bool("v", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	framebuffer.SetLogger(logger)

	var cfg config.Config
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Resolve(config.Flags{
		Output: *output,
		Width:  *width,
		Height: *height,
		Format: *format,
	})

	scene, err := cfg.Scene()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for i, poly := range scene.Polygons {
		if len(poly) < 3 {
			logger.Warn("polygon needs at least three vertices", "index", i, "vertices", len(poly))
		}
	}
	buf := scene.Render()

	if err := save(cfg.Output, cfg.Format, buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving %s: %v\n", cfg.Output, err)
		os.Exit(1)
	}
	fmt.Printf("polygon drawn and saved to %s\n", cfg.Output)
}

func save(name, format string, buf *framebuffer.Buffer) error {
	if format == config.FormatRGBA {
		return bmp.WriteFileRGBA(name, buf)
	}
	return bmp.WriteFile(name, buf)
}

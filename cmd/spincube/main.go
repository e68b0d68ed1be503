// Copyright 2026 go-vmath Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command spincube renders a rotating cube to a sequence of WebP
// frames using the vmath camera builders and the software rasterizer.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"

	"github.com/gomath3d/go-vmath/internal/raster"
	"github.com/gomath3d/go-vmath/internal/scene"
	"github.com/gomath3d/go-vmath/vmath"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = embedded defaults)")
	outDir := flag.String("out", "", "Output directory (overrides config)")
	frames := flag.Int("frames", 0, "Frame count (overrides config)")
	wireframe := flag.Bool("wireframe", false, "Draw edges instead of filled faces")
	flag.Parse()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if *outDir != "" {
		cfg.Output.Dir = *outDir
	}
	if *frames > 0 {
		cfg.Animation.Frames = *frames
	}
	if *wireframe {
		cfg.Output.Wireframe = true
	}

	if err := run(cfg); err != nil {
		slog.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(cfg *Config) error {
	if err := os.MkdirAll(cfg.Output.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	bg, err := parseHexColor(cfg.Render.Background)
	if err != nil {
		return err
	}

	ss := cfg.Render.Supersample
	rw, rh := cfg.Render.Width*ss, cfg.Render.Height*ss
	fb := raster.NewFrameBuffer(rw, rh)

	proj := vmath.Perspective(
		vmath.DegToRad(cfg.Camera.FovDeg),
		float64(cfg.Render.Width)/float64(cfg.Render.Height),
		cfg.Camera.ZNear,
		cfg.Camera.ZFar,
	)
	view := vmath.LookAt(
		vmath.V3(0.0, cfg.Camera.Height, cfg.Camera.Distance),
		vmath.V3(0.0, 0.0, 0.0),
		vmath.V3(0.0, 1.0, 0.0),
	)
	viewProj := proj.Mul(view)
	lightDir := vmath.V3(0.4, 0.8, 0.5).Normalize()

	slog.Info("rendering",
		"frames", cfg.Animation.Frames,
		"size", fmt.Sprintf("%dx%d", cfg.Render.Width, cfg.Render.Height),
		"supersample", ss,
		"wireframe", cfg.Output.Wireframe)

	start := time.Now()
	for i := 0; i < cfg.Animation.Frames; i++ {
		angle := 2 * math.Pi * cfg.Animation.Turns * float64(i) / float64(cfg.Animation.Frames)
		model := vmath.Mat4RotationY(angle).RotateX(angle * 0.5)

		fb.Clear(bg)
		scene.RenderCube(fb, model, viewProj, lightDir, cfg.Output.Wireframe)

		img := fb.Image()
		if ss > 1 {
			img = raster.Downsample(img, cfg.Render.Width, cfg.Render.Height)
		}

		path := filepath.Join(cfg.Output.Dir, fmt.Sprintf("frame_%03d.webp", i))
		if err := writeWebP(path, img); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}

	slog.Info("done",
		"frames", cfg.Animation.Frames,
		"elapsed", time.Since(start).Round(time.Millisecond).String(),
		"dir", cfg.Output.Dir)
	return nil
}

func writeWebP(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("encoding webp: %w", err)
	}
	return f.Close()
}

// parseHexColor parses "#rrggbb" into an opaque NRGBA.
func parseHexColor(s string) (color.NRGBA, error) {
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b); err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid background color %q: %w", s, err)
	}
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}, nil
}

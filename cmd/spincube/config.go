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

package main

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all render settings for a spincube run.
type Config struct {
	Render    RenderConfig    `yaml:"render"`
	Camera    CameraConfig    `yaml:"camera"`
	Animation AnimationConfig `yaml:"animation"`
	Output    OutputConfig    `yaml:"output"`
}

// RenderConfig holds framebuffer dimensions and quality settings.
type RenderConfig struct {
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	Supersample int    `yaml:"supersample"` // render at N times the size, then downsample
	Background  string `yaml:"background"`  // hex color, e.g. "#1a1a2e"
}

// CameraConfig positions the orbiting camera.
type CameraConfig struct {
	FovDeg   float64 `yaml:"fov_deg"`
	Distance float64 `yaml:"distance"`
	Height   float64 `yaml:"height"`
	ZNear    float64 `yaml:"z_near"`
	ZFar     float64 `yaml:"z_far"`
}

// AnimationConfig controls frame count and rotation span.
type AnimationConfig struct {
	Frames int     `yaml:"frames"`
	Turns  float64 `yaml:"turns"` // full revolutions over the animation
}

// OutputConfig selects the destination and draw mode.
type OutputConfig struct {
	Dir       string `yaml:"dir"`
	Wireframe bool   `yaml:"wireframe"`
}

// LoadConfig starts from the embedded defaults and, when path is not
// empty, overlays the fields present in that file.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Render.Width <= 0 || c.Render.Height <= 0 {
		return fmt.Errorf("render size must be positive, got %dx%d", c.Render.Width, c.Render.Height)
	}
	if c.Render.Supersample < 1 {
		return fmt.Errorf("supersample must be at least 1, got %d", c.Render.Supersample)
	}
	if c.Animation.Frames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", c.Animation.Frames)
	}
	if c.Camera.ZNear <= 0 {
		return fmt.Errorf("z_near must be positive, got %v", c.Camera.ZNear)
	}
	if _, err := parseHexColor(c.Render.Background); err != nil {
		return err
	}
	return nil
}

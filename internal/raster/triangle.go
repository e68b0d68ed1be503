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

package raster

import (
	"image/color"
	"math"

	"github.com/gomath3d/go-vmath/vmath"
)

// Shade returns a flat-shading factor for a face normal lit by
// lightDir: a fixed ambient term plus a double-sided Lambertian term.
func Shade(normal, lightDir vmath.Vec3d) float64 {
	const (
		ambient = 0.25
		diffuse = 0.75
	)
	n := normal.Normalize()
	return ambient + diffuse*math.Abs(n.Dot(lightDir))
}

// Scale multiplies the RGB channels of c by s, clamping to 255.
func Scale(c color.NRGBA, s float64) color.NRGBA {
	return color.NRGBA{
		R: clamp8(float64(c.R) * s),
		G: clamp8(float64(c.G) * s),
		B: clamp8(float64(c.B) * s),
		A: c.A,
	}
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}

// FillTriangle rasterizes a depth-tested triangle in a single color.
// Vertices are screen-space points from Project. Pixels are tested
// with edge functions; depth interpolates barycentrically.
func FillTriangle(fb *FrameBuffer, p0, p1, p2 ScreenPoint, c color.NRGBA) {
	minX := int(math.Floor(min3(p0.X, p1.X, p2.X)))
	maxX := int(math.Ceil(max3(p0.X, p1.X, p2.X)))
	minY := int(math.Floor(min3(p0.Y, p1.Y, p2.Y)))
	maxY := int(math.Ceil(max3(p0.Y, p1.Y, p2.Y)))
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}

	area := edge(p0, p1, p2.X, p2.Y)
	if math.Abs(area) < 1e-12 {
		return
	}
	invArea := 1 / area

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			px, py := float64(x)+0.5, float64(y)+0.5
			w0 := edge(p1, p2, px, py) * invArea
			w1 := edge(p2, p0, px, py) * invArea
			w2 := edge(p0, p1, px, py) * invArea
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}
			depth := w0*p0.Depth + w1*p1.Depth + w2*p2.Depth
			fb.Set(x, y, depth, c)
		}
	}
}

// edge is the signed area of the triangle (a, b, (x, y)), doubled.
// Its sign tells which side of ab the point lies on.
func edge(a, b ScreenPoint, x, y float64) float64 {
	return (b.X-a.X)*(y-a.Y) - (b.Y-a.Y)*(x-a.X)
}

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

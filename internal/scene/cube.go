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

// Package scene holds the geometry and render pass shared by the demo
// programs: a unit cube pushed through a model-view-projection matrix
// into the software rasterizer.
package scene

import (
	"image/color"

	"github.com/gomath3d/go-vmath/internal/raster"
	"github.com/gomath3d/go-vmath/vmath"
)

// CubeVertices are the corners of a cube with side 2 centered on the
// origin. Bit i of the index selects the sign of axis i.
var CubeVertices = [8]vmath.Vec3d{
	{-1, -1, -1},
	{1, -1, -1},
	{-1, 1, -1},
	{1, 1, -1},
	{-1, -1, 1},
	{1, -1, 1},
	{-1, 1, 1},
	{1, 1, 1},
}

// CubeEdges lists the 12 edges as vertex-index pairs.
var CubeEdges = [12][2]int{
	{0, 1}, {1, 3}, {3, 2}, {2, 0},
	{4, 5}, {5, 7}, {7, 6}, {6, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// Face is one quad of the cube split into two triangles.
type Face struct {
	Tris   [2][3]int
	Normal vmath.Vec3d
	Color  color.NRGBA
}

// CubeFaces are the six faces with outward normals and per-face colors.
var CubeFaces = [6]Face{
	{Tris: [2][3]int{{0, 2, 3}, {0, 3, 1}}, Normal: vmath.V3(0.0, 0, -1), Color: color.NRGBA{R: 0xe5, G: 0x3e, B: 0x3e, A: 0xff}},
	{Tris: [2][3]int{{4, 5, 7}, {4, 7, 6}}, Normal: vmath.V3(0.0, 0, 1), Color: color.NRGBA{R: 0x38, G: 0xa1, B: 0x69, A: 0xff}},
	{Tris: [2][3]int{{0, 4, 6}, {0, 6, 2}}, Normal: vmath.V3(-1.0, 0, 0), Color: color.NRGBA{R: 0x31, G: 0x82, B: 0xce, A: 0xff}},
	{Tris: [2][3]int{{1, 3, 7}, {1, 7, 5}}, Normal: vmath.V3(1.0, 0, 0), Color: color.NRGBA{R: 0xd6, G: 0x9e, B: 0x2e, A: 0xff}},
	{Tris: [2][3]int{{0, 1, 5}, {0, 5, 4}}, Normal: vmath.V3(0.0, -1, 0), Color: color.NRGBA{R: 0x80, G: 0x5a, B: 0xd5, A: 0xff}},
	{Tris: [2][3]int{{2, 6, 7}, {2, 7, 3}}, Normal: vmath.V3(0.0, 1, 0), Color: color.NRGBA{R: 0xdd, G: 0x6b, B: 0x20, A: 0xff}},
}

// RenderCube draws the cube into fb through the given model and
// view-projection matrices. Faces are flat-shaded against lightDir;
// when wireframe is set, edges are drawn instead of filled faces.
func RenderCube(fb *raster.FrameBuffer, model, viewProj vmath.Mat4d, lightDir vmath.Vec3d, wireframe bool) {
	mvp := viewProj.Mul(model)

	var pts [8]raster.ScreenPoint
	var vis [8]bool
	for i, v := range CubeVertices {
		pts[i], vis[i] = raster.Project(v, mvp, fb.Width, fb.Height)
	}

	if wireframe {
		white := color.NRGBA{R: 0xf0, G: 0xf0, B: 0xf0, A: 0xff}
		for _, e := range CubeEdges {
			if vis[e[0]] && vis[e[1]] {
				raster.DrawLine(fb, pts[e[0]], pts[e[1]], white)
			}
		}
		return
	}

	for _, f := range CubeFaces {
		n := f.Normal.TransformMat4Upper3x3(model)
		c := raster.Scale(f.Color, raster.Shade(n, lightDir))
		for _, tri := range f.Tris {
			if vis[tri[0]] && vis[tri[1]] && vis[tri[2]] {
				raster.FillTriangle(fb, pts[tri[0]], pts[tri[1]], pts[tri[2]], c)
			}
		}
	}
}

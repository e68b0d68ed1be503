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
)

// DrawLine draws a depth-tested line between two projected points
// using DDA stepping with linearly interpolated depth.
func DrawLine(fb *FrameBuffer, a, b ScreenPoint, c color.NRGBA) {
	dx, dy := b.X-a.X, b.Y-a.Y
	steps := int(math.Max(math.Abs(dx), math.Abs(dy)))
	if steps == 0 {
		fb.Set(int(a.X), int(a.Y), a.Depth, c)
		return
	}
	inv := 1 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		x := a.X + dx*t
		y := a.Y + dy*t
		depth := a.Depth + (b.Depth-a.Depth)*t
		// Small bias keeps edges visible on top of coplanar fills.
		fb.Set(int(x), int(y), depth-1e-4, c)
	}
}

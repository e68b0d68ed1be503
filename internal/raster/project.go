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
	"github.com/gomath3d/go-vmath/vmath"
)

// ScreenPoint is a projected vertex: pixel coordinates plus the
// depth used for z-testing.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// Project transforms a world-space point by mvp and maps the result
// to pixel coordinates for a w-by-h target. ok is false when the
// point lies behind the camera or outside the 0..1 depth range.
func Project(p vmath.Vec3d, mvp vmath.Mat4d, w, h int) (ScreenPoint, bool) {
	clip := vmath.V4(p[0], p[1], p[2], 1.0).TransformMat4(mvp)
	if clip[3] <= 0 {
		return ScreenPoint{}, false
	}
	inv := 1 / clip[3]
	ndcX, ndcY, depth := clip[0]*inv, clip[1]*inv, clip[2]*inv
	if depth < 0 || depth > 1 {
		return ScreenPoint{}, false
	}
	return ScreenPoint{
		X:     (ndcX + 1) * 0.5 * float64(w),
		Y:     (1 - ndcY) * 0.5 * float64(h),
		Depth: depth,
	}, true
}

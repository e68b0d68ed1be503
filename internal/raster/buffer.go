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

// Package raster is a small software rasterizer used by the demo
// programs. It draws depth-tested flat-shaded triangles and lines into
// a framebuffer that converts to an image.NRGBA.
package raster

import (
	"image"
	"image/color"
	"math"
)

// FrameBuffer is the render target, stored as flat slices.
// Depth follows the 0-to-1 convention of projected clip space, so
// smaller values are closer and the buffer clears to +inf.
type FrameBuffer struct {
	Width  int
	Height int
	Pix    []uint8   // RGBA interleaved, len = W*H*4
	Depth  []float64 // len = W*H
}

// NewFrameBuffer allocates a transparent framebuffer with a cleared
// depth buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Pix:    make([]uint8, w*h*4),
		Depth:  make([]float64, w*h),
	}
	fb.clearDepth()
	return fb
}

// Clear fills the color buffer with c and resets the depth buffer.
func (fb *FrameBuffer) Clear(c color.NRGBA) {
	for i := 0; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = c.R
		fb.Pix[i+1] = c.G
		fb.Pix[i+2] = c.B
		fb.Pix[i+3] = c.A
	}
	fb.clearDepth()
}

func (fb *FrameBuffer) clearDepth() {
	inf := math.Inf(1)
	for i := range fb.Depth {
		fb.Depth[i] = inf
	}
}

// Set writes a pixel if it passes the depth test.
func (fb *FrameBuffer) Set(x, y int, depth float64, c color.NRGBA) {
	if x < 0 || x >= fb.Width || y < 0 || y >= fb.Height {
		return
	}
	i := y*fb.Width + x
	if depth >= fb.Depth[i] {
		return
	}
	fb.Depth[i] = depth
	j := i * 4
	fb.Pix[j] = c.R
	fb.Pix[j+1] = c.G
	fb.Pix[j+2] = c.B
	fb.Pix[j+3] = c.A
}

// Image copies the color buffer into a new image.NRGBA.
func (fb *FrameBuffer) Image() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	copy(img.Pix, fb.Pix)
	return img
}

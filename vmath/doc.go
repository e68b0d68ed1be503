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

// Package vmath implements vector, matrix and quaternion math for 3D/2D
// graphics: cameras, transforms and projections.
//
// All entities are fixed-size array types generic over their element type:
//
//	v := vmath.V3[float32](1, 2, 3)
//	m := vmath.Perspective(vmath.DegToRad[float32](60), 16.0/9, 0.1, 100)
//	p := v.TransformMat4(m)
//
// # Value and destination forms
//
// Every operation that produces an entity comes in two forms. The value form
// returns a fresh result:
//
//	c := a.Add(b)
//
// The destination form writes into a caller-supplied entity and returns the
// same pointer, for callers reusing storage in hot loops:
//
//	a.AddInto(b, &c)
//
// Destination forms are aliasing-safe: dst may point at any operand
// (a.AddInto(b, &a)) and the result is still correct. The *_generated.go
// files holding the destination forms are produced by cmd/vmathgen; run
// `go generate ./vmath` after changing the value-form surface.
//
// # Conventions
//
// Matrices are column-major. Mat3 is stored in 12 elements (three column
// blocks of 4 with a padding slot each) to match GPU uniform layout; Mat4 is
// a plain 16-element column-major array. Projection matrices use 0..1 depth.
//
// Numeric edge cases follow GPU shader semantics: inverting a singular
// matrix silently yields Inf/NaN components, normalizing a near-zero vector
// yields the zero vector, and no operation returns an error. The only panic
// is passing an invalid RotationOrder to QuatFromEuler.
package vmath

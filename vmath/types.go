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

package vmath

// Float is the element type of every entity in this package. The choice of
// float32 vs float64 is made at instantiation; there is no process-wide
// default store to configure.
type Float interface {
	~float32 | ~float64
}

// Vec2 is a 2-component vector.
type Vec2[T Float] [2]T

// Vec3 is a 3-component vector.
type Vec3[T Float] [3]T

// Vec4 is a 4-component vector.
type Vec4[T Float] [4]T

// Quat is a quaternion stored as x, y, z, w.
type Quat[T Float] [4]T

// Mat3 is a 3x3 matrix stored column-major in blocks of 4 for GPU uniform
// layout compatibility: element (row r, column c) lives at index c*4+r, and
// indices 3, 7 and 11 are padding. The padding slots are written as zero by
// every constructor in this package but are not otherwise enforced.
type Mat3[T Float] [12]T

// Mat4 is a 4x4 column-major matrix: element (row r, column c) lives at
// index c*4+r. Translation occupies indices 12..14.
type Mat4[T Float] [16]T

// Aliases for the two common instantiations.
type (
	Vec2f = Vec2[float32]
	Vec2d = Vec2[float64]
	Vec3f = Vec3[float32]
	Vec3d = Vec3[float64]
	Vec4f = Vec4[float32]
	Vec4d = Vec4[float64]
	Quatf = Quat[float32]
	Quatd = Quat[float64]
	Mat3f = Mat3[float32]
	Mat3d = Mat3[float64]
	Mat4f = Mat4[float32]
	Mat4d = Mat4[float64]
)

// V2 returns the vector (x, y).
func V2[T Float](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// V3 returns the vector (x, y, z).
func V3[T Float](x, y, z T) Vec3[T] {
	return Vec3[T]{x, y, z}
}

// V4 returns the vector (x, y, z, w).
func V4[T Float](x, y, z, w T) Vec4[T] {
	return Vec4[T]{x, y, z, w}
}

// Q returns the quaternion x*i + y*j + z*k + w.
func Q[T Float](x, y, z, w T) Quat[T] {
	return Quat[T]{x, y, z, w}
}

// M3 builds a Mat3 from 9 components in column-major order, zeroing the
// padding slots.
func M3[T Float](e00, e10, e20, e01, e11, e21, e02, e12, e22 T) Mat3[T] {
	return Mat3[T]{
		e00, e10, e20, 0,
		e01, e11, e21, 0,
		e02, e12, e22, 0,
	}
}

// M4 builds a Mat4 from 16 components in column-major order.
func M4[T Float](e00, e10, e20, e30, e01, e11, e21, e31, e02, e12, e22, e32, e03, e13, e23, e33 T) Mat4[T] {
	return Mat4[T]{
		e00, e10, e20, e30,
		e01, e11, e21, e31,
		e02, e12, e22, e32,
		e03, e13, e23, e33,
	}
}

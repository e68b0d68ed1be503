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

import "math"

// Mat4Identity returns the 4x4 identity matrix.
func Mat4Identity[T Float]() Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mat4FromMat3 embeds the 3x3 matrix m in a 4x4 matrix with no translation.
func Mat4FromMat3[T Float](m Mat3[T]) Mat4[T] {
	return Mat4[T]{
		m[0], m[1], m[2], 0,
		m[4], m[5], m[6], 0,
		m[8], m[9], m[10], 0,
		0, 0, 0, 1,
	}
}

// Mat4FromQuat returns the rotation matrix for q.
func Mat4FromQuat[T Float](q Quat[T]) Mat4[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, yx, zx := x*x2, y*x2, z*x2
	yy, zy := y*y2, z*y2
	zz := z * z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Mat4[T]{
		1 - yy - zz, yx + wz, zx - wy, 0,
		yx - wz, 1 - xx - zz, zy + wx, 0,
		zx + wy, zy - wx, 1 - xx - yy, 0,
		0, 0, 0, 1,
	}
}

// Negate returns -m.
func (m Mat4[T]) Negate() Mat4[T] {
	var out Mat4[T]
	for i := range m {
		out[i] = -m[i]
	}
	return out
}

// Equals reports exact componentwise equality.
func (m Mat4[T]) Equals(n Mat4[T]) bool {
	return m == n
}

// EqualsApprox reports componentwise equality within the package epsilon.
func (m Mat4[T]) EqualsApprox(n Mat4[T]) bool {
	eps := T(epsilon)
	for i := range m {
		if abs(m[i]-n[i]) >= eps {
			return false
		}
	}
	return true
}

// Transpose returns m transposed.
func (m Mat4[T]) Transpose() Mat4[T] {
	return Mat4[T]{
		m[0], m[4], m[8], m[12],
		m[1], m[5], m[9], m[13],
		m[2], m[6], m[10], m[14],
		m[3], m[7], m[11], m[15],
	}
}

// Determinant returns the determinant of m.
func (m Mat4[T]) Determinant() T {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	tmp0 := m22 * m33
	tmp1 := m32 * m23
	tmp2 := m12 * m33
	tmp3 := m32 * m13
	tmp4 := m12 * m23
	tmp5 := m22 * m13
	tmp6 := m02 * m33
	tmp7 := m32 * m03
	tmp8 := m02 * m23
	tmp9 := m22 * m03
	tmp10 := m02 * m13
	tmp11 := m12 * m03

	t0 := (tmp0*m11 + tmp3*m21 + tmp4*m31) - (tmp1*m11 + tmp2*m21 + tmp5*m31)
	t1 := (tmp1*m01 + tmp6*m21 + tmp9*m31) - (tmp0*m01 + tmp7*m21 + tmp8*m31)
	t2 := (tmp2*m01 + tmp7*m11 + tmp10*m31) - (tmp3*m01 + tmp6*m11 + tmp11*m31)
	t3 := (tmp5*m01 + tmp8*m11 + tmp11*m21) - (tmp4*m01 + tmp9*m11 + tmp10*m21)

	return m00*t0 + m10*t1 + m20*t2 + m30*t3
}

// Inverse returns the inverse of m via cofactor expansion. A singular m
// silently yields Inf/NaN components, matching GPU shader semantics.
func (m Mat4[T]) Inverse() Mat4[T] {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	m30, m31, m32, m33 := m[12], m[13], m[14], m[15]

	tmp0 := m22 * m33
	tmp1 := m32 * m23
	tmp2 := m12 * m33
	tmp3 := m32 * m13
	tmp4 := m12 * m23
	tmp5 := m22 * m13
	tmp6 := m02 * m33
	tmp7 := m32 * m03
	tmp8 := m02 * m23
	tmp9 := m22 * m03
	tmp10 := m02 * m13
	tmp11 := m12 * m03
	tmp12 := m20 * m31
	tmp13 := m30 * m21
	tmp14 := m10 * m31
	tmp15 := m30 * m11
	tmp16 := m10 * m21
	tmp17 := m20 * m11
	tmp18 := m00 * m31
	tmp19 := m30 * m01
	tmp20 := m00 * m21
	tmp21 := m20 * m01
	tmp22 := m00 * m11
	tmp23 := m10 * m01

	t0 := (tmp0*m11 + tmp3*m21 + tmp4*m31) - (tmp1*m11 + tmp2*m21 + tmp5*m31)
	t1 := (tmp1*m01 + tmp6*m21 + tmp9*m31) - (tmp0*m01 + tmp7*m21 + tmp8*m31)
	t2 := (tmp2*m01 + tmp7*m11 + tmp10*m31) - (tmp3*m01 + tmp6*m11 + tmp11*m31)
	t3 := (tmp5*m01 + tmp8*m11 + tmp11*m21) - (tmp4*m01 + tmp9*m11 + tmp10*m21)

	d := 1 / (m00*t0 + m10*t1 + m20*t2 + m30*t3)

	return Mat4[T]{
		d * t0,
		d * t1,
		d * t2,
		d * t3,
		d * ((tmp1*m10 + tmp2*m20 + tmp5*m30) - (tmp0*m10 + tmp3*m20 + tmp4*m30)),
		d * ((tmp0*m00 + tmp7*m20 + tmp8*m30) - (tmp1*m00 + tmp6*m20 + tmp9*m30)),
		d * ((tmp3*m00 + tmp6*m10 + tmp11*m30) - (tmp2*m00 + tmp7*m10 + tmp10*m30)),
		d * ((tmp4*m00 + tmp9*m10 + tmp10*m20) - (tmp5*m00 + tmp8*m10 + tmp11*m20)),
		d * ((tmp12*m13 + tmp15*m23 + tmp16*m33) - (tmp13*m13 + tmp14*m23 + tmp17*m33)),
		d * ((tmp13*m03 + tmp18*m23 + tmp21*m33) - (tmp12*m03 + tmp19*m23 + tmp20*m33)),
		d * ((tmp14*m03 + tmp19*m13 + tmp22*m33) - (tmp15*m03 + tmp18*m13 + tmp23*m33)),
		d * ((tmp17*m03 + tmp20*m13 + tmp23*m23) - (tmp16*m03 + tmp21*m13 + tmp22*m23)),
		d * ((tmp14*m22 + tmp17*m32 + tmp13*m12) - (tmp16*m32 + tmp12*m12 + tmp15*m22)),
		d * ((tmp20*m32 + tmp12*m02 + tmp19*m22) - (tmp18*m22 + tmp21*m32 + tmp13*m02)),
		d * ((tmp18*m12 + tmp23*m32 + tmp15*m02) - (tmp22*m32 + tmp14*m02 + tmp19*m12)),
		d * ((tmp22*m22 + tmp16*m02 + tmp21*m12) - (tmp20*m12 + tmp23*m22 + tmp17*m02)),
	}
}

// Mul returns m * n.
func (m Mat4[T]) Mul(n Mat4[T]) Mat4[T] {
	var out Mat4[T]
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			var sum T
			for k := 0; k < 4; k++ {
				sum += m[k*4+r] * n[c*4+k]
			}
			out[c*4+r] = sum
		}
	}
	return out
}

// SetTranslation returns m with its translation replaced by v.
func (m Mat4[T]) SetTranslation(v Vec3[T]) Mat4[T] {
	out := m
	out[12] = v[0]
	out[13] = v[1]
	out[14] = v[2]
	return out
}

// GetTranslation returns the translation component of m.
func (m Mat4[T]) GetTranslation() Vec3[T] {
	return Vec3[T]{m[12], m[13], m[14]}
}

// GetAxis returns basis column axis (0 = x, 1 = y, 2 = z) of m.
func (m Mat4[T]) GetAxis(axis int) Vec3[T] {
	off := axis * 4
	return Vec3[T]{m[off], m[off+1], m[off+2]}
}

// SetAxis returns m with basis column axis replaced by v.
func (m Mat4[T]) SetAxis(v Vec3[T], axis int) Mat4[T] {
	out := m
	off := axis * 4
	out[off] = v[0]
	out[off+1] = v[1]
	out[off+2] = v[2]
	return out
}

// GetScaling returns the lengths of the three basis columns of m.
func (m Mat4[T]) GetScaling() Vec3[T] {
	return Vec3[T]{
		sqrt(m[0]*m[0] + m[1]*m[1] + m[2]*m[2]),
		sqrt(m[4]*m[4] + m[5]*m[5] + m[6]*m[6]),
		sqrt(m[8]*m[8] + m[9]*m[9] + m[10]*m[10]),
	}
}

// Mat4Translation returns a translation matrix.
func Mat4Translation[T Float](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		v[0], v[1], v[2], 1,
	}
}

// Translate returns m composed with a translation by v.
func (m Mat4[T]) Translate(v Vec3[T]) Mat4[T] {
	x, y, z := v[0], v[1], v[2]
	out := m
	out[12] = m[0]*x + m[4]*y + m[8]*z + m[12]
	out[13] = m[1]*x + m[5]*y + m[9]*z + m[13]
	out[14] = m[2]*x + m[6]*y + m[10]*z + m[14]
	out[15] = m[3]*x + m[7]*y + m[11]*z + m[15]
	return out
}

// Mat4RotationX returns a rotation matrix about the x axis.
func Mat4RotationX[T Float](rad T) Mat4[T] {
	s, c := sincos(rad)
	return Mat4[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateX returns m composed with a rotation about the x axis.
func (m Mat4[T]) RotateX(rad T) Mat4[T] {
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	s, c := sincos(rad)

	out := m
	out[4] = c*m10 + s*m20
	out[5] = c*m11 + s*m21
	out[6] = c*m12 + s*m22
	out[7] = c*m13 + s*m23
	out[8] = c*m20 - s*m10
	out[9] = c*m21 - s*m11
	out[10] = c*m22 - s*m12
	out[11] = c*m23 - s*m13
	return out
}

// Mat4RotationY returns a rotation matrix about the y axis.
func Mat4RotationY[T Float](rad T) Mat4[T] {
	s, c := sincos(rad)
	return Mat4[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns m composed with a rotation about the y axis.
func (m Mat4[T]) RotateY(rad T) Mat4[T] {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m20, m21, m22, m23 := m[8], m[9], m[10], m[11]
	s, c := sincos(rad)

	out := m
	out[0] = c*m00 - s*m20
	out[1] = c*m01 - s*m21
	out[2] = c*m02 - s*m22
	out[3] = c*m03 - s*m23
	out[8] = c*m20 + s*m00
	out[9] = c*m21 + s*m01
	out[10] = c*m22 + s*m02
	out[11] = c*m23 + s*m03
	return out
}

// Mat4RotationZ returns a rotation matrix about the z axis.
func Mat4RotationZ[T Float](rad T) Mat4[T] {
	s, c := sincos(rad)
	return Mat4[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns m composed with a rotation about the z axis.
func (m Mat4[T]) RotateZ(rad T) Mat4[T] {
	m00, m01, m02, m03 := m[0], m[1], m[2], m[3]
	m10, m11, m12, m13 := m[4], m[5], m[6], m[7]
	s, c := sincos(rad)

	out := m
	out[0] = c*m00 + s*m10
	out[1] = c*m01 + s*m11
	out[2] = c*m02 + s*m12
	out[3] = c*m03 + s*m13
	out[4] = c*m10 - s*m00
	out[5] = c*m11 - s*m01
	out[6] = c*m12 - s*m02
	out[7] = c*m13 - s*m03
	return out
}

// AxisRotation returns a rotation matrix of rad radians about axis. The axis
// need not be unit length.
func AxisRotation[T Float](axis Vec3[T], rad T) Mat4[T] {
	x, y, z := axis[0], axis[1], axis[2]
	n := sqrt(x*x + y*y + z*z)
	x, y, z = x/n, y/n, z/n
	xx, yy, zz := x*x, y*y, z*z
	s, c := sincos(rad)
	one := 1 - c

	return Mat4[T]{
		xx + (1-xx)*c, x*y*one + z*s, x*z*one - y*s, 0,
		x*y*one - z*s, yy + (1-yy)*c, y*z*one + x*s, 0,
		x*z*one + y*s, y*z*one - x*s, zz + (1-zz)*c, 0,
		0, 0, 0, 1,
	}
}

// AxisRotate returns m composed with a rotation of rad radians about axis.
func (m Mat4[T]) AxisRotate(axis Vec3[T], rad T) Mat4[T] {
	return m.Mul(AxisRotation(axis, rad))
}

// Mat4Scaling returns a scaling matrix.
func Mat4Scaling[T Float](v Vec3[T]) Mat4[T] {
	return Mat4[T]{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, v[2], 0,
		0, 0, 0, 1,
	}
}

// Scale returns m composed with a scale by v.
func (m Mat4[T]) Scale(v Vec3[T]) Mat4[T] {
	out := m
	for i := 0; i < 4; i++ {
		out[i] = m[i] * v[0]
		out[4+i] = m[4+i] * v[1]
		out[8+i] = m[8+i] * v[2]
	}
	return out
}

// Mat4UniformScaling returns a uniform scaling matrix.
func Mat4UniformScaling[T Float](s T) Mat4[T] {
	return Mat4Scaling(Vec3[T]{s, s, s})
}

// UniformScale returns m composed with a uniform scale by s.
func (m Mat4[T]) UniformScale(s T) Mat4[T] {
	return m.Scale(Vec3[T]{s, s, s})
}

// Perspective returns a perspective projection with 0..1 clip-space depth
// (WebGPU/D3D convention). fovY is the vertical field of view in radians.
// Passing zFar = +Inf produces the closed-form infinite projection: depth is
// 0 at z = -zNear and approaches 1 as z goes to -Inf.
func Perspective[T Float](fovY, aspect, zNear, zFar T) Mat4[T] {
	f := tan(T(math.Pi)*0.5 - 0.5*fovY)

	var out Mat4[T]
	out[0] = f / aspect
	out[5] = f
	out[11] = -1
	if math.IsInf(float64(zFar), 1) {
		out[10] = -1
		out[14] = -zNear
	} else {
		rangeInv := 1 / (zNear - zFar)
		out[10] = zFar * rangeInv
		out[14] = zFar * zNear * rangeInv
	}
	return out
}

// Ortho returns an orthographic projection with 0..1 clip-space depth.
func Ortho[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	var out Mat4[T]
	out[0] = 2 / (right - left)
	out[5] = 2 / (top - bottom)
	out[10] = 1 / (near - far)
	out[12] = (right + left) / (left - right)
	out[13] = (top + bottom) / (bottom - top)
	out[14] = near / (near - far)
	out[15] = 1
	return out
}

// Frustum returns a perspective projection from clip-plane extents, with
// 0..1 clip-space depth.
func Frustum[T Float](left, right, bottom, top, near, far T) Mat4[T] {
	dx := right - left
	dy := top - bottom
	dz := near - far

	var out Mat4[T]
	out[0] = 2 * near / dx
	out[5] = 2 * near / dy
	out[8] = (left + right) / dx
	out[9] = (top + bottom) / dy
	out[10] = far / dz
	out[11] = -1
	out[14] = near * far / dz
	return out
}

// LookAt returns a view matrix placing the camera at eye looking at target.
func LookAt[T Float](eye, target, up Vec3[T]) Mat4[T] {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis).Normalize()

	return Mat4[T]{
		xAxis[0], yAxis[0], zAxis[0], 0,
		xAxis[1], yAxis[1], zAxis[1], 0,
		xAxis[2], yAxis[2], zAxis[2], 0,
		-xAxis.Dot(eye), -yAxis.Dot(eye), -zAxis.Dot(eye), 1,
	}
}

// Aim returns a world matrix positioning an object at position with its +z
// axis pointing at target.
func Aim[T Float](position, target, up Vec3[T]) Mat4[T] {
	zAxis := target.Sub(position).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis).Normalize()

	return Mat4[T]{
		xAxis[0], xAxis[1], xAxis[2], 0,
		yAxis[0], yAxis[1], yAxis[2], 0,
		zAxis[0], zAxis[1], zAxis[2], 0,
		position[0], position[1], position[2], 1,
	}
}

// CameraAim returns a camera world matrix at eye with its -z axis pointing
// at target. It is the inverse of the LookAt view matrix.
func CameraAim[T Float](eye, target, up Vec3[T]) Mat4[T] {
	zAxis := eye.Sub(target).Normalize()
	xAxis := up.Cross(zAxis).Normalize()
	yAxis := zAxis.Cross(xAxis).Normalize()

	return Mat4[T]{
		xAxis[0], xAxis[1], xAxis[2], 0,
		yAxis[0], yAxis[1], yAxis[2], 0,
		zAxis[0], zAxis[1], zAxis[2], 0,
		eye[0], eye[1], eye[2], 1,
	}
}

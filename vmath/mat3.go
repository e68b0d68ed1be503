package vmath

// Mat3Identity returns the 3x3 identity matrix.
func Mat3Identity[T Float]() Mat3[T] {
	return Mat3[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
}

// Mat3FromMat4 returns the upper-left 3x3 of m.
func Mat3FromMat4[T Float](m Mat4[T]) Mat3[T] {
	return Mat3[T]{
		m[0], m[1], m[2], 0,
		m[4], m[5], m[6], 0,
		m[8], m[9], m[10], 0,
	}
}

// Mat3FromQuat returns the rotation matrix for q.
func Mat3FromQuat[T Float](q Quat[T]) Mat3[T] {
	x, y, z, w := q[0], q[1], q[2], q[3]
	x2, y2, z2 := x+x, y+y, z+z
	xx, yx, zx := x*x2, y*x2, z*x2
	yy, zy := y*y2, z*y2
	zz := z * z2
	wx, wy, wz := w*x2, w*y2, w*z2

	return Mat3[T]{
		1 - yy - zz, yx + wz, zx - wy, 0,
		yx - wz, 1 - xx - zz, zy + wx, 0,
		zx + wy, zy - wx, 1 - xx - yy, 0,
	}
}

// Negate returns -m.
func (m Mat3[T]) Negate() Mat3[T] {
	return Mat3[T]{
		-m[0], -m[1], -m[2], 0,
		-m[4], -m[5], -m[6], 0,
		-m[8], -m[9], -m[10], 0,
	}
}

// Equals reports exact equality of the 9 matrix elements. Padding slots are
// ignored.
func (m Mat3[T]) Equals(n Mat3[T]) bool {
	return m[0] == n[0] && m[1] == n[1] && m[2] == n[2] &&
		m[4] == n[4] && m[5] == n[5] && m[6] == n[6] &&
		m[8] == n[8] && m[9] == n[9] && m[10] == n[10]
}

// EqualsApprox reports equality of the 9 matrix elements within the package
// epsilon. Padding slots are ignored.
func (m Mat3[T]) EqualsApprox(n Mat3[T]) bool {
	eps := T(epsilon)
	return abs(m[0]-n[0]) < eps && abs(m[1]-n[1]) < eps && abs(m[2]-n[2]) < eps &&
		abs(m[4]-n[4]) < eps && abs(m[5]-n[5]) < eps && abs(m[6]-n[6]) < eps &&
		abs(m[8]-n[8]) < eps && abs(m[9]-n[9]) < eps && abs(m[10]-n[10]) < eps
}

// Transpose returns m transposed.
func (m Mat3[T]) Transpose() Mat3[T] {
	return Mat3[T]{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
	}
}

// Determinant returns the determinant of m.
func (m Mat3[T]) Determinant() T {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	return m00*(m22*m11-m12*m21) + m01*(-m22*m10+m12*m20) + m02*(m21*m10-m11*m20)
}

// Inverse returns the inverse of m via cofactor expansion. A singular m
// silently yields Inf/NaN components.
func (m Mat3[T]) Inverse() Mat3[T] {
	m00, m01, m02 := m[0], m[1], m[2]
	m10, m11, m12 := m[4], m[5], m[6]
	m20, m21, m22 := m[8], m[9], m[10]

	b01 := m22*m11 - m12*m21
	b11 := -m22*m10 + m12*m20
	b21 := m21*m10 - m11*m20

	invDet := 1 / (m00*b01 + m01*b11 + m02*b21)

	return Mat3[T]{
		b01 * invDet, (-m22*m01 + m02*m21) * invDet, (m12*m01 - m02*m11) * invDet, 0,
		b11 * invDet, (m22*m00 - m02*m20) * invDet, (-m12*m00 + m02*m10) * invDet, 0,
		b21 * invDet, (-m21*m00 + m01*m20) * invDet, (m11*m00 - m01*m10) * invDet, 0,
	}
}

// Mul returns m * n.
func (m Mat3[T]) Mul(n Mat3[T]) Mat3[T] {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	a20, a21, a22 := m[8], m[9], m[10]
	b00, b01, b02 := n[0], n[1], n[2]
	b10, b11, b12 := n[4], n[5], n[6]
	b20, b21, b22 := n[8], n[9], n[10]

	return Mat3[T]{
		a00*b00 + a10*b01 + a20*b02,
		a01*b00 + a11*b01 + a21*b02,
		a02*b00 + a12*b01 + a22*b02,
		0,
		a00*b10 + a10*b11 + a20*b12,
		a01*b10 + a11*b11 + a21*b12,
		a02*b10 + a12*b11 + a22*b12,
		0,
		a00*b20 + a10*b21 + a20*b22,
		a01*b20 + a11*b21 + a21*b22,
		a02*b20 + a12*b21 + a22*b22,
		0,
	}
}

// SetTranslation returns m with its 2D translation replaced by v.
func (m Mat3[T]) SetTranslation(v Vec2[T]) Mat3[T] {
	out := m
	out[8] = v[0]
	out[9] = v[1]
	return out
}

// GetTranslation returns the 2D translation component of m.
func (m Mat3[T]) GetTranslation() Vec2[T] {
	return Vec2[T]{m[8], m[9]}
}

// GetAxis returns basis column axis (0 = x, 1 = y) of m as a 2D vector.
func (m Mat3[T]) GetAxis(axis int) Vec2[T] {
	off := axis * 4
	return Vec2[T]{m[off], m[off+1]}
}

// SetAxis returns m with basis column axis replaced by v.
func (m Mat3[T]) SetAxis(v Vec2[T], axis int) Mat3[T] {
	out := m
	off := axis * 4
	out[off] = v[0]
	out[off+1] = v[1]
	return out
}

// GetScaling returns the lengths of the 2D basis columns of m.
func (m Mat3[T]) GetScaling() Vec2[T] {
	return Vec2[T]{
		sqrt(m[0]*m[0] + m[1]*m[1]),
		sqrt(m[4]*m[4] + m[5]*m[5]),
	}
}

// Mat3Translation returns a 2D translation matrix.
func Mat3Translation[T Float](v Vec2[T]) Mat3[T] {
	return Mat3[T]{
		1, 0, 0, 0,
		0, 1, 0, 0,
		v[0], v[1], 1, 0,
	}
}

// Translate returns m composed with a 2D translation by v.
func (m Mat3[T]) Translate(v Vec2[T]) Mat3[T] {
	out := m
	out[8] = m[0]*v[0] + m[4]*v[1] + m[8]
	out[9] = m[1]*v[0] + m[5]*v[1] + m[9]
	out[10] = m[2]*v[0] + m[6]*v[1] + m[10]
	return out
}

// Mat3Rotation returns a 2D rotation matrix (about z) by rad radians.
func Mat3Rotation[T Float](rad T) Mat3[T] {
	s, c := sincos(rad)
	return Mat3[T]{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
	}
}

// Rotate returns m composed with a 2D rotation by rad radians.
func (m Mat3[T]) Rotate(rad T) Mat3[T] {
	a00, a01, a02 := m[0], m[1], m[2]
	a10, a11, a12 := m[4], m[5], m[6]
	s, c := sincos(rad)

	out := m
	out[0] = c*a00 + s*a10
	out[1] = c*a01 + s*a11
	out[2] = c*a02 + s*a12
	out[4] = c*a10 - s*a00
	out[5] = c*a11 - s*a01
	out[6] = c*a12 - s*a02
	return out
}

// Mat3RotationX returns a 3D rotation matrix about the x axis.
func Mat3RotationX[T Float](rad T) Mat3[T] {
	s, c := sincos(rad)
	return Mat3[T]{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
	}
}

// Mat3RotationY returns a 3D rotation matrix about the y axis.
func Mat3RotationY[T Float](rad T) Mat3[T] {
	s, c := sincos(rad)
	return Mat3[T]{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
	}
}

// Mat3RotationZ returns a 3D rotation matrix about the z axis.
func Mat3RotationZ[T Float](rad T) Mat3[T] {
	return Mat3Rotation(rad)
}

// Mat3Scaling returns a 2D scaling matrix.
func Mat3Scaling[T Float](v Vec2[T]) Mat3[T] {
	return Mat3[T]{
		v[0], 0, 0, 0,
		0, v[1], 0, 0,
		0, 0, 1, 0,
	}
}

// Scale returns m composed with a 2D scale by v.
func (m Mat3[T]) Scale(v Vec2[T]) Mat3[T] {
	out := m
	out[0] = m[0] * v[0]
	out[1] = m[1] * v[0]
	out[2] = m[2] * v[0]
	out[4] = m[4] * v[1]
	out[5] = m[5] * v[1]
	out[6] = m[6] * v[1]
	return out
}

// Mat3UniformScaling returns a 2D uniform scaling matrix.
func Mat3UniformScaling[T Float](s T) Mat3[T] {
	return Mat3Scaling(Vec2[T]{s, s})
}

// UniformScale returns m composed with a 2D uniform scale by s.
func (m Mat3[T]) UniformScale(s T) Mat3[T] {
	return m.Scale(Vec2[T]{s, s})
}

package vmath

import (
	"fmt"
	"math"
)

// RotationOrder names the intrinsic axis order used by QuatFromEuler.
type RotationOrder uint8

const (
	OrderXYZ RotationOrder = iota
	OrderXZY
	OrderYXZ
	OrderYZX
	OrderZXY
	OrderZYX
)

func (o RotationOrder) String() string {
	switch o {
	case OrderXYZ:
		return "xyz"
	case OrderXZY:
		return "xzy"
	case OrderYXZ:
		return "yxz"
	case OrderYZX:
		return "yzx"
	case OrderZXY:
		return "zxy"
	case OrderZYX:
		return "zyx"
	}
	return fmt.Sprintf("RotationOrder(%d)", uint8(o))
}

// QuatIdentity returns the identity quaternion.
func QuatIdentity[T Float]() Quat[T] {
	return Quat[T]{0, 0, 0, 1}
}

// QuatFromAxisAngle returns the quaternion rotating by rad radians about
// axis. axis is assumed to be unit length.
func QuatFromAxisAngle[T Float](axis Vec3[T], rad T) Quat[T] {
	s, c := sincos(rad * 0.5)
	return Quat[T]{axis[0] * s, axis[1] * s, axis[2] * s, c}
}

// ToAxisAngle decomposes q into a rotation angle and unit axis. For a
// near-zero rotation the axis degenerates to +x.
func (q Quat[T]) ToAxisAngle() (angle T, axis Vec3[T]) {
	angle = acos(q[3]) * 2
	s := sin(angle * 0.5)
	if abs(s) > T(epsilon) {
		return angle, Vec3[T]{q[0] / s, q[1] / s, q[2] / s}
	}
	return angle, Vec3[T]{1, 0, 0}
}

// QuatFromEuler converts intrinsic Euler angles (radians) applied in the
// given order to a quaternion. An out-of-range order is a programmer error
// and panics.
func QuatFromEuler[T Float](x, y, z T, order RotationOrder) Quat[T] {
	sx, cx := sincos(x * 0.5)
	sy, cy := sincos(y * 0.5)
	sz, cz := sincos(z * 0.5)

	switch order {
	case OrderXYZ:
		return Quat[T]{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderXZY:
		return Quat[T]{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	case OrderYXZ:
		return Quat[T]{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz - sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	case OrderYZX:
		return Quat[T]{
			sx*cy*cz + cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderZXY:
		return Quat[T]{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz + sx*sy*cz,
			cx*cy*cz - sx*sy*sz,
		}
	case OrderZYX:
		return Quat[T]{
			sx*cy*cz - cx*sy*sz,
			cx*sy*cz + sx*cy*sz,
			cx*cy*sz - sx*sy*cz,
			cx*cy*cz + sx*sy*sz,
		}
	}
	panic(fmt.Sprintf("vmath: unknown rotation order %d", uint8(order)))
}

// QuatFromMat4 extracts the rotation of m as a quaternion using the
// trace-based algorithm, branching on the largest diagonal element for
// numerical stability.
func QuatFromMat4[T Float](m Mat4[T]) Quat[T] {
	var q Quat[T]
	trace := m[0] + m[5] + m[10]
	if trace > 0 {
		root := sqrt(trace + 1)
		q[3] = 0.5 * root
		invRoot := 0.5 / root
		q[0] = (m[6] - m[9]) * invRoot
		q[1] = (m[8] - m[2]) * invRoot
		q[2] = (m[1] - m[4]) * invRoot
		return q
	}

	i := 0
	if m[5] > m[0] {
		i = 1
	}
	if m[10] > m[i*4+i] {
		i = 2
	}
	j := (i + 1) % 3
	k := (i + 2) % 3

	root := sqrt(m[i*4+i] - m[j*4+j] - m[k*4+k] + 1)
	q[i] = 0.5 * root
	invRoot := 0.5 / root
	q[3] = (m[j*4+k] - m[k*4+j]) * invRoot
	q[j] = (m[j*4+i] + m[i*4+j]) * invRoot
	q[k] = (m[k*4+i] + m[i*4+k]) * invRoot
	return q
}

// QuatFromMat3 extracts the rotation of m as a quaternion.
func QuatFromMat3[T Float](m Mat3[T]) Quat[T] {
	return QuatFromMat4(Mat4FromMat3(m))
}

// RotationTo returns the shortest-arc quaternion rotating unit vector from
// onto unit vector to. Near-opposite inputs rotate half a turn about an
// arbitrary axis orthogonal to from.
func RotationTo[T Float](from, to Vec3[T]) Quat[T] {
	dot := from.Dot(to)
	if dot < -0.999999 {
		axis := Vec3[T]{1, 0, 0}.Cross(from)
		if axis.Length() < 0.000001 {
			axis = Vec3[T]{0, 1, 0}.Cross(from)
		}
		return QuatFromAxisAngle(axis.Normalize(), T(math.Pi))
	}
	if dot > 0.999999 {
		return QuatIdentity[T]()
	}
	axis := from.Cross(to)
	return Quat[T]{axis[0], axis[1], axis[2], 1 + dot}.Normalize()
}

// Mul returns the Hamilton product a * b.
func (a Quat[T]) Mul(b Quat[T]) Quat[T] {
	ax, ay, az, aw := a[0], a[1], a[2], a[3]
	bx, by, bz, bw := b[0], b[1], b[2], b[3]
	return Quat[T]{
		ax*bw + aw*bx + ay*bz - az*by,
		ay*bw + aw*by + az*bx - ax*bz,
		az*bw + aw*bz + ax*by - ay*bx,
		aw*bw - ax*bx - ay*by - az*bz,
	}
}

// RotateX returns a rotated by rad radians about the x axis.
func (a Quat[T]) RotateX(rad T) Quat[T] {
	bx, bw := sincos(rad * 0.5)
	return Quat[T]{
		a[0]*bw + a[3]*bx,
		a[1]*bw + a[2]*bx,
		a[2]*bw - a[1]*bx,
		a[3]*bw - a[0]*bx,
	}
}

// RotateY returns a rotated by rad radians about the y axis.
func (a Quat[T]) RotateY(rad T) Quat[T] {
	by, bw := sincos(rad * 0.5)
	return Quat[T]{
		a[0]*bw - a[2]*by,
		a[1]*bw + a[3]*by,
		a[2]*bw + a[0]*by,
		a[3]*bw - a[1]*by,
	}
}

// RotateZ returns a rotated by rad radians about the z axis.
func (a Quat[T]) RotateZ(rad T) Quat[T] {
	bz, bw := sincos(rad * 0.5)
	return Quat[T]{
		a[0]*bw + a[1]*bz,
		a[1]*bw - a[0]*bz,
		a[2]*bw + a[3]*bz,
		a[3]*bw - a[2]*bz,
	}
}

// Slerp interpolates a -> b by t along the great circle. Nearly parallel
// endpoints fall back to linear interpolation with renormalization to avoid
// dividing by a vanishing sine.
func (a Quat[T]) Slerp(b Quat[T], t T) Quat[T] {
	cosOmega := a.Dot(b)
	if cosOmega < 0 {
		cosOmega = -cosOmega
		b = b.Negate()
	}

	if 1-cosOmega > T(epsilon) {
		omega := acos(cosOmega)
		sinOmega := sin(omega)
		scaleA := sin((1-t)*omega) / sinOmega
		scaleB := sin(t*omega) / sinOmega
		return Quat[T]{
			scaleA*a[0] + scaleB*b[0],
			scaleA*a[1] + scaleB*b[1],
			scaleA*a[2] + scaleB*b[2],
			scaleA*a[3] + scaleB*b[3],
		}
	}
	return a.Lerp(b, t).Normalize()
}

// Sqlerp performs cubic spherical interpolation across the control
// quaternions a, b, c, d via nested slerps.
func (a Quat[T]) Sqlerp(b, c, d Quat[T], t T) Quat[T] {
	p := a.Slerp(d, t)
	q := b.Slerp(c, t)
	return p.Slerp(q, 2*t*(1-t))
}

// Conjugate negates the vector part of a. For unit quaternions this equals
// the inverse.
func (a Quat[T]) Conjugate() Quat[T] {
	return Quat[T]{-a[0], -a[1], -a[2], a[3]}
}

// Inverse returns the multiplicative inverse of a, dividing the conjugate by
// the squared length. A zero quaternion yields the zero quaternion.
func (a Quat[T]) Inverse() Quat[T] {
	dot := a.LengthSq()
	var invDot T
	if dot != 0 {
		invDot = 1 / dot
	}
	return Quat[T]{-a[0] * invDot, -a[1] * invDot, -a[2] * invDot, a[3] * invDot}
}

// Add returns a + b.
func (a Quat[T]) Add(b Quat[T]) Quat[T] {
	return Quat[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// Sub returns a - b.
func (a Quat[T]) Sub(b Quat[T]) Quat[T] {
	return Quat[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Scale returns a * s.
func (a Quat[T]) Scale(s T) Quat[T] {
	return Quat[T]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// DivScale returns a / s.
func (a Quat[T]) DivScale(s T) Quat[T] {
	return Quat[T]{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// Negate returns -a.
func (a Quat[T]) Negate() Quat[T] {
	return Quat[T]{-a[0], -a[1], -a[2], -a[3]}
}

// Dot returns a . b.
func (a Quat[T]) Dot(b Quat[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Lerp linearly interpolates a -> b by t. The result is not normalized.
func (a Quat[T]) Lerp(b Quat[T], t T) Quat[T] {
	return Quat[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// Length returns |a|.
func (a Quat[T]) Length() T {
	return sqrt(a.LengthSq())
}

// LengthSq returns |a|^2.
func (a Quat[T]) LengthSq() T {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2] + a[3]*a[3]
}

// Normalize returns a scaled to unit length, or the identity quaternion
// when |a| is below 1e-5.
func (a Quat[T]) Normalize() Quat[T] {
	l := a.Length()
	if l > 1e-5 {
		return Quat[T]{a[0] / l, a[1] / l, a[2] / l, a[3] / l}
	}
	return QuatIdentity[T]()
}

// Angle returns the rotation angle in radians between a and b.
func (a Quat[T]) Angle(b Quat[T]) T {
	d := a.Dot(b)
	return acos(clamp(2*d*d-1, -1, 1))
}

// Equals reports exact componentwise equality.
func (a Quat[T]) Equals(b Quat[T]) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// EqualsApprox reports componentwise equality within the package epsilon.
func (a Quat[T]) EqualsApprox(b Quat[T]) bool {
	eps := T(epsilon)
	return abs(a[0]-b[0]) < eps && abs(a[1]-b[1]) < eps &&
		abs(a[2]-b[2]) < eps && abs(a[3]-b[3]) < eps
}

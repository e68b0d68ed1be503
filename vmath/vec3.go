package vmath

import (
	"math"
	"math/rand/v2"
)

// Add returns a + b.
func (a Vec3[T]) Add(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}

// AddScaled returns a + b*scale.
func (a Vec3[T]) AddScaled(b Vec3[T], scale T) Vec3[T] {
	return Vec3[T]{a[0] + b[0]*scale, a[1] + b[1]*scale, a[2] + b[2]*scale}
}

// Sub returns a - b.
func (a Vec3[T]) Sub(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Mul returns the componentwise product a * b.
func (a Vec3[T]) Mul(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2]}
}

// Div returns the componentwise quotient a / b.
func (a Vec3[T]) Div(b Vec3[T]) Vec3[T] {
	return Vec3[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2]}
}

// Scale returns a * s.
func (a Vec3[T]) Scale(s T) Vec3[T] {
	return Vec3[T]{a[0] * s, a[1] * s, a[2] * s}
}

// DivScale returns a / s.
func (a Vec3[T]) DivScale(s T) Vec3[T] {
	return Vec3[T]{a[0] / s, a[1] / s, a[2] / s}
}

// Inverse returns the componentwise reciprocal 1 / a.
func (a Vec3[T]) Inverse() Vec3[T] {
	return Vec3[T]{1 / a[0], 1 / a[1], 1 / a[2]}
}

// Negate returns -a.
func (a Vec3[T]) Negate() Vec3[T] {
	return Vec3[T]{-a[0], -a[1], -a[2]}
}

// Ceil returns a with each component rounded up.
func (a Vec3[T]) Ceil() Vec3[T] {
	return Vec3[T]{ceil(a[0]), ceil(a[1]), ceil(a[2])}
}

// Floor returns a with each component rounded down.
func (a Vec3[T]) Floor() Vec3[T] {
	return Vec3[T]{floor(a[0]), floor(a[1]), floor(a[2])}
}

// Round returns a with each component rounded to the nearest integer.
func (a Vec3[T]) Round() Vec3[T] {
	return Vec3[T]{round(a[0]), round(a[1]), round(a[2])}
}

// Clamp limits each component of a to [lo, hi].
func (a Vec3[T]) Clamp(lo, hi T) Vec3[T] {
	return Vec3[T]{clamp(a[0], lo, hi), clamp(a[1], lo, hi), clamp(a[2], lo, hi)}
}

// Min returns the componentwise minimum of a and b.
func (a Vec3[T]) Min(b Vec3[T]) Vec3[T] {
	return Vec3[T]{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2])}
}

// Max returns the componentwise maximum of a and b.
func (a Vec3[T]) Max(b Vec3[T]) Vec3[T] {
	return Vec3[T]{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2])}
}

// Lerp interpolates a -> b by t. t is not clamped.
func (a Vec3[T]) Lerp(b Vec3[T], t T) Vec3[T] {
	return Vec3[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
	}
}

// LerpV interpolates a -> b with a per-component interpolant.
func (a Vec3[T]) LerpV(b, t Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
		a[2] + (b[2]-a[2])*t[2],
	}
}

// Dot returns a . b.
func (a Vec3[T]) Dot(b Vec3[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

// Cross returns a x b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length returns |a|.
func (a Vec3[T]) Length() T {
	return sqrt(a[0]*a[0] + a[1]*a[1] + a[2]*a[2])
}

// LengthSq returns |a|^2.
func (a Vec3[T]) LengthSq() T {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2]
}

// Distance returns |a - b|.
func (a Vec3[T]) Distance(b Vec3[T]) T {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return sqrt(dx*dx + dy*dy + dz*dz)
}

// DistanceSq returns |a - b|^2.
func (a Vec3[T]) DistanceSq(b Vec3[T]) T {
	dx, dy, dz := a[0]-b[0], a[1]-b[1], a[2]-b[2]
	return dx*dx + dy*dy + dz*dz
}

// Normalize returns a scaled to unit length, or the zero vector when |a| is
// below 1e-5.
func (a Vec3[T]) Normalize() Vec3[T] {
	l := a.Length()
	if l > 1e-5 {
		return Vec3[T]{a[0] / l, a[1] / l, a[2] / l}
	}
	return Vec3[T]{}
}

// SetLength returns a scaled to length l.
func (a Vec3[T]) SetLength(l T) Vec3[T] {
	return a.Normalize().Scale(l)
}

// Truncate returns a shortened to length maxLen if it is longer, else a.
func (a Vec3[T]) Truncate(maxLen T) Vec3[T] {
	if a.Length() > maxLen {
		return a.SetLength(maxLen)
	}
	return a
}

// Midpoint returns the point halfway between a and b.
func (a Vec3[T]) Midpoint(b Vec3[T]) Vec3[T] {
	return a.Lerp(b, 0.5)
}

// Angle returns the angle between a and b in radians.
func (a Vec3[T]) Angle(b Vec3[T]) T {
	mag := a.Length() * b.Length()
	var cosine T
	if mag != 0 {
		cosine = clamp(a.Dot(b)/mag, -1, 1)
	}
	return acos(cosine)
}

// Equals reports exact componentwise equality.
func (a Vec3[T]) Equals(b Vec3[T]) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2]
}

// EqualsApprox reports componentwise equality within the package epsilon.
func (a Vec3[T]) EqualsApprox(b Vec3[T]) bool {
	eps := T(epsilon)
	return abs(a[0]-b[0]) < eps && abs(a[1]-b[1]) < eps && abs(a[2]-b[2]) < eps
}

// RotateX returns a rotated by rad radians around the x axis through center.
func (a Vec3[T]) RotateX(center Vec3[T], rad T) Vec3[T] {
	px, py, pz := a[0]-center[0], a[1]-center[1], a[2]-center[2]
	s, c := sincos(rad)
	return Vec3[T]{
		px + center[0],
		py*c - pz*s + center[1],
		py*s + pz*c + center[2],
	}
}

// RotateY returns a rotated by rad radians around the y axis through center.
func (a Vec3[T]) RotateY(center Vec3[T], rad T) Vec3[T] {
	px, py, pz := a[0]-center[0], a[1]-center[1], a[2]-center[2]
	s, c := sincos(rad)
	return Vec3[T]{
		pz*s + px*c + center[0],
		py + center[1],
		pz*c - px*s + center[2],
	}
}

// RotateZ returns a rotated by rad radians around the z axis through center.
func (a Vec3[T]) RotateZ(center Vec3[T], rad T) Vec3[T] {
	px, py, pz := a[0]-center[0], a[1]-center[1], a[2]-center[2]
	s, c := sincos(rad)
	return Vec3[T]{
		px*c - py*s + center[0],
		px*s + py*c + center[1],
		pz + center[2],
	}
}

// TransformMat3 transforms a by the 3x3 matrix m.
func (a Vec3[T]) TransformMat3(m Mat3[T]) Vec3[T] {
	x, y, z := a[0], a[1], a[2]
	return Vec3[T]{
		x*m[0] + y*m[4] + z*m[8],
		x*m[1] + y*m[5] + z*m[9],
		x*m[2] + y*m[6] + z*m[10],
	}
}

// TransformMat4 transforms a as a point (w = 1) by m, dividing by the
// resulting w. A zero w is treated as 1.
func (a Vec3[T]) TransformMat4(m Mat4[T]) Vec3[T] {
	x, y, z := a[0], a[1], a[2]
	w := m[3]*x + m[7]*y + m[11]*z + m[15]
	if w == 0 {
		w = 1
	}
	return Vec3[T]{
		(m[0]*x + m[4]*y + m[8]*z + m[12]) / w,
		(m[1]*x + m[5]*y + m[9]*z + m[13]) / w,
		(m[2]*x + m[6]*y + m[10]*z + m[14]) / w,
	}
}

// TransformMat4Upper3x3 transforms a as a direction by the upper-left 3x3
// of m, ignoring translation and perspective.
func (a Vec3[T]) TransformMat4Upper3x3(m Mat4[T]) Vec3[T] {
	x, y, z := a[0], a[1], a[2]
	return Vec3[T]{
		x*m[0] + y*m[4] + z*m[8],
		x*m[1] + y*m[5] + z*m[9],
		x*m[2] + y*m[6] + z*m[10],
	}
}

// TransformQuat rotates a by the quaternion q.
func (a Vec3[T]) TransformQuat(q Quat[T]) Vec3[T] {
	qx, qy, qz, w2 := q[0], q[1], q[2], q[3]*2
	x, y, z := a[0], a[1], a[2]

	uvX := qy*z - qz*y
	uvY := qz*x - qx*z
	uvZ := qx*y - qy*x

	return Vec3[T]{
		x + uvX*w2 + (qy*uvZ-qz*uvY)*2,
		y + uvY*w2 + (qz*uvX-qx*uvZ)*2,
		z + uvZ*w2 + (qx*uvY-qy*uvX)*2,
	}
}

// Vec3Random returns a random vector of length scale, uniformly distributed
// over the sphere.
func Vec3Random[T Float](scale T) Vec3[T] {
	angle := rand.Float64() * 2 * math.Pi
	z := rand.Float64()*2 - 1
	zScale := math.Sqrt(1-z*z) * float64(scale)
	return Vec3[T]{
		T(math.Cos(angle) * zScale),
		T(math.Sin(angle) * zScale),
		T(z) * scale,
	}
}

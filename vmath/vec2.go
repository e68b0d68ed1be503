package vmath

import (
	"math"
	"math/rand/v2"
)

//go:generate go run ../cmd/vmathgen

// Add returns a + b.
func (a Vec2[T]) Add(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] + b[0], a[1] + b[1]}
}

// AddScaled returns a + b*scale.
func (a Vec2[T]) AddScaled(b Vec2[T], scale T) Vec2[T] {
	return Vec2[T]{a[0] + b[0]*scale, a[1] + b[1]*scale}
}

// Sub returns a - b.
func (a Vec2[T]) Sub(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] - b[0], a[1] - b[1]}
}

// Mul returns the componentwise product a * b.
func (a Vec2[T]) Mul(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] * b[0], a[1] * b[1]}
}

// Div returns the componentwise quotient a / b.
func (a Vec2[T]) Div(b Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] / b[0], a[1] / b[1]}
}

// Scale returns a * s.
func (a Vec2[T]) Scale(s T) Vec2[T] {
	return Vec2[T]{a[0] * s, a[1] * s}
}

// DivScale returns a / s.
func (a Vec2[T]) DivScale(s T) Vec2[T] {
	return Vec2[T]{a[0] / s, a[1] / s}
}

// Inverse returns the componentwise reciprocal 1 / a.
func (a Vec2[T]) Inverse() Vec2[T] {
	return Vec2[T]{1 / a[0], 1 / a[1]}
}

// Negate returns -a.
func (a Vec2[T]) Negate() Vec2[T] {
	return Vec2[T]{-a[0], -a[1]}
}

// Ceil returns a with each component rounded up.
func (a Vec2[T]) Ceil() Vec2[T] {
	return Vec2[T]{ceil(a[0]), ceil(a[1])}
}

// Floor returns a with each component rounded down.
func (a Vec2[T]) Floor() Vec2[T] {
	return Vec2[T]{floor(a[0]), floor(a[1])}
}

// Round returns a with each component rounded to the nearest integer.
func (a Vec2[T]) Round() Vec2[T] {
	return Vec2[T]{round(a[0]), round(a[1])}
}

// Clamp limits each component of a to [lo, hi].
func (a Vec2[T]) Clamp(lo, hi T) Vec2[T] {
	return Vec2[T]{clamp(a[0], lo, hi), clamp(a[1], lo, hi)}
}

// Min returns the componentwise minimum of a and b.
func (a Vec2[T]) Min(b Vec2[T]) Vec2[T] {
	return Vec2[T]{min(a[0], b[0]), min(a[1], b[1])}
}

// Max returns the componentwise maximum of a and b.
func (a Vec2[T]) Max(b Vec2[T]) Vec2[T] {
	return Vec2[T]{max(a[0], b[0]), max(a[1], b[1])}
}

// Lerp interpolates a -> b by t. t is not clamped.
func (a Vec2[T]) Lerp(b Vec2[T], t T) Vec2[T] {
	return Vec2[T]{a[0] + (b[0]-a[0])*t, a[1] + (b[1]-a[1])*t}
}

// LerpV interpolates a -> b with a per-component interpolant.
func (a Vec2[T]) LerpV(b, t Vec2[T]) Vec2[T] {
	return Vec2[T]{a[0] + (b[0]-a[0])*t[0], a[1] + (b[1]-a[1])*t[1]}
}

// Dot returns a . b.
func (a Vec2[T]) Dot(b Vec2[T]) T {
	return a[0]*b[0] + a[1]*b[1]
}

// Cross returns the 3D cross product of a and b embedded in the z-plane:
// the x and y components are zero and z holds the scalar 2D cross product.
func (a Vec2[T]) Cross(b Vec2[T]) Vec3[T] {
	return Vec3[T]{0, 0, a[0]*b[1] - a[1]*b[0]}
}

// Length returns |a|.
func (a Vec2[T]) Length() T {
	return sqrt(a[0]*a[0] + a[1]*a[1])
}

// LengthSq returns |a|^2.
func (a Vec2[T]) LengthSq() T {
	return a[0]*a[0] + a[1]*a[1]
}

// Distance returns |a - b|.
func (a Vec2[T]) Distance(b Vec2[T]) T {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return sqrt(dx*dx + dy*dy)
}

// DistanceSq returns |a - b|^2.
func (a Vec2[T]) DistanceSq(b Vec2[T]) T {
	dx, dy := a[0]-b[0], a[1]-b[1]
	return dx*dx + dy*dy
}

// Normalize returns a scaled to unit length, or the zero vector when |a| is
// below 1e-5.
func (a Vec2[T]) Normalize() Vec2[T] {
	l := a.Length()
	if l > 1e-5 {
		return Vec2[T]{a[0] / l, a[1] / l}
	}
	return Vec2[T]{}
}

// SetLength returns a scaled to length l.
func (a Vec2[T]) SetLength(l T) Vec2[T] {
	return a.Normalize().Scale(l)
}

// Truncate returns a shortened to length maxLen if it is longer, else a.
func (a Vec2[T]) Truncate(maxLen T) Vec2[T] {
	if a.Length() > maxLen {
		return a.SetLength(maxLen)
	}
	return a
}

// Midpoint returns the point halfway between a and b.
func (a Vec2[T]) Midpoint(b Vec2[T]) Vec2[T] {
	return a.Lerp(b, 0.5)
}

// Angle returns the angle between a and b in radians.
func (a Vec2[T]) Angle(b Vec2[T]) T {
	mag := a.Length() * b.Length()
	var cosine T
	if mag != 0 {
		cosine = clamp(a.Dot(b)/mag, -1, 1)
	}
	return acos(cosine)
}

// Equals reports exact componentwise equality.
func (a Vec2[T]) Equals(b Vec2[T]) bool {
	return a[0] == b[0] && a[1] == b[1]
}

// EqualsApprox reports componentwise equality within the package epsilon.
func (a Vec2[T]) EqualsApprox(b Vec2[T]) bool {
	eps := T(epsilon)
	return abs(a[0]-b[0]) < eps && abs(a[1]-b[1]) < eps
}

// Rotate returns a rotated by rad radians around center.
func (a Vec2[T]) Rotate(center Vec2[T], rad T) Vec2[T] {
	px, py := a[0]-center[0], a[1]-center[1]
	s, c := sincos(rad)
	return Vec2[T]{
		px*c - py*s + center[0],
		px*s + py*c + center[1],
	}
}

// TransformMat3 transforms a as a point (implicit z = 1) by m.
func (a Vec2[T]) TransformMat3(m Mat3[T]) Vec2[T] {
	x, y := a[0], a[1]
	return Vec2[T]{
		m[0]*x + m[4]*y + m[8],
		m[1]*x + m[5]*y + m[9],
	}
}

// TransformMat4 transforms a as a point (implicit z = 0, w = 1) by m.
func (a Vec2[T]) TransformMat4(m Mat4[T]) Vec2[T] {
	x, y := a[0], a[1]
	return Vec2[T]{
		m[0]*x + m[4]*y + m[12],
		m[1]*x + m[5]*y + m[13],
	}
}

// Vec2Random returns a random vector of length scale.
func Vec2Random[T Float](scale T) Vec2[T] {
	angle := rand.Float64() * 2 * math.Pi
	s, c := sincos(T(angle))
	return Vec2[T]{c * scale, s * scale}
}

package vmath

// Add returns a + b.
func (a Vec4[T]) Add(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] + b[0], a[1] + b[1], a[2] + b[2], a[3] + b[3]}
}

// AddScaled returns a + b*scale.
func (a Vec4[T]) AddScaled(b Vec4[T], scale T) Vec4[T] {
	return Vec4[T]{
		a[0] + b[0]*scale,
		a[1] + b[1]*scale,
		a[2] + b[2]*scale,
		a[3] + b[3]*scale,
	}
}

// Sub returns a - b.
func (a Vec4[T]) Sub(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] - b[0], a[1] - b[1], a[2] - b[2], a[3] - b[3]}
}

// Mul returns the componentwise product a * b.
func (a Vec4[T]) Mul(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] * b[0], a[1] * b[1], a[2] * b[2], a[3] * b[3]}
}

// Div returns the componentwise quotient a / b.
func (a Vec4[T]) Div(b Vec4[T]) Vec4[T] {
	return Vec4[T]{a[0] / b[0], a[1] / b[1], a[2] / b[2], a[3] / b[3]}
}

// Scale returns a * s.
func (a Vec4[T]) Scale(s T) Vec4[T] {
	return Vec4[T]{a[0] * s, a[1] * s, a[2] * s, a[3] * s}
}

// DivScale returns a / s.
func (a Vec4[T]) DivScale(s T) Vec4[T] {
	return Vec4[T]{a[0] / s, a[1] / s, a[2] / s, a[3] / s}
}

// Inverse returns the componentwise reciprocal 1 / a.
func (a Vec4[T]) Inverse() Vec4[T] {
	return Vec4[T]{1 / a[0], 1 / a[1], 1 / a[2], 1 / a[3]}
}

// Negate returns -a.
func (a Vec4[T]) Negate() Vec4[T] {
	return Vec4[T]{-a[0], -a[1], -a[2], -a[3]}
}

// Ceil returns a with each component rounded up.
func (a Vec4[T]) Ceil() Vec4[T] {
	return Vec4[T]{ceil(a[0]), ceil(a[1]), ceil(a[2]), ceil(a[3])}
}

// Floor returns a with each component rounded down.
func (a Vec4[T]) Floor() Vec4[T] {
	return Vec4[T]{floor(a[0]), floor(a[1]), floor(a[2]), floor(a[3])}
}

// Round returns a with each component rounded to the nearest integer.
func (a Vec4[T]) Round() Vec4[T] {
	return Vec4[T]{round(a[0]), round(a[1]), round(a[2]), round(a[3])}
}

// Clamp limits each component of a to [lo, hi].
func (a Vec4[T]) Clamp(lo, hi T) Vec4[T] {
	return Vec4[T]{
		clamp(a[0], lo, hi),
		clamp(a[1], lo, hi),
		clamp(a[2], lo, hi),
		clamp(a[3], lo, hi),
	}
}

// Min returns the componentwise minimum of a and b.
func (a Vec4[T]) Min(b Vec4[T]) Vec4[T] {
	return Vec4[T]{min(a[0], b[0]), min(a[1], b[1]), min(a[2], b[2]), min(a[3], b[3])}
}

// Max returns the componentwise maximum of a and b.
func (a Vec4[T]) Max(b Vec4[T]) Vec4[T] {
	return Vec4[T]{max(a[0], b[0]), max(a[1], b[1]), max(a[2], b[2]), max(a[3], b[3])}
}

// Lerp interpolates a -> b by t. t is not clamped.
func (a Vec4[T]) Lerp(b Vec4[T], t T) Vec4[T] {
	return Vec4[T]{
		a[0] + (b[0]-a[0])*t,
		a[1] + (b[1]-a[1])*t,
		a[2] + (b[2]-a[2])*t,
		a[3] + (b[3]-a[3])*t,
	}
}

// LerpV interpolates a -> b with a per-component interpolant.
func (a Vec4[T]) LerpV(b, t Vec4[T]) Vec4[T] {
	return Vec4[T]{
		a[0] + (b[0]-a[0])*t[0],
		a[1] + (b[1]-a[1])*t[1],
		a[2] + (b[2]-a[2])*t[2],
		a[3] + (b[3]-a[3])*t[3],
	}
}

// Dot returns a . b.
func (a Vec4[T]) Dot(b Vec4[T]) T {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] + a[3]*b[3]
}

// Length returns |a|.
func (a Vec4[T]) Length() T {
	return sqrt(a.LengthSq())
}

// LengthSq returns |a|^2.
func (a Vec4[T]) LengthSq() T {
	return a[0]*a[0] + a[1]*a[1] + a[2]*a[2] + a[3]*a[3]
}

// Distance returns |a - b|.
func (a Vec4[T]) Distance(b Vec4[T]) T {
	return sqrt(a.DistanceSq(b))
}

// DistanceSq returns |a - b|^2.
func (a Vec4[T]) DistanceSq(b Vec4[T]) T {
	dx, dy, dz, dw := a[0]-b[0], a[1]-b[1], a[2]-b[2], a[3]-b[3]
	return dx*dx + dy*dy + dz*dz + dw*dw
}

// Normalize returns a scaled to unit length, or the zero vector when |a| is
// below 1e-5.
func (a Vec4[T]) Normalize() Vec4[T] {
	l := a.Length()
	if l > 1e-5 {
		return Vec4[T]{a[0] / l, a[1] / l, a[2] / l, a[3] / l}
	}
	return Vec4[T]{}
}

// SetLength returns a scaled to length l.
func (a Vec4[T]) SetLength(l T) Vec4[T] {
	return a.Normalize().Scale(l)
}

// Truncate returns a shortened to length maxLen if it is longer, else a.
func (a Vec4[T]) Truncate(maxLen T) Vec4[T] {
	if a.Length() > maxLen {
		return a.SetLength(maxLen)
	}
	return a
}

// Midpoint returns the point halfway between a and b.
func (a Vec4[T]) Midpoint(b Vec4[T]) Vec4[T] {
	return a.Lerp(b, 0.5)
}

// Equals reports exact componentwise equality.
func (a Vec4[T]) Equals(b Vec4[T]) bool {
	return a[0] == b[0] && a[1] == b[1] && a[2] == b[2] && a[3] == b[3]
}

// EqualsApprox reports componentwise equality within the package epsilon.
func (a Vec4[T]) EqualsApprox(b Vec4[T]) bool {
	eps := T(epsilon)
	return abs(a[0]-b[0]) < eps && abs(a[1]-b[1]) < eps &&
		abs(a[2]-b[2]) < eps && abs(a[3]-b[3]) < eps
}

// TransformMat4 returns a transformed by m.
func (a Vec4[T]) TransformMat4(m Mat4[T]) Vec4[T] {
	x, y, z, w := a[0], a[1], a[2], a[3]
	return Vec4[T]{
		m[0]*x + m[4]*y + m[8]*z + m[12]*w,
		m[1]*x + m[5]*y + m[9]*z + m[13]*w,
		m[2]*x + m[6]*y + m[10]*z + m[14]*w,
		m[3]*x + m[7]*y + m[11]*z + m[15]*w,
	}
}

package vmath

import "math"

// epsilon is the tolerance used by every approximate-equality check in this
// package. Last write wins; the package assumes single-goroutine mutation.
var epsilon = 1e-6

// SetEpsilon replaces the approximate-equality tolerance and returns the
// previous value so callers can restore it.
func SetEpsilon(eps float64) (prev float64) {
	prev = epsilon
	epsilon = eps
	return prev
}

// Epsilon returns the current approximate-equality tolerance.
func Epsilon() float64 {
	return epsilon
}

// DegToRad converts degrees to radians.
func DegToRad[T Float](deg T) T {
	return deg * T(math.Pi) / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg[T Float](rad T) T {
	return rad * 180 / T(math.Pi)
}

// Lerp linearly interpolates between a and b. t is not clamped; values
// outside [0, 1] extrapolate.
func Lerp[T Float](a, b, t T) T {
	return a + (b-a)*t
}

// InverseLerp computes the interpolant t such that Lerp(a, b, t) == v. When
// the range collapses below epsilon it returns a instead of dividing by a
// near-zero difference.
func InverseLerp[T Float](a, b, v T) T {
	d := b - a
	if abs(d) < T(epsilon) {
		return a
	}
	return (v - a) / d
}

// EuclideanModulo returns the remainder of n/m with the sign of m, so the
// result is non-negative for positive m (unlike math.Mod).
func EuclideanModulo[T Float](n, m T) T {
	return T(math.Mod(math.Mod(float64(n), float64(m))+float64(m), float64(m)))
}

func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

func clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

func sin[T Float](v T) T {
	return T(math.Sin(float64(v)))
}

func cos[T Float](v T) T {
	return T(math.Cos(float64(v)))
}

func sincos[T Float](v T) (T, T) {
	s, c := math.Sincos(float64(v))
	return T(s), T(c)
}

func tan[T Float](v T) T {
	return T(math.Tan(float64(v)))
}

func acos[T Float](v T) T {
	return T(math.Acos(float64(v)))
}

func ceil[T Float](v T) T {
	return T(math.Ceil(float64(v)))
}

func floor[T Float](v T) T {
	return T(math.Floor(float64(v)))
}

func round[T Float](v T) T {
	return T(math.Round(float64(v)))
}

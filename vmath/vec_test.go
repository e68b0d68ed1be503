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

import (
	"math"
	"testing"
)

func TestVec2Arithmetic(t *testing.T) {
	tests := []struct {
		name string
		op   func(a, b Vec2d) Vec2d
		a, b Vec2d
		want Vec2d
	}{
		{"add", Vec2d.Add, V2(1.0, 2.0), V2(2.0, 3.0), V2(3.0, 5.0)},
		{"sub", Vec2d.Sub, V2(5.0, 3.0), V2(2.0, 4.0), V2(3.0, -1.0)},
		{"mul", Vec2d.Mul, V2(2.0, 3.0), V2(4.0, 5.0), V2(8.0, 15.0)},
		{"div", Vec2d.Div, V2(8.0, 9.0), V2(2.0, 3.0), V2(4.0, 3.0)},
		{"min", Vec2d.Min, V2(1.0, 5.0), V2(2.0, 3.0), V2(1.0, 3.0)},
		{"max", Vec2d.Max, V2(1.0, 5.0), V2(2.0, 3.0), V2(2.0, 5.0)},
		{"midpoint", Vec2d.Midpoint, V2(0.0, 0.0), V2(2.0, 6.0), V2(1.0, 3.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.a, tt.b); !got.EqualsApprox(tt.want) {
				t.Errorf("%s(%v, %v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec2Scalars(t *testing.T) {
	a := V2(3.0, 4.0)
	if got := a.Length(); !approxEqual(got, 5.0, testEps64) {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := a.LengthSq(); !approxEqual(got, 25.0, testEps64) {
		t.Errorf("LengthSq() = %v, want 25", got)
	}
	if got := a.Dot(V2(2.0, 1.0)); !approxEqual(got, 10.0, testEps64) {
		t.Errorf("Dot() = %v, want 10", got)
	}
	if got := a.Distance(V2(0.0, 0.0)); !approxEqual(got, 5.0, testEps64) {
		t.Errorf("Distance() = %v, want 5", got)
	}
	if got := V2(1.0, 0.0).Angle(V2(0.0, 1.0)); !approxEqual(got, math.Pi/2, testEps64) {
		t.Errorf("Angle() = %v, want pi/2", got)
	}
}

func TestVec2Cross(t *testing.T) {
	got := V2(1.0, 0.0).Cross(V2(0.0, 1.0))
	if !got.EqualsApprox(V3(0.0, 0.0, 1.0)) {
		t.Errorf("Cross = %v, want (0, 0, 1)", got)
	}
	got = V2(0.0, 1.0).Cross(V2(1.0, 0.0))
	if !got.EqualsApprox(V3(0.0, 0.0, -1.0)) {
		t.Errorf("Cross = %v, want (0, 0, -1)", got)
	}
}

func TestVec2Rotate(t *testing.T) {
	tests := []struct {
		name   string
		p      Vec2d
		center Vec2d
		rad    float64
		want   Vec2d
	}{
		{"quarter turn about origin", V2(1.0, 0.0), V2(0.0, 0.0), math.Pi / 2, V2(0.0, 1.0)},
		{"half turn about origin", V2(1.0, 0.0), V2(0.0, 0.0), math.Pi, V2(-1.0, 0.0)},
		{"half turn about center", V2(2.0, 1.0), V2(1.0, 1.0), math.Pi, V2(0.0, 1.0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Rotate(tt.center, tt.rad); !got.EqualsApprox(tt.want) {
				t.Errorf("Rotate = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVec2Rounding(t *testing.T) {
	a := V2(1.4, -1.6)
	if got := a.Ceil(); !got.Equals(V2(2.0, -1.0)) {
		t.Errorf("Ceil = %v", got)
	}
	if got := a.Floor(); !got.Equals(V2(1.0, -2.0)) {
		t.Errorf("Floor = %v", got)
	}
	if got := a.Round(); !got.Equals(V2(1.0, -2.0)) {
		t.Errorf("Round = %v", got)
	}
	if got := V2(-2.0, 5.0).Clamp(0, 3); !got.Equals(V2(0.0, 3.0)) {
		t.Errorf("Clamp = %v", got)
	}
}

func TestVec3Cross(t *testing.T) {
	tests := []struct {
		name string
		a, b Vec3d
		want Vec3d
	}{
		{"x cross y", V3(1.0, 0, 0), V3(0.0, 1, 0), V3(0.0, 0, 1)},
		{"y cross z", V3(0.0, 1, 0), V3(0.0, 0, 1), V3(1.0, 0, 0)},
		{"z cross x", V3(0.0, 0, 1), V3(1.0, 0, 0), V3(0.0, 1, 0)},
		{"parallel", V3(2.0, 0, 0), V3(5.0, 0, 0), V3(0.0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Cross(tt.b); !got.EqualsApprox(tt.want) {
				t.Errorf("Cross(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestVec3NormalizeNearZero(t *testing.T) {
	if got := V3(1e-6, 1e-6, 1e-6).Normalize(); !got.Equals(V3(0.0, 0, 0)) {
		t.Errorf("Normalize near-zero = %v, want zero vector", got)
	}
	if got := (Vec3f{1e-6, 0, 0}).Normalize(); !got.Equals(Vec3f{}) {
		t.Errorf("Normalize near-zero float32 = %v, want zero vector", got)
	}
}

func TestVec3NormalizeIdempotent(t *testing.T) {
	vs := []Vec3d{
		V3(1.0, 2.0, 3.0),
		V3(-4.0, 0.001, 17.0),
		V3(0.0, 0.0, 42.0),
	}
	for _, v := range vs {
		n := v.Normalize()
		if !approxEqual(n.Length(), 1.0, testEps64) {
			t.Errorf("Normalize(%v).Length() = %v", v, n.Length())
		}
		if nn := n.Normalize(); !nn.EqualsApprox(n) {
			t.Errorf("Normalize not idempotent for %v: %v vs %v", v, nn, n)
		}
	}
}

func TestVec3SetLengthTruncate(t *testing.T) {
	v := V3(3.0, 0.0, 4.0)
	if got := v.SetLength(10); !approxEqual(got.Length(), 10.0, testEps64) {
		t.Errorf("SetLength(10).Length() = %v", got.Length())
	}
	if got := v.Truncate(4); !approxEqual(got.Length(), 4.0, testEps64) {
		t.Errorf("Truncate(4).Length() = %v", got.Length())
	}
	if got := v.Truncate(6); !got.Equals(v) {
		t.Errorf("Truncate(6) changed a shorter vector: %v", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a, b := V3(0.0, 0.0, 0.0), V3(10.0, 20.0, -30.0)
	if got := a.Lerp(b, 0.5); !got.EqualsApprox(V3(5.0, 10.0, -15.0)) {
		t.Errorf("Lerp(0.5) = %v", got)
	}
	// Unclamped: t outside [0,1] extrapolates.
	if got := a.Lerp(b, 2.0); !got.EqualsApprox(V3(20.0, 40.0, -60.0)) {
		t.Errorf("Lerp(2) = %v", got)
	}
	if got := a.LerpV(b, V3(0.0, 0.5, 1.0)); !got.EqualsApprox(V3(0.0, 10.0, -30.0)) {
		t.Errorf("LerpV = %v", got)
	}
}

func TestVec3RotateAboutAxes(t *testing.T) {
	o := V3(0.0, 0.0, 0.0)
	if got := V3(0.0, 1.0, 0.0).RotateX(o, math.Pi/2); !got.EqualsApprox(V3(0.0, 0.0, 1.0)) {
		t.Errorf("RotateX = %v, want (0, 0, 1)", got)
	}
	if got := V3(0.0, 0.0, 1.0).RotateY(o, math.Pi/2); !got.EqualsApprox(V3(1.0, 0.0, 0.0)) {
		t.Errorf("RotateY = %v, want (1, 0, 0)", got)
	}
	if got := V3(1.0, 0.0, 0.0).RotateZ(o, math.Pi/2); !got.EqualsApprox(V3(0.0, 1.0, 0.0)) {
		t.Errorf("RotateZ = %v, want (0, 1, 0)", got)
	}

	// Rotation about a center that is not the origin.
	c := V3(1.0, 1.0, 1.0)
	if got := V3(2.0, 1.0, 1.0).RotateZ(c, math.Pi); !got.EqualsApprox(V3(0.0, 1.0, 1.0)) {
		t.Errorf("RotateZ about center = %v, want (0, 1, 1)", got)
	}
}

func TestVec3TransformMat4(t *testing.T) {
	p := V3(1.0, 2.0, 3.0)

	m := Mat4Translation(V3(10.0, 20.0, 30.0))
	if got := p.TransformMat4(m); !got.EqualsApprox(V3(11.0, 22.0, 33.0)) {
		t.Errorf("translation transform = %v", got)
	}

	// Upper 3x3 ignores translation.
	if got := p.TransformMat4Upper3x3(m); !got.EqualsApprox(p) {
		t.Errorf("upper3x3 transform = %v, want %v", got, p)
	}

	// Perspective divide: w = 2 halves the components.
	w2 := Mat4Identity[float64]()
	w2[15] = 2
	if got := p.TransformMat4(w2); !got.EqualsApprox(V3(0.5, 1.0, 1.5)) {
		t.Errorf("perspective divide = %v", got)
	}
}

func TestVec3TransformQuatMatchesMatrix(t *testing.T) {
	q := QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.7)
	m := Mat4FromQuat(q)
	for _, v := range []Vec3d{V3(1.0, 0, 0), V3(1.0, 2, 3), V3(-4.0, 0.5, 2)} {
		qv := v.TransformQuat(q)
		mv := v.TransformMat4(m)
		if !qv.EqualsApprox(mv) {
			t.Errorf("TransformQuat(%v) = %v, TransformMat4 = %v", v, qv, mv)
		}
	}
}

func TestVec2TransformMat3(t *testing.T) {
	m := Mat3Translation(V2(3.0, 4.0))
	if got := V2(1.0, 2.0).TransformMat3(m); !got.EqualsApprox(V2(4.0, 6.0)) {
		t.Errorf("TransformMat3 = %v, want (4, 6)", got)
	}

	r := Mat3Rotation(math.Pi / 2)
	if got := V2(1.0, 0.0).TransformMat3(r); !got.EqualsApprox(V2(0.0, 1.0)) {
		t.Errorf("rotation transform = %v, want (0, 1)", got)
	}
}

func TestVec4TransformMat4(t *testing.T) {
	m := Mat4Translation(V3(1.0, 2.0, 3.0))
	// A direction (w = 0) is unaffected by translation.
	if got := V4(1.0, 0.0, 0.0, 0.0).TransformMat4(m); !got.EqualsApprox(V4(1.0, 0.0, 0.0, 0.0)) {
		t.Errorf("direction transform = %v", got)
	}
	// A point (w = 1) is translated.
	if got := V4(0.0, 0.0, 0.0, 1.0).TransformMat4(m); !got.EqualsApprox(V4(1.0, 2.0, 3.0, 1.0)) {
		t.Errorf("point transform = %v", got)
	}
}

func TestVec4Basics(t *testing.T) {
	a := V4(1.0, 2.0, 3.0, 4.0)
	b := V4(4.0, 3.0, 2.0, 1.0)
	if got := a.Add(b); !got.Equals(V4(5.0, 5.0, 5.0, 5.0)) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Dot(b); !approxEqual(got, 20.0, testEps64) {
		t.Errorf("Dot = %v, want 20", got)
	}
	if got := a.AddScaled(b, 2); !got.Equals(V4(9.0, 8.0, 7.0, 6.0)) {
		t.Errorf("AddScaled = %v", got)
	}
	if got := V4(2.0, 0.0, 0.0, 0.0).Normalize(); !got.EqualsApprox(V4(1.0, 0.0, 0.0, 0.0)) {
		t.Errorf("Normalize = %v", got)
	}
}

func TestVecInverseNegate(t *testing.T) {
	if got := V3(2.0, 4.0, 0.5).Inverse(); !got.EqualsApprox(V3(0.5, 0.25, 2.0)) {
		t.Errorf("Inverse = %v", got)
	}
	if got := V3(1.0, -2.0, 3.0).Negate(); !got.Equals(V3(-1.0, 2.0, -3.0)) {
		t.Errorf("Negate = %v", got)
	}
}

func TestVecRandom(t *testing.T) {
	for i := 0; i < 10; i++ {
		if got := Vec2Random[float64](3).Length(); !approxEqual(got, 3.0, 1e-9) {
			t.Fatalf("Vec2Random length = %v, want 3", got)
		}
		if got := Vec3Random[float64](2).Length(); !approxEqual(got, 2.0, 1e-9) {
			t.Fatalf("Vec3Random length = %v, want 2", got)
		}
	}
}

func TestVecFloat32(t *testing.T) {
	// The same surface instantiates at float32.
	a := V3[float32](1, 2, 2)
	if got := a.Length(); !approxEqual(got, 3, testEps32) {
		t.Errorf("float32 Length = %v, want 3", got)
	}
	if got := a.Add(V3[float32](1, 1, 1)); !got.Equals(V3[float32](2, 3, 3)) {
		t.Errorf("float32 Add = %v", got)
	}
}

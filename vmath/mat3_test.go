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

func TestMat3IdentityLayout(t *testing.T) {
	m := Mat3Identity[float64]()
	want := Mat3d{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
	}
	if m != want {
		t.Errorf("Mat3Identity = %v", m)
	}
}

func TestMat3TranslationLayout(t *testing.T) {
	// Translation lives in the third column: elements 8 and 9.
	m := Mat3Translation(V2(3.0, 4.0))
	if m[8] != 3 || m[9] != 4 {
		t.Errorf("translation column = (%v, %v), want (3, 4)", m[8], m[9])
	}
	if got := m.GetTranslation(); !got.Equals(V2(3.0, 4.0)) {
		t.Errorf("GetTranslation = %v", got)
	}
}

func TestMat3SetTranslation(t *testing.T) {
	m := Mat3Rotation(0.3).SetTranslation(V2(7.0, 8.0))
	if got := m.GetTranslation(); !got.Equals(V2(7.0, 8.0)) {
		t.Errorf("GetTranslation = %v", got)
	}
	// The rotation part survives.
	r := Mat3Rotation(0.3)
	for c := 0; c < 2; c++ {
		for r0 := 0; r0 < 2; r0++ {
			i := c*4 + r0
			if !approxEqual(m[i], r[i], testEps64) {
				t.Errorf("element %d changed: %v vs %v", i, m[i], r[i])
			}
		}
	}
}

func TestMat3Axes(t *testing.T) {
	m := Mat3Identity[float64]().
		SetAxis(V2(1.0, 2.0), 0).
		SetAxis(V2(3.0, 4.0), 1)
	if got := m.GetAxis(0); !got.Equals(V2(1.0, 2.0)) {
		t.Errorf("GetAxis(0) = %v", got)
	}
	if got := m.GetAxis(1); !got.Equals(V2(3.0, 4.0)) {
		t.Errorf("GetAxis(1) = %v", got)
	}
}

func TestMat3MulIdentity(t *testing.T) {
	id := Mat3Identity[float64]()
	m := Mat3Rotation(0.5).Translate(V2(2.0, 3.0)).Scale(V2(1.5, 0.5))
	if got := m.Mul(id); !got.EqualsApprox(m) {
		t.Errorf("m * I = %v, want %v", got, m)
	}
	if got := id.Mul(m); !got.EqualsApprox(m) {
		t.Errorf("I * m = %v, want %v", got, m)
	}
}

func TestMat3ComposeMatchesMul(t *testing.T) {
	m := Mat3Rotation(0.4)
	if got, want := m.Translate(V2(1.0, 2.0)), m.Mul(Mat3Translation(V2(1.0, 2.0))); !got.EqualsApprox(want) {
		t.Errorf("Translate = %v, want %v", got, want)
	}
	if got, want := m.Rotate(0.3), m.Mul(Mat3Rotation(0.3)); !got.EqualsApprox(want) {
		t.Errorf("Rotate = %v, want %v", got, want)
	}
	if got, want := m.Scale(V2(2.0, 3.0)), m.Mul(Mat3Scaling(V2(2.0, 3.0))); !got.EqualsApprox(want) {
		t.Errorf("Scale = %v, want %v", got, want)
	}
	if got, want := m.UniformScale(2), m.Mul(Mat3UniformScaling[float64](2)); !got.EqualsApprox(want) {
		t.Errorf("UniformScale = %v, want %v", got, want)
	}
}

func TestMat3InverseRoundTrip(t *testing.T) {
	ms := []Mat3d{
		Mat3Rotation(0.7),
		Mat3Translation(V2(3.0, -2.0)),
		Mat3Rotation(1.2).Translate(V2(5.0, 1.0)).Scale(V2(2.0, 0.25)),
	}
	id := Mat3Identity[float64]()
	for i, m := range ms {
		inv := m.Inverse()
		if got := m.Mul(inv); !got.EqualsApprox(id) {
			t.Errorf("case %d: m * m^-1 = %v", i, got)
		}
		if got := inv.Inverse(); !got.EqualsApprox(m) {
			t.Errorf("case %d: (m^-1)^-1 = %v, want %v", i, got, m)
		}
	}
}

func TestMat3Determinant(t *testing.T) {
	if got := Mat3Identity[float64]().Determinant(); !approxEqual(got, 1.0, testEps64) {
		t.Errorf("det(I) = %v", got)
	}
	if got := Mat3Rotation(0.9).Determinant(); !approxEqual(got, 1.0, testEps64) {
		t.Errorf("det(rotation) = %v, want 1", got)
	}
	if got := Mat3Scaling(V2(2.0, 3.0)).Determinant(); !approxEqual(got, 6.0, testEps64) {
		t.Errorf("det(scale 2,3) = %v, want 6", got)
	}
}

func TestMat3Transpose(t *testing.T) {
	m := M3(
		1.0, 2, 3,
		4, 5, 6,
		7, 8, 9,
	)
	mt := m.Transpose()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if mt[c*4+r] != m[r*4+c] {
				t.Errorf("transpose (%d,%d) = %v, want %v", r, c, mt[c*4+r], m[r*4+c])
			}
		}
	}
	if got := mt.Transpose(); !got.Equals(m) {
		t.Errorf("double transpose = %v", got)
	}
}

func TestMat3GetScaling(t *testing.T) {
	m := Mat3Rotation(0.5).Scale(V2(3.0, 4.0))
	if got := m.GetScaling(); !got.EqualsApprox(V2(3.0, 4.0)) {
		t.Errorf("GetScaling = %v, want (3, 4)", got)
	}
}

func TestMat3FromQuat(t *testing.T) {
	q := QuatFromAxisAngle(V3(0.0, 0.0, 1.0), math.Pi/2)
	m := Mat3FromQuat(q)
	// A z-axis quarter turn maps x to y in the upper 2x2.
	if got := V2(1.0, 0.0).TransformMat3(m); !got.EqualsApprox(V2(0.0, 1.0)) {
		t.Errorf("rotated x = %v, want (0, 1)", got)
	}
}

func TestMat3FromMat4(t *testing.T) {
	m4 := Mat4RotationZ[float64](0.6).Translate(V3(9.0, 9.0, 9.0))
	m3 := Mat3FromMat4(m4)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if m3[c*4+r] != m4[c*4+r] {
				t.Errorf("(%d,%d) = %v, want %v", r, c, m3[c*4+r], m4[c*4+r])
			}
		}
	}
}

func TestMat3EqualsIgnoresPadding(t *testing.T) {
	a := Mat3Identity[float64]()
	b := a
	b[3], b[7], b[11] = 99, 99, 99
	if !a.Equals(b) {
		t.Error("Equals should ignore padding elements")
	}
	if !a.EqualsApprox(b) {
		t.Error("EqualsApprox should ignore padding elements")
	}
	b[0] = 2
	if a.Equals(b) {
		t.Error("Equals missed a real element difference")
	}
}

func TestMat3Negate(t *testing.T) {
	m := M3(
		1.0, -2, 3,
		-4, 5, -6,
		7, -8, 9,
	)
	n := m.Negate()
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if n[c*4+r] != -m[c*4+r] {
				t.Errorf("(%d,%d) = %v", r, c, n[c*4+r])
			}
		}
	}
}

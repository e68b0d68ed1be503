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

func TestMat4TranslationLayout(t *testing.T) {
	// Column-major: translation occupies elements 12, 13, 14.
	m := Mat4Translation(V3(1.0, 2.0, 3.0))
	want := Mat4d{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		1, 2, 3, 1,
	}
	if m != want {
		t.Errorf("Mat4Translation = %v, want %v", m, want)
	}
	if got := m.GetTranslation(); !got.Equals(V3(1.0, 2.0, 3.0)) {
		t.Errorf("GetTranslation = %v", got)
	}
}

func TestMat4MulIdentity(t *testing.T) {
	id := Mat4Identity[float64]()
	m := Mat4RotationY(0.8).Translate(V3(1.0, 2.0, 3.0)).Scale(V3(2.0, 1.0, 0.5))
	if got := m.Mul(id); !got.EqualsApprox(m) {
		t.Errorf("m * I != m: %v", got)
	}
	if got := id.Mul(m); !got.EqualsApprox(m) {
		t.Errorf("I * m != m: %v", got)
	}
}

func TestMat4MulOrder(t *testing.T) {
	// T * R applied to a point rotates first, then translates.
	tr := Mat4Translation(V3(10.0, 0.0, 0.0))
	rot := Mat4RotationZ(math.Pi / 2)
	p := V3(1.0, 0.0, 0.0)
	if got := p.TransformMat4(tr.Mul(rot)); !got.EqualsApprox(V3(10.0, 1.0, 0.0)) {
		t.Errorf("(T*R)p = %v, want (10, 1, 0)", got)
	}
	if got := p.TransformMat4(rot.Mul(tr)); !got.EqualsApprox(V3(0.0, 11.0, 0.0)) {
		t.Errorf("(R*T)p = %v, want (0, 11, 0)", got)
	}
}

func TestMat4ComposeMatchesMul(t *testing.T) {
	m := Mat4RotationX(0.3).Translate(V3(1.0, 1.0, 1.0))
	cases := []struct {
		name string
		got  Mat4d
		want Mat4d
	}{
		{"Translate", m.Translate(V3(2.0, 3.0, 4.0)), m.Mul(Mat4Translation(V3(2.0, 3.0, 4.0)))},
		{"RotateX", m.RotateX(0.5), m.Mul(Mat4RotationX(0.5))},
		{"RotateY", m.RotateY(0.5), m.Mul(Mat4RotationY(0.5))},
		{"RotateZ", m.RotateZ(0.5), m.Mul(Mat4RotationZ(0.5))},
		{"Scale", m.Scale(V3(2.0, 3.0, 4.0)), m.Mul(Mat4Scaling(V3(2.0, 3.0, 4.0)))},
		{"UniformScale", m.UniformScale(3), m.Mul(Mat4UniformScaling[float64](3))},
		{"AxisRotate", m.AxisRotate(V3(1.0, 2.0, 3.0), 0.7), m.Mul(AxisRotation(V3(1.0, 2.0, 3.0), 0.7))},
	}
	for _, tt := range cases {
		if !tt.got.EqualsApprox(tt.want) {
			t.Errorf("%s: %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestMat4AxisRotationMatchesFixedAxes(t *testing.T) {
	rad := 0.9
	if got := AxisRotation(V3(1.0, 0.0, 0.0), rad); !got.EqualsApprox(Mat4RotationX(rad)) {
		t.Errorf("x axis: %v", got)
	}
	if got := AxisRotation(V3(0.0, 2.0, 0.0), rad); !got.EqualsApprox(Mat4RotationY(rad)) {
		t.Errorf("y axis (unnormalized input): %v", got)
	}
	if got := AxisRotation(V3(0.0, 0.0, 1.0), rad); !got.EqualsApprox(Mat4RotationZ(rad)) {
		t.Errorf("z axis: %v", got)
	}
}

func TestMat4InverseRoundTrip(t *testing.T) {
	ms := []Mat4d{
		Mat4RotationX(0.4),
		Mat4Translation(V3(5.0, -3.0, 2.0)),
		Mat4RotationY(1.1).Translate(V3(2.0, 0.5, -7.0)).Scale(V3(2.0, 4.0, 0.5)),
		Perspective(math.Pi/3, 16.0/9.0, 0.1, 100.0),
	}
	id := Mat4Identity[float64]()
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

func TestMat4Determinant(t *testing.T) {
	if got := Mat4Identity[float64]().Determinant(); !approxEqual(got, 1.0, testEps64) {
		t.Errorf("det(I) = %v", got)
	}
	if got := Mat4RotationY(0.7).Determinant(); !approxEqual(got, 1.0, testEps64) {
		t.Errorf("det(rotation) = %v", got)
	}
	if got := Mat4Scaling(V3(2.0, 3.0, 4.0)).Determinant(); !approxEqual(got, 24.0, testEps64) {
		t.Errorf("det(scale) = %v, want 24", got)
	}
}

func TestPerspective(t *testing.T) {
	fovY, aspect := math.Pi/2, 2.0
	zNear, zFar := 1.0, 11.0
	m := Perspective(fovY, aspect, zNear, zFar)

	// A point on the near plane maps to depth 0, on the far plane to 1.
	near := V3(0.0, 0.0, -zNear).TransformMat4(m)
	if !approxEqual(near[2], 0.0, testEps64) {
		t.Errorf("near depth = %v, want 0", near[2])
	}
	far := V3(0.0, 0.0, -zFar).TransformMat4(m)
	if !approxEqual(far[2], 1.0, testEps64) {
		t.Errorf("far depth = %v, want 1", far[2])
	}

	// fovY of pi/2 puts y = |z| on the frustum edge.
	edge := V3(0.0, 5.0, -5.0).TransformMat4(m)
	if !approxEqual(edge[1], 1.0, testEps64) {
		t.Errorf("edge y = %v, want 1", edge[1])
	}
}

func TestPerspectiveInfiniteFar(t *testing.T) {
	m := Perspective(math.Pi/2, 1.0, 0.5, math.Inf(1))
	if !approxEqual(m[10], -1.0, testEps64) || !approxEqual(m[14], -0.5, testEps64) {
		t.Errorf("infinite far plane: m[10] = %v, m[14] = %v", m[10], m[14])
	}
	// Depth still starts at 0 on the near plane and approaches 1.
	near := V3(0.0, 0.0, -0.5).TransformMat4(m)
	if !approxEqual(near[2], 0.0, testEps64) {
		t.Errorf("near depth = %v", near[2])
	}
	distant := V3(0.0, 0.0, -1e9).TransformMat4(m)
	if !approxEqual(distant[2], 1.0, 1e-6) {
		t.Errorf("distant depth = %v, want ~1", distant[2])
	}
}

func TestOrtho(t *testing.T) {
	m := Ortho(-2.0, 2.0, -1.0, 1.0, 0.0, 10.0)
	if got := V3(-2.0, -1.0, 0.0).TransformMat4(m); !got.EqualsApprox(V3(-1.0, -1.0, 0.0)) {
		t.Errorf("near corner = %v", got)
	}
	if got := V3(2.0, 1.0, -10.0).TransformMat4(m); !got.EqualsApprox(V3(1.0, 1.0, 1.0)) {
		t.Errorf("far corner = %v", got)
	}
}

func TestFrustumMatchesPerspective(t *testing.T) {
	fovY, aspect := math.Pi/3, 1.5
	zNear, zFar := 0.5, 50.0
	top := math.Tan(fovY/2) * zNear
	right := top * aspect
	f := Frustum(-right, right, -top, top, zNear, zFar)
	p := Perspective(fovY, aspect, zNear, zFar)
	if !f.EqualsApprox(p) {
		t.Errorf("Frustum = %v, want %v", f, p)
	}
}

func TestLookAt(t *testing.T) {
	eye := V3(0.0, 0.0, 5.0)
	m := LookAt(eye, V3(0.0, 0.0, 0.0), V3(0.0, 1.0, 0.0))
	// The eye goes to the origin in view space.
	if got := eye.TransformMat4(m); !got.EqualsApprox(V3(0.0, 0.0, 0.0)) {
		t.Errorf("eye in view space = %v", got)
	}
	// A point between eye and target lands on the -z axis.
	if got := V3(0.0, 0.0, 2.0).TransformMat4(m); !got.EqualsApprox(V3(0.0, 0.0, -3.0)) {
		t.Errorf("forward point = %v, want (0, 0, -3)", got)
	}
}

func TestCameraAimInverseOfLookAt(t *testing.T) {
	eye, target, up := V3(3.0, 4.0, 5.0), V3(0.0, 1.0, 0.0), V3(0.0, 1.0, 0.0)
	view := LookAt(eye, target, up)
	cam := CameraAim(eye, target, up)
	if got := cam.Mul(view); !got.EqualsApprox(Mat4Identity[float64]()) {
		t.Errorf("CameraAim * LookAt = %v, want identity", got)
	}
}

func TestAim(t *testing.T) {
	// Aim points +z at the target.
	m := Aim(V3(0.0, 0.0, 0.0), V3(0.0, 0.0, 10.0), V3(0.0, 1.0, 0.0))
	if got := V3(0.0, 0.0, 1.0).TransformMat4(m); !got.EqualsApprox(V3(0.0, 0.0, 1.0)) {
		t.Errorf("aimed +z = %v", got)
	}
	m = Aim(V3(0.0, 0.0, 0.0), V3(10.0, 0.0, 0.0), V3(0.0, 1.0, 0.0))
	if got := V3(0.0, 0.0, 1.0).TransformMat4(m); !got.EqualsApprox(V3(1.0, 0.0, 0.0)) {
		t.Errorf("aimed +z toward +x = %v", got)
	}
}

func TestMat4FromQuatRoundTrip(t *testing.T) {
	qs := []Quatd{
		QuatIdentity[float64](),
		QuatFromAxisAngle(V3(0.0, 1.0, 0.0), 0.8),
		QuatFromAxisAngle(V3(1.0, 1.0, 1.0).Normalize(), 2.5),
	}
	for i, q := range qs {
		m := Mat4FromQuat(q)
		back := QuatFromMat4(m)
		// q and -q encode the same rotation.
		if !back.EqualsApprox(q) && !back.EqualsApprox(q.Negate()) {
			t.Errorf("case %d: round trip = %v, want %v", i, back, q)
		}
	}
}

func TestMat4FromMat3(t *testing.T) {
	m3 := Mat3Rotation(0.4)
	m4 := Mat4FromMat3(m3)
	p := V2(1.0, 2.0)
	got := V3(p[0], p[1], 0.0).TransformMat4(m4)
	want := p.TransformMat3(m3)
	if !approxEqual(got[0], want[0], testEps64) || !approxEqual(got[1], want[1], testEps64) {
		t.Errorf("promoted transform = %v, want %v", got, want)
	}
	if m4[15] != 1 {
		t.Errorf("m4[15] = %v, want 1", m4[15])
	}
}

func TestMat4Axes(t *testing.T) {
	m := Mat4Identity[float64]().
		SetAxis(V3(1.0, 2.0, 3.0), 0).
		SetAxis(V3(4.0, 5.0, 6.0), 2)
	if got := m.GetAxis(0); !got.Equals(V3(1.0, 2.0, 3.0)) {
		t.Errorf("GetAxis(0) = %v", got)
	}
	if got := m.GetAxis(1); !got.Equals(V3(0.0, 1.0, 0.0)) {
		t.Errorf("GetAxis(1) = %v", got)
	}
	if got := m.GetAxis(2); !got.Equals(V3(4.0, 5.0, 6.0)) {
		t.Errorf("GetAxis(2) = %v", got)
	}
}

func TestMat4GetScaling(t *testing.T) {
	m := Mat4RotationY(0.3).Scale(V3(2.0, 3.0, 4.0))
	if got := m.GetScaling(); !got.EqualsApprox(V3(2.0, 3.0, 4.0)) {
		t.Errorf("GetScaling = %v", got)
	}
}

func TestMat4TransposeInvolution(t *testing.T) {
	m := Perspective(1.0, 1.3, 0.1, 10.0).Translate(V3(1.0, 2.0, 3.0))
	if got := m.Transpose().Transpose(); !got.Equals(m) {
		t.Errorf("double transpose = %v", got)
	}
}

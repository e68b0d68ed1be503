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
	"math/rand/v2"
	"testing"

	"gonum.org/v1/gonum/mat"
)

// denseFromMat4 converts a column-major Mat4 into a row-major gonum Dense.
func denseFromMat4(m Mat4d) *mat.Dense {
	d := mat.NewDense(4, 4, nil)
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			d.Set(r, c, m[c*4+r])
		}
	}
	return d
}

func denseFromMat3(m Mat3d) *mat.Dense {
	d := mat.NewDense(3, 3, nil)
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			d.Set(r, c, m[c*4+r])
		}
	}
	return d
}

func mat4ApproxDense(m Mat4d, d *mat.Dense, eps float64) bool {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if !approxEqual(m[c*4+r], d.At(r, c), eps) {
				return false
			}
		}
	}
	return true
}

func mat3ApproxDense(m Mat3d, d *mat.Dense, eps float64) bool {
	for c := 0; c < 3; c++ {
		for r := 0; r < 3; r++ {
			if !approxEqual(m[c*4+r], d.At(r, c), eps) {
				return false
			}
		}
	}
	return true
}

func randomMat4(rng *rand.Rand) Mat4d {
	return Mat4RotationX(rng.Float64()*2*math.Pi).
		RotateY(rng.Float64() * 2 * math.Pi).
		Translate(V3(rng.Float64()*10-5, rng.Float64()*10-5, rng.Float64()*10-5)).
		Scale(V3(rng.Float64()+0.5, rng.Float64()+0.5, rng.Float64()+0.5))
}

func TestMat4DeterminantOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		m := randomMat4(rng)
		want := mat.Det(denseFromMat4(m))
		if got := m.Determinant(); !approxEqual(got, want, 1e-9) {
			t.Fatalf("iter %d: Determinant = %v, gonum = %v", i, got, want)
		}
	}
}

func TestMat4InverseOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for i := 0; i < 20; i++ {
		m := randomMat4(rng)
		var want mat.Dense
		if err := want.Inverse(denseFromMat4(m)); err != nil {
			t.Fatalf("iter %d: gonum inverse: %v", i, err)
		}
		if got := m.Inverse(); !mat4ApproxDense(got, &want, 1e-8) {
			t.Fatalf("iter %d: Inverse = %v, gonum = %v", i, got, mat.Formatted(&want))
		}
	}
}

func TestMat4MulOracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for i := 0; i < 20; i++ {
		m, n := randomMat4(rng), randomMat4(rng)
		var want mat.Dense
		want.Mul(denseFromMat4(m), denseFromMat4(n))
		if got := m.Mul(n); !mat4ApproxDense(got, &want, 1e-9) {
			t.Fatalf("iter %d: Mul = %v, gonum = %v", i, got, mat.Formatted(&want))
		}
	}
}

func TestMat3Oracle(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for i := 0; i < 20; i++ {
		m := Mat3Rotation(rng.Float64() * 2 * math.Pi).
			Translate(V2(rng.Float64()*10-5, rng.Float64()*10-5)).
			Scale(V2(rng.Float64()+0.5, rng.Float64()+0.5))
		n := Mat3Rotation(rng.Float64() * 2 * math.Pi).
			Scale(V2(rng.Float64()+0.5, rng.Float64()+0.5))

		if got, want := m.Determinant(), mat.Det(denseFromMat3(m)); !approxEqual(got, want, 1e-9) {
			t.Fatalf("iter %d: Determinant = %v, gonum = %v", i, got, want)
		}

		var inv mat.Dense
		if err := inv.Inverse(denseFromMat3(m)); err != nil {
			t.Fatalf("iter %d: gonum inverse: %v", i, err)
		}
		if got := m.Inverse(); !mat3ApproxDense(got, &inv, 1e-8) {
			t.Fatalf("iter %d: Inverse = %v, gonum = %v", i, got, mat.Formatted(&inv))
		}

		var prod mat.Dense
		prod.Mul(denseFromMat3(m), denseFromMat3(n))
		if got := m.Mul(n); !mat3ApproxDense(got, &prod, 1e-9) {
			t.Fatalf("iter %d: Mul = %v, gonum = %v", i, got, mat.Formatted(&prod))
		}
	}
}

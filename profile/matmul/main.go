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

// Profiling:
// go build ./profile/matmul
// go tool pprof -http=":8000" -nodefraction=0.001 ./matmul cpu.pprof
package main

import (
	"math/rand/v2"

	"github.com/pkg/profile"

	"github.com/gomath3d/go-vmath/vmath"
)

func main() {
	iters := 2_000_000
	p := profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook)
	run(iters)
	p.Stop()
}

// sink keeps the loop results observable so the work is not dead-code
// eliminated.
var sink vmath.Mat4d

func run(iters int) {
	rng := rand.New(rand.NewPCG(42, 0))
	ms := make([]vmath.Mat4d, 64)
	for i := range ms {
		ms[i] = vmath.Mat4RotationY(rng.Float64() * 6.28).
			Translate(vmath.V3(rng.Float64(), rng.Float64(), rng.Float64())).
			Scale(vmath.V3(rng.Float64()+0.5, rng.Float64()+0.5, rng.Float64()+0.5))
	}

	var acc vmath.Mat4d
	vmath.Mat4IdentityInto(&acc)
	for i := 0; i < iters; i++ {
		m := ms[i&63]
		// Exercise both the allocating and destination forms.
		acc = acc.Mul(m)
		m.InverseInto(&m)
		acc.MulInto(m, &acc)
	}
	sink = acc
}

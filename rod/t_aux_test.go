// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/mech"
	"gonum.org/v1/gonum/mat"
)

// testLine implements Line with prescribed end data and records what the rod sends
type testLine struct {
	id int

	// returned to rods
	q  mgl64.Vec3 // end segment direction
	EI float64    // bending stiffness
	dl float64    // stretched length of end segment
	f  mgl64.Vec3 // end force
	m  mgl64.Vec3 // end moment
	M  mgl64.Mat3 // end mass

	// received from rods
	r, rd  mgl64.Vec3
	t      float64
	top    bool
	qRod   mgl64.Vec3
	rodEnd End
	nkin   int // number of calls to SetEndKinematics
}

func (o *testLine) Id() int { return o.id }

func (o *testLine) SetEndKinematics(r, rd mgl64.Vec3, t float64, top bool) {
	o.r, o.rd, o.t, o.top = r, rd, t, top
	o.nkin++
}

func (o *testLine) SetEndOrientation(q mgl64.Vec3, top bool, rodEnd End) {
	o.qRod, o.rodEnd = q, rodEnd
}

func (o *testLine) GetEndSegmentInfo(top bool) (q mgl64.Vec3, EI, dl float64) {
	return o.q, o.EI, o.dl
}

func (o *testLine) GetEndStuff(top bool) (f, m mgl64.Vec3, M mgl64.Mat3) {
	return o.f, o.m, o.M
}

// testSection returns a section with w = 5 kg/m and d = 0.1 m
func testSection() *Section {
	return &Section{Name: "test", D: 0.1, W: 5, Can: 1, Cat: 0.5, Cdn: 1.2, Cdt: 0.2, CaEnd: 0.6, CdEnd: 0.8}
}

// newTestRod allocates a rod or stops the test
func newTestRod(tst *testing.T, kind string, N int, endA, endB mgl64.Vec3, e *env.Params) Element {
	if e == nil {
		e = env.NewParams()
	}
	o, err := New(kind, 1, testSection(), N, endA, endB, e)
	if err != nil {
		tst.Fatalf("cannot allocate rod:\n%v", err)
	}
	return o
}

// initState allocates and initialises the states of a rod
func initState(o StateOwner) (X []float64) {
	X = make([]float64, o.NumStates())
	o.Initialize(X)
	return
}

// checkPositiveDefinite checks the symmetry and positive-definiteness of a 6x6 mass matrix
func checkPositiveDefinite(tst *testing.T, msg string, M *mech.Mat6) {
	if !M.IsSymmetric(1e-12) {
		tst.Errorf("%s: mass matrix is not symmetric:\n%v", msg, *M)
		return
	}
	S := mat.NewSymDense(6, nil)
	for i := 0; i < 6; i++ {
		for j := i; j < 6; j++ {
			S.SetSym(i, j, M[i][j])
		}
	}
	var ch mat.Cholesky
	if ok := ch.Factorize(S); !ok {
		tst.Errorf("%s: mass matrix is not positive-definite:\n%v", msg, *M)
	}
}

// checkVec compares 3-vectors
func checkVec(tst *testing.T, msg string, tol float64, a, b mgl64.Vec3) {
	chk.Array(tst, msg, tol, a[:], b[:])
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

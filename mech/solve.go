// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Solve6 solves M a = f for a using LU decomposition with partial pivoting.
// An exactly singular or ill-conditioned M yields an error; a is left unset in that case.
func Solve6(M *Mat6, f Vec6) (a Vec6, err error) {
	A := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			A.Set(i, j, M[i][j])
		}
	}
	x, err := luSolve(A, f[:])
	if err != nil {
		return
	}
	copy(a[:], x)
	return
}

// Solve3 solves M a = f for a 3x3 system using LU decomposition with partial pivoting
func Solve3(M mgl64.Mat3, f mgl64.Vec3) (a mgl64.Vec3, err error) {
	A := mat.NewDense(3, 3, nil)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			A.Set(i, j, M.At(i, j))
		}
	}
	x, err := luSolve(A, f[:])
	if err != nil {
		return
	}
	copy(a[:], x)
	return
}

// luSolve factorises A and solves A x = b
func luSolve(A *mat.Dense, b []float64) (x []float64, err error) {
	n, _ := A.Dims()
	var lu mat.LU
	lu.Factorize(A)
	if lu.Det() == 0 {
		return nil, chk.Err("LU solve failed: singular %dx%d matrix", n, n)
	}
	sol := mat.NewVecDense(n, nil)
	if e := lu.SolveVecTo(sol, false, mat.NewVecDense(n, append([]float64(nil), b...))); e != nil {
		return nil, chk.Err("LU solve failed for %dx%d matrix:\n%v", n, n, e)
	}
	return sol.RawVector().Data, nil
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-gl/mathgl/mgl64"
)

func checkMat6(tst *testing.T, msg string, tol float64, a, b *Mat6) {
	for i := 0; i < 6; i++ {
		chk.Array(tst, io.Sf("%s: row %d", msg, i), tol, a[i][:], b[i][:])
	}
}

func Test_translate01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("translate01. point force and point mass about a reference point")

	r := mgl64.Vec3{1, 2, 3}
	f := mgl64.Vec3{0, 0, -10}
	F6 := TranslateForce3to6(r, f)
	io.Pforan("F6 = %v\n", F6)
	chk.Array(tst, "F6", 1e-15, F6[:], []float64{0, 0, -10, -20, 10, 0})

	// point mass m at r: Mrr = m (|r|² I - r rᵀ)
	m := 2.0
	M6 := TranslateMass3to6(r, mgl64.Ident3().Mul(m))
	rr := r.Dot(r)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			δ := 0.0
			if i == j {
				δ = 1
			}
			chk.Float64(tst, io.Sf("Mrr[%d][%d]", i, j), 1e-14, M6[3+i][3+j], m*(rr*δ-r[i]*r[j]))
		}
	}
	if !M6.IsSymmetric(1e-15) {
		tst.Errorf("M6 must be symmetric")
	}

	// consistency: force produced by M6 for a rigid acceleration {a, α} equals
	// m*(a + α × r) and the corresponding moment r × force
	a := mgl64.Vec3{0.1, -0.2, 0.3}
	α := mgl64.Vec3{0.5, 0.1, -0.4}
	F := M6.MulVec(NewVec6(a, α))
	fp := a.Add(α.Cross(r)).Mul(m)
	Ft, Fr := F.T(), F.R()
	chk.Array(tst, "force", 1e-14, Ft[:], fp[:])
	mp := r.Cross(fp)
	chk.Array(tst, "moment", 1e-14, Fr[:], mp[:])
}

func Test_translate02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("translate02. 6to6 composes with 3to6")

	p := mgl64.Vec3{3, -1, 2}  // point
	a := mgl64.Vec3{1, 1, 1}   // intermediate reference
	o := mgl64.Vec3{-2, 0, 5}  // final reference
	M := mgl64.Mat3FromRows(mgl64.Vec3{4, 1, 0}, mgl64.Vec3{1, 3, 0.5}, mgl64.Vec3{0, 0.5, 2})
	f := mgl64.Vec3{1, -2, 3}

	// direct
	Md := TranslateMass3to6(p.Sub(o), M)
	Fd := TranslateForce3to6(p.Sub(o), f)

	// in two steps
	Mi := TranslateMass3to6(p.Sub(a), M)
	Fi := TranslateForce3to6(p.Sub(a), f)
	Mt := TranslateMass6to6(a.Sub(o), Mi)
	Ft := TranslateForce6to6(a.Sub(o), Fi)

	checkMat6(tst, "M", 1e-13, &Md, &Mt)
	chk.Array(tst, "F", 1e-14, Fd[:], Ft[:])
}

func Test_solve01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve01. LU solves")

	// 6x6 diagonally dominant system
	var M Mat6
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			M[i][j] = 1.0 / float64(1+i+j)
		}
		M[i][i] += 10
	}
	xref := Vec6{1, -2, 3, -4, 5, -6}
	f := M.MulVec(xref)
	x, err := Solve6(&M, f)
	if err != nil {
		tst.Errorf("Solve6 failed:\n%v", err)
		return
	}
	io.Pforan("x = %v\n", x)
	chk.Array(tst, "x", 1e-13, x[:], xref[:])

	// 3x3 needing pivoting
	A := mgl64.Mat3FromRows(mgl64.Vec3{0, 2, 1}, mgl64.Vec3{1, 1, 0}, mgl64.Vec3{3, 0, 1})
	y, err := Solve3(A, A.Mul3x1(mgl64.Vec3{1, 2, 3}))
	if err != nil {
		tst.Errorf("Solve3 failed:\n%v", err)
		return
	}
	chk.Array(tst, "y", 1e-14, y[:], []float64{1, 2, 3})
}

func Test_solve02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("solve02. singular matrices are reported")

	var M Mat6
	for i := 0; i < 5; i++ {
		M[i][i] = 1
	}
	_, err := Solve6(&M, Vec6{1, 1, 1, 1, 1, 1})
	if err == nil {
		tst.Errorf("singular 6x6 system must fail")
	}
	io.Pforan("err = %v\n", err)

	A := mgl64.Mat3FromRows(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{2, 4, 6}, mgl64.Vec3{0, 0, 1})
	_, err = Solve3(A, mgl64.Vec3{1, 2, 3})
	if err == nil {
		tst.Errorf("singular 3x3 system must fail")
	}
}

func Test_orient01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("orient01. orientation angles and rotation")

	p1 := mgl64.Vec3{1, 1, -5}
	p2 := p1.Add(mgl64.Vec3{1, 1, math.Sqrt2})
	o := OrientationAngles(p1, p2, mgl64.Vec3{})
	chk.Float64(tst, "φ", 1e-15, o.Phi, math.Pi/4)
	chk.Float64(tst, "β", 1e-15, o.Beta, math.Pi/4)
	chk.Float64(tst, "|k|", 1e-15, o.K.Len(), 1)

	R := o.Rotation()
	ez := R.Mul3x1(mgl64.Vec3{0, 0, 1})
	chk.Array(tst, "R ez", 1e-15, ez[:], o.K[:])

	// axisymmetric inertia rotated to global == Ir (I - k kᵀ) + Il k kᵀ
	Ir, Il := 3.0, 0.5
	Ig := RotateToGlobal(mgl64.Diag3(mgl64.Vec3{Ir, Ir, Il}), R)
	kk := o.K.OuterProd3(o.K)
	Iref := mgl64.Ident3().Sub(kk).Mul(Ir).Add(kk.Mul(Il))
	for i := 0; i < 3; i++ {
		row, ref := Ig.Row(i), Iref.Row(i)
		chk.Array(tst, io.Sf("I row %d", i), 1e-14, row[:], ref[:])
	}

	// coincident points fall back to the given direction
	o = OrientationAngles(p1, p1, mgl64.Vec3{0, 0, -2})
	chk.Float64(tst, "φ (zero-length)", 1e-15, o.Phi, math.Pi)
	chk.Array(tst, "k (zero-length)", 1e-15, o.K[:], []float64{0, 0, -1})
}

func Test_unit01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("unit01. unit vectors and their rates")

	q, l, ok := UnitVector(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{3, 0, 4})
	if !ok {
		tst.Errorf("UnitVector must succeed")
	}
	chk.Float64(tst, "l", 1e-15, l, 5)
	chk.Array(tst, "q", 1e-15, q[:], []float64{0.6, 0, 0.8})

	_, _, ok = UnitVector(mgl64.Vec3{1, 2, 3}, mgl64.Vec3{1, 2, 3})
	if ok {
		tst.Errorf("UnitVector of coincident points must fail")
	}

	ω := mgl64.Vec3{0.3, -1.2, 0.7}
	qd := UnitRate(ω, q)
	ref := ω.Cross(q)
	chk.Array(tst, "dq/dt", 1e-15, qd[:], ref[:])
	chk.Float64(tst, "q·dq/dt", 1e-15, q.Dot(qd), 0)
}

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import "github.com/go-gl/mathgl/mgl64"

// TranslateForce3to6 converts a force f acting at point p into a 6-DOF load about a reference
// point o, where r = p - o
//  F6 = {f, r × f}
func TranslateForce3to6(r, f mgl64.Vec3) Vec6 {
	return NewVec6(f, r.Cross(f))
}

// TranslateForce6to6 moves a 6-DOF load given about point a to a reference point o, where
// r = a - o
//  F6' = {f, m + r × f}
func TranslateForce6to6(r mgl64.Vec3, F Vec6) Vec6 {
	f := F.T()
	return NewVec6(f, F.R().Add(r.Cross(f)))
}

// TranslateMass3to6 converts the 3x3 mass matrix M of a point p into a 6x6 mass matrix about a
// reference point o, where r = p - o. With H = trans(skew(r)):
//
//        / M      M H    \
//   M6 = |               |
//        \ Hᵀ M   Hᵀ M H /
//
func TranslateMass3to6(r mgl64.Vec3, M mgl64.Mat3) (M6 Mat6) {
	H := Skew(r).Transpose()
	MH := M.Mul3(H)
	M6.SetBlock(0, 0, M)
	M6.SetBlock(0, 1, MH)
	M6.SetBlock(1, 0, MH.Transpose())
	M6.SetBlock(1, 1, H.Transpose().Mul3(MH))
	return
}

// TranslateMass6to6 moves a 6x6 mass matrix given about point a to a reference point o, where
// r = a - o. With H = trans(skew(r)):
//
//   Mtt' = Mtt
//   Mtr' = Mtt H + Mtr
//   Mrr' = Hᵀ Mtt H + Hᵀ Mtr + Mrt H + Mrr
//
func TranslateMass6to6(r mgl64.Vec3, M Mat6) (Mo Mat6) {
	H := Skew(r).Transpose()
	Ht := H.Transpose()
	Mtt := M.Block(0, 0)
	Mtr := M.Block(0, 1)
	Mrt := M.Block(1, 0)
	Mrr := M.Block(1, 1)
	MtrNew := Mtt.Mul3(H).Add(Mtr)
	Mo.SetBlock(0, 0, Mtt)
	Mo.SetBlock(0, 1, MtrNew)
	Mo.SetBlock(1, 0, MtrNew.Transpose())
	Mo.SetBlock(1, 1, Ht.Mul3(Mtt).Mul3(H).Add(Ht.Mul3(Mtr)).Add(Mrt.Mul3(H)).Add(Mrr))
	return
}

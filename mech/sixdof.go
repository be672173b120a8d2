// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mech implements the small fixed-size algebra used by rigid elements: 6-DOF vectors
// and matrices, translation of forces and mass matrices to reference points, orientation
// angles and direct LU solves of the 3x3 and 6x6 equations of motion
package mech

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Vec6 holds a 6-DOF quantity: {x, y, z, rx, ry, rz}. e.g. force+moment or velocity+angular velocity
type Vec6 [6]float64

// Mat6 holds a 6x6 matrix organised by rows
//
//        / Mtt  Mtr \     t: translational dofs
//   M6 = |          |     r: rotational dofs
//        \ Mrt  Mrr /
//
type Mat6 [6][6]float64

// NewVec6 returns a 6-DOF vector from its translational (t) and rotational (r) parts
func NewVec6(t, r mgl64.Vec3) (v Vec6) {
	v.SetT(t)
	v.SetR(r)
	return
}

// T returns the translational part {0,1,2}
func (v Vec6) T() mgl64.Vec3 { return mgl64.Vec3{v[0], v[1], v[2]} }

// R returns the rotational part {3,4,5}
func (v Vec6) R() mgl64.Vec3 { return mgl64.Vec3{v[3], v[4], v[5]} }

// SetT sets the translational part
func (v *Vec6) SetT(t mgl64.Vec3) { v[0], v[1], v[2] = t[0], t[1], t[2] }

// SetR sets the rotational part
func (v *Vec6) SetR(r mgl64.Vec3) { v[3], v[4], v[5] = r[0], r[1], r[2] }

// Add returns v + u
func (v Vec6) Add(u Vec6) (w Vec6) {
	for i := 0; i < 6; i++ {
		w[i] = v[i] + u[i]
	}
	return
}

// Sub returns v - u
func (v Vec6) Sub(u Vec6) (w Vec6) {
	for i := 0; i < 6; i++ {
		w[i] = v[i] - u[i]
	}
	return
}

// IsFinite tells whether all components are neither NaN nor ±Inf
func (v Vec6) IsFinite() bool {
	for i := 0; i < 6; i++ {
		if math.IsNaN(v[i]) || math.IsInf(v[i], 0) {
			return false
		}
	}
	return true
}

// Block returns the 3x3 sub-matrix starting at row 3*I and column 3*J (I,J ∈ {0,1})
func (m *Mat6) Block(I, J int) (b mgl64.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			b.Set(i, j, m[3*I+i][3*J+j])
		}
	}
	return
}

// SetBlock sets the 3x3 sub-matrix starting at row 3*I and column 3*J
func (m *Mat6) SetBlock(I, J int, b mgl64.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*I+i][3*J+j] = b.At(i, j)
		}
	}
}

// AddBlock adds b to the 3x3 sub-matrix starting at row 3*I and column 3*J
func (m *Mat6) AddBlock(I, J int, b mgl64.Mat3) {
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[3*I+i][3*J+j] += b.At(i, j)
		}
	}
}

// Add returns m + n
func (m *Mat6) Add(n *Mat6) (c Mat6) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			c[i][j] = m[i][j] + n[i][j]
		}
	}
	return
}

// MulVec returns m * v
func (m *Mat6) MulVec(v Vec6) (w Vec6) {
	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			w[i] += m[i][j] * v[j]
		}
	}
	return
}

// IsSymmetric checks whether |m[i][j] - m[j][i]| ≤ tol·max(1,|m[i][j]|)
func (m *Mat6) IsSymmetric(tol float64) bool {
	for i := 0; i < 6; i++ {
		for j := i + 1; j < 6; j++ {
			if math.Abs(m[i][j]-m[j][i]) > tol*math.Max(1, math.Abs(m[i][j])) {
				return false
			}
		}
	}
	return true
}

// Skew returns the matrix S such that S*v = r × v
func Skew(r mgl64.Vec3) mgl64.Mat3 {
	return mgl64.Mat3FromRows(
		mgl64.Vec3{0, -r[2], r[1]},
		mgl64.Vec3{r[2], 0, -r[0]},
		mgl64.Vec3{-r[1], r[0], 0},
	)
}

// UnitRate returns the rate of change of a unit vector q rotating with angular velocity ω
//  dq/dt = ω × q
func UnitRate(ω, q mgl64.Vec3) mgl64.Vec3 {
	return mgl64.Vec3{
		-ω[2]*q[1] + ω[1]*q[2],
		ω[2]*q[0] - ω[0]*q[2],
		-ω[1]*q[0] + ω[0]*q[1],
	}
}

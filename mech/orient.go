// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mech

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// MinLen is the length below which two points are considered coincident
const MinLen = 1e-9

// Orient holds the orientation of a segment going from point A to point B
//
//        z ^    . B
//          |φ  /
//          |  /      φ -- inclination from the vertical
//          | /       β -- heading of the horizontal projection (from x towards y)
//          |/
//        A o--------> x
//
type Orient struct {
	Phi, SinPhi, CosPhi, TanPhi float64 // inclination
	Beta, SinBeta, CosBeta      float64 // heading
	K                           mgl64.Vec3
}

// OrientationAngles computes the orientation of the segment p1 → p2.
// For coincident points the direction q is used instead (e.g. zero-length elements).
func OrientationAngles(p1, p2, q mgl64.Vec3) (o Orient) {
	v := p2.Sub(p1)
	if v.Len() < MinLen {
		v = q
	}
	l := v.Len()
	if l < MinLen {
		o.K = mgl64.Vec3{0, 0, 1}
	} else {
		o.K = v.Mul(1.0 / l)
	}
	l2d := math.Sqrt(o.K[0]*o.K[0] + o.K[1]*o.K[1])
	o.Phi = math.Atan2(l2d, o.K[2])
	o.SinPhi, o.CosPhi = math.Sin(o.Phi), math.Cos(o.Phi)
	o.TanPhi = math.Tan(o.Phi)
	o.Beta = math.Atan2(o.K[1], o.K[0])
	o.SinBeta, o.CosBeta = math.Sin(o.Beta), math.Cos(o.Beta)
	return
}

// Rotation returns the matrix rotating the local z-axis onto the segment axis
//  R = Rz(β) Ry(φ)  ⇒  R ez = {cosβ sinφ, sinβ sinφ, cosφ}
func (o Orient) Rotation() mgl64.Mat3 {
	return mgl64.Rotate3DZ(o.Beta).Mul3(mgl64.Rotate3DY(o.Phi))
}

// RotateToGlobal expresses a matrix given in local axes in the global frame: R Ml Rᵀ
func RotateToGlobal(Ml, R mgl64.Mat3) mgl64.Mat3 {
	return R.Mul3(Ml).Mul3(R.Transpose())
}

// UnitVector returns the unit vector pointing from p1 to p2 and the distance between the points.
// If the points coincide, q is the zero vector and ok is false.
func UnitVector(p1, p2 mgl64.Vec3) (q mgl64.Vec3, dist float64, ok bool) {
	v := p2.Sub(p1)
	dist = v.Len()
	if dist < MinLen {
		return mgl64.Vec3{}, dist, false
	}
	return v.Mul(1.0 / dist), dist, true
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/inp"
	"github.com/gomoor/gomoor/mech"
	"github.com/gomoor/gomoor/rod"
)

// Motion prescribes the kinematics of end A and of the direction of a driven rod as offsets
// from the initial pose. Rotations are applied about the global axes in the order x, y, z;
// the angular velocity and acceleration are the rates of the three angles, which is exact for
// rotations about one axis and first-order accurate otherwise
type Motion struct {
	R0   mgl64.Vec3      // initial position of end A
	Q0   mgl64.Vec3      // initial direction
	Fcns [6]inp.TimeFunc // offsets of {x, y, z, rx, ry, rz}; nil means zero
}

// NewMotion returns a motion from functions database; no names means a stationary rod
func NewMotion(r0, q0 mgl64.Vec3, names []string, funcs inp.FuncsData) (o *Motion, err error) {
	o = &Motion{R0: r0, Q0: q0}
	for i, name := range names {
		if o.Fcns[i], err = funcs.Get(name); err != nil {
			return nil, err
		}
	}
	return
}

// Kinematics returns the prescribed kinematics at time t
func (o *Motion) Kinematics(t float64) (r6, v6, a6 mech.Vec6) {
	var f mech.Vec6
	for i, fcn := range o.Fcns {
		if fcn != nil {
			f[i], v6[i], a6[i] = fcn.F(t), fcn.G(t), fcn.H(t)
		}
	}
	R := mgl64.Rotate3DZ(f[5]).Mul3(mgl64.Rotate3DY(f[4])).Mul3(mgl64.Rotate3DX(f[3]))
	r6 = mech.NewVec6(o.R0.Add(f.T()), R.Mul3x1(o.Q0))
	return
}

// Driver holds a driven rod and its prescribed motion
type Driver struct {
	Rod    rod.Driven // the rod
	Motion *Motion    // prescribed motion
}

// Drive sets the prescribed kinematics at time t
func (o *Driver) Drive(t float64) {
	r6, v6, a6 := o.Motion.Kinematics(t)
	o.Rod.SetKinematics(r6, v6, a6, t)
}

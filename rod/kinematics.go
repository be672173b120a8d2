// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/mech"
)

// SetDependentKin computes the position and velocity of both ends from the rigid body
// kinematics and passes them to the attached lines. Zero-length rods are then oriented along
// the balance of the bending moments of all attached lines. Finally, the orientation is passed
// to the attached lines.
func (o *Rod) SetDependentKin(t float64) {

	// ends
	o.Time = t
	rA, vA := o.R6.T(), o.V6.T()
	Lq := o.R6.R().Mul(o.L)
	a, b := o.NodeA(), o.NodeB()
	a.R, a.Rd = rA, vA
	b.R = rA.Add(Lq)
	b.Rd = vA.Add(o.V6.R().Cross(Lq))

	// lines: kinematics
	for _, at := range o.AttA {
		at.Line.SetEndKinematics(a.R, a.Rd, t, at.Top)
	}
	for _, at := range o.AttB {
		at.Line.SetEndKinematics(b.R, b.Rd, t, at.Top)
	}

	// zero-length rod: orientation from moment balance
	if o.N == 0 {
		var Msum mgl64.Vec3
		for _, at := range o.AttA {
			Msum = Msum.Add(bendingProxy(at))
		}
		for _, at := range o.AttB {
			Msum = Msum.Add(bendingProxy(at))
		}
		if len(o.AttA)+len(o.AttB) > 0 {
			o.setUnit(Msum)
		}
	}

	// lines: orientation
	q := o.R6.R()
	for _, at := range o.AttA {
		at.Line.SetEndOrientation(q, at.Top, A)
	}
	for _, at := range o.AttB {
		at.Line.SetEndOrientation(q, at.Top, B)
	}
}

// bendingProxy returns q EI / dl of the end segment of an attached line
func bendingProxy(at Attachment) mgl64.Vec3 {
	q, EI, dl := at.Line.GetEndSegmentInfo(at.Top)
	if dl < mech.MinLen {
		return mgl64.Vec3{}
	}
	return q.Mul(EI / dl)
}

// setKinematics adopts prescribed kinematics
//  full -- all 6 DOFs; otherwise, only the translation of end A
func (o *Rod) setKinematics(r6, v6, a6 mech.Vec6, t float64, full bool) {
	o.Time = t
	if full {
		o.R6.SetT(r6.T())
		o.V6, o.A6 = v6, a6
		o.setUnit(r6.R())
		o.SetDependentKin(t)
		return
	}
	o.R6.SetT(r6.T())
	o.V6.SetT(v6.T())
	o.A6.SetT(a6.T())
}

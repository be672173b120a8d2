// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/mech"
)

// GetStateDeriv computes {aA, α, vA, dq/dt} by solving the 6x6 system M6net a6 = F6net.
// Zero-length rods have no rotational inertia; their orientation follows the attached lines
// and only the 3x3 translational system is solved.
func (o *Free) GetStateDeriv(dXdt []float64) (err error) {
	o.DoRHS()
	var a6 mech.Vec6
	if o.N == 0 {
		var a mgl64.Vec3
		a, err = mech.Solve3(o.M6net.Block(0, 0), o.F6net.T())
		a6.SetT(a)
	} else {
		a6, err = mech.Solve6(&o.M6net, o.F6net)
	}
	if err != nil {
		return chk.Err("rod %d: cannot solve equations of motion at t = %g:\n%v", o.Id, o.Time, err)
	}
	o.A6 = a6
	vA, qd := o.V6.T(), mech.UnitRate(o.V6.R(), o.R6.R())
	copy(dXdt[0:6], a6[:])
	copy(dXdt[6:9], vA[:])
	copy(dXdt[9:12], qd[:])
	o.checkFinite(dXdt[0:6])
	return
}

// GetStateDeriv computes {α, dq/dt}. The rotational loads are first corrected by the inertial
// coupling with the prescribed translational acceleration of end A and then the 3x3 rotational
// system is solved. α is zero for zero-length rods.
//
//  NOTE: the correction is applied before the solve; other orderings have shown instabilities
func (o *Pinned) GetStateDeriv(dXdt []float64) (err error) {
	o.DoRHS()
	var α mgl64.Vec3
	if o.N > 0 {
		Fr := o.F6net.R().Sub(o.M6net.Block(1, 0).Mul3x1(o.A6.T()))
		α, err = mech.Solve3(o.M6net.Block(1, 1), Fr)
		if err != nil {
			return chk.Err("rod %d: cannot solve rotational equations of motion at t = %g:\n%v", o.Id, o.Time, err)
		}
	}
	o.A6.SetR(α)
	qd := mech.UnitRate(o.V6.R(), o.R6.R())
	copy(dXdt[0:3], α[:])
	copy(dXdt[3:6], qd[:])
	o.checkFinite(dXdt[0:6])
	return
}

// GetCoupledForce returns the reaction load on the driver: F6net - M6net a6 with the
// prescribed accelerations
func (o *CoupledFixed) GetCoupledForce() (F mech.Vec6, err error) {
	o.DoRHS()
	return o.F6net.Sub(o.M6net.MulVec(o.A6)), nil
}

// GetCoupledForce returns the translational reaction load on the driver; the rotational
// reaction is zero since rotations are free at the pin
func (o *CoupledPinned) GetCoupledForce() (F mech.Vec6, err error) {
	o.DoRHS()
	R := o.F6net.Sub(o.M6net.MulVec(o.A6))
	F.SetT(R.T())
	return
}

// GetNetForceAndMass returns the net load and mass matrix about the reference point rRef
func (o *Rod) GetNetForceAndMass(rRef mgl64.Vec3) (F mech.Vec6, M mech.Mat6) {
	o.DoRHS()
	r := o.R6.T().Sub(rRef)
	return mech.TranslateForce6to6(r, o.F6net), mech.TranslateMass6to6(r, o.M6net)
}

// checkFinite reports non-finite derivatives. The integration goes on.
func (o *Rod) checkFinite(v []float64) {
	var d mech.Vec6
	copy(d[:], v)
	if d.IsFinite() {
		return
	}
	log := o.Log
	if o.NaNSampler != nil {
		log = log.Sample(o.NaNSampler)
	}
	ev := log.Warn().Float64("time", o.Time).Floats64("deriv", v)
	if o.DumpOnNaN {
		ev = ev.Floats64("F6net", o.F6net[:]).Floats64("A6", o.A6[:])
		for i := 0; i < 6; i++ {
			ev = ev.Floats64(io.Sf("M6net[%d]", i), o.M6net[i][:])
		}
	}
	ev.Msg("non-finite state derivative")
}

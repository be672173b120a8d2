// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package line implements simple lines connecting rods to anchors or to other rods
package line

import (
	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/mech"
	"github.com/gomoor/gomoor/rod"
)

// indices of line ends
const (
	Bottom = 0 // anchor end
	Top    = 1 // fairlead end
)

// Data holds the input data of a line
type Data struct {
	Id      int        `mapstructure:"id"`      // identifier
	EA      float64    `mapstructure:"ea"`      // axial stiffness
	BA      float64    `mapstructure:"ba"`      // axial damping
	EI      float64    `mapstructure:"ei"`      // bending stiffness
	L0      float64    `mapstructure:"l0"`      // unstretched length
	W       float64    `mapstructure:"w"`       // mass per unit length
	Wet     float64    `mapstructure:"wet"`     // submerged weight per unit length
	Anchor  mgl64.Vec3 `mapstructure:"anchor"`  // position of the end not attached to the first rod
	Rod     int        `mapstructure:"rod"`     // id of rod holding the line
	RodEnd  string     `mapstructure:"rodend"`  // "A" or "B"
	Top     bool       `mapstructure:"top"`     // the top end is attached to the rod; the bottom goes to the anchor
	Rod2    int        `mapstructure:"rod2"`    // id of rod holding the other end; 0 means anchored
	Rod2End string     `mapstructure:"rod2end"` // end of the second rod
}

// Spring implements a quasi-static, tension-only elastic line. Half of its mass and submerged
// weight are lumped at each end.
type Spring struct {

	// input
	Data

	// ends: [Bottom, Top]
	R      [2]mgl64.Vec3 // positions
	Rd     [2]mgl64.Vec3 // velocities
	Q      [2]mgl64.Vec3 // orientation of rods holding the ends
	HeldBy [2]rod.End    // end of rods holding the ends
	Time   float64       // time of the last update
}

// New allocates a line with its free ends at the anchor
func New(dat *Data) (o *Spring, err error) {
	if dat.EA <= 0 {
		return nil, chk.Err("line %d: axial stiffness must be positive. EA = %g is invalid", dat.Id, dat.EA)
	}
	if dat.L0 <= 0 {
		return nil, chk.Err("line %d: unstretched length must be positive. L0 = %g is invalid", dat.Id, dat.L0)
	}
	if dat.BA < 0 || dat.EI < 0 || dat.W < 0 {
		return nil, chk.Err("line %d: damping, bending stiffness and mass must be non-negative", dat.Id)
	}
	o = &Spring{Data: *dat}
	o.R[Bottom], o.R[Top] = dat.Anchor, dat.Anchor
	return
}

// Id returns the identifier
func (o *Spring) Id() int { return o.Data.Id }

// end returns the index of an end
func end(top bool) int {
	if top {
		return Top
	}
	return Bottom
}

// SetEndKinematics sets the position and velocity of one end
func (o *Spring) SetEndKinematics(r, rd mgl64.Vec3, t float64, top bool) {
	k := end(top)
	o.R[k], o.Rd[k], o.Time = r, rd, t
}

// SetEndOrientation records the orientation of the rod holding one end
func (o *Spring) SetEndOrientation(q mgl64.Vec3, top bool, rodEnd rod.End) {
	k := end(top)
	o.Q[k], o.HeldBy[k] = q, rodEnd
}

// GetEndSegmentInfo returns the direction from bottom to top, the bending stiffness and the
// stretched length
func (o *Spring) GetEndSegmentInfo(top bool) (q mgl64.Vec3, EI, dl float64) {
	q, dl, _ = mech.UnitVector(o.R[Bottom], o.R[Top])
	return q, o.EI, dl
}

// Tension returns the axial force; zero if the line is slack
func (o *Spring) Tension() (T float64) {
	u, l, ok := mech.UnitVector(o.R[Bottom], o.R[Top])
	if !ok || l <= o.L0 {
		return 0
	}
	ε := (l - o.L0) / o.L0
	εd := o.Rd[Top].Sub(o.Rd[Bottom]).Dot(u) / o.L0
	T = o.EA*ε + o.BA*εd
	if T < 0 {
		return 0
	}
	return
}

// GetEndStuff returns the force, moment and mass matrix the line applies at one end.
// The tension pulls each end towards the other one.
func (o *Spring) GetEndStuff(top bool) (f, m mgl64.Vec3, M mgl64.Mat3) {
	k := end(top)
	u, _, ok := mech.UnitVector(o.R[k], o.R[1-k])
	if ok {
		f = u.Mul(o.Tension())
	}
	f[2] -= 0.5 * o.Wet * o.L0
	M = mgl64.Ident3().Mul(0.5 * o.W * o.L0)
	return
}

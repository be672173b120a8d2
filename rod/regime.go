// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/mech"
)

// Element defines what all rods, in any regime, can do
type Element interface {
	Base() *Rod                                                           // returns the shared data
	Kind() string                                                         // returns the name of the regime
	DoRHS()                                                               // computes F6net and M6net about end A
	GetNetForceAndMass(rRef mgl64.Vec3) (F mech.Vec6, M mech.Mat6)        // net load and mass about rRef
	AddLine(l Line, top bool, e End) error                                // attaches a line
	RemoveLine(lineId int, e End) (top bool, r, rd mgl64.Vec3, err error) // detaches a line
}

// StateOwner defines rods whose DOFs, or part of them, are integrated as states
type StateOwner interface {
	Element
	NumStates() int                     // number of states: 12 (free) or 6 (pinned)
	Initialize(X []float64)             // writes initial states
	SetState(X []float64, t float64)    // reads states and updates kinematics
	GetStateDeriv(dXdt []float64) error // computes time derivatives of states
}

// Driven defines rods with kinematics prescribed by a parent (or external) driver
type Driven interface {
	Element
	SetKinematics(r6, v6, a6 mech.Vec6, t float64) // sets prescribed kinematics
}

// Coupler defines rods driven directly by an external simulation; the reaction load is
// returned to the driver
type Coupler interface {
	Driven
	GetCoupledForce() (F mech.Vec6, err error) // reaction load on the driver
}

// Free implements a rod with 6 DOFs integrated as states
//  X = {vA, ω, rA, q}
type Free struct {
	*Rod
}

// Pinned implements a rod with end A prescribed by a parent and rotations integrated as states
//  X = {ω, q}
type Pinned struct {
	*Rod
}

// Fixed implements a rod whose 6 DOFs are prescribed by a parent
type Fixed struct {
	*Rod
}

// CoupledPinned implements a pinned rod with end A prescribed by an external simulation
type CoupledPinned struct {
	Pinned
}

// CoupledFixed implements a fixed rod prescribed by an external simulation
type CoupledFixed struct {
	Fixed
}

// regimes
func (o *Free) Kind() string          { return "free" }
func (o *Pinned) Kind() string        { return "pinned" }
func (o *Fixed) Kind() string         { return "fixed" }
func (o *CoupledPinned) Kind() string { return "coupledpinned" }
func (o *CoupledFixed) Kind() string  { return "coupled" }

// New allocates and sets up a rod
//  kind -- "free", "pinned", "fixed", "coupledpinned" or "coupled"
func New(kind string, id int, sec *Section, N int, endA, endB mgl64.Vec3, e *env.Params) (Element, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("rod kind %q is not available. kinds = %v", kind, Kinds())
	}
	var o Rod
	if err := o.Setup(id, sec, N, endA, endB, e); err != nil {
		return nil, err
	}
	return allocator(&o), nil
}

// Kinds returns the names of all regimes
func Kinds() (kinds []string) {
	for k := range allocators {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return
}

// allocators holds all regimes; kind => allocator. The allocators set the initial kinematics
// owned by each regime
var allocators = map[string]func(o *Rod) Element{}

func init() {
	allocators["free"] = func(o *Rod) Element {
		o.R6 = mech.NewVec6(o.r0, o.q0)
		return &Free{o}
	}
	allocators["pinned"] = func(o *Rod) Element {
		o.R6.SetR(o.q0)
		return &Pinned{o}
	}
	allocators["fixed"] = func(o *Rod) Element {
		return &Fixed{o}
	}
	allocators["coupledpinned"] = func(o *Rod) Element {
		o.R6.SetR(o.q0)
		return &CoupledPinned{Pinned{o}}
	}
	allocators["coupled"] = func(o *Rod) Element {
		return &CoupledFixed{Fixed{o}}
	}
}

// Free ////////////////////////////////////////////////////////////////////////////////////////////

// NumStates returns 12
func (o *Free) NumStates() int { return 12 }

// Initialize writes {vA, ω, rA, q}
func (o *Free) Initialize(X []float64) {
	copy(X[0:6], o.V6[:])
	copy(X[6:12], o.R6[:])
	o.SetState(X, 0)
}

// SetState reads {vA, ω, rA, q}
func (o *Free) SetState(X []float64, t float64) {
	copy(o.V6[:], X[0:6])
	o.R6.SetT(mgl64.Vec3{X[6], X[7], X[8]})
	o.setUnit(mgl64.Vec3{X[9], X[10], X[11]})
	o.SetDependentKin(t)
}

// Pinned //////////////////////////////////////////////////////////////////////////////////////////

// NumStates returns 6
func (o *Pinned) NumStates() int { return 6 }

// Initialize writes {ω, q}
func (o *Pinned) Initialize(X []float64) {
	w, q := o.V6.R(), o.R6.R()
	copy(X[0:3], w[:])
	copy(X[3:6], q[:])
	o.SetState(X, 0)
}

// SetState reads {ω, q}
func (o *Pinned) SetState(X []float64, t float64) {
	o.V6.SetR(mgl64.Vec3{X[0], X[1], X[2]})
	o.setUnit(mgl64.Vec3{X[3], X[4], X[5]})
	o.SetDependentKin(t)
}

// SetKinematics sets the prescribed translation of end A
func (o *Pinned) SetKinematics(r6, v6, a6 mech.Vec6, t float64) {
	o.setKinematics(r6, v6, a6, t, false)
}

// Fixed ///////////////////////////////////////////////////////////////////////////////////////////

// SetKinematics sets all prescribed kinematics
func (o *Fixed) SetKinematics(r6, v6, a6 mech.Vec6, t float64) {
	o.setKinematics(r6, v6, a6, t, true)
}

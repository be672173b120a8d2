// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/inp"
	"github.com/gomoor/gomoor/line"
	"github.com/gomoor/gomoor/mech"
	"github.com/gomoor/gomoor/out"
	"github.com/gomoor/gomoor/rod"
	"github.com/rs/zerolog"
)

// System holds all rods and lines of a simulation and the global state vector
type System struct {

	// basic data
	Env   *env.Params         // environment
	Rods  []rod.Element       // all rods
	Lines []*line.Spring      // all lines
	Log   zerolog.Logger      // diagnostics
	Id2R  map[int]rod.Element // rod id => rod

	// state vector
	Owners  []rod.StateOwner // rods with states
	Offsets []int            // [len(Owners)] first index of each owner in X
	Drivers []*Driver        // rods with prescribed kinematics
	X       []float64        // state vector
	T       float64          // current time
	scratch []float64        // derivatives computed for output
}

// NewSystem allocates rods and lines and connects them
func NewSystem(sim *inp.Simulation, log zerolog.Logger) (o *System, err error) {

	// environment
	o = &System{Log: log, Id2R: make(map[int]rod.Element)}
	o.Env, err = sim.Environment()
	if err != nil {
		return nil, err
	}

	// rods
	for _, dat := range sim.Rods {
		var r rod.Element
		r, err = rod.New(dat.Kind, dat.Id, sim.Sections.Get(dat.Section), dat.N, dat.EndA, dat.EndB, o.Env)
		if err != nil {
			return nil, err
		}
		b := r.Base()
		b.InertialTerms = dat.InertialTerms
		b.Capacity = dat.Capacity
		b.DumpOnNaN = sim.DumpOnNaN
		o.Rods = append(o.Rods, r)
		o.Id2R[dat.Id] = r

		// states
		if so, ok := r.(rod.StateOwner); ok {
			o.Offsets = append(o.Offsets, len(o.X))
			o.Owners = append(o.Owners, so)
			o.X = append(o.X, make([]float64, so.NumStates())...)
		}

		// prescribed kinematics; the ground holds rods without motion
		if dr, ok := r.(rod.Driven); ok {
			q, _, found := mech.UnitVector(dat.EndA, dat.EndB)
			if !found {
				q = mgl64.Vec3{0, 0, 1}
			}
			var m *Motion
			m, err = NewMotion(dat.EndA, q, dat.Motion, sim.Functions)
			if err != nil {
				return nil, chk.Err("rod %d: %v", dat.Id, err)
			}
			o.Drivers = append(o.Drivers, &Driver{Rod: dr, Motion: m})
		}
	}
	o.scratch = make([]float64, len(o.X))

	// lines
	for _, dat := range sim.Lines {
		var l *line.Spring
		l, err = line.New(dat)
		if err != nil {
			return nil, err
		}
		o.Lines = append(o.Lines, l)
		if err = o.attach(l, dat.Rod, dat.RodEnd, dat.Top); err != nil {
			return nil, err
		}
		if dat.Rod2 != 0 {
			if err = o.attach(l, dat.Rod2, dat.Rod2End, !dat.Top); err != nil {
				return nil, err
			}
		}
	}
	return
}

// attach connects one end of a line to a rod. Refused attachments are reported by the rod and
// the simulation goes on with that line end at the anchor
func (o *System) attach(l *line.Spring, rodId int, rodEnd string, top bool) (err error) {
	r, ok := o.Id2R[rodId]
	if !ok {
		return chk.Err("line %d: cannot find rod %d", l.Id(), rodId)
	}
	e, err := inp.ParseEnd(rodEnd)
	if err != nil {
		return chk.Err("line %d: %v", l.Id(), err)
	}
	err = r.AddLine(l, top, e)
	if err == rod.ErrCapacity {
		o.Log.Warn().Int("line", l.Id()).Int("rod", rodId).Str("end", e.String()).Msg("line end left at anchor")
		return nil
	}
	return
}

// Initialize sets the prescribed kinematics at t = 0 and writes the initial states
func (o *System) Initialize() {
	o.T = 0
	for _, d := range o.Drivers {
		d.Drive(0)
	}
	for i, so := range o.Owners {
		so.Initialize(o.X[o.Offsets[i] : o.Offsets[i]+so.NumStates()])
	}
}

// Deriv computes the derivatives of all states. All kinematics are set, and passed to the lines,
// before any load is computed
func (o *System) Deriv(t float64, X, dXdt []float64) (err error) {
	for _, d := range o.Drivers {
		d.Drive(t)
	}
	for i, so := range o.Owners {
		so.SetState(X[o.Offsets[i]:o.Offsets[i]+so.NumStates()], t)
	}
	for i, so := range o.Owners {
		if err = so.GetStateDeriv(dXdt[o.Offsets[i] : o.Offsets[i]+so.NumStates()]); err != nil {
			return
		}
	}
	return
}

// Channels returns the keys of all output channels
func (o *System) Channels() (keys []string) {
	for _, r := range o.Rods {
		id := r.Base().Id
		for _, ch := range []string{"xA", "yA", "zA", "xB", "yB", "zB", "qx", "qy", "qz", "roll", "pitch", "Fx", "Fy", "Fz", "Mx", "My", "Mz"} {
			keys = append(keys, out.Key("rod", id, ch))
		}
		if _, ok := r.(rod.Driven); ok {
			for _, ch := range []string{"RFx", "RFy", "RFz", "RMx", "RMy", "RMz"} {
				keys = append(keys, out.Key("rod", id, ch))
			}
		}
	}
	for _, l := range o.Lines {
		keys = append(keys, out.Key("line", l.Id(), "T"))
	}
	return
}

// Values returns the values of all output channels at the current state, in the order of Channels.
// The reaction of coupled rods is returned by GetCoupledForce; the reaction of rods held by the
// ground is their net load about the current end A
func (o *System) Values() (vals []float64, err error) {
	if err = o.Deriv(o.T, o.X, o.scratch); err != nil {
		return
	}
	for _, r := range o.Rods {
		b := r.Base()
		if _, ok := r.(rod.StateOwner); !ok {
			b.DoRHS()
		}
		rA, rB, q := b.NodeA().R, b.NodeB().R, b.Q()
		vals = append(vals, rA[0], rA[1], rA[2], rB[0], rB[1], rB[2], q[0], q[1], q[2], b.Roll, b.Pitch)
		vals = append(vals, b.F6net[:]...)
		if dr, ok := r.(rod.Driven); ok {
			var F mech.Vec6
			if cp, ok := dr.(rod.Coupler); ok {
				if F, err = cp.GetCoupledForce(); err != nil {
					return nil, chk.Err("rod %d: cannot compute reaction:\n%v", b.Id, err)
				}
			} else {
				F, _ = r.GetNetForceAndMass(b.NodeA().R)
			}
			vals = append(vals, F[:]...)
		}
	}
	for _, l := range o.Lines {
		vals = append(vals, l.Tension())
	}
	return
}

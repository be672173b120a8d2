// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// FloatingRod computes the hydrostatic equilibrium of a vertical rod floating in still water
//
//           ┌─┐  ─┬─
//   ~~~~~~~~│ │~~~│~~~~~~ z = 0
//           │ │   │ h       h = draft
//           │ │   │         equilibrium: ρw g A h = w L g
//           └─┘  ─┴─
//            d
type FloatingRod struct {
	// input
	d  float64 // diameter
	w  float64 // mass per unit length
	L  float64 // length
	ρw float64 // water density
	g  float64 // gravity constant (positive value)

	// derived
	A float64 // cross-sectional area
	h float64 // draft
}

// Init initialises this structure
func (o *FloatingRod) Init(prms map[string]float64) {

	// default values
	o.d = 1.0
	o.w = 500.0
	o.L = 10.0
	o.ρw = 1025.0
	o.g = 9.81

	// parameters
	for key, val := range prms {
		switch key {
		case "d":
			o.d = val
		case "w":
			o.w = val
		case "L":
			o.L = val
		case "rhow":
			o.ρw = val
		case "g":
			o.g = val
		}
	}

	// derived
	o.A = math.Pi * o.d * o.d / 4.0
	o.h = o.w * o.L / (o.ρw * o.A)
}

// Draft returns the submerged length; it is greater than L if the rod sinks
func (o FloatingRod) Draft() float64 { return o.h }

// Floats tells whether the rod floats
func (o FloatingRod) Floats() bool { return o.h < o.L }

// Ends returns the elevations of the bottom (A) and top (B) ends at equilibrium
func (o FloatingRod) Ends() (zA, zB float64) {
	return -o.h, o.L - o.h
}

// HeaveStiffness returns the hydrostatic restoring coefficient in heave
func (o FloatingRod) HeaveStiffness() float64 {
	return o.ρw * o.g * o.A
}

// HeavePeriod returns the natural period in heave
//  ma -- added mass in heave
func (o FloatingRod) HeavePeriod(ma float64) float64 {
	return 2.0 * math.Pi * math.Sqrt((o.w*o.L+ma)/o.HeaveStiffness())
}

// CheckEnds checks the elevations of ends
func (o FloatingRod) CheckEnds(tst *testing.T, zA, zB, tol float64) {
	a, b := o.Ends()
	chk.Float64(tst, "zA", tol, zA, a)
	chk.Float64(tst, "zB", tol, zB, b)
}

// FreeFall computes the motion of a body falling from rest without drag
type FreeFall struct {
	Z0 float64 // initial elevation
	G  float64 // gravity constant (positive value)
}

// Z returns the elevation at time t
func (o FreeFall) Z(t float64) float64 { return o.Z0 - o.G*t*t/2.0 }

// V returns the vertical velocity at time t
func (o FreeFall) V(t float64) float64 { return -o.G * t }

// CheckZ checks elevations
func (o FreeFall) CheckZ(tst *testing.T, t, z []float64, tol float64) {
	zana := make([]float64, len(t))
	for i, ti := range t {
		zana[i] = o.Z(ti)
	}
	chk.Array(tst, "z", tol, z, zana)
}

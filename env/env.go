// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package env implements the ambient environment seen by rods: water and gravity constants,
// seabed contact parameters, bathymetry and wave kinematics
package env

import (
	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
)

// default constants
const (
	DefaultRhoW  = 1025.0 // water density [kg/m³]
	DefaultG     = 9.81   // gravitational acceleration [m/s²]
	DefaultKbot  = 3.0e6  // seabed contact stiffness [Pa/m]
	DefaultCbot  = 3.0e5  // seabed contact damping [Pa·s/m]
	DefaultDepth = 100.0  // water depth of flat seabed [m]
)

// Params holds the environment shared by all elements of a simulation
type Params struct {
	RhoW   float64 // water density
	G      float64 // gravitational acceleration
	Kbot   float64 // seabed contact stiffness per unit area
	Cbot   float64 // seabed contact damping per unit area
	Seabed Seabed  // bathymetry
	Waves  Waves   // wave kinematics; nil means that nodal samples are set by the caller
}

// NewParams returns parameters with default constants, a flat seabed and still water
func NewParams() *Params {
	return &Params{
		RhoW:   DefaultRhoW,
		G:      DefaultG,
		Kbot:   DefaultKbot,
		Cbot:   DefaultCbot,
		Seabed: &FlatSeabed{Depth: DefaultDepth},
		Waves:  new(StillWater),
	}
}

// Check validates parameters
func (o *Params) Check() (err error) {
	if o.RhoW <= 0 {
		return chk.Err("water density must be positive. rhoW = %g is invalid", o.RhoW)
	}
	if o.G <= 0 {
		return chk.Err("gravity must be positive. g = %g is invalid", o.G)
	}
	if o.Kbot < 0 || o.Cbot < 0 {
		return chk.Err("seabed coefficients must be non-negative. kbot = %g, cbot = %g", o.Kbot, o.Cbot)
	}
	if o.Seabed == nil {
		return chk.Err("seabed must be given")
	}
	return
}

// Depth returns the water depth at the horizontal position of x
func (o *Params) Depth(x mgl64.Vec3) float64 {
	if o.Seabed == nil {
		return DefaultDepth
	}
	return o.Seabed.GetDepthAt(x[0], x[1])
}

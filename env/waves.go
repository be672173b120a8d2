// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
)

// Waves defines wave kinematics services
type Waves interface {

	// Kinematics returns at point x and time t:
	//  u    -- fluid velocity (including current)
	//  ud   -- fluid acceleration
	//  ζ    -- free surface elevation above the horizontal position of x
	//  pdyn -- dynamic pressure
	Kinematics(x mgl64.Vec3, t float64) (u, ud mgl64.Vec3, ζ, pdyn float64)
}

// WaveData holds the input data of wave models
type WaveData struct {
	Kind    string     `mapstructure:"kind"`    // "still" or "airy"
	Height  float64    `mapstructure:"height"`  // wave height H = 2 A
	Period  float64    `mapstructure:"period"`  // wave period
	Heading float64    `mapstructure:"heading"` // propagation direction measured from x towards y [deg]
	Phase   float64    `mapstructure:"phase"`   // phase shift [deg]
	Current mgl64.Vec3 `mapstructure:"current"` // uniform current velocity
}

// NewWaves allocates wave kinematics
//  depth -- water depth used by the dispersion relation
func NewWaves(dat *WaveData, depth float64, prms *Params) (w Waves, err error) {
	kind := dat.Kind
	if kind == "" {
		kind = "still"
	}
	allocator, ok := waveAllocators[kind]
	if !ok {
		return nil, chk.Err("wave model %q is not available", kind)
	}
	return allocator(dat, depth, prms)
}

// waveAllocators holds all available wave models
var waveAllocators = map[string]func(dat *WaveData, depth float64, prms *Params) (Waves, error){}

func init() {
	waveAllocators["still"] = func(dat *WaveData, depth float64, prms *Params) (Waves, error) {
		return &StillWater{Current: dat.Current}, nil
	}
	waveAllocators["airy"] = func(dat *WaveData, depth float64, prms *Params) (Waves, error) {
		return NewAiry(dat.Height/2, dat.Period, dat.Heading*math.Pi/180, dat.Phase*math.Pi/180, depth, dat.Current, prms)
	}
}

// StillWater implements a flat free surface with an optional uniform current
type StillWater struct {
	Current mgl64.Vec3
}

// Kinematics returns the current velocity and zero elevation, acceleration and pressure
func (o *StillWater) Kinematics(x mgl64.Vec3, t float64) (u, ud mgl64.Vec3, ζ, pdyn float64) {
	return o.Current, mgl64.Vec3{}, 0, 0
}

// Airy implements linear regular waves in finite depth plus a uniform current
//
//   ζ = A cos(k·x - ω t + ψ0)
//
// Points above the free surface see no fluid; points between the mean level and the
// free surface see the kinematics of the mean level (constant stretching).
type Airy struct {
	A       float64    // amplitude
	T       float64    // period
	Beta    float64    // heading [rad]
	Psi0    float64    // phase shift [rad]
	Depth   float64    // water depth
	Current mgl64.Vec3 // uniform current
	Omega   float64    // angular frequency
	K       float64    // wave number
	rho     float64    // water density
	g       float64    // gravity
}

// NewAiry allocates linear waves and solves the dispersion relation ω² = g k tanh(k h)
func NewAiry(A, T, β, ψ0, depth float64, current mgl64.Vec3, prms *Params) (o *Airy, err error) {
	if T <= 0 {
		return nil, chk.Err("wave period must be positive. T = %g is invalid", T)
	}
	if depth <= 0 {
		return nil, chk.Err("water depth must be positive for Airy waves. depth = %g is invalid", depth)
	}
	if A < 0 {
		return nil, chk.Err("wave amplitude must be non-negative. A = %g is invalid", A)
	}
	o = &Airy{A: A, T: T, Beta: β, Psi0: ψ0, Depth: depth, Current: current, rho: prms.RhoW, g: prms.G}
	o.Omega = 2 * math.Pi / T
	o.K, err = WaveNumber(o.Omega, depth, prms.G)
	return
}

// WaveNumber solves ω² = g k tanh(k h) for k using Newton's method
func WaveNumber(ω, h, g float64) (k float64, err error) {
	k = ω * ω / g // deep water
	if k*h < 3 {
		k = ω / math.Sqrt(g*h) // shallow water
	}
	for it := 0; it < 50; it++ {
		th := math.Tanh(k * h)
		f := g*k*th - ω*ω
		df := g*th + g*k*h*(1-th*th)
		δk := f / df
		k -= δk
		if math.Abs(δk) < 1e-12*k {
			return
		}
	}
	return k, chk.Err("dispersion relation did not converge: ω=%g, h=%g", ω, h)
}

// Kinematics computes the linear wave kinematics at x and t
func (o *Airy) Kinematics(x mgl64.Vec3, t float64) (u, ud mgl64.Vec3, ζ, pdyn float64) {
	cb, sb := math.Cos(o.Beta), math.Sin(o.Beta)
	ψ := o.K*(x[0]*cb+x[1]*sb) - o.Omega*t + o.Psi0
	cψ, sψ := math.Cos(ψ), math.Sin(ψ)
	ζ = o.A * cψ
	if x[2] > ζ {
		return
	}
	z := math.Min(x[2], 0)
	ch, sh, cp := o.depthFactors(z)
	Aω := o.A * o.Omega
	uh := Aω * ch * cψ
	u = mgl64.Vec3{uh*cb + o.Current[0], uh*sb + o.Current[1], Aω*sh*sψ + o.Current[2]}
	udh := Aω * o.Omega * ch * sψ
	ud = mgl64.Vec3{udh * cb, udh * sb, -Aω * o.Omega * sh * cψ}
	pdyn = o.rho * o.g * o.A * cp * cψ
	return
}

// depthFactors returns cosh(k(z+h))/sinh(kh), sinh(k(z+h))/sinh(kh) and cosh(k(z+h))/cosh(kh)
func (o *Airy) depthFactors(z float64) (ch, sh, cp float64) {
	kh := o.K * o.Depth
	kz := o.K * (z + o.Depth)
	if kh > 20 { // deep water
		e := math.Exp(o.K * z)
		return e, e, e
	}
	s := math.Sinh(kh)
	return math.Cosh(kz) / s, math.Sinh(kz) / s, math.Cosh(kz) / math.Cosh(kh)
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sim

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// DerivFunc computes the time derivatives of the state vector
type DerivFunc func(t float64, X, dXdt []float64) error

// Integrator advances the state vector by one time step
type Integrator interface {
	Step(f DerivFunc, t, dt float64, X []float64) error
}

// NewIntegrator allocates an integrator
//  ndim -- size of the state vector
func NewIntegrator(kind string, ndim int) (Integrator, error) {
	allocator, ok := allocators[kind]
	if !ok {
		return nil, chk.Err("cannot find solver type named %q. types = %v", kind, IntegratorTypes())
	}
	return allocator(ndim), nil
}

// IntegratorTypes returns the names of all integrators
func IntegratorTypes() (types []string) {
	for k := range allocators {
		types = append(types, k)
	}
	sort.Strings(types)
	return
}

// allocators holds all available integrators
var allocators = make(map[string]func(ndim int) Integrator)

func init() {
	allocators["euler"] = func(ndim int) Integrator {
		return &Euler{k: make([]float64, ndim)}
	}
	allocators["rk4"] = func(ndim int) Integrator {
		return &RK4{
			k1:  make([]float64, ndim),
			k2:  make([]float64, ndim),
			k3:  make([]float64, ndim),
			k4:  make([]float64, ndim),
			tmp: make([]float64, ndim),
		}
	}
}

// Euler implements the forward Euler method
type Euler struct {
	k []float64 // derivatives
}

// Step advances X from t to t+dt
func (o *Euler) Step(f DerivFunc, t, dt float64, X []float64) (err error) {
	if err = f(t, X, o.k); err != nil {
		return
	}
	for i := range X {
		X[i] += dt * o.k[i]
	}
	return
}

// RK4 implements the classical fourth-order Runge-Kutta method
type RK4 struct {
	k1, k2, k3, k4 []float64 // stages
	tmp            []float64 // intermediate state
}

// Step advances X from t to t+dt
func (o *RK4) Step(f DerivFunc, t, dt float64, X []float64) (err error) {

	// k1
	if err = f(t, X, o.k1); err != nil {
		return
	}

	// k2
	for i := range X {
		o.tmp[i] = X[i] + 0.5*dt*o.k1[i]
	}
	if err = f(t+0.5*dt, o.tmp, o.k2); err != nil {
		return
	}

	// k3
	for i := range X {
		o.tmp[i] = X[i] + 0.5*dt*o.k2[i]
	}
	if err = f(t+0.5*dt, o.tmp, o.k3); err != nil {
		return
	}

	// k4
	for i := range X {
		o.tmp[i] = X[i] + dt*o.k3[i]
	}
	if err = f(t+dt, o.tmp, o.k4); err != nil {
		return
	}

	// update X
	c := dt / 6.0
	for i := range X {
		X[i] += c * (o.k1[i] + 2*o.k2[i] + 2*o.k3[i] + o.k4[i])
	}
	return
}

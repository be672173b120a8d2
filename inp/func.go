// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"math"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// TimeFunc defines functions of time used to prescribe motions
type TimeFunc interface {
	F(t float64) float64 // value
	G(t float64) float64 // first derivative
	H(t float64) float64 // second derivative
}

// FuncData holds function definition
type FuncData struct {
	Name string             `mapstructure:"name"` // name of function. ex: zero, heave, surge1, etc.
	Type string             `mapstructure:"type"` // type of function. ex: cte, sin, rmp
	Prms map[string]float64 `mapstructure:"prms"` // parameters; keys are lower case
}

// FuncsData holds functions
type FuncsData []*FuncData

// Get returns function by name
func (o FuncsData) Get(name string) (fcn TimeFunc, err error) {
	if name == "zero" || name == "none" || name == "" {
		return &Cte{}, nil
	}
	for _, f := range o {
		if f.Name == name {
			fcn, err = NewFunc(f.Type, f.Prms)
			if err != nil {
				err = chk.Err("cannot get function named %q because of the following error:\n%v", name, err)
			}
			return
		}
	}
	return nil, chk.Err("cannot find function named %q", name)
}

// NewFunc allocates a function of time
func NewFunc(kind string, prms map[string]float64) (TimeFunc, error) {
	allocator, ok := funcAllocators[kind]
	if !ok {
		return nil, chk.Err("function type %q is not available. types = %v", kind, funcTypes())
	}
	return allocator(prms)
}

// funcTypes returns the names of all function types
func funcTypes() (types []string) {
	for k := range funcAllocators {
		types = append(types, k)
	}
	sort.Strings(types)
	return
}

// funcAllocators holds all function types
var funcAllocators = map[string]func(prms map[string]float64) (TimeFunc, error){}

func init() {
	funcAllocators["cte"] = func(prms map[string]float64) (TimeFunc, error) {
		return &Cte{C: prms["c"]}, nil
	}
	funcAllocators["sin"] = func(prms map[string]float64) (TimeFunc, error) {
		T := prms["period"]
		if T <= 0 {
			return nil, chk.Err("period of sine function must be positive. period = %g is invalid", T)
		}
		return &Sin{A: prms["a"], Omega: 2 * math.Pi / T, Phi: prms["phi"] * math.Pi / 180, C: prms["c"]}, nil
	}
	funcAllocators["rmp"] = func(prms map[string]float64) (TimeFunc, error) {
		o := &Rmp{Ta: prms["ta"], Tb: prms["tb"], Ca: prms["ca"], Cb: prms["cb"]}
		if o.Tb <= o.Ta {
			return nil, chk.Err("ramp times must satisfy ta < tb. ta = %g, tb = %g", o.Ta, o.Tb)
		}
		return o, nil
	}
}

// Cte implements a constant function
type Cte struct {
	C float64
}

func (o *Cte) F(t float64) float64 { return o.C }
func (o *Cte) G(t float64) float64 { return 0 }
func (o *Cte) H(t float64) float64 { return 0 }

// Sin implements
//  f(t) = a sin(ω t + φ) + c
type Sin struct {
	A, Omega, Phi, C float64
}

func (o *Sin) F(t float64) float64 { return o.A*math.Sin(o.Omega*t+o.Phi) + o.C }
func (o *Sin) G(t float64) float64 { return o.A * o.Omega * math.Cos(o.Omega*t+o.Phi) }
func (o *Sin) H(t float64) float64 { return -o.A * o.Omega * o.Omega * math.Sin(o.Omega*t+o.Phi) }

// Rmp implements a linear ramp from ca at ta to cb at tb; constant outside
type Rmp struct {
	Ta, Tb, Ca, Cb float64
}

func (o *Rmp) F(t float64) float64 {
	switch {
	case t < o.Ta:
		return o.Ca
	case t < o.Tb:
		return o.Ca + (o.Cb-o.Ca)*(t-o.Ta)/(o.Tb-o.Ta)
	}
	return o.Cb
}

func (o *Rmp) G(t float64) float64 {
	if t < o.Ta || t >= o.Tb {
		return 0
	}
	return (o.Cb - o.Ca) / (o.Tb - o.Ta)
}

func (o *Rmp) H(t float64) float64 { return 0 }

// auxiliary //////////////////////////////////////////////////////////////////////////////////////////

// String prints one function
func (o FuncData) String() string {
	keys := make([]string, 0, len(o.Prms))
	for k := range o.Prms {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	l := io.Sf("{name:%q, type:%q, prms:{", o.Name, o.Type)
	for i, k := range keys {
		if i > 0 {
			l += ", "
		}
		l += io.Sf("%s:%g", k, o.Prms[k])
	}
	return l + "}}"
}

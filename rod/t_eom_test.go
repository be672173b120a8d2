// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/mech"
	"github.com/rs/zerolog"
)

func Test_eom01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom01. free fall and pinned pendulum in air")

	// horizontal rod above the water
	L, N := 4.0, 1
	e := env.NewParams()
	o := newTestRod(tst, "free", N, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{L, 0, 5}, e).(*Free)
	initState(o)
	dXdt := make([]float64, 12)
	if err := o.GetStateDeriv(dXdt); err != nil {
		tst.Errorf("GetStateDeriv failed:\n%v", err)
		return
	}
	io.Pforan("free: a6 = %v\n", dXdt[:6])
	chk.Array(tst, "free fall", 1e-10, dXdt[:6], []float64{0, 0, -e.G, 0, 0, 0})
	checkPositiveDefinite(tst, "free", &o.M6net)

	// same rod pinned at end A
	p := newTestRod(tst, "pinned", N, mgl64.Vec3{0, 0, 5}, mgl64.Vec3{L, 0, 5}, e).(*Pinned)
	p.SetKinematics(mech.Vec6{0, 0, 5}, mech.Vec6{}, mech.Vec6{}, 0)
	initState(p)
	dp := make([]float64, 6)
	if err := p.GetStateDeriv(dp); err != nil {
		tst.Errorf("GetStateDeriv failed:\n%v", err)
		return
	}
	m, d := p.Mass, p.Sec.D
	Ir := m / 12 * (0.75*d*d + L*L)
	αy := m * e.G * L / 2 / (m*L*L/2 + Ir)
	io.Pforan("pinned: α = %v (αy = %v)\n", dp[:3], αy)
	chk.Array(tst, "pinned α", 1e-12, dp[:3], []float64{0, αy, 0})
	chk.Array(tst, "pinned dq/dt", 1e-15, dp[3:6], []float64{0, 0, 0})

	// accelerating pin: a horizontal acceleration of the pin does not rotate a horizontal rod
	// along the same direction, but a vertical one does
	p.SetKinematics(mech.Vec6{0, 0, 5}, mech.Vec6{}, mech.Vec6{2, 0, 0}, 0)
	p.GetStateDeriv(dp)
	chk.Float64(tst, "pinned αy (ax)", 1e-12, dp[1], αy)
	p.SetKinematics(mech.Vec6{0, 0, 5}, mech.Vec6{}, mech.Vec6{0, 0, -e.G}, 0)
	p.GetStateDeriv(dp)
	chk.Float64(tst, "pinned αy (free falling pin)", 1e-12, dp[1], 0)
}

func Test_eom02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom02. rotating rod: rate of change of direction")

	o := newTestRod(tst, "free", 3, mgl64.Vec3{0, 0, -40}, mgl64.Vec3{6, 0, -40}, nil).(*Free)
	X := initState(o)
	X[5] = 0.5 // ωz
	X[0] = 1.5 // vx
	o.SetState(X, 0)
	dXdt := make([]float64, 12)
	if err := o.GetStateDeriv(dXdt); err != nil {
		tst.Errorf("GetStateDeriv failed:\n%v", err)
		return
	}
	chk.Array(tst, "drA/dt", 1e-15, dXdt[6:9], []float64{1.5, 0, 0})
	chk.Array(tst, "dq/dt", 1e-15, dXdt[9:12], []float64{0, 0.5, 0})
	checkVec(tst, "vB", 1e-14, o.NodeB().Rd, mgl64.Vec3{1.5, 3, 0})
}

func Test_eom03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom03. reactions of coupled rods")

	e := env.NewParams()
	r6 := mech.NewVec6(mgl64.Vec3{1, 0, -15}, mgl64.Vec3{0.6, 0, 0.8})
	v6 := mech.Vec6{0.1, 0, 0.2, 0, 0.05, 0}
	a6 := mech.Vec6{0.3, -0.1, 0.2, 0.01, 0.02, -0.03}

	// fixed
	f := newTestRod(tst, "coupled", 4, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, e).(*CoupledFixed)
	f.SetKinematics(r6, v6, a6, 0.5)
	F, err := f.GetCoupledForce()
	if err != nil {
		tst.Errorf("GetCoupledForce failed:\n%v", err)
		return
	}
	Fref := f.F6net.Sub(f.M6net.MulVec(a6))
	io.Pforan("F (fixed) = %v\n", F)
	chk.Array(tst, "F (fixed)", 1e-12, F[:], Fref[:])

	// pinned: rotational reaction is zero
	p := newTestRod(tst, "coupledpinned", 4, mgl64.Vec3{}, mgl64.Vec3{0.6, 0, 0.8}, e).(*CoupledPinned)
	p.SetKinematics(r6, v6, a6, 0.5)
	X := initState(p)
	dXdt := make([]float64, len(X))
	if err = p.GetStateDeriv(dXdt); err != nil {
		tst.Errorf("GetStateDeriv failed:\n%v", err)
		return
	}
	F, err = p.GetCoupledForce()
	if err != nil {
		tst.Errorf("GetCoupledForce failed:\n%v", err)
		return
	}
	a6p := a6
	a6p.SetR(mgl64.Vec3{dXdt[0], dXdt[1], dXdt[2]})
	Fp := p.F6net.Sub(p.M6net.MulVec(a6p))
	io.Pforan("F (pinned) = %v\n", F)
	chk.Array(tst, "F (pinned)", 1e-12, F[:], []float64{Fp[0], Fp[1], Fp[2], 0, 0, 0})

	// the rotational equations are satisfied by the solved α
	chk.Float64(tst, "rotational residual", 1e-10, mgl64.Vec3{Fp[3], Fp[4], Fp[5]}.Len(), 0)
}

func Test_eom04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom04. net load and mass about a reference point")

	o := newTestRod(tst, "fixed", 3, mgl64.Vec3{}, mgl64.Vec3{0, 0, 1}, nil).(*Fixed)
	o.SetKinematics(mech.NewVec6(mgl64.Vec3{2, 1, -8}, mgl64.Vec3{0, 0.6, 0.8}), mech.Vec6{}, mech.Vec6{}, 0)
	rRef := mgl64.Vec3{-1, 3, 0}
	F, M := o.GetNetForceAndMass(rRef)

	// about end A itself
	FA, MA := o.GetNetForceAndMass(o.NodeA().R)
	chk.Array(tst, "F about A", 1e-15, FA[:], o.F6net[:])
	checkPositiveDefinite(tst, "M about A", &MA)

	// load about rRef from the nodal forces
	var Fn mech.Vec6
	for _, nd := range o.Nodes {
		Fn = Fn.Add(mech.TranslateForce3to6(nd.R.Sub(rRef), nd.Fnet))
	}
	Fn.SetR(Fn.R().Add(o.Mext))
	chk.Array(tst, "F about rRef", 1e-10, F[:], Fn[:])
	checkPositiveDefinite(tst, "M about rRef", &M)

	// translational mass is independent of the reference point
	for i := 0; i < 3; i++ {
		chk.Array(tst, io.Sf("Mtt row %d", i), 1e-15, M[i][:3], MA[i][:3])
	}
}

func Test_eom05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom05. singular systems fail and non-finite derivatives are reported")

	// massless dry rod: singular
	e := env.NewParams()
	sec := &Section{D: 0.1, W: 0}
	s, err := New("free", 3, sec, 2, mgl64.Vec3{0, 0, 10}, mgl64.Vec3{0, 0, 12}, e)
	if err != nil {
		tst.Errorf("New failed:\n%v", err)
		return
	}
	o := s.(*Free)
	initState(o)
	err = o.GetStateDeriv(make([]float64, 12))
	if err == nil {
		tst.Errorf("singular system must fail")
	}
	io.Pforan("err = %v\n", err)

	// non-finite fluid velocity: warning only
	var buf bytes.Buffer
	e = env.NewParams()
	e.Waves = nil
	r := newTestRod(tst, "free", 2, mgl64.Vec3{0, 0, -20}, mgl64.Vec3{0, 0, -10}, e).(*Free)
	r.Log = zerolog.New(&buf)
	r.DumpOnNaN = true
	initState(r)
	r.Nodes[1].U = mgl64.Vec3{math.NaN(), 0, 0}
	dXdt := make([]float64, 12)
	if err = r.GetStateDeriv(dXdt); err != nil {
		tst.Errorf("non-finite derivatives must not stop the integration:\n%v", err)
	}
	io.Pforan("log = %s\n", buf.String())
	if !strings.Contains(buf.String(), "non-finite state derivative") || !strings.Contains(buf.String(), "M6net[0]") {
		tst.Errorf("non-finite derivatives must be reported")
	}
}

func Test_eom06(tst *testing.T) {

	//verbose()
	chk.PrintTitle("eom06. only non-finite derivative reports are sampled; each rod has its own sampler")

	NewNaNSampler = func() zerolog.Sampler { return &zerolog.BurstSampler{Burst: 2, Period: time.Hour} }
	defer func() { NewNaNSampler = nil }()

	e := env.NewParams()
	e.Waves = nil
	bufs := make([]bytes.Buffer, 2)
	for k := range bufs {
		r := newTestRod(tst, "free", 2, mgl64.Vec3{0, 0, -20}, mgl64.Vec3{0, 0, -10}, e).(*Free)
		r.Log = zerolog.New(&bufs[k])
		r.Capacity = 1
		initState(r)

		// diverging rod: reported twice
		r.Nodes[1].U = mgl64.Vec3{math.NaN(), 0, 0}
		dXdt := make([]float64, 12)
		for i := 0; i < 6; i++ {
			r.GetStateDeriv(dXdt)
		}

		// refused and missing lines: all reported
		for i := 0; i < 8; i++ {
			r.AddLine(&testLine{id: i + 1}, true, B)
		}
		for i := 0; i < 5; i++ {
			r.RemoveLine(999, B)
		}
		out := bufs[k].String()
		io.Pforan("log = %s\n", out)
		chk.Int(tst, io.Sf("rod %d: non-finite reports", k), strings.Count(out, "non-finite state derivative"), 2)
		chk.Int(tst, io.Sf("rod %d: refused lines", k), strings.Count(out, "too many lines"), 7)
		chk.Int(tst, io.Sf("rod %d: missing lines", k), strings.Count(out, "line to be removed is not attached"), 5)
	}
}

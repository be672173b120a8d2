// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/mech"
)

// DoRHS computes the loads on all nodes and lumps them, together with the nodal mass matrices,
// into the net 6-DOF load F6net and the 6x6 mass matrix M6net about end A
func (o *Rod) DoRHS() {

	// constants
	sec, e := o.Sec, o.Env
	d, Ac := sec.D, sec.Area()
	ρw, g := e.RhoW, e.G
	a, b := o.NodeA(), o.NodeB()
	o.Mext = mgl64.Vec3{}

	// orientation
	o.Orient = mech.OrientationAngles(a.R, b.R, o.R6.R())
	q := o.Orient.K
	sφ, cφ, tφ := o.Orient.SinPhi, o.Orient.CosPhi, o.Orient.TanPhi
	sβ, cβ := o.Orient.SinBeta, o.Orient.CosBeta
	o.Roll = -o.Orient.Phi * sβ
	o.Pitch = o.Orient.Phi * cβ

	// interior nodes
	for i := 1; i < o.N; i++ {
		s := float64(i) / float64(o.N)
		nd := o.Nodes[i]
		nd.R = a.R.Add(b.R.Sub(a.R).Mul(s))
		nd.Rd = a.Rd.Add(b.Rd.Sub(a.Rd).Mul(s))
	}
	if o.N > 0 {
		for i := 0; i < o.N; i++ {
			o.V[i] = Ac * o.Dl[i]
		}
	}

	// ambient samples
	if e.Waves != nil {
		for _, nd := range o.Nodes {
			nd.U, nd.Ud, nd.Zeta, nd.PDyn = e.Waves.Kinematics(nd.R, o.Time)
		}
	}

	// submergence
	ζ := b.Zeta
	zA, zB := a.R[2], b.R[2]
	wetA, wetB := zA < ζ, zB < ζ
	o.Sub = submergedInterval(zA, zB, ζ, o.L)

	// nodes
	I := mgl64.Ident3()
	qq := q.OuterProd3(q)
	Ca := I.Sub(qq).Mul(sec.Can).Add(qq.Mul(sec.Cat))
	Lsum := 0.0
	for i, nd := range o.Nodes {

		// attributed length, mass and volume
		switch {
		case o.N == 0:
			nd.DL = 0
		case i == 0:
			nd.DL = 0.5 * o.Dl[0]
		case i == o.N:
			nd.DL = 0.5 * o.Dl[o.N-1]
		default:
			nd.DL = 0.5 * (o.Dl[i-1] + o.Dl[i])
		}
		v := Ac * nd.DL
		m := o.Rho * v
		nd.VOF = fraction(Lsum, Lsum+nd.DL, o.Sub)
		Lsum += nd.DL

		// mass matrix
		nd.M = I.Mul(m).Add(Ca.Mul(nd.VOF * ρw * v))

		// distributed loads
		nd.W, nd.Bo, nd.Dp, nd.Dq = mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}
		nd.Ap, nd.Aq, nd.Pd, nd.B = mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}, mgl64.Vec3{}
		if o.N == 0 {
			continue
		}

		// weight
		nd.W[2] = -m * g

		// buoyancy from the pressure on the side surface
		Fb := -nd.VOF * Ac * nd.DL * ρw * g * sφ
		nd.Bo = mgl64.Vec3{Fb * cβ * cφ, Fb * sβ * cφ, -Fb * sφ}

		// drag; tangential drag on the side is neglected
		vi := nd.U.Sub(nd.Rd)
		vq := q.Mul(vi.Dot(q))
		vp := vi.Sub(vq)
		nd.Dp = vp.Mul(nd.VOF * 0.5 * ρw * sec.Cdn * d * nd.DL * vp.Len())

		// Froude-Krylov; tangential component on the side is neglected
		aq := q.Mul(nd.Ud.Dot(q))
		ap := nd.Ud.Sub(aq)
		nd.Ap = ap.Mul(nd.VOF * ρw * (1 + sec.Can) * v)

		// seabed contact
		depth := e.Depth(nd.R)
		if nd.R[2] < -depth {
			nd.B[2] = ((-depth-nd.R[2])*e.Kbot - nd.Rd[2]*e.Cbot) * d * nd.DL
		}
	}

	// end effects. For zero-length rods both may apply to the same node
	if wetA {
		o.endEffects(a, ζ, 1, q, qq)
	}
	if wetB {
		o.endEffects(b, ζ, -1, q, qq)
	}

	// net nodal forces
	for _, nd := range o.Nodes {
		nd.Fnet = nd.NetForce()
	}

	// waterplane moment
	if wetA != wetB {
		Mw := math.Pi * math.Pow(d, 4) / 64 * ρw * g * sφ * (1 + 0.5*tφ*tφ)
		if cφ < 0 {
			Mw = -Mw
		}
		o.Mext = o.Mext.Add(mgl64.Vec3{Mw * sβ, -Mw * cβ, 0})
	}

	// loads from attached lines
	for _, at := range o.AttA {
		f, m, M := at.Line.GetEndStuff(at.Top)
		a.Fnet = a.Fnet.Add(f)
		a.M = a.M.Add(M)
		o.Mext = o.Mext.Add(m)
	}
	for _, at := range o.AttB {
		f, m, M := at.Line.GetEndStuff(at.Top)
		b.Fnet = b.Fnet.Add(f)
		b.M = b.M.Add(M)
		o.Mext = o.Mext.Add(m)
	}

	// lumping about end A
	o.F6net, o.M6net = mech.Vec6{}, mech.Mat6{}
	for _, nd := range o.Nodes {
		r := nd.R.Sub(a.R)
		o.F6net = o.F6net.Add(mech.TranslateForce3to6(r, nd.Fnet))
		M6 := mech.TranslateMass3to6(r, nd.M)
		o.M6net = o.M6net.Add(&M6)
	}

	// rotational inertia about the centroids of segments
	if o.N > 0 {
		Il := o.Mass * d * d / 8
		Ir := o.Mass / 12 * (0.75*d*d + math.Pow(o.L/float64(o.N), 2))
		o.M6net.AddBlock(1, 1, mech.RotateToGlobal(mgl64.Diag3(mgl64.Vec3{Ir, Ir, Il}), o.Orient.Rotation()))
	}

	// centripetal and gyroscopic terms
	if o.InertialTerms {
		ω := o.V6.R()
		rCG := q.Mul(0.5 * o.L)
		Fc := ω.Cross(ω.Cross(rCG)).Mul(-o.Mass)
		Mg := ω.Cross(o.M6net.Block(1, 1).Mul3x1(ω)).Mul(-1)
		o.F6net = o.F6net.Add(mech.NewVec6(Fc, Mg))
	}

	// external moment
	o.F6net.SetR(o.F6net.R().Add(o.Mext))
}

// endEffects adds the loads and added mass of a submerged end
//  sgn -- +1 for end A and -1 for end B; the outward normal of the end face is -sgn q
func (o *Rod) endEffects(nd *Node, ζ, sgn float64, q mgl64.Vec3, qq mgl64.Mat3) {
	sec, e := o.Sec, o.Env
	d, Ac := sec.D, sec.Area()
	ρw, g := e.RhoW, e.G
	Vcap := 2.0 / 3.0 * math.Pi * d * d * d / 8
	vof := nd.VOF
	if nd.DL == 0 {
		vof = 1
	}

	// buoyancy and moment from the pressure on the end face
	nd.Bo = nd.Bo.Add(q.Mul(sgn * vof * Ac * ρw * g * (ζ - nd.R[2])))
	Mt := -sgn * vof * math.Pi * math.Pow(d, 4) / 64 * ρw * g * o.Orient.SinPhi
	o.Mext = o.Mext.Add(mgl64.Vec3{Mt * o.Orient.SinBeta, -Mt * o.Orient.CosBeta, 0})

	// axial drag
	vi := nd.U.Sub(nd.Rd)
	vq := q.Mul(vi.Dot(q))
	nd.Dq = nd.Dq.Add(vq.Mul(vof * 0.5 * ρw * sec.CdEnd * Ac * vq.Len()))

	// Froude-Krylov and added mass
	aq := q.Mul(nd.Ud.Dot(q))
	nd.Aq = nd.Aq.Add(aq.Mul(vof * ρw * (1 + sec.CaEnd) * Vcap))
	nd.M = nd.M.Add(qq.Mul(vof * ρw * sec.CaEnd * Vcap))

	// dynamic pressure
	nd.Pd = nd.Pd.Add(q.Mul(sgn * vof * Ac * nd.PDyn))
}

// submergedInterval returns the part of the axis, measured from end A, below the free surface
func submergedInterval(zA, zB, ζ, L float64) (s [2]float64) {
	switch {
	case zA < ζ && zB < ζ:
		return [2]float64{-L, 2 * L}
	case zA < ζ && ζ <= zB:
		return [2]float64{-L, L * (ζ - zA) / (zB - zA)}
	case zB < ζ && ζ <= zA:
		return [2]float64{L - L*(ζ-zB)/(zA-zB), 2 * L}
	}
	return
}

// fraction returns the part of [s0,s1] within the submerged interval
func fraction(s0, s1 float64, sub [2]float64) float64 {
	if s1 <= s0 {
		return 0
	}
	lo, hi := math.Max(s0, sub[0]), math.Min(s1, sub[1])
	if hi <= lo {
		return 0
	}
	return (hi - lo) / (s1 - s0)
}

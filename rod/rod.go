// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package rod implements rigid cylindrical elements of lumped-mass mooring systems. A rod may be
// free (6 DOFs integrated as states), pinned (rotations integrated as states, end A prescribed)
// or fixed (all DOFs prescribed), and exchanges boundary conditions with lines attached to its ends
package rod

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/mech"
	"github.com/rs/zerolog"
)

// Logger is the logger used by new rods
var Logger = zerolog.Nop()

// NewNaNSampler, if not nil, allocates the sampler of non-finite derivative reports of each new
// rod. Other events are never sampled
var NewNaNSampler func() zerolog.Sampler

// Section holds the properties of a rod cross-section
type Section struct {
	Name  string  `mapstructure:"name"`  // name of section
	D     float64 `mapstructure:"d"`     // diameter
	W     float64 `mapstructure:"w"`     // mass per unit length [kg/m]
	Can   float64 `mapstructure:"can"`   // transverse added-mass coefficient
	Cat   float64 `mapstructure:"cat"`   // tangential added-mass coefficient
	Cdn   float64 `mapstructure:"cdn"`   // transverse drag coefficient
	Cdt   float64 `mapstructure:"cdt"`   // tangential drag coefficient
	CaEnd float64 `mapstructure:"caend"` // end added-mass coefficient
	CdEnd float64 `mapstructure:"cdend"` // end drag coefficient
}

// Check validates section properties
func (o *Section) Check() (err error) {
	if o.D <= 0 {
		return chk.Err("diameter of section %q must be positive. d = %g is invalid", o.Name, o.D)
	}
	if o.W < 0 {
		return chk.Err("mass per length of section %q must be non-negative. w = %g is invalid", o.Name, o.W)
	}
	if o.Can < 0 || o.Cat < 0 || o.Cdn < 0 || o.Cdt < 0 || o.CaEnd < 0 || o.CdEnd < 0 {
		return chk.Err("hydrodynamic coefficients of section %q must be non-negative", o.Name)
	}
	return
}

// Area returns the cross-sectional area
func (o *Section) Area() float64 {
	return 0.25 * math.Pi * o.D * o.D
}

// Node holds the kinematics, ambient samples and loads of one node along the rod axis
type Node struct {

	// kinematics
	R  mgl64.Vec3 // position
	Rd mgl64.Vec3 // velocity

	// ambient samples
	U    mgl64.Vec3 // fluid velocity
	Ud   mgl64.Vec3 // fluid acceleration
	Zeta float64    // free surface elevation
	PDyn float64    // dynamic pressure

	// loads
	W    mgl64.Vec3 // weight
	Bo   mgl64.Vec3 // buoyancy
	Dp   mgl64.Vec3 // transverse drag
	Dq   mgl64.Vec3 // tangential drag
	Ap   mgl64.Vec3 // transverse Froude-Krylov force
	Aq   mgl64.Vec3 // tangential Froude-Krylov force
	Pd   mgl64.Vec3 // dynamic pressure force
	B    mgl64.Vec3 // seabed contact
	Fnet mgl64.Vec3 // net force
	M    mgl64.Mat3 // mass matrix including added mass

	// auxiliary
	DL  float64 // attributed length
	VOF float64 // submerged fraction of attributed length
}

// NetForce returns the sum of all load components
func (o *Node) NetForce() mgl64.Vec3 {
	return o.W.Add(o.Bo).Add(o.Dp).Add(o.Dq).Add(o.Ap).Add(o.Aq).Add(o.Pd).Add(o.B)
}

// Rod holds the data shared by all kinematic regimes
type Rod struct {

	// basic data
	Id            int             // identifier
	Sec           *Section        // cross-section
	N             int             // number of segments; 0 means a zero-length rod
	L             float64         // unstretched length
	Rho           float64         // density implied by mass per length and diameter
	Mass          float64         // dry mass
	Env           *env.Params     // environment
	InertialTerms bool            // apply centripetal and gyroscopic terms
	Capacity      int             // maximum number of lines per end; ≤ 0 means unbounded
	DumpOnNaN     bool            // dump loads when non-finite derivatives are found
	Log           zerolog.Logger  // diagnostics
	NaNSampler    zerolog.Sampler // sampling of non-finite derivative reports; nil reports all

	// geometry
	Nodes []*Node   // N+1 nodes from end A to end B
	Dl    []float64 // [max(N,1)] segment lengths
	V     []float64 // [max(N,1)] segment volumes

	// rigid body kinematics: {rA, q}, {vA, ω} and {aA, α}
	R6   mech.Vec6
	V6   mech.Vec6
	A6   mech.Vec6
	Time float64

	// results of DoRHS
	F6net  mech.Vec6   // net load about end A
	M6net  mech.Mat6   // mass matrix about end A
	Mext   mgl64.Vec3  // external moment
	Orient mech.Orient // orientation angles
	Roll   float64     // roll angle
	Pitch  float64     // pitch angle
	Sub    [2]float64  // submerged interval along the axis, measured from end A

	// attachments
	AttA []Attachment // lines at end A
	AttB []Attachment // lines at end B

	// initial geometry
	r0 mgl64.Vec3 // end A
	q0 mgl64.Vec3 // direction
}

// Setup allocates nodes and computes geometry and mass properties
//  endA, endB -- initial coordinates of the ends. For N = 0 the length is zero and the
//                direction from A to B (if any) is used as the initial orientation
func (o *Rod) Setup(id int, sec *Section, N int, endA, endB mgl64.Vec3, e *env.Params) (err error) {

	// check
	if sec == nil {
		return chk.Err("rod %d: section must be given", id)
	}
	if err = sec.Check(); err != nil {
		return chk.Err("rod %d: invalid section:\n%v", id, err)
	}
	if N < 0 {
		return chk.Err("rod %d: number of segments must be non-negative. N = %d is invalid", id, N)
	}
	if e == nil {
		return chk.Err("rod %d: environment must be given", id)
	}
	if err = e.Check(); err != nil {
		return chk.Err("rod %d: invalid environment:\n%v", id, err)
	}

	// basic data
	o.Id, o.Sec, o.N, o.Env = id, sec, N, e
	if o.Capacity == 0 {
		o.Capacity = DefaultCapacity
	}
	o.Log = Logger.With().Int("rod", id).Logger()
	if NewNaNSampler != nil {
		o.NaNSampler = NewNaNSampler()
	}

	// direction and length
	q, l, ok := mech.UnitVector(endA, endB)
	if !ok {
		q = mgl64.Vec3{0, 0, 1}
	}
	if N == 0 {
		l = 0
	}
	o.L, o.r0, o.q0 = l, endA, q

	// mass properties
	o.Rho = sec.W / sec.Area()
	o.Mass = sec.W * o.L

	// segments
	nseg := N
	if nseg < 1 {
		nseg = 1
	}
	o.Dl = make([]float64, nseg)
	o.V = make([]float64, nseg)
	if N > 0 {
		for i := 0; i < N; i++ {
			o.Dl[i] = o.L / float64(N)
			o.V[i] = sec.Area() * o.Dl[i]
		}
	}

	// nodes
	o.Nodes = make([]*Node, N+1)
	for i := 0; i <= N; i++ {
		o.Nodes[i] = new(Node)
	}
	o.R6, o.V6, o.A6 = mech.Vec6{}, mech.Vec6{}, mech.Vec6{}
	return
}

// NodeA returns the node at end A
func (o *Rod) NodeA() *Node { return o.Nodes[0] }

// NodeB returns the node at end B
func (o *Rod) NodeB() *Node { return o.Nodes[o.N] }

// Q returns the unit vector from end A to end B
func (o *Rod) Q() mgl64.Vec3 { return o.R6.R() }

// Base returns the rod shared by all regimes
func (o *Rod) Base() *Rod { return o }

// setUnit sets the direction part of R6 to the unit vector of q. A zero q keeps the previous direction.
func (o *Rod) setUnit(q mgl64.Vec3) {
	l := q.Len()
	if l < mech.MinLen || math.IsNaN(l) {
		o.Log.Debug().Float64("time", o.Time).Msg("zero direction vector; previous orientation retained")
		if o.R6.R().Len() < mech.MinLen {
			o.R6.SetR(o.q0)
		}
		return
	}
	o.R6.SetR(q.Mul(1.0 / l))
}

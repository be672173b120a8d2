// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.sim) JSON or YAML file
package inp

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/utl"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/gomoor/gomoor/env"
	"github.com/gomoor/gomoor/line"
	"github.com/gomoor/gomoor/rod"
	"github.com/spf13/viper"
)

// EnvData holds the environment constants
type EnvData struct {
	RhoW  float64 `mapstructure:"rhow"`  // water density
	G     float64 `mapstructure:"g"`     // gravitational acceleration
	Kbot  float64 `mapstructure:"kbot"`  // seabed contact stiffness
	Cbot  float64 `mapstructure:"cbot"`  // seabed contact damping
	Depth float64 `mapstructure:"depth"` // depth of flat seabed; also used by the wave dispersion relation
}

// BathyData holds a gridded bathymetry
type BathyData struct {
	X      []float64   `mapstructure:"x"`      // [nx] grid coordinates
	Y      []float64   `mapstructure:"y"`      // [ny] grid coordinates
	Depths [][]float64 `mapstructure:"depths"` // [ny][nx] depths
}

// RodData holds rod data
type RodData struct {
	Id            int        `mapstructure:"id"`            // identifier
	Kind          string     `mapstructure:"kind"`          // "free", "pinned", "fixed", "coupledpinned" or "coupled"
	Section       string     `mapstructure:"section"`       // name of section
	N             int        `mapstructure:"n"`             // number of segments
	EndA          mgl64.Vec3 `mapstructure:"enda"`          // initial position of end A
	EndB          mgl64.Vec3 `mapstructure:"endb"`          // initial position of end B
	InertialTerms bool       `mapstructure:"inertialterms"` // apply centripetal and gyroscopic terms
	Capacity      int        `mapstructure:"capacity"`      // lines per end; 0 means use the global value
	Motion        []string   `mapstructure:"motion"`        // [6] functions with offsets of {x, y, z, rx, ry, rz} of driven rods
}

// SolverData holds time integration data
type SolverData struct {
	Type string  `mapstructure:"type"` // "rk4" or "euler"
	Dt   float64 `mapstructure:"dt"`   // time step
	Tf   float64 `mapstructure:"tf"`   // final time
}

// OutputData holds output data
type OutputData struct {
	Dt     float64 `mapstructure:"dt"`     // output interval
	DirOut string  `mapstructure:"dirout"` // directory for output; e.g. /tmp/gomoor
	Csv    bool    `mapstructure:"csv"`    // write time histories to csv files
	Plot   bool    `mapstructure:"plot"`   // plot time histories
}

// Simulation holds all simulation data
type Simulation struct {

	// input
	Desc       string       `mapstructure:"desc"`       // description of simulation
	LogLevel   string       `mapstructure:"logLevel"`   // level of diagnostics
	Capacity   int          `mapstructure:"capacity"`   // lines per rod end
	DumpOnNaN  bool         `mapstructure:"dumponnan"`  // dump rod loads when derivatives are not finite
	Env        EnvData      `mapstructure:"env"`        // environment constants
	Waves      env.WaveData `mapstructure:"waves"`      // wave kinematics
	Bathymetry *BathyData   `mapstructure:"bathymetry"` // gridded seabed; nil means flat
	Functions  FuncsData    `mapstructure:"functions"`  // functions of time for prescribed motions
	Sections   SectionsData `mapstructure:"sections"`   // rod cross-sections
	Rods       []*RodData   `mapstructure:"rods"`       // rods
	Lines      []*line.Data `mapstructure:"lines"`      // lines
	Solver     SolverData   `mapstructure:"solver"`     // time integration
	Output     OutputData   `mapstructure:"output"`     // results

	// derived
	Key    string // simulation key; e.g. mysim01.sim => mysim01
	DirOut string // directory to save results
}

// SetDefault sets default values
func SetDefault(v *viper.Viper) {
	v.SetDefault("logLevel", "info")
	v.SetDefault("capacity", rod.DefaultCapacity)

	v.SetDefault("env.rhow", env.DefaultRhoW)
	v.SetDefault("env.g", env.DefaultG)
	v.SetDefault("env.kbot", env.DefaultKbot)
	v.SetDefault("env.cbot", env.DefaultCbot)
	v.SetDefault("env.depth", env.DefaultDepth)

	v.SetDefault("waves.kind", "still")

	v.SetDefault("solver.type", "rk4")
	v.SetDefault("solver.dt", 1e-3)
	v.SetDefault("solver.tf", 10.0)

	v.SetDefault("output.dt", 0.1)
}

// ReadSim reads all simulation data from a .sim file. Files ending in .yaml or .yml are
// decoded as YAML; everything else as JSON
func ReadSim(simfilepath string) (o *Simulation, err error) {

	// viper
	v := viper.New()
	SetDefault(v)
	v.SetConfigFile(simfilepath)
	switch strings.ToLower(filepath.Ext(simfilepath)) {
	case ".yaml", ".yml":
		v.SetConfigType("yaml")
	default:
		v.SetConfigType("json")
	}

	// read and decode
	if err = v.ReadInConfig(); err != nil {
		return nil, chk.Err("cannot read simulation file %q:\n%v", simfilepath, err)
	}
	o = new(Simulation)
	if err = v.Unmarshal(o); err != nil {
		return nil, chk.Err("cannot decode simulation file %q:\n%v", simfilepath, err)
	}

	// filename key and output directory
	o.Key = io.FnKey(filepath.Base(simfilepath))
	o.DirOut = os.ExpandEnv(o.Output.DirOut)
	if o.DirOut == "" {
		o.DirOut = filepath.Join(os.TempDir(), "gomoor", o.Key)
	}

	// check
	if err = o.PostProcess(); err != nil {
		return nil, chk.Err("invalid simulation file %q:\n%v", simfilepath, err)
	}
	return
}

// PostProcess fixes derived values and validates the data
func (o *Simulation) PostProcess() (err error) {

	// time control
	if o.Solver.Dt <= 0 {
		return chk.Err("time step must be positive. dt = %g is invalid", o.Solver.Dt)
	}
	if o.Solver.Tf <= 0 {
		return chk.Err("final time must be positive. tf = %g is invalid", o.Solver.Tf)
	}
	if o.Output.Dt < o.Solver.Dt {
		o.Output.Dt = o.Solver.Dt
	}

	// sections
	if err = o.Sections.Check(); err != nil {
		return
	}

	// rods
	ids := make(map[int]*RodData)
	for _, r := range o.Rods {
		if _, found := ids[r.Id]; found {
			return chk.Err("rod id %d is repeated", r.Id)
		}
		ids[r.Id] = r
		if r.Id <= 0 {
			return chk.Err("rod ids must be positive. id = %d is invalid", r.Id)
		}
		if utl.StrIndexSmall(rod.Kinds(), r.Kind) < 0 {
			return chk.Err("rod %d: kind %q is not available. kinds = %v", r.Id, r.Kind, rod.Kinds())
		}
		if o.Sections.Get(r.Section) == nil {
			return chk.Err("rod %d: cannot find section named %q", r.Id, r.Section)
		}
		if r.Capacity == 0 {
			r.Capacity = o.Capacity
		}
		if len(r.Motion) != 0 && len(r.Motion) != 6 {
			return chk.Err("rod %d: motion requires 6 functions. %d is invalid", r.Id, len(r.Motion))
		}
		for _, name := range r.Motion {
			if _, err = o.Functions.Get(name); err != nil {
				return chk.Err("rod %d: invalid motion:\n%v", r.Id, err)
			}
		}
	}

	// lines
	lids := make(map[int]bool)
	for _, l := range o.Lines {
		if lids[l.Id] {
			return chk.Err("line id %d is repeated", l.Id)
		}
		lids[l.Id] = true
		if _, found := ids[l.Rod]; !found {
			return chk.Err("line %d: cannot find rod %d", l.Id, l.Rod)
		}
		if _, err = ParseEnd(l.RodEnd); err != nil {
			return chk.Err("line %d: %v", l.Id, err)
		}
		if l.Rod2 != 0 {
			if _, found := ids[l.Rod2]; !found {
				return chk.Err("line %d: cannot find second rod %d", l.Id, l.Rod2)
			}
			if _, err = ParseEnd(l.Rod2End); err != nil {
				return chk.Err("line %d: %v", l.Id, err)
			}
		}
	}
	return
}

// Environment allocates the environment
func (o *Simulation) Environment() (e *env.Params, err error) {
	e = &env.Params{RhoW: o.Env.RhoW, G: o.Env.G, Kbot: o.Env.Kbot, Cbot: o.Env.Cbot}
	e.Seabed = &env.FlatSeabed{Depth: o.Env.Depth}
	if o.Bathymetry != nil {
		e.Seabed, err = env.NewBathymetry(o.Bathymetry.X, o.Bathymetry.Y, o.Bathymetry.Depths)
		if err != nil {
			return nil, chk.Err("cannot allocate bathymetry:\n%v", err)
		}
	}
	if err = e.Check(); err != nil {
		return
	}
	e.Waves, err = env.NewWaves(&o.Waves, o.Env.Depth, e)
	if err != nil {
		return nil, chk.Err("cannot allocate waves:\n%v", err)
	}
	return
}

// GetRod returns rod data by giving its id
//  Note: returns nil if not found
func (o *Simulation) GetRod(id int) *RodData {
	for _, r := range o.Rods {
		if r.Id == id {
			return r
		}
	}
	return nil
}

// ParseEnd converts "A" or "B" (any case) into a rod end
func ParseEnd(s string) (rod.End, error) {
	switch strings.ToUpper(s) {
	case "A":
		return rod.A, nil
	case "B":
		return rod.B, nil
	}
	return 0, chk.Err("rod end must be \"A\" or \"B\". %q is invalid", s)
}

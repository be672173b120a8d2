// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package sim implements the simulation driver: it builds rods and lines, owns the global state
// vector, drives prescribed motions and integrates the equations of motion in time
package sim

import (
	"math"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gomoor/gomoor/inp"
	"github.com/gomoor/gomoor/out"
	"github.com/rs/zerolog"
)

// Logger is the logger used by new simulations
var Logger = zerolog.Nop()

// Main holds all data for a simulation
type Main struct {
	Sim     *inp.Simulation // simulation data
	Sys     *System         // rods, lines and state vector
	Solver  Integrator      // time integrator
	Hist    *out.History    // output
	Log     zerolog.Logger  // diagnostics
	ShowMsg bool            // show messages
}

// NewMain returns a new Main structure
//  Input:
//   simfilepath -- simulation (.sim) filename including full path
//   verbose     -- show messages
func NewMain(simfilepath string, verbose bool) (o *Main, err error) {
	sim, err := inp.ReadSim(simfilepath)
	if err != nil {
		return
	}
	if verbose {
		io.Pf("> Simulation (.sim) file read\n")
	}
	return NewMainFromSim(sim, verbose)
}

// NewMainFromSim returns a new Main structure with simulation data already read
func NewMainFromSim(sim *inp.Simulation, verbose bool) (o *Main, err error) {

	// new Main object
	o = &Main{Sim: sim, ShowMsg: verbose}
	o.Log = Logger.With().Str("sim", sim.Key).Logger()

	// allocate rods and lines
	o.Sys, err = NewSystem(sim, o.Log)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> %d rods, %d lines and %d states allocated\n", len(o.Sys.Rods), len(o.Sys.Lines), len(o.Sys.X))
	}

	// allocate solver
	o.Solver, err = NewIntegrator(sim.Solver.Type, len(o.Sys.X))
	if err != nil {
		return nil, err
	}

	// output
	o.Hist, err = out.NewHistory(o.Sys.Channels())
	return
}

// Run runs the simulation from t = 0 until the final time
func (o *Main) Run() (err error) {

	// exit commands
	cputime := time.Now()
	defer func() { err = o.onexit(cputime, err) }()

	// initial state
	o.Sys.Initialize()
	if err = o.record(); err != nil {
		return
	}

	// message
	if o.ShowMsg {
		io.Pf("> Running %s solver\n", o.Sim.Solver.Type)
	}

	// time loop
	dt, tf, dtout := o.Sim.Solver.Dt, o.Sim.Solver.Tf, o.Sim.Output.Dt
	tout := dtout
	for step := 1; o.Sys.T < tf-out.TolT; step++ {

		// step
		h := math.Min(dt, tf-o.Sys.T)
		if err = o.Solver.Step(o.Sys.Deriv, o.Sys.T, h, o.Sys.X); err != nil {
			o.Log.Error().Err(err).Float64("time", o.Sys.T).Msg("time integration stopped")
			return
		}
		o.Sys.T += h

		// output
		if o.Sys.T >= tout-out.TolT || o.Sys.T >= tf-out.TolT {
			if err = o.record(); err != nil {
				return
			}
			tout += dtout
			o.Log.Debug().Int("step", step).Float64("time", o.Sys.T).Msg("output")
		}
	}

	// save results
	if o.Sim.Output.Csv {
		var fn string
		if fn, err = o.Hist.SaveCSV(o.Sim.DirOut, o.Sim.Key); err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> Results saved to %s\n", fn)
		}
	}
	if o.Sim.Output.Plot {
		var fns []string
		if fns, err = out.Draw(o.Hist, out.DefaultSplots(o.Hist), o.Sim.DirOut, o.Sim.Key); err != nil {
			return
		}
		if o.ShowMsg {
			io.Pf("> %d figures saved to %s\n", len(fns), o.Sim.DirOut)
		}
	}
	return
}

// auxiliary //////////////////////////////////////////////////////////////////////////////////////

// record appends the current values of all channels to the output
func (o *Main) record() (err error) {
	vals, err := o.Sys.Values()
	if err != nil {
		return
	}
	return o.Hist.Append(o.Sys.T, vals)
}

// onexit prints final message with simulation and cpu times
func (o *Main) onexit(cputime time.Time, prevErr error) (err error) {
	if o.ShowMsg {
		if prevErr == nil {
			io.PfGreen("> Success\n")
			io.Pf("> CPU time = %v\n", time.Now().Sub(cputime))
		} else {
			io.PfRed("> Failed\n")
		}
	}
	if prevErr != nil {
		err = chk.Err("simulation %q failed at t = %g:\n%v", o.Sim.Key, o.Sys.T, prevErr)
	}
	return
}

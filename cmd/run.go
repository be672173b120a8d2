// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/gomoor/gomoor/inp"
	"github.com/gomoor/gomoor/sim"
	"github.com/spf13/cobra"
)

var (
	runVerbose  bool
	runCsv      bool
	runPlot     bool
	runLogLevel string
	runLogFile  string
	runDirOut   string
	runTf       float64
)

var runCmd = &cobra.Command{
	Use:   "run <file.sim>",
	Short: "Run a simulation",
	Long: `Run a simulation described by a JSON (.sim) or YAML (.yaml) file.

Flags override the corresponding values in the file.

Examples:
  # run with messages and write csv files to /tmp/gomoor/spar
  gomoor run spar.sim -v --csv

  # shorter run with figures and debug messages
  gomoor run fairlead.yaml --tf 1 --plot --loglevel debug`,
	Args: cobra.ExactArgs(1),
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(runCmd)

	// messages
	runCmd.Flags().BoolVarP(&runVerbose, "verbose", "v", false, "Show messages")
	runCmd.Flags().StringVarP(&runLogLevel, "loglevel", "l", "", "Level of diagnostics: trace, debug, info, warn or error")
	runCmd.Flags().StringVar(&runLogFile, "logfile", "", "Also write diagnostics to this file")

	// output
	runCmd.Flags().BoolVar(&runCsv, "csv", false, "Write time histories to a csv file")
	runCmd.Flags().BoolVar(&runPlot, "plot", false, "Plot time histories")
	runCmd.Flags().StringVarP(&runDirOut, "dirout", "o", "", "Directory for output")

	// time
	runCmd.Flags().Float64Var(&runTf, "tf", 0, "Final time")
}

func runSim(cmd *cobra.Command, args []string) (err error) {

	// input data
	dat, err := inp.ReadSim(args[0])
	if err != nil {
		return
	}
	if err = applyFlags(cmd, dat); err != nil {
		return
	}

	// logging
	var file *os.File
	if runLogFile != "" {
		if file, err = os.Create(runLogFile); err != nil {
			return chk.Err("cannot create log file:\n%v", err)
		}
		defer file.Close()
	}
	log := setupLogging(dat.LogLevel, file)
	log.Info().Str("file", args[0]).Str("desc", dat.Desc).Msg("simulation read")

	// message
	if runVerbose {
		io.PfWhite("\ngomoor v%s -- lumped-mass mooring simulator\n", Version)
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "file", args[0],
			"show messages", "verbose", runVerbose,
			"level of diagnostics", "loglevel", dat.LogLevel,
			"final time", "tf", dat.Solver.Tf,
			"output directory", "dirout", dat.DirOut,
			"write csv", "csv", dat.Output.Csv,
			"plot", "plot", dat.Output.Plot,
		))
	}

	// run
	main, err := sim.NewMainFromSim(dat, runVerbose)
	if err != nil {
		return
	}
	return main.Run()
}

// applyFlags overrides simulation data with the flags given on the command line
func applyFlags(cmd *cobra.Command, dat *inp.Simulation) (err error) {
	flags := cmd.Flags()
	if flags.Changed("loglevel") {
		dat.LogLevel = runLogLevel
	}
	if flags.Changed("csv") {
		dat.Output.Csv = runCsv
	}
	if flags.Changed("plot") {
		dat.Output.Plot = runPlot
	}
	if flags.Changed("dirout") {
		dat.DirOut = os.ExpandEnv(runDirOut)
	}
	if flags.Changed("tf") {
		dat.Solver.Tf = runTf
		return dat.PostProcess()
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package cmd implements the command line interface
package cmd

import (
	"os"

	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gomoor",
	Short: "Lumped-mass mooring simulator",
	Long: `gomoor - time-domain simulation of rigid rods connected by mooring lines

Rods may be free, pinned, fixed or coupled to a prescribed platform motion.
Simulations are described by JSON (.sim) or YAML (.yaml) files.

Examples:
  # run a simulation and save time histories
  gomoor run spar.sim --csv --plot`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		io.PfRed("ERROR: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"
)

// Version is the version of gomoor
const Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gomoor",
	Run: func(cmd *cobra.Command, args []string) {
		io.Pf("gomoor v%s\n", Version)
		io.Pf("Copyright 2016 The Gofem Authors. All rights reserved.\n")
		io.Pf("Use of this source code is governed by a BSD-style\n")
		io.Pf("license that can be found in the LICENSE file.\n")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

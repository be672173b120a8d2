// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/gomoor/gomoor/rod"
	"github.com/gomoor/gomoor/sim"
	"github.com/rs/zerolog"
)

// parseLevel converts a level name (any case) into a zerolog level; unknown names give info
func parseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "TRACE":
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

// setupLogging sets the loggers of rods and simulations. Messages go to the console and, if
// file is not nil, without colors to file. Non-finite derivative reports are sampled per rod
// since a diverging rod reports at every derivative evaluation
func setupLogging(level string, file *os.File) zerolog.Logger {

	// level
	zerolog.SetGlobalLevel(parseLevel(level))
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	// writers
	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	if file != nil {
		w = zerolog.MultiLevelWriter(w, zerolog.ConsoleWriter{Out: file, TimeFormat: time.RFC3339, NoColor: true})
	}
	log := zerolog.New(w).With().Timestamp().Logger()

	// loggers
	sim.Logger = log
	rod.Logger = log
	rod.NewNaNSampler = func() zerolog.Sampler {
		return &zerolog.BurstSampler{
			Burst:       5,
			Period:      10 * time.Second,
			NextSampler: &zerolog.BasicSampler{N: 100},
		}
	}
	return log
}

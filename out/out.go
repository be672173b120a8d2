// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements simulation output handling: time histories, csv files and plotting
package out

import (
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// constants
var (
	TolT = 1e-10 // tolerance to compare times
)

// History holds the time histories of output channels
type History struct {
	Keys  []string       // channel keys; e.g. "rod1:zA", "line2:T"
	Times []float64      // [ntimes] output times
	Vals  [][]float64    // [nkeys][ntimes] values
	idx   map[string]int // key => index in Keys
}

// NewHistory allocates a history with the given channels
func NewHistory(keys []string) (o *History, err error) {
	o = &History{Keys: keys, Vals: make([][]float64, len(keys)), idx: make(map[string]int)}
	for i, key := range keys {
		if _, found := o.idx[key]; found {
			return nil, chk.Err("channel %q is repeated", key)
		}
		o.idx[key] = i
	}
	return
}

// Key returns the key of a channel belonging to an entity; e.g. Key("rod", 1, "zA") = "rod1:zA"
func Key(entity string, id int, channel string) string {
	return io.Sf("%s%d:%s", entity, id, channel)
}

// Channel splits a key into entity and channel; e.g. "rod1:zA" => "rod1", "zA"
func Channel(key string) (entity, channel string) {
	if i := strings.LastIndex(key, ":"); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// Append adds the values of all channels at time t
func (o *History) Append(t float64, vals []float64) (err error) {
	if len(vals) != len(o.Keys) {
		return chk.Err("number of values must be equal to the number of channels. %d != %d", len(vals), len(o.Keys))
	}
	if n := len(o.Times); n > 0 && t < o.Times[n-1]+TolT {
		return chk.Err("output times must increase. t = %g is not after %g", t, o.Times[n-1])
	}
	o.Times = append(o.Times, t)
	for i, v := range vals {
		o.Vals[i] = append(o.Vals[i], v)
	}
	return
}

// Get returns the time history of a channel
//  Note: returns nil if not found
func (o *History) Get(key string) []float64 {
	if i, ok := o.idx[key]; ok {
		return o.Vals[i]
	}
	return nil
}

// Ntimes returns the number of output times
func (o *History) Ntimes() int { return len(o.Times) }

// Last returns the last value of a channel
func (o *History) Last(key string) (val float64, err error) {
	v := o.Get(key)
	if v == nil {
		return 0, chk.Err("cannot find channel %q", key)
	}
	if len(v) == 0 {
		return 0, chk.Err("channel %q is empty", key)
	}
	return v[len(v)-1], nil
}

// Entities returns the entity part of all keys in order of appearance
func (o *History) Entities() (res []string) {
	seen := make(map[string]bool)
	for _, key := range o.Keys {
		ent, _ := Channel(key)
		if !seen[ent] {
			seen[ent] = true
			res = append(res, ent)
		}
	}
	return
}

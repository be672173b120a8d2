// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package env

import (
	"sort"

	"github.com/cpmech/gosl/chk"
)

// Seabed defines bathymetry services
type Seabed interface {
	GetDepthAt(x, y float64) float64 // returns the (positive) water depth at (x,y)
}

// FlatSeabed implements a constant water depth
type FlatSeabed struct {
	Depth float64
}

// GetDepthAt returns the constant depth
func (o *FlatSeabed) GetDepthAt(x, y float64) float64 {
	return o.Depth
}

// Bathymetry implements a gridded seabed with bilinear interpolation.
// Outside the grid the depth of the nearest border is used.
//
//   Depths[j][i] corresponds to (X[i], Y[j])
//
type Bathymetry struct {
	X      []float64   // increasing x-coordinates of grid
	Y      []float64   // increasing y-coordinates of grid
	Depths [][]float64 // [ny][nx] depths
}

// NewBathymetry allocates and checks a gridded seabed
func NewBathymetry(X, Y []float64, depths [][]float64) (o *Bathymetry, err error) {
	nx, ny := len(X), len(Y)
	if nx < 1 || ny < 1 {
		return nil, chk.Err("bathymetry grid must have at least one point in each direction. nx=%d, ny=%d", nx, ny)
	}
	if len(depths) != ny {
		return nil, chk.Err("bathymetry must have %d rows of depths. %d is incorrect", ny, len(depths))
	}
	for j, row := range depths {
		if len(row) != nx {
			return nil, chk.Err("row %d of bathymetry must have %d depths. %d is incorrect", j, nx, len(row))
		}
	}
	if !sort.Float64sAreSorted(X) || !sort.Float64sAreSorted(Y) {
		return nil, chk.Err("bathymetry coordinates must be increasing")
	}
	return &Bathymetry{X, Y, depths}, nil
}

// GetDepthAt interpolates the depth at (x,y)
func (o *Bathymetry) GetDepthAt(x, y float64) float64 {
	i, s := cell(o.X, x)
	j, t := cell(o.Y, y)
	d00 := o.Depths[j][i]
	d10, d01, d11 := d00, d00, d00
	if i+1 < len(o.X) {
		d10 = o.Depths[j][i+1]
	}
	if j+1 < len(o.Y) {
		d01 = o.Depths[j+1][i]
		if i+1 < len(o.X) {
			d11 = o.Depths[j+1][i+1]
		} else {
			d11 = d01
		}
	} else {
		d11 = d10
	}
	return (1-s)*(1-t)*d00 + s*(1-t)*d10 + (1-s)*t*d01 + s*t*d11
}

// cell finds the interval of a sorted grid containing x and the local coordinate s ∈ [0,1]
func cell(X []float64, x float64) (i int, s float64) {
	n := len(X)
	if n == 1 || x <= X[0] {
		return 0, 0
	}
	if x >= X[n-1] {
		return n - 2, 1
	}
	i = sort.SearchFloat64s(X, x) - 1
	if i < 0 {
		i = 0
	}
	s = (x - X[i]) / (X[i+1] - X[i])
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// figure size
var (
	FigWidth  = 16 * vg.Centimeter
	FigHeight = 10 * vg.Centimeter
)

// SplotDat stores all data for one figure with time histories
type SplotDat struct {
	Id    string   // unique identifier; used in the file name
	Title string   // title of figure
	Ylbl  string   // y-axis label
	Keys  []string // channels plotted against time
}

// DefaultSplots returns one figure per entity and group of channels
//  e.g. rod1 => rod1_position (xA, yA, zA), rod1_angles (roll, pitch), rod1_force (Fx, Fy, Fz) ...
func DefaultSplots(h *History) (splots []*SplotDat) {
	for _, ent := range h.Entities() {
		for _, grp := range Groups {
			s := &SplotDat{Id: ent + "_" + grp.Name, Title: ent, Ylbl: grp.Ylbl}
			for _, ch := range grp.Channels {
				key := ent + ":" + ch
				if h.Get(key) != nil {
					s.Keys = append(s.Keys, key)
				}
			}
			if len(s.Keys) > 0 {
				splots = append(splots, s)
			}
		}
	}
	return
}

// Draw saves one png figure per subplot into dirout
//  fnkey -- file name key; figures are named <fnkey>_<id>.png
func Draw(h *History, splots []*SplotDat, dirout, fnkey string) (fns []string, err error) {
	if err = os.MkdirAll(dirout, 0777); err != nil {
		return nil, chk.Err("cannot create directory for figures (%s): %v", dirout, err)
	}
	for _, spl := range splots {
		p := plot.New()
		p.Title.Text = spl.Title
		p.X.Label.Text = GetLabel("t")
		p.Y.Label.Text = spl.Ylbl
		p.Add(plotter.NewGrid())
		for i, key := range spl.Keys {
			y := h.Get(key)
			if y == nil {
				return nil, chk.Err("cannot plot channel %q: not found", key)
			}
			pts := make(plotter.XYs, len(h.Times))
			for j, t := range h.Times {
				pts[j].X, pts[j].Y = t, y[j]
			}
			l, err := plotter.NewLine(pts)
			if err != nil {
				return nil, chk.Err("cannot plot channel %q: %v", key, err)
			}
			l.LineStyle.Width = vg.Points(1.5)
			l.LineStyle.Color = plotutil.Color(i)
			p.Add(l)
			_, ch := Channel(key)
			p.Legend.Add(GetLabel(ch), l)
		}
		p.Legend.Top = true
		fn := filepath.Join(dirout, io.Sf("%s_%s.png", fnkey, spl.Id))
		if err = p.Save(FigWidth, FigHeight, fn); err != nil {
			return nil, chk.Err("cannot save figure %q: %v", fn, err)
		}
		fns = append(fns, fn)
	}
	return
}

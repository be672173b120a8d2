// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package rod

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
)

// DefaultCapacity is the default maximum number of lines attached to each end of a rod
const DefaultCapacity = 10

// errors reported by the attachment manager
var (
	ErrCapacity    = errors.New("rod end is full; line not attached")
	ErrNotAttached = errors.New("line is not attached to rod end")
)

// End selects one of the two ends of a rod
type End int

// ends of rods
const (
	A End = 0 // end A (first node)
	B End = 1 // end B (last node)
)

// String returns "A" or "B"
func (e End) String() string {
	if e == B {
		return "B"
	}
	return "A"
}

// Line defines the services of lines attached to rods
//  top -- selects the end of the line: true for the top (fairlead) end, false for the bottom (anchor) end
type Line interface {
	Id() int                                                   // identifier
	SetEndKinematics(r, rd mgl64.Vec3, t float64, top bool)    // sets position and velocity of line end
	SetEndOrientation(q mgl64.Vec3, top bool, rodEnd End)      // sets orientation of the rod holding the line end
	GetEndSegmentInfo(top bool) (q mgl64.Vec3, EI, dl float64) // unit direction, bending stiffness and stretched length of end segment
	GetEndStuff(top bool) (f, m mgl64.Vec3, M mgl64.Mat3)      // force, moment and mass matrix at line end
}

// Attachment records a line end attached to a rod end
type Attachment struct {
	Line Line // line
	Top  bool // the top end of the line is attached
}

// Attached returns the attachments at end e
func (o *Rod) Attached(e End) []Attachment {
	if e == B {
		return o.AttB
	}
	return o.AttA
}

// AddLine attaches one end of a line to end e of this rod. Lines beyond capacity are refused
// with ErrCapacity; the simulation may continue.
func (o *Rod) AddLine(l Line, top bool, e End) (err error) {
	att := o.Attached(e)
	if o.Capacity > 0 && len(att) >= o.Capacity {
		o.Log.Warn().Int("line", l.Id()).Stringer("end", e).Int("capacity", o.Capacity).Msg("too many lines at rod end; line not attached")
		return ErrCapacity
	}
	att = append(att, Attachment{Line: l, Top: top})
	if e == B {
		o.AttB = att
	} else {
		o.AttA = att
	}
	o.Log.Debug().Int("line", l.Id()).Stringer("end", e).Bool("top", top).Msg("line attached")
	return
}

// RemoveLine detaches a line from end e and returns which end of the line was attached
// together with the current position and velocity of the rod end
func (o *Rod) RemoveLine(lineId int, e End) (top bool, r, rd mgl64.Vec3, err error) {
	att := o.Attached(e)
	for k, a := range att {
		if a.Line.Id() != lineId {
			continue
		}
		copy(att[k:], att[k+1:])
		att[len(att)-1] = Attachment{}
		att = att[:len(att)-1]
		nd := o.NodeA()
		if e == B {
			o.AttB = att
			nd = o.NodeB()
		} else {
			o.AttA = att
		}
		o.Log.Debug().Int("line", lineId).Stringer("end", e).Msg("line detached")
		return a.Top, nd.R, nd.Rd, nil
	}
	o.Log.Error().Int("line", lineId).Stringer("end", e).Msg("line to be removed is not attached")
	err = ErrNotAttached
	return
}

// NumAttached returns the number of lines attached to end e
func (o *Rod) NumAttached(e End) int {
	return len(o.Attached(e))
}

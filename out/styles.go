// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

// Group holds channels plotted together
type Group struct {
	Name     string   // name used in file names
	Ylbl     string   // y-axis label
	Channels []string // channels
}

// Groups holds the default groups of channels
var Groups = []Group{
	{"position", "position [m]", []string{"xA", "yA", "zA", "xB", "yB", "zB"}},
	{"direction", "direction [-]", []string{"qx", "qy", "qz"}},
	{"angles", "angle [rad]", []string{"roll", "pitch"}},
	{"force", "force [N]", []string{"Fx", "Fy", "Fz"}},
	{"moment", "moment [N·m]", []string{"Mx", "My", "Mz"}},
	{"reaction", "reaction force [N]", []string{"RFx", "RFy", "RFz"}},
	{"rmoment", "reaction moment [N·m]", []string{"RMx", "RMy", "RMz"}},
	{"tension", "tension [N]", []string{"T"}},
}

// GetLabel returns a label for a channel
func GetLabel(key string) string {
	switch key {
	case "t":
		return "time [s]"
	case "xA", "yA", "zA":
		return key[:1] + " (end A)"
	case "xB", "yB", "zB":
		return key[:1] + " (end B)"
	case "roll":
		return "roll"
	case "pitch":
		return "pitch"
	case "RFx", "RFy", "RFz", "RMx", "RMy", "RMz":
		return key[1:] + " (reaction)"
	case "T":
		return "tension"
	}
	return key
}

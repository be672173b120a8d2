// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"github.com/cpmech/gosl/chk"
	"github.com/gomoor/gomoor/rod"
)

// SectionsData holds all rod cross-sections
type SectionsData []*rod.Section

// Get returns a section by name
//  Note: returns nil if not found
func (o SectionsData) Get(name string) *rod.Section {
	for _, s := range o {
		if s.Name == name {
			return s
		}
	}
	return nil
}

// Check validates all sections
func (o SectionsData) Check() (err error) {
	names := make(map[string]bool)
	for _, s := range o {
		if names[s.Name] {
			return chk.Err("section named %q is repeated", s.Name)
		}
		names[s.Name] = true
		if err = s.Check(); err != nil {
			return
		}
	}
	return
}

// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"bytes"
	"encoding/csv"
	goio "io"
	"path/filepath"
	"strconv"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// WriteCSV writes all channels as columns; the first column holds the times
func (o *History) WriteCSV(w goio.Writer) (err error) {
	cw := csv.NewWriter(w)
	if err = cw.Write(append([]string{"t"}, o.Keys...)); err != nil {
		return
	}
	row := make([]string, len(o.Keys)+1)
	for j, t := range o.Times {
		row[0] = strconv.FormatFloat(t, 'g', -1, 64)
		for i := range o.Keys {
			row[i+1] = strconv.FormatFloat(o.Vals[i][j], 'g', -1, 64)
		}
		if err = cw.Write(row); err != nil {
			return
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes all channels to <dirout>/<fnkey>.csv, creating dirout if needed
func (o *History) SaveCSV(dirout, fnkey string) (fn string, err error) {
	fn = filepath.Join(dirout, fnkey+".csv")
	var buf bytes.Buffer
	if err = o.WriteCSV(&buf); err != nil {
		return "", chk.Err("cannot write file %q: %v", fn, err)
	}
	defer func() {
		if r := recover(); r != nil {
			fn, err = "", chk.Err("cannot save results to %q: %v", fn, r)
		}
	}()
	io.WriteFileD(dirout, fnkey+".csv", &buf)
	return
}

// ReadCSV reads a history written by WriteCSV
func ReadCSV(r goio.Reader) (o *History, err error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return
	}
	if len(records) == 0 || len(records[0]) < 1 || records[0][0] != "t" {
		return nil, chk.Err("csv file must start with a header whose first column is \"t\"")
	}
	o, err = NewHistory(records[0][1:])
	if err != nil {
		return
	}
	vals := make([]float64, len(o.Keys))
	for k, rec := range records[1:] {
		t, err := strconv.ParseFloat(rec[0], 64)
		if err != nil {
			return nil, chk.Err("row %d: %v", k+1, err)
		}
		for i := range vals {
			if vals[i], err = strconv.ParseFloat(rec[i+1], 64); err != nil {
				return nil, chk.Err("row %d: %v", k+1, err)
			}
		}
		if err = o.Append(t, vals); err != nil {
			return nil, err
		}
	}
	return
}

// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.pos) JSON file
package inp

import (
	"encoding/json"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun/dbf"
	"github.com/cpmech/gosl/io"

	"github.com/sintefmath/IFEM-inspect/res"
)

// PatchData selects one patch and how it is sampled: one free parametric
// direction with a sample count, all other directions held fixed
type PatchData struct {
	Id    int       `json:"id"`    // patch id
	Fixed []float64 `json:"fixed"` // [pardim] fixed parametric values; entry at Free is ignored
	Free  int       `json:"free"`  // index of the free (sampling) direction
	Lo    float64   `json:"lo"`    // start of the sampling range
	Hi    float64   `json:"hi"`    // end of the sampling range
	Npts  int       `json:"npts"`  // number of sampling points
}

// Spec builds the parameter specification for this patch
func (o *PatchData) Spec() (*res.ParameterSpec, error) {
	n := o.Npts
	if n < 2 {
		n = 2
	}
	return res.LinSpec(o.Free, o.Fixed, o.Lo, o.Hi, n)
}

// Data holds a plot/evaluation request
type Data struct {

	// global information
	Desc    string `json:"desc"`    // description of request
	ResFile string `json:"resfile"` // results file path (basename or .json)
	DirOut  string `json:"dirout"`  // directory for output figures; e.g. /tmp/ifem-inspect
	Fname   string `json:"fname"`   // figure file name; e.g. request.png

	// what to evaluate
	Field      string       `json:"field"`      // field name; e.g. "displacement"
	Directives []string     `json:"directives"` // directive strings; e.g. "stress_xx"
	Patches    []*PatchData `json:"patches"`    // ordered patch selections

	// level selection (at most one of times/levels; else stride over all)
	Times  []float64 `json:"times"`  // select levels by time value
	Levels []int     `json:"levels"` // select levels by index
	Stride int       `json:"stride"` // stride over all levels; 0 means 1

	// horizontal axis: "local", "running", or a coordinate letter x/y/z
	AxisMode string `json:"axismode"`

	// material parameters; e.g. E, nu
	Material dbf.Params `json:"material"`
}

// ReadData reads a plot request file
func ReadData(fn string) (o *Data, err error) {
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read request file %q: %v", fn, err)
	}
	o = new(Data)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse request file %q: %v", fn, err)
	}
	if o.ResFile == "" {
		return nil, chk.Err("request file %q does not name a results file", fn)
	}
	if len(o.Directives) < 1 {
		return nil, chk.Err("request file %q has no directives", fn)
	}
	if len(o.Patches) < 1 {
		return nil, chk.Err("request file %q selects no patches", fn)
	}
	if len(o.Times) > 0 && len(o.Levels) > 0 {
		return nil, chk.Err("request file %q selects levels by both times and indices", fn)
	}
	if o.AxisMode == "" {
		o.AxisMode = "local"
	}
	return
}

// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_spec01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("spec01. parameter specifications")

	spec, err := LinSpec(1, []float64{0.5, 0, 0.25}, 0, 1, 3)
	if err != nil {
		tst.Errorf("spec failed: %v", err)
		return
	}
	chk.IntAssert(spec.Npts(), 3)
	chk.Vector(tst, "coords mid", 1e-17, spec.Coords(1), []float64{0.5, 0.5, 0.25})

	// exactly one free direction; its index must be valid
	if _, err = NewParameterSpec(3, []float64{0, 0}, []float64{0}); err == nil {
		tst.Errorf("error expected for free index out of range")
		return
	}
	if _, err = NewParameterSpec(0, []float64{0, 0}, nil); err == nil {
		tst.Errorf("error expected for empty sample sequence")
		return
	}
}

func Test_poly01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("poly01. polynomial patch evaluation and tangents")

	// f(u,v) = 2 + 3 u² v
	patch := &PolyPatch{Npar: 2, Comps: [][]Term{
		{{Coef: 2, Pow: []int{0, 0}}, {Coef: 3, Pow: []int{2, 1}}},
	}}
	spec, _ := LinSpec(0, []float64{0, 0.5}, 0, 1, 3)

	ra, err := patch.Evaluate(spec)
	if err != nil {
		tst.Errorf("evaluation failed: %v", err)
		return
	}
	chk.Ints(tst, "dims", ra.Dims, []int{3, 1})
	chk.Vector(tst, "values", 1e-15, ra.Data, []float64{2, 2.375, 3.5})

	ras, err := patch.Tangent(spec)
	if err != nil {
		tst.Errorf("tangent failed: %v", err)
		return
	}
	chk.IntAssert(len(ras), 2)
	chk.Vector(tst, "df/du", 1e-15, ras[0].Data, []float64{0, 1.5, 3})  // 6uv
	chk.Vector(tst, "df/dv", 1e-15, ras[1].Data, []float64{0, 0.75, 3}) // 3u²

	// spec dimension must match the patch
	bad, _ := LinSpec(0, []float64{0}, 0, 1, 3)
	if _, err = patch.Evaluate(bad); err == nil {
		tst.Errorf("error expected for wrong spec dimension")
		return
	}
}

func Test_levels01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("levels01. level resolution")

	rdr := &MemResults{
		Times: []float64{0, 0.5, 1.0, 1.5},
		Geoms: []*PolyPatch{IdentityGeom(2)},
	}

	// both selectors given
	if _, err := ResolveLevels(rdr, []float64{0}, []int{0}, 0); err == nil {
		tst.Errorf("error expected when both times and indices are given")
		return
	}

	// by time value: nearest match
	levs, err := ResolveLevels(rdr, []float64{0.6, 1.4}, nil, 0)
	if err != nil {
		tst.Errorf("resolve failed: %v", err)
		return
	}
	chk.IntAssert(len(levs), 2)
	chk.IntAssert(levs[0].Index, 1)
	chk.Scalar(tst, "time 0", 1e-17, levs[0].Time, 0.5)
	chk.IntAssert(levs[1].Index, 3)

	// by index
	levs, err = ResolveLevels(rdr, nil, []int{2, 0}, 0)
	if err != nil {
		tst.Errorf("resolve failed: %v", err)
		return
	}
	chk.IntAssert(levs[0].Index, 2)
	chk.Scalar(tst, "time", 1e-17, levs[0].Time, 1.0)
	chk.IntAssert(levs[1].Index, 0)

	// out-of-range index
	if _, err = ResolveLevels(rdr, nil, []int{9}, 0); err == nil {
		tst.Errorf("error expected for out-of-range index")
		return
	}

	// default: stride over all levels
	levs, err = ResolveLevels(rdr, nil, nil, 2)
	if err != nil {
		tst.Errorf("resolve failed: %v", err)
		return
	}
	chk.IntAssert(len(levs), 2)
	chk.IntAssert(levs[0].Index, 0)
	chk.IntAssert(levs[1].Index, 2)
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. results file")

	rdr, err := ReadResults("data/twopatch")
	if err != nil {
		tst.Errorf("read failed: %v", err)
		return
	}
	chk.IntAssert(rdr.Ntimes(), 3)
	chk.IntAssert(rdr.Npatches(), 2)

	lev, err := rdr.Time(1)
	if err != nil {
		tst.Errorf("time lookup failed: %v", err)
		return
	}
	chk.Scalar(tst, "t1", 1e-17, lev.Time, 0.5)

	// field oracle
	patch, err := rdr.Field(lev, 0, "displacement")
	if err != nil {
		tst.Errorf("field lookup failed: %v", err)
		return
	}
	chk.IntAssert(patch.Ncomp(), 2)
	chk.IntAssert(patch.Pardim(), 2)

	// unknown field
	if _, err = rdr.Field(lev, 0, "temperature"); err == nil {
		tst.Errorf("error expected for unknown field")
		return
	}

	// geometry oracle
	geom, err := rdr.Geometry(lev, 1)
	if err != nil {
		tst.Errorf("geometry lookup failed: %v", err)
		return
	}
	chk.IntAssert(geom.Ncomp(), 2)
}

// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/sintefmath/IFEM-inspect/res"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_normalize01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("normalize01. singleton axes")

	// (1,3): one point with three components
	m := Normalize(&res.RawArray{Dims: []int{1, 3}, Data: []float64{1, 2, 3}})
	chk.IntAssert(len(m), 1)
	chk.Vector(tst, "1x3", 1e-17, m[0], []float64{1, 2, 3})

	// (3,1): three points of a scalar field; trailing axis is preserved
	m = Normalize(&res.RawArray{Dims: []int{3, 1}, Data: []float64{1, 2, 3}})
	chk.IntAssert(len(m), 3)
	chk.Vector(tst, "3x1 row 1", 1e-17, m[1], []float64{2})

	// (1,4,1): extra singleton axes collapse to (4,1)
	m = Normalize(&res.RawArray{Dims: []int{1, 4, 1}, Data: []float64{1, 2, 3, 4}})
	chk.IntAssert(len(m), 4)
	chk.IntAssert(len(m[0]), 1)
	chk.Scalar(tst, "last entry", 1e-17, m[3][0], 4)

	// (4,): a bare vector becomes a single row
	m = Normalize(&res.RawArray{Dims: []int{4}, Data: []float64{1, 2, 3, 4}})
	chk.IntAssert(len(m), 1)
	chk.Vector(tst, "1x4", 1e-17, m[0], []float64{1, 2, 3, 4})

	// (): a bare scalar becomes a 1x1 matrix
	m = Normalize(&res.RawArray{Dims: []int{1}, Data: []float64{7}})
	chk.IntAssert(len(m), 1)
	chk.Scalar(tst, "1x1", 1e-17, m[0][0], 7)
}

func Test_normalize02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("normalize02. idempotence")

	for _, ra := range []*res.RawArray{
		{Dims: []int{1, 3}, Data: []float64{1, 2, 3}},
		{Dims: []int{3, 1}, Data: []float64{1, 2, 3}},
		{Dims: []int{2, 3}, Data: []float64{1, 2, 3, 4, 5, 6}},
		{Dims: []int{5}, Data: []float64{1, 2, 3, 4, 5}},
	} {
		once := Normalize(ra)
		twice := Normalize(res.NewRawArray2(once))
		chk.IntAssert(len(twice), len(once))
		for i := range once {
			chk.Vector(tst, io.Sf("row %d", i), 1e-17, twice[i], once[i])
		}
	}
}

func Test_sample01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sample01. sample evaluation per derivative order")

	patch := res.LinearField([][]float64{
		{1.0, 0.5},
		{0.2, 2.0},
	})
	spec, err := res.LinSpec(1, []float64{0.5, 0}, 0, 1, 4)
	if err != nil {
		tst.Errorf("spec failed: %v", err)
		return
	}

	// order -1: no evaluation at all
	s, err := EvalSample(patch, spec, -1)
	if err != nil {
		tst.Errorf("evaluation failed: %v", err)
		return
	}
	if s != nil {
		tst.Errorf("no sample expected for order -1")
		return
	}

	// order 0: values only
	s, err = EvalSample(patch, spec, 0)
	if err != nil {
		tst.Errorf("evaluation failed: %v", err)
		return
	}
	chk.IntAssert(s.Npts(), 4)
	chk.IntAssert(s.Ncomp(), 2)
	if s.Tan != nil {
		tst.Errorf("no tangents expected for order 0")
		return
	}

	// order 1: values and one tangent per parametric direction
	s, err = EvalSample(patch, spec, 1)
	if err != nil {
		tst.Errorf("evaluation failed: %v", err)
		return
	}
	chk.IntAssert(len(s.Tan), 2)
	chk.IntAssert(len(s.Tan[0]), s.Npts())

	// u_1 = 1.0*ξ_0 + 0.5*ξ_1 with ξ_0 = 0.5 fixed: value at ξ_1 = 1 is 1.0
	chk.Scalar(tst, "u1 @ last point", 1e-15, s.Val[3][0], 1.0)
	chk.Scalar(tst, "du1/dv", 1e-15, s.Tan[1][0][0], 0.5)
	chk.Scalar(tst, "du2/du", 1e-15, s.Tan[0][2][1], 0.2)
}

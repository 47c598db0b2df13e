// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func verbose() {
	io.Verbose = true
	chk.Verbose = true
}

func Test_read01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read01. plot request file")

	dat, err := ReadData("data/twopatch.pos")
	if err != nil {
		tst.Errorf("read failed: %v", err)
		return
	}
	chk.StrAssert(dat.Field, "displacement")
	chk.IntAssert(len(dat.Directives), 4)
	chk.IntAssert(len(dat.Patches), 2)
	chk.Ints(tst, "levels", dat.Levels, []int{0, 2})
	chk.StrAssert(dat.AxisMode, "running")

	// material parameters
	chk.IntAssert(len(dat.Material), 2)
	chk.StrAssert(dat.Material[0].N, "E")
	chk.Scalar(tst, "E", 1e-17, dat.Material[0].V, 1000.0)

	// parameter spec of the first patch
	spec, err := dat.Patches[0].Spec()
	if err != nil {
		tst.Errorf("spec failed: %v", err)
		return
	}
	chk.IntAssert(spec.Npts(), 11)
	chk.Vector(tst, "coords first", 1e-17, spec.Coords(0), []float64{0, 0})
}

func Test_read02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("read02. request validation")

	if _, err := ReadData("data/nonexistent.pos"); err == nil {
		tst.Errorf("error expected for missing file")
		return
	}
}

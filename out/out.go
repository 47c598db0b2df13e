// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements post-processing of sampled field data: directive
// parsing and evaluation, derivative/strain/stress algebra, and plotting
package out

import (
	"github.com/cpmech/gosl/chk"

	"github.com/sintefmath/IFEM-inspect/res"
)

// SampleSet holds the normalized evaluation results for one patch at a fixed
// parameter specification and derivative order
type SampleSet struct {
	Val [][]float64   // [npts][ncomp] values
	Tan [][][]float64 // [pardim][npts][ncomp] tangents; nil if order < 1
}

// Npts returns the number of sampling points
func (o *SampleSet) Npts() int { return len(o.Val) }

// Ncomp returns the number of components
func (o *SampleSet) Ncomp() int {
	if len(o.Val) < 1 {
		return 0
	}
	return len(o.Val[0])
}

// Normalize reshapes a raw array to the canonical (point, component) layout:
// every axis of size 1 is collapsed, except the last; results with fewer than
// two remaining axes are promoted to a single-row matrix. Idempotent
func Normalize(ra *res.RawArray) [][]float64 {
	var dims []int
	for i, d := range ra.Dims {
		if d == 1 && i != len(ra.Dims)-1 {
			continue
		}
		dims = append(dims, d)
	}
	switch len(dims) {
	case 0:
		return [][]float64{{ra.Data[0]}}
	case 1:
		row := make([]float64, dims[0])
		copy(row, ra.Data)
		return [][]float64{row}
	}

	// the first remaining axis indexes points; any further axes are merged
	// into the component axis (row-major layout survives the collapsing)
	npts := dims[0]
	ncomp := 1
	for _, d := range dims[1:] {
		ncomp *= d
	}
	m := make([][]float64, npts)
	for i := 0; i < npts; i++ {
		m[i] = make([]float64, ncomp)
		copy(m[i], ra.Data[i*ncomp:(i+1)*ncomp])
	}
	return m
}

// EvalSample queries a patch oracle and assembles a normalized SampleSet.
// The value oracle is called whenever order ≥ 0; the tangent oracle is called
// additionally when order ≥ 1. order < 0 yields nil (no evaluation at all)
func EvalSample(p res.Patch, spec *res.ParameterSpec, order int) (s *SampleSet, err error) {
	if order < 0 {
		return nil, nil
	}
	raw, err := p.Evaluate(spec)
	if err != nil {
		return nil, chk.Err("patch evaluation failed: %v", err)
	}
	s = &SampleSet{Val: Normalize(raw)}
	if order >= 1 {
		raws, err := p.Tangent(spec)
		if err != nil {
			return nil, chk.Err("patch tangent evaluation failed: %v", err)
		}
		s.Tan = make([][][]float64, len(raws))
		for i, r := range raws {
			s.Tan[i] = Normalize(r)
			if len(s.Tan[i]) != len(s.Val) {
				return nil, chk.Err("tangent %d has %d points; values have %d", i, len(s.Tan[i]), len(s.Val))
			}
		}
	}
	return
}

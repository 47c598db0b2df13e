// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import (
	"encoding/json"
	"math"
	"path/filepath"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// Term is one monomial of a polynomial patch: Coef * Π ξ_d^Pow[d]
type Term struct {
	Coef float64 `json:"coef"` // coefficient
	Pow  []int   `json:"pow"`  // [pardim] exponent per parametric direction
}

// PolyPatch is a patch whose components are multivariate polynomials in the
// parametric coordinates. Tangents are computed analytically. Real spline
// bases live behind the same interface in the full toolchain; polynomials are
// the in-memory backend for inspection and testing
type PolyPatch struct {
	Npar  int      `json:"pardim"` // number of parametric directions
	Comps [][]Term `json:"comps"`  // [ncomp] terms per component
}

// Pardim returns the number of parametric directions
func (o *PolyPatch) Pardim() int { return o.Npar }

// Ncomp returns the number of components
func (o *PolyPatch) Ncomp() int { return len(o.Comps) }

// Evaluate computes all components at the sampling points of spec
func (o *PolyPatch) Evaluate(spec *ParameterSpec) (ra *RawArray, err error) {
	if err = o.check(spec); err != nil {
		return
	}
	npts, ncomp := spec.Npts(), o.Ncomp()
	ra = &RawArray{Dims: []int{npts, ncomp}, Data: make([]float64, npts*ncomp)}
	for p := 0; p < npts; p++ {
		ξ := spec.Coords(p)
		for j, terms := range o.Comps {
			ra.Data[p*ncomp+j] = polyEval(terms, ξ)
		}
	}
	return
}

// Tangent computes the partial derivatives of all components with respect to
// each parametric direction, at the sampling points of spec
func (o *PolyPatch) Tangent(spec *ParameterSpec) (ras []*RawArray, err error) {
	if err = o.check(spec); err != nil {
		return
	}
	npts, ncomp := spec.Npts(), o.Ncomp()
	ras = make([]*RawArray, o.Npar)
	for d := 0; d < o.Npar; d++ {
		ra := &RawArray{Dims: []int{npts, ncomp}, Data: make([]float64, npts*ncomp)}
		for p := 0; p < npts; p++ {
			ξ := spec.Coords(p)
			for j, terms := range o.Comps {
				ra.Data[p*ncomp+j] = polyDeriv(terms, ξ, d)
			}
		}
		ras[d] = ra
	}
	return
}

func (o *PolyPatch) check(spec *ParameterSpec) error {
	if len(spec.Fixed) != o.Npar {
		return chk.Err("parameter spec has %d directions; patch has %d", len(spec.Fixed), o.Npar)
	}
	return nil
}

func polyEval(terms []Term, ξ []float64) (res float64) {
	for _, t := range terms {
		v := t.Coef
		for d, pow := range t.Pow {
			for k := 0; k < pow; k++ {
				v *= ξ[d]
			}
		}
		res += v
	}
	return
}

func polyDeriv(terms []Term, ξ []float64, dir int) (res float64) {
	for _, t := range terms {
		if dir >= len(t.Pow) || t.Pow[dir] == 0 {
			continue
		}
		v := t.Coef * float64(t.Pow[dir])
		for d, pow := range t.Pow {
			if d == dir {
				pow--
			}
			for k := 0; k < pow; k++ {
				v *= ξ[d]
			}
		}
		res += v
	}
	return
}

// MemResults is an in-memory result set backed by polynomial patches, read
// from a (.json) results file. Fields are constant in time; the time sequence
// only drives level resolution
type MemResults struct {
	Desc   string                  `json:"desc"`     // description
	Times  []float64               `json:"times"`    // discrete time values
	Geoms  []*PolyPatch            `json:"geometry"` // [npatches] position field per patch
	Fields map[string][]*PolyPatch `json:"fields"`   // field name => [npatches]
}

// ReadResults reads a results file. A bare basename resolves to basename.json
func ReadResults(fn string) (o *MemResults, err error) {
	if filepath.Ext(fn) == "" {
		fn += ".json"
	}
	b, err := io.ReadFile(fn)
	if err != nil {
		return nil, chk.Err("cannot read results file %q: %v", fn, err)
	}
	o = new(MemResults)
	if err = json.Unmarshal(b, o); err != nil {
		return nil, chk.Err("cannot parse results file %q: %v", fn, err)
	}
	if len(o.Times) < 1 {
		o.Times = []float64{0}
	}
	for name, patches := range o.Fields {
		if len(patches) != len(o.Geoms) {
			return nil, chk.Err("field %q has %d patches; geometry has %d", name, len(patches), len(o.Geoms))
		}
	}
	return
}

// Ntimes returns the number of time levels
func (o *MemResults) Ntimes() int { return len(o.Times) }

// Npatches returns the number of patches
func (o *MemResults) Npatches() int { return len(o.Geoms) }

// Time returns the level with the given index
func (o *MemResults) Time(index int) (*Level, error) {
	if index < 0 || index >= len(o.Times) {
		return nil, chk.Err("level index %d is out of range [0,%d)", index, len(o.Times))
	}
	return &Level{Index: index, Time: o.Times[index]}, nil
}

// Level returns the level whose time value is nearest to time
func (o *MemResults) Level(time float64) (*Level, error) {
	best, dmin := 0, math.Inf(1)
	for i, t := range o.Times {
		if d := math.Abs(t - time); d < dmin {
			best, dmin = i, d
		}
	}
	return &Level{Index: best, Time: o.Times[best]}, nil
}

// Field returns the oracle of one field of one patch
func (o *MemResults) Field(lev *Level, patchId int, name string) (Patch, error) {
	patches, ok := o.Fields[name]
	if !ok {
		return nil, chk.Err("result set has no field named %q", name)
	}
	if patchId < 0 || patchId >= len(patches) {
		return nil, chk.Err("patch id %d is out of range [0,%d)", patchId, len(patches))
	}
	return patches[patchId], nil
}

// Geometry returns the position-field oracle of one patch
func (o *MemResults) Geometry(lev *Level, patchId int) (Patch, error) {
	if patchId < 0 || patchId >= len(o.Geoms) {
		return nil, chk.Err("patch id %d is out of range [0,%d)", patchId, len(o.Geoms))
	}
	return o.Geoms[patchId], nil
}

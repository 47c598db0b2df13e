// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package res provides access to simulation results: patch evaluation oracles,
// discrete time levels and parametric sampling specifications
package res

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/utl"
)

// RawArray holds the raw data returned by a patch oracle. Data is stored
// row-major; Dims holds the size of each axis. Oracles are free to return
// extra singleton axes; see out.Normalize
type RawArray struct {
	Dims []int     // [rank] size of each axis
	Data []float64 // row-major values; length equals the product of Dims
}

// Size returns the total number of entries
func (o *RawArray) Size() (n int) {
	n = 1
	for _, d := range o.Dims {
		n *= d
	}
	return
}

// NewRawArray2 builds a 2-axis raw array from a matrix
func NewRawArray2(vals [][]float64) (ra *RawArray) {
	m := len(vals)
	n := 0
	if m > 0 {
		n = len(vals[0])
	}
	ra = &RawArray{Dims: []int{m, n}, Data: make([]float64, m*n)}
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			ra.Data[i*n+j] = vals[i][j]
		}
	}
	return
}

// ParameterSpec defines where a patch is sampled: all parametric directions
// but one are held at fixed values; the free direction carries the samples
type ParameterSpec struct {
	Fixed []float64 // [pardim] fixed values per direction; the entry at Free is ignored
	Free  int       // index of the free direction
	Vals  []float64 // samples along the free direction
}

// NewParameterSpec builds a spec with explicit samples along the free direction
func NewParameterSpec(free int, fixed []float64, vals []float64) (spec *ParameterSpec, err error) {
	if free < 0 || free >= len(fixed) {
		err = chk.Err("free direction index %d is out of range for %d parametric directions", free, len(fixed))
		return
	}
	if len(vals) < 1 {
		err = chk.Err("at least one sample is required along the free direction")
		return
	}
	spec = &ParameterSpec{Fixed: fixed, Free: free, Vals: vals}
	return
}

// LinSpec builds a spec sampling the free direction with npts equally spaced
// points within [lo, hi]
func LinSpec(free int, fixed []float64, lo, hi float64, npts int) (spec *ParameterSpec, err error) {
	return NewParameterSpec(free, fixed, utl.LinSpace(lo, hi, npts))
}

// Npts returns the number of sampling points
func (o *ParameterSpec) Npts() int { return len(o.Vals) }

// Coords returns the full parametric coordinates of sampling point idx
func (o *ParameterSpec) Coords(idx int) (x []float64) {
	x = make([]float64, len(o.Fixed))
	copy(x, o.Fixed)
	x[o.Free] = o.Vals[idx]
	return
}

// Level is one discrete time step of a time-dependent result set
type Level struct {
	Index int     // index into the time sequence
	Time  float64 // associated time value
}

// Patch evaluates one quantity (a field or the geometry) of one patch at a
// fixed time level
type Patch interface {
	Pardim() int                                      // number of parametric directions
	Ncomp() int                                       // number of components
	Evaluate(spec *ParameterSpec) (*RawArray, error)  // values at sampling points
	Tangent(spec *ParameterSpec) ([]*RawArray, error) // one array per parametric direction
}

// Reader provides discovery of time levels and per-patch oracles of one
// result set
type Reader interface {
	Ntimes() int                                               // number of time levels
	Time(index int) (*Level, error)                            // level by index
	Level(time float64) (*Level, error)                        // level by (nearest) time value
	Npatches() int                                             // number of patches
	Field(lev *Level, patchId int, name string) (Patch, error) // field oracle
	Geometry(lev *Level, patchId int) (Patch, error)           // geometry (position field) oracle
}

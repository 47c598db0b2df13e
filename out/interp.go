// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"github.com/sintefmath/IFEM-inspect/mdl"
)

// jacTol is the tolerance for detecting singular Jacobians
var jacTol = 1e-14

// interpreter evaluates directives on one (field, geometry) sample pair.
// Physical derivatives and strain components are memoized for the lifetime of
// one Interpret call so that stress components do not repeat Jacobian solves
type interpreter struct {
	fld   *SampleSet           // field samples
	geo   *SampleSet           // geometry samples; may be nil
	mat   *mdl.Elastic         // elastic parameters; may be nil
	dmemo map[[2]int][]float64 // physical derivatives keyed by (comp, dir)
	smemo map[[2]int][]float64 // strains keyed by (a, b) with a ≤ b
}

// Interpret computes one scalar per sampling point according to a directive.
// Elastic parameters are only needed for stress directives; geometry samples
// are only needed as reported by ReqGeom
func Interpret(fld, geo *SampleSet, dir Directive, mat *mdl.Elastic) ([]float64, error) {
	if fld == nil || fld.Val == nil {
		return nil, chk.Err("field samples are required to interpret %q", dir.Txt)
	}
	o := &interpreter{
		fld:   fld,
		geo:   geo,
		mat:   mat,
		dmemo: make(map[[2]int][]float64),
		smemo: make(map[[2]int][]float64),
	}
	return o.run(dir)
}

func (o *interpreter) run(dir Directive) ([]float64, error) {
	switch dir.Kind {
	case KindRaw:
		return o.column(o.fld.Val, 0, dir.Txt)
	case KindComp:
		return o.column(o.fld.Val, dir.Comp-1, dir.Txt)
	case KindCoord:
		if o.geo == nil || o.geo.Val == nil {
			return nil, chk.Err("geometry values are required for coordinate directive %q", dir.Txt)
		}
		return o.column(o.geo.Val, dir.Dir, dir.Txt)
	case KindDeriv:
		if dir.Par {
			return o.parDeriv(dir.Comp, dir.Dir)
		}
		return o.physDeriv(dir.Comp, dir.Dir)
	case KindStrain:
		return o.strain(dir.A, dir.B)
	case KindStress:
		return o.stress(dir.A, dir.B)
	}
	return nil, chk.Err("cannot interpret directive %q", dir.Txt)
}

// column extracts one column of a (points × components) matrix
func (o *interpreter) column(m [][]float64, j int, txt string) ([]float64, error) {
	if len(m) < 1 || j < 0 || j >= len(m[0]) {
		return nil, chk.Err("directive %q requests column %d; only %d components are available", txt, j+1, len2(m))
	}
	v := make([]float64, len(m))
	for i, row := range m {
		v[i] = row[j]
	}
	return v, nil
}

// parDeriv extracts the parametric partial derivative of component k (1-based)
// along parametric direction i. No geometry data is involved
func (o *interpreter) parDeriv(k, i int) ([]float64, error) {
	if o.fld.Tan == nil {
		return nil, chk.Err("missing derivative data: field tangents are not available")
	}
	if i >= len(o.fld.Tan) {
		return nil, chk.Err("parametric direction %d exceeds the patch dimension %d", i+1, len(o.fld.Tan))
	}
	return o.column(o.fld.Tan[i], k-1, "derivative")
}

// physDeriv computes the physical partial derivative of component k (1-based)
// along physical direction j by inverting the geometry Jacobian at each point:
// with J[r][c] = ∂x_r/∂ξ_c the chain rule gives D = Jᵀ·d, hence d = (J⁻¹)ᵀ·D
func (o *interpreter) physDeriv(k, j int) ([]float64, error) {
	key := [2]int{k, j}
	if v, ok := o.dmemo[key]; ok {
		return v, nil
	}
	if o.fld.Tan == nil {
		return nil, chk.Err("missing derivative data: field tangents are not available")
	}
	if o.geo == nil || o.geo.Tan == nil {
		return nil, chk.Err("missing derivative data: geometry tangents are not available")
	}
	npar := len(o.fld.Tan)
	if len(o.geo.Tan) != npar {
		return nil, chk.Err("geometry has %d parametric directions; field has %d", len(o.geo.Tan), npar)
	}
	ndim := o.geo.Ncomp()
	if ndim != npar {
		return nil, chk.Err("cannot invert Jacobian: physical dimension %d differs from parametric dimension %d", ndim, npar)
	}
	if j >= ndim {
		return nil, chk.Err("physical direction %d exceeds the geometry dimension %d", j+1, ndim)
	}
	if k < 1 || k > o.fld.Ncomp() {
		return nil, chk.Err("component %d exceeds the number of field components %d", k, o.fld.Ncomp())
	}

	// per-point solve
	npts := o.fld.Npts()
	J := la.MatAlloc(ndim, npar)
	Ji := la.MatAlloc(npar, ndim)
	D := make([]float64, npar)
	v := make([]float64, npts)
	for p := 0; p < npts; p++ {
		for r := 0; r < ndim; r++ {
			for c := 0; c < npar; c++ {
				J[r][c] = o.geo.Tan[c][p][r]
			}
		}
		for c := 0; c < npar; c++ {
			D[c] = o.fld.Tan[c][p][k-1]
		}
		_, err := la.MatInv(Ji, J, jacTol)
		if err != nil {
			return nil, chk.Err("Jacobian is singular at point %d: %v", p, err)
		}
		for c := 0; c < npar; c++ {
			v[p] += Ji[c][j] * D[c]
		}
	}
	o.dmemo[key] = v
	return v, nil
}

// strain computes the engineering strain component ε_ab from the displacement
// field: ε_aa = ∂u_a/∂x_a and ε_ab = (∂u_a/∂x_b + ∂u_b/∂x_a)/2
func (o *interpreter) strain(a, b int) ([]float64, error) {
	if b < a {
		a, b = b, a // symmetric
	}
	key := [2]int{a, b}
	if v, ok := o.smemo[key]; ok {
		return v, nil
	}
	var v []float64
	if a == b {
		daa, err := o.physDeriv(a+1, a)
		if err != nil {
			return nil, err
		}
		v = daa
	} else {
		dab, err := o.physDeriv(a+1, b)
		if err != nil {
			return nil, err
		}
		dba, err := o.physDeriv(b+1, a)
		if err != nil {
			return nil, err
		}
		v = make([]float64, len(dab))
		for i := range v {
			v[i] = (dab[i] + dba[i]) / 2.0
		}
	}
	o.smemo[key] = v
	return v, nil
}

// stress computes the isotropic linear-elastic stress component σ_ab.
// Diagonal components sum the Poisson coupling over the active physical
// directions only, so plane (2-D) fields work with two components
func (o *interpreter) stress(a, b int) ([]float64, error) {
	if o.mat == nil {
		return nil, chk.Err("elastic parameters are required for stress directives")
	}
	pre := o.mat.Pre()
	ν := o.mat.Nu

	// off-diagonal: σ_ab = pre (1-2ν) ε_ab
	if a != b {
		ε, err := o.strain(a, b)
		if err != nil {
			return nil, err
		}
		v := make([]float64, len(ε))
		for i := range v {
			v[i] = pre * (1.0 - 2.0*ν) * ε[i]
		}
		return v, nil
	}

	// diagonal: σ_aa = pre [ (1-ν) ε_aa + ν Σ_{c≠a} ε_cc ]
	εaa, err := o.strain(a, a)
	if err != nil {
		return nil, err
	}
	ndir := o.fld.Ncomp()
	if ndir > 3 {
		ndir = 3
	}
	v := make([]float64, len(εaa))
	for i := range v {
		v[i] = (1.0 - ν) * εaa[i]
	}
	for c := 0; c < ndir; c++ {
		if c == a {
			continue
		}
		εcc, err := o.strain(c, c)
		if err != nil {
			return nil, err
		}
		for i := range v {
			v[i] += ν * εcc[i]
		}
	}
	for i := range v {
		v[i] *= pre
	}
	return v, nil
}

func len2(m [][]float64) int {
	if len(m) < 1 {
		return 0
	}
	return len(m[0])
}

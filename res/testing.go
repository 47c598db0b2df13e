// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

// IdentityGeom returns a geometry patch mapping parametric coordinates
// directly to physical ones (x=u, y=v, z=w). Its Jacobian is the identity
func IdentityGeom(pardim int) (p *PolyPatch) {
	p = &PolyPatch{Npar: pardim, Comps: make([][]Term, pardim)}
	for i := 0; i < pardim; i++ {
		pow := make([]int, pardim)
		pow[i] = 1
		p.Comps[i] = []Term{{Coef: 1, Pow: pow}}
	}
	return
}

// ScaledGeom returns a geometry patch with x_i = scale[i] * ξ_i; its Jacobian
// is diagonal with the given scales
func ScaledGeom(scale []float64) (p *PolyPatch) {
	pardim := len(scale)
	p = &PolyPatch{Npar: pardim, Comps: make([][]Term, pardim)}
	for i := 0; i < pardim; i++ {
		pow := make([]int, pardim)
		pow[i] = 1
		p.Comps[i] = []Term{{Coef: scale[i], Pow: pow}}
	}
	return
}

// LinearField returns a field patch with components u_i = Σ_j A[i][j] ξ_j.
// With an identity geometry this is a homogeneous displacement gradient
func LinearField(A [][]float64) (p *PolyPatch) {
	ncomp := len(A)
	pardim := len(A[0])
	p = &PolyPatch{Npar: pardim, Comps: make([][]Term, ncomp)}
	for i := 0; i < ncomp; i++ {
		var terms []Term
		for j := 0; j < pardim; j++ {
			if A[i][j] == 0 {
				continue
			}
			pow := make([]int, pardim)
			pow[j] = 1
			terms = append(terms, Term{Coef: A[i][j], Pow: pow})
		}
		p.Comps[i] = terms
	}
	return
}

// ConstField returns a field patch with constant components
func ConstField(pardim int, vals []float64) (p *PolyPatch) {
	p = &PolyPatch{Npar: pardim, Comps: make([][]Term, len(vals))}
	for i, v := range vals {
		p.Comps[i] = []Term{{Coef: v, Pow: make([]int, pardim)}}
	}
	return
}

// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements analytical solutions for verifying post-processed
// quantities
package ana

import (
	"github.com/cpmech/gosl/fun/dbf"

	"github.com/sintefmath/IFEM-inspect/mdl"
)

// UniformStrain describes a homogeneous displacement field u = A·x over an
// isotropic linear-elastic body. Strains and stresses are constant in space
// and have closed forms
type UniformStrain struct {
	// input
	A [][]float64 // [ndim][ndim] displacement gradient ∂u_i/∂x_j

	// derived
	mat mdl.Elastic // elastic parameters
}

// Init initialises this structure. prms may hold "E" and "nu"
func (o *UniformStrain) Init(A [][]float64, prms dbf.Params) {
	o.A = A
	o.mat.Init(prms)
}

// Ndim returns the number of active physical directions
func (o UniformStrain) Ndim() int { return len(o.A) }

// Strain returns ε_ab = (∂u_a/∂x_b + ∂u_b/∂x_a) / 2
func (o UniformStrain) Strain(a, b int) float64 {
	return (o.A[a][b] + o.A[b][a]) / 2.0
}

// Stress returns σ_ab from the isotropic linear-elastic law. Diagonal
// components couple only the active directions
func (o UniformStrain) Stress(a, b int) float64 {
	pre := o.mat.Pre()
	ν := o.mat.Nu
	if a != b {
		return pre * (1.0 - 2.0*ν) * o.Strain(a, b)
	}
	σ := (1.0 - ν) * o.Strain(a, a)
	for c := 0; c < o.Ndim(); c++ {
		if c != a {
			σ += ν * o.Strain(c, c)
		}
	}
	return pre * σ
}

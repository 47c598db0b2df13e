// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package mdl implements material parameter sets for post-processing
package mdl

import "github.com/cpmech/gosl/fun/dbf"

// Elastic holds isotropic linear-elastic parameters. No range validation is
// performed: out-of-range values silently produce unphysical results
type Elastic struct {
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient (ν)
}

// Init initialises the parameters with defaults and then reads prms
func (o *Elastic) Init(prms dbf.Params) {

	// default values
	o.E = 1000.0
	o.Nu = 0.25

	// parameters
	for _, p := range prms {
		switch p.N {
		case "E":
			o.E = p.V
		case "nu":
			o.Nu = p.V
		}
	}
}

// Pre returns the constitutive prefactor E / ((1+ν)(1-2ν))
func (o Elastic) Pre() float64 {
	return o.E / ((1.0 + o.Nu) * (1.0 - 2.0*o.Nu))
}

// G returns the shear modulus E / (2(1+ν))
func (o Elastic) G() float64 {
	return o.E / (2.0 * (1.0 + o.Nu))
}

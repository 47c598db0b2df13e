// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strconv"
	"strings"

	"github.com/cpmech/gosl/chk"
)

// directive kinds
const (
	KindRaw    = iota // raw passthrough: first column of the field values
	KindComp          // one 1-based component of the field values
	KindCoord         // one physical coordinate of the geometry
	KindDeriv         // partial derivative of one component along one direction
	KindStrain        // engineering strain tensor component
	KindStress        // linear-elastic stress tensor component
)

// Directive is a parsed transformation request. The textual grammar is:
//  ""                           raw passthrough
//  "3"                          1-based component selection
//  "x", "y", "z"                physical coordinate
//  "d<comp>_<dir>"              derivative; dir ∈ {u,v,w} (parametric) or {x,y,z} (physical)
//  "strain_<a><b>"              strain component; a,b ∈ {x,y,z}
//  "stress_<a><b>"              stress component; a,b ∈ {x,y,z}
// Any other string falls through to raw passthrough; a malformed tail after a
// recognized prefix is an error
type Directive struct {
	Kind int    // one of the Kind... constants
	Txt  string // source text, for labels and messages
	Comp int    // 1-based field component (KindComp, KindDeriv)
	Dir  int    // direction index 0..2 (KindCoord, KindDeriv)
	Par  bool   // KindDeriv only: direction is parametric (u,v,w)
	A, B int    // direction indices (KindStrain, KindStress)
}

// ParseDirective parses a directive string
func ParseDirective(s string) (dir Directive, err error) {
	dir.Txt = s
	if s == "" {
		return
	}

	// component selection
	if k, e := strconv.Atoi(s); e == nil && k > 0 {
		dir.Kind, dir.Comp = KindComp, k
		return
	}

	// physical coordinate
	if len(s) == 1 {
		if i := physIndex(s[0]); i >= 0 {
			dir.Kind, dir.Dir = KindCoord, i
			return
		}
	}

	// derivative: d<comp>_<dir>
	if comp, rest, ok := matchDeriv(s); ok {
		if len(rest) != 1 {
			return dir, chk.Err("invalid directive %q: derivative direction must be a single letter", s)
		}
		if i := parIndex(rest[0]); i >= 0 {
			dir.Kind, dir.Comp, dir.Dir, dir.Par = KindDeriv, comp, i, true
			return
		}
		if i := physIndex(rest[0]); i >= 0 {
			dir.Kind, dir.Comp, dir.Dir = KindDeriv, comp, i
			return
		}
		return dir, chk.Err("invalid directive %q: unknown derivative direction %q", s, rest)
	}

	// strain / stress: <kind>_<a><b>
	kind := -1
	switch {
	case strings.HasPrefix(s, "strain_"):
		kind = KindStrain
	case strings.HasPrefix(s, "stress_"):
		kind = KindStress
	}
	if kind >= 0 {
		tail := s[7:]
		if len(tail) != 2 {
			return dir, chk.Err("invalid directive %q: expected two direction letters", s)
		}
		a, b := physIndex(tail[0]), physIndex(tail[1])
		if a < 0 || b < 0 {
			return dir, chk.Err("invalid directive %q: directions must be x, y or z", s)
		}
		dir.Kind, dir.A, dir.B = kind, a, b
		return dir, nil
	}

	// unrecognized: raw passthrough (kept for compatibility with existing
	// directive strings; see DESIGN.md)
	return
}

// matchDeriv recognizes the prefix d<digits>_ and returns the component and
// the remainder after the underscore
func matchDeriv(s string) (comp int, rest string, ok bool) {
	if len(s) < 2 || s[0] != 'd' {
		return
	}
	i := 1
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i == 1 || i >= len(s) || s[i] != '_' {
		return
	}
	comp, _ = strconv.Atoi(s[1:i])
	if comp < 1 {
		return
	}
	return comp, s[i+1:], true
}

func parIndex(c byte) int {
	switch c {
	case 'u':
		return 0
	case 'v':
		return 1
	case 'w':
		return 2
	}
	return -1
}

func physIndex(c byte) int {
	switch c {
	case 'x':
		return 0
	case 'y':
		return 1
	case 'z':
		return 2
	}
	return -1
}

// ReqField returns the derivative order needed from the field oracle:
// 1 for derivative/strain/stress directives, 0 otherwise
func (o Directive) ReqField() int {
	switch o.Kind {
	case KindDeriv, KindStrain, KindStress:
		return 1
	}
	return 0
}

// ReqGeom returns the derivative order needed from the geometry oracle:
// -1 means the geometry need not be evaluated at all, 0 means values only,
// 1 means values and tangents (the Jacobian is required)
func (o Directive) ReqGeom() int {
	switch o.Kind {
	case KindCoord:
		return 0
	case KindDeriv:
		if o.Par {
			return -1
		}
		return 1
	case KindStrain, KindStress:
		return 1
	}
	return -1
}

// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"strings"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
)

// line style cycles for multi-patch / multi-level plots
var (
	StyleColors  = []string{"b", "g", "r", "m", "c", "k", "y"}
	StyleMarkers = []string{".", "o", "s", "x", "^", "*", "+"}
)

// GetStyle returns a cycling plot style for series number i
func GetStyle(i int) plt.A {
	return plt.A{
		C: StyleColors[i%len(StyleColors)],
		M: StyleMarkers[(i/len(StyleColors))%len(StyleMarkers)],
	}
}

// GetTexLabel converts a directive string to a TeX axis label
func GetTexLabel(key, unit string) string {
	l := "$"
	switch {
	case key == "":
		l += "f"
	case key == "x" || key == "y" || key == "z" || key == "u" || key == "v" || key == "w":
		l += key
	case strings.HasPrefix(key, "strain_"):
		l += io.Sf("\\varepsilon_{%s}", key[7:])
	case strings.HasPrefix(key, "stress_"):
		l += io.Sf("\\sigma_{%s}", key[7:])
	default:
		if comp, rest, ok := matchDeriv(key); ok && len(rest) == 1 {
			l += io.Sf("\\partial u_{%d}/\\partial %s", comp, rest)
		} else {
			l += strings.Replace(key, "_", "\\_", -1)
		}
	}
	if unit != "" {
		l += "\\;" + unit
	}
	l += "$"
	return l
}

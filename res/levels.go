// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package res

import "github.com/cpmech/gosl/chk"

// ResolveLevels resolves requested times or level indices to concrete levels.
// At most one of times/levels may be given; with neither, every level from 0
// is taken with the given stride (stride < 1 means 1). Time lookup semantics
// (nearest match) belong to the Reader
func ResolveLevels(rdr Reader, times []float64, levels []int, stride int) (out []*Level, err error) {
	if len(times) > 0 && len(levels) > 0 {
		err = chk.Err("levels cannot be selected by both time values and indices")
		return
	}
	switch {
	case len(times) > 0:
		out = make([]*Level, len(times))
		for i, t := range times {
			out[i], err = rdr.Level(t)
			if err != nil {
				return nil, err
			}
		}
	case len(levels) > 0:
		out = make([]*Level, len(levels))
		for i, idx := range levels {
			out[i], err = rdr.Time(idx)
			if err != nil {
				return nil, err
			}
		}
	default:
		if stride < 1 {
			stride = 1
		}
		for i := 0; i < rdr.Ntimes(); i += stride {
			lev, e := rdr.Time(i)
			if e != nil {
				return nil, e
			}
			out = append(out, lev)
		}
	}
	return
}

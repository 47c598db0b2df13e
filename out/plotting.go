// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package out

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
	"github.com/cpmech/gosl/plt"
	"github.com/cpmech/gosl/utl"
)

// axis composition modes
const (
	AxisLocal   = "local"   // each patch keeps its own axis values
	AxisRunning = "running" // one continuous coordinate across all patches
)

// ComposeAxis composes the horizontal coordinate for an ordered sequence of
// patches plotted as one curve. In "local" mode each patch's values are used
// unmodified; in "running" mode each subsequent patch is offset so that it
// starts where the previous one ended, approximating a join of 1-D domains
// end-to-end
func ComposeAxis(mode string, perPatch [][]float64) (out [][]float64, err error) {
	if len(perPatch) < 1 {
		return nil, chk.Err("empty domain: no patches to compose an axis from")
	}
	out = make([][]float64, len(perPatch))
	offset := 0.0
	for i, vals := range perPatch {
		out[i] = make([]float64, len(vals))
		switch mode {
		case AxisRunning:
			for j, v := range vals {
				out[i][j] = v + offset
			}
			if len(out[i]) > 0 {
				offset = out[i][len(out[i])-1]
			}
		default:
			copy(out[i], vals)
		}
	}
	return
}

// PltEntity stores all data for a plot entity (X vs Y)
type PltEntity struct {
	Alias string    // alias
	X     []float64 // x-values
	Y     []float64 // y-values
	Xlbl  string    // horizontal axis label (raw; e.g. "u")
	Ylbl  string    // vertical axis label (raw; e.g. "stress_xx")
	Style plt.A     // style
}

// SplotDat stores all data for one subplot
type SplotDat struct {
	Id     string       // unique identifier
	Title  string       // title of subplot
	Topts  string       // title options
	Xscale float64      // x-axis scale
	Yscale float64      // y-axis scale
	Xrange []float64    // x range
	Yrange []float64    // y range
	Xlbl   string       // x-axis label (formatted)
	Ylbl   string       // y-axis label (formatted)
	Data   []*PltEntity // data and styles to be plotted
}

// subplots
var (
	Splots []*SplotDat // all subplots
	Csplot *SplotDat   // current subplot
)

// Splot activates a new subplot window
func Splot(id, splotTitle string) {
	s := &SplotDat{Id: id, Title: splotTitle}
	Splots = append(Splots, s)
	Csplot = s
}

// SplotConfig configures units and scales of axes
func SplotConfig(xunit, yunit string, xscale, yscale float64) {
	if Csplot != nil {
		var xlabel, ylabel string
		if len(Csplot.Data) > 0 {
			xlabel = Csplot.Data[0].Xlbl
			ylabel = Csplot.Data[0].Ylbl
		}
		Csplot.Xlbl = GetTexLabel(xlabel, xunit)
		Csplot.Ylbl = GetTexLabel(ylabel, yunit)
		Csplot.Xscale = xscale
		Csplot.Yscale = yscale
	}
}

// Plot adds one x-y series to the current subplot
func Plot(x, y []float64, xlbl, ylbl, alias string, fm plt.A) {
	if len(x) != len(y) {
		chk.Panic("lengths of x- and y-series are different. len(x)=%d, len(y)=%d", len(x), len(y))
	}
	e := &PltEntity{Alias: alias, X: x, Y: y, Xlbl: xlbl, Ylbl: ylbl, Style: fm}
	if Csplot == nil {
		Splot(io.Sf("%d", len(Splots)), "")
	}
	Csplot.Data = append(Csplot.Data, e)
	SplotConfig("", "", 1, 1)
}

// ResetSplots clears all subplots
func ResetSplots() {
	Splots = nil
	Csplot = nil
}

// Draw draws or saves the figure with all subplots
//  dirout -- directory to save figure
//  fname  -- file name; e.g. myplot.eps or myplot.png. Use "" to show figure instead
//  nr     -- number of rows. Use -1 to compute best value
//  nc     -- number of columns. Use -1 to compute best value
//  extra  -- is called just after the Subplot command and before any plotting
func Draw(dirout, fname string, nr, nc int, extra func(id string)) {
	var fnk string
	if fname != "" {
		fnk = io.FnKey(fname)
	}
	nplots := len(Splots)
	if nr < 0 || nc < 0 {
		nr, nc = utl.BestSquare(nplots)
	}
	for k := 0; k < nplots; k++ {
		spl := Splots[k]
		plt.Subplot(nr, nc, k+1)
		if extra != nil {
			extra(spl.Id)
		}
		if spl.Title != "" {
			plt.Title(spl.Title, nil)
		}
		for _, d := range spl.Data {
			if d.Style.L == "" {
				d.Style.L = d.Alias
			}
			d.Style.NoClip = true
			x, y := d.X, d.Y
			if math.Abs(spl.Xscale) > 0 {
				x = make([]float64, len(d.X))
				la.VecCopy(x, spl.Xscale, d.X)
			}
			if math.Abs(spl.Yscale) > 0 {
				y = make([]float64, len(d.Y))
				la.VecCopy(y, spl.Yscale, d.Y)
			}
			plt.Plot(x, y, &d.Style)
		}
		plt.Gll(spl.Xlbl, spl.Ylbl, nil)
		if len(spl.Xrange) == 2 {
			plt.AxisXrange(spl.Xrange[0], spl.Xrange[1])
		}
		if len(spl.Yrange) == 2 {
			plt.AxisYrange(spl.Yrange[0], spl.Yrange[1])
		}
	}
	if fname != "" {
		if dirout == "" {
			plt.Save(".", fnk)
		} else {
			plt.Save(dirout, fnk)
		}
		return
	}
	plt.Show()
}

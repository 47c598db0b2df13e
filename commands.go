// Copyright 2016 The IFEM-inspect Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/cpmech/gosl/io"
	"github.com/spf13/cobra"

	"github.com/sintefmath/IFEM-inspect/inp"
	"github.com/sintefmath/IFEM-inspect/mdl"
	"github.com/sintefmath/IFEM-inspect/out"
	"github.com/sintefmath/IFEM-inspect/res"
)

var rootCmd = &cobra.Command{
	Use:   "ifem-inspect",
	Short: "inspect and post-process FE simulation results",
}

var levelsCmd = &cobra.Command{
	Use:   "levels <results>",
	Short: "list the time levels of a result set",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rdr, err := res.ReadResults(args[0])
		if err != nil {
			return err
		}
		io.Pf("%6s %12s\n", "level", "time")
		for i := 0; i < rdr.Ntimes(); i++ {
			lev, err := rdr.Time(i)
			if err != nil {
				return err
			}
			io.Pf("%6d %12g\n", lev.Index, lev.Time)
		}
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <request.pos>",
	Short: "evaluate the directives of a request and print the values",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(args[0], false)
	},
}

var plotCmd = &cobra.Command{
	Use:   "plot <request.pos>",
	Short: "evaluate the directives of a request and draw one subplot per directive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return process(args[0], true)
	},
}

func init() {
	rootCmd.AddCommand(levelsCmd, evalCmd, plotCmd)
}

// process runs a request: resolve levels, sample every patch, interpret every
// directive and either print or plot the results
func process(fnreq string, draw bool) error {

	// input
	dat, err := inp.ReadData(fnreq)
	if err != nil {
		return err
	}
	rdr, err := res.ReadResults(dat.ResFile)
	if err != nil {
		return err
	}
	levels, err := res.ResolveLevels(rdr, dat.Times, dat.Levels, dat.Stride)
	if err != nil {
		return err
	}
	var mat mdl.Elastic
	mat.Init(dat.Material)

	// horizontal axis request; a coordinate letter forces geometry evaluation
	axisDir, err := out.ParseDirective(dat.AxisMode)
	axisCoord := err == nil && axisDir.Kind == out.KindCoord && len(dat.AxisMode) == 1

	if draw {
		out.ResetSplots()
	}
	iseries := 0
	for _, dstr := range dat.Directives {
		dir, err := out.ParseDirective(dstr)
		if err != nil {
			return err
		}
		if draw {
			out.Splot(dstr, "")
		}
		for _, lev := range levels {
			xraw := make([][]float64, len(dat.Patches))
			yvals := make([][]float64, len(dat.Patches))
			for ip, pd := range dat.Patches {
				spec, err := pd.Spec()
				if err != nil {
					return err
				}

				// derivative requirements
				geomOrder := dir.ReqGeom()
				if axisCoord && geomOrder < 0 {
					geomOrder = 0
				}

				// samples
				fpatch, err := rdr.Field(lev, pd.Id, dat.Field)
				if err != nil {
					return err
				}
				fld, err := out.EvalSample(fpatch, spec, dir.ReqField())
				if err != nil {
					return err
				}
				var geo *out.SampleSet
				if geomOrder >= 0 {
					gpatch, err := rdr.Geometry(lev, pd.Id)
					if err != nil {
						return err
					}
					geo, err = out.EvalSample(gpatch, spec, geomOrder)
					if err != nil {
						return err
					}
				}

				// vertical values
				yvals[ip], err = out.Interpret(fld, geo, dir, &mat)
				if err != nil {
					return err
				}

				// horizontal values
				if axisCoord {
					xraw[ip], err = out.Interpret(fld, geo, axisDir, &mat)
				} else {
					xraw[ip] = spec.Vals
				}
				if err != nil {
					return err
				}
			}

			// axis composition across patches
			mode := out.AxisLocal
			if dat.AxisMode == out.AxisRunning {
				mode = out.AxisRunning
			}
			xvals, err := out.ComposeAxis(mode, xraw)
			if err != nil {
				return err
			}

			// output
			xlbl := "u"
			if axisCoord {
				xlbl = dat.AxisMode
			} else if dat.AxisMode == out.AxisRunning {
				xlbl = "s"
			}
			for ip := range dat.Patches {
				label := io.Sf("patch %d, t=%g", dat.Patches[ip].Id, lev.Time)
				if draw {
					out.Plot(xvals[ip], yvals[ip], xlbl, dstr, label, out.GetStyle(iseries))
					iseries++
					continue
				}
				io.Pf("%s @ %s:\n", dstr, label)
				for i := range xvals[ip] {
					io.Pf("  %12g %12g\n", xvals[ip][i], yvals[ip][i])
				}
			}
		}
	}
	if draw {
		fname := dat.Fname
		if fname == "" {
			fname = io.FnKey(fnreq) + ".png"
		}
		out.Draw(dat.DirOut, fname, -1, -1, nil)
	}
	return nil
}

/*
 * commands.go, part of aLENS-analysis.
 *
 * Copyright 2024 The aLENS-analysis authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"fmt"
	"log"
	"path/filepath"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/chemplot"
	"github.com/sidneyholden1/aLENS-analysis/connect"
	"github.com/sidneyholden1/aLENS-analysis/contact"
	"github.com/sidneyholden1/aLENS-analysis/histo"
	"github.com/sidneyholden1/aLENS-analysis/localorder"
	"github.com/sidneyholden1/aLENS-analysis/polystat"
	"github.com/spf13/cobra"
)

func runContact(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	opts := contact.Options{Sigma: sigma, AvgBlockStep: blockStep, Log: logAvg}
	if useRadii {
		opts.Radii = traj.Radii
	}
	res, err := contact.Analyze(traj, opts, s.sink)
	if err != nil {
		return err
	}
	log.Printf("contact: %d beads, %d frames", traj.NBeads(), res.Contact.T)
	if plotFile != "" {
		return chemplot.HeatMap(res.AvgContact, nil, nil, chemplot.Labels{Title: "Average contact", X: "bead", Y: "bead"}, plotFile)
	}
	return nil
}

func runKymo(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	res, err := contact.PosKymo(s.file, [2]int{ssInd, tsEnd}, [2]int{0, -1}, bins, s.sink)
	if err != nil {
		return err
	}
	if plotFile != "" {
		return chemplot.HeatMap(res.Hist, res.Time, histo.Centers(res.BinEdges), chemplot.Labels{Title: "Position kymograph", X: "time", Y: "position"}, plotFile)
	}
	return nil
}

func runCond(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	var regions []contact.Region
	var num []int
	if usePos {
		res, err := contact.PosKymo(s.file, [2]int{ssInd, -1}, [2]int{0, -1}, bins, nil)
		if err != nil {
			return err
		}
		regions, num, err = contact.PosCondensates(res.Time, res.Hist, histo.Centers(res.BinEdges), threshold, beadWin, timeWin, s.sink)
		if err != nil {
			return err
		}
	} else {
		traj, err := s.trajectory()
		if err != nil {
			return err
		}
		res, err := contact.Analyze(traj, contact.Options{Sigma: sigma, AvgBlockStep: 1}, nil)
		if err != nil {
			return err
		}
		regions, num, err = contact.ContactCondensates(traj.Time, res.Kymo, threshold, beadWin, timeWin, s.sink)
		if err != nil {
			return err
		}
	}
	log.Printf("cond: %d condensate regions found", len(regions))
	show(intsToFloats(num), "condensates per frame")
	return nil
}

func intsToFloats(n []int) []float64 {
	ret := make([]float64, len(n))
	for i, v := range n {
		ret[i] = float64(v)
	}
	return ret
}

func runOverlap(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	conf, _ := s.file.RunConfig()
	num, avg, minSep := contact.OverlapArrs(contact.SepDistMat(traj, 0, 0, -1), conf.SylinderDiameter)
	attrs := func() alens.Attrs { return alens.Attrs{"diameter": conf.SylinderDiameter} }
	for _, d := range []struct {
		name string
		data []float64
	}{{"overlap_num", num}, {"overlap_avg", avg}, {"overlap_min", minSep}} {
		if err := s.write(d.name, d.data, attrs()); err != nil {
			return err
		}
	}
	show(num, "overlaps per frame")
	if plotFile != "" {
		return chemplot.Lines([]chemplot.Series{{Name: "overlaps", X: traj.Time, Y: num}},
			chemplot.LineOptions{Labels: chemplot.Labels{Title: "Bead overlaps", X: "time", Y: "number"}}, plotFile)
	}
	return nil
}

func runSepHist(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	conf, _ := s.file.RunConfig()
	hists, edges, err := contact.SepHist(s.file, bins, ssInd)
	if err != nil {
		return err
	}
	flat := make([]float64, 0, len(hists)*bins)
	for _, h := range hists {
		flat = append(flat, h...)
	}
	attrs := alens.Attrs{"diameter": conf.SylinderDiameter, "ss_ind": ssInd}
	if err := s.sink.WriteDataset("sep_hist", flat, []int{len(hists), bins}, attrs); err != nil {
		return err
	}
	return s.write("sep_hist_edges", edges, nil)
}

func runMSD(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	msd := polystat.BeadMSD(traj, s.be)
	for _, d := range []struct {
		name string
		data []float64
	}{
		{"msd", msd},
		{"rad_gyration", polystat.RadiusOfGyration(traj)},
		{"end_end_dist", polystat.EndEndDistance(traj)},
		{"avg_dist_from_com", polystat.AvgDistFromCOM(traj)},
		{"dist_vs_idx_dist", polystat.DistVsIdxDist(traj)},
	} {
		if err := s.write(d.name, d.data, nil); err != nil {
			return err
		}
	}
	show(msd, "MSD")
	return plotSeries("msd", msd, timeStep(traj.Time), "MSD", true)
}

// plotSeries draws a function of the lag time, if a plot was requested.
func plotSeries(name string, y []float64, dt float64, ylabel string, loglog bool) error {
	if plotFile == "" {
		return nil
	}
	return chemplot.Lines([]chemplot.Series{{Name: name, X: chemplot.Indexes(len(y), dt), Y: y}},
		chemplot.LineOptions{Labels: chemplot.Labels{Title: name, X: "lag time", Y: ylabel}, LogX: loglog, LogY: loglog}, plotFile)
}

func runAutocorr(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	var ac []float64
	switch kind {
	case "pos":
		if fast {
			ac = polystat.PolyAutocorrFast(traj, s.be)
		} else {
			ac = polystat.PolyAutocorr(traj, s.be)
		}
	case "ang":
		ac = polystat.AngAutocorr(traj, s.be)
	case "dist":
		ac = polystat.PolyDistAutocorrFast(traj, s.be)
	case "sep":
		if fast {
			t := polystat.SepAutocorrFast(traj, s.be)
			return s.sink.WriteDataset("sep_autocorr", t.Data, []int{t.T, t.R, t.C}, alens.Attrs{"ss_ind": ssInd, "layout": "lag, bead, bead"})
		}
		ac = polystat.SepAutocorr(traj, s.be)
	default:
		return fmt.Errorf("unknown autocorrelation kind %q", kind)
	}
	if err := s.write(kind+"_autocorr", ac, alens.Attrs{"fft": fast}); err != nil {
		return err
	}
	show(ac, kind+" autocorrelation")
	return plotSeries(kind+" autocorrelation", ac, timeStep(traj.Time), "C", false)
}

func runSpectrum(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	dt := timeStep(traj.Time)
	var ps, freq []float64
	switch kind {
	case "pos":
		ps, freq = polystat.PowerSpec(traj, dt, s.be)
	case "dist":
		ps, freq = polystat.DistPowerSpec(traj, dt, s.be)
	case "ang":
		ps, freq = polystat.AngPowerSpec(traj, dt, s.be)
	default:
		return fmt.Errorf("unknown spectrum kind %q", kind)
	}
	attrs := alens.Attrs{"dt": dt}
	if err := s.write(kind+"_power_spec", ps, attrs); err != nil {
		return err
	}
	if err := s.write(kind+"_power_spec_freq", freq, alens.Attrs{"dt": dt}); err != nil {
		return err
	}
	show(ps, kind+" power spectrum")
	if plotFile != "" {
		return chemplot.Lines([]chemplot.Series{{Name: kind, X: freq, Y: ps}},
			chemplot.LineOptions{Labels: chemplot.Labels{Title: "Power spectrum", X: "frequency", Y: "power"}, LogX: true, LogY: true}, plotFile)
	}
	return nil
}

func runResponse(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	traj, err := s.trajectory()
	if err != nil {
		return err
	}
	conf, _ := s.file.RunConfig()
	dt := timeStep(traj.Time)
	imag, freq := polystat.ImagResponse(traj, dt, conf.KBT, s.be)
	re := polystat.RealResponse(imag)
	for _, d := range []struct {
		name string
		data []float64
	}{{"imag_response", imag}, {"real_response", re}, {"response_freq", freq}} {
		if err := s.write(d.name, d.data, alens.Attrs{"dt": dt, "kbt": conf.KBT}); err != nil {
			return err
		}
	}
	show(imag, "imaginary response")
	if plotFile != "" {
		return chemplot.Lines([]chemplot.Series{{Name: "imaginary", X: freq, Y: imag}, {Name: "real", X: freq, Y: re}},
			chemplot.LineOptions{Labels: chemplot.Labels{Title: "Response", X: "frequency", Y: "response"}}, plotFile)
	}
	return nil
}

func runEnergy(cmd *cobra.Command, args []string) error {
	s, err := openSession(args[0])
	if err != nil {
		return err
	}
	defer s.Close()
	sy, err := s.file.Sylinders()
	if err != nil {
		return err
	}
	conf, _ := s.file.RunConfig()
	e, err := polystat.LinkEnergy(sy, conf, s.sink)
	if err != nil {
		return err
	}
	log.Printf("energy: %d links, expected mean energy %g (kT %g)", e.NLinks, e.Expected, e.KBT)
	show(e.Mean, "link energy")
	return nil
}

func runConnect(cmd *cobra.Command, args []string) error {
	be, err := alens.BackendByName(backendName, workers)
	if err != nil {
		return err
	}
	opts := connect.Options{Force: force, Start: ssInd, End: tsEnd, Backend: be}
	if err := connect.CreateConnectFile(args[0], opts); err != nil {
		return err
	}
	log.Printf("connect: %s", filepath.Join(filepath.Dir(args[0]), connect.FileName))
	return nil
}

func runLocalOrder(cmd *cobra.Command, args []string) error {
	pattern := "SylinderAscii_*.dat*"
	if len(args) > 0 {
		pattern = args[0]
	}
	conf, err := localorder.ReadRunConfig(loConfig)
	if err != nil {
		return err
	}
	p, err := localorder.NewParams(conf, loRad, loNSeg, loMesh, loStride)
	if err != nil {
		return err
	}
	p.Folder = loFolder
	files, err := localorder.SnapshotFiles(pattern)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no snapshot matches %s", pattern)
	}
	log.Printf("localorder: %d snapshots, stride %d", len(files), loStride)
	return localorder.Run(files, p, workers)
}

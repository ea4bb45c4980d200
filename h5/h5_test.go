/*
 * h5_test.go, part of aLENS-analysis.
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

package h5

import (
	"errors"
	"path/filepath"
	"testing"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/contact"
)

const runConfig = `linkKappa: 100.0
KBT: 0.00411
linkGap: 0.002
simBoxLow: [0, 0, 0]
simBoxHigh: [2, 2, 2]
sylinderDiameter: 0.02
timeSnap: 0.5
`

// writeTestRaw writes 3 beads over 5 steps, beads 0 and 1 at .01, bead 2 at 1.
func writeTestRaw(Te *testing.T, path string) {
	sy := alens.NewRawArray(3, 8, 5)
	x := []float64{0, .01, 1}
	for i := range x {
		for t := 0; t < 5; t++ {
			sy.Set(i, alens.SyRadius, t, .01)
			sy.Set(i, alens.SyMinusEnd, t, x[i])
			sy.Set(i, alens.SyPlusEnd, t, x[i])
		}
	}
	prot := alens.NewRawArray(2, 9, 5)
	for t := 0; t < 5; t++ {
		prot.Set(0, 7, t, 0)
		prot.Set(0, 8, t, 1)
		prot.Set(1, 7, t, -1)
		prot.Set(1, 8, t, -1)
	}
	f, err := Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	if err := f.WriteRaw(sy, prot, []float64{0, .5, 1, 1.5, 2}, runConfig); err != nil {
		Te.Fatal(err)
	}
}

func TestRawRoundTrip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "raw.h5")
	writeTestRaw(Te, path)
	f, err := Open(path, false)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	sy, err := f.Sylinders()
	if err != nil {
		Te.Fatal(err)
	}
	if a, b, c := sy.Dims(); a != 3 || b != 8 || c != 5 {
		Te.Errorf("wrong sylinder shape %d %d %d", a, b, c)
	}
	if sy.At(1, alens.SyMinusEnd, 3) != .01 {
		Te.Errorf("wrong sylinder data %f", sy.At(1, alens.SyMinusEnd, 3))
	}
	prot, err := f.Proteins()
	if err != nil || prot.At(0, 8, 2) != 1 {
		Te.Errorf("wrong protein data %v", err)
	}
	time, err := f.Time()
	if err != nil || len(time) != 5 || time[4] != 2 {
		Te.Errorf("wrong times %v %v", time, err)
	}
	conf, err := f.RunConfig()
	if err != nil {
		Te.Fatal(err)
	}
	if conf.SylinderDiameter != .02 || conf.Other["timeSnap"] != .5 {
		Te.Errorf("wrong run configuration %+v", conf)
	}
	if _, err := f.Analysis(); err == nil {
		Te.Error("read-only files should not give an analysis group")
	}
}

func TestAnalysisRoundTrip(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "raw.h5")
	writeTestRaw(Te, path)
	f, err := Open(path, true)
	if err != nil {
		Te.Fatal(err)
	}
	defer f.Close()
	sy, _ := f.Sylinders()
	traj, err := alens.FromSylinders(sy, nil)
	if err != nil {
		Te.Fatal(err)
	}
	g, err := f.Analysis()
	if err != nil {
		Te.Fatal(err)
	}
	defer g.Close()
	sink := alens.WithProvenance(g)
	res, err := contact.Analyze(traj, contact.Options{Sigma: .02, AvgBlockStep: 1}, sink)
	if err != nil {
		Te.Fatal(err)
	}
	data, dims, err := g.ReadDataset("avg_contact_mat")
	if err != nil {
		Te.Fatal(err)
	}
	if len(dims) != 2 || dims[0] != 3 || dims[1] != 3 {
		Te.Fatalf("wrong dimensions %v", dims)
	}
	for i, v := range res.AvgContact.RawMatrix().Data {
		if data[i] != v {
			Te.Errorf("element %d: stored %f computed %f", i, data[i], v)
		}
	}
	if s, err := g.FloatAttr("avg_contact_mat", "sigma"); err != nil || s != .02 {
		Te.Errorf("sigma attribute %f %v", s, err)
	}
	if id, err := g.StringAttr("contact_kymo", "analysis_id"); err != nil || id != sink.ID {
		Te.Errorf("analysis id %q want %q (%v)", id, sink.ID, err)
	}
	//datasets are not overwritten
	if _, err := contact.Analyze(traj, contact.DefaultOptions(), g); err == nil {
		Te.Error("writing avg_contact_mat twice should fail")
	}
}

func TestMissingRunConfigKey(Te *testing.T) {
	path := filepath.Join(Te.TempDir(), "bad.h5")
	f, err := Create(path)
	if err != nil {
		Te.Fatal(err)
	}
	sy := alens.NewRawArray(2, 8, 1)
	if err := f.WriteRaw(sy, nil, []float64{0}, "KBT: 1\n"); err != nil {
		Te.Fatal(err)
	}
	_, err = f.RunConfig()
	if !errors.Is(err, alens.ErrMissingKey) {
		Te.Errorf("expected a missing key error, got %v", err)
	}
	f.Close()
}

/*
 * contact_test.go, part of aLENS-analysis.
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

package contact

import (
	"math"
	"testing"

	alens "github.com/sidneyholden1/aLENS-analysis"
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/mat"
)

// lineTraj returns a trajectory where, at frame t, bead i sits at (x[t][i], 0, 0).
func lineTraj(Te *testing.T, x [][]float64) *alens.Trajectory {
	frames := make([]*v3.Matrix, len(x))
	time := make([]float64, len(x))
	for t, xs := range x {
		f := v3.Zeros(len(xs))
		for i, v := range xs {
			f.Set(i, 0, v)
		}
		frames[t] = f
		time[t] = float64(t) * .5
	}
	traj, err := alens.NewTrajectory(frames, time)
	if err != nil {
		Te.Fatal(err)
	}
	return traj
}

func TestGaussContactRange(Te *testing.T) {
	for _, sigma := range []float64{.005, .02, 1} {
		prev := GaussContact(0, sigma)
		if prev != 1 {
			Te.Errorf("contact at zero separation should be 1, got %f", prev)
		}
		for d := .001; d < 5*sigma; d += sigma / 10 {
			c := GaussContact(d, sigma)
			if c <= 0 || c >= 1 {
				Te.Errorf("sigma %f d %f: contact %g out of (0,1)", sigma, d, c)
			}
			if c >= prev {
				Te.Errorf("sigma %f d %f: contact not decreasing", sigma, d)
			}
			prev = c
		}
	}
	if l := LogGaussContact(.03, .02); math.Abs(l-math.Log10(GaussContact(.03, .02))) > 1e-12 {
		Te.Errorf("log contact %f doesn't match", l)
	}
}

func TestGaussWeightedContactRadii(Te *testing.T) {
	traj := lineTraj(Te, [][]float64{{0, .5}})
	sep := Separation(traj)
	c := GaussWeightedContact(sep, .02, []float64{.25, .25})
	if c.At(0, 1, 0) != 1 {
		Te.Errorf("touching surfaces should give contact 1, got %f", c.At(0, 1, 0))
	}
	if sep.At(0, 1, 0) != .5 {
		Te.Error("GaussWeightedContact modified the separation tensor")
	}
}

func TestContactKymo(Te *testing.T) {
	traj := lineTraj(Te, [][]float64{{0, .01, .03, 1}, {0, .02, .5, .51}})
	c := GaussWeightedContact(Separation(traj), .02, nil)
	k := ContactKymo(c)
	for i := 0; i < 4; i++ {
		for t := 0; t < 2; t++ {
			var s float64
			for j := 0; j < 4; j++ {
				s += c.At(j, i, t)
			}
			if math.Abs(k.At(i, t)-(s-1)) > 1e-14 {
				Te.Errorf("kymo %d,%d = %f want %f", i, t, k.At(i, t), s-1)
			}
		}
	}
}

func TestAnalyzeScenario(Te *testing.T) {
	x := make([][]float64, 5)
	for t := range x {
		x[t] = []float64{.1 * float64(t), .1*float64(t) + .01, .1*float64(t) + 1}
	}
	traj := lineTraj(Te, x)
	sink := alens.NewMemSink()
	res, err := Analyze(traj, Options{Sigma: .02, AvgBlockStep: 1}, sink)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(res.AvgContact.At(0, 1)-GaussContact(.01, .02)) > 1e-12 {
		Te.Errorf("avg contact 0,1 = %f want %f", res.AvgContact.At(0, 1), GaussContact(.01, .02))
	}
	if math.Abs(res.AvgContact.At(0, 2)-GaussContact(1, .02)) > 1e-12 || res.AvgContact.At(0, 2) > 1e-100 {
		Te.Errorf("avg contact 0,2 = %g should be ~0", res.AvgContact.At(0, 2))
	}
	if r, c := res.Kymo.Dims(); r != 3 || c != 5 {
		Te.Errorf("kymograph should be 3x5, is %dx%d", r, c)
	}
	//round trip through the sink
	d, ok := sink.Dataset("avg_contact_mat")
	if !ok {
		Te.Fatal("avg_contact_mat not written")
	}
	if !mat.Equal(mat.NewDense(3, 3, d.Data), res.AvgContact) {
		Te.Error("stored avg_contact_mat differs")
	}
	if d.Attrs["sigma"] != .02 || d.Attrs["avg_block_step"] != 1 || d.Attrs["log"] != false {
		Te.Errorf("wrong attributes %v", d.Attrs)
	}
	k, ok := sink.Dataset("contact_kymo")
	if !ok || !mat.Equal(mat.NewDense(3, 5, k.Data), res.Kymo) {
		Te.Error("stored contact_kymo differs")
	}
	if _, ok := k.Attrs["log"]; ok {
		Te.Error("contact_kymo should not carry the log attribute")
	}
}

func TestAnalyzeLogAndStride(Te *testing.T) {
	x := make([][]float64, 6)
	for t := range x {
		x[t] = []float64{0, .01 + .001*float64(t), 2}
	}
	traj := lineTraj(Te, x)
	res, err := Analyze(traj, Options{Sigma: .02, AvgBlockStep: 2, Log: true}, nil)
	if err != nil {
		Te.Fatal(err)
	}
	if res.Contact.T != 3 {
		Te.Errorf("stride 2 over 6 frames should keep 3, kept %d", res.Contact.T)
	}
	want := (GaussContact(.01, .02) + GaussContact(.012, .02) + GaussContact(.014, .02)) / 3
	if math.Abs(res.AvgContact.At(0, 1)-math.Log(want)) > 1e-12 {
		Te.Errorf("log avg contact %f want %f", res.AvgContact.At(0, 1), math.Log(want))
	}
	far := res.AvgContact.At(0, 2)
	if math.IsInf(far, 0) || math.IsNaN(far) {
		Te.Errorf("log contact of far beads should be finite, got %f", far)
	}
	if math.Abs(far-logContact(2, .02)) > 1e-9 {
		Te.Errorf("log contact of far beads %f want %f", far, logContact(2, .02))
	}
}

func TestOverlapArrs(Te *testing.T) {
	traj := lineTraj(Te, [][]float64{
		{0, .3, .6, 2},
		{0, 1, 2, 3},
		{0, .1, .2, .35},
	})
	num, avg, min := OverlapArrs(Separation(traj), .5)
	wantNum := []float64{2, 0, 6}
	for t, w := range wantNum {
		if num[t] != w {
			Te.Errorf("frame %d: %f overlaps, want %f", t, num[t], w)
		}
	}
	if math.Abs(avg[0]-.3) > 1e-12 || math.Abs(min[0]-.3) > 1e-12 {
		Te.Errorf("frame 0: avg %f min %f", avg[0], min[0])
	}
	if !math.IsNaN(avg[1]) || !math.IsNaN(min[1]) {
		Te.Errorf("frame 1 has no overlaps, avg and min should be NaN, got %f %f", avg[1], min[1])
	}
	if math.Abs(avg[2]-1.15/6) > 1e-12 || math.Abs(min[2]-.1) > 1e-12 {
		Te.Errorf("frame 2: avg %f min %f", avg[2], min[2])
	}
}

func TestSepHistogram(Te *testing.T) {
	traj := lineTraj(Te, [][]float64{{0, 1, 2}})
	h, edges := SepHistogram(Separation(traj), 4, 1)
	if len(edges) != 5 || edges[0] != .8 || math.Abs(edges[4]-1.2) > 1e-15 {
		Te.Errorf("wrong edges %v", edges)
	}
	//pairs at distance 1 appear twice each and are halved: 2 pairs.
	var s float64
	for _, v := range h[0] {
		s += v
	}
	if s != 2 {
		Te.Errorf("histogram holds %f pairs, want 2", s)
	}
	n := FindNeighbors(traj, 1, 0)
	if n.At(0, 1) != 1 || n.At(0, 2) != 0 || n.At(1, 1) != 1 {
		Te.Errorf("wrong neighbors %v", mat.Formatted(n))
	}
}

func TestContiguousRegions(Te *testing.T) {
	cases := []struct {
		in   []bool
		want [][2]int
	}{
		{[]bool{true, true, false, true}, [][2]int{{0, 2}, {3, 4}}},
		{[]bool{false, false}, nil},
		{[]bool{false, true, true, true, false}, [][2]int{{1, 4}}},
		{nil, nil},
	}
	for _, c := range cases {
		got := ContiguousRegions(c.in)
		if len(got) != len(c.want) {
			Te.Errorf("%v: got %v want %v", c.in, got, c.want)
			continue
		}
		for i := range got {
			if got[i] != c.want[i] {
				Te.Errorf("%v: got %v want %v", c.in, got, c.want)
			}
		}
	}
}

func TestContactCondensatesRaw(Te *testing.T) {
	kymo := mat.NewDense(5, 3, []float64{
		2, 0, 2,
		2, 0, 0,
		0, 0, 2,
		2, 0, 2,
		2, 0, 2,
	})
	time := []float64{0, 1, 2}
	sink := alens.NewMemSink()
	regions, num, err := ContactCondensates(time, kymo, 1, 0, 0, sink)
	if err != nil {
		Te.Fatal(err)
	}
	want := []Region{{0, 0, 2}, {0, 3, 5}, {2, 0, 1}, {2, 2, 5}}
	if len(regions) != len(want) {
		Te.Fatalf("got %v want %v", regions, want)
	}
	for i := range want {
		if regions[i] != want[i] {
			Te.Errorf("region %d: got %v want %v", i, regions[i], want[i])
		}
	}
	if num[0] != 2 || num[1] != 0 || num[2] != 2 {
		Te.Errorf("wrong counts %v", num)
	}
	//with zero windows only the raw values against the threshold matter
	shifted := mat.DenseCopyOf(kymo)
	shifted.Apply(func(i, j int, v float64) float64 {
		if v > 1 {
			return 100
		}
		return -100
	}, shifted)
	regions2, _, err := ContactCondensates(time, shifted, 1, 0, 0, nil)
	if err != nil || len(regions2) != len(regions) {
		Te.Errorf("condensates changed with values on the same side of the threshold: %v", regions2)
	}
	e, ok := sink.Dataset("contact_cond_edges")
	if !ok || e.Dims[0] != 4 || e.Dims[1] != 3 || e.Attrs["threshold"] != 1.0 {
		Te.Errorf("contact_cond_edges not stored properly %+v", e)
	}
	if _, ok := sink.Dataset("contact_cond_num"); !ok {
		Te.Error("contact_cond_num not stored")
	}
	if _, _, err := ContactCondensates(time[:2], kymo, 1, 0, 0, nil); err == nil {
		Te.Error("mismatched times should fail")
	}
}

func TestContactCondensatesSmoothed(Te *testing.T) {
	kymo := mat.NewDense(9, 5, nil)
	for i := 0; i < 9; i++ {
		for t := 0; t < 5; t++ {
			kymo.Set(i, t, float64(i))
		}
	}
	regions, num, err := ContactCondensates([]float64{0, 1, 2, 3, 4}, kymo, 4.5, 5, 5, nil)
	if err != nil {
		Te.Fatal(err)
	}
	//a linear ramp is unchanged by the filter
	for t, n := range num {
		if n != 1 {
			Te.Errorf("time %d: %d regions", t, n)
		}
	}
	if regions[0].Start != 5 || regions[0].End != 9 {
		Te.Errorf("wrong region %v", regions[0])
	}
}

func TestPosCondensates(Te *testing.T) {
	kymo := mat.NewDense(4, 2, []float64{
		0, 3,
		3, 3,
		3, 0,
		0, 3,
	})
	centers := []float64{.5, 1.5, 2.5, 3.5}
	sink := alens.NewMemSink()
	regions, num, err := PosCondensates([]float64{10, 20}, kymo, centers, 1, 0, 0, sink)
	if err != nil {
		Te.Fatal(err)
	}
	want := []Region{{10, 1.5, 3.5}, {20, .5, 2.5}, {20, 3.5, 3.5}}
	if len(regions) != 3 || num[0] != 1 || num[1] != 2 {
		Te.Fatalf("got %v %v", regions, num)
	}
	for i := range want {
		if regions[i] != want[i] {
			Te.Errorf("region %d: got %v want %v", i, regions[i], want[i])
		}
	}
	d, _ := sink.Dataset("pos_cond_num")
	if tr := d.Attrs["time_range"].([]float64); tr[0] != 10 || tr[1] != 20 {
		Te.Errorf("wrong time range %v", tr)
	}
}

func TestPosKymo(Te *testing.T) {
	nbeads, nsteps := 5, 4
	sy := alens.NewRawArray(nbeads, 8, nsteps)
	for i := 0; i < nbeads; i++ {
		for t := 0; t < nsteps; t++ {
			x := float64(i) * .4
			sy.Set(i, alens.SyMinusEnd, t, x)
			sy.Set(i, alens.SyPlusEnd, t, x)
		}
	}
	src := &alens.MemSource{Sy: sy, Times: []float64{0, 1, 2, 3},
		Config: &alens.RunConfig{SimBoxLow: []float64{0, -1, -1}, SimBoxHigh: []float64{2, 1, 1}, SylinderDiameter: .4}}
	sink := alens.NewMemSink()
	res, err := PosKymo(src, [2]int{1, -1}, [2]int{0, -1}, 4, sink)
	if err != nil {
		Te.Fatal(err)
	}
	if r, c := res.Hist.Dims(); r != 4 || c != 3 {
		Te.Fatalf("kymograph should be 4x3, is %dx%d", r, c)
	}
	//beads at 0 .4 .8 1.2 1.6, bins of width .5
	want := []float64{2, 1, 1, 1}
	for b, w := range want {
		if res.Hist.At(b, 0) != w {
			Te.Errorf("bin %d: %f want %f", b, res.Hist.At(b, 0), w)
		}
	}
	if res.Time[0] != 1 {
		Te.Errorf("time window not applied: %v", res.Time)
	}
	if _, ok := sink.Dataset("pos_kymo_bin_edges"); !ok {
		Te.Error("bin edges not stored")
	}
}

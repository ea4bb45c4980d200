/*
 * polystat_test.go, part of aLENS-analysis.
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

package polystat

import (
	"math"
	"testing"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/contact"
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/floats"
)

var backends = []alens.Backend{alens.Serial{}, alens.Pool{Workers: 3}}

// makeTraj builds a trajectory of n beads and nt frames with the positions given by pos.
func makeTraj(Te *testing.T, n, nt int, pos func(i, t int) [3]float64) *alens.Trajectory {
	frames := make([]*v3.Matrix, nt)
	time := make([]float64, nt)
	for t := range frames {
		frames[t] = v3.Zeros(n)
		for i := 0; i < n; i++ {
			frames[t].SetVec(i, pos(i, t))
		}
		time[t] = float64(t)
	}
	traj, err := alens.NewTrajectory(frames, time)
	if err != nil {
		Te.Fatal(err)
	}
	return traj
}

// wobbly is a small polymer with irregular motion.
func wobbly(Te *testing.T) *alens.Trajectory {
	return makeTraj(Te, 4, 9, func(i, t int) [3]float64 {
		fi, ft := float64(i), float64(t)
		return [3]float64{fi + .3*math.Sin(.7*ft+fi), .2 * math.Cos(1.3*ft*fi), .1 * ft * math.Sin(fi)}
	})
}

func TestFFTFreq(Te *testing.T) {
	cases := []struct {
		n    int
		d    float64
		want []float64
	}{
		{4, .5, []float64{0, .5, -1, -.5}},
		{5, 1, []float64{0, .2, .4, -.4, -.2}},
		{1, 1, []float64{0}},
	}
	for _, c := range cases {
		if got := FFTFreq(c.n, c.d); !floats.EqualApprox(got, c.want, 1e-14) {
			Te.Errorf("FFTFreq(%d, %f) = %v want %v", c.n, c.d, got, c.want)
		}
	}
}

func directDCT2(x []float64) []float64 {
	n := len(x)
	ret := make([]float64, n)
	for k := range ret {
		for i, v := range x {
			ret[k] += 2 * v * math.Cos(math.Pi*float64(k)*float64(2*i+1)/float64(2*n))
		}
		f := math.Sqrt(1 / float64(2*n))
		if k == 0 {
			f = math.Sqrt(1 / float64(4*n))
		}
		ret[k] *= f
	}
	return ret
}

func directDST2(x []float64) []float64 {
	n := len(x)
	ret := make([]float64, n)
	for k := range ret {
		for i, v := range x {
			ret[k] += 2 * v * math.Sin(math.Pi*float64(k+1)*float64(2*i+1)/float64(2*n))
		}
		f := math.Sqrt(1 / float64(2*n))
		if k == n-1 {
			f = math.Sqrt(1 / float64(4*n))
		}
		ret[k] *= f
	}
	return ret
}

func TestDCTDST(Te *testing.T) {
	for _, x := range [][]float64{
		{1},
		{1, 2},
		{.3, -1, 4, 2.5, 0, 7},
		{1, 1, 1, 1, 1, 1, 1},
	} {
		c := DCT2(x)
		if !floats.EqualApprox(c, directDCT2(x), 1e-10) {
			Te.Errorf("DCT2(%v) = %v want %v", x, c, directDCT2(x))
		}
		s := DST2(x)
		if !floats.EqualApprox(s, directDST2(x), 1e-10) {
			Te.Errorf("DST2(%v) = %v want %v", x, s, directDST2(x))
		}
		//orthonormal transforms preserve the norm
		n := floats.Norm(x, 2)
		if math.Abs(floats.Norm(c, 2)-n) > 1e-10 || math.Abs(floats.Norm(s, 2)-n) > 1e-10 {
			Te.Errorf("transforms of %v don't preserve the norm", x)
		}
	}
	//each basis vector is transformed into a unit vector, and those are orthogonal
	n := 5
	var basis [][]float64
	for i := 0; i < n; i++ {
		e := make([]float64, n)
		e[i] = 1
		basis = append(basis, DCT2(e))
	}
	for i := range basis {
		for j := range basis {
			want := 0.
			if i == j {
				want = 1
			}
			if d := floats.Dot(basis[i], basis[j]); math.Abs(d-want) > 1e-12 {
				Te.Errorf("DCT2 basis %d.%d = %f", i, j, d)
			}
		}
	}
}

func TestRealResponse(Te *testing.T) {
	x := []float64{0, .1, .4, -.2, .3, 0, .05, -.1}
	want := directDST2(directDCT2(x))
	floats.Scale(2/math.Pi, want)
	if got := RealResponse(x); !floats.EqualApprox(got, want, 1e-10) {
		Te.Errorf("RealResponse = %v want %v", got, want)
	}
	for _, v := range RealResponse(make([]float64, 4)) {
		if v != 0 {
			Te.Error("response of nothing should be nothing")
		}
	}
}

func TestBeadMSD(Te *testing.T) {
	//two beads moving apart along x, the centroid stays put.
	traj := makeTraj(Te, 2, 6, func(i, t int) [3]float64 {
		s := 1.
		if i == 1 {
			s = -1
		}
		return [3]float64{s * .5 * float64(t), 1, 2}
	})
	for _, be := range backends {
		msd := BeadMSD(traj, be)
		for tau, v := range msd {
			want := .25 * float64(tau*tau)
			if math.Abs(v-want) > 1e-12 {
				Te.Errorf("%T: msd[%d] = %f want %f", be, tau, v, want)
			}
		}
	}
}

func TestPolyAutocorr(Te *testing.T) {
	traj := wobbly(Te)
	c := traj.Centered()
	direct := PolyAutocorr(traj, alens.Serial{})
	fast := PolyAutocorrFast(traj, alens.Serial{})
	if len(direct) != traj.Len() || len(fast) != traj.Len() {
		Te.Fatalf("wrong lengths %d %d", len(direct), len(fast))
	}
	if math.Abs(direct[0]-fast[0]) > 1e-12 {
		Te.Errorf("lag 0 differs: direct %f fast %f", direct[0], fast[0])
	}
	//the fast version is the circular correlation divided by T
	nt, n := c.Len(), c.NBeads()
	for tau := 0; tau < nt; tau++ {
		var s float64
		for i := 0; i < n; i++ {
			for t := 0; t < nt; t++ {
				s += v3.Dot3(c.Coord(i, t), c.Coord(i, (t+tau)%nt))
			}
		}
		want := s / float64(nt*n)
		if math.Abs(fast[tau]-want) > 1e-10 {
			Te.Errorf("fast[%d] = %f want %f", tau, fast[tau], want)
		}
	}
	pooled := PolyAutocorrFast(traj, alens.Pool{})
	if !floats.EqualApprox(pooled, fast, 1e-14) {
		Te.Error("results depend on the backend")
	}
	if !floats.Equal(PolyAutocorr(traj, alens.Pool{Workers: 2}), direct) {
		Te.Error("direct results depend on the backend")
	}
	dist := PolyDistAutocorrFast(traj, alens.Serial{})
	com := AvgDistFromCOM(traj)
	if len(dist) != nt || len(com) != n || dist[0] <= 0 {
		Te.Errorf("wrong distance autocorrelation %v %v", dist, com)
	}
}

func TestAngAutocorr(Te *testing.T) {
	ac := AngAutocorr(wobbly(Te), alens.Serial{})
	if math.Abs(ac[0]-1) > 1e-12 {
		Te.Errorf("unit vectors should have autocorrelation 1 at lag 0, got %f", ac[0])
	}
	for _, v := range ac {
		if v > 1+1e-12 || v < -1-1e-12 {
			Te.Errorf("autocorrelation of unit vectors out of [-1, 1]: %f", v)
		}
	}
}

func TestSepAutocorr(Te *testing.T) {
	traj := wobbly(Te)
	direct := SepAutocorr(traj, alens.Serial{})
	fast := SepAutocorrFast(traj, alens.Pool{Workers: 2})
	n, _, nt := fast.Dims()
	if n != 4 || nt != 9 || len(direct) != 9 {
		Te.Fatalf("wrong shapes %d %d %d", n, nt, len(direct))
	}
	//fast keeps the per pair value, direct sums pairs and normalizes by N^2 <s>^2
	_, avg := frameMeans(contact.Separation(traj))
	var s float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			s += fast.At(i, j, 0)
			if fast.At(i, j, 3) != fast.At(j, i, 3) {
				Te.Errorf("fast separation autocorrelation not symmetric at %d %d", i, j)
			}
		}
	}
	want := s / (float64(n*n) * avg * avg)
	if math.Abs(direct[0]-want) > 1e-10 {
		Te.Errorf("lag 0: direct %f, from fast %f", direct[0], want)
	}
	if !floats.Equal(SepAutocorr(traj, alens.Pool{}), direct) {
		Te.Error("results depend on the backend")
	}
}

func TestPowerSpecAndResponse(Te *testing.T) {
	//two beads oscillating in opposition with one period over 8 frames
	nt, dt := 8, .5
	traj := makeTraj(Te, 2, nt, func(i, t int) [3]float64 {
		x := math.Cos(2 * math.Pi * float64(t) / float64(nt))
		if i == 1 {
			x = -x
		}
		return [3]float64{x, 0, 0}
	})
	ps, freq := PowerSpec(traj, dt, alens.Serial{})
	if len(ps) != nt/2 || !floats.EqualApprox(freq, []float64{0, .25, .5, .75}, 1e-14) {
		Te.Fatalf("wrong spectrum shape %v %v", ps, freq)
	}
	want := []float64{0, dt * float64(nt) / 4, 0, 0}
	if !floats.EqualApprox(ps, want, 1e-10) {
		Te.Errorf("power spectrum %v want %v", ps, want)
	}
	dps, _ := DistPowerSpec(traj, dt, alens.Serial{})
	if len(dps) != nt/2 {
		Te.Errorf("wrong distance spectrum length %d", len(dps))
	}
	aps, _ := AngPowerSpec(traj, dt, alens.Pool{})
	if len(aps) != nt/2 {
		Te.Errorf("wrong angular spectrum length %d", len(aps))
	}
	iresp, ifreq := ImagResponse(traj, dt, 1, alens.Serial{})
	if len(iresp) != nt || len(ifreq) != nt {
		Te.Fatalf("response should cover all %d frequencies", nt)
	}
	//forward normalization: |F_1|^2 = 1/4
	w := .5 * .25 * dt / 4
	if math.Abs(iresp[1]-w) > 1e-12 || math.Abs(iresp[nt-1]+w) > 1e-12 {
		Te.Errorf("imaginary response %v, want %f at the first mode", iresp, w)
	}
	if math.Abs(iresp[2]) > 1e-12 {
		Te.Errorf("imaginary response should vanish away from the mode: %v", iresp)
	}
}

func TestIdxDistAndShape(Te *testing.T) {
	//a straight chain with unit spacing
	traj := makeTraj(Te, 4, 3, func(i, t int) [3]float64 {
		return [3]float64{float64(i), float64(t), 0}
	})
	if d := DistVsIdxDist(traj); !floats.EqualApprox(d, []float64{1, 2, 3}, 1e-12) {
		Te.Errorf("distance vs index distance %v", d)
	}
	if c := ContactVsIdxDist(traj, 1.5); !floats.Equal(c, []float64{1, 0, 0}) {
		Te.Errorf("contact vs index distance %v", c)
	}
	for _, v := range EndEndDistance(traj) {
		if math.Abs(v-3) > 1e-12 {
			Te.Errorf("end to end distance %f", v)
		}
	}
	//sqrt((2*1.5^2 + 2*.5^2)/4)
	for _, v := range RadiusOfGyration(traj) {
		if math.Abs(v-math.Sqrt(1.25)) > 1e-12 {
			Te.Errorf("radius of gyration %f", v)
		}
	}
	if com := AvgDistFromCOM(traj); !floats.EqualApprox(com, []float64{1.5, .5, .5, 1.5}, 1e-12) {
		Te.Errorf("distances from the centroid %v", com)
	}
	ac := AutocorrBeadPos(traj, []int{0, 2}, alens.Serial{})
	if r, c := ac.Dims(); r != 2 || c != 3 {
		Te.Fatalf("wrong bead position autocorrelation shape %d %d", r, c)
	}
	//bead 1 at (1, t, 0): lag 0 is mean(1+t^2) = 8/3
	if math.Abs(ac.At(0, 0)-8./3) > 1e-12 {
		Te.Errorf("bead position autocorrelation %f", ac.At(0, 0))
	}
}

func TestLinkEnergy(Te *testing.T) {
	nb, nt := 3, 2
	sy := alens.NewRawArray(nb, 8, nt)
	starts := []float64{0, 2.2, 4.4}
	for i := 0; i < nb; i++ {
		for t := 0; t < nt; t++ {
			sy.Set(i, alens.SyRadius, t, .5)
			sy.Set(i, alens.SyMinusEnd, t, starts[i])
			sy.Set(i, alens.SyPlusEnd, t, starts[i]+1)
		}
	}
	conf := &alens.RunConfig{LinkKappa: 2, KBT: 1, LinkGap: .1, SimBoxLow: []float64{0, 0, 0}, SimBoxHigh: []float64{1, 1, 1}, SylinderDiameter: 1}
	sink := alens.NewMemSink()
	le, err := LinkEnergy(sy, conf, sink)
	if err != nil {
		Te.Fatal(err)
	}
	//links are 1.2 long, rest length 1.1
	for t := 0; t < nt; t++ {
		if math.Abs(le.Mean[t]-.01) > 1e-12 || math.Abs(le.SEM[t]) > 1e-12 {
			Te.Errorf("frame %d: energy %f +- %f", t, le.Mean[t], le.SEM[t])
		}
	}
	if want := .5 - 1/(1+2*1.1*1.1); math.Abs(le.Expected-want) > 1e-12 {
		Te.Errorf("expected energy %f want %f", le.Expected, want)
	}
	d, ok := sink.Dataset("link_energy")
	if !ok || d.Dims[0] != 2 || d.Dims[1] != nt || d.Attrs["nsylinders"] != 2 {
		Te.Errorf("link_energy not stored properly: %+v", d)
	}
	ten, err := LinkTension(sy, conf)
	if err != nil {
		Te.Fatal(err)
	}
	if math.Abs(ten.At(1, 1)-.2) > 1e-12 {
		Te.Errorf("tension %f want .2", ten.At(1, 1))
	}
	if _, err := LinkEnergy(alens.NewRawArray(1, 8, 1), conf, nil); err == nil {
		Te.Error("a single bead has no links")
	}
}

func TestDistributions(Te *testing.T) {
	traj := makeTraj(Te, 3, 4, func(i, t int) [3]float64 {
		return [3]float64{.25 * float64(i), 0, .1 * float64(t)}
	})
	h, h2 := DistrHists(traj, .5, 0, 10, 1)
	if h.Total() != 4 || h.View()[2] != 4 {
		Te.Errorf("distance histogram %v", h.View())
	}
	if r, c := h2.Counts().Dims(); r != 5 || c != 5 {
		Te.Errorf("2D histogram should have 5x5 bins, has %dx%d", r, c)
	}
	th, _ := TotalDistrHists(traj, 0, 4, 1)
	if th.Total() != 12 {
		Te.Errorf("total histogram counted %d points", th.Total())
	}
	origin := make([][3]float64, 4)
	zaxis := [][3]float64{{0, 0, 1}, {0, 0, 1}, {0, 0, 1}, {0, 0, 1}}
	cyl := CylinDistrHists(traj, origin, zaxis, 4, 1)
	if cyl.Counts().At(1, 1) == 0 {
		Te.Errorf("cylindrical histogram %v", cyl.Counts())
	}
	cart := CartDistrHists(traj, origin, 0, 2, 4, 1)
	cc := cart.Counts()
	if cc.At(0, 0)+cc.At(0, 1)+cc.At(1, 0) != 0 || cc.At(1, 1) != 12 {
		Te.Errorf("no bead has negative x or z: %v", cc)
	}
	rh := RadDistrHists(traj, origin, 4, 1)
	if rh.Total() != 12 {
		Te.Errorf("radial histogram counted %d points", rh.Total())
	}
	rdf, div := RadDistrFuncAtT([]float64{.1, .1, .3}, 2, .4, 1)
	//centers .1 and .3, width .2
	want := []float64{2 / (math.Pi * .01 * .2 * 3), 1 / (math.Pi * .09 * .2 * 3)}
	if len(div) != 3 || !floats.EqualApprox(rdf, want, 1e-9) {
		Te.Errorf("rdf %v want %v", rdf, want)
	}
	avg, std, rmean, rstd := RogStats(traj, 0)
	if math.Abs(avg.At(2, 0)-.5) > 1e-12 || std.At(2, 0) != 0 || math.Abs(rmean[1]-.0625) > 1e-12 || rstd[1] > 1e-12 {
		Te.Errorf("rog stats %v %v %v %v", avg, std, rmean, rstd)
	}
}

/*
 * connect_test.go, part of aLENS-analysis.
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

package connect

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/h5"
	"gonum.org/v1/gonum/mat"
)

// protFrame returns protein rows for crosslinkers binding the given bead
// pairs; a pair with a negative bead is left unbound.
func protFrame(pairs ...[2]float64) [][]float64 {
	var ret [][]float64
	for _, p := range pairs {
		ret = append(ret, []float64{0, 1, 2, 0, 0, 0, 0, p[0], p[1]})
	}
	return ret
}

// testMats are 3 steps of a 4 bead chain.
func testMats(Te *testing.T) []*Sparse {
	frames := [][][]float64{
		protFrame([2]float64{0, 0}, [2]float64{1, 1}, [2]float64{0, 2}, [2]float64{-1, -1}),
		protFrame([2]float64{0, 0}, [2]float64{2, 2}, [2]float64{0, 2}, [2]float64{3, 1}),
		protFrame([2]float64{1, 1}, [2]float64{1, 1}, [2]float64{2, 0}),
	}
	var mats []*Sparse
	for _, f := range frames {
		m, err := FromProteins(f, 4)
		if err != nil {
			Te.Fatal(err)
		}
		mats = append(mats, m)
	}
	return mats
}

func TestFromProteins(Te *testing.T) {
	m := testMats(Te)[2]
	if m.At(1, 1) != 2 {
		Te.Errorf("duplicated crosslinkers should accumulate, got %f", m.At(1, 1))
	}
	if m.At(2, 0) != 1 || m.At(0, 2) != 0 {
		Te.Error("connectivity matrices are not symmetrized")
	}
	if m.NNZ() != 2 {
		Te.Errorf("%d stored elements, want 2", m.NNZ())
	}
	var n int
	m.DoNonZero(func(i, j int, v float64) { n++ })
	if n != 2 {
		Te.Errorf("DoNonZero visited %d elements", n)
	}
	if m.T().At(0, 2) != 1 {
		Te.Error("wrong transpose")
	}
	if _, err := FromProteins(protFrame([2]float64{0, 7}), 4); err == nil {
		Te.Error("beads out of range should fail")
	}
	if _, err := FromProteins(protFrame([2]float64{-1, -1}), 4); err != nil {
		Te.Errorf("unbound crosslinkers should be ignored: %v", err)
	}
}

func TestDiagAutocorr(Te *testing.T) {
	mats := testMats(Te)
	for _, be := range []alens.Backend{alens.Serial{}, alens.Pool{Workers: 2}} {
		ac := DiagAutocorr(mats, be)
		if r, c := ac.Dims(); r != 3 || c != 4 {
			Te.Fatalf("autocorrelation should be 3x4, is %dx%d", r, c)
		}
		//lag 0, d 0: twice the mean over frames of the squared diagonal
		var self float64
		for _, m := range mats {
			for i := 0; i < 4; i++ {
				self += m.At(i, i) * m.At(i, i)
			}
		}
		self /= 3
		if ac.At(0, 0) != 2*self {
			Te.Errorf("lag 0 diagonal %f want %f", ac.At(0, 0), 2*self)
		}
		//lag 0, d 2: (0,2) in frames 0 and 1, (3,1) in frame 1, (2,0) in frame 2
		if ac.At(0, 2) != 4./3 {
			Te.Errorf("lag 0 second diagonal %f want 4/3", ac.At(0, 2))
		}
		//lag 1: frames 0-1 share (0,0) and (0,2), frames 1-2 share nothing
		want := []float64{.5 * 2, 0, .5, 0}
		for d, w := range want {
			if ac.At(1, d) != w {
				Te.Errorf("lag 1, diagonal %d: %f want %f", d, ac.At(1, d), w)
			}
		}
		//lag 2: frames 0 and 2 share (1,1), 1*2
		if ac.At(2, 0) != 4 {
			Te.Errorf("lag 2 diagonal %f want 4", ac.At(2, 0))
		}
	}
}

func TestAutocorr(Te *testing.T) {
	mats := testMats(Te)
	ac := Autocorr(mats, alens.Serial{})
	//lag 0: (3 + 4 + 5)/3
	want := []float64{4, 1, 2}
	for tau, w := range want {
		if ac[tau] != w {
			Te.Errorf("lag %d: %f want %f", tau, ac[tau], w)
		}
	}
	sec := SectionAutocorr(mats, 1, 4, alens.Pool{})
	//only (0,2) counts: frames 0 and 1
	if sec[0] != 2./3 || sec[1] != .5 || sec[2] != 0 {
		Te.Errorf("section autocorrelation %v", sec)
	}
	avg := Average(mats)
	if math.Abs(avg.At(1, 1)-1) > 1e-12 || math.Abs(avg.At(0, 2)-2./3) > 1e-12 {
		Te.Errorf("wrong average %v", mat.Formatted(avg))
	}
}

func TestCreateConnectFile(Te *testing.T) {
	dir := Te.TempDir()
	rawPath := filepath.Join(dir, "result.h5")
	sy := alens.NewRawArray(4, 8, 3)
	prot := alens.NewRawArray(2, 9, 3)
	for t := 0; t < 3; t++ {
		prot.Set(0, 7, t, 0)
		prot.Set(0, 8, t, 2)
		prot.Set(1, 7, t, -1)
		prot.Set(1, 8, t, -1)
	}
	raw, err := h5.Create(rawPath)
	if err != nil {
		Te.Fatal(err)
	}
	conf := "linkKappa: 1\nKBT: 1\nlinkGap: 0\nsimBoxLow: [0,0,0]\nsimBoxHigh: [1,1,1]\nsylinderDiameter: 1\n"
	if err := raw.WriteRaw(sy, prot, []float64{1, 2, 3}, conf); err != nil {
		Te.Fatal(err)
	}
	raw.Close()

	if err := CreateConnectFile(rawPath, Options{Start: 1, End: -1}); err != nil {
		Te.Fatal(err)
	}
	out := filepath.Join(dir, FileName)
	f, err := h5.Open(out, true)
	if err != nil {
		Te.Fatal(err)
	}
	root, err := f.Group("/")
	if err != nil {
		Te.Fatal(err)
	}
	lag, _, err := root.ReadDataset("lag_time")
	if err != nil || len(lag) != 2 || lag[0] != 0 || lag[1] != 1 {
		Te.Errorf("wrong lag times %v %v", lag, err)
	}
	ac, dims, err := root.ReadDataset("autocorr")
	if err != nil || dims[0] != 2 || dims[1] != 4 || ac[2] != 1 {
		Te.Errorf("wrong autocorrelation %v %v %v", ac, dims, err)
	}
	root.Close()
	f.Close()

	//an existing file is kept unless forced
	st, _ := os.Stat(out)
	if err := CreateConnectFile(rawPath, Options{}); err != nil {
		Te.Errorf("existing file without force should not be an error: %v", err)
	}
	st2, _ := os.Stat(out)
	if !st2.ModTime().Equal(st.ModTime()) {
		Te.Error("file overwritten without force")
	}
	if err := CreateConnectFile(rawPath, Options{Force: true}); err != nil {
		Te.Fatal(err)
	}
}

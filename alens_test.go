/*
 * alens_test.go, part of aLENS-analysis.
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

package alens

import (
	"errors"
	"math"
	"sync/atomic"
	"testing"

	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
)

func testSylinders(nbeads, nsteps int) *RawArray {
	sy := NewRawArray(nbeads, 8, nsteps)
	for i := 0; i < nbeads; i++ {
		for t := 0; t < nsteps; t++ {
			sy.Set(i, SyRadius, t, .5)
			//endpoints at x = i +/- .25, y = t
			sy.Set(i, SyMinusEnd, t, float64(i)-.25)
			sy.Set(i, SyPlusEnd, t, float64(i)+.25)
			sy.Set(i, SyMinusEnd+1, t, float64(t))
			sy.Set(i, SyPlusEnd+1, t, float64(t))
		}
	}
	return sy
}

func TestFromSylinders(Te *testing.T) {
	traj, err := FromSylinders(testSylinders(4, 3), []float64{0, .1, .2})
	if err != nil {
		Te.Fatal(err)
	}
	if traj.Len() != 3 || traj.NBeads() != 4 {
		Te.Fatalf("wrong trajectory shape %d frames %d beads", traj.Len(), traj.NBeads())
	}
	if c := traj.Coord(2, 1); c != [3]float64{2, 1, 0} {
		Te.Errorf("wrong center of mass %v", c)
	}
	if traj.Radii[3] != .5 {
		Te.Errorf("wrong radius %f", traj.Radii[3])
	}
	s := traj.Stride(2)
	if s.Len() != 2 || s.Time[1] != .2 {
		Te.Errorf("stride 2 should keep frames 0 and 2, got %d frames, times %v", s.Len(), s.Time)
	}
	b := traj.Beads(1, 3)
	if b.NBeads() != 2 || b.Coord(0, 0) != traj.Coord(1, 0) {
		Te.Errorf("bead selection failed")
	}
	c := traj.Centered()
	if cen := c.Frames[0].Centroid(); math.Abs(cen[0])+math.Abs(cen[1]) > 1e-12 {
		Te.Errorf("centered frame has centroid %v", cen)
	}
	if _, err := FromSylinders(NewRawArray(2, 4, 1), nil); err == nil {
		Te.Error("sylinder data with 4 fields should be rejected")
	}
}

func TestNewTrajectoryMismatch(Te *testing.T) {
	_, err := NewTrajectory([]*v3.Matrix{v3.Zeros(2), v3.Zeros(3)}, nil)
	if err == nil {
		Te.Error("frames with different bead numbers should be rejected")
	}
}

func TestRunConfig(Te *testing.T) {
	doc := []byte(`
linkKappa: 100
KBT: 0.00411
linkGap: 0.002
simBoxLow: [-1, -1, -1]
simBoxHigh: [1, 1, 1]
sylinderDiameter: 0.025
viscosity: 0.01
`)
	c, err := ParseRunConfig(doc)
	if err != nil {
		Te.Fatal(err)
	}
	if c.LinkKappa != 100 || c.KBT != .00411 || c.BoxHigh()[2] != 1 {
		Te.Errorf("wrong values decoded %+v", c)
	}
	if c.Other["viscosity"] != .01 {
		Te.Errorf("extra keys should be kept, got %v", c.Other)
	}
	_, err = ParseRunConfig([]byte("KBT: 1\n"))
	if !errors.Is(err, ErrMissingKey) {
		Te.Errorf("expected a missing key error, got %v", err)
	}
}

func TestBackends(Te *testing.T) {
	for _, b := range []Backend{Serial{}, Pool{Workers: 3}} {
		out := make([]int, 50)
		var calls int64
		err := b.Do(len(out), func(i int) error {
			atomic.AddInt64(&calls, 1)
			out[i] = i * i
			return nil
		})
		if err != nil || calls != 50 {
			Te.Errorf("%T: err %v calls %d", b, err, calls)
		}
		for i, v := range out {
			if v != i*i {
				Te.Errorf("%T: slot %d has %d", b, i, v)
			}
		}
		boom := errors.New("boom")
		if err := b.Do(5, func(i int) error {
			if i == 3 {
				return boom
			}
			return nil
		}); !errors.Is(err, boom) {
			Te.Errorf("%T: error not propagated: %v", b, err)
		}
	}
}

func TestMemSinkProvenance(Te *testing.T) {
	m := NewMemSink()
	p := WithProvenance(m)
	if err := p.WriteDataset("x", []float64{1, 2, 3, 4}, []int{2, 2}, Attrs{"sigma": .02}); err != nil {
		Te.Fatal(err)
	}
	d, ok := m.Dataset("x")
	if !ok {
		Te.Fatal("dataset not stored")
	}
	if d.Attrs["analysis_id"] != p.ID || d.Attrs["sigma"] != .02 {
		Te.Errorf("wrong attributes %v", d.Attrs)
	}
	if err := m.WriteDataset("x", []float64{1}, []int{1}, nil); err == nil {
		Te.Error("overwriting a dataset should fail")
	}
	if err := m.WriteDataset("y", []float64{1, 2, 3}, []int{2, 2}, nil); err == nil {
		Te.Error("mismatched dimensions should fail")
	}
}

func TestErrDecorate(Te *testing.T) {
	err := ErrDecorate(NewError("bad", "inner"), "outer")
	var e *Error
	if !errors.As(err, &e) {
		Te.Fatalf("decorated error lost its type: %v", err)
	}
	if d := e.Decorate(""); len(d) != 2 || d[1] != "outer" {
		Te.Errorf("wrong decoration %v", d)
	}
}

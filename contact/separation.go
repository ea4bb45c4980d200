/*
 * separation.go, part of aLENS-analysis.
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

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/histo"
	"gonum.org/v1/gonum/mat"
)

// Separation returns the N x N x T tensor of pairwise distances between the
// beads of traj. The tensor is symmetric with a zero diagonal.
func Separation(traj *alens.Trajectory) *alens.Tensor3 {
	n := traj.NBeads()
	sep := alens.NewTensor3(n, n, traj.Len())
	for t, f := range traj.Frames {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				d := f.Distance(i, f, j)
				sep.Set(i, j, t, d)
				sep.Set(j, i, t, d)
			}
		}
	}
	return sep
}

// SepDistMat returns the separation tensor of the beads b0 (inclusive) to
// b1 (exclusive) from frame ssInd to the end of the trajectory. A negative
// b1 selects up to the last bead.
func SepDistMat(traj *alens.Trajectory, ssInd, b0, b1 int) *alens.Tensor3 {
	return Separation(traj.Window(ssInd, -1).Beads(b0, b1))
}

// OverlapArrs counts, for each frame of the distance tensor, the pairs of
// beads closer than diam (self pairs excluded, each pair counted once), and
// returns the average and the minimum distance among those pairs. A frame
// without overlapping pairs gets NaN as average and minimum; callers must
// be ready for it.
func OverlapArrs(dist *alens.Tensor3, diam float64) (num, avg, min []float64) {
	n, _, nt := dist.Dims()
	num = make([]float64, nt)
	avg = make([]float64, nt)
	min = make([]float64, nt)
	for t := 0; t < nt; t++ {
		var count int
		var sum float64
		m := math.Inf(1)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				d := dist.At(i, j, t)
				if d >= diam {
					continue
				}
				count++
				sum += d
				if d != 0 && d < m {
					m = d
				}
			}
		}
		num[t] = .5 * float64(count-n)
		avg[t] = .5 * sum / num[t]
		if num[t] == 0 {
			avg[t] = math.NaN()
		}
		min[t] = m
		if math.IsInf(m, 1) {
			min[t] = math.NaN()
		}
	}
	return num, avg, min
}

// SepHistogram returns, for each frame of the distance tensor, the histogram
// of all pairwise separations between .8 and 1.2 times diam, in nbins bins.
// Every count is halved, as each pair appears twice in the tensor.
// The bin edges are returned as the second value.
func SepHistogram(dist *alens.Tensor3, nbins int, diam float64) ([][]float64, []float64) {
	div := histo.Dividers(nbins, .8*diam, 1.2*diam)
	ret := make([][]float64, dist.T)
	for t := range ret {
		h := histo.NewData(div, dist.Frame(t).RawMatrix().Data)
		h.Scale(.5)
		ret[t] = h.Copy()
	}
	return ret, div
}

// SepHist reads the raw data and run configuration from src and returns the
// per-frame separation histograms from frame ssInd on, with the range set by
// the sylinderDiameter of the run.
func SepHist(src alens.Source, nbins, ssInd int) ([][]float64, []float64, error) {
	conf, err := src.RunConfig()
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "SepHist")
	}
	traj, err := trajectory(src, false)
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "SepHist")
	}
	dist := SepDistMat(traj, ssInd, 0, -1)
	h, e := SepHistogram(dist, nbins, conf.SylinderDiameter)
	return h, e, nil
}

// FindNeighbors returns an N x N matrix with 1 for the pairs of beads
// closer than 1.2 diam at frame t, and 0 otherwise. The diagonal is 1.
func FindNeighbors(traj *alens.Trajectory, diam float64, t int) *mat.Dense {
	n := traj.NBeads()
	f := traj.Frames[t]
	ret := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if f.Distance(i, f, j) < diam*1.2 {
				ret.Set(i, j, 1)
			}
		}
	}
	return ret
}

// trajectory reads the bead trajectory from src, with times if withTime.
func trajectory(src alens.Source, withTime bool) (*alens.Trajectory, error) {
	sy, err := src.Sylinders()
	if err != nil {
		return nil, err
	}
	var time []float64
	if withTime {
		time, err = src.Time()
		if err != nil {
			return nil, err
		}
	}
	return alens.FromSylinders(sy, time)
}

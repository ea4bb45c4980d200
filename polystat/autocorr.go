/*
 * autocorr.go, part of aLENS-analysis.
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
	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/contact"
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/dsp/fourier"
	"gonum.org/v1/gonum/mat"
)

// dotAutocorr returns, for each lag tau, the average over beads and over the
// T-tau frame pairs of the dot product r_i(t+tau).r_i(t).
func dotAutocorr(c *alens.Trajectory, be alens.Backend) []float64 {
	nt, n := c.Len(), c.NBeads()
	ac := make([]float64, nt)
	be.Do(nt, func(tau int) error {
		var s float64
		for t := 0; t+tau < nt; t++ {
			a, b := c.Frames[t+tau], c.Frames[t]
			for i := 0; i < n; i++ {
				s += v3.Dot3(a.Vec(i), b.Vec(i))
			}
		}
		ac[tau] = s / float64((nt-tau)*n)
		return nil
	})
	return ac
}

// PolyAutocorr returns the autocorrelation of the bead positions relative to
// the polymer centroid, averaged over beads, computed directly: lag tau is
// averaged over the T-tau available frame pairs.
func PolyAutocorr(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	return dotAutocorr(traj.Centered(), be)
}

// AngAutocorr is PolyAutocorr on the unit vectors going from the centroid to
// each bead.
func AngAutocorr(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	return dotAutocorr(directions(traj), be)
}

// PolyAutocorrFast is the FFT version of PolyAutocorr. The correlation is
// circular and every lag is divided by T, so it matches PolyAutocorr only at
// lag 0 or for periodic signals.
func PolyAutocorrFast(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	c := traj.Centered()
	nt, n := c.Len(), c.NBeads()
	rows := make([][]float64, n)
	be.Do(n, func(i int) error {
		f := fourier.NewCmplxFFT(nt)
		buf := make([]complex128, nt)
		tmp := make([]float64, nt)
		rows[i] = make([]float64, nt)
		for _, s := range beadSeries(c, i) {
			circAutocorr(f, s, buf, tmp)
			for k, v := range tmp {
				rows[i][k] += v
			}
		}
		return nil
	})
	return rowMean(rows, nt)
}

// PolyDistAutocorrFast returns the circular autocorrelation of the distance
// from each bead to the polymer centroid, averaged over beads.
func PolyDistAutocorrFast(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	c := traj.Centered()
	nt, n := c.Len(), c.NBeads()
	rows := make([][]float64, n)
	be.Do(n, func(i int) error {
		f := fourier.NewCmplxFFT(nt)
		rows[i] = circAutocorr(f, distSeries(c, i), nil, nil)
		return nil
	})
	return rowMean(rows, nt)
}

// frameMeans returns the mean of all the entries (diagonal included) of each
// frame of the separation tensor, and the average of those means.
func frameMeans(sep *alens.Tensor3) ([]float64, float64) {
	r, c, nt := sep.Dims()
	means := make([]float64, nt)
	var avg float64
	for t := range means {
		var s float64
		for _, v := range sep.Frame(t).RawMatrix().Data {
			s += v
		}
		means[t] = s / float64(r*c)
		avg += means[t]
	}
	return means, avg / float64(nt)
}

// SepAutocorr returns the autocorrelation of the pair separations, with the
// mean separation of each frame removed, computed directly. Lag tau is
// normalized by N^2 <s>^2 (T-tau), where <s> is the time averaged mean
// separation. Lags go from 0 to T-1.
func SepAutocorr(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	sep := contact.Separation(traj)
	return sepAutocorr(sep, be)
}

func sepAutocorr(sep *alens.Tensor3, be alens.Backend) []float64 {
	n, _, nt := sep.Dims()
	means, avg := frameMeans(sep)
	ac := make([]float64, nt)
	be.Do(nt, func(tau int) error {
		var s float64
		for t := 0; t+tau < nt; t++ {
			a, b := sep.Frame(t+tau).RawMatrix().Data, sep.Frame(t).RawMatrix().Data
			for k := range a {
				s += (a[k] - means[t+tau]) * (b[k] - means[t])
			}
		}
		ac[tau] = s / (float64(n*n) * avg * avg * float64(nt-tau))
		return nil
	})
	return ac
}

// SepAutocorrFast returns, for every pair of beads, the circular
// autocorrelation of their separation with the mean separation of each
// frame removed, as an N x N x T tensor. Pairs are transformed one at a
// time, so only the separation tensor and the result are kept in memory.
func SepAutocorrFast(traj *alens.Trajectory, be alens.Backend) *alens.Tensor3 {
	checkTraj(traj)
	sep := contact.Separation(traj)
	means, _ := frameMeans(sep)
	n, _, nt := sep.Dims()
	ret := alens.NewTensor3(n, n, nt)
	//Row i only writes the pairs (i,j) and (j,i) with j >= i.
	be.Do(n, func(i int) error {
		f := fourier.NewCmplxFFT(nt)
		buf := make([]complex128, nt)
		s := make([]float64, nt)
		ac := make([]float64, nt)
		for j := i; j < n; j++ {
			sep.Series(i, j, s)
			for t := range s {
				s[t] -= means[t]
			}
			circAutocorr(f, s, buf, ac)
			for t, v := range ac {
				ret.Set(i, j, t, v)
				ret.Set(j, i, t, v)
			}
		}
		return nil
	})
	return ret
}

// AutocorrBeadPos returns the autocorrelation of the absolute position of
// every bead as an N x T matrix: element (i, tau) is the average over t of
// r_i(t+tau).r_i(t). Beads whose indexes are in ignore are left out.
func AutocorrBeadPos(traj *alens.Trajectory, ignore []int, be alens.Backend) *mat.Dense {
	checkTraj(traj)
	skip := make(map[int]bool, len(ignore))
	for _, v := range ignore {
		skip[v] = true
	}
	var keep []int
	for i := 0; i < traj.NBeads(); i++ {
		if !skip[i] {
			keep = append(keep, i)
		}
	}
	nt := traj.Len()
	ret := mat.NewDense(len(keep), nt, nil)
	be.Do(len(keep), func(r int) error {
		i := keep[r]
		for tau := 0; tau < nt; tau++ {
			var s float64
			for t := 0; t+tau < nt; t++ {
				s += v3.Dot3(traj.Coord(i, t+tau), traj.Coord(i, t))
			}
			ret.Set(r, tau, s/float64(nt-tau))
		}
		return nil
	})
	return ret
}

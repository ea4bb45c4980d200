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

package connect

import (
	alens "github.com/sidneyholden1/aLENS-analysis"
	"gonum.org/v1/gonum/mat"
)

// lagSum calls add, for every lag tau and every pair of matrices tau frames
// apart, with the non zero elements of their element-wise product. Each lag
// is a separate backend iteration.
func lagSum(mats []*Sparse, be alens.Backend, add func(tau, i, j int, v float64)) {
	n := len(mats)
	be.Do(n, func(tau int) error {
		for t := 0; t+tau < n; t++ {
			mulDo(mats[t], mats[t+tau], func(i, j int, v float64) {
				add(tau, i, j, v)
			})
		}
		return nil
	})
}

// Autocorr returns, for each lag tau, the sum of the element-wise product of
// the matrices tau frames apart, averaged over the n-tau available pairs.
func Autocorr(mats []*Sparse, be alens.Backend) []float64 {
	ac := make([]float64, len(mats))
	lagSum(mats, be, func(tau, _, _ int, v float64) {
		ac[tau] += v
	})
	for tau := range ac {
		ac[tau] /= float64(len(mats) - tau)
	}
	return ac
}

// SectionAutocorr is Autocorr restricted to the diagonals lo to hi-1: the
// elements i,j with lo <= j-i < hi.
func SectionAutocorr(mats []*Sparse, lo, hi int, be alens.Backend) []float64 {
	ac := make([]float64, len(mats))
	lagSum(mats, be, func(tau, i, j int, v float64) {
		if d := j - i; d >= lo && d < hi {
			ac[tau] += v
		}
	})
	for tau := range ac {
		ac[tau] /= float64(len(mats) - tau)
	}
	return ac
}

// DiagAutocorr returns the n_steps x n_beads matrix with, at row tau and
// column d, the autocorrelation of the diagonals d and -d together. Both
// are added, so for d = 0 the main diagonal counts twice.
func DiagAutocorr(mats []*Sparse, be alens.Backend) *mat.Dense {
	if len(mats) == 0 {
		panic(alens.ErrEmptyFrames)
	}
	nb := mats[0].n
	ac := mat.NewDense(len(mats), nb, nil)
	lagSum(mats, be, func(tau, i, j int, v float64) {
		d := j - i
		if d < 0 {
			d = -d
		}
		if d == 0 {
			v *= 2
		}
		ac.Set(tau, d, ac.At(tau, d)+v)
	})
	for tau := 0; tau < len(mats); tau++ {
		row := ac.RawRowView(tau)
		for d := range row {
			row[d] /= float64(len(mats) - tau)
		}
	}
	return ac
}

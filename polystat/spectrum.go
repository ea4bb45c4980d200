/*
 * spectrum.go, part of aLENS-analysis.
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

	alens "github.com/sidneyholden1/aLENS-analysis"
	"gonum.org/v1/gonum/dsp/fourier"
)

// spectrum returns, for each bead, dt*sum_k |F_k|^2 over the series given by
// series(i), averaged over beads.
func spectrum(n, nt int, dt float64, norm FFTNorm, be alens.Backend, series func(i int) [][]float64) []float64 {
	rows := make([][]float64, n)
	be.Do(n, func(i int) error {
		f := fourier.NewCmplxFFT(nt)
		buf := make([]complex128, nt)
		rows[i] = make([]float64, nt)
		for _, s := range series(i) {
			powerAdd(rows[i], transform(f, s, norm, buf), dt)
		}
		return nil
	})
	return rowMean(rows, nt)
}

func positiveModes(ps []float64, dt float64) ([]float64, []float64) {
	half := len(ps) / 2
	return ps[:half], FFTFreq(len(ps), dt)[:half]
}

// PowerSpec returns the power spectrum of the bead positions relative to the
// polymer centroid, with orthonormal transforms, summed over the three axes
// and averaged over beads, together with its frequencies. Only the first
// T/2 modes (zero and positive frequencies) are returned.
func PowerSpec(traj *alens.Trajectory, dt float64, be alens.Backend) (ps, freq []float64) {
	checkTraj(traj)
	c := traj.Centered()
	full := spectrum(c.NBeads(), c.Len(), dt, Ortho, be, func(i int) [][]float64 {
		s := beadSeries(c, i)
		return s[:]
	})
	return positiveModes(full, dt)
}

// DistPowerSpec is PowerSpec for the distance between each bead and the centroid.
func DistPowerSpec(traj *alens.Trajectory, dt float64, be alens.Backend) (ps, freq []float64) {
	checkTraj(traj)
	c := traj.Centered()
	full := spectrum(c.NBeads(), c.Len(), dt, Ortho, be, func(i int) [][]float64 {
		return [][]float64{distSeries(c, i)}
	})
	return positiveModes(full, dt)
}

// AngPowerSpec is PowerSpec for the unit vectors going from the centroid
// to each bead.
func AngPowerSpec(traj *alens.Trajectory, dt float64, be alens.Backend) (ps, freq []float64) {
	checkTraj(traj)
	d := directions(traj)
	full := spectrum(d.NBeads(), d.Len(), dt, Ortho, be, func(i int) [][]float64 {
		s := beadSeries(d, i)
		return s[:]
	})
	return positiveModes(full, dt)
}

// ImagResponse returns the imaginary part of the response function of the
// polymer, from the fluctuation-dissipation theorem: .5 f <P(f)> / kT, where
// P is the bead position power spectrum computed with the Forward
// normalization. All frequencies, negative ones included, are returned.
func ImagResponse(traj *alens.Trajectory, dt, kT float64, be alens.Backend) (iresp, freq []float64) {
	checkTraj(traj)
	c := traj.Centered()
	ps := spectrum(c.NBeads(), c.Len(), dt, Forward, be, func(i int) [][]float64 {
		s := beadSeries(c, i)
		return s[:]
	})
	freq = FFTFreq(c.Len(), dt)
	beta := 1 / kT
	iresp = make([]float64, len(ps))
	for k, p := range ps {
		iresp[k] = .5 * beta * freq[k] * p
	}
	return iresp, freq
}

// RealResponse returns the real part of the response function from its
// imaginary part: the orthonormal DCT-II of imag, then the orthonormal
// DST-II of the result, times 2/pi.
func RealResponse(imag []float64) []float64 {
	ret := DST2(DCT2(imag))
	for i := range ret {
		ret[i] *= 2 / math.Pi
	}
	return ret
}

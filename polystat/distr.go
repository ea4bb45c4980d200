/*
 * distr.go, part of aLENS-analysis.
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
	"github.com/sidneyholden1/aLENS-analysis/histo"
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// The 2D histograms use half the bins of the 1D ones on each axis.

func rhoZDividers(nbins int, histMax float64) ([]float64, []float64) {
	return histo.Dividers(nbins/2, 0, histMax), histo.Dividers(nbins/2, -histMax, histMax)
}

// DistrHists follows the vector from bead relInd to the bead at a fraction
// freeFracChain of the chain. It returns the histogram of its length in
// [0, histMax] and the 2D histogram of its length in the xy plane against
// its z component. Use Density on the results for probability densities.
func DistrHists(traj *alens.Trajectory, freeFracChain float64, relInd, nbins int, histMax float64) (*histo.Data, *histo.Data2D) {
	checkTraj(traj)
	ind := int(float64(traj.NBeads()) * freeFracChain)
	dist := make([]float64, 0, traj.Len())
	rho := make([]float64, 0, traj.Len())
	z := make([]float64, 0, traj.Len())
	for t := range traj.Frames {
		v := v3.Sub3(traj.Coord(ind, t), traj.Coord(relInd, t))
		dist = append(dist, v3.Norm3(v))
		rho = append(rho, math.Hypot(v[0], v[1]))
		z = append(z, v[2])
	}
	rdiv, zdiv := rhoZDividers(nbins, histMax)
	return histo.NewData(histo.Dividers(nbins, 0, histMax), dist), histo.NewData2D(rdiv, zdiv, rho, z)
}

// TotalDistrHists is DistrHists for the vectors from bead relInd to every
// bead at every frame.
func TotalDistrHists(traj *alens.Trajectory, relInd, nbins int, histMax float64) (*histo.Data, *histo.Data2D) {
	checkTraj(traj)
	var dist, rho, z []float64
	for t := range traj.Frames {
		ref := traj.Coord(relInd, t)
		for i := 0; i < traj.NBeads(); i++ {
			v := v3.Sub3(traj.Coord(i, t), ref)
			dist = append(dist, v3.Norm3(v))
			rho = append(rho, math.Hypot(v[0], v[1]))
			z = append(z, v[2])
		}
	}
	rdiv, zdiv := rhoZDividers(nbins, histMax)
	return histo.NewData(histo.Dividers(nbins, 0, histMax), dist), histo.NewData2D(rdiv, zdiv, rho, z)
}

// relVecs calls f with the vector from ref[t] to every bead at every frame t.
func relVecs(traj *alens.Trajectory, ref [][3]float64, f func(t int, v [3]float64)) {
	if len(ref) != traj.Len() {
		panic(alens.ErrShape)
	}
	for t := range traj.Frames {
		for i := 0; i < traj.NBeads(); i++ {
			f(t, v3.Sub3(traj.Coord(i, t), ref[t]))
		}
	}
}

// CartDistrHists returns the 2D histogram of the e0 and e1 cartesian
// components (0 for x, 1 for y, 2 for z) of the bead positions relative to
// relPos, which gives one reference point per frame.
func CartDistrHists(traj *alens.Trajectory, relPos [][3]float64, e0, e1, nbins int, histMax float64) *histo.Data2D {
	checkTraj(traj)
	var a, b []float64
	relVecs(traj, relPos, func(_ int, v [3]float64) {
		a = append(a, v[e0])
		b = append(b, v[e1])
	})
	div := histo.Dividers(nbins/2, -histMax, histMax)
	return histo.NewData2D(div, div, a, b)
}

// CylinDistrHists returns the 2D histogram of the cylindrical coordinates
// (distance to the axis, height along the axis) of the bead positions. The
// axis passes through zeroPos[t] along the unit vector zUvec[t] at frame t.
func CylinDistrHists(traj *alens.Trajectory, zeroPos, zUvec [][3]float64, nbins int, histMax float64) *histo.Data2D {
	checkTraj(traj)
	if len(zUvec) != traj.Len() {
		panic(alens.ErrShape)
	}
	var rho, z []float64
	relVecs(traj, zeroPos, func(t int, v [3]float64) {
		u := zUvec[t]
		h := v3.Dot3(v, u)
		z = append(z, h)
		rho = append(rho, v3.Norm3(v3.Sub3(v, [3]float64{h * u[0], h * u[1], h * u[2]})))
	})
	rdiv, zdiv := rhoZDividers(nbins, histMax)
	return histo.NewData2D(rdiv, zdiv, rho, z)
}

// RadDistrHists returns the histogram of the distances from zeroPos[t] to
// every bead at every frame t.
func RadDistrHists(traj *alens.Trajectory, zeroPos [][3]float64, nbins int, histMax float64) *histo.Data {
	checkTraj(traj)
	var r []float64
	relVecs(traj, zeroPos, func(_ int, v [3]float64) {
		r = append(r, v3.Norm3(v))
	})
	return histo.NewData(histo.Dividers(nbins, 0, histMax), r)
}

// RadDistrFuncAtT returns the radial distribution function of the given
// distances: the counts in each bin in [0, histMax] divided by
// pi r^2 dr origDensity len(dist), r being the bin center. The bin dividers
// are returned as the second value.
func RadDistrFuncAtT(dist []float64, nbins int, histMax, origDensity float64) ([]float64, []float64) {
	div := histo.Dividers(nbins, 0, histMax)
	h := histo.NewData(div, dist)
	rdf := h.Copy()
	centers := histo.Centers(div)
	for i := range rdf {
		dr := div[i+1] - div[i]
		rdf[i] /= math.Pi * centers[i] * centers[i] * dr * origDensity * float64(len(dist))
	}
	return rdf, div
}

// RogStats returns statistics of the bead positions relative to bead relInd
// over time: the mean and the (population) standard deviation of each
// component (N x 3 matrices), the mean squared distance and the standard
// deviation of the distance.
func RogStats(traj *alens.Trajectory, relInd int) (posAvg, posStd *mat.Dense, radMean, radStd []float64) {
	checkTraj(traj)
	n, nt := traj.NBeads(), traj.Len()
	posAvg = mat.NewDense(n, 3, nil)
	posStd = mat.NewDense(n, 3, nil)
	radMean = make([]float64, n)
	radStd = make([]float64, n)
	comp := make([]float64, nt)
	rad := make([]float64, nt)
	rad2 := make([]float64, nt)
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			for t := range comp {
				comp[t] = traj.Coord(i, t)[k] - traj.Coord(relInd, t)[k]
			}
			m, s := stat.PopMeanStdDev(comp, nil)
			posAvg.Set(i, k, m)
			posStd.Set(i, k, s)
		}
		for t := range rad {
			rad[t] = v3.Norm3(v3.Sub3(traj.Coord(i, t), traj.Coord(relInd, t)))
			rad2[t] = rad[t] * rad[t]
		}
		radMean[i] = stat.Mean(rad2, nil)
		_, radStd[i] = stat.PopMeanStdDev(rad, nil)
	}
	return posAvg, posStd, radMean, radStd
}

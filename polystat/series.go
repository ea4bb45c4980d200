/*
 * series.go, part of aLENS-analysis.
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
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
)

// beadSeries returns the x, y and z time series of bead i.
func beadSeries(traj *alens.Trajectory, i int) [3][]float64 {
	var ret [3][]float64
	for k := range ret {
		ret[k] = make([]float64, traj.Len())
	}
	for t, f := range traj.Frames {
		for k := 0; k < 3; k++ {
			ret[k][t] = f.At(i, k)
		}
	}
	return ret
}

// distSeries returns the time series of the norm of bead i's position.
func distSeries(traj *alens.Trajectory, i int) []float64 {
	ret := make([]float64, traj.Len())
	for t, f := range traj.Frames {
		ret[t] = v3.Norm3(f.Vec(i))
	}
	return ret
}

// directions returns a trajectory with the unit vectors pointing from the
// centroid of each frame to each bead. A bead sitting on the centroid
// gets NaN components.
func directions(traj *alens.Trajectory) *alens.Trajectory {
	c := traj.Centered()
	for _, f := range c.Frames {
		for i := 0; i < f.NVecs(); i++ {
			v := f.Vec(i)
			n := v3.Norm3(v)
			if n == 0 {
				n = math.NaN()
			}
			f.SetVec(i, [3]float64{v[0] / n, v[1] / n, v[2] / n})
		}
	}
	return c
}

func checkTraj(traj *alens.Trajectory) {
	if traj == nil {
		panic(alens.ErrNilData)
	}
	if traj.Len() == 0 {
		panic(alens.ErrEmptyFrames)
	}
}

// rowMean returns the average of the rows of m, each of length n.
func rowMean(m [][]float64, n int) []float64 {
	ret := make([]float64, n)
	for _, r := range m {
		for k, v := range r {
			ret[k] += v
		}
	}
	for k := range ret {
		ret[k] /= float64(len(m))
	}
	return ret
}

/*
 * msd.go, part of aLENS-analysis.
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

// BeadMSD returns the mean squared displacement of the beads relative to the
// polymer centroid: msd[tau] = sum_{i,t} |r_i(t+tau)-r_i(t)|^2 / ((T-tau) N).
// msd[0] is 0.
func BeadMSD(traj *alens.Trajectory, be alens.Backend) []float64 {
	checkTraj(traj)
	c := traj.Centered()
	nt, n := c.Len(), c.NBeads()
	msd := make([]float64, nt)
	be.Do(nt-1, func(l int) error {
		tau := l + 1
		var s float64
		for t := 0; t+tau < nt; t++ {
			a, b := c.Frames[t+tau], c.Frames[t]
			for i := 0; i < n; i++ {
				d := v3.Sub3(a.Vec(i), b.Vec(i))
				s += v3.Dot3(d, d)
			}
		}
		msd[tau] = s / float64((nt-tau)*n)
		return nil
	})
	return msd
}

// AvgDistFromCOM returns, for each bead, its distance to the polymer
// centroid averaged over time.
func AvgDistFromCOM(traj *alens.Trajectory) []float64 {
	checkTraj(traj)
	c := traj.Centered()
	ret := make([]float64, c.NBeads())
	dist := make([]float64, c.NBeads())
	for _, f := range c.Frames {
		f.Norms(dist)
		for i, d := range dist {
			ret[i] += d
		}
	}
	for i := range ret {
		ret[i] /= float64(c.Len())
	}
	return ret
}

// RadiusOfGyration returns the radius of gyration of the polymer at each frame.
func RadiusOfGyration(traj *alens.Trajectory) []float64 {
	checkTraj(traj)
	c := traj.Centered()
	ret := make([]float64, c.Len())
	for t, f := range c.Frames {
		ret[t] = math.Sqrt(f.DotVecs(f) / float64(f.NVecs()))
	}
	return ret
}

// EndEndDistance returns the distance between the first and the last bead
// at each frame.
func EndEndDistance(traj *alens.Trajectory) []float64 {
	checkTraj(traj)
	ret := make([]float64, traj.Len())
	last := traj.NBeads() - 1
	for t, f := range traj.Frames {
		ret[t] = f.Distance(0, f, last)
	}
	return ret
}

// DistVsIdxDist returns the separation between beads i and i+d, averaged over
// i and over time, for d from 1 to N-1 (element d-1 of the slice).
func DistVsIdxDist(traj *alens.Trajectory) []float64 {
	return idxDistAverage(traj, func(d float64) float64 { return d })
}

// ContactVsIdxDist returns the fraction of pairs of beads i, i+d closer than
// thresh, averaged over i and over time, for d from 1 to N-1.
func ContactVsIdxDist(traj *alens.Trajectory, thresh float64) []float64 {
	return idxDistAverage(traj, func(d float64) float64 {
		if d < thresh {
			return 1
		}
		return 0
	})
}

func idxDistAverage(traj *alens.Trajectory, f func(float64) float64) []float64 {
	checkTraj(traj)
	n := traj.NBeads()
	if n < 2 {
		return nil
	}
	ret := make([]float64, n-1)
	for d := 1; d < n; d++ {
		var s float64
		for _, fr := range traj.Frames {
			for i := 0; i+d < n; i++ {
				s += f(fr.Distance(i, fr, i+d))
			}
		}
		ret[d-1] = s / float64((n-d)*traj.Len())
	}
	return ret
}

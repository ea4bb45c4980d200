/*
 * trajectory.go, part of aLENS-analysis.
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
	"fmt"

	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
)

// Sylinder field layout in raw_data/sylinders.
const (
	SyRadius   = 1
	SyMinusEnd = 2
	SyPlusEnd  = 5
)

// Trajectory holds the bead centers of mass of every frame of a simulation,
// one Nx3 matrix per timestep. A Trajectory is not modified by the analysis
// functions; the methods that select parts of it return new trajectories that
// share the frames.
type Trajectory struct {
	Frames []*v3.Matrix
	Time   []float64 //can be nil
	Radii  []float64 //can be nil
}

// NewTrajectory builds a trajectory from frames. time can be nil, otherwise
// it must have one element per frame.
func NewTrajectory(frames []*v3.Matrix, time []float64) (*Trajectory, error) {
	if len(frames) == 0 {
		return nil, NewError("no frames given", "NewTrajectory")
	}
	n := frames[0].NVecs()
	for i, f := range frames {
		if f.NVecs() != n {
			return nil, NewError(fmt.Sprintf("frame %d has %d beads, expected %d", i, f.NVecs(), n), "NewTrajectory")
		}
	}
	if time != nil && len(time) != len(frames) {
		return nil, NewError(fmt.Sprintf("%d times given for %d frames", len(time), len(frames)), "NewTrajectory")
	}
	return &Trajectory{Frames: frames, Time: time}, nil
}

// FromSylinders computes the center of mass of each bead, the midpoint
// of its two endpoints, for every frame of the raw sylinder array.
func FromSylinders(sy *RawArray, time []float64) (*Trajectory, error) {
	if sy == nil {
		return nil, NewError(string(ErrNilData), "FromSylinders")
	}
	nbeads, nfields, nsteps := sy.Dims()
	if nfields < SyPlusEnd+3 {
		return nil, NewError(fmt.Sprintf("sylinder data has %d fields, at least %d needed", nfields, SyPlusEnd+3), "FromSylinders")
	}
	if nbeads == 0 || nsteps == 0 {
		return nil, NewError("empty sylinder data", "FromSylinders")
	}
	frames := make([]*v3.Matrix, nsteps)
	for t := range frames {
		f := v3.Zeros(nbeads)
		for i := 0; i < nbeads; i++ {
			for k := 0; k < 3; k++ {
				f.Set(i, k, .5*(sy.At(i, SyMinusEnd+k, t)+sy.At(i, SyPlusEnd+k, t)))
			}
		}
		frames[t] = f
	}
	if time != nil && len(time) != nsteps {
		return nil, NewError(fmt.Sprintf("%d times given for %d frames", len(time), nsteps), "FromSylinders")
	}
	traj := &Trajectory{Frames: frames, Time: time}
	traj.Radii = make([]float64, nbeads)
	for i := range traj.Radii {
		traj.Radii[i] = sy.At(i, SyRadius, 0)
	}
	return traj, nil
}

// Len returns the number of frames.
func (T *Trajectory) Len() int {
	return len(T.Frames)
}

// NBeads returns the number of beads per frame.
func (T *Trajectory) NBeads() int {
	if len(T.Frames) == 0 {
		return 0
	}
	return T.Frames[0].NVecs()
}

// Coord returns the position of bead i at frame t.
func (T *Trajectory) Coord(i, t int) [3]float64 {
	return T.Frames[t].Vec(i)
}

// Stride returns a trajectory with every step-th frame, starting from the first.
func (T *Trajectory) Stride(step int) *Trajectory {
	if step <= 0 {
		panic(ErrBadStride)
	}
	ret := &Trajectory{Radii: T.Radii}
	for t := 0; t < T.Len(); t += step {
		ret.Frames = append(ret.Frames, T.Frames[t])
		if T.Time != nil {
			ret.Time = append(ret.Time, T.Time[t])
		}
	}
	return ret
}

// Window returns the frames from t0 (inclusive) to t1 (exclusive). A negative
// or out-of-range t1 means "until the last frame".
func (T *Trajectory) Window(t0, t1 int) *Trajectory {
	if t1 < 0 || t1 > T.Len() {
		t1 = T.Len()
	}
	if t0 < 0 || t0 > t1 {
		panic(ErrShape)
	}
	ret := &Trajectory{Frames: T.Frames[t0:t1], Radii: T.Radii}
	if T.Time != nil {
		ret.Time = T.Time[t0:t1]
	}
	return ret
}

// Beads returns a trajectory with only the beads from b0 (inclusive) to
// b1 (exclusive). A negative or out-of-range b1 means "until the last bead".
func (T *Trajectory) Beads(b0, b1 int) *Trajectory {
	n := T.NBeads()
	if b1 < 0 || b1 > n {
		b1 = n
	}
	if b0 < 0 || b0 > b1 {
		panic(ErrShape)
	}
	ret := &Trajectory{Frames: make([]*v3.Matrix, T.Len()), Time: T.Time}
	for t, f := range T.Frames {
		ret.Frames[t] = f.View(b0, b1)
	}
	if T.Radii != nil {
		ret.Radii = T.Radii[b0:b1]
	}
	return ret
}

// Centroids returns the geometric center of the polymer at each frame.
func (T *Trajectory) Centroids() [][3]float64 {
	ret := make([][3]float64, T.Len())
	for t, f := range T.Frames {
		ret[t] = f.Centroid()
	}
	return ret
}

// Centered returns a new trajectory with the centroid of each frame
// removed from the positions.
func (T *Trajectory) Centered() *Trajectory {
	ret := &Trajectory{Frames: make([]*v3.Matrix, T.Len()), Time: T.Time, Radii: T.Radii}
	for t, f := range T.Frames {
		c := f.Copy()
		c.SubVec(c, f.Centroid())
		ret.Frames[t] = c
	}
	return ret
}

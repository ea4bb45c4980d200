/*
 * tensor.go, part of aLENS-analysis.
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

import "gonum.org/v1/gonum/mat"

// Tensor3 is an R x C x T tensor of float64, stored frame-major so that each
// time slice is a contiguous row-major R x C matrix.
type Tensor3 struct {
	R, C, T int
	Data    []float64
}

// NewTensor3 returns a zero-filled tensor.
func NewTensor3(r, c, t int) *Tensor3 {
	return &Tensor3{R: r, C: c, T: t, Data: make([]float64, r*c*t)}
}

// Dims returns the three dimensions of the tensor.
func (T *Tensor3) Dims() (int, int, int) {
	return T.R, T.C, T.T
}

// At returns the i,j element at frame t.
func (T *Tensor3) At(i, j, t int) float64 {
	return T.Data[t*T.R*T.C+i*T.C+j]
}

// Set sets the i,j element at frame t.
func (T *Tensor3) Set(i, j, t int, v float64) {
	T.Data[t*T.R*T.C+i*T.C+j] = v
}

// Frame returns a view of the time slice t. Changes in the view are
// reflected in the tensor.
func (T *Tensor3) Frame(t int) *mat.Dense {
	n := T.R * T.C
	return mat.NewDense(T.R, T.C, T.Data[t*n:(t+1)*n])
}

// Series returns a copy of the time series of element i,j.
func (T *Tensor3) Series(i, j int, dst []float64) []float64 {
	if dst == nil {
		dst = make([]float64, T.T)
	}
	for t := 0; t < T.T; t++ {
		dst[t] = T.At(i, j, t)
	}
	return dst
}

// Apply replaces each element x of the tensor with f(i, j, x).
func (T *Tensor3) Apply(f func(i, j int, x float64) float64) {
	for t := 0; t < T.T; t++ {
		off := t * T.R * T.C
		for i := 0; i < T.R; i++ {
			for j := 0; j < T.C; j++ {
				T.Data[off+i*T.C+j] = f(i, j, T.Data[off+i*T.C+j])
			}
		}
	}
}

// Copy returns a deep copy of the tensor.
func (T *Tensor3) Copy() *Tensor3 {
	r := &Tensor3{R: T.R, C: T.C, T: T.T, Data: make([]float64, len(T.Data))}
	copy(r.Data, T.Data)
	return r
}

// TimeMean returns the R x C average over the time axis.
func (T *Tensor3) TimeMean() *mat.Dense {
	ret := mat.NewDense(T.R, T.C, nil)
	if T.T == 0 {
		return ret
	}
	for t := 0; t < T.T; t++ {
		ret.Add(ret, T.Frame(t))
	}
	ret.Scale(1/float64(T.T), ret)
	return ret
}

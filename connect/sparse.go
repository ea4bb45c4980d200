/*
 * sparse.go, part of aLENS-analysis.
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
	"fmt"
	"sort"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"gonum.org/v1/gonum/mat"
)

// Sparse is an n x n matrix in coordinate format. Adding to an element that
// is already set accumulates. It implements mat.Matrix and mat.NonZeroDoer.
type Sparse struct {
	n    int
	vals map[int]float64
}

// NewSparse returns an empty n x n matrix.
func NewSparse(n int) *Sparse {
	return &Sparse{n: n, vals: make(map[int]float64)}
}

// Dims returns the dimensions of the matrix.
func (S *Sparse) Dims() (int, int) { return S.n, S.n }

// At returns the element i,j.
func (S *Sparse) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= S.n || j >= S.n {
		panic(mat.ErrIndexOutOfRange)
	}
	return S.vals[i*S.n+j]
}

// T returns the transpose of the matrix.
func (S *Sparse) T() mat.Matrix { return mat.Transpose{Matrix: S} }

// Add adds v to the element i,j.
func (S *Sparse) Add(i, j int, v float64) {
	if i < 0 || j < 0 || i >= S.n || j >= S.n {
		panic(mat.ErrIndexOutOfRange)
	}
	S.vals[i*S.n+j] += v
}

// NNZ returns the number of stored elements.
func (S *Sparse) NNZ() int { return len(S.vals) }

// DoNonZero calls fn for each stored element, in row-major order.
func (S *Sparse) DoNonZero(fn func(i, j int, v float64)) {
	keys := make([]int, 0, len(S.vals))
	for k := range S.vals {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	for _, k := range keys {
		fn(k/S.n, k%S.n, S.vals[k])
	}
}

// mulDo calls fn with the non zero elements of the element-wise product of A and B.
func mulDo(A, B *Sparse, fn func(i, j int, v float64)) {
	if A.n != B.n {
		panic(alens.ErrShape)
	}
	if len(B.vals) < len(A.vals) {
		A, B = B, A
	}
	A.DoNonZero(func(i, j int, a float64) {
		if b, ok := B.vals[i*B.n+j]; ok && a*b != 0 {
			fn(i, j, a*b)
		}
	})
}

// FromProteins builds the connectivity matrix of one frame of protein data.
// Each row with a non negative last column is a crosslinker bound at both
// ends, and adds 1 to the element given by its last two columns (the beads
// bound). nBeads is the number of beads in the chain.
func FromProteins(frame [][]float64, nBeads int) (*Sparse, error) {
	S := NewSparse(nBeads)
	for r, row := range frame {
		if len(row) < 2 {
			return nil, alens.NewError(fmt.Sprintf("protein row %d has %d columns", r, len(row)), "connect.FromProteins")
		}
		if row[len(row)-1] < 0 {
			continue
		}
		i, j := int(row[len(row)-2]), int(row[len(row)-1])
		if i < 0 || j < 0 || i >= nBeads || j >= nBeads {
			return nil, alens.NewError(fmt.Sprintf("protein %d binds beads %d and %d, outside the %d beads", r, i, j, nBeads), "connect.FromProteins")
		}
		S.Add(i, j, 1)
	}
	return S, nil
}

// Average returns the element-wise mean of the matrices.
func Average(mats []*Sparse) *mat.Dense {
	if len(mats) == 0 {
		panic(alens.ErrEmptyFrames)
	}
	n := mats[0].n
	ret := mat.NewDense(n, n, nil)
	for _, m := range mats {
		if m.n != n {
			panic(alens.ErrShape)
		}
		for k, v := range m.vals {
			i, j := k/n, k%n
			ret.Set(i, j, ret.At(i, j)+v)
		}
	}
	ret.Scale(1/float64(len(mats)), ret)
	return ret
}

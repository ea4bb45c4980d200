/*
 * coords.go, part of aLENS-analysis.
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

package v3

import (
	"fmt"
	"math"
	"strings"
)

// Vec returns the ith vector of F as an array.
func (F *Matrix) Vec(i int) [3]float64 {
	if i >= F.NVecs() || i < 0 {
		panic(ErrIndexOutOfRange)
	}
	return [3]float64{F.At(i, 0), F.At(i, 1), F.At(i, 2)}
}

// SetVec sets the ith vector of F to v.
func (F *Matrix) SetVec(i int, v [3]float64) {
	F.Set(i, 0, v[0])
	F.Set(i, 1, v[1])
	F.Set(i, 2, v[2])
}

// Centroid returns the geometric center of the vectors in F.
func (F *Matrix) Centroid() [3]float64 {
	var c [3]float64
	n := F.NVecs()
	if n == 0 {
		return c
	}
	for i := 0; i < n; i++ {
		c[0] += F.At(i, 0)
		c[1] += F.At(i, 1)
		c[2] += F.At(i, 2)
	}
	for k := range c {
		c[k] /= float64(n)
	}
	return c
}

// AddVec adds vec to each vector of A, putting the result in the receiver.
// A and F can be the same Matrix.
func (F *Matrix) AddVec(A *Matrix, vec [3]float64) {
	ar := A.NVecs()
	if ar != F.NVecs() {
		panic(ErrShape)
	}
	for i := 0; i < ar; i++ {
		for k := 0; k < 3; k++ {
			F.Set(i, k, A.At(i, k)+vec[k])
		}
	}
}

// SubVec subtracts vec from each vector of A, putting the result in the receiver.
func (F *Matrix) SubVec(A *Matrix, vec [3]float64) {
	F.AddVec(A, [3]float64{-vec[0], -vec[1], -vec[2]})
}

// Norms puts the euclidean norm of each vector of F in dst, which
// is allocated if nil, and returns it.
func (F *Matrix) Norms(dst []float64) []float64 {
	n := F.NVecs()
	if dst == nil {
		dst = make([]float64, n)
	}
	if len(dst) != n {
		panic(ErrShape)
	}
	for i := 0; i < n; i++ {
		x, y, z := F.At(i, 0), F.At(i, 1), F.At(i, 2)
		dst[i] = math.Sqrt(x*x + y*y + z*z)
	}
	return dst
}

// Unit normalizes each vector of A, putting the result in the receiver.
// Zero vectors become NaN, as a unit vector is not defined for them.
func (F *Matrix) Unit(A *Matrix) {
	norms := A.Norms(nil)
	if len(norms) != F.NVecs() {
		panic(ErrShape)
	}
	for i, nr := range norms {
		for k := 0; k < 3; k++ {
			F.Set(i, k, A.At(i, k)/nr)
		}
	}
}

// Distance returns the euclidean distance between the ith vector of F and
// the jth vector of B.
func (F *Matrix) Distance(i int, B *Matrix, j int) float64 {
	var s float64
	for k := 0; k < 3; k++ {
		d := F.At(i, k) - B.At(j, k)
		s += d * d
	}
	return math.Sqrt(s)
}

// DotVecs returns the sum over vectors of the dot product between
// the vectors of F and those of B.
func (F *Matrix) DotVecs(B *Matrix) float64 {
	n := F.NVecs()
	if n != B.NVecs() {
		panic(ErrShape)
	}
	var s float64
	for i := 0; i < n; i++ {
		for k := 0; k < 3; k++ {
			s += F.At(i, k) * B.At(i, k)
		}
	}
	return s
}

// Project returns the projection of each vector of F on the unit vector u.
func (F *Matrix) Project(u [3]float64, dst []float64) []float64 {
	n := F.NVecs()
	if dst == nil {
		dst = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		dst[i] = F.At(i, 0)*u[0] + F.At(i, 1)*u[1] + F.At(i, 2)*u[2]
	}
	return dst
}

// Returns a neat string representation of a Matrix
func (F *Matrix) String() string {
	r, c := F.Dims()
	v := make([]string, 0, r+2)
	v = append(v, "[")
	row := make([]float64, c)
	for i := 0; i < r; i++ {
		mat64Row(F, row, i)
		v = append(v, fmt.Sprintf(" %6.2f %6.2f %6.2f", row[0], row[1], row[2]))
	}
	v = append(v, " ]")
	return strings.Join(v, "\n")
}

func mat64Row(F *Matrix, dst []float64, i int) {
	for k := range dst {
		dst[k] = F.At(i, k)
	}
}

// Norm3 returns the euclidean norm of a vector.
func Norm3(v [3]float64) float64 {
	return math.Sqrt(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])
}

// Sub3 returns a-b.
func Sub3(a, b [3]float64) [3]float64 {
	return [3]float64{a[0] - b[0], a[1] - b[1], a[2] - b[2]}
}

// Dot3 returns the dot product of a and b.
func Dot3(a, b [3]float64) float64 {
	return a[0]*b[0] + a[1]*b[1] + a[2]*b[2]
}

/*
 * interfaces.go, part of aLENS-analysis.
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

// RawArray is a dense 3-index array in row-major (C) order, the way
// datasets are laid out in the HDF5 container: Data[(i*D1+j)*D2+k].
type RawArray struct {
	D0, D1, D2 int
	Data       []float64
}

// NewRawArray returns a zero-filled RawArray with the given dimensions.
func NewRawArray(d0, d1, d2 int) *RawArray {
	return &RawArray{D0: d0, D1: d1, D2: d2, Data: make([]float64, d0*d1*d2)}
}

// At returns the element i,j,k.
func (R *RawArray) At(i, j, k int) float64 {
	return R.Data[(i*R.D1+j)*R.D2+k]
}

// Set sets the element i,j,k to v.
func (R *RawArray) Set(i, j, k int, v float64) {
	R.Data[(i*R.D1+j)*R.D2+k] = v
}

// Dims returns the 3 dimensions of the array.
func (R *RawArray) Dims() (int, int, int) {
	return R.D0, R.D1, R.D2
}

// Frame returns a copy of the [:, :, k] slice as rows.
func (R *RawArray) Frame(k int) [][]float64 {
	ret := make([][]float64, R.D0)
	for i := range ret {
		ret[i] = make([]float64, R.D1)
		for j := range ret[i] {
			ret[i][j] = R.At(i, j, k)
		}
	}
	return ret
}

// Source gives access to the raw data of one simulation.
type Source interface {
	// Sylinders returns raw_data/sylinders: beads x fields x timesteps.
	// Field 1 is the radius, 2-4 one endpoint and 5-7 the other.
	Sylinders() (*RawArray, error)

	// Proteins returns raw_data/proteins: crosslinkers x fields x timesteps.
	// The last field is the binding state, the two before it the bound beads.
	Proteins() (*RawArray, error)

	// Time returns the simulation time of each frame.
	Time() ([]float64, error)

	// RunConfig returns the parsed run configuration.
	RunConfig() (*RunConfig, error)
}

// Attrs holds the provenance attributes of a persisted dataset. Values
// must be float64, int, bool, string, []float64 or []int.
type Attrs map[string]interface{}

// Sink receives derived datasets.
type Sink interface {
	// WriteDataset stores data (row-major, with the given dims) under name,
	// attaching attrs to it.
	WriteDataset(name string, data []float64, dims []int, attrs Attrs) error
}

/*
 * histo.go, part of aLENS-analysis.
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

package histo

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// Dividers returns nbins+1 evenly spaced bin edges from min to max.
func Dividers(nbins int, min, max float64) []float64 {
	if nbins <= 0 || !(max > min) {
		panic("aLENS/histo.Dividers: need at least one bin and max > min")
	}
	d := make([]float64, nbins+1)
	return floats.Span(d, min, max)
}

// Centers returns the midpoints of the bins defined by dividers.
func Centers(dividers []float64) []float64 {
	c := make([]float64, len(dividers)-1)
	for i := range c {
		c[i] = .5 * (dividers[i] + dividers[i+1])
	}
	return c
}

// Data is a histogram. All bins are half-open [a, b) except the last
// one, which also includes its upper divider. Values outside the dividers
// are omitted.
type Data struct {
	id         int
	normalized bool
	total      int
	dividers   []float64
	histo      []float64
}

func (D *Data) MarshalJSON() ([]byte, error) {
	j, err := json.Marshal(struct {
		ID         int       `json:"id"`
		Normalized bool      `json:"normalized"`
		Total      int       `json:"total"`
		Dividers   []float64 `json:"dividers"`
		Histo      []float64 `json:"histo"`
	}{
		ID:         D.id,
		Normalized: D.normalized,
		Total:      D.total,
		Dividers:   D.dividers,
		Histo:      D.histo,
	})
	if err != nil {
		return nil, err
	}
	return j, nil
}

// ID returns the ID of the histogram
func (D *Data) ID() int {
	return D.id
}

// String prints a -hopefully- pretty string representation of
// the histogram.
func (D *Data) String() string {
	ret := fmt.Sprintf("ID: %d, Normalized: %v, TotalData: %d\n", D.id, D.normalized, D.total)
	d := make([]string, 0, len(D.dividers)-1)
	h := make([]string, 0, len(D.dividers)-1)
	for i, v := range D.histo {
		d = append(d, fmt.Sprintf("%4.2f-%4.2f", D.dividers[i], D.dividers[i+1]))
		h = append(h, fmt.Sprintf("%9.3f", v))
	}
	return ret + fmt.Sprintf("%s\n%s", strings.Join(d, " "), strings.Join(h, " "))
}

// NewData returns a new histogram from the dividers and rawdata given.
// rawdata can be nil, in that case, an empty histogram is created.
// if an ID for the histogram is given, it will be set. If not, the ID will
// be set to -1. rawdata is not modified.
func NewData(dividers []float64, rawdata []float64, ID ...int) *Data {
	d := new(Data)
	d.dividers = make([]float64, len(dividers))
	copy(d.dividers, dividers)
	d.histo = make([]float64, len(dividers)-1)
	if rawdata != nil {
		d.ReHisto(d.dividers, rawdata)
	}
	d.id = -1
	if len(ID) > 0 {
		d.id = ID[0]
	}
	return d
}

// AddData adds the given data point(s) to the histogram
func (D *Data) AddData(point ...float64) {
	var norma bool
	if D.normalized {
		norma = true
		D.UnNormalize()
	}
	last := len(D.dividers) - 1
	for _, v := range point {
		if v == D.dividers[last] {
			D.histo[last-1]++
			D.total++
			continue
		}
		i := sort.SearchFloat64s(D.dividers, v)
		//SearchFloat64s returns the first divider >= v
		if i < len(D.dividers) && D.dividers[i] == v {
			i++
		}
		if i == 0 || i > last {
			continue
		}
		D.histo[i-1]++
		D.total++
	}
	if norma {
		D.Normalize()
	}
}

// Normalized Returns true if the histogram is normalized
func (D *Data) Normalized() bool {
	return D.normalized
}

// Normalize normalizes the histogram so it sums to 1.
func (D *Data) Normalize() {
	D.normaunnorma(true)
}

// UnNormalize un-normalizes the histogram
func (D *Data) UnNormalize() {
	D.normaunnorma(false)
}

func (D *Data) normaunnorma(normalize bool) {
	if D.total <= 0 || D.normalized == normalize {
		return
	}
	n := float64(D.total)
	D.normalized = false
	if normalize {
		n = 1 / float64(D.total)
		D.normalized = true
	}
	floats.Scale(n, D.histo)
}

// Density returns the histogram as a probability density: each count divided
// by the total number of counted points and by the width of its bin, so that
// the integral over the range is 1.
func (D *Data) Density(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	counts := D.Copy()
	if D.normalized {
		floats.Scale(float64(D.total), counts)
	}
	sum := floats.Sum(counts)
	for i, v := range counts {
		if sum == 0 {
			d[i] = 0
			continue
		}
		d[i] = v / sum / (D.dividers[i+1] - D.dividers[i])
	}
	return d
}

// CopyDividers copies the dividers of the histogram
func (D *Data) CopyDividers(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.dividers), dest...)
	copy(d, D.dividers)
	return d
}

// Copy copies the bins of the histogram.
func (D *Data) Copy(dest ...[]float64) []float64 {
	d := getCopySlice(len(D.histo), dest...)
	copy(d, D.histo)
	return d
}

// View returns the bins of the histogram, not a copy.
func (D *Data) View() []float64 {
	return D.histo
}

// Total returns the number of data points counted.
func (D *Data) Total() int {
	return D.total
}

// Scale multiplies every bin by s.
func (D *Data) Scale(s float64) {
	floats.Scale(s, D.histo)
}

// Add adds the histograms a and b putting the result in the receiver.
func (D *Data) Add(a, b *Data) {
	if !floats.Equal(a.dividers, b.dividers) {
		panic("aLENS/histo.Data.Add: Dividers must match in added histograms")
	}
	D.dividers = a.CopyDividers(D.dividers)
	D.histo = getCopySlice(len(a.histo), D.histo)
	floats.AddTo(D.histo, a.histo, b.histo)
	D.total = a.total + b.total
}

// Sum returns the sum of all bins.
func (D *Data) Sum() float64 {
	return floats.Sum(D.histo)
}

// ReHisto rebuilds the histogram with the given dividers and data.
// rawdata is not modified.
func (D *Data) ReHisto(dividers, rawdata []float64) {
	last := dividers[len(dividers)-1]
	//stat.Histogram panics instead of omitting the values that are off limits
	//so we remove them here before the call. Values equal to the last
	//divider belong to the last bin.
	in := make([]float64, 0, len(rawdata))
	var atLast int
	for _, v := range rawdata {
		if v == last {
			atLast++
			continue
		}
		if v >= dividers[0] && v < last {
			in = append(in, v)
		}
	}
	sort.Float64s(in)
	D.dividers = dividers
	D.histo = stat.Histogram(nil, dividers, in, nil)
	D.histo[len(D.histo)-1] += float64(atLast)
	D.total = len(in) + atLast
	D.normalized = false
}

func getCopySlice(N int, dest ...[]float64) []float64 {
	var d []float64
	if len(dest) > 0 && len(dest[0]) >= N {
		d = dest[0][:N]
	} else {
		d = make([]float64, N)
	}
	return d
}

// Series is a sequence of histograms sharing the same dividers, typically
// one per frame of a trajectory.
type Series struct {
	dividers []float64
	d        []*Data
}

// NewSeries returns a series of n empty histograms.
func NewSeries(n int, dividers []float64) *Series {
	s := &Series{dividers: append([]float64(nil), dividers...), d: make([]*Data, n)}
	for i := range s.d {
		s.d[i] = NewData(s.dividers, nil, i)
	}
	return s
}

// Len returns the number of histograms in the series.
func (S *Series) Len() int { return len(S.d) }

// Dividers returns a copy of the dividers shared by the series.
func (S *Series) Dividers() []float64 {
	return append([]float64(nil), S.dividers...)
}

// Set replaces the ith histogram with one built from rawdata.
func (S *Series) Set(i int, rawdata []float64) {
	S.d[i] = NewData(S.dividers, rawdata, i)
}

// View returns the ith histogram.
func (S *Series) View(i int) *Data {
	return S.d[i]
}

// Dense returns the series as a bins x n matrix, one column per histogram.
func (S *Series) Dense() *mat.Dense {
	nb := len(S.dividers) - 1
	m := mat.NewDense(nb, len(S.d), nil)
	for j, h := range S.d {
		m.SetCol(j, h.View())
	}
	return m
}

// Data2D is a two dimensional histogram with rectangular bins.
type Data2D struct {
	xdiv, ydiv []float64
	counts     *mat.Dense
	total      int
}

// NewData2D builds a 2D histogram of the points (x[i], y[i]).
// Points outside the dividers are omitted; the last bin on each axis
// includes its upper divider.
func NewData2D(xdiv, ydiv, x, y []float64) *Data2D {
	if len(x) != len(y) {
		panic("aLENS/histo.NewData2D: x and y must have the same length")
	}
	D := &Data2D{xdiv: append([]float64(nil), xdiv...), ydiv: append([]float64(nil), ydiv...)}
	D.counts = mat.NewDense(len(xdiv)-1, len(ydiv)-1, nil)
	for i := range x {
		bx := bin(D.xdiv, x[i])
		by := bin(D.ydiv, y[i])
		if bx < 0 || by < 0 {
			continue
		}
		D.counts.Set(bx, by, D.counts.At(bx, by)+1)
		D.total++
	}
	return D
}

// bin returns the index of the bin containing v, or -1.
func bin(div []float64, v float64) int {
	last := len(div) - 1
	if v == div[last] {
		return last - 1
	}
	if v < div[0] || v > div[last] || v != v {
		return -1
	}
	i := sort.SearchFloat64s(div, v)
	if i < len(div) && div[i] == v {
		i++
	}
	return i - 1
}

// Counts returns a copy of the raw counts.
func (D *Data2D) Counts() *mat.Dense {
	return mat.DenseCopyOf(D.counts)
}

// Dividers returns copies of the dividers along x and y.
func (D *Data2D) Dividers() ([]float64, []float64) {
	return append([]float64(nil), D.xdiv...), append([]float64(nil), D.ydiv...)
}

// Density returns the counts divided by the number of counted points and the
// area of each bin.
func (D *Data2D) Density() *mat.Dense {
	r, c := D.counts.Dims()
	ret := mat.NewDense(r, c, nil)
	if D.total == 0 {
		return ret
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			area := (D.xdiv[i+1] - D.xdiv[i]) * (D.ydiv[j+1] - D.ydiv[j])
			ret.Set(i, j, D.counts.At(i, j)/float64(D.total)/area)
		}
	}
	return ret
}

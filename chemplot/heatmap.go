/*
 * heatmap.go, part of aLENS-analysis.
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

package chemplot

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// denseGrid shows a matrix as a plotter.GridXYZ. Rows go along y and
// columns along x.
type denseGrid struct {
	m    mat.Matrix
	x, y []float64
}

func (g denseGrid) Dims() (c, r int) {
	r, c = g.m.Dims()
	return c, r
}

func (g denseGrid) Z(c, r int) float64 { return g.m.At(r, c) }

func (g denseGrid) X(c int) float64 {
	if g.x == nil {
		return float64(c)
	}
	return g.x[c]
}

func (g denseGrid) Y(r int) float64 {
	if g.y == nil {
		return float64(r)
	}
	return g.y[r]
}

// Labels are the title and axis labels of a plot.
type Labels struct {
	Title, X, Y string
}

// HeatMap draws m to filename. x and y, if not nil, give the coordinates of
// the columns and rows of m. NaN entries are drawn transparent.
func HeatMap(m mat.Matrix, x, y []float64, l Labels, filename string) error {
	r, c := m.Dims()
	if r == 0 || c == 0 {
		return fmt.Errorf("HeatMap: empty matrix")
	}
	if (x != nil && len(x) != c) || (y != nil && len(y) != r) {
		return fmt.Errorf("HeatMap: %d x and %d y coordinates for a %dx%d matrix", len(x), len(y), r, c)
	}
	min, max := math.Inf(1), math.Inf(-1)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			v := m.At(i, j)
			if math.IsNaN(v) {
				continue
			}
			min, max = math.Min(min, v), math.Max(max, v)
		}
	}
	if min > max {
		return fmt.Errorf("HeatMap: no finite values")
	}
	cmap := moreland.SmoothBlueRed()
	if max == min {
		max = min + 1
	}
	cmap.SetMin(min)
	cmap.SetMax(max)
	p := plot.New()
	p.Title.Text = l.Title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = l.X
	p.Y.Label.Text = l.Y
	h := plotter.NewHeatMap(denseGrid{m: m, x: x, y: y}, cmap.Palette(255))
	h.Min, h.Max = min, max
	p.Add(h)
	return p.Save(6*vg.Inch, 5*vg.Inch, filename)
}

/*
 * lines.go, part of aLENS-analysis.
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

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Series is one curve of a line plot.
type Series struct {
	Name string
	X, Y []float64
}

// LineOptions control a line plot.
type LineOptions struct {
	Labels
	LogX, LogY bool
}

// xys returns the plottable points of s. Non-finite points, and
// non-positive ones on log axes, are dropped.
func (s Series) xys(logX, logY bool) (plotter.XYs, error) {
	if len(s.X) != len(s.Y) {
		return nil, fmt.Errorf("series %s: %d x and %d y values", s.Name, len(s.X), len(s.Y))
	}
	ret := make(plotter.XYs, 0, len(s.X))
	for i, x := range s.X {
		y := s.Y[i]
		if math.IsNaN(x) || math.IsNaN(y) || math.IsInf(x, 0) || math.IsInf(y, 0) {
			continue
		}
		if (logX && x <= 0) || (logY && y <= 0) {
			continue
		}
		ret = append(ret, plotter.XY{X: x, Y: y})
	}
	return ret, nil
}

// Lines draws the series to filename, each in its own color.
func Lines(series []Series, o LineOptions, filename string) error {
	if len(series) == 0 {
		return fmt.Errorf("Lines: nothing to plot")
	}
	p := plot.New()
	p.Title.Text = o.Title
	p.Title.Padding = 3 * vg.Millimeter
	p.X.Label.Text = o.X
	p.Y.Label.Text = o.Y
	if o.LogX {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	if o.LogY {
		p.Y.Scale = plot.LogScale{}
		p.Y.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Add(plotter.NewGrid())
	var drawn int
	for k, s := range series {
		pts, err := s.xys(o.LogX, o.LogY)
		if err != nil {
			return fmt.Errorf("Lines: %w", err)
		}
		if len(pts) == 0 {
			continue
		}
		l, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("Lines: %w", err)
		}
		l.Color = lineColor(k, len(series))
		l.Width = vg.Points(1.2)
		p.Add(l)
		if s.Name != "" {
			p.Legend.Add(s.Name, l)
		}
		drawn++
	}
	if drawn == 0 {
		return fmt.Errorf("Lines: no plottable points")
	}
	return p.Save(6*vg.Inch, 4*vg.Inch, filename)
}

// Indexes returns 0, 1 ... n-1 scaled by step, as an x axis.
func Indexes(n int, step float64) []float64 {
	ret := make([]float64, n)
	for i := range ret {
		ret[i] = float64(i) * step
	}
	return ret
}

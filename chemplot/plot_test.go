/*
 * plot_test.go, part of aLENS-analysis.
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
	"math"
	"os"
	"path/filepath"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestHeatMap(Te *testing.T) {
	m := mat.NewDense(4, 5, nil)
	for i := 0; i < 4; i++ {
		for j := 0; j < 5; j++ {
			m.Set(i, j, math.Exp(-math.Abs(float64(i-j))))
		}
	}
	m.Set(0, 4, math.NaN())
	name := filepath.Join(Te.TempDir(), "contact.png")
	if err := HeatMap(m, nil, []float64{0, .5, 1, 1.5}, Labels{"Contacts", "bead", "time"}, name); err != nil {
		Te.Fatal(err)
	}
	if st, err := os.Stat(name); err != nil || st.Size() == 0 {
		Te.Errorf("no plot written: %v", err)
	}
	if err := HeatMap(m, []float64{1}, nil, Labels{}, name); err == nil {
		Te.Errorf("wrong x length should fail")
	}
}

func TestLines(Te *testing.T) {
	x := Indexes(20, .1)
	var s []Series
	for k := 0; k < 3; k++ {
		y := make([]float64, len(x))
		for i := range y {
			y[i] = math.Exp(-x[i] * float64(k+1))
		}
		s = append(s, Series{Name: "decay", X: x, Y: y})
	}
	s[0].Y[3] = math.NaN()
	dir := Te.TempDir()
	if err := Lines(s, LineOptions{Labels: Labels{"Autocorrelation", "lag", "C"}, LogX: true, LogY: true}, filepath.Join(dir, "ac.svg")); err != nil {
		Te.Fatal(err)
	}
	if err := Lines(s[:1], LineOptions{}, filepath.Join(dir, "ac.png")); err != nil {
		Te.Fatal(err)
	}
	if err := Lines([]Series{{X: []float64{1}, Y: nil}}, LineOptions{}, filepath.Join(dir, "bad.png")); err == nil {
		Te.Errorf("mismatched series should fail")
	}
	if r, g, b, _ := lineColor(0, 3).RGBA(); r == g && g == b {
		Te.Errorf("line colors should not be gray")
	}
}

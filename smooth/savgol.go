/*
 * savgol.go, part of aLENS-analysis.
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

// Package smooth implements the Savitzky–Golay smoothing filter used on
// kymographs before condensate detection.
package smooth

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Axes for SavGolDense.
const (
	Rows = 0 //filter along the row index, i.e. each column independently
	Cols = 1 //filter along the column index, i.e. each row independently
)

// fitMatrix returns the (polyorder+1) x window matrix P such that P*y are the
// coefficients of the least squares polynomial fitted to the window y, with
// the abscissa centered on the middle of the window.
func fitMatrix(window, polyorder int) (*mat.Dense, error) {
	half := window / 2
	A := mat.NewDense(window, polyorder+1, nil)
	for i := 0; i < window; i++ {
		x := float64(i - half)
		p := 1.0
		for k := 0; k <= polyorder; k++ {
			A.Set(i, k, p)
			p *= x
		}
	}
	var ata mat.Dense
	ata.Mul(A.T(), A)
	var P mat.Dense
	if err := P.Solve(&ata, A.T()); err != nil {
		return nil, fmt.Errorf("savgol: singular fit matrix: %w", err)
	}
	return &P, nil
}

func polyval(c []float64, x float64) float64 {
	var r float64
	for k := len(c) - 1; k >= 0; k-- {
		r = r*x + c[k]
	}
	return r
}

func check(n, window, polyorder int) error {
	if window%2 == 0 || window < 1 {
		return fmt.Errorf("savgol: window length must be a positive odd number, got %d", window)
	}
	if polyorder >= window {
		return fmt.Errorf("savgol: polyorder %d must be less than window length %d", polyorder, window)
	}
	if window > n {
		return fmt.Errorf("savgol: window length %d larger than the %d data points", window, n)
	}
	return nil
}

// SavGol smooths x with a Savitzky–Golay filter of the given odd window and
// polynomial order. Points closer than half a window to either end take the
// value of the polynomial fitted to the first (or last) full window. x is
// not modified.
func SavGol(x []float64, window, polyorder int) ([]float64, error) {
	if err := check(len(x), window, polyorder); err != nil {
		return nil, err
	}
	P, err := fitMatrix(window, polyorder)
	if err != nil {
		return nil, err
	}
	return savgol(P, x, window), nil
}

func savgol(P *mat.Dense, x []float64, window int) []float64 {
	n := len(x)
	half := window / 2
	y := make([]float64, n)
	w := mat.Row(nil, 0, P)
	for i := half; i < n-half; i++ {
		var s float64
		for j, c := range w {
			s += c * x[i-half+j]
		}
		y[i] = s
	}
	var c mat.VecDense
	c.MulVec(P, mat.NewVecDense(window, append([]float64(nil), x[:window]...)))
	coef := c.RawVector().Data
	for i := 0; i < half; i++ {
		y[i] = polyval(coef, float64(i-half))
	}
	c.MulVec(P, mat.NewVecDense(window, append([]float64(nil), x[n-window:]...)))
	coef = c.RawVector().Data
	for i := n - half; i < n; i++ {
		y[i] = polyval(coef, float64(i-(n-window)-half))
	}
	return y
}

// SavGolDense applies SavGol to every column (axis Rows) or every row
// (axis Cols) of m, returning a new matrix.
func SavGolDense(m mat.Matrix, window, polyorder, axis int) (*mat.Dense, error) {
	r, c := m.Dims()
	n := r
	if axis == Cols {
		n = c
	}
	if err := check(n, window, polyorder); err != nil {
		return nil, err
	}
	P, err := fitMatrix(window, polyorder)
	if err != nil {
		return nil, err
	}
	ret := mat.NewDense(r, c, nil)
	switch axis {
	case Rows:
		for j := 0; j < c; j++ {
			ret.SetCol(j, savgol(P, mat.Col(nil, j, m), window))
		}
	case Cols:
		for i := 0; i < r; i++ {
			ret.SetRow(i, savgol(P, mat.Row(nil, i, m), window))
		}
	default:
		return nil, fmt.Errorf("savgol: unknown axis %d", axis)
	}
	return ret, nil
}

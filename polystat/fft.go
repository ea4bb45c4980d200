/*
 * fft.go, part of aLENS-analysis.
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

package polystat

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"
)

// FFTNorm selects where the 1/n factor of a discrete Fourier transform pair goes.
type FFTNorm int

const (
	// Forward puts the whole 1/n factor in the forward transform.
	Forward FFTNorm = iota
	// Ortho scales both directions by 1/sqrt(n).
	Ortho
)

func cmplxMulConj(dst, b []complex128) {
	if len(dst) != len(b) {
		panic(fmt.Sprintf("complex conjugate multiplication of slices: Both slices should have the same len %d, %d", len(dst), len(b)))
	}
	for i, v := range b {
		dst[i] *= cmplx.Conj(v)
	}
}

func cmplxRealScale(dst []complex128, sc float64) []complex128 {
	for i, v := range dst {
		dst[i] = v * complex(sc, 0)
	}
	return dst
}

func reals(b []complex128, dst []float64) []float64 {
	for i, v := range b {
		dst[i] = real(v)
	}
	return dst
}

// transform returns the normalized Fourier coefficients of x, using buf as
// storage if it is long enough. f must have been created for len(x).
func transform(f *fourier.CmplxFFT, x []float64, norm FFTNorm, buf []complex128) []complex128 {
	if len(buf) < len(x) {
		buf = make([]complex128, len(x))
	}
	buf = buf[:len(x)]
	for i, v := range x {
		buf[i] = complex(v, 0)
	}
	f.Coefficients(buf, buf)
	n := float64(len(x))
	if norm == Ortho {
		return cmplxRealScale(buf, 1/math.Sqrt(n))
	}
	return cmplxRealScale(buf, 1/n)
}

// powerAdd adds scale*|F_k|^2 to dst[k].
func powerAdd(dst []float64, F []complex128, scale float64) {
	for k, v := range F {
		dst[k] += scale * (real(v)*real(v) + imag(v)*imag(v))
	}
}

// circAutocorr returns the circular autocorrelation of x, computed as the
// unscaled inverse transform of the power spectrum obtained with the Forward
// normalization. The value at lag tau is sum_t x[t]x[(t+tau)%n] / n.
// dst is used if it is long enough.
func circAutocorr(f *fourier.CmplxFFT, x []float64, buf []complex128, dst []float64) []float64 {
	n := len(x)
	if len(dst) < n {
		dst = make([]float64, n)
	}
	dst = dst[:n]
	F := transform(f, x, Forward, buf)
	for k, v := range F {
		F[k] = complex(real(v)*real(v)+imag(v)*imag(v), 0)
	}
	f.Sequence(F, F)
	return reals(F, dst)
}

// FFTFreq returns the sample frequencies of an n point discrete Fourier
// transform with sample spacing d, in the usual order: zero, the positive
// frequencies, then the negative ones.
func FFTFreq(n int, d float64) []float64 {
	ret := make([]float64, n)
	pos := (n-1)/2 + 1
	for i := range ret {
		k := i
		if i >= pos {
			k = i - n
		}
		ret[i] = float64(k) / (float64(n) * d)
	}
	return ret
}

// DCT2 returns the orthonormal type II discrete cosine transform of x:
// y[k] = f(k) 2 sum_n x[n] cos(pi k (2n+1)/(2N)), with f(0) = sqrt(1/(4N))
// and f(k) = sqrt(1/(2N)) otherwise.
func DCT2(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}
	//The type II transform is obtained from the 2N point transform of the
	//symmetrically extended sequence.
	ext := make([]complex128, 2*n)
	for i, v := range x {
		ext[i] = complex(v, 0)
		ext[2*n-1-i] = complex(v, 0)
	}
	fft := fourier.NewCmplxFFT(2 * n)
	fft.Coefficients(ext, ext)
	ret := make([]float64, n)
	for k := range ret {
		shift := cmplx.Exp(complex(0, -math.Pi*float64(k)/float64(2*n)))
		ret[k] = real(shift * ext[k])
	}
	ret[0] *= math.Sqrt(1 / float64(4*n))
	for k := 1; k < n; k++ {
		ret[k] *= math.Sqrt(1 / float64(2*n))
	}
	return ret
}

// DST2 returns the orthonormal type II discrete sine transform of x:
// y[k] = f(k) 2 sum_n x[n] sin(pi (k+1)(2n+1)/(2N)), with
// f(N-1) = sqrt(1/(4N)) and f(k) = sqrt(1/(2N)) otherwise.
func DST2(x []float64) []float64 {
	n := len(x)
	alt := make([]float64, n)
	for i, v := range x {
		if i%2 == 1 {
			v = -v
		}
		alt[i] = v
	}
	c := DCT2(alt)
	ret := make([]float64, n)
	for k := range ret {
		ret[k] = c[n-1-k]
	}
	return ret
}

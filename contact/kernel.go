/*
 * kernel.go, part of aLENS-analysis.
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

package contact

import (
	"math"

	alens "github.com/sidneyholden1/aLENS-analysis"
)

// DefaultSigma is the default width of the contact kernel, in simulation
// length units.
const DefaultSigma = .020

// GaussContact maps a separation d to exp(-d^2/(2 sigma^2)).
func GaussContact(d, sigma float64) float64 {
	return math.Exp(-d * d / (2. * sigma * sigma))
}

// LogGaussContact returns the base 10 logarithm of GaussContact(d, sigma),
// computed without going through the exponential, so it does not underflow.
func LogGaussContact(d, sigma float64) float64 {
	return -d * d / (2. * sigma * sigma) / math.Ln10
}

// GaussWeightedContact returns a new tensor with the Gaussian contact weight
// of every separation in sep. If radii is not nil, contact is measured from
// the particle surfaces: the separation of i and j is reduced by
// radii[i]+radii[j] before applying the kernel. Every time slice is transformed.
func GaussWeightedContact(sep *alens.Tensor3, sigma float64, radii []float64) *alens.Tensor3 {
	if radii != nil && (len(radii) != sep.R || len(radii) != sep.C) {
		panic(alens.ErrShape)
	}
	c := sep.Copy()
	c.Apply(func(i, j int, d float64) float64 {
		if radii != nil {
			d -= radii[i] + radii[j]
		}
		return GaussContact(d, sigma)
	})
	return c
}

// logContact returns the exponent of the contact kernel, i.e. the
// natural log of the contact weight.
func logContact(d, sigma float64) float64 {
	return -d * d / (2. * sigma * sigma)
}

/*
 * analysis.go, part of aLENS-analysis.
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
	"gonum.org/v1/gonum/mat"
)

// Options controls Analyze.
type Options struct {
	// Sigma is the width of the Gaussian contact kernel.
	Sigma float64

	// AvgBlockStep is the stride used to subsample the time axis. Frames
	// are skipped, not averaged.
	AvgBlockStep int

	// Log requests the natural logarithm of the time averaged contact matrix.
	Log bool

	// Radii, if not nil, makes contacts be measured from the bead surfaces.
	Radii []float64
}

// DefaultOptions returns the options of the standard chromatin contact analysis.
func DefaultOptions() Options {
	return Options{Sigma: DefaultSigma, AvgBlockStep: 1, Log: true}
}

// Result holds the products of Analyze.
type Result struct {
	AvgContact *mat.Dense     //N x N, time averaged (log if requested)
	Contact    *alens.Tensor3 //N x N x T', one contact matrix per kept frame
	Kymo       *mat.Dense     //N x T', contact kymograph
}

// ContactKymo reduces a contact tensor to a kymograph: one row per bead, one
// column per frame, with the total contact of the bead with every other bead.
// The self contact, exactly 1 for a center-to-center kernel, is subtracted.
func ContactKymo(contact *alens.Tensor3) *mat.Dense {
	n, m, nt := contact.Dims()
	kymo := mat.NewDense(m, nt, nil)
	for t := 0; t < nt; t++ {
		for i := 0; i < m; i++ {
			var s float64
			for j := 0; j < n; j++ {
				s += contact.At(j, i, t)
			}
			kymo.Set(i, t, s-1)
		}
	}
	return kymo
}

// Analyze computes the contact tensor of traj (time axis subsampled by
// opts.AvgBlockStep), its time average and the contact kymograph. If sink is
// not nil, the average contact matrix and the kymograph are written to it as
// avg_contact_mat and contact_kymo, with the parameters as attributes.
//
// With opts.Log the average is computed in log space (log-sum-exp), since for
// separations beyond roughly 38 sigma the kernel underflows to zero and a
// plain log of the mean would give -Inf.
func Analyze(traj *alens.Trajectory, opts Options, sink alens.Sink) (*Result, error) {
	if opts.Sigma <= 0 {
		return nil, alens.NewError("sigma must be positive", "contact.Analyze")
	}
	if opts.AvgBlockStep <= 0 {
		opts.AvgBlockStep = 1
	}
	if opts.Radii != nil && len(opts.Radii) != traj.NBeads() {
		return nil, alens.NewError("one radius per bead needed", "contact.Analyze")
	}
	reduced := traj.Stride(opts.AvgBlockStep)
	sep := Separation(reduced)
	res := &Result{Contact: GaussWeightedContact(sep, opts.Sigma, opts.Radii)}
	res.Kymo = ContactKymo(res.Contact)
	if opts.Log {
		res.AvgContact = logMeanContact(sep, opts.Sigma, opts.Radii)
	} else {
		res.AvgContact = res.Contact.TimeMean()
	}
	if sink == nil {
		return res, nil
	}
	n, nt := res.Kymo.Dims()
	avgAttrs := alens.Attrs{"sigma": opts.Sigma, "avg_block_step": opts.AvgBlockStep, "log": opts.Log}
	kymoAttrs := alens.Attrs{"sigma": opts.Sigma, "avg_block_step": opts.AvgBlockStep}
	if opts.Radii != nil {
		avgAttrs["radius_arr"] = opts.Radii
		kymoAttrs["radius_arr"] = opts.Radii
	}
	if err := sink.WriteDataset("avg_contact_mat", res.AvgContact.RawMatrix().Data, []int{n, n}, avgAttrs); err != nil {
		return res, alens.ErrDecorate(err, "contact.Analyze")
	}
	if err := sink.WriteDataset("contact_kymo", res.Kymo.RawMatrix().Data, []int{n, nt}, kymoAttrs); err != nil {
		return res, alens.ErrDecorate(err, "contact.Analyze")
	}
	return res, nil
}

// logMeanContact returns log(mean_t contact) for every pair, evaluated as a
// log-sum-exp of the kernel exponents.
func logMeanContact(sep *alens.Tensor3, sigma float64, radii []float64) *mat.Dense {
	n, m, nt := sep.Dims()
	ret := mat.NewDense(n, m, nil)
	a := make([]float64, nt)
	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			max := math.Inf(-1)
			for t := range a {
				d := sep.At(i, j, t)
				if radii != nil {
					d -= radii[i] + radii[j]
				}
				a[t] = logContact(d, sigma)
				if a[t] > max {
					max = a[t]
				}
			}
			var s float64
			for _, v := range a {
				s += math.Exp(v - max)
			}
			ret.Set(i, j, max+math.Log(s)-math.Log(float64(nt)))
		}
	}
	return ret
}

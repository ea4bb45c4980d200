/*
 * link.go, part of aLENS-analysis.
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
	"math"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// LinkEnergies holds the energy statistics of the springs linking
// consecutive beads.
type LinkEnergies struct {
	Mean     []float64 //mean link energy at each frame
	SEM      []float64 //standard error of the mean at each frame
	KBT      float64
	Expected float64 //equilibrium expectation for a link of the first rest length
	NLinks   int
}

// linkStretch returns the (N-1) x T matrix of the differences between the
// length of each link and its rest length. A link goes from the plus end of
// bead i to the minus end of bead i+1, and its rest length is the link gap
// plus both bead radii.
func linkStretch(sy *alens.RawArray, conf *alens.RunConfig) (stretch, rest *mat.Dense, err error) {
	if sy == nil || conf == nil {
		return nil, nil, alens.NewError(string(alens.ErrNilData), "linkStretch")
	}
	n, nf, nt := sy.Dims()
	if n < 2 || nf < alens.SyPlusEnd+3 || nt == 0 {
		return nil, nil, alens.NewError("at least 2 beads with 8 fields and one frame needed", "linkStretch")
	}
	stretch = mat.NewDense(n-1, nt, nil)
	rest = mat.NewDense(n-1, nt, nil)
	for i := 0; i < n-1; i++ {
		for t := 0; t < nt; t++ {
			var s float64
			for k := 0; k < 3; k++ {
				d := sy.At(i+1, alens.SyMinusEnd+k, t) - sy.At(i, alens.SyPlusEnd+k, t)
				s += d * d
			}
			r := conf.LinkGap + sy.At(i+1, alens.SyRadius, t) + sy.At(i, alens.SyRadius, t)
			rest.Set(i, t, r)
			stretch.Set(i, t, math.Sqrt(s)-r)
		}
	}
	return stretch, rest, nil
}

// LinkEnergy returns the harmonic energy .5 k (l - l0)^2 of the links
// between consecutive beads, averaged over links at each frame. The expected
// value is kT (.5 - 1/(1 + k l0^2/kT)), with l0 the rest length of the first
// link at the first frame. If sink is not nil, the mean and standard error
// are written as the 2 x T dataset link_energy.
func LinkEnergy(sy *alens.RawArray, conf *alens.RunConfig, sink alens.Sink) (*LinkEnergies, error) {
	stretch, rest, err := linkStretch(sy, conf)
	if err != nil {
		return nil, alens.ErrDecorate(err, "LinkEnergy")
	}
	k, kbt := conf.LinkKappa, conf.KBT
	nl, nt := stretch.Dims()
	ret := &LinkEnergies{Mean: make([]float64, nt), SEM: make([]float64, nt), KBT: kbt, NLinks: nl}
	e := make([]float64, nl)
	for t := 0; t < nt; t++ {
		for i := range e {
			s := stretch.At(i, t)
			e[i] = .5 * k * s * s
		}
		mean, std := stat.MeanStdDev(e, nil)
		ret.Mean[t] = mean
		ret.SEM[t] = stat.StdErr(std, float64(nl))
	}
	l0 := rest.At(0, 0)
	ret.Expected = kbt * (.5 - 1/(1+k*l0*l0/kbt))
	if sink != nil {
		data := append(append(make([]float64, 0, 2*nt), ret.Mean...), ret.SEM...)
		if err := sink.WriteDataset("link_energy", data, []int{2, nt}, alens.Attrs{"nsylinders": nl}); err != nil {
			return ret, alens.ErrDecorate(err, "LinkEnergy")
		}
	}
	return ret, nil
}

// LinkTension returns the (N-1) x T matrix of the spring force k (l - l0)
// of each link at each frame.
func LinkTension(sy *alens.RawArray, conf *alens.RunConfig) (*mat.Dense, error) {
	stretch, _, err := linkStretch(sy, conf)
	if err != nil {
		return nil, alens.ErrDecorate(err, "LinkTension")
	}
	stretch.Scale(conf.LinkKappa, stretch)
	return stretch, nil
}

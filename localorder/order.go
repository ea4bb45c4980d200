/*
 * order.go, part of aLENS-analysis.
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

package localorder

import (
	"math"

	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/mat"
)

// MTRadius is the filament radius used for volume fractions.
const MTRadius = .0125

// VolMT returns the volume of a spherocylinder of radius r and length l.
func VolMT(r, l float64) float64 {
	return math.Pi*r*r*l + 4./3.*math.Pi*r*r*r
}

// PolarP returns the polar order vector of a set of unit vectors: their mean.
func PolarP(vecs [][3]float64) [3]float64 {
	var p [3]float64
	if len(vecs) == 0 {
		return p
	}
	for _, v := range vecs {
		for k := range p {
			p[k] += v[k]
		}
	}
	for k := range p {
		p[k] /= float64(len(vecs))
	}
	return p
}

// NematicS returns the scalar nematic order of a set of unit vectors,
// sqrt(3/2 Q:Q), with Q = <pp> - I/3. It is 1 for parallel vectors and 0
// for an isotropic set.
func NematicS(vecs [][3]float64) float64 {
	if len(vecs) == 0 {
		return 0
	}
	Q := mat.NewSymDense(3, nil)
	for _, v := range vecs {
		for i := 0; i < 3; i++ {
			for j := i; j < 3; j++ {
				Q.SetSym(i, j, Q.At(i, j)+v[i]*v[j])
			}
		}
	}
	n := float64(len(vecs))
	for i := 0; i < 3; i++ {
		for j := i; j < 3; j++ {
			q := Q.At(i, j) / n
			if i == j {
				q -= 1. / 3.
			}
			Q.SetSym(i, j, q)
		}
	}
	f := mat.Norm(Q, 2)
	return math.Sqrt(1.5 * f * f)
}

// Result holds the local order fields of a snapshot, one value per mesh point.
type Result struct {
	Volfrac       []float64
	Nematic       []float64
	Polarity      [][3]float64
	PolarityTheta []float64
	XlinkerAll    []float64 //crosslinkers per unit volume
	XlinkerDB     []float64 //doubly bound crosslinkers per unit volume
}

// segments splits every filament into nseg pieces and returns their centers,
// their (shared per filament) directions and their lengths. Filaments of
// zero length are skipped.
func segments(fr *Frame, nseg int) (centers, dirs [][3]float64, lens []float64) {
	for _, s := range fr.Sylinders {
		vec := v3.Sub3(s.Plus, s.Minus)
		l := v3.Norm3(vec)
		if l == 0 {
			continue
		}
		dir := [3]float64{vec[0] / l, vec[1] / l, vec[2] / l}
		for i := 0; i < nseg; i++ {
			f := (float64(i) + .5) / float64(nseg)
			centers = append(centers, [3]float64{s.Minus[0] + f*vec[0], s.Minus[1] + f*vec[1], s.Minus[2] + f*vec[2]})
			dirs = append(dirs, dir)
			lens = append(lens, l/float64(nseg))
		}
	}
	return centers, dirs, lens
}

// Compute returns the local order fields of fr on the mesh of p.
func Compute(fr *Frame, p *Params) *Result {
	n := len(p.Points)
	res := &Result{
		Volfrac:       make([]float64, n),
		Nematic:       make([]float64, n),
		Polarity:      make([][3]float64, n),
		PolarityTheta: make([]float64, n),
		XlinkerAll:    make([]float64, n),
		XlinkerDB:     make([]float64, n),
	}
	centers, dirs, lens := segments(fr, p.NSeg)
	tree := newBallTree(centers)
	var vecs [][3]float64
	for i, q := range p.Points {
		idx := tree.Query(q, p.Rad)
		if len(idx) == 0 {
			continue
		}
		vecs = vecs[:0]
		var l float64
		for _, j := range idx {
			vecs = append(vecs, dirs[j])
			l += lens[j]
		}
		res.Volfrac[i] = VolMT(MTRadius, l) / p.VolAve
		res.Polarity[i] = PolarP(vecs)
		res.PolarityTheta[i] = v3.Dot3(res.Polarity[i], p.ETheta[i])
		res.Nematic[i] = NematicS(vecs)
	}

	xc := make([][3]float64, len(fr.Proteins))
	for k, pr := range fr.Proteins {
		for d := range xc[k] {
			xc[k][d] = .5 * (pr.Minus[d] + pr.Plus[d])
		}
	}
	xtree := newBallTree(xc)
	for i, q := range p.Points {
		idx := xtree.Query(q, p.Rad)
		if len(idx) == 0 {
			continue
		}
		res.XlinkerAll[i] = float64(len(idx)) / p.VolAve
		var db int
		for _, j := range idx {
			b := fr.Proteins[j].Bind
			if b[0] != -1 && b[1] != -1 {
				db++
			}
		}
		res.XlinkerDB[i] = float64(db) / p.VolAve
	}
	return res
}

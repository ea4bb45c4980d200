/*
 * poskymo.go, part of aLENS-analysis.
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
	"fmt"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/histo"
	v3 "github.com/sidneyholden1/aLENS-analysis/v3"
	"gonum.org/v1/gonum/mat"
)

// PosKymoResult holds a position kymograph.
type PosKymoResult struct {
	Time     []float64
	Hist     *mat.Dense //bins x frames
	BinEdges []float64
}

// PosKymo projects the bead centers of every frame on the unit vector going
// from the first to the last bead (at the first selected frame), and makes
// one histogram of the projections per frame. The histogram range is the
// projection of the simulation box. tsRange and beadRange are [start, end)
// pairs, a negative end meaning "until the last one". If sink is not nil, the
// result is written as pos_kymo and pos_kymo_bin_edges.
func PosKymo(src alens.Source, tsRange, beadRange [2]int, bins int, sink alens.Sink) (*PosKymoResult, error) {
	conf, err := src.RunConfig()
	if err != nil {
		return nil, alens.ErrDecorate(err, "PosKymo")
	}
	traj, err := trajectory(src, true)
	if err != nil {
		return nil, alens.ErrDecorate(err, "PosKymo")
	}
	traj = traj.Window(tsRange[0], tsRange[1]).Beads(beadRange[0], beadRange[1])
	if traj.Len() == 0 || traj.NBeads() < 2 {
		return nil, alens.NewError("at least 2 beads and 1 frame needed", "PosKymo")
	}
	first := traj.Frames[0]
	u := v3.Sub3(first.Vec(first.NVecs()-1), first.Vec(0))
	norm := v3.Norm3(u)
	if norm == 0 {
		return nil, alens.NewError("first and last beads coincide", "PosKymo")
	}
	for k := range u {
		u[k] /= norm
	}
	rmin := v3.Dot3(conf.BoxLow(), u)
	rmax := v3.Dot3(conf.BoxHigh(), u)
	if rmin > rmax {
		rmin, rmax = rmax, rmin
	}
	if rmin == rmax {
		return nil, alens.NewError(fmt.Sprintf("empty projection range %f", rmin), "PosKymo")
	}
	series := histo.NewSeries(traj.Len(), histo.Dividers(bins, rmin, rmax))
	proj := make([]float64, traj.NBeads())
	for t, f := range traj.Frames {
		series.Set(t, f.Project(u, proj))
	}
	res := &PosKymoResult{Time: traj.Time, Hist: series.Dense(), BinEdges: series.Dividers()}
	if sink != nil {
		attrs := alens.Attrs{"bins": bins, "range": []float64{rmin, rmax},
			"timestep_range": []int{tsRange[0], tsRange[1]},
			"time_range":     []float64{res.Time[0], res.Time[len(res.Time)-1]}}
		if err := sink.WriteDataset("pos_kymo", res.Hist.RawMatrix().Data, []int{bins, traj.Len()}, attrs); err != nil {
			return res, alens.ErrDecorate(err, "PosKymo")
		}
		if err := sink.WriteDataset("pos_kymo_bin_edges", res.BinEdges, []int{len(res.BinEdges)}, attrs); err != nil {
			return res, alens.ErrDecorate(err, "PosKymo")
		}
	}
	return res, nil
}

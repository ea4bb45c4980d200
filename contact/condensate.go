/*
 * condensate.go, part of aLENS-analysis.
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
	"github.com/sidneyholden1/aLENS-analysis/smooth"
	"gonum.org/v1/gonum/mat"
)

// SavGolOrder is the polynomial order of the kymograph smoothing filter.
const SavGolOrder = 3

// Region is one condensate found at time Time, spanning from Start to End.
// For contact kymographs Start and End are bead indexes (End exclusive),
// for position kymographs they are bin centers.
type Region struct {
	Time, Start, End float64
}

// ContiguousRegions returns the [start, end) index pairs of the maximal runs
// of true values in cond. Runs touching either end of the slice are included.
func ContiguousRegions(cond []bool) [][2]int {
	var ret [][2]int
	start := -1
	for i, c := range cond {
		switch {
		case c && start < 0:
			start = i
		case !c && start >= 0:
			ret = append(ret, [2]int{start, i})
			start = -1
		}
	}
	if start >= 0 {
		ret = append(ret, [2]int{start, len(cond)})
	}
	return ret
}

// Smooth applies a cubic Savitzky–Golay filter to a kymograph, first along
// the row (bead or bin) axis with window yWin, then along the time axis
// with window timeWin. A window of 0 skips that axis. m is not modified.
func Smooth(m mat.Matrix, yWin, timeWin int) (*mat.Dense, error) {
	ret := mat.DenseCopyOf(m)
	var err error
	if yWin > 0 {
		ret, err = smooth.SavGolDense(ret, yWin, SavGolOrder, smooth.Rows)
		if err != nil {
			return nil, err
		}
	}
	if timeWin > 0 {
		ret, err = smooth.SavGolDense(ret, timeWin, SavGolOrder, smooth.Cols)
		if err != nil {
			return nil, err
		}
	}
	return ret, nil
}

// thresholdRuns finds the runs above threshold in each column of kymo.
func thresholdRuns(kymo *mat.Dense, threshold float64, f func(col int, run [2]int)) []int {
	r, c := kymo.Dims()
	num := make([]int, c)
	cond := make([]bool, r)
	for j := 0; j < c; j++ {
		for i := range cond {
			cond[i] = kymo.At(i, j) > threshold
		}
		runs := ContiguousRegions(cond)
		num[j] = len(runs)
		for _, run := range runs {
			f(j, run)
		}
	}
	return num
}

// ContactCondensates smooths the contact kymograph (beadWin along beads,
// timeWin along time, 0 to skip) and, for every time column, finds the
// maximal runs of beads with values strictly above threshold. It returns one
// Region per run, and the number of runs found at each time. If sink is not
// nil, the results are written as contact_cond_edges and contact_cond_num.
func ContactCondensates(time []float64, kymo mat.Matrix, threshold float64, beadWin, timeWin int, sink alens.Sink) ([]Region, []int, error) {
	if _, c := kymo.Dims(); c != len(time) {
		return nil, nil, alens.NewError(fmt.Sprintf("%d times for a kymograph with %d columns", len(time), c), "ContactCondensates")
	}
	sm, err := Smooth(kymo, beadWin, timeWin)
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "ContactCondensates")
	}
	var regions []Region
	num := thresholdRuns(sm, threshold, func(col int, run [2]int) {
		regions = append(regions, Region{time[col], float64(run[0]), float64(run[1])})
	})
	if sink != nil {
		attrs := alens.Attrs{"threshold": threshold, "bead_win": beadWin, "times_win": timeWin}
		if err := writeRegions(sink, "contact_cond", regions, num, attrs); err != nil {
			return regions, num, alens.ErrDecorate(err, "ContactCondensates")
		}
	}
	return regions, num, nil
}

// PosCondensates is the position kymograph version of ContactCondensates.
// Regions are reported as the centers of the bins where runs start and end.
// A run reaching the last bin ends at the last bin center. Results are
// written as pos_cond_edges and pos_cond_num.
func PosCondensates(time []float64, posKymo mat.Matrix, binCenters []float64, threshold float64, binWin, timeWin int, sink alens.Sink) ([]Region, []int, error) {
	r, c := posKymo.Dims()
	if c != len(time) || r != len(binCenters) {
		return nil, nil, alens.NewError(fmt.Sprintf("kymograph %dx%d doesn't match %d bins and %d times", r, c, len(binCenters), len(time)), "PosCondensates")
	}
	sm, err := Smooth(posKymo, binWin, timeWin)
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "PosCondensates")
	}
	var regions []Region
	num := thresholdRuns(sm, threshold, func(col int, run [2]int) {
		end := run[1]
		if end >= len(binCenters) {
			end = len(binCenters) - 1
		}
		regions = append(regions, Region{time[col], binCenters[run[0]], binCenters[end]})
	})
	if sink != nil && len(time) > 0 {
		attrs := alens.Attrs{"threshold": threshold, "bin_win": binWin, "time_win": timeWin,
			"time_range": []float64{time[0], time[len(time)-1]}}
		if err := writeRegions(sink, "pos_cond", regions, num, attrs); err != nil {
			return regions, num, alens.ErrDecorate(err, "PosCondensates")
		}
	}
	return regions, num, nil
}

func writeRegions(sink alens.Sink, prefix string, regions []Region, num []int, attrs alens.Attrs) error {
	edges := make([]float64, 0, 3*len(regions))
	for _, r := range regions {
		edges = append(edges, r.Time, r.Start, r.End)
	}
	if err := sink.WriteDataset(prefix+"_edges", edges, []int{len(regions), 3}, attrs); err != nil {
		return err
	}
	nums := make([]float64, len(num))
	for i, v := range num {
		nums[i] = float64(v)
	}
	return sink.WriteDataset(prefix+"_num", nums, []int{len(num)}, attrs)
}

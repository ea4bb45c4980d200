/*
 * file.go, part of aLENS-analysis.
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

package connect

import (
	"log"
	"os"
	"path/filepath"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"github.com/sidneyholden1/aLENS-analysis/h5"
)

// FileName is the name of the connectivity analysis file, created in the
// directory of the raw data file.
const FileName = "connect_diag_analysis.h5"

// Options controls CreateConnectFile.
type Options struct {
	Force      bool //overwrite an existing file
	Start, End int  //frame range, End < 0 means until the last frame
	Backend    alens.Backend
}

// Matrices reads the proteins of the frames start to end (exclusive, end < 0
// meaning the last frame) from src and returns one connectivity matrix per
// frame, with the times of those frames.
func Matrices(src alens.Source, start, end int) ([]*Sparse, []float64, error) {
	time, err := src.Time()
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "connect.Matrices")
	}
	sy, err := src.Sylinders()
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "connect.Matrices")
	}
	prot, err := src.Proteins()
	if err != nil {
		return nil, nil, alens.ErrDecorate(err, "connect.Matrices")
	}
	_, _, nt := prot.Dims()
	if end < 0 || end > nt {
		end = nt
	}
	if start < 0 || start >= end || len(time) < end {
		return nil, nil, alens.NewError("empty or invalid frame range", "connect.Matrices")
	}
	mats := make([]*Sparse, 0, end-start)
	for k := start; k < end; k++ {
		m, err := FromProteins(prot.Frame(k), sy.D0)
		if err != nil {
			return nil, nil, alens.ErrDecorate(err, "connect.Matrices")
		}
		mats = append(mats, m)
	}
	return mats, time[start:end], nil
}

// CreateConnectFile computes the average connectivity matrix and its
// diagonal autocorrelation for the raw data file rawPath, and writes them,
// with the times and lag times, to FileName next to it. If that file
// exists and opts.Force is false, a warning is logged and nothing is done.
func CreateConnectFile(rawPath string, opts Options) error {
	path := filepath.Join(filepath.Dir(rawPath), FileName)
	if _, err := os.Stat(path); err == nil {
		if !opts.Force {
			log.Printf("Warning: connect data file %s exists and was not overwritten.", FileName)
			return nil
		}
		if err := os.Remove(path); err != nil {
			return alens.ErrDecorate(err, "CreateConnectFile")
		}
	}
	be := opts.Backend
	if be == nil {
		be = alens.DefaultBackend
	}
	raw, err := h5.Open(rawPath, false)
	if err != nil {
		return alens.ErrDecorate(err, "CreateConnectFile")
	}
	mats, time, err := Matrices(raw, opts.Start, opts.End)
	raw.Close()
	if err != nil {
		return alens.ErrDecorate(err, "CreateConnectFile")
	}
	lag := make([]float64, len(time))
	for i, t := range time {
		lag[i] = t - time[0]
	}
	avg := Average(mats)
	ac := DiagAutocorr(mats, be)

	out, err := h5.Create(path)
	if err != nil {
		return alens.ErrDecorate(err, "CreateConnectFile")
	}
	defer out.Close()
	root, err := out.Group("/")
	if err != nil {
		return alens.ErrDecorate(err, "CreateConnectFile")
	}
	defer root.Close()
	nb, _ := avg.Dims()
	r, c := ac.Dims()
	sets := []struct {
		name string
		data []float64
		dims []int
	}{
		{"time", time, []int{len(time)}},
		{"lag_time", lag, []int{len(lag)}},
		{"avg_connect_mat", avg.RawMatrix().Data, []int{nb, nb}},
		{"autocorr", ac.RawMatrix().Data, []int{r, c}},
	}
	for _, s := range sets {
		if err := root.WriteDataset(s.name, s.data, s.dims, nil); err != nil {
			return alens.ErrDecorate(err, "CreateConnectFile")
		}
	}
	return nil
}

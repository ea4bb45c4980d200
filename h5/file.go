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

package h5

import (
	"fmt"

	alens "github.com/sidneyholden1/aLENS-analysis"
	"gonum.org/v1/hdf5"
)

// Names of the objects in a raw data file.
const (
	SylindersPath = "raw_data/sylinders"
	ProteinsPath  = "raw_data/proteins"
	TimePath      = "time"
	RunConfigAttr = "RunConfig"
	AnalysisGroup = "analysis"
)

// File is an HDF5 container with simulation data.
type File struct {
	f        *hdf5.File
	writable bool
	conf     *alens.RunConfig
}

// Open opens an existing file. If writable is false, the file is opened
// read-only and Analysis will fail.
func Open(path string, writable bool) (*File, error) {
	flag := hdf5.F_ACC_RDONLY
	if writable {
		flag = hdf5.F_ACC_RDWR
	}
	f, err := hdf5.OpenFile(path, flag)
	if err != nil {
		return nil, fmt.Errorf("h5.Open %s: %w", path, err)
	}
	return &File{f: f, writable: writable}, nil
}

// Create creates a new, empty file. An existing file is truncated.
func Create(path string) (*File, error) {
	f, err := hdf5.CreateFile(path, hdf5.F_ACC_TRUNC)
	if err != nil {
		return nil, fmt.Errorf("h5.Create %s: %w", path, err)
	}
	return &File{f: f, writable: true}, nil
}

// Close closes the file.
func (F *File) Close() error {
	return F.f.Close()
}

func (F *File) readArray(path string) ([]float64, []int, error) {
	dset, err := F.f.OpenDataset(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer dset.Close()
	space := dset.Space()
	defer space.Close()
	udims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, fmt.Errorf("reading the shape of %s: %w", path, err)
	}
	dims := make([]int, len(udims))
	size := 1
	for i, d := range udims {
		dims[i] = int(d)
		size *= int(d)
	}
	data := make([]float64, size)
	if size == 0 {
		return data, dims, nil
	}
	if err := dset.Read(&data); err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, dims, nil
}

func (F *File) raw3(path string) (*alens.RawArray, error) {
	data, dims, err := F.readArray(path)
	if err != nil {
		return nil, alens.ErrDecorate(err, "h5.File")
	}
	if len(dims) != 3 {
		return nil, alens.NewError(fmt.Sprintf("%s has %d dimensions, 3 expected", path, len(dims)), "h5.File")
	}
	return &alens.RawArray{D0: dims[0], D1: dims[1], D2: dims[2], Data: data}, nil
}

// Sylinders reads raw_data/sylinders.
func (F *File) Sylinders() (*alens.RawArray, error) {
	return F.raw3(SylindersPath)
}

// Proteins reads raw_data/proteins.
func (F *File) Proteins() (*alens.RawArray, error) {
	return F.raw3(ProteinsPath)
}

// Time reads the time dataset.
func (F *File) Time() ([]float64, error) {
	data, _, err := F.readArray(TimePath)
	if err != nil {
		return nil, alens.ErrDecorate(err, "h5.File.Time")
	}
	return data, nil
}

// RunConfig parses the RunConfig attribute of the root group. The result
// is cached.
func (F *File) RunConfig() (*alens.RunConfig, error) {
	if F.conf != nil {
		return F.conf, nil
	}
	root, err := F.f.OpenGroup("/")
	if err != nil {
		return nil, fmt.Errorf("h5.File.RunConfig: %w", err)
	}
	defer root.Close()
	attr, err := root.OpenAttribute(RunConfigAttr)
	if err != nil {
		return nil, fmt.Errorf("h5.File.RunConfig: %w", err)
	}
	defer attr.Close()
	var s string
	if err := attr.Read(&s, hdf5.T_GO_STRING); err != nil {
		return nil, fmt.Errorf("h5.File.RunConfig: %w", err)
	}
	conf, err := alens.ParseRunConfig([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("h5.File.RunConfig: %w", err)
	}
	F.conf = conf
	return conf, nil
}

// Analysis returns the analysis group of the file, creating it if needed.
// The caller must close the group.
func (F *File) Analysis() (*Group, error) {
	return F.Group(AnalysisGroup)
}

// Group returns the group with the given name, creating it if needed.
// The name "/" gives the root group.
func (F *File) Group(name string) (*Group, error) {
	if !F.writable {
		return nil, alens.NewError("file opened read-only", "h5.File.Group")
	}
	var g *hdf5.Group
	var err error
	if name == "/" || F.f.LinkExists(name) {
		g, err = F.f.OpenGroup(name)
	} else {
		g, err = F.f.CreateGroup(name)
	}
	if err != nil {
		return nil, fmt.Errorf("h5.File.Group %s: %w", name, err)
	}
	return &Group{g: g}, nil
}

// WriteRaw stores sylinder and protein data, times and the YAML run
// configuration with the layout that File reads. It exists to produce
// small raw files, mostly for tests; prot may be nil.
func (F *File) WriteRaw(sy, prot *alens.RawArray, time []float64, runConfig string) error {
	raw, err := F.Group("raw_data")
	if err != nil {
		return alens.ErrDecorate(err, "h5.File.WriteRaw")
	}
	defer raw.Close()
	if err := raw.WriteDataset("sylinders", sy.Data, []int{sy.D0, sy.D1, sy.D2}, nil); err != nil {
		return alens.ErrDecorate(err, "h5.File.WriteRaw")
	}
	if prot != nil {
		if err := raw.WriteDataset("proteins", prot.Data, []int{prot.D0, prot.D1, prot.D2}, nil); err != nil {
			return alens.ErrDecorate(err, "h5.File.WriteRaw")
		}
	}
	root, err := F.Group("/")
	if err != nil {
		return alens.ErrDecorate(err, "h5.File.WriteRaw")
	}
	defer root.Close()
	if err := root.WriteDataset(TimePath, time, []int{len(time)}, nil); err != nil {
		return alens.ErrDecorate(err, "h5.File.WriteRaw")
	}
	return writeAttr(root.g, RunConfigAttr, runConfig)
}

/*
 * memsink.go, part of aLENS-analysis.
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

package alens

import (
	"fmt"
	"sort"
	"sync"
)

// Dataset is a named array with its attributes, as kept by MemSink.
type Dataset struct {
	Name  string
	Data  []float64
	Dims  []int
	Attrs Attrs
}

// MemSink is a Sink that keeps the datasets in memory. It is safe for
// concurrent use.
type MemSink struct {
	mu   sync.Mutex
	sets map[string]*Dataset
}

// NewMemSink returns an empty MemSink.
func NewMemSink() *MemSink {
	return &MemSink{sets: make(map[string]*Dataset)}
}

// WriteDataset stores a copy of data and attrs. Like an HDF5 group, it refuses
// to overwrite an existing dataset.
func (M *MemSink) WriteDataset(name string, data []float64, dims []int, attrs Attrs) error {
	if err := checkDims(len(data), dims); err != nil {
		return ErrDecorate(err, "MemSink.WriteDataset")
	}
	M.mu.Lock()
	defer M.mu.Unlock()
	if _, ok := M.sets[name]; ok {
		return NewError(fmt.Sprintf("dataset %s already exists", name), "MemSink.WriteDataset")
	}
	d := &Dataset{Name: name, Data: make([]float64, len(data)), Dims: append([]int(nil), dims...), Attrs: make(Attrs, len(attrs))}
	copy(d.Data, data)
	for k, v := range attrs {
		d.Attrs[k] = v
	}
	M.sets[name] = d
	return nil
}

// Dataset returns the dataset stored under name.
func (M *MemSink) Dataset(name string) (*Dataset, bool) {
	M.mu.Lock()
	defer M.mu.Unlock()
	d, ok := M.sets[name]
	return d, ok
}

// Names returns the sorted names of the stored datasets.
func (M *MemSink) Names() []string {
	M.mu.Lock()
	defer M.mu.Unlock()
	ret := make([]string, 0, len(M.sets))
	for k := range M.sets {
		ret = append(ret, k)
	}
	sort.Strings(ret)
	return ret
}

func checkDims(n int, dims []int) error {
	p := 1
	for _, d := range dims {
		p *= d
	}
	if p != n || len(dims) == 0 {
		return NewError(fmt.Sprintf("%d elements don't fit dimensions %v", n, dims), "checkDims")
	}
	return nil
}

// MemSource is a Source over arrays already in memory.
type MemSource struct {
	Sy     *RawArray
	Prot   *RawArray
	Times  []float64
	Config *RunConfig
}

func (M *MemSource) Sylinders() (*RawArray, error) {
	if M.Sy == nil {
		return nil, NewError("no sylinder data", "MemSource.Sylinders")
	}
	return M.Sy, nil
}

func (M *MemSource) Proteins() (*RawArray, error) {
	if M.Prot == nil {
		return nil, NewError("no protein data", "MemSource.Proteins")
	}
	return M.Prot, nil
}

func (M *MemSource) Time() ([]float64, error) {
	if M.Times == nil {
		return nil, NewError("no time data", "MemSource.Time")
	}
	return M.Times, nil
}

func (M *MemSource) RunConfig() (*RunConfig, error) {
	if M.Config == nil {
		return nil, NewError("no run configuration", "MemSource.RunConfig")
	}
	return M.Config, M.Config.Check()
}

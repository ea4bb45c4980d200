/*
 * group.go, part of aLENS-analysis.
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

// Group is an HDF5 group that works as an alens.Sink.
type Group struct {
	g *hdf5.Group
}

// Close closes the group.
func (G *Group) Close() error {
	return G.g.Close()
}

// WriteDataset creates the dataset name with the given dimensions and
// attributes. It fails if the dataset already exists.
func (G *Group) WriteDataset(name string, data []float64, dims []int, attrs alens.Attrs) error {
	if G.g.LinkExists(name) {
		return alens.NewError(fmt.Sprintf("dataset %s already exists", name), "h5.Group.WriteDataset")
	}
	size := 1
	udims := make([]uint, len(dims))
	for i, d := range dims {
		udims[i] = uint(d)
		size *= d
	}
	if size != len(data) || len(dims) == 0 {
		return alens.NewError(fmt.Sprintf("%d elements don't fit dimensions %v", len(data), dims), "h5.Group.WriteDataset")
	}
	space, err := hdf5.CreateSimpleDataspace(udims, nil)
	if err != nil {
		return fmt.Errorf("h5.Group.WriteDataset %s: %w", name, err)
	}
	defer space.Close()
	dset, err := G.g.CreateDataset(name, hdf5.T_NATIVE_DOUBLE, space)
	if err != nil {
		return fmt.Errorf("h5.Group.WriteDataset %s: %w", name, err)
	}
	defer dset.Close()
	if size > 0 {
		if err := dset.Write(&data); err != nil {
			return fmt.Errorf("h5.Group.WriteDataset %s: %w", name, err)
		}
	}
	for k, v := range attrs {
		if err := writeAttr(dset, k, v); err != nil {
			return fmt.Errorf("h5.Group.WriteDataset %s: %w", name, err)
		}
	}
	return nil
}

// ReadDataset reads the dataset name and its dimensions.
func (G *Group) ReadDataset(name string) ([]float64, []int, error) {
	dset, err := G.g.OpenDataset(name)
	if err != nil {
		return nil, nil, fmt.Errorf("h5.Group.ReadDataset %s: %w", name, err)
	}
	defer dset.Close()
	space := dset.Space()
	defer space.Close()
	udims, _, err := space.SimpleExtentDims()
	if err != nil {
		return nil, nil, fmt.Errorf("h5.Group.ReadDataset %s: %w", name, err)
	}
	dims := make([]int, len(udims))
	size := 1
	for i, d := range udims {
		dims[i] = int(d)
		size *= int(d)
	}
	data := make([]float64, size)
	if size > 0 {
		if err := dset.Read(&data); err != nil {
			return nil, nil, fmt.Errorf("h5.Group.ReadDataset %s: %w", name, err)
		}
	}
	return data, dims, nil
}

// FloatAttr reads a numeric scalar attribute of a dataset as a float64.
func (G *Group) FloatAttr(dataset, name string) (float64, error) {
	dset, err := G.g.OpenDataset(dataset)
	if err != nil {
		return 0, fmt.Errorf("h5.Group.FloatAttr %s: %w", dataset, err)
	}
	defer dset.Close()
	attr, err := dset.OpenAttribute(name)
	if err != nil {
		return 0, fmt.Errorf("h5.Group.FloatAttr %s/%s: %w", dataset, name, err)
	}
	defer attr.Close()
	var v float64
	if err := attr.Read(&v, hdf5.T_NATIVE_DOUBLE); err != nil {
		return 0, fmt.Errorf("h5.Group.FloatAttr %s/%s: %w", dataset, name, err)
	}
	return v, nil
}

// StringAttr reads a string attribute of a dataset.
func (G *Group) StringAttr(dataset, name string) (string, error) {
	dset, err := G.g.OpenDataset(dataset)
	if err != nil {
		return "", fmt.Errorf("h5.Group.StringAttr %s: %w", dataset, err)
	}
	defer dset.Close()
	attr, err := dset.OpenAttribute(name)
	if err != nil {
		return "", fmt.Errorf("h5.Group.StringAttr %s/%s: %w", dataset, name, err)
	}
	defer attr.Close()
	var s string
	if err := attr.Read(&s, hdf5.T_GO_STRING); err != nil {
		return "", fmt.Errorf("h5.Group.StringAttr %s/%s: %w", dataset, name, err)
	}
	return s, nil
}

type attributer interface {
	CreateAttribute(name string, dtype *hdf5.Datatype, dspace *hdf5.Dataspace) (*hdf5.Attribute, error)
}

// writeAttr stores v as the attribute name of loc. Numbers become scalar
// attributes, slices 1D ones. Integers are stored as 64 bit integers and
// booleans as 0/1 8 bit integers.
func writeAttr(loc attributer, name string, v interface{}) error {
	var (
		dtype *hdf5.Datatype
		data  interface{}
		n     int
	)
	switch x := v.(type) {
	case float64:
		dtype, data = hdf5.T_NATIVE_DOUBLE, &x
	case int:
		y := int64(x)
		dtype, data = hdf5.T_NATIVE_INT64, &y
	case int64:
		dtype, data = hdf5.T_NATIVE_INT64, &x
	case bool:
		var y int8
		if x {
			y = 1
		}
		dtype, data = hdf5.T_NATIVE_INT8, &y
	case string:
		dtype, data = hdf5.T_GO_STRING, &x
	case []float64:
		if len(x) == 0 {
			return nil
		}
		dtype, data, n = hdf5.T_NATIVE_DOUBLE, &x[0], len(x)
	case []int:
		if len(x) == 0 {
			return nil
		}
		y := make([]int64, len(x))
		for i, e := range x {
			y[i] = int64(e)
		}
		dtype, data, n = hdf5.T_NATIVE_INT64, &y[0], len(y)
	default:
		return alens.NewError(fmt.Sprintf("attribute %s has unsupported type %T", name, v), "h5.writeAttr")
	}
	var space *hdf5.Dataspace
	var err error
	if n == 0 {
		space, err = hdf5.CreateDataspace(hdf5.S_SCALAR)
	} else {
		space, err = hdf5.CreateSimpleDataspace([]uint{uint(n)}, nil)
	}
	if err != nil {
		return err
	}
	defer space.Close()
	attr, err := loc.CreateAttribute(name, dtype, space)
	if err != nil {
		return err
	}
	defer attr.Close()
	return attr.Write(data, dtype)
}

/*
 * vtu.go, part of aLENS-analysis.
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
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Field is a named array of point data with Components values per point.
type Field struct {
	Name       string
	Components int
	Data       []float64
}

// Fields returns the result as VTU point data.
func (R *Result) Fields() []Field {
	pol := make([]float64, 0, 3*len(R.Polarity))
	for _, p := range R.Polarity {
		pol = append(pol, p[:]...)
	}
	return []Field{
		{"volfrac", 1, R.Volfrac},
		{"nematic", 1, R.Nematic},
		{"polarity", 3, pol},
		{"polarity_theta", 1, R.PolarityTheta},
		{"xlinker_n_all", 1, R.XlinkerAll},
		{"xlinker_n_db", 1, R.XlinkerDB},
	}
}

// vtkTriangle is the VTK cell type of triangles.
const vtkTriangle = 5

// WriteVTU writes a triangle mesh and its point data as an ASCII VTK
// unstructured grid.
func WriteVTU(w io.Writer, pts [][3]float64, cells [][3]int, fields []Field) error {
	b := bufio.NewWriter(w)
	fmt.Fprintln(b, `<?xml version="1.0"?>`)
	fmt.Fprintln(b, `<VTKFile type="UnstructuredGrid" version="0.1" byte_order="LittleEndian">`)
	fmt.Fprintln(b, `<UnstructuredGrid>`)
	fmt.Fprintf(b, "<Piece NumberOfPoints=\"%d\" NumberOfCells=\"%d\">\n", len(pts), len(cells))
	fmt.Fprintln(b, `<Points>`)
	fmt.Fprintln(b, `<DataArray type="Float64" NumberOfComponents="3" format="ascii">`)
	for _, p := range pts {
		fmt.Fprintf(b, "%.8g %.8g %.8g\n", p[0], p[1], p[2])
	}
	fmt.Fprintln(b, `</DataArray>`)
	fmt.Fprintln(b, `</Points>`)
	fmt.Fprintln(b, `<Cells>`)
	fmt.Fprintln(b, `<DataArray type="Int64" Name="connectivity" format="ascii">`)
	for _, c := range cells {
		fmt.Fprintf(b, "%d %d %d\n", c[0], c[1], c[2])
	}
	fmt.Fprintln(b, `</DataArray>`)
	fmt.Fprintln(b, `<DataArray type="Int64" Name="offsets" format="ascii">`)
	for i := range cells {
		fmt.Fprintf(b, "%d\n", 3*(i+1))
	}
	fmt.Fprintln(b, `</DataArray>`)
	fmt.Fprintln(b, `<DataArray type="UInt8" Name="types" format="ascii">`)
	for range cells {
		fmt.Fprintf(b, "%d\n", vtkTriangle)
	}
	fmt.Fprintln(b, `</DataArray>`)
	fmt.Fprintln(b, `</Cells>`)
	fmt.Fprintln(b, `<PointData>`)
	for _, f := range fields {
		if len(f.Data) != f.Components*len(pts) {
			return fmt.Errorf("WriteVTU: field %s has %d values for %d points", f.Name, len(f.Data), len(pts))
		}
		fmt.Fprintf(b, "<DataArray type=\"Float64\" Name=\"%s\" NumberOfComponents=\"%d\" format=\"ascii\">\n", f.Name, f.Components)
		for i := 0; i < len(pts); i++ {
			row := f.Data[i*f.Components : (i+1)*f.Components]
			s := make([]string, len(row))
			for k, v := range row {
				s[k] = fmt.Sprintf("%.8g", v)
			}
			fmt.Fprintln(b, strings.Join(s, " "))
		}
		fmt.Fprintln(b, `</DataArray>`)
	}
	fmt.Fprintln(b, `</PointData>`)
	fmt.Fprintln(b, `</Piece>`)
	fmt.Fprintln(b, `</UnstructuredGrid>`)
	fmt.Fprintln(b, `</VTKFile>`)
	return b.Flush()
}

// WriteVTUFile writes the VTU file path. A path ending in .zst is
// compressed with z-standard.
func WriteVTUFile(path string, pts [][3]float64, cells [][3]int, fields []Field) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	var w io.Writer = f
	var z *zstd.Encoder
	if strings.HasSuffix(path, ".zst") {
		z, err = zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
		if err != nil {
			f.Close()
			return err
		}
		w = z
	}
	if err := WriteVTU(w, pts, cells, fields); err != nil {
		f.Close()
		return err
	}
	if z != nil {
		if err := z.Close(); err != nil {
			f.Close()
			return err
		}
	}
	return f.Close()
}

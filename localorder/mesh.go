/*
 * mesh.go, part of aLENS-analysis.
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
)

// icosahedron vertices and faces.
var (
	golden = (1 + math.Sqrt(5)) / 2

	icoVerts = [12][3]float64{
		{-1, golden, 0}, {1, golden, 0}, {-1, -golden, 0}, {1, -golden, 0},
		{0, -1, golden}, {0, 1, golden}, {0, -1, -golden}, {0, 1, -golden},
		{golden, 0, -1}, {golden, 0, 1}, {-golden, 0, -1}, {-golden, 0, 1},
	}
	icoFaces = [20][3]int{
		{0, 11, 5}, {0, 5, 1}, {0, 1, 7}, {0, 7, 10}, {0, 10, 11},
		{1, 5, 9}, {5, 11, 4}, {11, 10, 2}, {10, 7, 6}, {7, 1, 8},
		{3, 9, 4}, {3, 4, 2}, {3, 2, 6}, {3, 6, 8}, {3, 8, 9},
		{4, 9, 5}, {2, 4, 11}, {6, 2, 10}, {8, 6, 7}, {9, 8, 1},
	}
)

// IcosaSphere returns a triangulation of the unit sphere obtained by
// splitting each face of an icosahedron into order^2 triangles and
// projecting the vertices on the sphere. It has 10 order^2 + 2 points and
// 20 order^2 triangles.
func IcosaSphere(order int) (points [][3]float64, cells [][3]int) {
	if order < 1 {
		order = 1
	}
	index := make(map[[3]int64]int)
	//vertices shared by neighbouring faces are found by their rounded position
	add := func(p [3]float64) int {
		n := v3.Norm3(p)
		p = [3]float64{p[0] / n, p[1] / n, p[2] / n}
		var key [3]int64
		for k, v := range p {
			key[k] = int64(math.Round(v * 1e9))
		}
		if i, ok := index[key]; ok {
			return i
		}
		index[key] = len(points)
		points = append(points, p)
		return len(points) - 1
	}
	ids := make([][]int, order+1)
	for _, f := range icoFaces {
		a, b, c := icoVerts[f[0]], icoVerts[f[1]], icoVerts[f[2]]
		for i := 0; i <= order; i++ {
			ids[i] = make([]int, order+1-i)
			for j := 0; j <= order-i; j++ {
				s, t := float64(i)/float64(order), float64(j)/float64(order)
				var p [3]float64
				for k := range p {
					p[k] = a[k] + s*(b[k]-a[k]) + t*(c[k]-a[k])
				}
				ids[i][j] = add(p)
			}
		}
		for i := 0; i < order; i++ {
			for j := 0; j < order-i; j++ {
				cells = append(cells, [3]int{ids[i][j], ids[i+1][j], ids[i][j+1]})
				if i+j < order-1 {
					cells = append(cells, [3]int{ids[i+1][j], ids[i+1][j+1], ids[i][j+1]})
				}
			}
		}
	}
	return points, cells
}

// ETheta returns the polar unit vector of the spherical coordinates at each
// point, with the polar angle measured from the z axis.
func ETheta(points [][3]float64) [][3]float64 {
	ret := make([][3]float64, len(points))
	for i, p := range points {
		r := v3.Norm3(p)
		theta := math.Acos(p[2] / r)
		phi := math.Atan2(p[1], p[0])
		ret[i] = [3]float64{math.Cos(theta) * math.Cos(phi), math.Cos(theta) * math.Sin(phi), -math.Sin(theta)}
	}
	return ret
}

/*
 * kdtree.go, part of aLENS-analysis.
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
	"gonum.org/v1/gonum/spatial/kdtree"
)

// point is a position in space tagged with the index of what it represents.
type point struct {
	x   [3]float64
	idx int
}

func (p point) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(point)
	return p.x[d] - q.x[d]
}

func (p point) Dims() int { return 3 }

// Distance returns the squared euclidean distance.
func (p point) Distance(c kdtree.Comparable) float64 {
	q := c.(point)
	var s float64
	for k := range p.x {
		d := p.x[k] - q.x[k]
		s += d * d
	}
	return s
}

type points []point

func (p points) Index(i int) kdtree.Comparable         { return p[i] }
func (p points) Len() int                              { return len(p) }
func (p points) Slice(start, end int) kdtree.Interface { return p[start:end] }
func (p points) Pivot(d kdtree.Dim) int {
	return plane{points: p, Dim: d}.Pivot()
}

// plane sorts points along one dimension.
type plane struct {
	kdtree.Dim
	points
}

func (p plane) Less(i, j int) bool { return p.points[i].x[p.Dim] < p.points[j].x[p.Dim] }
func (p plane) Pivot() int         { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p plane) Slice(start, end int) kdtree.SortSlicer {
	p.points = p.points[start:end]
	return p
}
func (p plane) Swap(i, j int) {
	p.points[i], p.points[j] = p.points[j], p.points[i]
}

// ballTree finds the points within a distance of a query.
type ballTree struct {
	t *kdtree.Tree
}

func newBallTree(pos [][3]float64) *ballTree {
	if len(pos) == 0 {
		return &ballTree{}
	}
	p := make(points, len(pos))
	for i, x := range pos {
		p[i] = point{x: x, idx: i}
	}
	return &ballTree{t: kdtree.New(p, false)}
}

// Query returns the indexes of the points closer than r to q, in no
// particular order.
func (B *ballTree) Query(q [3]float64, r float64) []int {
	if B.t == nil {
		return nil
	}
	keep := kdtree.NewDistKeeper(r * r)
	B.t.NearestSet(keep, point{x: q})
	ret := make([]int, 0, keep.Len())
	for _, c := range keep.Heap {
		//the keeper starts with a sentinel that has no point
		if c.Comparable == nil {
			continue
		}
		ret = append(ret, c.Comparable.(point).idx)
	}
	return ret
}

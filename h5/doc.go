/*
 * doc.go, part of aLENS-analysis.
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

/*
Package h5 reads the raw data of a simulation from its HDF5 container and
writes analysis results back to HDF5 groups.

A File opened with Open is an alens.Source: raw_data/sylinders,
raw_data/proteins, time and the YAML RunConfig attribute of the root
group. A Group is an alens.Sink that refuses to overwrite datasets.
The package uses the HDF5 C library through cgo.
*/
package h5

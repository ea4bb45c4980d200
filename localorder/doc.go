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
Package localorder computes local order parameters of filaments on a
spherical shell, from the ASCII snapshots of a simulation.

An icosahedral mesh is laid on the mid-radius sphere of the shell. Around
each mesh vertex, the filament segments and crosslinkers within a ball of
radius Rad are collected, and the local volume fraction, nematic order,
polar order and crosslinker densities are computed. Each snapshot gives
one VTU file with those fields on the mesh.
*/
package localorder

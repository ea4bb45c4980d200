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

/*Package alens is the main package of the aLENS-analysis library. It provides
the trajectory and tensor types shared by the analysis packages, the interfaces
through which raw simulation data is read and derived data is persisted, and
the compute backends that schedule embarrassingly parallel numeric loops.

	**Capabilities**

	Reads bead-spring (sylinder) and crosslinker (protein) data from HDF5
	containers (package h5) into a Trajectory of per-frame v3.Matrix.

	Contact matrices, contact kymographs and condensate detection (package contact).

	Pairwise separation tensors, overlap statistics and separation histograms
	(package contact).

	Mean squared displacement, positional, separation and directional
	autocorrelation functions, both by direct summation and by FFT, power
	spectra and response functions (package polystat).

	Crosslinker connectivity matrices and their time autocorrelation, total,
	per-diagonal and per-band (package connect).

	Local volume fraction, nematic and polar order on a spherical shell from
	ASCII frames (package localorder).

	Plots of kymographs, contact maps and correlation functions (package chemplot).

Derived arrays are written through the Sink interface, either into the
"analysis" group of an HDF5 file or into memory.
*/
package alens

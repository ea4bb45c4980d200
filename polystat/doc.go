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
Package polystat computes statistics of a bead polymer trajectory: mean
squared displacement, position, distance and separation autocorrelations
(both directly and through FFTs), power spectra and response functions,
link energies and several distribution histograms.

Every function that loops over lags or beads takes an alens.Backend that
decides how those independent iterations are scheduled. The results do
not depend on the backend.
*/
package polystat

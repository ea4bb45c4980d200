/*
 * provenance.go, part of aLENS-analysis.
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

import "github.com/google/uuid"

// Provenance is a Sink that tags every dataset written through it with the
// same analysis_id attribute, so datasets produced by one invocation can be
// told apart from those of another.
type Provenance struct {
	Sink
	ID string
}

// WithProvenance wraps s, generating a new random analysis ID.
func WithProvenance(s Sink) *Provenance {
	return &Provenance{Sink: s, ID: uuid.NewString()}
}

// WriteDataset adds the analysis_id attribute and forwards to the wrapped Sink.
func (P *Provenance) WriteDataset(name string, data []float64, dims []int, attrs Attrs) error {
	a := make(Attrs, len(attrs)+1)
	for k, v := range attrs {
		a[k] = v
	}
	a["analysis_id"] = P.ID
	return P.Sink.WriteDataset(name, data, dims, a)
}

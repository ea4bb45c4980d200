/*
 * backend.go, part of aLENS-analysis.
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
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Backend decides how the independent iterations of a numeric loop
// (lags, beads, frames) are executed. Every iteration must only write
// its own output slot, so all backends give identical results.
type Backend interface {
	// Do calls f(i) for i in [0, n) and returns the first error.
	Do(n int, f func(i int) error) error
}

// Serial runs the iterations one after the other in the calling goroutine.
type Serial struct{}

// Do runs f for each index in order.
func (Serial) Do(n int, f func(i int) error) error {
	for i := 0; i < n; i++ {
		if err := f(i); err != nil {
			return err
		}
	}
	return nil
}

// Pool runs the iterations in at most Workers goroutines. Workers <= 0
// means one per CPU.
type Pool struct {
	Workers int
}

// Do runs f for each index concurrently and waits for all of them.
func (p Pool) Do(n int, f func(i int) error) error {
	w := p.Workers
	if w <= 0 {
		w = runtime.NumCPU()
	}
	var g errgroup.Group
	g.SetLimit(w)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error { return f(i) })
	}
	return g.Wait()
}

// DefaultBackend is used by the command line tools when nothing else is requested.
var DefaultBackend Backend = Serial{}

// BackendByName returns the backend for "serial"/"cpu" or "pool"/"parallel".
func BackendByName(name string, workers int) (Backend, error) {
	switch name {
	case "", "serial", "cpu":
		return Serial{}, nil
	case "pool", "parallel":
		return Pool{Workers: workers}, nil
	default:
		return nil, NewError("unknown backend "+name, "BackendByName")
	}
}

/*
 * run.go, part of aLENS-analysis.
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
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"

	alens "github.com/sidneyholden1/aLENS-analysis"
)

var lastNumber = regexp.MustCompile(`(\d+)\D*$`)

// snapshotIndex returns the last integer in the file name, or -1.
func snapshotIndex(path string) int {
	m := lastNumber.FindStringSubmatch(filepath.Base(path))
	if m == nil {
		return -1
	}
	i, err := strconv.Atoi(m[1])
	if err != nil {
		return -1
	}
	return i
}

// SnapshotFiles returns the files matching pattern, sorted by the snapshot
// index in their names.
func SnapshotFiles(pattern string) ([]string, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(files, func(i, j int) bool {
		return snapshotIndex(files[i]) < snapshotIndex(files[j])
	})
	return files, nil
}

// OutputPath returns the VTU file written for the snapshot fr.
func (p *Params) OutputPath(fr *Frame) string {
	return filepath.Join(p.Folder, fmt.Sprintf("sphere_%s.vtu", fr.Name))
}

// Process computes the local order of one snapshot file and writes its VTU file.
func Process(file string, p *Params) error {
	fr, err := ReadFrame(file)
	if err != nil {
		return err
	}
	res := Compute(fr, p)
	return WriteVTUFile(p.OutputPath(fr), p.Points, p.Cells, res.Fields())
}

// Run processes every p.Stride-th file on an alens.Pool of workers
// goroutines (one per CPU when workers <= 0). Frames share nothing but p,
// which is only read.
func Run(files []string, p *Params, workers int) error {
	if err := os.MkdirAll(p.Folder, 0o755); err != nil {
		return err
	}
	stride := p.Stride
	if stride <= 0 {
		stride = 1
	}
	var todo []string
	for i := 0; i < len(files); i += stride {
		todo = append(todo, files[i])
	}
	return alens.Pool{Workers: workers}.Do(len(todo), func(i int) error {
		if err := Process(todo[i], p); err != nil {
			return fmt.Errorf("localorder %s: %w", todo[i], err)
		}
		return nil
	})
}

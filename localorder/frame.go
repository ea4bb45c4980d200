/*
 * frame.go, part of aLENS-analysis.
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
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/klauspost/compress/zstd"
)

// Sylinder is a filament of a snapshot.
type Sylinder struct {
	GID         int
	Radius      float64
	Minus, Plus [3]float64
	Group       int
}

// Protein is a crosslinker of a snapshot. Bind holds the gids of the
// filaments bound by each end, -1 for an unbound end.
type Protein struct {
	GID, Tag    int
	Minus, Plus [3]float64
	Bind        [2]int
}

// Frame is one snapshot of the simulation.
type Frame struct {
	Name      string //snapshot name, without the file type prefix and the extensions
	Sylinders []Sylinder
	Proteins  []Protein
}

// zstd decoders don't implement io.ReadCloser.
type zstdCloser struct {
	*zstd.Decoder
}

func (z zstdCloser) Close() error {
	z.Decoder.Close()
	return nil
}

// openText opens a text file, decompressing it if its name ends in .zst
// or .gz. Closing the returned reader closes the file.
func openText(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	switch filepath.Ext(path) {
	case ".zst":
		var d *zstd.Decoder
		d, err = zstd.NewReader(f)
		r = zstdCloser{d}
	case ".gz":
		r, err = gzip.NewReader(f)
	default:
		return f, nil
	}
	if err != nil {
		f.Close()
		return nil, err
	}
	return &stackCloser{ReadCloser: r, under: f}, nil
}

type stackCloser struct {
	io.ReadCloser
	under io.Closer
}

func (s *stackCloser) Close() error {
	s.ReadCloser.Close()
	return s.under.Close()
}

// snapshotName returns the name of a snapshot file without its directory,
// its SylinderAscii_ or ProteinAscii_ prefix, and its extensions.
func snapshotName(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".zst", ".gz", ".dat"} {
		base = strings.TrimSuffix(base, ext)
	}
	for _, pre := range []string{"SylinderAscii_", "ProteinAscii_"} {
		base = strings.TrimPrefix(base, pre)
	}
	return base
}

// ProteinPath returns the path of the crosslinker snapshot that goes with
// the filament snapshot in path.
func ProteinPath(path string) string {
	dir, base := filepath.Split(path)
	return filepath.Join(dir, strings.Replace(base, "SylinderAscii", "ProteinAscii", 1))
}

// readRows calls f with the fields of every line of the file after the two
// header lines. Empty lines are skipped.
func readRows(path string, f func(line int, fields []string) error) error {
	r, err := openText(path)
	if err != nil {
		return err
	}
	defer r.Close()
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		if line <= 2 {
			continue
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := f(line, fields); err != nil {
			return fmt.Errorf("%s:%d: %w", path, line, err)
		}
	}
	return sc.Err()
}

func parseFloats(fields []string, dst []float64) error {
	for i := range dst {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

func parseInts(fields []string, dst []int) error {
	for i := range dst {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return err
		}
		dst[i] = v
	}
	return nil
}

// ReadFrame reads a SylinderAscii snapshot, with rows
// "C gid radius mx my mz px py pz [group]", and the ProteinAscii snapshot
// next to it, with rows "P gid tag mx my mz px py pz idbind0 idbind1".
func ReadFrame(path string) (*Frame, error) {
	fr := &Frame{Name: snapshotName(path)}
	err := readRows(path, func(_ int, fields []string) error {
		if len(fields) < 9 {
			return fmt.Errorf("sylinder line with %d fields", len(fields))
		}
		var s Sylinder
		var id [1]int
		if err := parseInts(fields[1:2], id[:]); err != nil {
			return err
		}
		var x [7]float64
		if err := parseFloats(fields[2:9], x[:]); err != nil {
			return err
		}
		s.GID, s.Radius = id[0], x[0]
		copy(s.Minus[:], x[1:4])
		copy(s.Plus[:], x[4:7])
		if len(fields) > 9 {
			g, err := strconv.Atoi(fields[9])
			if err != nil {
				return err
			}
			s.Group = g
		}
		fr.Sylinders = append(fr.Sylinders, s)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadFrame: %w", err)
	}
	err = readRows(ProteinPath(path), func(_ int, fields []string) error {
		if len(fields) < 11 {
			return fmt.Errorf("protein line with %d fields", len(fields))
		}
		var p Protein
		var ids [2]int
		if err := parseInts(fields[1:3], ids[:]); err != nil {
			return err
		}
		var x [6]float64
		if err := parseFloats(fields[3:9], x[:]); err != nil {
			return err
		}
		if err := parseInts(fields[9:11], p.Bind[:]); err != nil {
			return err
		}
		p.GID, p.Tag = ids[0], ids[1]
		copy(p.Minus[:], x[0:3])
		copy(p.Plus[:], x[3:6])
		fr.Proteins = append(fr.Proteins, p)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("ReadFrame: %w", err)
	}
	return fr, nil
}

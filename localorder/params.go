/*
 * params.go, part of aLENS-analysis.
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
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"
)

// Boundary is a spherical boundary of the simulation.
type Boundary struct {
	Radius float64   `yaml:"radius"`
	Center []float64 `yaml:"center"`
}

// RunConfig holds the part of the simulation configuration needed here.
type RunConfig struct {
	Boundaries []Boundary `yaml:"boundaries"`
}

// Check returns an error if there are not two boundaries with a 3D center
// for the first one.
func (c *RunConfig) Check() error {
	if len(c.Boundaries) < 2 {
		return fmt.Errorf("at least 2 boundaries needed, %d found", len(c.Boundaries))
	}
	if len(c.Boundaries[0].Center) != 3 {
		return fmt.Errorf("the center of the first boundary must have 3 components")
	}
	return nil
}

// ReadRunConfig reads and checks a YAML run configuration file.
func ReadRunConfig(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := new(RunConfig)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("ReadRunConfig %s: %w", path, err)
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("ReadRunConfig %s: %w", path, err)
	}
	return c, nil
}

// Params are the parameters of a local order calculation, and the mesh
// where it is computed.
type Params struct {
	Rad    float64 //radius of the sampling balls
	NSeg   int     //segments per filament
	Stride int     //snapshot stride
	Folder string  //output directory

	// VolAve is the volume of a cylinder of radius Rad spanning the shell.
	VolAve float64

	Points [][3]float64 //mesh vertices, on the mid-radius sphere
	Cells  [][3]int
	ETheta [][3]float64
}

// Default values of the command line flags.
const (
	DefaultRad    = .25
	DefaultNSeg   = 20
	DefaultMesh   = 50
	DefaultStride = 100
	DefaultFolder = "LocalOrder"
)

// NewParams builds the parameters for a shell between the first two
// boundaries of conf, with an icosahedral mesh of the given order.
func NewParams(conf *RunConfig, rad float64, nseg, meshOrder, stride int) (*Params, error) {
	if err := conf.Check(); err != nil {
		return nil, fmt.Errorf("NewParams: %w", err)
	}
	if rad <= 0 || nseg <= 0 {
		return nil, fmt.Errorf("NewParams: rad and nseg must be positive")
	}
	r0, r1 := conf.Boundaries[0].Radius, conf.Boundaries[1].Radius
	c := conf.Boundaries[0].Center
	rc := (r0 + r1) * .5
	p := &Params{Rad: rad, NSeg: nseg, Stride: stride, Folder: DefaultFolder}
	p.VolAve = math.Pi * rad * rad * math.Abs(r1-r0)
	if p.VolAve == 0 {
		return nil, fmt.Errorf("NewParams: the shell has no thickness")
	}
	pts, cells := IcosaSphere(meshOrder)
	p.ETheta = ETheta(pts)
	for i, v := range pts {
		pts[i] = [3]float64{v[0]*rc + c[0], v[1]*rc + c[1], v[2]*rc + c[2]}
	}
	p.Points, p.Cells = pts, cells
	log.Printf("localorder: rad %g, nseg %d, volAve %g, %d mesh points on radius %g", rad, nseg, p.VolAve, len(pts), rc)
	return p, nil
}

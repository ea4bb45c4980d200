/*
 * runconfig.go, part of aLENS-analysis.
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
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// RunConfig holds the parameters of a simulation, as stored (YAML-serialized)
// in the RunConfig attribute of the raw data file. Only the keys used by the
// analysis are decoded, the rest are kept in Other.
type RunConfig struct {
	// LinkKappa is the spring constant of the links between consecutive beads.
	LinkKappa float64 `yaml:"linkKappa"`

	// KBT is the thermal energy.
	KBT float64 `yaml:"KBT"`

	// LinkGap is the rest gap between the surfaces of consecutive beads.
	LinkGap float64 `yaml:"linkGap"`

	// SimBoxLow and SimBoxHigh are the corners of the simulation box.
	SimBoxLow  []float64 `yaml:"simBoxLow"`
	SimBoxHigh []float64 `yaml:"simBoxHigh"`

	// SylinderDiameter is the characteristic bead diameter.
	SylinderDiameter float64 `yaml:"sylinderDiameter"`

	Other map[string]interface{} `yaml:",inline"`

	present map[string]bool
}

// requiredKeys are the keys without which no analysis can run.
var requiredKeys = []string{"linkKappa", "KBT", "linkGap", "simBoxLow", "simBoxHigh", "sylinderDiameter"}

// ParseRunConfig decodes a YAML run configuration and checks it.
func ParseRunConfig(b []byte) (*RunConfig, error) {
	c := new(RunConfig)
	if err := yaml.Unmarshal(b, c); err != nil {
		return nil, fmt.Errorf("ParseRunConfig: %w", err)
	}
	var keys map[string]interface{}
	if err := yaml.Unmarshal(b, &keys); err != nil {
		return nil, fmt.Errorf("ParseRunConfig: %w", err)
	}
	c.present = make(map[string]bool, len(keys))
	for k := range keys {
		c.present[k] = true
	}
	if err := c.Check(); err != nil {
		return nil, fmt.Errorf("ParseRunConfig: %w", err)
	}
	return c, nil
}

// ReadRunConfig reads and parses a YAML run configuration file.
func ReadRunConfig(path string) (*RunConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseRunConfig(b)
}

// Check returns an error wrapping ErrMissingKey if a required key was not in
// the decoded document, or an error if a field doesn't meet the requirements.
// A RunConfig built by hand (not decoded) is only checked for its values.
func (c *RunConfig) Check() error {
	if c.present != nil {
		for _, k := range requiredKeys {
			if !c.present[k] {
				return fmt.Errorf("%w: %s", ErrMissingKey, k)
			}
		}
	}
	if len(c.SimBoxLow) != 3 || len(c.SimBoxHigh) != 3 {
		return fmt.Errorf("simBoxLow and simBoxHigh must have 3 elements")
	}
	if c.SylinderDiameter <= 0 {
		return fmt.Errorf("sylinderDiameter must be greater than 0")
	}
	return nil
}

// BoxLow returns the low corner of the simulation box.
func (c *RunConfig) BoxLow() [3]float64 {
	return [3]float64{c.SimBoxLow[0], c.SimBoxLow[1], c.SimBoxLow[2]}
}

// BoxHigh returns the high corner of the simulation box.
func (c *RunConfig) BoxHigh() [3]float64 {
	return [3]float64{c.SimBoxHigh[0], c.SimBoxHigh[1], c.SimBoxHigh[2]}
}

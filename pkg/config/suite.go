/*
 * Copyright (C) 2023 IBM, Inc.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 *
 */

package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// Suite describes one benchmark scenario in YAML, an alternative to
// spelling everything out as flags.
type Suite struct {
	Strides     []int  `yaml:"strides"`
	PrefixFile  string `yaml:"prefixFile"`
	AddressFile string `yaml:"addressFile"`
	Count       int    `yaml:"count"`
	// Seed is a pointer so a suite can request seed 0 explicitly; nil
	// means "not set, keep the flag value".
	Seed      *int64 `yaml:"seed"`
	OutputDir string `yaml:"outputDir"`
}

// LoadSuite reads and parses a suite file.
func LoadSuite(fileName string) (*Suite, error) {
	log.Debugf("entering LoadSuite, fileName = %s", fileName)
	raw, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot read suite file")
	}
	suite := &Suite{}
	if err := yaml.UnmarshalStrict(raw, suite); err != nil {
		return nil, errors.Wrapf(err, "cannot parse suite file %s", fileName)
	}
	return suite, nil
}

// Apply copies the suite's non-zero fields over the options. Flags
// already set keep their values for fields the suite leaves out.
func (s *Suite) Apply(o *Options) {
	if len(s.Strides) > 0 {
		parts := make([]string, 0, len(s.Strides))
		for _, stride := range s.Strides {
			parts = append(parts, strconv.Itoa(stride))
		}
		o.Strides = strings.Join(parts, ",")
	}
	if s.PrefixFile != "" {
		o.PrefixFile = s.PrefixFile
	}
	if s.AddressFile != "" {
		o.AddressFile = s.AddressFile
	}
	if s.Count > 0 {
		o.Count = s.Count
	}
	if s.Seed != nil {
		o.Seed = *s.Seed
	}
	if s.OutputDir != "" {
		o.OutputDir = s.OutputDir
	}
}

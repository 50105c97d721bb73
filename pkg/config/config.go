/*
 * Copyright (C) 2021 IBM, Inc.
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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Opt holds the effective configuration, populated from flags,
// environment and an optional suite file by the CLI.
var Opt = Options{}

type Options struct {
	Stride      int
	Strides     string
	PrefixFile  string
	AddressFile string
	OutputDir   string
	Count       int
	Seed        int64
	MetricsPort int
}

// ParseStrides splits a comma-separated stride list such as "1,2,4,8".
// Validation of the individual values is left to the trie constructor.
func ParseStrides(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	strides := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, errors.Wrapf(err, "bad stride list %q", s)
		}
		strides = append(strides, v)
	}
	return strides, nil
}

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

// Package generator emits uniformly random 32-bit test addresses with a
// fixed seed, so experiment inputs are reproducible run to run.
package generator

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	defaultCount = 1000
	// DefaultSeed keeps generated address sets reproducible across runs.
	DefaultSeed = 42
)

type Generator struct {
	count int
	seed  int64
}

// NewGenerator creates a generator for count addresses from the given
// seed. A non-positive count falls back to the default.
func NewGenerator(count int, seed int64) *Generator {
	log.Debugf("entering NewGenerator, count = %d, seed = %d", count, seed)
	if count <= 0 {
		count = defaultCount
	}
	return &Generator{count: count, seed: seed}
}

// Generate returns count uniformly random 32-bit addresses. The same
// seed always yields the same sequence.
func (g *Generator) Generate() []uint32 {
	r := rand.New(rand.NewSource(g.seed))
	addrs := make([]uint32, g.count)
	for i := range addrs {
		addrs[i] = r.Uint32()
	}
	return addrs
}

// WriteAddresses writes addresses one per line as 0xXXXXXXXX, uppercase
// hex zero-padded to 8 digits, the format LoadAddresses reads back.
func WriteAddresses(w io.Writer, addrs []uint32) error {
	bw := bufio.NewWriter(w)
	for _, addr := range addrs {
		if _, err := fmt.Fprintf(bw, "0x%08X\n", addr); err != nil {
			return errors.Wrap(err, "writing address list")
		}
	}
	return errors.Wrap(bw.Flush(), "writing address list")
}

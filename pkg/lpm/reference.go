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

package lpm

import "fmt"

// Reference is a brute-force longest-prefix-match table: a linear scan
// over every entry per lookup. It is the independent oracle the trie is
// validated against and is deliberately kept trivial; do not optimize
// it.
//
// Tie policy differs from the trie on duplicate-length conflicts: the
// Reference keeps the first entry in table order, the trie keeps the
// last inserted. Tables without exact duplicates make the two agree on
// every address.
type Reference struct {
	entries []Entry
}

// Add appends an entry, normalizing the prefix. Normalization is
// idempotent, so doing it once here is equivalent to normalizing on
// every scan.
func (r *Reference) Add(prefix uint32, length int, nextHop uint32) error {
	if length < 0 || length > 32 {
		return fmt.Errorf("%w: got %d", ErrInvalidLength, length)
	}
	r.entries = append(r.entries, Entry{
		Prefix:  Normalize(prefix, length),
		Length:  length,
		NextHop: nextHop,
	})
	return nil
}

// Size returns the number of table entries.
func (r *Reference) Size() int {
	return len(r.entries)
}

// Lookup scans the whole table and returns the next hop of the longest
// matching prefix, false when nothing matches (including when the table
// holds no default entry).
func (r *Reference) Lookup(addr uint32) (uint32, bool) {
	var best uint32
	bestLen := -1
	for _, e := range r.entries {
		if e.Length == 0 {
			if bestLen < 0 {
				best = e.NextHop
				bestLen = 0
			}
			continue
		}
		mask := uint32(0xFFFFFFFF)
		if e.Length < 32 {
			mask <<= uint(32 - e.Length)
		}
		if addr&mask == e.Prefix&mask && e.Length > bestLen {
			best = e.NextHop
			bestLen = e.Length
		}
	}
	return best, bestLen >= 0
}

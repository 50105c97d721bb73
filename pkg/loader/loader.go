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

// Package loader reads the plain-text prefix table and address list
// formats. A malformed line rejects the whole file: a partially loaded
// LPM table silently changes lookup results, so there is no skip-and-
// continue mode.
package loader

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/netroute/lpm-bench/pkg/lpm"
)

// LoadTable reads a prefix table: one entry per line as
// "<prefix-hex> <length-decimal> <next_hop-decimal>", whitespace
// separated, prefix with or without a 0x prefix and in any alignment.
// Blank lines are ignored.
func LoadTable(fileName string) ([]lpm.Entry, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open prefix table")
	}
	defer func() {
		_ = file.Close()
	}()

	entries := make([]lpm.Entry, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) != 3 {
			return nil, errors.Errorf("%s:%d: expected 3 fields, got %d", fileName, lineNum, len(fields))
		}
		prefix, err := ParseAddress(fields[0])
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad prefix %q", fileName, lineNum, fields[0])
		}
		length, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad length %q", fileName, lineNum, fields[1])
		}
		if length < 0 || length > 32 {
			return nil, errors.Wrapf(lpm.ErrInvalidLength, "%s:%d: got %d", fileName, lineNum, length)
		}
		nextHop, err := strconv.ParseUint(fields[2], 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad next hop %q", fileName, lineNum, fields[2])
		}
		entries = append(entries, lpm.Entry{
			Prefix:  lpm.Normalize(prefix, length),
			Length:  length,
			NextHop: uint32(nextHop),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", fileName)
	}
	log.Infof("loaded %d prefixes from %s", len(entries), fileName)
	return entries, nil
}

// LoadAddresses reads one address per line: a right-aligned 32-bit hex
// value, with or without a 0x/0X prefix. Blank lines are ignored.
func LoadAddresses(fileName string) ([]uint32, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open address list")
	}
	defer func() {
		_ = file.Close()
	}()

	addrs := make([]uint32, 0)
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		addr, err := ParseAddress(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d: bad address %q", fileName, lineNum, line)
		}
		addrs = append(addrs, addr)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading %s", fileName)
	}
	log.Infof("loaded %d addresses from %s", len(addrs), fileName)
	return addrs, nil
}

// ParseAddress parses a 32-bit hex value with an optional 0x/0X prefix.
func ParseAddress(s string) (uint32, error) {
	if len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, err
	}
	return uint32(v), nil
}

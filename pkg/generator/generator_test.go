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

package generator

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenerateReproducible(t *testing.T) {
	a := NewGenerator(100, DefaultSeed).Generate()
	b := NewGenerator(100, DefaultSeed).Generate()
	require.Len(t, a, 100)
	require.Equal(t, a, b)

	c := NewGenerator(100, 7).Generate()
	require.NotEqual(t, a, c)
}

func TestGenerateDefaultCount(t *testing.T) {
	require.Len(t, NewGenerator(0, DefaultSeed).Generate(), defaultCount)
	require.Len(t, NewGenerator(-5, DefaultSeed).Generate(), defaultCount)
}

func TestWriteAddressesFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteAddresses(&buf, []uint32{0, 0xDEADBEEF, 0x00000001}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	require.Equal(t, "0x00000000", lines[0])
	require.Equal(t, "0xDEADBEEF", lines[1])
	require.Equal(t, "0x00000001", lines[2])

	format := regexp.MustCompile(`^0x[0-9A-F]{8}$`)
	for _, line := range lines {
		require.Regexp(t, format, line)
	}
}

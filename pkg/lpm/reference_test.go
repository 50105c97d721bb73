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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReferenceEmptyTable(t *testing.T) {
	ref := &Reference{}
	require.Equal(t, 0, ref.Size())
	_, ok := ref.Lookup(0x01020304)
	require.False(t, ok)
}

func TestReferenceInvalidLength(t *testing.T) {
	ref := &Reference{}
	require.ErrorIs(t, ref.Add(0, -1, 1), ErrInvalidLength)
	require.ErrorIs(t, ref.Add(0, 33, 1), ErrInvalidLength)
}

func TestReferenceLongestWins(t *testing.T) {
	ref := &Reference{}
	require.NoError(t, ref.Add(0, 0, 1))
	require.NoError(t, ref.Add(0x0A000000, 8, 2))
	require.NoError(t, ref.Add(0x0A0A0000, 16, 3))

	nh, ok := ref.Lookup(0x0A0A1234)
	require.True(t, ok)
	require.Equal(t, uint32(3), nh)

	nh, ok = ref.Lookup(0x0A0B1234)
	require.True(t, ok)
	require.Equal(t, uint32(2), nh)

	nh, ok = ref.Lookup(0x0B000000)
	require.True(t, ok)
	require.Equal(t, uint32(1), nh)
}

func TestReferenceNoDefaultNoMatch(t *testing.T) {
	ref := &Reference{}
	require.NoError(t, ref.Add(0x0A000000, 8, 2))
	_, ok := ref.Lookup(0x0B000000)
	require.False(t, ok)
}

func TestReferenceDuplicateFirstWins(t *testing.T) {
	ref := &Reference{}
	require.NoError(t, ref.Add(0x0A000000, 8, 1))
	require.NoError(t, ref.Add(0x0A000000, 8, 2))
	nh, ok := ref.Lookup(0x0A112233)
	require.True(t, ok)
	require.Equal(t, uint32(1), nh)

	// length-0 duplicates follow the same table-order rule
	require.NoError(t, ref.Add(0, 0, 7))
	require.NoError(t, ref.Add(0, 0, 8))
	nh, ok = ref.Lookup(0xF0000000)
	require.True(t, ok)
	require.Equal(t, uint32(7), nh)
}

func TestReferenceNormalizesCompactPrefixes(t *testing.T) {
	ref := &Reference{}
	require.NoError(t, ref.Add(0x0A, 8, 5))
	nh, ok := ref.Lookup(0x0A636465)
	require.True(t, ok)
	require.Equal(t, uint32(5), nh)
}

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

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatHop(t *testing.T) {
	require.Equal(t, "7", formatHop(7, true))
	require.Equal(t, "0", formatHop(0, true))
	require.Equal(t, "no match", formatHop(0, false))
}

func TestGatherAddresses(t *testing.T) {
	addrs, err := gatherAddresses([]string{"0x01020304", "C0A80101"})
	require.NoError(t, err)
	require.Equal(t, []uint32{0x01020304, 0xC0A80101}, addrs)

	addrs, err = gatherAddresses(nil)
	require.NoError(t, err)
	require.Empty(t, addrs)

	_, err = gatherAddresses([]string{"0x01020304", "not-hex"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "not-hex")
}

func TestVerifySummary(t *testing.T) {
	require.Equal(t, "correct: 3/4 (75.00%)", verifySummary(3, 4))
	require.Equal(t, "correct: 5/5 (100.00%)", verifySummary(5, 5))
	// an empty address set must not divide by zero
	require.Equal(t, "correct: 0/0 (100.00%)", verifySummary(0, 0))
}

func TestSubcommandsRegistered(t *testing.T) {
	initFlags()
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "lookup", "verify", "bench", "print"} {
		require.True(t, names[want], "missing subcommand %s", want)
	}
	require.NotNil(t, lookupCmd.Flags().Lookup("addr"))
}

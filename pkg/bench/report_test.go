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

package bench

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func sampleResult() Result {
	timings := []int64{100, 200, 300}
	return Result{
		Stride:         4,
		Prefixes:       10,
		NodeCount:      42,
		EstimatedBytes: 6048,
		Timings:        timings,
		Stats:          ComputeStats(timings),
	}
}

func TestWriteSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteSummary(&buf, []Result{sampleResult()}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Contains(t, lines[0], "stride")
	require.Contains(t, lines[0], "est_bytes")
	require.Contains(t, lines[0], "std_ns")
	fields := strings.Fields(lines[1])
	require.Equal(t, []string{"4", "42", "6048", "3", "100", "300", "200.00", "81.65"}, fields)
}

func TestWriteResultCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteResultCSV(dir, sampleResult())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "results_stride_4.csv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(content), "\n"), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "stride,node_count,estimated_bytes,min_ns,max_ns,avg_ns,std_ns", lines[0])
	require.Equal(t, "4,42,6048,100,300,200.00,81.65", lines[1])
}

func TestWriteTimingsCSV(t *testing.T) {
	dir := t.TempDir()
	path, err := WriteTimingsCSV(dir, sampleResult())
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(path, "lookup_times_stride_4.csv"))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "lookup_time_ns\n100\n200\n300\n", string(content))
}

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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestComputeStatsEmpty(t *testing.T) {
	require.Equal(t, Stats{}, ComputeStats(nil))
	require.Equal(t, Stats{}, ComputeStats([]int64{}))
}

func TestComputeStats(t *testing.T) {
	s := ComputeStats([]int64{1, 2, 3, 4})
	require.Equal(t, 4, s.Count)
	require.Equal(t, int64(1), s.MinNs)
	require.Equal(t, int64(4), s.MaxNs)
	require.Equal(t, int64(10), s.SumNs)
	require.InDelta(t, 2.5, s.AvgNs, 1e-9)
	// population standard deviation
	require.InDelta(t, math.Sqrt(1.25), s.StdNs, 1e-9)
}

func TestComputeStatsConstantSeries(t *testing.T) {
	s := ComputeStats([]int64{7, 7, 7})
	require.Equal(t, int64(7), s.MinNs)
	require.Equal(t, int64(7), s.MaxNs)
	require.InDelta(t, 7.0, s.AvgNs, 1e-9)
	require.Zero(t, s.StdNs)
}

func TestComputeStatsSingleSample(t *testing.T) {
	s := ComputeStats([]int64{42})
	require.Equal(t, 1, s.Count)
	require.Equal(t, int64(42), s.MinNs)
	require.Equal(t, int64(42), s.MaxNs)
	require.InDelta(t, 42.0, s.AvgNs, 1e-9)
	require.Zero(t, s.StdNs)
}

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

import "math"

// Stats summarizes a series of per-lookup latencies in nanoseconds.
// StdDev is the population standard deviation.
type Stats struct {
	Count int
	MinNs int64
	MaxNs int64
	AvgNs float64
	StdNs float64
	SumNs int64
}

// ComputeStats reduces raw nanosecond samples to summary statistics.
// An empty series yields the zero value.
func ComputeStats(samples []int64) Stats {
	if len(samples) == 0 {
		return Stats{}
	}
	s := Stats{
		Count: len(samples),
		MinNs: samples[0],
		MaxNs: samples[0],
	}
	for _, v := range samples {
		s.SumNs += v
		if v < s.MinNs {
			s.MinNs = v
		}
		if v > s.MaxNs {
			s.MaxNs = v
		}
	}
	s.AvgNs = float64(s.SumNs) / float64(s.Count)

	variance := 0.0
	for _, v := range samples {
		d := float64(v) - s.AvgNs
		variance += d * d
	}
	variance /= float64(s.Count)
	s.StdNs = math.Sqrt(variance)
	return s
}

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
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// WriteSummary writes one aligned text row per stride.
func WriteSummary(w io.Writer, results []Result) error {
	if _, err := fmt.Fprintf(w, "%-8s %-10s %-14s %-10s %-10s %-10s %-12s %-12s\n",
		"stride", "nodes", "est_bytes", "lookups", "min_ns", "max_ns", "avg_ns", "std_ns"); err != nil {
		return errors.Wrap(err, "writing summary")
	}
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%-8d %-10d %-14d %-10d %-10d %-10d %-12.2f %-12.2f\n",
			r.Stride, r.NodeCount, r.EstimatedBytes, r.Stats.Count,
			r.Stats.MinNs, r.Stats.MaxNs, r.Stats.AvgNs, r.Stats.StdNs); err != nil {
			return errors.Wrap(err, "writing summary")
		}
	}
	return nil
}

// WriteResultCSV writes the per-stride summary row to
// results_stride_<s>.csv under dir and returns the file path.
func WriteResultCSV(dir string, r Result) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("results_stride_%d.csv", r.Stride))
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating results csv")
	}
	defer func() {
		_ = file.Close()
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "stride,node_count,estimated_bytes,min_ns,max_ns,avg_ns,std_ns")
	fmt.Fprintf(w, "%d,%d,%d,%d,%d,%.2f,%.2f\n",
		r.Stride, r.NodeCount, r.EstimatedBytes,
		r.Stats.MinNs, r.Stats.MaxNs, r.Stats.AvgNs, r.Stats.StdNs)
	if err := w.Flush(); err != nil {
		return "", errors.Wrap(err, "writing results csv")
	}
	log.Infof("results saved to %s", path)
	return path, nil
}

// WriteTimingsCSV writes the raw per-lookup timing series to
// lookup_times_stride_<s>.csv under dir and returns the file path.
func WriteTimingsCSV(dir string, r Result) (string, error) {
	path := filepath.Join(dir, fmt.Sprintf("lookup_times_stride_%d.csv", r.Stride))
	file, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "creating timings csv")
	}
	defer func() {
		_ = file.Close()
	}()

	w := bufio.NewWriter(file)
	fmt.Fprintln(w, "lookup_time_ns")
	for _, t := range r.Timings {
		fmt.Fprintln(w, t)
	}
	if err := w.Flush(); err != nil {
		return "", errors.Wrap(err, "writing timings csv")
	}
	log.Infof("detailed lookup times saved to %s", path)
	return path, nil
}

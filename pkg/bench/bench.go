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

// Package bench builds one trie per configured stride from a shared
// prefix table, times every lookup against a shared address set and
// reduces the timings to per-stride reports. It also cross-checks trie
// results against the linear-scan reference oracle.
package bench

import (
	"strconv"

	"github.com/benbjohnson/clock"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"

	"github.com/netroute/lpm-bench/pkg/lpm"
	operationalMetrics "github.com/netroute/lpm-bench/pkg/operational/metrics"
)

var (
	lookupsTotal = operationalMetrics.NewCounterVec(prometheus.CounterOpts{
		Name: "lpmbench_lookups_total",
		Help: "Number of trie lookups performed, by stride",
	}, []string{"stride"})
	trieNodes = operationalMetrics.NewGaugeVec(prometheus.GaugeOpts{
		Name: "lpmbench_trie_nodes",
		Help: "Number of nodes in the most recently built trie, by stride",
	}, []string{"stride"})
	verifyMismatches = operationalMetrics.NewCounter(prometheus.CounterOpts{
		Name: "lpmbench_verify_mismatches_total",
		Help: "Number of trie lookups that disagreed with the reference oracle",
	})
)

// ErrAborted is returned when a run is interrupted by a signal before
// all strides complete.
var ErrAborted = errors.New("benchmark aborted by signal")

// Result holds everything measured for one stride.
type Result struct {
	Stride         int
	Prefixes       int
	NodeCount      int
	EstimatedBytes uint64
	Timings        []int64
	Stats          Stats
}

// Runner sweeps a set of strides over one table and one address set.
type Runner struct {
	strides  []int
	table    []lpm.Entry
	addrs    []uint32
	clock    clock.Clock
	exitChan <-chan struct{}
}

// NewRunner creates a benchmark runner. A nil or empty strides slice
// sweeps all valid strides.
func NewRunner(strides []int, table []lpm.Entry, addrs []uint32) *Runner {
	log.Debugf("entering NewRunner, strides = %v, %d prefixes, %d addresses",
		strides, len(table), len(addrs))
	if len(strides) == 0 {
		strides = []int{1, 2, 4, 8}
	}
	return &Runner{
		strides: strides,
		table:   table,
		addrs:   addrs,
		clock:   clock.New(),
	}
}

// WithClock substitutes the wall clock, for tests.
func (r *Runner) WithClock(c clock.Clock) *Runner {
	r.clock = c
	return r
}

// WithExitChannel makes Run return early with ErrAborted once ch is
// closed.
func (r *Runner) WithExitChannel(ch <-chan struct{}) *Runner {
	r.exitChan = ch
	return r
}

// BuildTrie constructs a trie at the given stride from the runner's
// table, in table order.
func (r *Runner) BuildTrie(stride int) (*lpm.Trie, error) {
	trie, err := lpm.New(stride)
	if err != nil {
		return nil, err
	}
	for _, e := range r.table {
		if err := trie.Insert(e.Prefix, e.Length, e.NextHop); err != nil {
			return nil, errors.Wrapf(err, "inserting %s", e)
		}
	}
	trieNodes.WithLabelValues(strconv.Itoa(stride)).Set(float64(trie.NodeCount()))
	return trie, nil
}

// Run executes the sweep and returns one Result per stride, in the
// configured order.
func (r *Runner) Run() ([]Result, error) {
	results := make([]Result, 0, len(r.strides))
	for _, stride := range r.strides {
		res, err := r.runStride(stride)
		if err != nil {
			return results, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) runStride(stride int) (Result, error) {
	log.Infof("benchmarking stride %d", stride)
	trie, err := r.BuildTrie(stride)
	if err != nil {
		return Result{}, err
	}
	log.Infof("built trie: stride = %d, nodes = %d, estimated bytes = %d",
		stride, trie.NodeCount(), trie.EstimateMemory())

	lookups := lookupsTotal.WithLabelValues(strconv.Itoa(stride))
	timings := make([]int64, 0, len(r.addrs))
	for i, addr := range r.addrs {
		if r.exitChan != nil && i%1024 == 0 {
			select {
			case <-r.exitChan:
				return Result{}, ErrAborted
			default:
			}
		}
		start := r.clock.Now()
		trie.Lookup(addr)
		timings = append(timings, r.clock.Now().Sub(start).Nanoseconds())
	}
	lookups.Add(float64(len(r.addrs)))

	return Result{
		Stride:         stride,
		Prefixes:       len(r.table),
		NodeCount:      trie.NodeCount(),
		EstimatedBytes: trie.EstimateMemory(),
		Timings:        timings,
		Stats:          ComputeStats(timings),
	}, nil
}

// Mismatch is one address where trie and reference disagreed. A Has*
// flag false means that side found no match.
type Mismatch struct {
	Addr    uint32
	TrieNH  uint32
	TrieHas bool
	RefNH   uint32
	RefHas  bool
}

// Verify builds a trie at the given stride and checks every address
// against the reference oracle built from the same table in the same
// order.
func (r *Runner) Verify(stride int) ([]Mismatch, error) {
	trie, err := r.BuildTrie(stride)
	if err != nil {
		return nil, err
	}
	ref := &lpm.Reference{}
	for _, e := range r.table {
		if err := ref.Add(e.Prefix, e.Length, e.NextHop); err != nil {
			return nil, errors.Wrapf(err, "adding %s to reference", e)
		}
	}

	mismatches := make([]Mismatch, 0)
	for _, addr := range r.addrs {
		gotNH, gotOK := trie.Lookup(addr)
		wantNH, wantOK := ref.Lookup(addr)
		if gotOK != wantOK || (gotOK && gotNH != wantNH) {
			verifyMismatches.Inc()
			log.Errorf("mismatch: addr 0x%08X trie (%d,%v) reference (%d,%v)",
				addr, gotNH, gotOK, wantNH, wantOK)
			mismatches = append(mismatches, Mismatch{
				Addr: addr, TrieNH: gotNH, TrieHas: gotOK, RefNH: wantNH, RefHas: wantOK,
			})
		}
	}
	return mismatches, nil
}

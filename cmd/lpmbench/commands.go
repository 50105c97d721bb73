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
	"fmt"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/netroute/lpm-bench/pkg/bench"
	"github.com/netroute/lpm-bench/pkg/config"
	"github.com/netroute/lpm-bench/pkg/generator"
	"github.com/netroute/lpm-bench/pkg/loader"
	"github.com/netroute/lpm-bench/pkg/lpm"
	"github.com/netroute/lpm-bench/pkg/utils"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a seeded random address file",
	Run: func(_ *cobra.Command, _ []string) {
		runGenerate()
	},
}

// lookupAddrs collects repeated --addr flag values for the lookup
// subcommand, merged with any positional arguments.
var lookupAddrs []string

var lookupCmd = &cobra.Command{
	Use:   "lookup [address...]",
	Short: "Resolve addresses against a trie built from the prefix table",
	Run: func(_ *cobra.Command, args []string) {
		runLookup(args)
	},
}

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Cross-check trie lookups against the linear-scan reference",
	Run: func(_ *cobra.Command, _ []string) {
		runVerify()
	},
}

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark lookups across strides and write CSV reports",
	Run: func(_ *cobra.Command, _ []string) {
		runBench()
	},
}

var printCmd = &cobra.Command{
	Use:   "print",
	Short: "Dump the trie structure",
	Run: func(_ *cobra.Command, _ []string) {
		runPrint()
	},
}

func runGenerate() {
	startRun()
	if config.Opt.AddressFile == "" {
		log.Fatal("generate requires --address-file as the output path")
	}
	addrs := generator.NewGenerator(config.Opt.Count, config.Opt.Seed).Generate()
	file, err := os.Create(config.Opt.AddressFile)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		_ = file.Close()
	}()
	if err := generator.WriteAddresses(file, addrs); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("generated %d addresses into %s\n", len(addrs), config.Opt.AddressFile)
}

func buildTrie() *lpm.Trie {
	entries, err := loader.LoadTable(config.Opt.PrefixFile)
	if err != nil {
		log.Fatal(err)
	}
	trie, err := lpm.New(config.Opt.Stride)
	if err != nil {
		log.Fatal(err)
	}
	for _, e := range entries {
		if err := trie.Insert(e.Prefix, e.Length, e.NextHop); err != nil {
			log.Fatalf("inserting %s: %v", e, err)
		}
	}
	fmt.Printf("built trie with stride %d from %s (%d prefixes inserted)\n",
		config.Opt.Stride, config.Opt.PrefixFile, len(entries))
	fmt.Printf("node count: %d\n", trie.NodeCount())
	fmt.Printf("estimated memory: %d bytes\n", trie.EstimateMemory())
	return trie
}

func runLookup(args []string) {
	startRun()
	trie := buildTrie()

	raw := make([]string, 0, len(lookupAddrs)+len(args))
	raw = append(raw, lookupAddrs...)
	raw = append(raw, args...)
	addrs, err := gatherAddresses(raw)
	if err != nil {
		log.Fatal(err)
	}
	if config.Opt.AddressFile != "" {
		fromFile, err := loader.LoadAddresses(config.Opt.AddressFile)
		if err != nil {
			log.Fatal(err)
		}
		addrs = append(addrs, fromFile...)
	}
	if len(addrs) == 0 {
		log.Fatal("lookup requires addresses as arguments, --addr or --address-file")
	}

	for _, addr := range addrs {
		if nh, ok := trie.Lookup(addr); ok {
			fmt.Printf("0x%08X -> next_hop=%d\n", addr, nh)
		} else {
			fmt.Printf("0x%08X -> no match\n", addr)
		}
	}
}

func gatherAddresses(raw []string) ([]uint32, error) {
	addrs := make([]uint32, 0, len(raw))
	for _, r := range raw {
		addr, err := loader.ParseAddress(r)
		if err != nil {
			return nil, errors.Wrapf(err, "bad address %q", r)
		}
		addrs = append(addrs, addr)
	}
	return addrs, nil
}

func loadOrGenerateAddresses() []uint32 {
	if config.Opt.AddressFile != "" {
		addrs, err := loader.LoadAddresses(config.Opt.AddressFile)
		if err != nil {
			log.Fatal(err)
		}
		return addrs
	}
	log.Infof("no address file given, generating %d addresses from seed %d",
		config.Opt.Count, config.Opt.Seed)
	return generator.NewGenerator(config.Opt.Count, config.Opt.Seed).Generate()
}

func runVerify() {
	startRun()
	entries, err := loader.LoadTable(config.Opt.PrefixFile)
	if err != nil {
		log.Fatal(err)
	}
	addrs := loadOrGenerateAddresses()

	runner := bench.NewRunner([]int{config.Opt.Stride}, entries, addrs)
	mismatches, err := runner.Verify(config.Opt.Stride)
	if err != nil {
		log.Fatal(err)
	}
	correct := len(addrs) - len(mismatches)
	fmt.Println(verifySummary(correct, len(addrs)))
	if len(mismatches) > 0 {
		for _, m := range mismatches {
			fmt.Printf("mismatch: 0x%08X trie=%s reference=%s\n",
				m.Addr, formatHop(m.TrieNH, m.TrieHas), formatHop(m.RefNH, m.RefHas))
		}
		os.Exit(1)
	}
}

// verifySummary renders the correctness ratio. An empty address set is
// vacuously all-correct rather than a 0/0 division.
func verifySummary(correct, total int) string {
	pct := 100.0
	if total > 0 {
		pct = 100.0 * float64(correct) / float64(total)
	}
	return fmt.Sprintf("correct: %d/%d (%.2f%%)", correct, total, pct)
}

func formatHop(nh uint32, ok bool) string {
	if !ok {
		return "no match"
	}
	return fmt.Sprintf("%d", nh)
}

func runBench() {
	startRun()
	strides, err := config.ParseStrides(config.Opt.Strides)
	if err != nil {
		log.Fatal(err)
	}
	entries, err := loader.LoadTable(config.Opt.PrefixFile)
	if err != nil {
		log.Fatal(err)
	}
	addrs := loadOrGenerateAddresses()

	if err := os.MkdirAll(config.Opt.OutputDir, 0o750); err != nil {
		log.Fatal(err)
	}

	runner := bench.NewRunner(strides, entries, addrs).WithExitChannel(utils.SetupElegantExit())
	results, err := runner.Run()
	if err != nil {
		log.Fatal(err)
	}

	if err := bench.WriteSummary(os.Stdout, results); err != nil {
		log.Fatal(err)
	}
	for _, res := range results {
		if _, err := bench.WriteResultCSV(config.Opt.OutputDir, res); err != nil {
			log.Fatal(err)
		}
		if _, err := bench.WriteTimingsCSV(config.Opt.OutputDir, res); err != nil {
			log.Fatal(err)
		}
	}
}

func runPrint() {
	startRun()
	trie := buildTrie()
	trie.Dump(os.Stdout)
}

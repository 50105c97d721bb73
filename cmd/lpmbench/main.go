/*
 * Copyright (C) 2021 IBM, Inc.
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
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	jsoniter "github.com/json-iterator/go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/netroute/lpm-bench/pkg/config"
	"github.com/netroute/lpm-bench/pkg/utils"
)

var (
	Version            string
	cfgFile            string
	logLevel           string
	suiteFile          string
	envPrefix          = "LPMBENCH"
	defaultCfgFileName = ".lpmbench"
)

// rootCmd represents the root command
var rootCmd = &cobra.Command{
	Use:   "lpmbench",
	Short: "Longest-prefix-match lookup with a multibit trie: build, query, verify, benchmark",
}

// initConfig use config file and ENV variables if set.
func initConfig() {
	v := viper.New()

	if cfgFile != "" {
		// Use config file from the flag.
		v.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal(err)
		}
		// Search config in home directory with name ".lpmbench" (without extension).
		v.AddConfigPath(home)
		v.SetConfigName(defaultCfgFileName)
	}

	// Read environment variables that match prefix
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// If a config file is found, read it in.
	_ = v.ReadInConfig()

	bindFlags(rootCmd, v)

	// initialize logger
	initLogger()

	// a suite file overrides flag/env values for the fields it sets
	if suiteFile != "" {
		suite, err := config.LoadSuite(suiteFile)
		if err != nil {
			log.Fatal(err)
		}
		suite.Apply(&config.Opt)
	}
}

func initLogger() {
	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		ll = log.ErrorLevel
	}
	log.SetLevel(ll)
	log.SetFormatter(&log.TextFormatter{DisableColors: false, FullTimestamp: true, PadLevelText: true})
}

func dumpConfig() {
	configAsJSON, _ := json.MarshalIndent(config.Opt, "", "    ")
	log.Infof("Using configuration:\n%s", configAsJSON)
}

func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if strings.Contains(f.Name, "-") {
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			_ = v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))
		}

		// Apply the viper config value to the flag when the flag is not set and viper has a value
		if !f.Changed && v.IsSet(f.Name) {
			val := v.Get(f.Name)
			switch val.(type) {
			case bool, uint, string, int32, int16, int8, int, uint32, uint64, int64, float64, float32, []string, []int:
				_ = cmd.PersistentFlags().Set(f.Name, fmt.Sprintf("%v", val))
			default:
				var jsonNew = jsoniter.ConfigCompatibleWithStandardLibrary
				b, err := jsonNew.Marshal(&val)
				if err != nil {
					log.Fatalf("can't parse flag %s into json with value %v got error %s", f.Name, val, err)
					return
				}
				_ = cmd.PersistentFlags().Set(f.Name, string(b))
			}
		}
	})
}

func initFlags() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", fmt.Sprintf("config file (default is $HOME/%s)", defaultCfgFileName))
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "error", "Log level: debug, info, warning, error")
	rootCmd.PersistentFlags().StringVar(&suiteFile, "suite", "", "YAML suite file describing a benchmark scenario")
	rootCmd.PersistentFlags().IntVar(&config.Opt.Stride, "stride", 8, "Trie stride in bits: 1, 2, 4 or 8")
	rootCmd.PersistentFlags().StringVar(&config.Opt.Strides, "strides", "1,2,4,8", "Comma-separated stride list for the benchmark sweep")
	rootCmd.PersistentFlags().StringVar(&config.Opt.PrefixFile, "prefix-file", "prefix-list.txt", "Prefix table: <prefix-hex> <length> <next_hop> per line")
	rootCmd.PersistentFlags().StringVar(&config.Opt.AddressFile, "address-file", "", "Address list: one hex address per line")
	rootCmd.PersistentFlags().StringVar(&config.Opt.OutputDir, "output-dir", ".", "Directory for CSV reports")
	rootCmd.PersistentFlags().IntVar(&config.Opt.Count, "count", 0, "Number of addresses to generate")
	rootCmd.PersistentFlags().Int64Var(&config.Opt.Seed, "seed", 42, "Seed for the address generator")
	rootCmd.PersistentFlags().IntVar(&config.Opt.MetricsPort, "metrics-port", 0, "Expose prometheus metrics on this port (0 disables)")

	lookupCmd.Flags().StringSliceVar(&lookupAddrs, "addr", nil, "Address to resolve; repeatable, merged with positional arguments")

	rootCmd.AddCommand(generateCmd, lookupCmd, verifyCmd, benchCmd, printCmd)
}

func main() {
	// Initialize flags (command line parameters)
	initFlags()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func startRun() {
	log.Infof("%s starting - version [%s]", filepath.Base(os.Args[0]), Version)
	dumpConfig()
	utils.StartPromServer(config.Opt.MetricsPort)
}

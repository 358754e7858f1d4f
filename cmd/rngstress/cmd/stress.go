// Licensed to the Apache Software Foundation (ASF) under one or more
// contributor license agreements.  See the NOTICE file distributed with
// this work for additional information regarding copyright ownership.
// The ASF licenses this file to You under the Apache License, Version 2.0
// (the "License"); you may not use this file except in compliance with
// the License.  You may obtain a copy of the License at
//
//    http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
	"github.com/apache/commons-rng-stress/pkg/stress/runner"
)

var (
	stressConfig      string
	stressBattery     string
	stressSources     []string
	stressSeed        uint64
	stressParallelism int
	stressOutput      string
	stressBridge      []string
)

var stressCmd = &cobra.Command{
	Use:   "stress",
	Short: "Run a battery over a set of generators and collect reports",
	Long: `stress runs one battery against each named generator and writes one
report file per run. Campaigns come from a YAML config file or, for
quick runs, from flags alone.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := stressCampaign()
		if err != nil {
			return err
		}
		summary, err := runner.Run(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		if err := summary.Write(cmd.OutOrStdout()); err != nil {
			return err
		}
		if summary.Failed() {
			return errors.New("campaign flagged failures, see reports")
		}
		return nil
	},
}

func stressCampaign() (*runner.Config, error) {
	if stressConfig != "" {
		if stressBattery != "" || len(stressSources) > 0 {
			return nil, errors.New("pass either --config or --battery/--sources, not both")
		}
		return runner.Load(stressConfig)
	}
	cfg := &runner.Config{
		Battery:     stressBattery,
		Sources:     stressSources,
		Seed:        stressSeed,
		Parallelism: stressParallelism,
		Output:      stressOutput,
		Bridge:      stressBridge,
	}
	raw, err := cfg.Marshal()
	if err != nil {
		return nil, err
	}
	// Round-tripping through Parse applies the same defaulting and
	// validation a config file gets.
	return runner.Parse(raw)
}

func init() {
	stressCmd.Flags().StringVar(&stressConfig, "config", "", "campaign config file")
	stressCmd.Flags().StringVar(&stressBattery, "battery", "", "battery name: SmallCrush, Crush or BigCrush")
	stressCmd.Flags().StringSliceVar(&stressSources, "sources", nil, "generator names to stress")
	stressCmd.Flags().Uint64Var(&stressSeed, "seed", 0, "campaign seed; 0 derives one from the clock")
	stressCmd.Flags().IntVar(&stressParallelism, "parallelism", 0, "concurrent runs; 0 means one per CPU")
	stressCmd.Flags().StringVar(&stressOutput, "output", "", "report directory")
	stressCmd.Flags().StringSliceVar(&stressBridge, "bridge", nil, "external bridge argv; empty runs batteries in process")
}

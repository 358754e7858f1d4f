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
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
	"github.com/apache/commons-rng-stress/pkg/stress/rng"
)

var (
	generateSource string
	generateSeed   uint64
	generateCount  int64
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a generator's raw word stream to standard output",
	Long: `generate emits the named generator's words to standard output as
little-endian binary, the layout battery bridges expect on their
standard input:

	rngstress generate --source MT --seed 42 | stdin2testu01 SmallCrush`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		seed := generateSeed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		src, err := rng.New(generateSource, seed)
		if err != nil {
			return err
		}
		r := rng.NewStreamReader(src)
		if generateCount > 0 {
			if _, err := io.CopyN(cmd.OutOrStdout(), r, 4*generateCount); err != nil {
				return errors.Wrap(err, "streaming words")
			}
			return nil
		}
		// Endless stream; ends when the consumer closes the pipe.
		if _, err := io.Copy(cmd.OutOrStdout(), r); err != nil {
			return errors.Wrap(err, "streaming words")
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&generateSource, "source", "", "generator name (see 'rngstress sources')")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", 0, "seed; 0 derives one from the clock")
	generateCmd.Flags().Int64Var(&generateCount, "count", 0, "number of 32-bit words to emit; 0 streams forever")
	if err := generateCmd.MarkFlagRequired("source"); err != nil {
		panic(err)
	}
}

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

// Package cmd contains the commands of the rngstress tool.
package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd is the root of the rngstress command tree.
var RootCmd = &cobra.Command{
	Use:   "rngstress",
	Short: "Stress pseudo-random generators with statistical test batteries",
	Long: `rngstress runs statistical test batteries against the bundled
pseudo-random generators, either in process or by piping generator
output through an external battery bridge such as stdin2testu01.`,
	SilenceUsage: true,
}

func init() {
	RootCmd.AddCommand(sourcesCmd, generateCmd, stressCmd)
}

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

// stdin2testu01 bridges a binary stream of 32-bit words on standard
// input into a test battery. Callers pipe their generator's output into
// it and name the battery to run:
//
//	mygen | stdin2testu01 SmallCrush
//
// The battery name must match exactly; anything else is rejected. The
// summary report is written to standard output.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/apache/commons-rng-stress/pkg/stress/bbattery"
	"github.com/apache/commons-rng-stress/pkg/stress/log"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// runBattery is swapped out in tests to observe dispatch without
// consuming a real word stream.
var runBattery = bbattery.Run

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout))
}

// run validates the argument vector, runs the selected battery over a
// buffered reader on in, writes the report to out, and returns the
// process exit status.
func run(args []string, in io.Reader, out io.Writer) int {
	if len(args) < 2 {
		fmt.Fprintf(out, "Usage:\n")
		fmt.Fprintf(out, "  %v <battery>\n", args[0])
		fmt.Fprintf(out, "Valid <battery> names: 'SmallCrush', 'Crush', 'BigCrush'\n")
		return 1
	}
	battery, err := bbattery.Parse(args[1])
	if err != nil {
		fmt.Fprintf(out, "Unknown specification: %v\n", args[1])
		return 1
	}
	results := runBattery(unif01.NewReader("stdin", in), battery)
	if err := results.Write(out); err != nil {
		log.Errorf(context.Background(), "writing report: %v", err)
		return 1
	}
	return 0
}

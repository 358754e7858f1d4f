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

package main

import (
	"strings"
	"testing"

	"github.com/apache/commons-rng-stress/pkg/stress/bbattery"
	"github.com/apache/commons-rng-stress/pkg/stress/stests"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// stubBattery replaces runBattery and records the dispatch instead of
// drawing from the stream.
type stubBattery struct {
	calls     int
	battery   bbattery.Battery
	generator string
}

func (s *stubBattery) run(g unif01.Gen, b bbattery.Battery) *bbattery.Results {
	s.calls++
	s.battery = b
	s.generator = g.Name()
	return &bbattery.Results{
		Battery:   b,
		Generator: g.Name(),
		Results:   []stests.Result{{Name: "Gap", P: 0.5}},
	}
}

func TestRunUsage(t *testing.T) {
	stub := &stubBattery{}
	runBattery = stub.run
	defer func() { runBattery = bbattery.Run }()

	var out strings.Builder
	if got := run([]string{"stdin2testu01"}, strings.NewReader(""), &out); got != 1 {
		t.Errorf("exit status = %v, want 1", got)
	}
	for _, want := range []string{"Usage:", "'SmallCrush'", "'Crush'", "'BigCrush'"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("usage output missing %q:\n%v", want, out.String())
		}
	}
	if stub.calls != 0 {
		t.Errorf("usage error ran %v batteries, want 0", stub.calls)
	}
}

func TestRunUnknownBattery(t *testing.T) {
	stub := &stubBattery{}
	runBattery = stub.run
	defer func() { runBattery = bbattery.Run }()

	tests := []string{"bigcrush", "SMALLCRUSH", "Crush ", "Medium Crush"}
	for _, name := range tests {
		var out strings.Builder
		if got := run([]string{"stdin2testu01", name}, strings.NewReader(""), &out); got != 1 {
			t.Errorf("run(%q) exit status = %v, want 1", name, got)
		}
		if want := "Unknown specification: " + name; !strings.Contains(out.String(), want) {
			t.Errorf("run(%q) output missing %q:\n%v", name, want, out.String())
		}
	}
	if stub.calls != 0 {
		t.Errorf("unknown names ran %v batteries, want 0", stub.calls)
	}
}

func TestRunDispatch(t *testing.T) {
	tests := []struct {
		arg  string
		want bbattery.Battery
	}{
		{"SmallCrush", bbattery.SmallCrush},
		{"Crush", bbattery.Crush},
		{"BigCrush", bbattery.BigCrush},
	}
	for _, test := range tests {
		t.Run(test.arg, func(t *testing.T) {
			stub := &stubBattery{}
			runBattery = stub.run
			defer func() { runBattery = bbattery.Run }()

			var out strings.Builder
			if got := run([]string{"stdin2testu01", test.arg}, strings.NewReader(""), &out); got != 0 {
				t.Errorf("exit status = %v, want 0", got)
			}
			if stub.calls != 1 {
				t.Fatalf("ran %v batteries, want exactly 1", stub.calls)
			}
			if stub.battery != test.want {
				t.Errorf("dispatched %v, want %v", stub.battery, test.want)
			}
			if stub.generator != "stdin" {
				t.Errorf("generator name = %q, want stdin", stub.generator)
			}
			if want := "Summary results of " + test.arg; !strings.Contains(out.String(), want) {
				t.Errorf("report missing %q:\n%v", want, out.String())
			}
		})
	}
}

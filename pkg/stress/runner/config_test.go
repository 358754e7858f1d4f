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

package runner

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseFull(t *testing.T) {
	raw := `
battery: Crush
seed: 123456789
parallelism: 2
output: reports
sources:
  - MT
  - SPLIT_MIX_64
  - MT
bridge: [./stdin2testu01]
`
	got, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := &Config{
		Battery:     "Crush",
		Seed:        123456789,
		Parallelism: 2,
		Output:      "reports",
		Sources:     []string{"MT", "SPLIT_MIX_64", "MT"},
		Bridge:      []string{"./stdin2testu01"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("config diff (-want, +got):\n%v", d)
	}
}

func TestParseDefaults(t *testing.T) {
	raw := `
battery: SmallCrush
sources: [JDK]
`
	got, err := Parse([]byte(raw))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if got.Seed == 0 {
		t.Error("default seed = 0, want clock-derived")
	}
	if want := runtime.GOMAXPROCS(0); got.Parallelism != want {
		t.Errorf("default parallelism = %v, want %v", got.Parallelism, want)
	}
	if got.Output != "." {
		t.Errorf("default output = %q, want %q", got.Output, ".")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{
			name: "UnknownField",
			raw:  "batttery: SmallCrush\nsources: [JDK]\n",
		},
		{
			name: "MissingBattery",
			raw:  "sources: [JDK]\n",
		},
		{
			name: "CaseMismatchBattery",
			raw:  "battery: smallcrush\nsources: [JDK]\n",
		},
		{
			name: "MissingSources",
			raw:  "battery: SmallCrush\n",
		},
		{
			name: "UnknownSource",
			raw:  "battery: SmallCrush\nsources: [MT, NOT_A_SOURCE]\n",
		},
		{
			name: "NegativeParallelism",
			raw:  "battery: SmallCrush\nsources: [JDK]\nparallelism: -2\n",
		},
		{
			name: "EmptyBridgeCommand",
			raw:  "battery: SmallCrush\nsources: [JDK]\nbridge: [\"\"]\n",
		},
		{
			name: "Garbage",
			raw:  "battery: [not, a, string\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := Parse([]byte(test.raw)); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", test.raw)
			}
		})
	}
}

func TestParseErrorNamesUnknownField(t *testing.T) {
	_, err := Parse([]byte("batttery: SmallCrush\nsources: [JDK]\n"))
	if err == nil {
		t.Fatal("Parse succeeded, want error")
	}
	if !strings.Contains(err.Error(), "batttery") {
		t.Errorf("error %q does not name the unknown field", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := &Config{
		Battery:     "BigCrush",
		Seed:        42,
		Parallelism: 3,
		Output:      "out",
		Sources:     []string{"WELL_512_A"},
	}
	raw, err := cfg.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	got, err := Parse(raw)
	if err != nil {
		t.Fatalf("Parse of marshaled config failed: %v", err)
	}
	if d := cmp.Diff(cfg, got); d != "" {
		t.Errorf("round-trip diff (-want, +got):\n%v", d)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "campaign.yaml")
	raw := "battery: SmallCrush\nseed: 5\nsources: [JDK]\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Battery != "SmallCrush" || cfg.Seed != 5 {
		t.Errorf("loaded config = %+v, want battery SmallCrush seed 5", cfg)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Load of a missing file succeeded, want error")
	}
}

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

package bbattery

import (
	"fmt"
	"io"
	"testing"

	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

type splitMixGen struct {
	state uint64
}

func (g *splitMixGen) Name() string { return "splitmix64" }

func (g *splitMixGen) Uint32() uint32 {
	g.state += 0x9e3779b97f4a7c15
	z := g.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return uint32((z ^ (z >> 31)) >> 32)
}

func (g *splitMixGen) Float64() float64     { return float64(g.Uint32()) / (1 << 32) }
func (g *splitMixGen) Describe(w io.Writer) { fmt.Fprint(w, "SplitMix64 test source") }

var _ unif01.Gen = (*splitMixGen)(nil)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		want    Battery
		wantErr bool
	}{
		{name: "SmallCrush", want: SmallCrush},
		{name: "Crush", want: Crush},
		{name: "BigCrush", want: BigCrush},
		{name: "smallcrush", wantErr: true},
		{name: "BIGCRUSH", wantErr: true},
		{name: "SmallCrush ", wantErr: true},
		{name: "Medium Crush", wantErr: true},
		{name: "", wantErr: true},
	}
	for _, test := range tests {
		got, err := Parse(test.name)
		if test.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) succeeded, want error", test.name)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) failed: %v", test.name, err)
			continue
		}
		if got != test.want {
			t.Errorf("Parse(%q) = %v, want %v", test.name, got, test.want)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		b    Battery
		want string
	}{
		{SmallCrush, "SmallCrush"},
		{Crush, "Crush"},
		{BigCrush, "BigCrush"},
		{Battery(99), "Unknown"},
	}
	for _, test := range tests {
		if got := test.b.String(); got != test.want {
			t.Errorf("Battery(%d).String() = %q, want %q", int(test.b), got, test.want)
		}
	}
}

func TestBatteryComposition(t *testing.T) {
	small, std, big := SmallCrush.Len(), Crush.Len(), BigCrush.Len()
	if small != 10 {
		t.Errorf("SmallCrush has %v statistics, want 10", small)
	}
	if std <= small {
		t.Errorf("Crush has %v statistics, want more than SmallCrush's %v", std, small)
	}
	if big <= std {
		t.Errorf("BigCrush has %v statistics, want more than Crush's %v", big, std)
	}
}

func TestRunSmallCrush(t *testing.T) {
	r := Run(&splitMixGen{state: 42}, SmallCrush)
	if r.Battery != SmallCrush {
		t.Errorf("battery = %v, want SmallCrush", r.Battery)
	}
	if r.Generator != "splitmix64" {
		t.Errorf("generator = %q, want splitmix64", r.Generator)
	}
	if got, want := len(r.Results), SmallCrush.Len(); got != want {
		t.Fatalf("got %v results, want %v", got, want)
	}
	if r.Elapsed <= 0 {
		t.Errorf("elapsed = %v, want > 0", r.Elapsed)
	}
	if got, want := r.Results[0].Name, "BirthdaySpacings"; got != want {
		t.Errorf("first test = %q, want %q", got, want)
	}
	if got, want := r.Results[len(r.Results)-1].Name, "RandomWalk"; got != want {
		t.Errorf("last test = %q, want %q", got, want)
	}
	for _, res := range r.Results {
		if res.P < 0 || res.P > 1 {
			t.Errorf("%v p-value = %v, want within [0, 1]", res.Name, res.P)
		}
	}
}

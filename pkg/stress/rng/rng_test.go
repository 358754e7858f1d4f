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

package rng

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

var _ unif01.BitSource = Source(nil)

func take(src Source, n int) []uint32 {
	out := make([]uint32, n)
	for i := range out {
		out[i] = src.Uint32()
	}
	return out
}

func TestAll(t *testing.T) {
	want := []string{
		"JDK",
		"MT",
		"MT_64",
		"SPLIT_MIX_64",
		"WELL_512_A",
		"XOR_SHIFT_1024_S",
		"XO_SHI_RO_256_SS",
	}
	if d := cmp.Diff(want, All()); d != "" {
		t.Errorf("All() diff (-want, +got):\n%v", d)
	}
}

func TestNewUnknown(t *testing.T) {
	if _, err := New("PCG_MCG_XSH_RR_32", 1); err == nil {
		t.Error("New with an unregistered name succeeded, want error")
	} else if !strings.Contains(err.Error(), "PCG_MCG_XSH_RR_32") {
		t.Errorf("error %q does not name the offending source", err)
	}
}

func TestSourceContract(t *testing.T) {
	for _, name := range All() {
		t.Run(name, func(t *testing.T) {
			a, err := New(name, 99)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if got := a.Name(); got != name {
				t.Errorf("Name() = %q, want %q", got, name)
			}
			b, err := New(name, 99)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if d := cmp.Diff(take(a, 64), take(b, 64)); d != "" {
				t.Errorf("equal seeds diverge (-a, +b):\n%v", d)
			}
			c, err := New(name, 100)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", name, err)
			}
			if d := cmp.Diff(take(b, 64), take(c, 64)); d == "" {
				t.Error("distinct seeds produced identical streams")
			}
		})
	}
}

func TestJDKGolden(t *testing.T) {
	// java.util.Random's documented sequence: new Random(0).nextInt()
	// yields -1155484576, -723955400, 1033096058.
	src, err := New("JDK", 0)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{3139482720, 3571011896, 1033096058}
	if d := cmp.Diff(want, take(src, 3)); d != "" {
		t.Errorf("JDK(0) diff (-want, +got):\n%v", d)
	}
	src, err = New("JDK", 42)
	if err != nil {
		t.Fatal(err)
	}
	// new Random(42).nextInt() yields -1170105035.
	if got, want := src.Uint32(), uint32(3124862261); got != want {
		t.Errorf("JDK(42) first word = %v, want %v", got, want)
	}
}

func TestMTGolden(t *testing.T) {
	src, err := New("MT", 5489)
	if err != nil {
		t.Fatal(err)
	}
	want := []uint32{3499211612, 581869302, 3890346734, 3586334585, 545404204}
	if d := cmp.Diff(want, take(src, 5)); d != "" {
		t.Errorf("MT(5489) diff (-want, +got):\n%v", d)
	}
}

func TestMT64Golden(t *testing.T) {
	src, err := New("MT_64", 5489)
	if err != nil {
		t.Fatal(err)
	}
	// The reference first outputs, each split into two words, high half
	// first.
	want := []uint32{
		0xC96D191C, 0xF6F6AEA6,
		0x401F7AC7, 0x8BC80F1C,
		0xB5EE8CB6, 0xABE457F8,
	}
	if d := cmp.Diff(want, take(src, 6)); d != "" {
		t.Errorf("MT_64(5489) diff (-want, +got):\n%v", d)
	}
}

func TestSplitMix64Golden(t *testing.T) {
	sm := &splitMix64{state: 1234567}
	want := []uint64{6457827717110365317, 3203168211198807973, 9817491932198370423}
	for i, w := range want {
		if got := sm.next(); got != w {
			t.Errorf("SplitMix64(1234567) output %v = %v, want %v", i, got, w)
		}
	}
}

func TestXoshiro256Golden(t *testing.T) {
	g := newXoshiro256From([4]uint64{1, 2, 3, 4})
	want := []uint64{11520, 0, 1509955200}
	for i, w := range want {
		if got := g.next64(); got != w {
			t.Errorf("xoshiro256** output %v = %v, want %v", i, got, w)
		}
	}
}

func TestHalvesOrder(t *testing.T) {
	h := &halves{next: func() uint64 { return 0xDEADBEEF12345678 }}
	if got := h.Uint32(); got != 0xDEADBEEF {
		t.Errorf("first word = %#x, want the high half 0xdeadbeef", got)
	}
	if got := h.Uint32(); got != 0x12345678 {
		t.Errorf("second word = %#x, want the low half 0x12345678", got)
	}
}

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

// Package bbattery assembles the statistical tests into the three named
// batteries and renders their summary reports. A battery consumes a
// unif01.Gen, so it works the same against an in-process generator and
// against the buffered standard-input reader.
package bbattery

import (
	"time"

	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
	"github.com/apache/commons-rng-stress/pkg/stress/stests"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// Battery identifies one of the predefined batteries.
type Battery int

const (
	// SmallCrush is the quick screening battery.
	SmallCrush Battery = iota
	// Crush is the standard battery.
	Crush
	// BigCrush is the most stringent battery.
	BigCrush
)

// String returns the battery's canonical name.
func (b Battery) String() string {
	switch b {
	case SmallCrush:
		return "SmallCrush"
	case Crush:
		return "Crush"
	case BigCrush:
		return "BigCrush"
	default:
		return "Unknown"
	}
}

// Parse maps a battery name to its Battery. Matching is exact and
// case-sensitive; near misses such as "smallcrush" are rejected.
func Parse(name string) (Battery, error) {
	switch name {
	case "SmallCrush":
		return SmallCrush, nil
	case "Crush":
		return Crush, nil
	case "BigCrush":
		return BigCrush, nil
	}
	return 0, errors.Errorf("unknown battery %q", name)
}

// entry is one parameterized test instance of a battery.
type entry func(g unif01.Gen) stests.Result

// entries returns the battery's test instances in execution order.
func (b Battery) entries() []entry {
	switch b {
	case Crush:
		return crush()
	case BigCrush:
		return bigCrush()
	default:
		return smallCrush()
	}
}

// Len returns the number of statistics the battery computes.
func (b Battery) Len() int {
	return len(b.entries())
}

// smallCrush mirrors the classic quick battery: one instance of each of
// the ten core tests, sized to finish fast.
func smallCrush() []entry {
	return []entry{
		func(g unif01.Gen) stests.Result { return stests.BirthdaySpacings(g, 1<<12, 28) },
		func(g unif01.Gen) stests.Result { return stests.Collision(g, 1<<16, 24) },
		func(g unif01.Gen) stests.Result { return stests.Gap(g, 1<<14, 0, 1.0/16, 64) },
		func(g unif01.Gen) stests.Result { return stests.SimpPoker(g, 1<<14, 8, 8) },
		func(g unif01.Gen) stests.Result { return stests.CouponCollector(g, 1<<13, 8, 40) },
		func(g unif01.Gen) stests.Result { return stests.MaxOft(g, 1<<15, 8, 32) },
		func(g unif01.Gen) stests.Result { return stests.WeightDistrib(g, 1<<14, 24, 0, 0.25) },
		func(g unif01.Gen) stests.Result { return stests.MatrixRank(g, 1<<12) },
		func(g unif01.Gen) stests.Result { return stests.HammingIndep(g, 1<<17) },
		func(g unif01.Gen) stests.Result { return stests.RandomWalk(g, 1<<13, 128) },
	}
}

// crush extends the quick battery with the bit-stream tests and repeats
// the core families at larger sizes and second parameter choices.
func crush() []entry {
	return []entry{
		func(g unif01.Gen) stests.Result { return stests.Frequency(g, 1<<22) },
		func(g unif01.Gen) stests.Result { return stests.SerialPairs(g, 1<<18, 2) },
		func(g unif01.Gen) stests.Result { return stests.SerialPairs(g, 1<<18, 4) },
		func(g unif01.Gen) stests.Result { return stests.Runs(g, 1<<22) },
		func(g unif01.Gen) stests.Result { return stests.AutoCor(g, 1<<22, 1) },
		func(g unif01.Gen) stests.Result { return stests.AutoCor(g, 1<<22, 16) },
		func(g unif01.Gen) stests.Result { return stests.LongestRun(g, 1<<13) },
		func(g unif01.Gen) stests.Result { return stests.BirthdaySpacings(g, 1<<14, 30) },
		func(g unif01.Gen) stests.Result { return stests.Collision(g, 1<<18, 26) },
		func(g unif01.Gen) stests.Result { return stests.Gap(g, 1<<16, 0, 1.0/16, 96) },
		func(g unif01.Gen) stests.Result { return stests.Gap(g, 1<<14, 0.4, 0.6, 48) },
		func(g unif01.Gen) stests.Result { return stests.SimpPoker(g, 1<<16, 8, 8) },
		func(g unif01.Gen) stests.Result { return stests.SimpPoker(g, 1<<14, 16, 16) },
		func(g unif01.Gen) stests.Result { return stests.CouponCollector(g, 1<<15, 8, 40) },
		func(g unif01.Gen) stests.Result { return stests.MaxOft(g, 1<<17, 8, 32) },
		func(g unif01.Gen) stests.Result { return stests.MaxOft(g, 1<<15, 16, 32) },
		func(g unif01.Gen) stests.Result { return stests.WeightDistrib(g, 1<<16, 24, 0, 0.25) },
		func(g unif01.Gen) stests.Result { return stests.MatrixRank(g, 1<<14) },
		func(g unif01.Gen) stests.Result { return stests.HammingIndep(g, 1<<19) },
		func(g unif01.Gen) stests.Result { return stests.RandomWalk(g, 1<<15, 128) },
	}
}

// bigCrush runs the same families as crush at the most demanding sizes.
func bigCrush() []entry {
	return []entry{
		func(g unif01.Gen) stests.Result { return stests.Frequency(g, 1<<25) },
		func(g unif01.Gen) stests.Result { return stests.SerialPairs(g, 1<<21, 2) },
		func(g unif01.Gen) stests.Result { return stests.SerialPairs(g, 1<<21, 4) },
		func(g unif01.Gen) stests.Result { return stests.Runs(g, 1<<25) },
		func(g unif01.Gen) stests.Result { return stests.AutoCor(g, 1<<25, 1) },
		func(g unif01.Gen) stests.Result { return stests.AutoCor(g, 1<<25, 16) },
		func(g unif01.Gen) stests.Result { return stests.LongestRun(g, 1<<16) },
		func(g unif01.Gen) stests.Result { return stests.BirthdaySpacings(g, 1<<16, 32) },
		func(g unif01.Gen) stests.Result { return stests.BirthdaySpacings(g, 1<<14, 30) },
		func(g unif01.Gen) stests.Result { return stests.Collision(g, 1<<20, 28) },
		func(g unif01.Gen) stests.Result { return stests.Gap(g, 1<<18, 0, 1.0/32, 128) },
		func(g unif01.Gen) stests.Result { return stests.Gap(g, 1<<16, 0.4, 0.6, 64) },
		func(g unif01.Gen) stests.Result { return stests.SimpPoker(g, 1<<18, 8, 8) },
		func(g unif01.Gen) stests.Result { return stests.SimpPoker(g, 1<<16, 16, 16) },
		func(g unif01.Gen) stests.Result { return stests.CouponCollector(g, 1<<17, 8, 40) },
		func(g unif01.Gen) stests.Result { return stests.CouponCollector(g, 1<<15, 16, 80) },
		func(g unif01.Gen) stests.Result { return stests.MaxOft(g, 1<<19, 8, 32) },
		func(g unif01.Gen) stests.Result { return stests.MaxOft(g, 1<<17, 16, 32) },
		func(g unif01.Gen) stests.Result { return stests.WeightDistrib(g, 1<<18, 24, 0, 0.25) },
		func(g unif01.Gen) stests.Result { return stests.WeightDistrib(g, 1<<16, 32, 0, 0.5) },
		func(g unif01.Gen) stests.Result { return stests.MatrixRank(g, 1<<16) },
		func(g unif01.Gen) stests.Result { return stests.HammingIndep(g, 1<<21) },
		func(g unif01.Gen) stests.Result { return stests.RandomWalk(g, 1<<17, 128) },
		func(g unif01.Gen) stests.Result { return stests.RandomWalk(g, 1<<15, 256) },
	}
}

// Run executes every test of the battery against g, in order, and
// collects the results. The generator is consumed sequentially; nothing
// is rewound between tests.
func Run(g unif01.Gen, b Battery) *Results {
	start := time.Now()
	entries := b.entries()
	results := make([]stests.Result, 0, len(entries))
	for _, e := range entries {
		results = append(results, e(g))
	}
	return &Results{
		Battery:   b,
		Generator: g.Name(),
		Results:   results,
		Elapsed:   time.Since(start),
	}
}

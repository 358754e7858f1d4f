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

package stests

import (
	"math"

	"github.com/apache/commons-rng-stress/pkg/stress/gof"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// Frequency counts the ones among n bits. Under the null the count is
// binomial with mean n/2, so the standardized excess is asymptotically
// standard normal. The p-value is two-sided.
func Frequency(g unif01.Gen, n int64) Result {
	b := &bitSource{g: g}
	var ones int64
	for i := int64(0); i < n; i++ {
		ones += int64(b.bit())
	}
	z := (2*float64(ones) - float64(n)) / math.Sqrt(float64(n))
	return Result{Name: "Frequency", Samples: n, Stat: z, P: foldNormal(z)}
}

// SerialPairs draws n non-overlapping pairs of d-bit values and
// chi-square-tests the 4^d pair cells against uniformity.
func SerialPairs(g unif01.Gen, n int64, d int) Result {
	b := &bitSource{g: g}
	cells := 1 << uint(2*d)
	observed := make([]int64, cells)
	for i := int64(0); i < n; i++ {
		u := b.bits(d)
		v := b.bits(d)
		observed[u<<uint(d)|v]++
	}
	expected := make([]float64, cells)
	for i := range expected {
		expected[i] = float64(n) / float64(cells)
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "SerialPairs", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// Runs counts the maximal blocks of equal consecutive bits among n bits.
// Conditioned on the number of ones, the run count is asymptotically
// normal (Wald-Wolfowitz); the p-value is two-sided. A stream with only
// one bit value has no sampling distribution to compare against and is
// reported as a hard failure.
func Runs(g unif01.Gen, n int64) Result {
	b := &bitSource{g: g}
	prev := b.bit()
	ones := int64(prev)
	runs := int64(1)
	for i := int64(1); i < n; i++ {
		bit := b.bit()
		ones += int64(bit)
		if bit != prev {
			runs++
			prev = bit
		}
	}
	zeros := n - ones
	if ones == 0 || zeros == 0 {
		return Result{Name: "Runs", Samples: n, Stat: math.Inf(1), P: 0}
	}
	no, nz := float64(ones), float64(zeros)
	mean := 1 + 2*no*nz/float64(n)
	variance := 2 * no * nz * (2*no*nz - float64(n)) / (float64(n) * float64(n) * float64(n-1))
	z := (float64(runs) - mean) / math.Sqrt(variance)
	return Result{Name: "Runs", Samples: n, Stat: z, P: foldNormal(z)}
}

// AutoCor XORs each of n bits with the bit lag positions later. Under the
// null the mismatch count is binomial with mean n/2; the p-value is
// two-sided.
func AutoCor(g unif01.Gen, n int64, lag int) Result {
	b := &bitSource{g: g}
	window := make([]uint32, lag)
	for i := range window {
		window[i] = b.bit()
	}
	var mismatches int64
	for i := int64(0); i < n; i++ {
		bit := b.bit()
		mismatches += int64(window[i%int64(lag)] ^ bit)
		window[i%int64(lag)] = bit
	}
	z := (2*float64(mismatches) - float64(n)) / math.Sqrt(float64(n))
	return Result{Name: "AutoCor", Samples: n, Stat: z, P: foldNormal(z)}
}

// longestRunProbs128 is the distribution of the longest run of ones in a
// 128-bit block, lumped into the six classes <=4, 5, 6, 7, 8, >=9.
var longestRunProbs128 = []float64{0.1174035788, 0.242955959, 0.249363483, 0.17517706, 0.102701071, 0.112398847}

// LongestRun splits n 128-bit blocks out of the stream, finds the longest
// run of ones in each, and chi-square-tests the class counts against the
// known block distribution.
func LongestRun(g unif01.Gen, n int64) Result {
	const blockBits = 128
	b := &bitSource{g: g}
	observed := make([]int64, len(longestRunProbs128))
	for i := int64(0); i < n; i++ {
		longest, run := 0, 0
		for j := 0; j < blockBits; j++ {
			if b.bit() == 1 {
				run++
				if run > longest {
					longest = run
				}
			} else {
				run = 0
			}
		}
		switch {
		case longest <= 4:
			observed[0]++
		case longest >= 9:
			observed[5]++
		default:
			observed[longest-4]++
		}
	}
	expected := make([]float64, len(longestRunProbs128))
	for i, p := range longestRunProbs128 {
		expected[i] = float64(n) * p
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "LongestRun", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

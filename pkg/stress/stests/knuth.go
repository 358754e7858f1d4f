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
	"github.com/apache/commons-rng-stress/pkg/stress/gof"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// discrete maps the next sample to an integer in [0, d).
func discrete(g unif01.Gen, d int) int {
	v := int(float64(d) * float01(g))
	if v >= d {
		v = d - 1
	}
	return v
}

// Gap measures, n times over, how many consecutive samples fall outside
// [alpha, beta) before one falls inside. Gap lengths follow a geometric
// law with hit probability beta-alpha; lengths of t or more are lumped
// into one cell and the counts are chi-square-tested.
func Gap(g unif01.Gen, n int64, alpha, beta float64, t int) Result {
	p := beta - alpha
	observed := make([]int64, t+1)
	for i := int64(0); i < n; i++ {
		gap := 0
		for {
			u := float01(g)
			if u >= alpha && u < beta {
				break
			}
			gap++
		}
		if gap > t {
			gap = t
		}
		observed[gap]++
	}
	expected := make([]float64, t+1)
	q := 1.0
	for r := 0; r < t; r++ {
		expected[r] = float64(n) * p * q
		q *= 1 - p
	}
	expected[t] = float64(n) * q
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "Gap", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// SimpPoker deals n hands of k values drawn from {0, ..., d-1} and counts
// the distinct values in each hand. The count of hands with exactly c
// distinct values has expectation n * C(d,c) * c! * S(k,c) / d^k, with S
// the Stirling numbers of the second kind.
func SimpPoker(g unif01.Gen, n int64, k, d int) Result {
	s := stirling2(k)
	max := k
	if d < max {
		max = d
	}
	observed := make([]int64, max)
	seen := make([]bool, d)
	for i := int64(0); i < n; i++ {
		for j := range seen {
			seen[j] = false
		}
		distinct := 0
		for j := 0; j < k; j++ {
			v := discrete(g, d)
			if !seen[v] {
				seen[v] = true
				distinct++
			}
		}
		observed[distinct-1]++
	}
	expected := make([]float64, max)
	dk := 1.0
	for j := 0; j < k; j++ {
		dk *= float64(d)
	}
	arrangements := 1.0
	for c := 1; c <= max; c++ {
		arrangements *= float64(d - c + 1)
		expected[c-1] = float64(n) * arrangements * s[k][c] / dk
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "SimpPoker", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// CouponCollector draws values from {0, ..., d-1} and records, n times
// over, how many draws it takes to see every value at least once. Segment
// lengths of t or more are lumped together and the counts are
// chi-square-tested against the exact collection-time law.
func CouponCollector(g unif01.Gen, n int64, d, t int) Result {
	s := stirling2(t - 1)
	observed := make([]int64, t-d+1)
	seen := make([]bool, d)
	for i := int64(0); i < n; i++ {
		for j := range seen {
			seen[j] = false
		}
		collected, length := 0, 0
		for collected < d {
			v := discrete(g, d)
			length++
			if !seen[v] {
				seen[v] = true
				collected++
			}
		}
		if length > t {
			length = t
		}
		observed[length-d]++
	}
	expected := make([]float64, t-d+1)
	dFact := factorial(d)
	dr := 1.0
	for j := 0; j < d; j++ {
		dr *= float64(d)
	}
	for r := d; r < t; r++ {
		// P(R = r) = d!/d^r * S(r-1, d-1).
		expected[r-d] = float64(n) * dFact / dr * s[r-1][d-1]
		dr *= float64(d)
	}
	// P(R >= t) = 1 - d! * S(t-1, d) / d^(t-1).
	dr /= float64(d)
	expected[t-d] = float64(n) * (1 - dFact*s[t-1][d]/dr)
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "CouponCollector", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// MaxOft takes the maximum of each of n groups of t samples. The maximum
// has distribution function x^t, so the transformed maxima are uniform and
// are chi-square-tested over k equiprobable cells.
func MaxOft(g unif01.Gen, n int64, t, k int) Result {
	observed := make([]int64, k)
	for i := int64(0); i < n; i++ {
		max := 0.0
		for j := 0; j < t; j++ {
			if u := float01(g); u > max {
				max = u
			}
		}
		y := 1.0
		for j := 0; j < t; j++ {
			y *= max
		}
		cell := int(float64(k) * y)
		if cell >= k {
			cell = k - 1
		}
		observed[cell]++
	}
	expected := make([]float64, k)
	for i := range expected {
		expected[i] = float64(n) / float64(k)
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "MaxOft", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// Collision throws n balls into 2^d urns addressed by d-bit samples and
// counts how many land in an occupied urn. With n much smaller than the
// urn count the collision count is approximately Poisson with mean
// n^2 / 2^(d+1).
func Collision(g unif01.Gen, n int64, d int) Result {
	b := &bitSource{g: g}
	urns := int64(1) << uint(d)
	occupied := make([]uint64, urns/64+1)
	var collisions int64
	for i := int64(0); i < n; i++ {
		v := int64(b.bits(d))
		if occupied[v/64]&(1<<uint(v%64)) != 0 {
			collisions++
		} else {
			occupied[v/64] |= 1 << uint(v%64)
		}
	}
	lambda := float64(n) * float64(n) / (2 * float64(urns))
	return Result{Name: "Collision", Samples: n, Stat: float64(collisions), P: gof.PoissonP(collisions, lambda)}
}

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

// Package stests implements the statistical tests the batteries are
// assembled from. Every test consumes values from a unif01.Gen and reduces
// them to a single right-tail p-value; a healthy generator yields p-values
// spread over (0, 1), while a defect shows up as p near 0 or near 1.
package stests

import (
	"math"

	"github.com/apache/commons-rng-stress/pkg/stress/gof"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// Result is the outcome of one statistical test.
type Result struct {
	// Name identifies the test; parameter values are not part of it.
	Name string
	// Samples is the number of base observations the test reduced.
	Samples int64
	// Stat is the value of the test statistic.
	Stat float64
	// Df is the degrees of freedom of the statistic's null distribution,
	// or 0 when the distribution is not chi-square.
	Df int
	// P is the right-tail p-value of Stat under the null hypothesis.
	P float64
}

// bitSource serves individual bits and fixed-width bit fields from a
// generator, most significant bit first, consuming a fresh word only when
// the current one is exhausted.
type bitSource struct {
	g    unif01.Gen
	word uint32
	left int
}

func (b *bitSource) bit() uint32 {
	if b.left == 0 {
		b.word = b.g.Uint32()
		b.left = 32
	}
	b.left--
	return (b.word >> uint(b.left)) & 1
}

// bits returns the next k bits as an unsigned value, 1 <= k <= 32. Fields
// never straddle a word boundary; a partial word is discarded when k
// exceeds what remains.
func (b *bitSource) bits(k int) uint32 {
	if b.left < k {
		b.word = b.g.Uint32()
		b.left = 32
	}
	b.left -= k
	return (b.word >> uint(b.left)) & (1<<uint(k) - 1)
}

// float01 returns the next sample as a float in [0, 1).
func float01(g unif01.Gen) float64 {
	return g.Float64()
}

// binomial returns C(n, k) as a float.
func binomial(n, k int) float64 {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	c := 1.0
	for i := 0; i < k; i++ {
		c = c * float64(n-i) / float64(i+1)
	}
	return c
}

// stirling2 returns a table s where s[n][k] is the Stirling number of the
// second kind S(n, k), for 0 <= k <= n <= max.
func stirling2(max int) [][]float64 {
	s := make([][]float64, max+1)
	for n := range s {
		s[n] = make([]float64, max+1)
	}
	s[0][0] = 1
	for n := 1; n <= max; n++ {
		for k := 1; k <= n; k++ {
			s[n][k] = float64(k)*s[n-1][k] + s[n-1][k-1]
		}
	}
	return s
}

// factorial returns n! as a float.
func factorial(n int) float64 {
	f := 1.0
	for i := 2; i <= n; i++ {
		f *= float64(i)
	}
	return f
}

// foldNormal turns a signed z statistic into a two-sided p-value.
func foldNormal(z float64) float64 {
	p := 2 * gof.NormalP(math.Abs(z))
	if p > 1 {
		p = 1
	}
	return p
}

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
	"math/bits"

	"golang.org/x/exp/slices"

	"github.com/apache/commons-rng-stress/pkg/stress/gof"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// BirthdaySpacings draws n birthdays from {0, ..., 2^d - 1}, sorts them,
// and counts duplicate values among the successive spacings. The duplicate
// count is approximately Poisson with mean n^3 / 2^(d+2).
func BirthdaySpacings(g unif01.Gen, n int64, d int) Result {
	b := &bitSource{g: g}
	days := make([]uint32, n)
	for i := range days {
		days[i] = b.bits(d)
	}
	slices.Sort(days)
	spacings := make([]uint32, 0, n-1)
	for i := int64(1); i < n; i++ {
		spacings = append(spacings, days[i]-days[i-1])
	}
	slices.Sort(spacings)
	var duplicates int64
	for i := 1; i < len(spacings); i++ {
		if spacings[i] == spacings[i-1] {
			duplicates++
		}
	}
	lambda := float64(n) * float64(n) * float64(n) / (4 * math.Exp2(float64(d)))
	return Result{Name: "BirthdaySpacings", Samples: n, Stat: float64(duplicates), P: gof.PoissonP(duplicates, lambda)}
}

// matrixRankProb returns the probability that a random l-by-l matrix over
// GF(2) has the given rank.
func matrixRankProb(l, rank int) float64 {
	logP := float64(rank*(2*l-rank)-l*l) * math.Ln2
	p := math.Exp(logP)
	for i := 0; i < rank; i++ {
		num := 1 - math.Exp2(float64(i-l))
		p *= num * num / (1 - math.Exp2(float64(i-rank)))
	}
	return p
}

// binaryRank reduces the rows in place and returns their rank over GF(2).
func binaryRank(rows []uint32) int {
	rank := 0
	for bit := 31; bit >= 0 && rank < len(rows); bit-- {
		pivot := -1
		for i := rank; i < len(rows); i++ {
			if rows[i]>>uint(bit)&1 == 1 {
				pivot = i
				break
			}
		}
		if pivot < 0 {
			continue
		}
		rows[rank], rows[pivot] = rows[pivot], rows[rank]
		for i := rank + 1; i < len(rows); i++ {
			if rows[i]>>uint(bit)&1 == 1 {
				rows[i] ^= rows[rank]
			}
		}
		rank++
	}
	return rank
}

// MatrixRank builds n 32x32 bit matrices from successive words and
// chi-square-tests their GF(2) ranks against the known rank distribution,
// lumping ranks of 30 and below into one class.
func MatrixRank(g unif01.Gen, n int64) Result {
	const l = 32
	observed := make([]int64, 3)
	rows := make([]uint32, l)
	for i := int64(0); i < n; i++ {
		for j := range rows {
			rows[j] = g.Uint32()
		}
		switch binaryRank(rows) {
		case l:
			observed[2]++
		case l - 1:
			observed[1]++
		default:
			observed[0]++
		}
	}
	pFull := matrixRankProb(l, l)
	pNext := matrixRankProb(l, l-1)
	expected := []float64{float64(n) * (1 - pFull - pNext), float64(n) * pNext, float64(n) * pFull}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "MatrixRank", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// WeightDistrib counts, in each of n blocks of k samples, how many samples
// fall into [alpha, beta). Block weights are binomial under the null and
// the weight counts are chi-square-tested.
func WeightDistrib(g unif01.Gen, n int64, k int, alpha, beta float64) Result {
	p := beta - alpha
	observed := make([]int64, k+1)
	for i := int64(0); i < n; i++ {
		weight := 0
		for j := 0; j < k; j++ {
			if u := float01(g); u >= alpha && u < beta {
				weight++
			}
		}
		observed[weight]++
	}
	expected := make([]float64, k+1)
	for w := 0; w <= k; w++ {
		expected[w] = float64(n) * binomial(k, w) * math.Pow(p, float64(w)) * math.Pow(1-p, float64(k-w))
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "WeightDistrib", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

// HammingIndep tabulates the Hamming weights of n successive word pairs
// and chi-square-tests the pair counts against the product of the two
// binomial marginals, which is what independent words would produce.
func HammingIndep(g unif01.Gen, n int64) Result {
	const l = 32
	observed := make([]int64, (l+1)*(l+1))
	for i := int64(0); i < n; i++ {
		w1 := bits.OnesCount32(g.Uint32())
		w2 := bits.OnesCount32(g.Uint32())
		observed[w1*(l+1)+w2]++
	}
	marginal := make([]float64, l+1)
	for w := 0; w <= l; w++ {
		marginal[w] = binomial(l, w) * math.Exp2(-l)
	}
	expected := make([]float64, (l+1)*(l+1))
	for w1 := 0; w1 <= l; w1++ {
		for w2 := 0; w2 <= l; w2++ {
			expected[w1*(l+1)+w2] = float64(n) * marginal[w1] * marginal[w2]
		}
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "HammingIndep", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

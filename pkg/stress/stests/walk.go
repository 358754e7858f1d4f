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

// RandomWalk runs n one-dimensional walks of l steps each, one bit per
// step, and chi-square-tests the folded endpoint distances against the
// binomial walk law. l must be even so the distances share one parity.
func RandomWalk(g unif01.Gen, n int64, l int) Result {
	b := &bitSource{g: g}
	observed := make([]int64, l/2+1)
	for i := int64(0); i < n; i++ {
		pos := 0
		for j := 0; j < l; j++ {
			if b.bit() == 1 {
				pos++
			} else {
				pos--
			}
		}
		if pos < 0 {
			pos = -pos
		}
		observed[pos/2]++
	}
	expected := make([]float64, l/2+1)
	for j := 0; j <= l/2; j++ {
		// P(|S| = 2j) folds the two signed endpoints together, except
		// at the origin.
		p := binomial(l, l/2+j) * math.Exp2(-float64(l))
		if j > 0 {
			p *= 2
		}
		expected[j] = float64(n) * p
	}
	observed, expected = gof.MergeCells(observed, expected, gof.MinExpected)
	stat := gof.ChiSquare(observed, expected)
	df := len(expected) - 1
	return Result{Name: "RandomWalk", Samples: n, Stat: stat, Df: df, P: gof.ChiSquareP(stat, df)}
}

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

// Package gof supplies the goodness-of-fit machinery shared by the battery
// tests: Pearson's chi-square statistic with small-cell merging, and
// right-tail p-values for the sampling distributions the tests reduce to.
package gof

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// MinExpected is the default smallest expected count a chi-square cell may
// hold before it is merged with its neighbors.
const MinExpected = 10.0

// ChiSquare computes Pearson's chi-square statistic of the observed counts
// against the expected counts. The slices must have equal nonzero length;
// unequal lengths are a programming error and panic.
func ChiSquare(observed []int64, expected []float64) float64 {
	if len(observed) != len(expected) || len(observed) == 0 {
		panic(fmt.Sprintf("chi-square needs equal nonzero cell counts, got %v observed and %v expected", len(observed), len(expected)))
	}
	var stat float64
	for i, e := range expected {
		d := float64(observed[i]) - e
		stat += d * d / e
	}
	return stat
}

// MergeCells folds adjacent cells together, left to right, until each
// merged cell's expectation reaches at least min. A trailing remainder is
// folded into the last cell. The chi-square approximation is unreliable on
// sparse cells, so callers merge before computing the statistic.
func MergeCells(observed []int64, expected []float64, min float64) ([]int64, []float64) {
	var obs []int64
	var exp []float64
	var accObs int64
	var accExp float64
	for i := range expected {
		accObs += observed[i]
		accExp += expected[i]
		if accExp >= min {
			obs = append(obs, accObs)
			exp = append(exp, accExp)
			accObs, accExp = 0, 0
		}
	}
	if accExp > 0 {
		if len(exp) == 0 {
			return []int64{accObs}, []float64{accExp}
		}
		obs[len(obs)-1] += accObs
		exp[len(exp)-1] += accExp
	}
	return obs, exp
}

// ChiSquareP returns the right-tail p-value of a chi-square statistic with
// df degrees of freedom.
func ChiSquareP(stat float64, df int) float64 {
	return distuv.ChiSquared{K: float64(df)}.Survival(stat)
}

// NormalP returns the right-tail p-value of a standard normal statistic.
func NormalP(z float64) float64 {
	return distuv.Normal{Mu: 0, Sigma: 1}.Survival(z)
}

// PoissonP returns the right-tail p-value P[X >= k] for a Poisson variate
// with the given mean.
func PoissonP(k int64, lambda float64) float64 {
	if k <= 0 {
		return 1
	}
	// Survival is P[X > x]; evaluating at k-1/2 makes it P[X >= k].
	return distuv.Poisson{Lambda: lambda}.Survival(float64(k) - 0.5)
}

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

// Package unif01 defines the uniform generator contract that the test
// batteries in package bbattery pull samples through, together with the
// adapters that satisfy it: a block-buffered reader over a binary stream of
// 32-bit words (the stdin bridge core), and a thin wrapper over an
// in-process bit source.
//
// A battery calls a generator arbitrarily many times; generators are lazy,
// infinite and non-restartable. None of the adapters in this package are
// safe for concurrent use; a generator instance belongs to exactly one
// battery run.
package unif01

import "io"

// Gen is a pull-based source of uniform random values. It carries the three
// callback slots a battery requires -- next 32-bit word, next uniform
// double, and a description writer -- plus a display name.
type Gen interface {
	// Name returns the display name used in battery reports.
	Name() string

	// Uint32 returns the next 32-bit word of the sequence.
	Uint32() uint32

	// Float64 returns the next value in [0, 1). It consumes exactly one
	// 32-bit word: the value is that word divided by 2^32.
	Float64() float64

	// Describe writes a description of the generator to w.
	Describe(w io.Writer)
}

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

// Package rng implements the pseudo-random sources the stress campaigns
// exercise. Sources are addressed by the provider names of the library
// under test, take a single 64-bit seed, and emit a stream of 32-bit
// words; providers whose native output is 64 bits emit each value as two
// words, high half first.
package rng

import (
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
)

// Source produces a reproducible stream of 32-bit words from a seed.
type Source interface {
	// Name returns the provider name the source was registered under.
	Name() string
	// Uint32 returns the next word of the stream.
	Uint32() uint32
}

var factories = map[string]func(seed uint64) Source{
	"JDK":              newJDK,
	"MT":               newMT,
	"MT_64":            newMT64,
	"WELL_512_A":       newWell512a,
	"SPLIT_MIX_64":     newSplitMix64,
	"XOR_SHIFT_1024_S": newXorShift1024,
	"XO_SHI_RO_256_SS": newXoshiro256,
}

// All returns the registered provider names, sorted.
func All() []string {
	names := maps.Keys(factories)
	slices.Sort(names)
	return names
}

// Known reports whether name is a registered provider name.
func Known(name string) bool {
	_, ok := factories[name]
	return ok
}

// New builds the named source seeded with seed.
func New(name string, seed uint64) (Source, error) {
	f, ok := factories[name]
	if !ok {
		return nil, errors.Errorf("unknown source %q, valid names: %v", name, strings.Join(All(), ", "))
	}
	return f(seed), nil
}

// splitMix64 is the SplitMix64 step function. Besides being a source in
// its own right it expands single seeds into the larger state vectors of
// the other providers, which keeps distinct seeds from producing
// correlated states.
type splitMix64 struct {
	state uint64
}

func (s *splitMix64) next() uint64 {
	s.state += 0x9e3779b97f4a7c15
	z := s.state
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// halves serves a 64-bit stream as 32-bit words, high half first.
type halves struct {
	next func() uint64
	low  uint32
	have bool
}

func (h *halves) Uint32() uint32 {
	if h.have {
		h.have = false
		return h.low
	}
	v := h.next()
	h.low = uint32(v)
	h.have = true
	return uint32(v >> 32)
}

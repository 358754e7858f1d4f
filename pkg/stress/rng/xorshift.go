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

import "math/bits"

// splitMixSource exposes the SplitMix64 stream as a source.
type splitMixSource struct {
	sm splitMix64
	halves
}

func newSplitMix64(seed uint64) Source {
	g := &splitMixSource{sm: splitMix64{state: seed}}
	g.halves.next = g.sm.next
	return g
}

func (g *splitMixSource) Name() string { return "SPLIT_MIX_64" }

// xorShift1024 is Vigna's xorshift1024* generator. Its 16-word state is
// filled from a SplitMix64 expansion of the seed.
type xorShift1024 struct {
	state [16]uint64
	p     int
	halves
}

func newXorShift1024(seed uint64) Source {
	g := &xorShift1024{}
	sm := &splitMix64{state: seed}
	for i := range g.state {
		g.state[i] = sm.next()
	}
	g.halves.next = g.next64
	return g
}

func (g *xorShift1024) Name() string { return "XOR_SHIFT_1024_S" }

func (g *xorShift1024) next64() uint64 {
	s0 := g.state[g.p]
	g.p = (g.p + 1) & 15
	s1 := g.state[g.p]
	s1 ^= s1 << 31
	g.state[g.p] = s1 ^ s0 ^ s1>>11 ^ s0>>30
	return g.state[g.p] * 1181783497276652981
}

// xoshiro256 is Blackman and Vigna's xoshiro256** generator. Its state
// is filled from a SplitMix64 expansion of the seed.
type xoshiro256 struct {
	state [4]uint64
	halves
}

func newXoshiro256(seed uint64) Source {
	g := &xoshiro256{}
	sm := &splitMix64{state: seed}
	for i := range g.state {
		g.state[i] = sm.next()
	}
	g.halves.next = g.next64
	return g
}

// newXoshiro256From builds the generator over an explicit state, which
// is how the reference test vectors are expressed.
func newXoshiro256From(state [4]uint64) *xoshiro256 {
	g := &xoshiro256{state: state}
	g.halves.next = g.next64
	return g
}

func (g *xoshiro256) Name() string { return "XO_SHI_RO_256_SS" }

func (g *xoshiro256) next64() uint64 {
	result := bits.RotateLeft64(g.state[1]*5, 7) * 9
	t := g.state[1] << 17
	g.state[2] ^= g.state[0]
	g.state[3] ^= g.state[1]
	g.state[1] ^= g.state[2]
	g.state[0] ^= g.state[3]
	g.state[2] ^= t
	g.state[3] = bits.RotateLeft64(g.state[3], 45)
	return result
}

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

// well512a is the WELL512a generator of Panneton, L'Ecuyer and
// Matsumoto. Its 16-word state is filled from a SplitMix64 expansion of
// the seed.
type well512a struct {
	state [16]uint32
	index int
}

func newWell512a(seed uint64) Source {
	g := &well512a{}
	sm := &splitMix64{state: seed}
	for i := 0; i < len(g.state); i += 2 {
		v := sm.next()
		g.state[i] = uint32(v >> 32)
		g.state[i+1] = uint32(v)
	}
	return g
}

func (g *well512a) Name() string { return "WELL_512_A" }

func (g *well512a) Uint32() uint32 {
	i := g.index
	z0 := g.state[(i+15)&15]
	s13 := g.state[(i+13)&15]
	z1 := g.state[i] ^ g.state[i]<<16 ^ s13 ^ s13<<15
	s9 := g.state[(i+9)&15]
	z2 := s9 ^ s9>>11
	z3 := z1 ^ z2
	g.state[i] = z3
	g.state[(i+15)&15] = z0 ^ z0<<2 ^ z1 ^ z1<<18 ^ z2<<28 ^ z3 ^ (z3<<5)&0xda442d24
	g.index = (i + 15) & 15
	return g.state[g.index]
}

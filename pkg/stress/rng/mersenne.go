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

// mt is the 32-bit Mersenne Twister MT19937 with the reference scalar
// seeding, so seed 5489 reproduces the canonical sequence.
type mt struct {
	state [624]uint32
	next  int
}

func newMT(seed uint64) Source {
	g := &mt{}
	g.next = len(g.state)
	g.state[0] = uint32(seed)
	for i := 1; i < len(g.state); i++ {
		p := g.state[i-1]
		g.state[i] = 1812433253*(p^(p>>30)) + uint32(i)
	}
	return g
}

func (g *mt) Name() string { return "MT" }

func (g *mt) Uint32() uint32 {
	if g.next >= len(g.state) {
		g.twist()
	}
	y := g.state[g.next]
	g.next++
	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	return y ^ (y >> 18)
}

func (g *mt) twist() {
	const m = 397
	n := len(g.state)
	for i := 0; i < n; i++ {
		y := g.state[i]&0x80000000 | g.state[(i+1)%n]&0x7fffffff
		v := g.state[(i+m)%n] ^ (y >> 1)
		if y&1 == 1 {
			v ^= 0x9908b0df
		}
		g.state[i] = v
	}
	g.next = 0
}

// mt64 is the 64-bit Mersenne Twister MT19937-64 with the reference
// seeding.
type mt64 struct {
	state [312]uint64
	next  int
	halves
}

func newMT64(seed uint64) Source {
	g := &mt64{}
	g.next = len(g.state)
	g.state[0] = seed
	for i := 1; i < len(g.state); i++ {
		p := g.state[i-1]
		g.state[i] = 6364136223846793005*(p^(p>>62)) + uint64(i)
	}
	g.halves.next = g.next64
	return g
}

func (g *mt64) Name() string { return "MT_64" }

func (g *mt64) next64() uint64 {
	if g.next >= len(g.state) {
		g.twist()
	}
	x := g.state[g.next]
	g.next++
	x ^= (x >> 29) & 0x5555555555555555
	x ^= (x << 17) & 0x71d67fffeda60000
	x ^= (x << 37) & 0xfff7eee000000000
	return x ^ (x >> 43)
}

func (g *mt64) twist() {
	const m = 156
	n := len(g.state)
	for i := 0; i < n; i++ {
		x := g.state[i]&0xffffffff80000000 | g.state[(i+1)%n]&0x7fffffff
		v := g.state[(i+m)%n] ^ (x >> 1)
		if x&1 == 1 {
			v ^= 0xb5026f5aa96619e9
		}
		g.state[i] = v
	}
	g.next = 0
}

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

const (
	jdkMultiplier = 0x5DEECE66D
	jdkAddend     = 0xB
	jdkMask       = 1<<48 - 1
)

// jdk is the 48-bit linear congruential generator of java.util.Random,
// including its seed scrambling, so equal seeds reproduce the Java
// sequence bit for bit.
type jdk struct {
	seed uint64
}

func newJDK(seed uint64) Source {
	return &jdk{seed: (seed ^ jdkMultiplier) & jdkMask}
}

func (g *jdk) Name() string { return "JDK" }

func (g *jdk) Uint32() uint32 {
	g.seed = (g.seed*jdkMultiplier + jdkAddend) & jdkMask
	return uint32(g.seed >> 16)
}

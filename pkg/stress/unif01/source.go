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

package unif01

import (
	"fmt"
	"io"
)

// BitSource is a sequential source of 32-bit words, typically one of the
// reference generators in package rng.
type BitSource interface {
	Name() string
	Uint32() uint32
}

// FromSource adapts a BitSource into a Gen, for running a battery against
// an in-process generator without going through a byte stream.
func FromSource(src BitSource) Gen {
	return &sourceGen{src: src}
}

type sourceGen struct {
	src BitSource
}

func (g *sourceGen) Name() string {
	return g.src.Name()
}

func (g *sourceGen) Uint32() uint32 {
	return g.src.Uint32()
}

func (g *sourceGen) Float64() float64 {
	return float64(g.src.Uint32()) / (1 << 32)
}

func (g *sourceGen) Describe(w io.Writer) {
	fmt.Fprint(w, g.src.Name())
}

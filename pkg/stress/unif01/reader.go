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
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// BufferLength is the number of 32-bit words read per refill.
const BufferLength = 256

// Reader adapts a binary stream of little-endian 32-bit words into a Gen.
// Words are read in fixed blocks of BufferLength and handed out one at a
// time, so stream-read overhead is amortized while the consumer still sees
// the words in exact stream order.
type Reader struct {
	name   string
	src    io.Reader
	buf    [BufferLength]uint32
	cursor int

	// scratch persists across refills. The refill read is unchecked: a
	// short read near end of stream leaves earlier bytes (or zeros) in the
	// tail slots and the battery keeps consuming them.
	scratch [4 * BufferLength]byte
}

var _ Gen = (*Reader)(nil)

// NewReader returns a Reader drawing from src under the given display name.
// The cursor starts exhausted, so the first access always refills.
func NewReader(name string, src io.Reader) *Reader {
	return &Reader{name: name, src: src, cursor: BufferLength}
}

// NewStdinReader returns a Reader over standard input named "stdin".
// Standard input carries bytes untranslated on all supported platforms, so
// no binary reopen of the stream is needed.
func NewStdinReader() *Reader {
	return NewReader("stdin", os.Stdin)
}

// Name returns the display name.
func (r *Reader) Name() string {
	return r.name
}

// Uint32 returns the next word of the stream, refilling the buffer first if
// it is exhausted.
func (r *Reader) Uint32() uint32 {
	if r.cursor == BufferLength {
		r.refill()
	}
	v := r.buf[r.cursor]
	r.cursor++
	return v
}

// Float64 returns the next uniform value in [0, 1). It consumes the same
// word Uint32 would have returned; the division by 2^32 is exact.
func (r *Reader) Float64() float64 {
	return float64(r.Uint32()) / (1 << 32)
}

// Describe writes the fixed placeholder description. The stream has no
// structure worth reporting.
func (r *Reader) Describe(w io.Writer) {
	fmt.Fprint(w, "N/A")
}

// refill replaces the whole buffer with the next block of words.
func (r *Reader) refill() {
	io.ReadFull(r.src, r.scratch[:])
	for i := range r.buf {
		r.buf[i] = binary.LittleEndian.Uint32(r.scratch[4*i:])
	}
	r.cursor = 0
}

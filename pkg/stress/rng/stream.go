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

import (
	"encoding/binary"
	"io"
)

// NewStreamReader adapts a source into an endless byte stream of its
// words in little-endian order, the layout the buffered battery reader
// decodes on the other end of a pipe.
func NewStreamReader(src Source) io.Reader {
	return &streamReader{src: src}
}

type streamReader struct {
	src  Source
	word [4]byte
	left int
}

func (r *streamReader) Read(p []byte) (int, error) {
	total := 0
	for total < len(p) {
		if r.left == 0 {
			binary.LittleEndian.PutUint32(r.word[:], r.src.Uint32())
			r.left = 4
		}
		n := copy(p[total:], r.word[4-r.left:])
		r.left -= n
		total += n
	}
	return total, nil
}

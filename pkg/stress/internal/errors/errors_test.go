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

package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

const (
	base = "base"
	msg1 = "message 1"
	msg2 = "message 2"
	ctx1 = "context 1"
	ctx2 = "context 2"
	top1 = "top level message 1"
	top2 = "top level message 2"
)

func TestNew(t *testing.T) {
	const want = "error message"
	if got := New(want).Error(); got != want {
		t.Errorf("New: got %q, want %q", got, want)
	}
}

func TestErrorf(t *testing.T) {
	want := fmt.Sprintf("%s %d", "ten", 10)
	if got := Errorf("%s %d", "ten", 10).Error(); got != want {
		t.Errorf("Errorf: got %q, want %q", got, want)
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		err  error
		want []string
	}{
		{
			err:  Wrap(New(base), msg1),
			want: []string{"error: " + msg1, "error: " + base},
		}, {
			err:  Wrap(Wrap(New(base), msg1), msg2),
			want: []string{"error: " + msg2, "error: " + msg1, "error: " + base},
		},
	}
	for _, test := range tests {
		if d := cmp.Diff(test.want, structure(test.err)); d != "" {
			t.Errorf("Wrap chain mismatch (-want, +got):\n%v", d)
		}
	}
}

func TestWrapf(t *testing.T) {
	want := fmt.Sprintf("%s %d", "ten", 10)
	got := structure(Wrapf(New(base), "%s %d", "ten", 10))[0]
	if got != "error: "+want {
		t.Errorf("Wrapf: got %q, want %q", got, "error: "+want)
	}
}

func TestWithContext(t *testing.T) {
	tests := []struct {
		err  error
		want []string
	}{
		{
			err:  WithContext(New(base), ctx1),
			want: []string{"context: " + ctx1, "error: " + base},
		}, {
			err:  WithContext(Wrap(WithContext(New(base), ctx1), msg1), ctx2),
			want: []string{"context: " + ctx2, "error: " + msg1, "context: " + ctx1, "error: " + base},
		}, {
			err:  Wrap(WithContext(WithContext(Wrap(New(base), msg1), ctx1), ctx2), msg2),
			want: []string{"error: " + msg2, "context: " + ctx2, "context: " + ctx1, "error: " + msg1, "error: " + base},
		},
	}
	for _, test := range tests {
		if d := cmp.Diff(test.want, structure(test.err)); d != "" {
			t.Errorf("WithContext chain mismatch (-want, +got):\n%v", d)
		}
	}
}

func TestWithContextf(t *testing.T) {
	want := fmt.Sprintf("%s %d", "ten", 10)
	got := structure(WithContextf(New(base), "%s %d", "ten", 10))[0]
	if got != "context: "+want {
		t.Errorf("WithContextf: got %q, want %q", got, "context: "+want)
	}
}

func TestTopLevelMsg(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{
			err:  New(base),
			want: "",
		}, {
			err:  Wrap(WithContext(New(base), ctx1), msg1),
			want: "",
		}, {
			err:  SetTopLevelMsg(New(base), top1),
			want: top1,
		}, {
			err:  Wrap(SetTopLevelMsg(WithContext(New(base), ctx1), top1), msg1),
			want: top1,
		}, {
			err:  Wrap(SetTopLevelMsg(WithContext(SetTopLevelMsg(New(base), top1), ctx1), top2), msg1),
			want: top2,
		},
	}
	for _, test := range tests {
		if got := topOf(test.err); got != test.want {
			t.Errorf("top-level message: got %q, want %q", got, test.want)
		}
	}
}

func TestSetTopLevelMsgf(t *testing.T) {
	want := fmt.Sprintf("%s %d", "ten", 10)
	err := SetTopLevelMsgf(New(base), "%s %d", "ten", 10)
	if got := topOf(err); got != want {
		t.Errorf("SetTopLevelMsgf: got %q, want %q", got, want)
	}
	if !strings.HasPrefix(err.Error(), want+"\n") {
		t.Errorf("Error() does not start with top-level message: %q", err.Error())
	}
}

func TestUnwrap(t *testing.T) {
	inner := New(base)
	err := Wrap(inner, msg1)
	if got := err.(*chainError).Unwrap(); got != inner {
		t.Errorf("Unwrap: got %v, want %v", got, inner)
	}
}

// structure flattens an error chain into a printable list of its context
// and message entries, outermost first, for comparison in tests.
func structure(e error) []string {
	var out []string
	for {
		ce, ok := e.(*chainError)
		if !ok {
			out = append(out, "error: "+e.Error())
			return out
		}
		if ce.context != "" {
			out = append(out, "context: "+ce.context)
		}
		if ce.msg != "" {
			out = append(out, "error: "+ce.msg)
		}
		if ce.cause == nil {
			return out
		}
		e = ce.cause
	}
}

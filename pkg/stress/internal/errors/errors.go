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

// Package errors builds chained errors that keep the context added at each
// layer readable when the whole chain is finally printed by the CLI.
package errors

import (
	"fmt"
	"io"
	"strings"
)

// New returns an error with the given message.
func New(message string) error {
	return fmt.Errorf("%s", message)
}

// Errorf returns an error with a message formatted according to the format
// specifier.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Wrap returns a new error annotating err with a new message.
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return &chainError{cause: err, msg: message, top: topOf(err)}
}

// Wrapf returns a new error annotating err with a new message according to
// the format specifier.
func Wrapf(err error, format string, args ...interface{}) error {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WithContext returns a new error adding additional context to err. Unlike
// Wrap, context lines describe the operation in progress rather than a new
// failure, and render indented above the error they annotate.
func WithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return &chainError{cause: err, context: context, top: topOf(err)}
}

// WithContextf returns a new error adding additional context to err
// according to the format specifier.
func WithContextf(err error, format string, args ...interface{}) error {
	return WithContext(err, fmt.Sprintf(format, args...))
}

// SetTopLevelMsg returns a new error with the given top level message. The
// top level message is the first line printed when Error is called on the
// returned error or on any error wrapping it.
func SetTopLevelMsg(err error, top string) error {
	if err == nil {
		return nil
	}
	return &chainError{cause: err, top: top}
}

// SetTopLevelMsgf returns a new error with a top level message formatted
// according to the format specifier.
func SetTopLevelMsgf(err error, format string, args ...interface{}) error {
	return SetTopLevelMsg(err, fmt.Sprintf(format, args...))
}

func topOf(e error) string {
	if ce, ok := e.(*chainError); ok {
		return ce.top
	}
	return ""
}

// chainError is one link in an annotated error chain. Each link holds at
// most one of msg (a failure) or context (an operation description), plus
// the propagated top-level message. The original error has a nil cause.
type chainError struct {
	cause   error
	context string
	msg     string
	top     string
}

// Error renders the chain: the top-level message first if one was ever set,
// then each link's context or message in wrapping order, with the original
// error last.
func (e *chainError) Error() string {
	var b strings.Builder
	if e.top != "" {
		b.WriteString(e.top)
		b.WriteString("\nFull error:\n")
	}
	e.render(&b)
	return b.String()
}

func (e *chainError) render(b *strings.Builder) {
	if e.context != "" {
		// Indent, and keep multi-line contexts indented as a block.
		b.WriteString("\t")
		b.WriteString(strings.ReplaceAll(e.context, "\n", "\n\t"))
		b.WriteString("\n")
	}
	if e.msg != "" {
		b.WriteString(e.msg)
		if e.cause != nil {
			b.WriteString("\n\tcaused by:\n")
		}
	}
	if e.cause == nil {
		return
	}
	if ce, ok := e.cause.(*chainError); ok {
		ce.render(b)
	} else {
		b.WriteString(e.cause.Error())
	}
}

// Format implements fmt.Formatter.
func (e *chainError) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's':
		io.WriteString(s, e.Error())
	case 'q':
		fmt.Fprintf(s, "%q", e.Error())
	}
}

// Unwrap returns the cause of this error if present.
func (e *chainError) Unwrap() error {
	return e.cause
}

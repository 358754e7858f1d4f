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

// Package log contains a re-targetable context-aware logging system for the
// stress tools. The campaign runner routes per-task progress through it, so
// an embedding program can swap the backend without touching the runner.
package log

import (
	"context"
	"fmt"
	"os"
)

// Severity is the severity of the log message.
type Severity int

const (
	SevUnspecified Severity = iota
	SevDebug
	SevInfo
	SevWarn
	SevError
	SevFatal
)

// Logger is a context-aware logging backend. Must be concurrency safe: the
// campaign runner logs from many goroutines.
type Logger interface {
	// Log logs the message in some implementation-dependent way. Log should
	// always return regardless of the severity.
	Log(ctx context.Context, sev Severity, msg string)
}

var logger Logger = &Standard{}

// SetLogger sets the global Logger. Intended to be called during
// initialization only.
func SetLogger(l Logger) {
	if l == nil {
		panic("Logger cannot be nil")
	}
	logger = l
}

// Output logs the given message to the global logger.
func Output(ctx context.Context, sev Severity, msg string) {
	logger.Log(ctx, sev, msg)
}

// Debugf writes the fmt.Sprintf-formatted arguments to the global logger
// with debug severity.
func Debugf(ctx context.Context, format string, v ...interface{}) {
	Output(ctx, SevDebug, fmt.Sprintf(format, v...))
}

// Infof writes the fmt.Sprintf-formatted arguments to the global logger
// with info severity.
func Infof(ctx context.Context, format string, v ...interface{}) {
	Output(ctx, SevInfo, fmt.Sprintf(format, v...))
}

// Warnf writes the fmt.Sprintf-formatted arguments to the global logger
// with warn severity.
func Warnf(ctx context.Context, format string, v ...interface{}) {
	Output(ctx, SevWarn, fmt.Sprintf(format, v...))
}

// Errorf writes the fmt.Sprintf-formatted arguments to the global logger
// with error severity.
func Errorf(ctx context.Context, format string, v ...interface{}) {
	Output(ctx, SevError, fmt.Sprintf(format, v...))
}

// Exitf writes the fmt.Sprintf-formatted arguments to the global logger
// with fatal severity. It then exits.
func Exitf(ctx context.Context, format string, v ...interface{}) {
	Output(ctx, SevFatal, fmt.Sprintf(format, v...))
	os.Exit(1)
}

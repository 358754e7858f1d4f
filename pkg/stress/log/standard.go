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

package log

import (
	"context"
	stdlog "log"
	slogger "log/slog"
)

// Standard is a wrapper over the standard Go logger. It is the default
// backend.
type Standard struct{}

// Log logs the message to the standard Go logger, prefixed with its
// severity.
func (s *Standard) Log(ctx context.Context, sev Severity, msg string) {
	stdlog.Printf("%v %v", sevName(sev), msg)
}

func sevName(sev Severity) string {
	switch sev {
	case SevDebug:
		return "DEBUG"
	case SevInfo:
		return "INFO"
	case SevWarn:
		return "WARN"
	case SevError:
		return "ERROR"
	case SevFatal:
		return "FATAL"
	default:
		return "?????"
	}
}

// Structural is a wrapper over slog.
type Structural struct{}

var slogFns = map[Severity]func(string, ...any){
	SevUnspecified: slogger.Info,
	SevDebug:       slogger.Debug,
	SevInfo:        slogger.Info,
	SevWarn:        slogger.Warn,
	SevError:       slogger.Error,
	SevFatal:       slogger.Error,
}

// Log logs the message to the structural Go logger. For fatal severities it
// does not perform the os.Exit call; that is left to the log wrapper.
func (s *Structural) Log(ctx context.Context, sev Severity, msg string) {
	fn, ok := slogFns[sev]
	if !ok {
		fn = slogger.Info
	}
	fn(msg)
}

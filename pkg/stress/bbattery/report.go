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

package bbattery

import (
	"fmt"
	"io"
	"time"

	"github.com/apache/commons-rng-stress/pkg/stress/stests"
)

// SuspectP bounds the unremarkable p-value range. Results outside
// [SuspectP, 1-SuspectP] are listed in the summary report.
const SuspectP = 0.001

// epsP is the underflow threshold below which a p-value prints as "eps".
const epsP = 1e-300

// Results holds the outcome of one battery run.
type Results struct {
	Battery   Battery
	Generator string
	Results   []stests.Result
	Elapsed   time.Duration
}

// Suspect returns the results whose p-values fall outside
// [SuspectP, 1-SuspectP], in battery order.
func (r *Results) Suspect() []stests.Result {
	var out []stests.Result
	for _, res := range r.Results {
		if res.P < SuspectP || res.P > 1-SuspectP {
			out = append(out, res)
		}
	}
	return out
}

// Failed reports whether any result is suspect.
func (r *Results) Failed() bool {
	return len(r.Suspect()) > 0
}

// Write renders the summary report.
func (r *Results) Write(w io.Writer) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	p("========= Summary results of %v =========\n\n", r.Battery)
	p(" Generator:        %v\n", r.Generator)
	p(" Number of statistics:  %v\n", len(r.Results))
	p(" Total CPU time:   %v\n\n", formatDuration(r.Elapsed))
	suspect := r.Suspect()
	if len(suspect) == 0 {
		p(" All tests were passed\n")
		return err
	}
	p(" The following tests gave p-values outside [%v, %.4f]:\n", SuspectP, 1-SuspectP)
	p(" (eps  means a value < %.1e):\n\n", epsP)
	p("       Test                          p-value\n")
	p(" ----------------------------------------------\n")
	for i, res := range r.Results {
		if res.P >= SuspectP && res.P <= 1-SuspectP {
			continue
		}
		p(" %2d  %-28s  %v\n", i+1, res.Name, formatP(res.P))
	}
	p(" ----------------------------------------------\n")
	p(" All other tests were passed\n")
	return err
}

// formatP renders a suspect p-value the way battery reports spell them:
// underflowed values as "eps", values hugging 1 by their distance to 1.
func formatP(p float64) string {
	switch {
	case p < epsP:
		return "eps"
	case p < SuspectP:
		return fmt.Sprintf("%.1e", p)
	case p > 1-epsP:
		return "1 - eps1"
	case p > 1-SuspectP:
		return fmt.Sprintf("1 - %.1e", 1-p)
	}
	return fmt.Sprintf("%.4f", p)
}

// formatDuration renders elapsed wall time as hh:mm:ss.cc.
func formatDuration(d time.Duration) string {
	h := d / time.Hour
	d -= h * time.Hour
	m := d / time.Minute
	d -= m * time.Minute
	s := d.Seconds()
	return fmt.Sprintf("%02d:%02d:%05.2f", h, m, s)
}

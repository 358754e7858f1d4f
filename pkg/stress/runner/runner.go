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

package runner

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/apache/commons-rng-stress/pkg/stress/bbattery"
	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
	"github.com/apache/commons-rng-stress/pkg/stress/log"
	"github.com/apache/commons-rng-stress/pkg/stress/rng"
	"github.com/apache/commons-rng-stress/pkg/stress/unif01"
)

// Outcome is the result of stressing one source.
type Outcome struct {
	// Source is the provider name.
	Source string
	// Index is the run's position in the campaign.
	Index int
	// Seed is the seed the run used.
	Seed uint64
	// Path is the report file.
	Path string
	// Suspect counts statistics with suspect p-values. It is zero for
	// bridge runs, whose verdict lives in the report file.
	Suspect int
	// Words counts the 32-bit words the run consumed. It is zero for
	// bridge runs.
	Words uint64
	// Duration is the run's wall time.
	Duration time.Duration
	// Err is set when the run could not complete.
	Err error
}

// Summary aggregates a campaign's outcomes in run order.
type Summary struct {
	Battery  string
	Outcomes []Outcome
}

// Failed reports whether any run errored or produced suspect p-values.
func (s *Summary) Failed() bool {
	for _, o := range s.Outcomes {
		if o.Err != nil || o.Suspect > 0 {
			return true
		}
	}
	return false
}

// Write renders the campaign summary table.
func (s *Summary) Write(w io.Writer) error {
	var err error
	p := func(format string, args ...interface{}) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}
	p("Campaign summary: battery %v, %v runs\n", s.Battery, len(s.Outcomes))
	for _, o := range s.Outcomes {
		verdict := "ok"
		switch {
		case o.Err != nil:
			verdict = fmt.Sprintf("error: %v", o.Err)
		case o.Suspect > 0:
			verdict = fmt.Sprintf("%v suspect", o.Suspect)
		}
		p("  %3d  %-20s  %-12s  %v\n", o.Index, o.Source, verdict, o.Path)
	}
	return err
}

// Run executes the campaign and returns its summary. Statistical
// failures and per-run errors are recorded in the summary; Run itself
// fails only when the campaign cannot proceed at all.
func Run(ctx context.Context, cfg *Config) (*Summary, error) {
	battery, err := bbattery.Parse(cfg.Battery)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Output, 0o755); err != nil {
		return nil, errors.Wrapf(err, "creating output directory %v", cfg.Output)
	}
	log.Infof(ctx, "campaign: battery %v, %v sources, seed %v, parallelism %v", battery, len(cfg.Sources), cfg.Seed, cfg.Parallelism)
	outcomes := make([]Outcome, len(cfg.Sources))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Parallelism)
	for i, name := range cfg.Sources {
		i, name := i, name
		g.Go(func() error {
			outcomes[i] = runOne(gctx, cfg, battery, name, i)
			if err := outcomes[i].Err; err != nil {
				log.Errorf(gctx, "run %v (%v) failed: %v", i, name, err)
			} else {
				log.Infof(gctx, "run %v (%v) done in %v, %v suspect", i, name, outcomes[i].Duration.Round(time.Millisecond), outcomes[i].Suspect)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &Summary{Battery: battery.String(), Outcomes: outcomes}, nil
}

func runOne(ctx context.Context, cfg *Config, battery bbattery.Battery, name string, index int) Outcome {
	out := Outcome{
		Source: name,
		Index:  index,
		Seed:   cfg.Seed + uint64(index),
		Path:   filepath.Join(cfg.Output, fmt.Sprintf("tu_%v_%v.txt", battery, index)),
	}
	start := time.Now()
	src, err := rng.New(name, out.Seed)
	if err != nil {
		out.Err = err
		return out
	}
	f, err := os.Create(out.Path)
	if err != nil {
		out.Err = errors.Wrapf(err, "creating report %v", out.Path)
		return out
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && out.Err == nil {
			out.Err = errors.Wrapf(cerr, "closing report %v", out.Path)
		}
		out.Duration = time.Since(start)
	}()
	if len(cfg.Bridge) > 0 {
		out.Err = runBridge(ctx, cfg, battery, src, f, out.Seed)
		writeTrailer(f, 0, time.Since(start))
		return out
	}
	counting := &countingSource{src: src}
	gen := unif01.FromSource(counting)
	writeHeader(f, gen, out.Seed, fmt.Sprintf("in-process battery %v", battery))
	results := bbattery.Run(gen, battery)
	out.Suspect = len(results.Suspect())
	out.Words = counting.words
	if err := results.Write(f); err != nil {
		out.Err = errors.Wrapf(err, "writing report %v", out.Path)
		return out
	}
	writeTrailer(f, counting.words, time.Since(start))
	return out
}

// runBridge pipes the source's words into the external bridge command
// until it exits, collecting its output in the report file.
func runBridge(ctx context.Context, cfg *Config, battery bbattery.Battery, src rng.Source, f *os.File, seed uint64) error {
	args := append(append([]string(nil), cfg.Bridge[1:]...), battery.String())
	writeHeader(f, src, seed, strings.Join(append([]string{cfg.Bridge[0]}, args...), " "))
	cmd := exec.CommandContext(ctx, cfg.Bridge[0], args...)
	cmd.Stdin = rng.NewStreamReader(src)
	cmd.Stdout = f
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return errors.SetTopLevelMsgf(errors.Wrapf(err, "bridge %v: %v", cfg.Bridge[0], stderr.String()),
			"External bridge %v failed on %v", cfg.Bridge[0], src.Name())
	}
	return nil
}

// describer is satisfied by generators that can print their own
// description, such as the unif01 adapters.
type describer interface {
	Describe(w io.Writer)
}

func writeHeader(f *os.File, src interface{ Name() string }, seed uint64, analyzer string) {
	fmt.Fprintf(f, "# RandomSource: %v\n", src.Name())
	fmt.Fprintf(f, "# Seed: %v\n", seed)
	fmt.Fprintf(f, "# Run ID: %v\n", uuid.New())
	fmt.Fprintf(f, "#\n")
	fmt.Fprintf(f, "# Runtime: %v %v/%v\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(f, "# Native byte-order: little-endian\n")
	fmt.Fprintf(f, "# Analyzer: %v\n", analyzer)
	if d, ok := src.(describer); ok {
		fmt.Fprintf(f, "# Generator: ")
		d.Describe(f)
		fmt.Fprintf(f, "\n")
	}
	fmt.Fprintf(f, "#\n")
}

func writeTrailer(f *os.File, words uint64, d time.Duration) {
	fmt.Fprintf(f, "#\n")
	if words > 0 {
		fmt.Fprintf(f, "# Words used: %v (%v)\n", humanize.Comma(int64(words)), humanize.Bytes(4*words))
	}
	fmt.Fprintf(f, "# Test duration (ms): %v\n", d.Milliseconds())
}

// countingSource counts the words drawn through it.
type countingSource struct {
	src   rng.Source
	words uint64
}

func (c *countingSource) Name() string { return c.src.Name() }

func (c *countingSource) Uint32() uint32 {
	c.words++
	return c.src.Uint32()
}

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

// Package runner drives stress campaigns: it fans a list of sources out
// over a battery, in process or through an external bridge command, and
// collects one report file per run.
package runner

import (
	"bytes"
	"os"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/apache/commons-rng-stress/pkg/stress/bbattery"
	"github.com/apache/commons-rng-stress/pkg/stress/internal/errors"
	"github.com/apache/commons-rng-stress/pkg/stress/rng"
)

// Config describes a stress campaign.
type Config struct {
	// Battery is the exact name of the battery to run: "SmallCrush",
	// "Crush" or "BigCrush".
	Battery string `yaml:"battery"`
	// Sources lists the provider names to stress. A name may repeat;
	// every entry is an independent run with its own seed.
	Sources []string `yaml:"sources"`
	// Seed is the campaign seed. Run i uses Seed + i. Zero means derive
	// a seed from the clock.
	Seed uint64 `yaml:"seed"`
	// Parallelism bounds the number of concurrent runs. Zero means one
	// run per available CPU.
	Parallelism int `yaml:"parallelism"`
	// Output is the directory report files are written to. Empty means
	// the working directory.
	Output string `yaml:"output"`
	// Bridge is the argv of an external battery bridge. When set, each
	// run pipes the source's words into this command with the battery
	// name appended as its final argument, instead of running the
	// battery in process.
	Bridge []string `yaml:"bridge,omitempty"`
}

// Load reads and validates a campaign config file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading config %v", path)
	}
	cfg, err := Parse(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "config %v", path)
	}
	return cfg, nil
}

// Marshal renders the config as YAML, the same shape Parse accepts.
func (c *Config) Marshal() ([]byte, error) {
	raw, err := yaml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, "encoding campaign config")
	}
	return raw, nil
}

// Parse decodes a campaign config, rejecting unknown fields, applies
// defaults and validates it.
func Parse(raw []byte) (*Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "decoding campaign config")
	}
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}
	if cfg.Parallelism == 0 {
		cfg.Parallelism = runtime.GOMAXPROCS(0)
	}
	if cfg.Output == "" {
		cfg.Output = "."
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Battery == "" {
		return errors.New("campaign config needs a battery")
	}
	if _, err := bbattery.Parse(c.Battery); err != nil {
		return errors.Wrap(err, "campaign config")
	}
	if len(c.Sources) == 0 {
		return errors.New("campaign config needs at least one source")
	}
	for _, name := range c.Sources {
		if !rng.Known(name) {
			return errors.Errorf("campaign config names unknown source %q", name)
		}
	}
	if c.Parallelism < 0 {
		return errors.Errorf("campaign parallelism must not be negative, got %v", c.Parallelism)
	}
	if len(c.Bridge) > 0 && c.Bridge[0] == "" {
		return errors.New("campaign bridge command is empty")
	}
	return nil
}

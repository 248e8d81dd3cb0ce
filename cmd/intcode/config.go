// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

// Config holds the settings read from the configuration file. Command line
// flags take precedence.
type Config struct {
	Run struct {
		Steps int64 `toml:"steps"`
		ASCII bool  `toml:"ascii"`
	} `toml:"run"`
	Log struct {
		Verbosity int    `toml:"verbosity"`
		File      string `toml:"file"`
	} `toml:"log"`
	ASCII struct {
		Prompt  string `toml:"prompt"`
		History string `toml:"history"`
	} `toml:"ascii"`
	Network struct {
		Size int   `toml:"size"`
		NAT  int64 `toml:"nat"`
	} `toml:"network"`
}

func defaultConfig() *Config {
	c := new(Config)
	c.ASCII.History = "~/.intcode_history"
	c.Network.Size = 50
	c.Network.NAT = int64(circuit.DefaultNAT)
	return c
}

// loadConfig reads the configuration file at path on top of the default
// configuration. An empty path returns the defaults.
func loadConfig(path string) (*Config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(expandHome(path), c)
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		log.Warningf("%s: unknown configuration keys %v", path, keys)
	}
	return c, nil
}

// merge copies settings from the configuration file f into c, except for
// those set on the command line.
func (c *Config) merge(fs *pflag.FlagSet, f *Config) {
	set := func(name string, apply func()) {
		if fl := fs.Lookup(name); fl == nil || !fl.Changed {
			apply()
		}
	}
	set("steps", func() { c.Run.Steps = f.Run.Steps })
	set("ascii", func() { c.Run.ASCII = f.Run.ASCII })
	set("verbose", func() { c.Log.Verbosity = f.Log.Verbosity })
	set("log", func() { c.Log.File = f.Log.File })
	set("prompt", func() { c.ASCII.Prompt = f.ASCII.Prompt })
	set("history", func() { c.ASCII.History = f.ASCII.History })
	set("size", func() { c.Network.Size = f.Network.Size })
	set("nat", func() { c.Network.NAT = f.Network.NAT })
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// parseCells parses a comma separated list of values. An empty string yields
// no values.
func parseCells(s string) ([]vm.Cell, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	img, err := vm.Parse(strings.NewReader(s))
	if err != nil {
		return nil, err
	}
	return img, nil
}

// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2019 Denis Bernard <db047h@gmail.com>
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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Config holds the settings read from the configuration file. Command line
// flags take precedence over these values.
type Config struct {
	Log     LogConfig     `toml:"log"`
	Run     RunConfig     `toml:"run"`
	Amp     AmpConfig     `toml:"amp"`
	Gravity GravityConfig `toml:"gravity"`
}

type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

type RunConfig struct {
	Input []vm.Cell `toml:"input"`
	Dump  bool      `toml:"dump"`
}

type AmpConfig struct {
	Phases   []vm.Cell `toml:"phases"`
	Feedback bool      `toml:"feedback"`
	Signal   vm.Cell   `toml:"signal"`
}

type GravityConfig struct {
	Target vm.Cell `toml:"target"`
	Limit  vm.Cell `toml:"limit"`
}

func defaultConfig() *Config {
	return &Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Amp: AmpConfig{Phases: []vm.Cell{0, 1, 2, 3, 4}},
		Gravity: GravityConfig{
			Target: 19690720,
			Limit:  100,
		},
	}
}

// loadConfig returns the default configuration updated with the contents of
// the given TOML file. An empty fileName yields the defaults.
func loadConfig(fileName string) (*Config, error) {
	cfg := defaultConfig()
	if fileName == "" {
		return cfg, nil
	}
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", fileName)
	}
	if keys := md.Undecoded(); len(keys) > 0 {
		return nil, errors.Errorf("config %s: unknown keys %v", fileName, keys)
	}
	if cfg.Gravity.Limit < 0 {
		return nil, errors.Errorf("config %s: negative gravity.limit", fileName)
	}
	return cfg, nil
}

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

// Package gravity runs Intcode programs used as two-input calculators: the
// inputs (noun and verb) are patched into memory cells 1 and 2 before running
// the program, and the result is read from cell 0 once it halts.
package gravity

import (
	"log/slog"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Addresses of the noun, verb and result cells.
const (
	NounAddr   = 1
	VerbAddr   = 2
	ResultAddr = 0
)

// ErrNotFound is returned by Search when no noun/verb pair yields the target.
var ErrNotFound = errors.New("gravity: no noun/verb pair produces the target value")

// Option configures Run and Search.
type Option func(*config)

type config struct {
	log  *slog.Logger
	opts []vm.Option
}

// Logger sets the logger used by Search.
func Logger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// VMOptions sets options passed to every VM created by Run and Search.
func VMOptions(opts ...vm.Option) Option {
	return func(c *config) { c.opts = append(c.opts, opts...) }
}

func newConfig(opts []Option) *config {
	c := new(config)
	for _, o := range opts {
		o(c)
	}
	if c.log == nil {
		c.log = slog.New(slog.DiscardHandler)
	}
	return c
}

// Patch returns a copy of program with noun and verb stored at addresses 1
// and 2.
func Patch(program vm.Image, noun, verb vm.Cell) (vm.Image, error) {
	if len(program) <= VerbAddr {
		return nil, errors.Errorf("Patch: program too short (%d cells)", len(program))
	}
	img := program.Clone()
	img[NounAddr] = noun
	img[VerbAddr] = verb
	return img, nil
}

// Run patches a copy of program with noun and verb, runs it without input and
// returns the value of cell 0 after the program halts.
func Run(program vm.Image, noun, verb vm.Cell, opts ...Option) (vm.Cell, error) {
	return newConfig(opts).run(program, noun, verb)
}

func (c *config) run(program vm.Image, noun, verb vm.Cell) (vm.Cell, error) {
	img, err := Patch(program, noun, verb)
	if err != nil {
		return 0, err
	}
	i, err := vm.New(img, c.opts...)
	if err != nil {
		return 0, err
	}
	if _, err = i.Run(nil); err != nil {
		return 0, err
	}
	return i.Image[ResultAddr], nil
}

// Search tries every noun and verb in [0, limit) and returns the first pair,
// by increasing noun then verb, for which Run returns target. Combinations
// that make the VM fault are skipped. If no pair matches, the returned error is
// ErrNotFound.
func Search(program vm.Image, target vm.Cell, limit vm.Cell, opts ...Option) (noun, verb vm.Cell, err error) {
	c := newConfig(opts)
	if len(program) <= VerbAddr {
		return 0, 0, errors.Errorf("Search: program too short (%d cells)", len(program))
	}
	for noun = 0; noun < limit; noun++ {
		for verb = 0; verb < limit; verb++ {
			v, err := c.run(program, noun, verb)
			if err != nil {
				var e *vm.Error
				if errors.As(err, &e) {
					c.log.Debug("fault", "noun", noun, "verb", verb, "err", err)
					continue
				}
				return 0, 0, err
			}
			if v == target {
				c.log.Info("found", "noun", noun, "verb", verb, "target", target)
				return noun, verb, nil
			}
		}
	}
	return 0, 0, ErrNotFound
}

// Answer combines noun and verb into a single value: 100*noun + verb.
func Answer(noun, verb vm.Cell) vm.Cell {
	return 100*noun + verb
}

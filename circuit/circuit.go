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

// Package circuit wires Intcode VMs together: a series chain of amplifiers,
// and a feedback ring where the output of the last amplifier is fed back to
// the first one.
//
// Everything runs on the caller's goroutine. VMs are interleaved with
// vm.Instance.RunUntilNextOutput: each hop carries a single signal value, so no
// VM ever has more than one pending input.
package circuit

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Option configures a circuit.
type Option func(*config)

type config struct {
	log  *slog.Logger
	opts []vm.Option
}

// Logger sets the logger used to report priming and signal hops at debug
// level.
func Logger(l *slog.Logger) Option {
	return func(c *config) { c.log = l }
}

// VMOptions sets options passed to every VM created by the circuit.
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

// Chain runs one amplifier per phase setting in series. Each amplifier runs the
// program to completion with input [phase, signal], and its last output
// becomes the signal of the next one. The first amplifier gets signal as input.
// The last output of the last amplifier is returned.
func Chain(program vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (vm.Cell, error) {
	c := newConfig(opts)
	for n, phase := range phases {
		i, err := vm.New(program.Clone(), c.opts...)
		if err != nil {
			return 0, err
		}
		out, err := i.Run(vm.Values(phase, signal))
		if err != nil {
			return 0, errors.Wrapf(err, "amplifier %d", n)
		}
		if len(out) == 0 {
			return 0, errors.Errorf("amplifier %d: no output", n)
		}
		c.log.Debug("signal", "amp", n, "phase", phase, "in", signal, "out", out[len(out)-1])
		signal = out[len(out)-1]
	}
	return signal, nil
}

// Ring is a feedback loop of amplifiers.
type Ring struct {
	amps []*vm.Instance
	log  *slog.Logger
}

// NewRing creates a ring with one amplifier per phase setting. Each amplifier
// runs its own copy of program and is primed with its phase setting.
func NewRing(program vm.Image, phases []vm.Cell, opts ...Option) (*Ring, error) {
	if len(phases) == 0 {
		return nil, errors.New("NewRing: no phase settings")
	}
	c := newConfig(opts)
	r := &Ring{amps: make([]*vm.Instance, len(phases)), log: c.log}
	for n, phase := range phases {
		i, err := vm.New(program.Clone(), c.opts...)
		if err != nil {
			return nil, err
		}
		if err = i.RunUntilNextInput(vm.Once(phase)); err != nil {
			return nil, errors.Wrapf(err, "amplifier %d: priming", n)
		}
		r.log.Debug("primed", "amp", n, "phase", phase, "ip", i.IP)
		r.amps[n] = i
	}
	return r, nil
}

// Len returns the number of amplifiers in the ring.
func (r *Ring) Len() int {
	return len(r.amps)
}

// Amp returns the n-th amplifier.
func (r *Ring) Amp(n int) *vm.Instance {
	return r.amps[n]
}

// Run feeds signal to the first amplifier and passes values around the ring
// until an amplifier halts instead of producing a value. It returns the last
// signal produced by the last amplifier, or the initial signal if the ring
// never completed a loop.
func (r *Ring) Run(signal vm.Cell) (vm.Cell, error) {
	return r.RunContext(context.Background(), signal)
}

// RunContext is like Run but checks ctx before each loop around the ring.
func (r *Ring) RunContext(ctx context.Context, signal vm.Cell) (vm.Cell, error) {
	for loop := 0; ; loop++ {
		if err := ctx.Err(); err != nil {
			return signal, err
		}
		v := signal
		for n, amp := range r.amps {
			out, ok, err := amp.RunUntilNextOutput(vm.Once(v))
			if err != nil {
				return signal, errors.Wrapf(err, "amplifier %d", n)
			}
			if !ok {
				r.log.Debug("halted", "amp", n, "loop", loop, "signal", signal)
				return signal, nil
			}
			r.log.Debug("signal", "amp", n, "loop", loop, "in", v, "out", out)
			v = out
		}
		signal = v
	}
}

// Feedback creates a ring for the given phase settings and runs it.
func Feedback(program vm.Image, phases []vm.Cell, signal vm.Cell, opts ...Option) (vm.Cell, error) {
	r, err := NewRing(program, phases, opts...)
	if err != nil {
		return 0, err
	}
	return r.Run(signal)
}

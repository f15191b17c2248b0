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

package circuit

import (
	"github.com/pkg/errors"

	"github.com/db47h/intcode/vm"
)

// Permute calls fn for every permutation of values, using Heap's algorithm.
// The slice passed to fn is reused between calls and must be copied if
// retained. Iteration stops at the first error returned by fn. values is not
// modified.
func Permute(values []vm.Cell, fn func(p []vm.Cell) error) error {
	p := append([]vm.Cell(nil), values...)
	c := make([]int, len(p))
	if err := fn(p); err != nil {
		return err
	}
	for i := 1; i < len(p); {
		if c[i] < i {
			if i%2 == 0 {
				p[0], p[i] = p[i], p[0]
			} else {
				p[c[i]], p[i] = p[i], p[c[i]]
			}
			if err := fn(p); err != nil {
				return err
			}
			c[i]++
			i = 1
		} else {
			c[i] = 0
			i++
		}
	}
	return nil
}

// MaxSignal tries every permutation of phases and returns the highest signal
// produced, along with the phase setting producing it. If feedback is true,
// amplifiers are wired in a ring (see Feedback), otherwise in series (see
// Chain).
func MaxSignal(program vm.Image, phases []vm.Cell, feedback bool, signal vm.Cell, opts ...Option) (best vm.Cell, setting []vm.Cell, err error) {
	if len(phases) == 0 {
		return 0, nil, errors.New("MaxSignal: no phase settings")
	}
	run := Chain
	if feedback {
		run = Feedback
	}
	c := newConfig(opts)
	err = Permute(phases, func(p []vm.Cell) error {
		v, err := run(program, p, signal, opts...)
		if err != nil {
			return errors.Wrapf(err, "phases %v", p)
		}
		if setting == nil || v > best {
			best = v
			setting = append(setting[:0], p...)
		}
		return nil
	})
	if err != nil {
		return 0, nil, err
	}
	c.log.Info("max signal", "signal", best, "phases", setting, "feedback", feedback)
	return best, setting, nil
}

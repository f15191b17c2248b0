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

package circuit_test

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
)

type C = []vm.Cell

func parse(t *testing.T, s string) vm.Image {
	t.Helper()
	img, err := vm.ParseString(s)
	require.NoError(t, err)
	return img
}

var chainTests = []struct {
	code   string
	phases C
	signal vm.Cell
}{
	{"3,15,3,16,1002,16,10,16,1,16,15,15,4,15,99,0,0", C{4, 3, 2, 1, 0}, 43210},
	{"3,23,3,24,1002,24,10,24,1002,23,-1,23,101,5,23,23,1,24,23,23,4,23,99,0,0", C{0, 1, 2, 3, 4}, 54321},
	{"3,31,3,32,1002,32,10,32,1001,31,-2,31,1007,31,0,33,1002,33,7,33,1,33,31,31,1,32,31,31,4,31,99,0,0,0", C{1, 0, 4, 3, 2}, 65210},
}

var feedbackTests = []struct {
	code   string
	phases C
	signal vm.Cell
}{
	{"3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5", C{9, 8, 7, 6, 5}, 139629729},
	{"3,52,1001,52,-5,52,3,53,1,52,56,54,1007,54,5,55,1005,55,26,1001,54,-5,54,1105,1,12,1,53,54,53,1008,54,0,55,1001,55,1,55,2,53,55,53,4,53,1001,56,-1,56,1005,56,6,99,0,0,0,0,10", C{9, 7, 8, 5, 6}, 18216},
}

func TestChain(t *testing.T) {
	for _, test := range chainTests {
		img := parse(t, test.code)
		orig := img.Clone()
		v, err := circuit.Chain(img, test.phases, 0)
		require.NoError(t, err)
		assert.Equal(t, test.signal, v)
		assert.Equal(t, orig, img, "program modified")
	}
}

func TestFeedback(t *testing.T) {
	for _, test := range feedbackTests {
		img := parse(t, test.code)
		orig := img.Clone()
		v, err := circuit.Feedback(img, test.phases, 0)
		require.NoError(t, err)
		assert.Equal(t, test.signal, v)
		assert.Equal(t, orig, img, "program modified")
	}
}

func TestRing(t *testing.T) {
	r, err := circuit.NewRing(parse(t, feedbackTests[0].code), feedbackTests[0].phases)
	require.NoError(t, err)
	require.Equal(t, 5, r.Len())
	for n := 0; n < r.Len(); n++ {
		// primed: phase consumed, waiting for the first signal
		assert.Equal(t, 2, r.Amp(n).IP)
		assert.Equal(t, 9-vm.Cell(n), r.Amp(n).Image[26])
	}
	// VMs do not share memory
	r.Amp(0).Image[28] = 42
	assert.Equal(t, vm.Cell(5), r.Amp(1).Image[28])
	r.Amp(0).Image[28] = 5

	v, err := r.Run(0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(139629729), v)
	assert.True(t, r.Amp(0).Halted())
}

func TestRing_haltFirst(t *testing.T) {
	// reads the phase then halts
	v, err := circuit.Feedback(parse(t, "3,0,99"), C{1, 2}, 7)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(7), v)
}

func TestRing_errors(t *testing.T) {
	_, err := circuit.NewRing(parse(t, "3,0,99"), nil)
	assert.Error(t, err)

	// priming fails on a bad opcode
	_, err = circuit.NewRing(parse(t, "42"), C{1})
	assert.True(t, errors.Is(err, vm.IllegalOpcode))
	assert.Contains(t, err.Error(), "amplifier 0: priming")

	// amplifiers want two inputs per output
	r, err := circuit.NewRing(parse(t, "3,0,3,0,3,0,4,0,99"), C{1, 2})
	require.NoError(t, err)
	_, err = r.Run(0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, vm.InputExhausted))
	assert.Contains(t, err.Error(), "amplifier 0")
}

func TestRing_context(t *testing.T) {
	// echo forever
	r, err := circuit.NewRing(parse(t, "3,9,4,9,1105,1,0,99,0,0"), C{0, 0})
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = r.RunContext(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestChain_errors(t *testing.T) {
	_, err := circuit.Chain(parse(t, "3,0,3,0,99"), C{1}, 0)
	assert.Contains(t, err.Error(), "no output")

	_, err = circuit.Chain(parse(t, "3,0,99"), C{1, 2}, 0)
	assert.Error(t, err)

	_, err = circuit.Chain(parse(t, "3,0,3,0,3,0,99"), C{1}, 0)
	assert.True(t, errors.Is(err, vm.InputExhausted))
}

func TestPermute(t *testing.T) {
	values := C{1, 2, 3, 4}
	seen := make(map[string]bool)
	err := circuit.Permute(values, func(p []vm.Cell) error {
		s := append(C(nil), p...)
		sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
		assert.Equal(t, C{1, 2, 3, 4}, s)
		seen[fmt.Sprint(p)] = true
		return nil
	})
	require.NoError(t, err)
	assert.Len(t, seen, 24)
	assert.Equal(t, C{1, 2, 3, 4}, values)

	n := 0
	stop := errors.New("stop")
	err = circuit.Permute(values, func(p []vm.Cell) error {
		n++
		if n == 3 {
			return stop
		}
		return nil
	})
	assert.Equal(t, stop, err)
	assert.Equal(t, 3, n)

	n = 0
	require.NoError(t, circuit.Permute(nil, func(p []vm.Cell) error { n++; return nil }))
	assert.Equal(t, 1, n)
}

func TestMaxSignal(t *testing.T) {
	for _, test := range chainTests {
		v, setting, err := circuit.MaxSignal(parse(t, test.code), C{0, 1, 2, 3, 4}, false, 0)
		require.NoError(t, err)
		assert.Equal(t, test.signal, v)
		assert.Equal(t, test.phases, setting)
	}
	for _, test := range feedbackTests {
		v, setting, err := circuit.MaxSignal(parse(t, test.code), C{5, 6, 7, 8, 9}, true, 0)
		require.NoError(t, err)
		assert.Equal(t, test.signal, v)
		assert.Equal(t, test.phases, setting)
	}
	_, _, err := circuit.MaxSignal(parse(t, "99"), nil, false, 0)
	assert.Error(t, err)
}

func TestLogger(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))
	_, err := circuit.Feedback(parse(t, feedbackTests[0].code), feedbackTests[0].phases, 0, circuit.Logger(l))
	require.NoError(t, err)
	assert.Contains(t, b.String(), "msg=primed amp=0 phase=9 ip=2")
	assert.Contains(t, b.String(), "msg=halted amp=0 loop=5 signal=139629729")
}

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

package gravity_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/gravity"
	"github.com/db47h/intcode/vm"
)

// cell 0 = mem[noun] + mem[verb]
var adder = vm.Image{1, 0, 0, 0, 99, 10, 20, 30}

func TestPatch(t *testing.T) {
	img, err := gravity.Patch(adder, 12, 2)
	require.NoError(t, err)
	assert.Equal(t, vm.Image{1, 12, 2, 0, 99, 10, 20, 30}, img)
	assert.Equal(t, vm.Cell(0), adder[1], "program modified")

	_, err = gravity.Patch(vm.Image{1, 2}, 0, 0)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	v, err := gravity.Run(vm.Image{1, 9, 10, 3, 2, 3, 11, 0, 99, 30, 40, 50}, 9, 10)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(3500), v)

	v, err = gravity.Run(adder, 5, 7)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(40), v)

	_, err = gravity.Run(adder, 5, 8)
	assert.True(t, errors.Is(err, vm.IllegalAddress))
}

func TestSearch(t *testing.T) {
	var b bytes.Buffer
	l := slog.New(slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelDebug}))
	noun, verb, err := gravity.Search(adder, 50, 10, gravity.Logger(l))
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(6), noun)
	assert.Equal(t, vm.Cell(7), verb)
	assert.Equal(t, vm.Cell(607), gravity.Answer(noun, verb))
	assert.Contains(t, b.String(), "msg=found noun=6 verb=7 target=50")
	// noun 0, verb 8 is out of bounds
	assert.Contains(t, b.String(), "msg=fault noun=0 verb=8")

	_, _, err = gravity.Search(adder, 1000, 8)
	assert.Equal(t, gravity.ErrNotFound, err)

	// every combination wants input
	_, _, err = gravity.Search(vm.Image{3, 0, 0, 99}, 0, 4)
	assert.Equal(t, gravity.ErrNotFound, err)

	_, _, err = gravity.Search(vm.Image{99}, 0, 4)
	assert.Error(t, err)
	assert.NotEqual(t, gravity.ErrNotFound, err)
}

func TestAnswer(t *testing.T) {
	assert.Equal(t, vm.Cell(1202), gravity.Answer(12, 2))
	assert.Equal(t, vm.Cell(9), gravity.Answer(0, 9))
}

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

package asm_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

const echo = `
( echo input values until a 0 is read )
:loop	in @x
		out @x
		jt @x loop
		hlt
:x		.dat 0
`

func TestAssemble(t *testing.T) {
	img, err := asm.Assemble("echo", strings.NewReader(echo))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 8, 4, 8, 1005, 8, 0, 99, 0}, img)

	i, err := vm.New(img)
	require.NoError(t, err)
	out, err := i.Run(vm.Values(3, 2, 0))
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{3, 2, 0}, out)
}

func TestAssemble_directives(t *testing.T) {
	code := `
		.equ N 5
		add N @n @n		( n += N )
		halt
		.org 10
:n		.dat 'A'
		.dat n
		.dat -0x10
	`
	img, err := asm.Assemble("directives", strings.NewReader(code))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{101, 5, 10, 10, 99, 0, 0, 0, 0, 0, 65, 10, -16}, img)

	i, err := vm.New(img)
	require.NoError(t, err)
	_, err = i.Run(nil)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(70), i.Image[10])
}

func TestAssemble_aliases(t *testing.T) {
	img, err := asm.Assemble("aliases", strings.NewReader("read @0 write 7 jnz 0 0 jz 1 0 mul @0 @0 @0 lt 1 2 @0 eq 1 1 @0 halt"))
	require.NoError(t, err)
	assert.Equal(t, vm.Image{3, 0, 104, 7, 1105, 0, 0, 1106, 1, 0, 2, 0, 0, 0, 1107, 1, 2, 0, 1108, 1, 1, 0, 99}, img)
}

// check some errors. We're not checking the messages, rather that they point at
// the correct place.
func TestAssemble_errors(t *testing.T) {
	code := `
	add 1 2 3
	foo
	jt 1 nowhere
	.bar
	:x :x
	.org -1
	.dat @y
`
	_, err := asm.Assemble("test_errors", strings.NewReader(code))
	require.Error(t, err)
	errs, ok := err.(asm.ErrAsm)
	require.True(t, ok)

	want := []struct {
		msg string
		at  string
	}{
		{"immediate write target", "3"},
		{"unknown mnemonic", "foo"},
		{"unknown dot directive", ".bar"},
		{"label redefinition", ":x"},
		{".org: expected address", "-1"},
		{"invalid label name", "@y"},
		{"undefined label nowhere", "nowhere"},
	}
	require.Len(t, errs, len(want))
	for k, e := range errs {
		assert.Contains(t, e.Msg, want[k].msg)
		o := e.Pos.Offset
		assert.True(t, strings.HasPrefix(code[o:], want[k].at), "error %q points to %q", e.Msg, code[o:])
		assert.Equal(t, "test_errors", e.Pos.Filename)
	}
	assert.Contains(t, err.Error(), "test_errors:2:")
}

func TestAssemble_missingOperand(t *testing.T) {
	_, err := asm.Assemble("short", strings.NewReader("hlt\nadd 1 2"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "short:2:1: missing operand for add")

	_, err = asm.Assemble("short", strings.NewReader(".dat"))
	assert.Error(t, err)
}

func TestDisassemble(t *testing.T) {
	img := vm.Image{1002, 4, 3, 4, 33, 0, 20004, 5, 1}
	var b bytes.Buffer
	var lines []string
	for pc := 0; pc < len(img); {
		b.Reset()
		var err error
		pc, err = asm.Disassemble(img, pc, &b)
		require.NoError(t, err)
		lines = append(lines, b.String())
	}
	assert.Equal(t, []string{
		"mul @4 3 @4",
		".dat 33",
		".dat 0",
		".dat 20004",
		".dat 5",
		".dat 1",
	}, lines)
}

// Disassembling then reassembling a program yields the same program.
func TestDisassemble_roundTrip(t *testing.T) {
	src := "3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"
	img, err := vm.ParseString(src)
	require.NoError(t, err)

	var b bytes.Buffer
	for pc := 0; pc < len(img); {
		pc, err = asm.Disassemble(img, pc, &b)
		require.NoError(t, err)
		b.WriteByte('\n')
	}
	got, err := asm.Assemble("roundtrip", &b)
	require.NoError(t, err)
	assert.Equal(t, src, got.String())
}

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

package asm

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

var opcodes = map[vm.Opcode][]string{
	vm.OpAdd:         {"add"},
	vm.OpMul:         {"mul"},
	vm.OpIn:          {"in", "read"},
	vm.OpOut:         {"out", "write"},
	vm.OpJumpIfTrue:  {"jt", "jnz"},
	vm.OpJumpIfFalse: {"jf", "jz"},
	vm.OpLessThan:    {"lt"},
	vm.OpEquals:      {"eq"},
	vm.OpHalt:        {"hlt", "halt"},
}

var opcodeIndex = func() map[string]vm.Opcode {
	idx := make(map[string]vm.Opcode)
	for op, names := range opcodes {
		for _, n := range names {
			idx[n] = op
		}
	}
	return idx
}()

// target returns the index of the operand written to by op, or -1.
func target(op vm.Opcode) int {
	switch op {
	case vm.OpAdd, vm.OpMul, vm.OpLessThan, vm.OpEquals:
		return 2
	case vm.OpIn:
		return 0
	}
	return -1
}

// ErrAsm encapsulates errors generated by the assembler.
type ErrAsm []struct {
	Pos scanner.Position
	Msg string
}

func (e ErrAsm) Error() string {
	var b strings.Builder
	for i, err := range e {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(err.Pos.String())
		b.WriteString(": ")
		b.WriteString(err.Msg)
	}
	return b.String()
}

// Assemble compiles assembly read from the supplied io.Reader and returns the
// resulting image and error if any.
//
// Then name parameter is used only in error messages to name the source of the
// error. If the io.Reader is a file, name should be the file name.
//
// The returned error, if not nil, can safely be cast to an ErrAsm value that
// will contain up to 10 entries.
func Assemble(name string, r io.Reader) (img vm.Image, err error) {
	p := newParser()
	if err = p.Parse(name, r); err != nil {
		return nil, err
	}
	return p.i[:p.end], nil
}

// Disassemble writes a disassembly of the cells in the given slice at position
// pc to the specified io.Writer and returns the position of the next
// instruction and any write error.
//
// Cells that do not decode to a valid instruction, or that would not assemble
// back to the same cells, are written as a .dat directive.
func Disassemble(img []vm.Cell, pc int, w io.Writer) (next int, err error) {
	ew := ici.NewErrWriter(w)
	ins, err := vm.Decode(img, pc)
	if err == nil && ins.Encode()[0] == img[pc] {
		io.WriteString(ew, ins.String())
		return pc + ins.Len(), ew.Err
	}
	io.WriteString(ew, ".dat ")
	if pc >= 0 && pc < len(img) {
		io.WriteString(ew, strconv.FormatInt(int64(img[pc]), 10))
	} else {
		io.WriteString(ew, "???")
	}
	return pc + 1, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given slice to
// the specified io.Writer. Each line starts with the address of the
// instruction. It will return any write error.
func DisassembleAll(img []vm.Cell, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	for pc := 0; pc < len(img); {
		fmt.Fprintf(ew, "% 6d\t", pc)
		pc, _ = Disassemble(img, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

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

package vm

import "strings"

// Instruction is a decoded instruction: an opcode and its resolved operands.
// Only the first Op.Operands() entries of Args are meaningful.
type Instruction struct {
	Op   Opcode
	Args [3]Addr
}

// Len returns the instruction length in cells.
func (ins Instruction) Len() int {
	return ins.Op.Len()
}

// Operands returns the instruction's operands.
func (ins Instruction) Operands() []Addr {
	return ins.Args[:ins.Op.Operands()]
}

func (ins Instruction) String() string {
	var b strings.Builder
	b.WriteString(ins.Op.String())
	for _, a := range ins.Operands() {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	return b.String()
}

// Encode returns the instruction in memory form. It is the inverse of Decode
// for instructions that carry no unused mode digits.
func (ins Instruction) Encode() []Cell {
	cells := make([]Cell, ins.Len())
	cells[0] = Cell(ins.Op)
	m := Cell(100)
	for k, a := range ins.Operands() {
		cells[0] += Cell(a.Mode) * m
		cells[k+1] = a.Value
		m *= 10
	}
	return cells
}

// Decode decodes the instruction at position ip in mem. It does not modify mem.
//
// The cell at ip is split in radix 100: the low digits are the opcode, the
// remaining value holds one decimal mode digit per operand, first operand in
// the lowest digit. Missing mode digits default to Absolute.
func Decode(mem []Cell, ip int) (Instruction, error) {
	if ip < 0 || ip >= len(mem) {
		return Instruction{}, &Error{Errno: IllegalAddress, IP: ip, Addr: Cell(ip)}
	}
	d := NewDigits(mem[ip], 100)
	op, _ := d.Next()
	ins := Instruction{Op: Opcode(op)}
	if !ins.Op.Valid() {
		return Instruction{}, fault(IllegalOpcode, ip, ins.Op)
	}
	modes := NewDigits(d.Rest(), 10).Pad(ins.Op.Operands())
	for k, m := range modes {
		p := ip + 1 + k
		if p >= len(mem) {
			e := fault(IllegalAddress, ip, ins.Op)
			e.Addr = Cell(p)
			return Instruction{}, e
		}
		a, err := ModeAddr(m, mem[p])
		if err != nil {
			e := fault(IllegalMode, ip, ins.Op)
			e.Mode = Mode(m)
			return Instruction{}, e
		}
		ins.Args[k] = a
	}
	return ins, nil
}

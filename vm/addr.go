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

import "strconv"

// Mode is an operand addressing mode.
type Mode Cell

// Addressing modes. There is no relative mode.
const (
	Absolute  Mode = 0 // operand is a memory address
	Immediate Mode = 1 // operand is a literal value, read only
)

// Addr is a resolved operand: either an absolute memory address or an
// immediate value.
type Addr struct {
	Mode  Mode
	Value Cell
}

// Abs returns an absolute operand for memory address a.
func Abs(a Cell) Addr { return Addr{Absolute, a} }

// Imm returns an immediate operand for value v.
func Imm(v Cell) Addr { return Addr{Immediate, v} }

// ModeAddr resolves the raw operand value v according to mode. Any mode other
// than Absolute or Immediate yields an IllegalMode error.
func ModeAddr(mode, v Cell) (Addr, error) {
	switch Mode(mode) {
	case Absolute, Immediate:
		return Addr{Mode(mode), v}, nil
	}
	return Addr{}, &Error{Errno: IllegalMode, Mode: Mode(mode)}
}

// String returns the operand in assembler syntax: @n for absolute addresses and
// n for immediate values.
func (a Addr) String() string {
	s := strconv.FormatInt(int64(a.Value), 10)
	if a.Mode == Absolute {
		return "@" + s
	}
	return s
}

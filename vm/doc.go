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

// Package vm implements an Intcode virtual machine.
//
// An Intcode program is a flat sequence of integers where every cell may be
// code or data. Instructions are made of an opcode cell followed by up to three
// operand cells. The two low decimal digits of the opcode cell select the
// operation, the higher digits select the addressing mode of each operand,
// first operand in the lowest digit:
//
//	opcode	asm	operands	description
//	------	---	--------	---------------------------------------------
//	1	add	a b c		c = a + b
//	2	mul	a b c		c = a * b
//	3	in	a		a = next input value
//	4	out	a		append a to the output sequence
//	5	jt	a b		if a != 0, jump to b
//	6	jf	a b		if a == 0, jump to b
//	7	lt	a b c		c = 1 if a < b, else 0
//	8	eq	a b c		c = 1 if a == b, else 0
//	99	hlt			halt
//
// Mode 0 (Absolute) operands are memory addresses, mode 1 (Immediate) operands
// are literal values and cannot be written to. Relative addressing (mode 2) is
// not supported: programs using it fail to decode with an IllegalMode error.
//
// Execution is resumable. Besides Step and Run, RunUntilNextOutput and
// RunUntilNextInput return control to the caller with the VM state intact, so
// that several instances can be chained or wired in a feedback loop by a
// single goroutine. See package github.com/db47h/intcode/circuit.
//
// All faults are reported as *Error values, with the VM left on the faulting
// instruction.
package vm

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

// Package asm provides utility functions to assemble and disassemble Intcode
// programs.
//
// Supported assembler mnemonics:
//
//	opcode	asm		operands	description
//	------	---		--------	----------------------------------------
//	1	add		a b c		c = a + b
//	2	mul		a b c		c = a * b
//	3	in, read	a		a = next input value
//	4	out, write	a		output a
//	5	jt, jnz		a b		jump to b if a != 0
//	6	jf, jz		a b		jump to b if a == 0
//	7	lt		a b c		c = 1 if a < b, else 0
//	8	eq		a b c		c = 1 if a == b, else 0
//	99	hlt, halt			halt
//
// Operands:
//
// An operand prefixed with '@' is an absolute (position mode) operand: it
// designates the memory cell at that address. Any other operand is an immediate
// value. Operands that are written to (the last operand of add, mul, lt and eq,
// and the operand of in) must be absolute.
//
//	add @x 1 @x	( increment the cell at label x )
//	jt @x loop	( jump to label loop if the cell at x is not 0 )
//
// The assembler computes the mode digits of each instruction, so the above
// compiles to 1001 x 1 x 1105 x loop (with x and loop replaced by addresses).
//
// Literals and label/const identifiers:
//
// Input is split at white space into tokens. Where a value is expected:
//
//	- If a token can be converted to a Go integer (see strconv.ParseInt), it will
//	  be converted to an integer literal.
//	- If it is a Go character literal between single quotes, it will be converted to
//	  the corresponding integer literal.
//	- If a token is the name of a defined constant, it will be replaced by the
//	  constant's value.
//	- Otherwise, the token is a label reference and is replaced by the label's
//	  address.
//
// Comments:
//
// Comments are placed between parentheses, i.e. '(' and ')'. The body of the
// comment must be separated from the enclosing parentheses by a space.
//
// Labels:
//
// Labels are defined by prefixing them with a colon (:). Forward references
// are fine.
//
//	:loop	in @x
//		out @x
//		jt @x loop
//		hlt
//	:x	.dat 0
//
// Assembler directives:
//
//	.equ <IDENTIFIER> <value>
//
// defines a constant value.
//
//	.org <value>
//
// Will place the next instruction at the address specified by the given integer
// literal or named constant. Skipped cells are set to 0.
//
//	.dat <value>
//
// Will compile the specified integer value, named constant, character literal
// or label address as-is.
package asm

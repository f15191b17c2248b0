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

// Digits produces the digits of a non-negative value in a given radix, least
// significant first. The sequence stops as soon as the remaining value reaches
// zero: it is not padded to any fixed width, and a value of zero yields no
// digits at all.
//
// A Digits value is consumed by iteration. To restart, build a new one.
type Digits struct {
	value Cell
	radix Cell
}

// NewDigits returns a digit sequence for v in the given radix. It panics if
// radix < 2.
func NewDigits(v, radix Cell) *Digits {
	if radix < 2 {
		panic("vm: invalid radix")
	}
	return &Digits{value: v, radix: radix}
}

// Next returns the next digit. ok is false once the sequence is exhausted.
func (d *Digits) Next() (digit Cell, ok bool) {
	if d.value == 0 {
		return 0, false
	}
	digit = d.value % d.radix
	d.value /= d.radix
	return digit, true
}

// Rest returns the value made of the digits not yet produced.
func (d *Digits) Rest() Cell {
	return d.value
}

// Pad consumes n digits and returns them, using 0 for every position beyond
// the end of the sequence.
func (d *Digits) Pad(n int) []Cell {
	ds := make([]Cell, n)
	for k := range ds {
		ds[k], _ = d.Next()
	}
	return ds
}

// All consumes the remaining digits and returns them.
func (d *Digits) All() []Cell {
	var ds []Cell
	for v, ok := d.Next(); ok; v, ok = d.Next() {
		ds = append(ds, v)
	}
	return ds
}

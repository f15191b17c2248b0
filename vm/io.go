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

// Input is a pull based source of input values. Next returns the next value
// and true, or false once the source is exhausted. Each value is consumed by a
// single in instruction.
type Input interface {
	Next() (Cell, bool)
}

// InputFunc adapts an ordinary function to the Input interface.
type InputFunc func() (Cell, bool)

// Next implements Input.
func (f InputFunc) Next() (Cell, bool) { return f() }

// Values returns an Input that yields the given values in order.
func Values(v ...Cell) Input {
	s := sliceInput(v)
	return &s
}

// Once returns an Input that yields v only once.
func Once(v Cell) Input {
	return Values(v)
}

type sliceInput []Cell

func (s *sliceInput) Next() (Cell, bool) {
	if len(*s) == 0 {
		return 0, false
	}
	v := (*s)[0]
	*s = (*s)[1:]
	return v, true
}

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

// Memory is the operand access interface used by the executor. *Instance
// implements it over its own Image; tests may substitute their own.
type Memory interface {
	// Load returns the value designated by a: the memory cell at a.Value for
	// absolute operands or a.Value itself for immediate ones.
	Load(a Addr) (Cell, error)
	// Store writes v to the memory cell designated by a. Storing through an
	// immediate operand is an error.
	Store(a Addr, v Cell) error
}

// Load implements Memory.
func (i *Instance) Load(a Addr) (Cell, error) {
	var v Cell
	switch a.Mode {
	case Absolute:
		if a.Value < 0 || a.Value >= Cell(len(i.Image)) {
			return 0, i.addrFault(a.Value)
		}
		v = i.Image[a.Value]
	case Immediate:
		v = a.Value
	default:
		e := i.fault(IllegalMode)
		e.Mode = a.Mode
		return 0, e
	}
	if i.trace {
		i.tracef("load", "addr", a, "value", v)
	}
	return v, nil
}

// Store implements Memory.
func (i *Instance) Store(a Addr, v Cell) error {
	if a.Mode != Absolute {
		return i.fault(ImmediateWrite)
	}
	if a.Value < 0 || a.Value >= Cell(len(i.Image)) {
		return i.addrFault(a.Value)
	}
	if i.trace {
		i.tracef("store", "addr", a, "value", v)
	}
	i.Image[a.Value] = v
	return nil
}

// fault returns an error for the instruction at IP. The opcode is filled in
// when the cell at IP can be decoded.
func (i *Instance) fault(errno Errno) *Error {
	e := &Error{Errno: errno, IP: i.IP}
	if i.IP >= 0 && i.IP < len(i.Image) {
		e.Op = Opcode(i.Image[i.IP] % 100)
	}
	return e
}

func (i *Instance) addrFault(a Cell) *Error {
	e := i.fault(IllegalAddress)
	e.Addr = a
	return e
}

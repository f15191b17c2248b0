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

// binop is a binary operation on two loaded operands, stored to a third.
type binop uint8

const (
	opAdd binop = iota
	opMul
	opLess
	opEqual
)

func (o binop) eval(a, b Cell) Cell {
	switch o {
	case opAdd:
		return a + b
	case opMul:
		return a * b
	case opLess:
		if a < b {
			return 1
		}
	case opEqual:
		if a == b {
			return 1
		}
	}
	return 0
}

// apply loads args[0] and args[1] and stores the result in args[2].
func (o binop) apply(m Memory, args []Addr) error {
	a, err := m.Load(args[0])
	if err != nil {
		return err
	}
	b, err := m.Load(args[1])
	if err != nil {
		return err
	}
	return m.Store(args[2], o.eval(a, b))
}

var binops = [...]binop{
	OpAdd:      opAdd,
	OpMul:      opMul,
	OpLessThan: opLess,
	OpEquals:   opEqual,
}

// Step executes exactly one instruction and returns it. The in instruction
// consumes one value from in, a nil Input counts as an empty one.
//
// If an error occurs, IP still points to the faulting instruction and no memory
// cell has been written by it. The one exception is an error returned by the
// output handler: the out instruction has then completed.
//
// Stepping over a hlt instruction leaves IP unchanged, so that once halted the
// VM keeps reporting hlt without further side effects.
func (i *Instance) Step(in Input) (Instruction, error) {
	ins, err := Decode(i.Image, i.IP)
	if err != nil {
		return ins, err
	}
	if i.trace {
		i.tracef("exec", "ip", i.IP, "ins", ins)
	}
	next := i.IP + ins.Len()
	switch ins.Op {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		err = binops[ins.Op].apply(i, ins.Args[:])
	case OpIn:
		var v Cell
		ok := in != nil
		if ok {
			v, ok = in.Next()
		}
		if !ok {
			return ins, i.fault(InputExhausted)
		}
		err = i.Store(ins.Args[0], v)
	case OpOut:
		var v Cell
		if v, err = i.Load(ins.Args[0]); err == nil {
			i.output = append(i.output, v)
		}
	case OpJumpIfTrue, OpJumpIfFalse:
		var t, target Cell
		if t, err = i.Load(ins.Args[0]); err == nil && (t != 0) == (ins.Op == OpJumpIfTrue) {
			target, err = i.Load(ins.Args[1])
			next = int(target)
		}
	case OpHalt:
		next = i.IP
		i.halted = true
	}
	if err != nil {
		return ins, err
	}
	i.IP = next
	i.insCount++
	if ins.Op == OpOut && i.outH != nil {
		return ins, i.outH(i, i.output[len(i.output)-1])
	}
	return ins, nil
}

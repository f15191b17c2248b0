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

// Peek decodes the next instruction without executing it.
func (i *Instance) Peek() (Instruction, error) {
	return Decode(i.Image, i.IP)
}

// Run executes instructions until the program halts and returns the whole
// output sequence. If an error occurs, the IP will point to the instruction
// that triggered the error.
//
// Once Run returns, the instance is halted (or broken) and is of no further
// use beyond inspection.
func (i *Instance) Run(in Input) ([]Cell, error) {
	for {
		ins, err := i.Step(in)
		if err != nil {
			return i.output, err
		}
		if ins.Op == OpHalt {
			return i.output, nil
		}
	}
}

// RunUntilNextOutput executes instructions until an out instruction has been
// executed, and returns the value it produced with ok set to true. If the
// program halts first, ok is false.
//
// The VM state is left intact, so that execution can be resumed later by
// another call.
func (i *Instance) RunUntilNextOutput(in Input) (v Cell, ok bool, err error) {
	for {
		ins, err := i.Step(in)
		if err != nil {
			return 0, false, err
		}
		switch ins.Op {
		case OpOut:
			return i.output[len(i.output)-1], true, nil
		case OpHalt:
			return 0, false, nil
		}
	}
}

// RunUntilNextInput executes instructions until an in instruction has consumed
// a value, or until the program halts. It is typically used to feed a one time
// configuration value to a program before running it with RunUntilNextOutput.
func (i *Instance) RunUntilNextInput(in Input) error {
	for {
		ins, err := i.Step(in)
		if err != nil {
			return err
		}
		switch ins.Op {
		case OpIn, OpHalt:
			return nil
		}
	}
}

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

// List of VM faults for Errno.
const (
	IllegalOpcode = Errno(iota + 1)
	IllegalMode
	ImmediateWrite
	InputExhausted
	IllegalAddress
)

var strError = [...]string{
	"",
	"illegal opcode",
	"illegal addressing mode",
	"write to immediate operand",
	"input exhausted",
	"illegal address",
}

// Errno describes the reason for a VM fault.
type Errno int

func (e Errno) Error() string {
	if e > 0 && int(e) < len(strError) {
		return strError[e]
	}
	return "errno " + strconv.Itoa(int(e))
}

// Error describes the cause and the context of a VM fault. None of them are
// transient: retrying the same instruction will fail again.
type Error struct {
	Errno Errno  // nature of the fault
	IP    int    // instruction pointer of the faulting instruction
	Op    Opcode // opcode, when it could be decoded
	Mode  Mode   // offending mode when Errno is IllegalMode
	Addr  Cell   // offending address when Errno is IllegalAddress
}

func (e *Error) Error() string {
	msg := "intcode: " + e.Errno.Error()
	switch e.Errno {
	case IllegalOpcode:
		msg += " " + strconv.FormatInt(int64(e.Op), 10)
	case IllegalMode:
		msg += " " + strconv.FormatInt(int64(e.Mode), 10)
	case IllegalAddress:
		msg += " " + strconv.FormatInt(int64(e.Addr), 10)
	}
	msg += " at ip " + strconv.Itoa(e.IP)
	if e.Errno != IllegalOpcode && e.Op.Valid() {
		msg += " (" + e.Op.String() + ")"
	}
	return msg
}

// Unwrap returns the Errno so that errors.Is(err, vm.InputExhausted) and
// friends work on wrapped errors.
func (e *Error) Unwrap() error {
	return e.Errno
}

func fault(errno Errno, ip int, op Opcode) *Error {
	return &Error{Errno: errno, IP: ip, Op: op}
}

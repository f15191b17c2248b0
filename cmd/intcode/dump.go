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

package main

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// dumpVM writes the VM registers and memory image to w.
func dumpVM(i *vm.Instance, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	io.WriteString(ew, "ip: "+strconv.Itoa(i.IP)+"\n")
	io.WriteString(ew, "instructions: "+strconv.FormatInt(i.InstructionCount(), 10)+"\n")
	io.WriteString(ew, "halted: "+strconv.FormatBool(i.Halted())+"\n")
	io.WriteString(ew, "memory: ")
	i.Dump(ew)
	io.WriteString(ew, "\n")
	return ew.Err
}

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

package asm_test

import (
	"fmt"
	"os"
	"strings"

	"github.com/db47h/intcode/asm"
)

func ExampleAssemble() {
	code := `
		( read values and echo them until a 0 is read )
:loop	in @x
		out @x
		jt @x loop
		hlt
:x		.dat 0
`
	img, err := asm.Assemble("raw_string", strings.NewReader(code))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(img)

	// Output:
	// 3,8,4,8,1005,8,0,99,0
}

func ExampleDisassembleAll() {
	prog, err := asm.Assemble("echo", strings.NewReader("in @8 out @8 jt @8 0 hlt .dat 0"))
	if err != nil {
		fmt.Println(err)
		return
	}
	asm.DisassembleAll(prog, os.Stdout)

	// Output:
	//      0	in @8
	//      2	out @8
	//      4	jt @8 0
	//      7	hlt
	//      8	.dat 0
}

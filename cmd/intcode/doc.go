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

// The intcode command line tool runs Intcode programs and provides a few
// utilities around the github.com/db47h/intcode packages.
//
// Usage:
//
//	intcode [command] [flags] file
//
// Commands:
//
//	run	run a program; output values are printed one per line
//	amp	run a chain or feedback loop of amplifiers
//	gravity	run a program with a noun and verb, or search for them
//	asm	assemble a program
//	disasm	disassemble a program
//
// Global flags:
//
//	--config file
//		  load configuration from a TOML file
//	--debug
//		  enable debug diagnostics
//	--log-format string
//		  log format: text or json (default "text")
//	--log-level string
//		  log level: trace, debug, info, warn or error (default "info")
//
// --debug: will print a full stacktrace should the VM crash, along with the
// faulting instruction pointer.
//
// --log-level: at trace level, the VM logs every instruction executed and every
// memory access. Logs go to stderr.
//
// Programs are loaded from text files containing comma separated integers.
// Without --input, run reads input values from stdin, separated by commas or
// white space. If stdin is a terminal, a prompt is printed before each read.
//
// Configuration file:
//
// Flags explicitly set on the command line override configuration values.
//
//	[log]
//	level = "info"
//	format = "text"
//
//	[run]
//	input = [1]
//	dump = false
//
//	[amp]
//	phases = [5, 6, 7, 8, 9]
//	feedback = true
//	signal = 0
//
//	[gravity]
//	target = 19690720
//	limit = 100
package main

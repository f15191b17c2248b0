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
	"bufio"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/vm"
)

func (a *app) runCmd() *cobra.Command {
	var (
		input []int64
		dump  bool
	)
	cmd := &cobra.Command{
		Use:   "run [flags] program",
		Short: "Run an Intcode program",
		Long: `Run loads an Intcode program and runs it until it halts. Output values are
printed one per line as they are produced.

Input values are taken from --input or from the configuration file. If neither
provides any value, input is read from stdin: values are separated by commas or
white space.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Run
			if cmd.Flags().Changed("input") {
				cfg.Input = cells(input)
			}
			if cmd.Flags().Changed("dump") {
				cfg.Dump = dump
			}

			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}

			out := bufio.NewWriter(cmd.OutOrStdout())
			defer out.Flush()

			i, err := vm.New(img,
				vm.Logger(a.log),
				vm.BindOutputHandler(func(_ *vm.Instance, v vm.Cell) error {
					_, err := fmt.Fprintln(out, v)
					return err
				}))
			if err != nil {
				return err
			}

			var (
				in vm.Input
				ri *vm.ReaderInput
			)
			if len(cfg.Input) > 0 {
				in = vm.Values(cfg.Input...)
			} else {
				ri = vm.NewReaderInput(cmd.InOrStdin())
				if isTerminal(cmd.InOrStdin()) {
					ri.Prompt = func() {
						out.Flush()
						fmt.Fprint(cmd.ErrOrStderr(), "? ")
					}
				}
				in = ri
			}

			_, err = i.Run(in)
			if err != nil {
				if ri != nil && ri.Err() != nil {
					err = ri.Err()
				}
				return errors.Wrapf(err, "run %s", args[0])
			}
			a.log.Debug("halted", "program", args[0], "ip", i.IP, "instructions", i.InstructionCount())
			if cfg.Dump {
				return dumpVM(i, out)
			}
			return nil
		},
	}
	cmd.Flags().Int64SliceVar(&input, "input", nil, "comma separated input `values`")
	cmd.Flags().BoolVar(&dump, "dump", false, "dump the VM state and memory image upon exit")
	return cmd
}

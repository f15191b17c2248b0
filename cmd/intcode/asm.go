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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
)

func (a *app) asmCmd() *cobra.Command {
	var outFileName string
	cmd := &cobra.Command{
		Use:   "asm [flags] source",
		Short: "Assemble a program",
		Long: `Asm assembles the given source file and writes the resulting program in
Intcode text form to stdout, or to the file specified with -o.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return errors.Wrap(err, "asm")
			}
			defer f.Close()
			img, err := asm.Assemble(args[0], f)
			if err != nil {
				return err
			}
			a.log.Debug("assembled", "source", args[0], "cells", len(img))
			if outFileName != "" {
				return vm.Save(outFileName, img)
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if _, err = img.WriteTo(w); err != nil {
				return err
			}
			w.WriteByte('\n')
			return w.Flush()
		},
	}
	cmd.Flags().StringVarP(&outFileName, "output", "o", "", "write program to `file`")
	return cmd
}

func (a *app) disasmCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "disasm program",
		Short: "Disassemble a program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(img, w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
}

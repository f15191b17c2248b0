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
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/db47h/intcode/gravity"
	"github.com/db47h/intcode/vm"
)

func (a *app) gravityCmd() *cobra.Command {
	var noun, verb, target, limit int64
	cmd := &cobra.Command{
		Use:   "gravity [flags] program",
		Short: "Run a program with a noun and verb, or search for them",
		Long: `Gravity patches memory cells 1 and 2 with a noun and a verb, runs the program
and prints the value left in cell 0.

If --noun and --verb are not both set, every noun and verb in [0, limit) is
tried until the program yields the target value, and 100*noun+verb is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Gravity
			f := cmd.Flags()
			if f.Changed("target") {
				cfg.Target = vm.Cell(target)
			}
			if f.Changed("limit") {
				cfg.Limit = vm.Cell(limit)
			}

			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}
			opts := []gravity.Option{
				gravity.Logger(a.log),
				gravity.VMOptions(vm.Logger(a.log)),
			}
			out := cmd.OutOrStdout()

			if f.Changed("noun") && f.Changed("verb") {
				v, err := gravity.Run(img, vm.Cell(noun), vm.Cell(verb), opts...)
				if err != nil {
					return errors.Wrapf(err, "noun %d, verb %d", noun, verb)
				}
				_, err = fmt.Fprintln(out, v)
				return err
			}

			n, v, err := gravity.Search(img, cfg.Target, cfg.Limit, opts...)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, gravity.Answer(n, v))
			return err
		},
	}
	f := cmd.Flags()
	f.Int64Var(&noun, "noun", 0, "value stored at address 1")
	f.Int64Var(&verb, "verb", 0, "value stored at address 2")
	f.Int64Var(&target, "target", 0, "value to search for")
	f.Int64Var(&limit, "limit", 0, "search nouns and verbs in [0, `limit`)")
	return cmd
}

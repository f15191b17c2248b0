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

	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
)

func (a *app) ampCmd() *cobra.Command {
	var (
		phases   []int64
		feedback bool
		signal   int64
		fixed    bool
	)
	cmd := &cobra.Command{
		Use:   "amp [flags] program",
		Short: "Run a chain of amplifiers",
		Long: `Amp runs one copy of the program per phase setting, wired in series or, with
--feedback, in a loop.

By default, every permutation of the phase settings is tried and the highest
signal is printed along with the phase setting producing it. With --fixed, the
phase settings are used in the given order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Amp
			f := cmd.Flags()
			if f.Changed("phases") {
				cfg.Phases = cells(phases)
			}
			if f.Changed("feedback") {
				cfg.Feedback = feedback
			}
			if f.Changed("signal") {
				cfg.Signal = vm.Cell(signal)
			}
			if len(cfg.Phases) == 0 {
				return errors.New("amp: no phase settings")
			}

			img, err := vm.Load(args[0])
			if err != nil {
				return err
			}
			opts := []circuit.Option{
				circuit.Logger(a.log),
				circuit.VMOptions(vm.Logger(a.log)),
			}
			out := cmd.OutOrStdout()

			if !fixed {
				v, setting, err := circuit.MaxSignal(img, cfg.Phases, cfg.Feedback, cfg.Signal, opts...)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, v, setting)
				return err
			}

			var v vm.Cell
			if cfg.Feedback {
				r, err := circuit.NewRing(img, cfg.Phases, opts...)
				if err != nil {
					return err
				}
				v, err = r.RunContext(cmd.Context(), cfg.Signal)
				if err != nil {
					return err
				}
			} else {
				v, err = circuit.Chain(img, cfg.Phases, cfg.Signal, opts...)
				if err != nil {
					return err
				}
			}
			_, err = fmt.Fprintln(out, v)
			return err
		},
	}
	f := cmd.Flags()
	f.Int64SliceVar(&phases, "phases", nil, "comma separated phase `settings`")
	f.BoolVar(&feedback, "feedback", false, "wire amplifiers in a feedback loop")
	f.Int64Var(&signal, "signal", 0, "initial input signal")
	f.BoolVar(&fixed, "fixed", false, "use phase settings in the given order instead of searching")
	return cmd
}

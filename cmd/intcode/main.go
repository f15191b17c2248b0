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
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

// app holds the state shared by all commands.
type app struct {
	cfgFile   string
	logLevel  string
	logFormat string
	debug     bool

	cfg *Config
	log *slog.Logger
}

func newRootCmd() (*cobra.Command, *app) {
	a := new(app)
	root := &cobra.Command{
		Use:   "intcode",
		Short: "Run, assemble and inspect Intcode programs",
		Long: `intcode runs Intcode programs, either alone or wired as a chain or
feedback loop of amplifiers. It also includes an assembler and a disassembler.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "load configuration from TOML `file`")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level: trace, debug, info, warn or error")
	pf.StringVar(&a.logFormat, "log-format", "text", "log format: text or json")
	pf.BoolVar(&a.debug, "debug", false, "enable debug diagnostics")

	root.AddCommand(
		a.runCmd(),
		a.ampCmd(),
		a.gravityCmd(),
		a.asmCmd(),
		a.disasmCmd(),
	)
	return root, a
}

// setup loads the configuration file, applies the global flags and creates
// the logger.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	f := cmd.Flags()
	if f.Changed("log-level") {
		cfg.Log.Level = a.logLevel
	}
	if f.Changed("log-format") {
		cfg.Log.Format = a.logFormat
	}
	a.log, err = ici.NewLogger(cmd.ErrOrStderr(), cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

func cells(v []int64) []vm.Cell {
	c := make([]vm.Cell, len(v))
	for i := range v {
		c[i] = vm.Cell(v[i])
	}
	return c
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func printError(w io.Writer, err error, debug bool) {
	if !debug {
		fmt.Fprintf(w, "%v\n", err)
		return
	}
	fmt.Fprintf(w, "%+v\n", err)
	var e *vm.Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "IP: %d, Op: %v, Errno: %d\n", e.IP, e.Op, e.Errno)
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	root, a := newRootCmd()
	err := root.ExecuteContext(ctx)
	stop()
	if err != nil {
		printError(os.Stderr, err, a.debug)
		os.Exit(1)
	}
}

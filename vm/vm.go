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

import (
	"context"
	"io"
	"log/slog"

	"github.com/db47h/intcode/internal/ici"
)

// Cell is the raw type stored in a memory location. It is also the type of
// values read from input and written to output.
type Cell int64

// Instance represents an Intcode VM instance.
type Instance struct {
	IP       int   // Instruction Pointer
	Image    Image // Memory image. Its length never changes.
	output   []Cell
	halted   bool
	insCount int64
	log      *slog.Logger
	trace    bool
	outH     OutputHandler
}

// Option interface
type Option func(*Instance) error

// OutputHandler is the function prototype for custom output handlers. It is
// called each time an out instruction has appended v to the output sequence.
// A non-nil error aborts the instruction's caller with that error.
type OutputHandler func(i *Instance, v Cell) error

// Logger sets the logger used for instruction tracing. Tracing happens at
// level ici.LevelTrace only. The default is to discard everything.
func Logger(l *slog.Logger) Option {
	return func(i *Instance) error {
		i.log = l
		return nil
	}
}

// BindOutputHandler sets the output handler.
func BindOutputHandler(h OutputHandler) Option {
	return func(i *Instance) error {
		i.outH = h
		return nil
	}
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	if i.log == nil {
		i.log = slog.New(slog.DiscardHandler)
	}
	i.trace = i.log.Enabled(context.Background(), ici.LevelTrace)
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The image parameter is used as memory by the VM and will be modified by the
// running program. Pass image.Clone() when the same program needs to be run
// more than once, or by more than one instance.
//
// Options will be set by calling SetOptions.
func New(image Image, opts ...Option) (*Instance, error) {
	i := &Instance{Image: image}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Output returns the output sequence produced so far. The returned slice must
// not be modified.
func (i *Instance) Output() []Cell {
	return i.output
}

// Halted returns true once a hlt instruction has been executed.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Dump writes the memory image to the specified io.Writer as a comma separated
// list of integers, i.e. in the same format accepted by Parse.
func (i *Instance) Dump(w io.Writer) error {
	_, err := i.Image.WriteTo(w)
	return err
}

func (i *Instance) tracef(msg string, args ...any) {
	i.log.Log(context.Background(), ici.LevelTrace, msg, args...)
}

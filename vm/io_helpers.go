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
	"bufio"
	"io"
	"strconv"
	"unicode"

	"github.com/pkg/errors"
)

// ReaderInput is an Input reading decimal integers from an io.Reader. Values
// may be separated by white space or commas.
//
// Read or parse errors end the sequence; they are available from Err.
type ReaderInput struct {
	s   *bufio.Scanner
	err error
	// Prompt, if not nil, is called before each read from the underlying
	// reader.
	Prompt func()
}

// NewReaderInput returns a new ReaderInput reading from r.
func NewReaderInput(r io.Reader) *ReaderInput {
	s := bufio.NewScanner(r)
	s.Split(scanValues)
	return &ReaderInput{s: s}
}

// Next implements Input.
func (r *ReaderInput) Next() (Cell, bool) {
	if r.err != nil {
		return 0, false
	}
	if r.Prompt != nil {
		r.Prompt()
	}
	if !r.s.Scan() {
		r.err = r.s.Err()
		return 0, false
	}
	v, err := strconv.ParseInt(r.s.Text(), 10, 64)
	if err != nil {
		r.err = errors.Wrap(err, "invalid input value")
		return 0, false
	}
	return Cell(v), true
}

// Err returns the first non-EOF error encountered.
func (r *ReaderInput) Err() error {
	return r.err
}

func isSep(r rune) bool {
	return r == ',' || unicode.IsSpace(r)
}

// scanValues is a bufio.SplitFunc splitting on white space and commas.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isSep(rune(data[start])) {
		start++
	}
	for k := start; k < len(data); k++ {
		if isSep(rune(data[k])) {
			return k + 1, data[start:k], nil
		}
	}
	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

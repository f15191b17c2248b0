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
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Image encapsulates a VM's memory
type Image []Cell

// Parse reads a program in its text form: comma separated decimal integers,
// optionally followed by white space.
func Parse(r io.Reader) (Image, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrap(err, "Parse")
	}
	return parse(string(b))
}

// ParseString is like Parse but reads from a string.
func ParseString(s string) (Image, error) {
	return parse(s)
}

func parse(s string) (Image, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("Parse: empty program")
	}
	fields := strings.Split(s, ",")
	img := make(Image, len(fields))
	for k, f := range fields {
		v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: cell %d", k)
		}
		img[k] = Cell(v)
	}
	return img, nil
}

// Load loads a program from file fileName.
func Load(fileName string) (Image, error) {
	f, err := os.Open(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "Load")
	}
	defer f.Close()
	img, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, errors.Wrapf(err, "Load %s", fileName)
	}
	return img, nil
}

// Save saves the image to file fileName in text form.
func Save(fileName string, img Image) (err error) {
	f, err := os.Create(fileName)
	if err != nil {
		return errors.Wrap(err, "Save")
	}
	w := bufio.NewWriter(f)
	defer func() {
		if e := w.Flush(); err == nil && e != nil {
			err = errors.Wrap(e, "Save")
		}
		f.Close()
		// delete file on error
		if err != nil {
			os.Remove(fileName)
		}
	}()
	if _, err = img.WriteTo(w); err != nil {
		return errors.Wrap(err, "Save")
	}
	_, err = w.Write([]byte{'\n'})
	return errors.Wrap(err, "Save")
}

// Clone returns a copy of the image. VM instances running the same program
// must each be given their own copy.
func (img Image) Clone() Image {
	c := make(Image, len(img))
	copy(c, img)
	return c
}

// WriteTo writes the image to w as a comma separated list of integers.
func (img Image) WriteTo(w io.Writer) (n int64, err error) {
	b := make([]byte, 0, 24)
	for k, v := range img {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		m, err := w.Write(b)
		n += int64(m)
		if err != nil {
			return n, errors.Wrap(err, "write failed")
		}
	}
	return n, nil
}

func (img Image) String() string {
	var b bytes.Buffer
	img.WriteTo(&b)
	return b.String()
}

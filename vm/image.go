// This file is part of intcode - https://github.com/db47h/intcode
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
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
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/pkg/errors"
)

// Image is a program: the initial contents of the VM memory, starting at
// address 0.
type Image []Cell

// Parse reads a program from r. The program must be a sequence of signed
// decimal integers separated by commas. White space around values and a
// single trailing comma or new line are ignored.
func Parse(r io.Reader) (Image, error) {
	var img Image
	br := bufio.NewReader(r)
	for n := 0; ; n++ {
		f, err := br.ReadString(',')
		if err != nil && err != io.EOF {
			return nil, errors.Wrap(err, "Parse")
		}
		eof := err == io.EOF
		f = strings.TrimSpace(strings.TrimSuffix(f, ","))
		if f == "" {
			if eof && n > 0 {
				break
			}
			if eof {
				return nil, errors.New("Parse: empty program")
			}
			return nil, errors.Errorf("Parse: empty value at position %d", n)
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "Parse: value at position %d", n)
		}
		img = append(img, Cell(v))
		if eof {
			break
		}
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
	img, err := Parse(f)
	if err != nil {
		return nil, errors.Wrap(err, fileName)
	}
	return img, nil
}

// WriteTo writes img to w in the format accepted by Parse, followed by a new
// line.
func (img Image) WriteTo(w io.Writer) (int64, error) {
	ew := ici.NewErrWriter(w)
	n0 := ew.N
	b := make([]byte, 0, 24)
	for k, v := range img {
		b = b[:0]
		if k > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		ew.Write(b)
	}
	ew.Write([]byte{'\n'})
	return ew.N - n0, ew.Err
}

// MaxDump is the largest memory size, in cells, that Dump accepts to write.
const MaxDump = 1 << 24

// Dump writes the VM memory to w in the format accepted by Parse, so that a
// dump can be loaded back as a program.
//
// Since the dump format has no notion of sparse memory, Dump returns an error
// without writing anything if a non-zero value may be stored at or above
// address MaxDump.
func (i *Instance) Dump(w io.Writer) error {
	n := i.mem.Len()
	if n > MaxDump {
		return errors.Errorf("Dump: memory size %d exceeds %d cells", n, MaxDump)
	}
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 24)
	for a := Cell(0); a < n && ew.Err == nil; a++ {
		b = b[:0]
		if a > 0 {
			b = append(b, ',')
		}
		b = strconv.AppendInt(b, int64(i.mem.Get(a)), 10)
		ew.Write(b)
	}
	ew.Write([]byte{'\n'})
	return errors.Wrap(ew.Err, "Dump")
}

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

package ascii

import (
	"strings"

	"github.com/db47h/intcode/vm"
)

// MaxChar is the largest output value that Decode treats as a character.
const MaxChar = 255

// Encode returns the bytes of s as a sequence of input values.
func Encode(s string) []vm.Cell {
	v := make([]vm.Cell, len(s))
	for i := 0; i < len(s); i++ {
		v[i] = vm.Cell(s[i])
	}
	return v
}

// EncodeCommand encodes cmd followed by a newline.
func EncodeCommand(cmd string) []vm.Cell {
	v := make([]vm.Cell, len(cmd)+1)
	for i := 0; i < len(cmd); i++ {
		v[i] = vm.Cell(cmd[i])
	}
	v[len(cmd)] = '\n'
	return v
}

// Decode splits output values into text and non-character values. Values in
// the range [0, MaxChar] are decoded as bytes, any other value is returned in
// rest, in output order.
func Decode(out []vm.Cell) (text string, rest []vm.Cell) {
	var sb strings.Builder
	sb.Grow(len(out))
	for _, c := range out {
		if c < 0 || c > MaxChar {
			rest = append(rest, c)
			continue
		}
		sb.WriteByte(byte(c))
	}
	return sb.String(), rest
}

// Lines splits text into lines. A trailing newline does not produce an empty
// last line.
func Lines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// Frames splits text into frames separated by blank lines, typically the
// successive screens of a program drawing a grid. Empty frames are dropped.
func Frames(text string) []string {
	var frames []string
	for _, f := range strings.Split(text, "\n\n") {
		f = strings.Trim(f, "\n")
		if f != "" {
			frames = append(frames, f)
		}
	}
	return frames
}

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

package asm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
)

func appendParam(b []byte, md vm.Mode, v vm.Cell) []byte {
	switch md {
	case vm.Immediate:
		return strconv.AppendInt(b, int64(v), 10)
	case vm.Relative:
		b = append(b, "[rb"...)
		if v >= 0 {
			b = append(b, '+')
		}
		b = strconv.AppendInt(b, int64(v), 10)
		return append(b, ']')
	}
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(v), 10)
	return append(b, ']')
}

// Disassemble writes a disassembly of the instruction at address pc in memory
// m to the specified io.Writer and returns the address of the next instruction
// and any write error.
//
// Words that do not decode to a valid instruction, including instructions whose
// parameters would wrap around past the highest address, are written as
// ".dat <value>" and the returned address is pc+1.
func Disassemble(m *vm.Memory, pc vm.Cell, w io.Writer) (next vm.Cell, err error) {
	ew := ici.NewErrWriter(w)
	b := make([]byte, 0, 64)
	ins, err := vm.Decode(m, pc)
	if err != nil {
		var v vm.Cell
		if pc >= 0 {
			v = m.Get(pc)
		}
		b = append(b, ".dat "...)
		b = strconv.AppendInt(b, int64(v), 10)
		ew.Write(b)
		return pc + 1, ew.Err
	}
	b = append(b, ins.Op.String()...)
	n := ins.Op.Arity()
	for k := 0; k < n; k++ {
		b = append(b, ' ')
		b = appendParam(b, ins.Modes[k], m.Get(pc+vm.Cell(k)+1))
	}
	ew.Write(b)
	return pc + vm.Cell(n) + 1, ew.Err
}

// DisassembleAll writes a disassembly of all cells in the given image to
// the specified io.Writer. The base argument specifies the real address of the
// first cell (img[0]). It will return any write error.
//
// An instruction whose parameters extend past the end of the image is
// disassembled as if the missing cells were 0.
func DisassembleAll(img vm.Image, base vm.Cell, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	m := vm.NewMemory(img)
	for pc := vm.Cell(0); pc < vm.Cell(len(img)); {
		fmt.Fprintf(ew, "% 10d\t", base+pc)
		pc, _ = Disassemble(m, pc, ew)
		ew.Write([]byte{'\n'})
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}

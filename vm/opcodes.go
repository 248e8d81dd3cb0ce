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

import "strconv"

// Opcode is the low two decimal digits of an instruction word.
type Opcode Cell

// Intcode VM Opcodes.
const (
	OpAdd        Opcode = 1
	OpMul        Opcode = 2
	OpIn         Opcode = 3
	OpOut        Opcode = 4
	OpJumpTrue   Opcode = 5
	OpJumpFalse  Opcode = 6
	OpLess       Opcode = 7
	OpEqual      Opcode = 8
	OpAdjustBase Opcode = 9
	OpHalt       Opcode = 99
)

var opInfo = [...]struct {
	name  string
	arity int
}{
	OpAdd:        {"add", 3},
	OpMul:        {"mul", 3},
	OpIn:         {"in", 1},
	OpOut:        {"out", 1},
	OpJumpTrue:   {"jnz", 2},
	OpJumpFalse:  {"jz", 2},
	OpLess:       {"lt", 3},
	OpEqual:      {"eq", 3},
	OpAdjustBase: {"arb", 1},
}

// Valid returns true if op is part of the instruction set.
func (op Opcode) Valid() bool {
	return op == OpHalt || op > 0 && int(op) < len(opInfo)
}

// Arity returns the number of parameters taken by op, or -1 if op is not a
// valid opcode.
func (op Opcode) Arity() int {
	switch {
	case op == OpHalt:
		return 0
	case op.Valid():
		return opInfo[op].arity
	}
	return -1
}

func (op Opcode) String() string {
	switch {
	case op == OpHalt:
		return "hlt"
	case op.Valid():
		return opInfo[op].name
	}
	return "op" + strconv.FormatInt(int64(op), 10)
}

// Mode is a parameter addressing mode.
type Mode uint8

// Parameter modes.
const (
	Position  Mode = iota // operand is the cell at the address given by the parameter
	Immediate             // operand is the parameter itself
	Relative              // operand is the cell at relative base + parameter
)

func (m Mode) String() string {
	switch m {
	case Position:
		return "position"
	case Immediate:
		return "immediate"
	case Relative:
		return "relative"
	}
	return "mode" + strconv.Itoa(int(m))
}

// Instr is a decoded instruction.
type Instr struct {
	Op    Opcode
	Modes [3]Mode // only the first Op.Arity() entries are meaningful
}

// Decode decodes the instruction at address pc. Modes are read from the
// successive decimal digits of word/100, least significant first; digits that
// are not encoded default to Position.
//
// The returned error, if any, is a *Fault of kind InvalidOpcode or
// InvalidMode, or NegativeAddress if pc is negative or the parameters of the
// instruction extend past the highest address.
func Decode(m *Memory, pc Cell) (Instr, error) {
	if pc < 0 {
		return Instr{}, &Fault{Kind: NegativeAddress, PC: pc, Addr: pc}
	}
	w := m.Get(pc)
	ins := Instr{Op: Opcode(w % 100)}
	n := ins.Op.Arity()
	if n < 0 {
		return ins, &Fault{Kind: InvalidOpcode, PC: pc, Instr: w}
	}
	if last := pc + Cell(n); last < pc {
		return ins, &Fault{Kind: NegativeAddress, PC: pc, Instr: w, Addr: last}
	}
	modes := w / 100
	for k := 0; k < n; k++ {
		md := Mode(modes % 10)
		if md > Relative {
			return ins, &Fault{Kind: InvalidMode, PC: pc, Instr: w, Addr: pc + Cell(k) + 1}
		}
		ins.Modes[k] = md
		modes /= 10
	}
	return ins, nil
}

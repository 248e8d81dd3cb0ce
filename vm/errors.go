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
	"strconv"

	"github.com/pkg/errors"
)

// FaultKind describes the reason for a VM fault.
type FaultKind int

// List of fault kinds.
const (
	InvalidOpcode FaultKind = iota + 1
	NegativeAddress
	ImmediateWrite
	InvalidMode
)

var faultText = [...]string{
	InvalidOpcode:   "invalid opcode",
	NegativeAddress: "negative address",
	ImmediateWrite:  "write through immediate parameter",
	InvalidMode:     "invalid parameter mode",
}

func (k FaultKind) String() string {
	if k > 0 && int(k) < len(faultText) {
		return faultText[k]
	}
	return "fault " + strconv.Itoa(int(k))
}

// Fault describes the cause and the context of a VM fault.
type Fault struct {
	Kind  FaultKind
	PC    Cell // address of the faulting instruction
	Instr Cell // raw instruction word at PC
	Addr  Cell // offending address for NegativeAddress, parameter address otherwise
}

func (f *Fault) Error() string {
	b := make([]byte, 0, 64)
	b = append(b, "intcode: "...)
	b = append(b, f.Kind.String()...)
	switch f.Kind {
	case InvalidOpcode:
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(f.Instr%100), 10)
	case NegativeAddress:
		b = append(b, ' ')
		b = strconv.AppendInt(b, int64(f.Addr), 10)
	}
	b = append(b, " @pc="...)
	b = strconv.AppendInt(b, int64(f.PC), 10)
	b = append(b, " ("...)
	b = strconv.AppendInt(b, int64(f.Instr), 10)
	b = append(b, ')')
	return string(b)
}

// AsFault returns the *Fault in err's chain, if any.
func AsFault(err error) (*Fault, bool) {
	var f *Fault
	if errors.As(err, &f) {
		return f, true
	}
	return nil, false
}

// ErrStaleContinuation is returned by Resume when the continuation refers to
// input that has already been discarded or was never supplied.
var ErrStaleContinuation = errors.New("stale continuation")

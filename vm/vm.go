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

import "github.com/pkg/errors"

// Cell is the raw type stored in a memory location.
type Cell int64

// Status is the execution status of an Instance.
type Status int

// Execution states.
const (
	Running       Status = iota // not started, or paused by a step budget
	AwaitingInput               // an input instruction found no input
	Halted                      // the program executed a halt instruction
	Faulted                     // the program faulted; this state is terminal
)

var statusText = [...]string{
	Running:       "running",
	AwaitingInput: "awaiting input",
	Halted:        "halted",
	Faulted:       "faulted",
}

func (s Status) String() string {
	if s >= 0 && int(s) < len(statusText) {
		return statusText[s]
	}
	return "unknown"
}

// Continuation is the state needed to resume execution: the program counter,
// the relative base and the number of input values consumed so far.
type Continuation struct {
	PC      Cell
	RelBase Cell
	Input   int
}

// Result is returned by Run, Resume and Continue.
type Result struct {
	Output       []Cell // values output during this call only
	Status       Status
	Continuation Continuation
}

// Instance represents an Intcode VM instance.
type Instance struct {
	mem      *Memory
	cont     Continuation
	status   Status
	fault    *Fault
	in       []Cell // pending input, in[0] is input value number inBase
	inBase   int
	out      []Cell
	maxSteps int64
	insCount int64
}

// Option interface
type Option func(*Instance) error

// MaxSteps sets the maximum number of instructions executed by a single call
// to Run, Resume or Continue. When the budget is exhausted, the call returns
// with status Running and a continuation pointing at the next instruction. A
// value of 0, the default, disables the limit.
func MaxSteps(n int64) Option {
	return func(i *Instance) error {
		if n < 0 {
			return errors.Errorf("invalid step budget %d", n)
		}
		i.maxSteps = n
		return nil
	}
}

// Input queues the given values as input. They will be consumed before any
// value supplied to Run, Resume or Continue.
func Input(v ...Cell) Option {
	return func(i *Instance) error {
		i.in = append(i.in, v...)
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
	return nil
}

// New creates a new Intcode Virtual Machine instance.
//
// The image is copied to address 0 of the VM memory; the caller may reuse it
// to create other instances. Options will be set by calling SetOptions.
func New(img Image, opts ...Option) (*Instance, error) {
	i := &Instance{mem: NewMemory(img)}
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	return i, nil
}

// Mem returns the instance memory. Changes are reflected in the instance.
func (i *Instance) Mem() *Memory {
	return i.mem
}

// Continuation returns the current continuation.
func (i *Instance) Continuation() Continuation {
	return i.cont
}

// Status returns the current execution status.
func (i *Instance) Status() Status {
	return i.status
}

// Err returns the fault that stopped the instance, or nil.
func (i *Instance) Err() error {
	if i.fault == nil {
		return nil
	}
	return i.fault
}

// Output returns all values output since the instance was created. The log is
// never cleared.
func (i *Instance) Output() []Cell {
	return i.out
}

// Pending returns the input values that have been supplied but not consumed
// yet.
func (i *Instance) Pending() []Cell {
	return i.in[i.cont.Input-i.inBase:]
}

// InstructionCount returns the number of instructions executed so far.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}

// Clone returns a deep copy of the instance. The clone and the original are
// fully independent.
func (i *Instance) Clone() *Instance {
	c := *i
	c.mem = i.mem.Clone()
	c.in = append([]Cell(nil), i.in...)
	c.out = append([]Cell(nil), i.out...)
	if i.fault != nil {
		f := *i.fault
		c.fault = &f
	}
	return &c
}

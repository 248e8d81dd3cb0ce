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

// Run starts execution at address 0 with a zero relative base. Input values
// already consumed by a previous run stay consumed; the given input is queued
// after any pending input.
//
// Memory is not reset: a program that modified itself runs in its modified
// form.
func (i *Instance) Run(input ...Cell) (Result, error) {
	return i.Resume(Continuation{Input: i.cont.Input}, input...)
}

// Continue resumes execution from the instance's current continuation.
func (i *Instance) Continue(input ...Cell) (Result, error) {
	return i.Resume(i.cont, input...)
}

// Resume resumes execution from continuation c with the given input queued
// after any pending input.
//
// Execution proceeds until the program halts, faults, or an input instruction
// finds no more input. In the latter case, the returned status is
// AwaitingInput and the continuation PC is the address of that input
// instruction. The returned Output only holds the values output during this
// call.
//
// If the instance has faulted, Resume returns the same fault again without
// executing anything. If the fault is a VM fault, the returned error is a
// *Fault and the status is Faulted. ErrStaleContinuation is returned if c
// refers to input values that have been discarded or never supplied; the
// instance is left unchanged in that case.
func (i *Instance) Resume(c Continuation, input ...Cell) (r Result, err error) {
	if i.status == Faulted {
		return Result{Status: Faulted, Continuation: i.cont}, i.fault
	}
	if c.Input < i.inBase || c.Input > i.inBase+len(i.in) {
		return Result{Status: i.status, Continuation: i.cont},
			errors.Wrapf(ErrStaleContinuation, "input cursor %d, available [%d, %d]", c.Input, i.inBase, i.inBase+len(i.in))
	}
	i.in = append(i.in, input...)
	i.cont = c
	i.status = Running
	start := len(i.out)

	defer func() {
		if e := recover(); e != nil {
			f, ok := e.(*Fault)
			if !ok {
				panic(e)
			}
			i.status, i.fault = Faulted, f
			err = f
		}
		// drop consumed input
		if n := i.cont.Input - i.inBase; n > 0 {
			i.in = append(i.in[:0], i.in[n:]...)
			i.inBase = i.cont.Input
		}
		if len(i.out) > start {
			r.Output = append([]Cell(nil), i.out[start:]...)
		}
		r.Status, r.Continuation = i.status, i.cont
	}()

	i.exec()
	return r, nil
}

// trap aborts execution with a fault at the current PC.
func (i *Instance) trap(kind FaultKind, addr Cell) {
	pc := i.cont.PC
	var w Cell
	if pc >= 0 {
		w = i.mem.Get(pc)
	}
	panic(&Fault{Kind: kind, PC: pc, Instr: w, Addr: addr})
}

// param returns the address of parameter k of the current instruction. Decode
// has already checked that it does not wrap around.
func (i *Instance) param(k int) Cell {
	return i.cont.PC + Cell(k) + 1
}

// addr returns the address designated by parameter k of instruction ins.
func (i *Instance) addr(ins *Instr, k int) Cell {
	p := i.param(k)
	var a Cell
	switch ins.Modes[k] {
	case Position:
		a = i.mem.Get(p)
	case Relative:
		a = i.cont.RelBase + i.mem.Get(p)
	default:
		i.trap(ImmediateWrite, p)
	}
	if a < 0 {
		i.trap(NegativeAddress, a)
	}
	return a
}

// arg returns the operand value of parameter k of instruction ins.
func (i *Instance) arg(ins *Instr, k int) Cell {
	if ins.Modes[k] == Immediate {
		return i.mem.Get(i.param(k))
	}
	return i.mem.Get(i.addr(ins, k))
}

// exec is the dispatch loop. The PC is not incremented in a single place,
// rather each opcode deals with the PC as needed.
func (i *Instance) exec() {
	var steps int64
	for {
		if i.maxSteps > 0 && steps >= i.maxSteps {
			return
		}
		if i.cont.PC < 0 {
			i.trap(NegativeAddress, i.cont.PC)
		}
		ins, err := Decode(i.mem, i.cont.PC)
		if err != nil {
			panic(err)
		}
		switch ins.Op {
		case OpAdd:
			i.mem.Set(i.addr(&ins, 2), i.arg(&ins, 0)+i.arg(&ins, 1))
			i.cont.PC += 4
		case OpMul:
			i.mem.Set(i.addr(&ins, 2), i.arg(&ins, 0)*i.arg(&ins, 1))
			i.cont.PC += 4
		case OpIn:
			n := i.cont.Input - i.inBase
			if n >= len(i.in) {
				i.status = AwaitingInput
				return
			}
			i.mem.Set(i.addr(&ins, 0), i.in[n])
			i.cont.Input++
			i.cont.PC += 2
		case OpOut:
			i.out = append(i.out, i.arg(&ins, 0))
			i.cont.PC += 2
		case OpJumpTrue:
			if i.arg(&ins, 0) != 0 {
				i.cont.PC = i.arg(&ins, 1)
			} else {
				i.cont.PC += 3
			}
		case OpJumpFalse:
			if i.arg(&ins, 0) == 0 {
				i.cont.PC = i.arg(&ins, 1)
			} else {
				i.cont.PC += 3
			}
		case OpLess:
			var v Cell
			if i.arg(&ins, 0) < i.arg(&ins, 1) {
				v = 1
			}
			i.mem.Set(i.addr(&ins, 2), v)
			i.cont.PC += 4
		case OpEqual:
			var v Cell
			if i.arg(&ins, 0) == i.arg(&ins, 1) {
				v = 1
			}
			i.mem.Set(i.addr(&ins, 2), v)
			i.cont.PC += 4
		case OpAdjustBase:
			i.cont.RelBase += i.arg(&ins, 0)
			i.cont.PC += 2
		case OpHalt:
			i.status = Halted
			return
		}
		i.insCount++
		steps++
	}
}

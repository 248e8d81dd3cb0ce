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

// Package vm implements a small resumable Intcode virtual machine.
//
// A program is a sequence of signed 64 bits integers loaded at address 0 of a
// sparse, auto-growing memory. The instruction set has nine opcodes plus halt
// and three parameter modes (position, immediate and relative).
//
// The VM is driven like a coroutine: Run or Resume execute instructions until
// the program halts, faults, or executes an input instruction while no input
// is available. In the latter case the returned Result has status
// AwaitingInput and its Continuation points at the very input instruction that
// could not complete. Supplying more input and resuming re-executes that
// instruction. Feeding input incrementally this way produces exactly the same
// output as supplying it all upfront.
//
// Faults (invalid opcodes, negative addresses, writes through immediate
// parameters) are returned as *Fault errors and are terminal for the instance
// that raised them. No other instance is affected: instances never share
// memory. Use Clone to branch execution, for example in a backtracking search.
//
// The VM has no notion of time. Callers that need to bound execution of
// untrusted programs can set a per-call step budget with the MaxSteps option.
package vm

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

// Package asm provides utility functions to disassemble Intcode VM code.
//
// Mnemonics:
//
//	opcode	asm	params	description
//	------	---	------	------------------------------------------------------------
//	1	add	a b c	store a+b at c
//	2	mul	a b c	store a*b at c
//	3	in	a	store the next input value at a, or wait for input
//	4	out	a	output a
//	5	jnz	a b	jump to b if a != 0
//	6	jz	a b	jump to b if a == 0
//	7	lt	a b c	store 1 at c if a < b, 0 otherwise
//	8	eq	a b c	store 1 at c if a == b, 0 otherwise
//	9	arb	a	add a to the relative base
//	99	hlt		halt
//
// Parameters are written according to their mode:
//
//	[42]	position: the cell at address 42
//	42	immediate: the value 42
//	[rb-3]	relative: the cell at address relative base - 3
//
// Cells that do not decode to a valid instruction are written as data:
//
//	.dat 1234
//
// Since code and data share the same memory, a linear disassembly of an image
// will interpret data cells as code wherever they happen to decode.
package asm

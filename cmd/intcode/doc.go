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

// The intcode command line tool runs Intcode programs with the VM from the
// package github.com/db47h/intcode/vm.
//
// Programs are loaded from text files holding comma separated integers. Use -
// as the program name to read the program from stdin.
//
// Usage:
//
//	intcode [global flags] command [flags] program
//
// Commands:
//
//	run
//		  run a program, feeding it values from --input then from stdin
//	disasm
//		  disassemble a program
//	ascii
//		  run a text based program interactively
//	chain
//		  run a program as a chain of amplifiers
//	net
//		  run a network of nodes running the same program
//
// Global flags:
//
//	--config file
//		  load settings from TOML file
//	-v, --verbose
//		  increase log verbosity (can be repeated)
//	--log file
//		  write log to file instead of stderr
//	--debug
//		  enable debug diagnostics
//
// --debug: on error, the full error trace is printed. If the error is a VM
// fault, the faulting instruction is disassembled and the VM state is dumped.
//
// Settings can also be read from a configuration file given with --config.
// Flags given on the command line take precedence:
//
//	[run]
//	steps = 1000000   # instruction budget per run, 0 for no limit
//	ascii = false     # decode output as text
//
//	[log]
//	verbosity = 1
//	file = "~/intcode.log"
//
//	[ascii]
//	prompt = "> "
//	history = "~/.intcode_history"
//
//	[network]
//	size = 50
//	nat = 255
//
// With run --steps, a program that exhausts its budget is suspended and the
// command exits with a warning. The --dump flag writes the final memory
// contents to a file, in the same format as program files.
//
// The ascii command with --raw switches the terminal to raw mode and sends
// every key press to the program as it is typed. This is only supported on
// Linux.
package main

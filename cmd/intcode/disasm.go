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

package main

import (
	"bufio"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/spf13/cobra"
)

func newDisasmCmd() *cobra.Command {
	var base, from, to int64
	cmd := &cobra.Command{
		Use:   "disasm [flags] program",
		Short: "Disassemble an Intcode program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			if to <= 0 || to > int64(len(img)) {
				to = int64(len(img))
			}
			if from < 0 || from > to {
				from = to
			}
			w := bufio.NewWriter(cmd.OutOrStdout())
			if err = asm.DisassembleAll(img[from:to], vm.Cell(base+from), w); err != nil {
				return err
			}
			return w.Flush()
		},
	}
	fs := cmd.Flags()
	fs.Int64Var(&base, "base", 0, "load address of the program")
	fs.Int64Var(&from, "from", 0, "start disassembly at this offset")
	fs.Int64Var(&to, "to", 0, "stop disassembly at this offset (0 for end of program)")
	return cmd
}

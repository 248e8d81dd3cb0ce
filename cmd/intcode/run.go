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
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// writeOutput writes output values one per line, or as text if text is true.
func writeOutput(w io.Writer, out []vm.Cell, text bool) {
	if text {
		s, rest := ascii.Decode(out)
		io.WriteString(w, s)
		out = rest
	}
	for _, v := range out {
		b := strconv.AppendInt(nil, int64(v), 10)
		w.Write(append(b, '\n'))
	}
}

// runProgram runs i with the given input, then feeds it lines read from in
// until it halts or in is exhausted. Each line is either a comma separated
// list of values, or a command if text is true.
func runProgram(i *vm.Instance, input []vm.Cell, in io.Reader, w io.Writer, text bool) (vm.Result, error) {
	ew := ici.NewErrWriter(w)
	r, err := i.Run(input...)
	writeOutput(ew, r.Output, text)
	if in == nil {
		return r, err
	}
	br := bufio.NewReader(in)
	for err == nil && ew.Err == nil && r.Status == vm.AwaitingInput {
		line, rerr := br.ReadString('\n')
		if line == "" && rerr == io.EOF {
			break
		}
		if rerr != nil && rerr != io.EOF {
			return r, errors.Wrap(rerr, "read input")
		}
		line = strings.TrimSuffix(line, "\n")
		var v []vm.Cell
		if text {
			v = ascii.EncodeCommand(line)
		} else if v, err = parseCells(line); err != nil {
			return r, errors.Wrap(err, "read input")
		}
		r, err = i.Continue(v...)
		writeOutput(ew, r.Output, text)
	}
	if err != nil {
		return r, err
	}
	return r, ew.Err
}

func newRunCmd() *cobra.Command {
	var (
		input   string
		noStdin bool
		dump    string
	)
	cmd := &cobra.Command{
		Use:   "run [flags] program",
		Short: "Run an Intcode program",
		Long: `Run an Intcode program. Use - as program name to read the program from stdin.

Output values are written one per line. When the program waits for input,
values given with --input are used first, then lines are read from stdin.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			values, err := parseCells(input)
			if err != nil {
				return errors.Wrap(err, "--input")
			}
			i, err := vm.New(img, vm.MaxSteps(cfg.Run.Steps))
			if err != nil {
				return err
			}
			var in io.Reader = os.Stdin
			if noStdin || args[0] == "-" {
				in = nil
			}
			r, err := runProgram(i, values, in, cmd.OutOrStdout(), cfg.Run.ASCII)
			if err != nil {
				failedInstance = i
				return err
			}
			switch r.Status {
			case vm.AwaitingInput:
				log.Warningf("program is awaiting input @pc=%d", r.Continuation.PC)
			case vm.Running:
				log.Warningf("step budget exhausted @pc=%d", r.Continuation.PC)
			}
			log.Infof("%d instructions executed", i.InstructionCount())
			if dump != "" {
				f, err := os.Create(dump)
				if err != nil {
					return err
				}
				if err = i.Dump(f); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVarP(&input, "input", "i", "", "comma separated input `values`")
	fs.BoolVar(&noStdin, "no-stdin", false, "do not read input from stdin")
	fs.Int64Var(&cfg.Run.Steps, "steps", cfg.Run.Steps, "maximum number of instructions to execute (0 for no limit)")
	fs.BoolVarP(&cfg.Run.ASCII, "ascii", "a", cfg.Run.ASCII, "decode output as text, and read input lines as commands")
	fs.StringVar(&dump, "dump", "", "dump memory to `file` on exit")
	return cmd
}

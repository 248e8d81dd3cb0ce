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
	"fmt"
	"io"
	"os"

	"github.com/db47h/intcode/asm"
	"github.com/db47h/intcode/vm"
	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/tliron/kutil/util"
)

var log = commonlog.GetLogger("intcode.cmd")

var (
	cfg     = defaultConfig()
	cfgFile string
	debug   bool
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "intcode",
		Short:         "Intcode virtual machine",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			f, err := loadConfig(cfgFile)
			if err != nil {
				return err
			}
			cfg.merge(cmd.Flags(), f)
			if cfg.Log.File != "" {
				p := expandHome(cfg.Log.File)
				commonlog.Configure(cfg.Log.Verbosity, &p)
			} else {
				commonlog.Configure(cfg.Log.Verbosity, nil)
			}
			return nil
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	pf := root.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "load settings from TOML `file`")
	pf.CountVarP(&cfg.Log.Verbosity, "verbose", "v", "increase log verbosity (can be repeated)")
	pf.StringVar(&cfg.Log.File, "log", cfg.Log.File, "write log to `file` instead of stderr")
	pf.BoolVar(&debug, "debug", false, "enable debug diagnostics")

	root.AddCommand(newRunCmd(), newDisasmCmd(), newASCIICmd(), newChainCmd(), newNetCmd())
	return root
}

// loadImage loads a program from the named file, or from stdin if name is "-".
func loadImage(name string) (vm.Image, error) {
	if name == "-" {
		return vm.Parse(bufio.NewReader(os.Stdin))
	}
	return vm.Load(name)
}

// dumpFault prints the state of a faulted instance.
func dumpFault(w io.Writer, i *vm.Instance) {
	f, ok := vm.AsFault(i.Err())
	if !ok {
		return
	}
	fmt.Fprintf(w, "PC: %d, RB: %d, instructions: %d\n", i.Continuation().PC, i.Continuation().RelBase, i.InstructionCount())
	if f.PC >= 0 {
		fmt.Fprintf(w, "% 10d\t", f.PC)
		asm.Disassemble(i.Mem(), f.PC, w)
		fmt.Fprintln(w)
	}
	spew.Fdump(w, f, i.Continuation(), i.Pending())
}

func atExit(i *vm.Instance, err error) {
	if err == nil {
		util.Exit(0)
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		util.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if i != nil {
		dumpFault(os.Stderr, i)
	}
	util.Exit(1)
}

// failedInstance is set by subcommands to the instance that caused an error.
var failedInstance *vm.Instance

func main() {
	util.ExitOnSignals()
	err := newRootCmd().Execute()
	atExit(failedInstance, err)
}

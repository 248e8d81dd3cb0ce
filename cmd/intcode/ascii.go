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
	"strings"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/tliron/kutil/util"
)

// linePrompter adapts liner to ascii.Prompter. CTRL-C ends the session like
// CTRL-D, and non-empty lines are added to the history.
type linePrompter struct {
	*liner.State
}

func (p linePrompter) Prompt(prompt string) (string, error) {
	l, err := p.State.Prompt(prompt)
	if err == liner.ErrPromptAborted {
		return "", io.EOF
	}
	if err == nil && l != "" {
		p.AppendHistory(l)
	}
	return l, err
}

func readHistory(l *liner.State, name string) {
	f, err := os.Open(name)
	if err != nil {
		return
	}
	defer f.Close()
	if _, err = l.ReadHistory(f); err != nil {
		log.Warningf("history %s: %v", name, err)
	}
}

func writeHistory(l *liner.State, name string) {
	f, err := os.Create(name)
	if err != nil {
		log.Warningf("history %s: %v", name, err)
		return
	}
	defer f.Close()
	if _, err = l.WriteHistory(f); err != nil {
		log.Warningf("history %s: %v", name, err)
	}
}

// sendScript sends each line of the named file as a command.
func sendScript(s *ascii.Session, name string, w io.Writer) error {
	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		cmd := strings.TrimRight(sc.Text(), "\r")
		r, err := s.Send(cmd)
		io.WriteString(w, r.Text)
		writeOutput(w, r.Values, false)
		if err != nil {
			return err
		}
		if r.Status != vm.AwaitingInput {
			break
		}
	}
	return errors.Wrap(sc.Err(), name)
}

// rawLoop feeds the program one byte of input at a time as soon as it is
// typed. CTRL-D or the end of input stops the program.
func rawLoop(i *vm.Instance, in io.Reader, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	r, err := i.Continue()
	writeOutput(ew, r.Output, true)
	b := make([]byte, 1)
	for err == nil && ew.Err == nil && r.Status == vm.AwaitingInput {
		if _, rerr := io.ReadFull(in, b); rerr != nil || b[0] == 4 {
			if rerr == io.EOF || rerr == nil {
				return nil
			}
			return rerr
		}
		r, err = i.Continue(vm.Cell(b[0]))
		writeOutput(ew, r.Output, true)
	}
	if err != nil {
		return err
	}
	return ew.Err
}

func newASCIICmd() *cobra.Command {
	var (
		raw    bool
		script string
	)
	cmd := &cobra.Command{
		Use:   "ascii [flags] program",
		Short: "Run a text based Intcode program interactively",
		Long: `Run a text based Intcode program interactively.

Program output is decoded as text. Lines typed at the prompt are sent to the
program as newline terminated commands. Values that do not fit in a byte are
printed as numbers. CTRL-D or CTRL-C ends the session.

With --raw, the terminal is switched to raw mode and each key press is sent to
the program as it is typed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			s, err := ascii.NewSession(img, vm.MaxSteps(cfg.Run.Steps))
			if err != nil {
				return err
			}
			s.Prompt = cfg.ASCII.Prompt
			out := cmd.OutOrStdout()
			defer func() {
				if err != nil {
					failedInstance = s.Instance()
				}
			}()

			if script != "" {
				if err = sendScript(s, script, out); err != nil {
					return err
				}
			}

			if raw {
				restore, rerr := setRawIO()
				if rerr != nil {
					log.Warningf("raw mode: %v", rerr)
				} else {
					h := util.OnExit(restore)
					defer func() {
						h.Cancel()
						restore()
					}()
				}
				err = rawLoop(s.Instance(), os.Stdin, out)
				return err
			}

			l := liner.NewLiner()
			defer l.Close()
			l.SetCtrlCAborts(true)
			history := expandHome(cfg.ASCII.History)
			if history != "" {
				readHistory(l, history)
				defer writeHistory(l, history)
			}
			err = s.Interact(linePrompter{l}, out)
			return err
		},
	}
	fs := cmd.Flags()
	fs.BoolVar(&raw, "raw", false, "send key presses to the program as they are typed")
	fs.StringVar(&script, "script", "", "send the commands in `file` before going interactive")
	fs.StringVar(&cfg.ASCII.Prompt, "prompt", cfg.ASCII.Prompt, "prompt `string`")
	fs.StringVar(&cfg.ASCII.History, "history", cfg.ASCII.History, "history `file` (empty to disable)")
	return cmd
}

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

package ascii

import (
	"io"
	"strconv"

	"github.com/db47h/intcode/internal/ici"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
)

// Errors returned by Session methods.
var (
	ErrEnded   = errors.New("session ended")
	ErrStalled = errors.New("step budget exhausted")
)

// Reply is the decoded output of a program in response to a command.
type Reply struct {
	Text   string
	Values []vm.Cell // non-character output values
	Status vm.Status
}

// Session drives a text based program in request/response fashion: each
// command is sent as a line of input and the program runs until it asks for
// more input.
type Session struct {
	// Prompt is the prompt string used by Interact.
	Prompt string

	i       *vm.Instance
	started bool
	last    Reply
}

// NewSession creates a new VM instance for the given image. Options are passed
// to vm.New.
func NewSession(img vm.Image, opts ...vm.Option) (*Session, error) {
	i, err := vm.New(img, opts...)
	if err != nil {
		return nil, err
	}
	return &Session{i: i}, nil
}

// Instance returns the underlying VM instance.
func (s *Session) Instance() *vm.Instance {
	return s.i
}

// Last returns the last reply.
func (s *Session) Last() Reply {
	return s.last
}

func (s *Session) reply(r vm.Result, err error) (Reply, error) {
	var rp Reply
	rp.Text, rp.Values = Decode(r.Output)
	rp.Status = r.Status
	s.last = rp
	return rp, err
}

// Start runs the program until it first asks for input. Calling Start on a
// session that has already started returns the last reply.
func (s *Session) Start() (Reply, error) {
	if s.started {
		return s.last, s.i.Err()
	}
	s.started = true
	return s.reply(s.i.Run())
}

// Send sends cmd, followed by a newline, to the program and runs it until it
// asks for more input. The session is started first if needed, in which case
// the text output before the first prompt is part of the reply.
//
// If the program has halted, Send returns ErrEnded. A fault is returned as a
// *vm.Fault along with any output produced before the fault.
func (s *Session) Send(cmd string) (Reply, error) {
	var head Reply
	if !s.started {
		var err error
		if head, err = s.Start(); err != nil {
			return head, err
		}
	}
	switch s.i.Status() {
	case vm.Halted:
		return s.last, ErrEnded
	case vm.Faulted:
		return s.last, s.i.Err()
	}
	r, err := s.reply(s.i.Continue(EncodeCommand(cmd)...))
	if head.Text != "" || len(head.Values) > 0 {
		r.Text = head.Text + r.Text
		r.Values = append(head.Values, r.Values...)
		s.last = r
	}
	return r, err
}

// Clone returns an independent copy of the session. Commands sent to the clone
// do not affect the original.
func (s *Session) Clone() *Session {
	c := *s
	c.i = s.i.Clone()
	c.last.Values = append([]vm.Cell(nil), s.last.Values...)
	return &c
}

// Prompter reads a line of input from the user. It is implemented by
// liner.State.
type Prompter interface {
	Prompt(prompt string) (string, error)
}

func writeReply(w io.Writer, r Reply) {
	io.WriteString(w, r.Text)
	for _, v := range r.Values {
		b := strconv.AppendInt(nil, int64(v), 10)
		w.Write(append(b, '\n'))
	}
}

// Interact runs an interactive session: program output is written to w and
// each line read from p is sent as a command. It returns nil when the program
// halts or when p returns io.EOF.
//
// If the session has not been started yet, Interact starts it. Otherwise, the
// last reply is not written again.
func (s *Session) Interact(p Prompter, w io.Writer) error {
	ew := ici.NewErrWriter(w)
	r, err := s.last, s.i.Err()
	if !s.started {
		r, err = s.Start()
		writeReply(ew, r)
	}
	for err == nil && ew.Err == nil {
		switch r.Status {
		case vm.Halted:
			return nil
		case vm.Running:
			return errors.Wrapf(ErrStalled, "pc=%d", s.i.Continuation().PC)
		}
		var line string
		line, err = p.Prompt(s.Prompt)
		if err != nil {
			if errors.Cause(err) == io.EOF {
				return nil
			}
			return err
		}
		r, err = s.Send(line)
		writeReply(ew, r)
	}
	if err != nil {
		return err
	}
	return ew.Err
}

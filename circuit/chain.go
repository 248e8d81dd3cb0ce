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

package circuit

import (
	"context"
	"runtime"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Errors returned by Chain and Feedback.
var (
	ErrNoStages = errors.New("no stages")
	ErrNoOutput = errors.New("stage produced no output")
	ErrDeadlock = errors.New("deadlock")
)

// Chain runs a pipeline of one VM per phase setting. Each stage is fed its
// phase setting and the output of the previous stage, the first stage getting
// signal, and runs until it halts or waits for more input. It returns the last
// value output by the last stage.
func Chain(img vm.Image, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, ErrNoStages
	}
	for k, p := range phases {
		i, err := vm.New(img)
		if err != nil {
			return 0, err
		}
		r, err := i.Run(p, signal)
		if err != nil {
			return 0, errors.Wrapf(err, "stage %d", k)
		}
		if len(r.Output) == 0 {
			return 0, errors.Wrapf(ErrNoOutput, "stage %d (%v)", k, r.Status)
		}
		signal = r.Output[len(r.Output)-1]
	}
	return signal, nil
}

// Feedback runs a feedback loop of one VM per phase setting. Each stage is
// first fed its phase setting. The first stage then gets signal, and each
// stage runs until it waits for input, its output being fed to the next stage.
// The output of the last stage is fed back to the first one. This goes on
// until the last stage halts.
//
// Feedback returns the last value output by the last stage, or ErrDeadlock if
// a full round of the loop goes by without any output.
func Feedback(img vm.Image, phases []vm.Cell, signal vm.Cell) (vm.Cell, error) {
	if len(phases) == 0 {
		return 0, ErrNoStages
	}
	stages := make([]*vm.Instance, len(phases))
	for k, p := range phases {
		var err error
		if stages[k], err = vm.New(img, vm.Input(p)); err != nil {
			return 0, err
		}
	}
	var (
		last vm.Cell
		seen bool
		in   = []vm.Cell{signal}
	)
	for {
		progress := false
		for k, s := range stages {
			r, err := s.Continue(in...)
			if err != nil {
				return 0, errors.Wrapf(err, "stage %d", k)
			}
			in = r.Output
			if len(in) > 0 {
				progress = true
			}
			if k < len(stages)-1 {
				continue
			}
			if len(in) > 0 {
				last, seen = in[len(in)-1], true
			}
			if r.Status == vm.Halted {
				if !seen {
					return 0, errors.Wrapf(ErrNoOutput, "stage %d", k)
				}
				return last, nil
			}
		}
		if !progress {
			return 0, ErrDeadlock
		}
	}
}

// Sweep evaluates a Chain, or a Feedback loop if feedback is true, for each
// of the given phase settings and returns the results in the same order.
// Evaluations run concurrently, up to GOMAXPROCS at a time. The first error
// cancels the remaining evaluations.
func Sweep(ctx context.Context, img vm.Image, phaseSets [][]vm.Cell, signal vm.Cell, feedback bool) ([]vm.Cell, error) {
	run := Chain
	if feedback {
		run = Feedback
	}
	res := make([]vm.Cell, len(phaseSets))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for k, phases := range phaseSets {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			v, err := run(img, phases, signal)
			if err != nil {
				return errors.Wrapf(err, "phases %v", phases)
			}
			res[k] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Max returns the index and value of the largest value in v, or -1 if v is
// empty.
func Max(v []vm.Cell) (int, vm.Cell) {
	idx := -1
	var m vm.Cell
	for k, x := range v {
		if idx < 0 || x > m {
			idx, m = k, x
		}
	}
	return idx, m
}

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
	"fmt"

	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

// parsePhaseSets parses phase settings given on the command line.
func parsePhaseSets(sets []string) ([][]vm.Cell, error) {
	var ps [][]vm.Cell
	for _, s := range sets {
		p, err := parseCells(s)
		if err != nil {
			return nil, errors.Wrapf(err, "phases %q", s)
		}
		if len(p) == 0 {
			return nil, errors.Errorf("phases %q: empty phase setting", s)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

func newChainCmd() *cobra.Command {
	var (
		phases   []string
		signal   int64
		feedback bool
	)
	cmd := &cobra.Command{
		Use:   "chain [flags] program",
		Short: "Run a program as a chain of amplifiers",
		Long: `Run a program as a chain of amplifiers, one per phase setting.

Each --phases flag gives a comma separated list of phase settings, one per
stage. If several phase settings are given, they are evaluated concurrently and
the best one is printed along with its output signal.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			ps, err := parsePhaseSets(phases)
			if err != nil {
				return err
			}
			if len(ps) == 0 {
				return errors.New("no phase settings")
			}
			res, err := circuit.Sweep(cmd.Context(), img, ps, vm.Cell(signal), feedback)
			if err != nil {
				return err
			}
			k, v := circuit.Max(res)
			if len(ps) > 1 {
				for i := range ps {
					log.Infof("%v: %d", ps[i], res[i])
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%v\t", ps[k])
			}
			fmt.Fprintln(cmd.OutOrStdout(), v)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringArrayVarP(&phases, "phases", "p", nil, "comma separated phase `settings` (can be repeated)")
	fs.Int64VarP(&signal, "signal", "s", 0, "input signal of the first stage")
	fs.BoolVarP(&feedback, "feedback", "f", false, "feed the output of the last stage back to the first one")
	return cmd
}

func newNetCmd() *cobra.Command {
	var until string
	cmd := &cobra.Command{
		Use:   "net [flags] program",
		Short: "Run a network of nodes running the same program",
		Long: `Run a network of nodes running the same program.

With --until=receive, the command stops when the NAT receives its first packet.
With --until=repeat, it stops when the NAT wakes node 0 with the same Y value
twice in a row. In both cases, the last Y value is printed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			img, err := loadImage(args[0])
			if err != nil {
				return err
			}
			var watch func(circuit.Event) bool
			var y vm.Cell
			switch until {
			case "receive":
				watch = func(e circuit.Event) bool {
					y = e.Packet.Y
					return e.Kind == circuit.NATReceive
				}
			case "repeat":
				seen := false
				watch = func(e circuit.Event) bool {
					if e.Kind != circuit.NATWake {
						return false
					}
					log.Infof("round %d: NAT sends %v", e.Round, e.Packet)
					if seen && y == e.Packet.Y {
						return true
					}
					y, seen = e.Packet.Y, true
					return false
				}
			default:
				return errors.Errorf("invalid --until value %q", until)
			}
			n, err := circuit.NewNetwork(img, cfg.Network.Size,
				circuit.NATAddress(vm.Cell(cfg.Network.NAT)),
				circuit.NodeOptions(vm.MaxSteps(cfg.Run.Steps)))
			if err != nil {
				return err
			}
			if err = n.Run(cmd.Context(), watch); err != nil {
				for addr, ferr := range n.Faults() {
					log.Errorf("node %d: %v", addr, ferr)
				}
				return err
			}
			if d := n.Dropped(); d > 0 {
				log.Warningf("%d packets dropped", d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), y)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVarP(&cfg.Network.Size, "size", "n", cfg.Network.Size, "number of nodes")
	fs.Int64Var(&cfg.Network.NAT, "nat", cfg.Network.NAT, "NAT address")
	fs.StringVar(&until, "until", "receive", "stop condition: receive or repeat")
	fs.Int64Var(&cfg.Run.Steps, "steps", cfg.Run.Steps, "maximum number of instructions per node and round (0 for no limit)")
	return cmd
}

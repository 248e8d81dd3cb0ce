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
	"fmt"

	"github.com/db47h/intcode/vm"
	"github.com/pkg/errors"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("intcode.circuit")

// DefaultNAT is the default NAT address.
const DefaultNAT vm.Cell = 255

// Errors returned by Network.Run.
var (
	ErrNetworkDown = errors.New("all nodes are down")
	ErrIdle        = errors.New("network idle with no NAT packet")
)

// Packet is a network packet.
type Packet struct {
	Src  int // sending node
	Dst  vm.Cell
	X, Y vm.Cell
}

func (p Packet) String() string {
	return fmt.Sprintf("%d->%d (%d, %d)", p.Src, p.Dst, p.X, p.Y)
}

// EventKind identifies network events.
type EventKind int

// Event kinds.
const (
	NATReceive EventKind = iota // the NAT received a packet
	NATWake                     // the network was idle, the NAT sent its last packet to node 0
)

func (k EventKind) String() string {
	switch k {
	case NATReceive:
		return "receive"
	case NATWake:
		return "wake"
	}
	return "unknown"
}

// Event is a network event passed to the watch function of Network.Run.
type Event struct {
	Kind   EventKind
	Packet Packet
	Round  int
}

type node struct {
	i       *vm.Instance
	queue   []vm.Cell
	partial []vm.Cell
	err     error
}

// Network is a network of VM instances running the same program.
type Network struct {
	nodes    []node
	nat      vm.Cell
	nodeOpts []vm.Option
	natPkt   *Packet
	booted   bool
	round    int
	cursor   int // next node to run in the current round
	held     int // 1 + address of a node with undelivered packets
	idle     bool
	dropped  int
	alive    int
}

// NetworkOption interface
type NetworkOption func(*Network) error

// NATAddress sets the NAT address. It must not be a node address.
func NATAddress(addr vm.Cell) NetworkOption {
	return func(n *Network) error {
		n.nat = addr
		return nil
	}
}

// NodeOptions sets the options used to create each node's VM instance.
func NodeOptions(opts ...vm.Option) NetworkOption {
	return func(n *Network) error {
		n.nodeOpts = append(n.nodeOpts, opts...)
		return nil
	}
}

// NewNetwork creates a network of size nodes running the given program. Nodes
// are addressed from 0 to size-1; each node gets its address as first input.
func NewNetwork(img vm.Image, size int, opts ...NetworkOption) (*Network, error) {
	if size <= 0 {
		return nil, errors.Errorf("invalid network size %d", size)
	}
	n := &Network{nodes: make([]node, size), nat: DefaultNAT, alive: size}
	for _, opt := range opts {
		if err := opt(n); err != nil {
			return nil, err
		}
	}
	if n.nat >= 0 && n.nat < vm.Cell(size) {
		return nil, errors.Errorf("NAT address %d conflicts with node address", n.nat)
	}
	for addr := range n.nodes {
		i, err := vm.New(img, append([]vm.Option{vm.Input(vm.Cell(addr))}, n.nodeOpts...)...)
		if err != nil {
			return nil, err
		}
		n.nodes[addr].i = i
	}
	return n, nil
}

// Size returns the number of nodes in the network.
func (n *Network) Size() int {
	return len(n.nodes)
}

// Node returns the VM instance of the node at address addr.
func (n *Network) Node(addr int) *vm.Instance {
	return n.nodes[addr].i
}

// Err returns the error that caused the node at address addr to be isolated,
// or nil if the node is up.
func (n *Network) Err(addr int) error {
	return n.nodes[addr].err
}

// Faults returns the errors of isolated nodes, by node address.
func (n *Network) Faults() map[int]error {
	m := make(map[int]error)
	for addr := range n.nodes {
		if err := n.nodes[addr].err; err != nil {
			m[addr] = err
		}
	}
	return m
}

// Dropped returns the number of packets dropped so far.
func (n *Network) Dropped() int {
	return n.dropped
}

// NAT returns the last packet received by the NAT, if any.
func (n *Network) NAT() (Packet, bool) {
	if n.natPkt == nil {
		return Packet{}, false
	}
	return *n.natPkt, true
}

func (n *Network) isolate(addr int, err error) {
	nd := &n.nodes[addr]
	nd.err = err
	nd.queue = nil
	n.alive--
	log.Errorf("node %d isolated: %v", addr, err)
}

// route assembles the output of node src into packets and delivers them. It
// returns true if watch asked to stop.
func (n *Network) route(src int, out []vm.Cell, watch func(Event) bool) bool {
	nd := &n.nodes[src]
	nd.partial = append(nd.partial, out...)
	k := 0
	for ; k+3 <= len(nd.partial); k += 3 {
		p := Packet{Src: src, Dst: nd.partial[k], X: nd.partial[k+1], Y: nd.partial[k+2]}
		switch {
		case p.Dst == n.nat:
			n.natPkt = &p
			log.Debugf("NAT received %v", p)
			if watch(Event{Kind: NATReceive, Packet: p, Round: n.round}) {
				nd.partial = append(nd.partial[:0], nd.partial[k+3:]...)
				n.held = src + 1
				return true
			}
		case p.Dst < 0 || p.Dst >= vm.Cell(len(n.nodes)):
			n.dropped++
			log.Warningf("packet %v dropped: unknown destination", p)
		case n.nodes[p.Dst].err != nil:
			n.dropped++
			log.Warningf("packet %v dropped: destination is down", p)
		default:
			dst := &n.nodes[p.Dst]
			dst.queue = append(dst.queue, p.X, p.Y)
		}
	}
	nd.partial = append(nd.partial[:0], nd.partial[k:]...)
	return false
}

// step runs the node at address addr with the given input and routes its
// output. It returns true if watch asked to stop.
func (n *Network) step(addr int, in []vm.Cell, watch func(Event) bool) (output, stop bool) {
	r, err := n.nodes[addr].i.Continue(in...)
	if err != nil {
		n.isolate(addr, err)
	} else {
		switch r.Status {
		case vm.Halted:
			n.isolate(addr, errors.New("halted"))
		case vm.Running:
			n.isolate(addr, errors.Errorf("step budget exhausted @pc=%d", r.Continuation.PC))
		}
	}
	return len(r.Output) > 0, n.route(addr, r.Output, watch)
}

// Run runs the network until watch returns true, the context is canceled or
// the network fails.
//
// On the first call, each node runs until it first reads input. The network
// then runs rounds: in each round, each node in address order gets its queued
// packets, or -1 if there are none, and runs until it reads input again. A
// round where no node had queued packets and no node output anything is idle:
// the NAT then sends its last packet to node 0.
//
// A node that faults is isolated, as is a node that halts or exhausts its
// step budget. Packets sent to isolated nodes or to addresses outside the
// network are dropped. Run returns ErrNetworkDown if all nodes are down, and
// ErrIdle if the network is idle before the NAT got a packet.
//
// Run can be called again after watch returned true; the network resumes
// exactly where it stopped.
func (n *Network) Run(ctx context.Context, watch func(Event) bool) error {
	if watch == nil {
		watch = func(Event) bool { return false }
	}
	// deliver the packets left over when watch stopped the network
	if n.held > 0 {
		src := n.held - 1
		n.held = 0
		if n.route(src, nil, watch) {
			return nil
		}
	}
	for {
		if n.cursor == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
			if n.alive == 0 {
				return ErrNetworkDown
			}
			if n.booted {
				n.round++
			}
			n.idle = true
		}
		for n.cursor < len(n.nodes) {
			addr := n.cursor
			n.cursor++
			nd := &n.nodes[addr]
			if nd.err != nil {
				continue
			}
			var in []vm.Cell
			if n.booted {
				in, nd.queue = nd.queue, nil
				if len(in) > 0 {
					n.idle = false
				} else {
					in = []vm.Cell{-1}
				}
			}
			out, stop := n.step(addr, in, watch)
			if out {
				n.idle = false
			}
			if stop {
				return nil
			}
		}
		n.cursor = 0
		if !n.booted {
			n.booted = true
			continue
		}
		if !n.idle || n.alive == 0 {
			continue
		}
		if n.natPkt == nil {
			return errors.Wrapf(ErrIdle, "round %d", n.round)
		}
		if err := n.nodes[0].err; err != nil {
			return errors.Wrap(ErrNetworkDown, "node 0 is down")
		}
		p := *n.natPkt
		n.nodes[0].queue = append(n.nodes[0].queue, p.X, p.Y)
		log.Debugf("network idle at round %d, waking node 0 with %v", n.round, p)
		if watch(Event{Kind: NATWake, Packet: p, Round: n.round}) {
			return nil
		}
	}
}

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

package circuit_test

import (
	"context"
	"testing"

	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// relay is a 3 node ring: node 0 boots by sending (100, 0) to node 1. Each
// node then forwards any packet it receives to the next node with Y
// incremented, node 2 forwarding to 255. The destination of each packet is
// output, then the node reads a dummy input before outputting X and Y.
var relay = vm.Image{3, 1000, 1005, 1000, 20, 1101, 100, 0, 1001, 1101, 0, 0, 1002,
	1101, 1, 0, 1003, 1105, 1, 50, 3, 1001, 1008, 1001, -1, 1004, 1005, 1004, 20, 3, 1002,
	1001, 1002, 1, 1002, 1001, 1000, 1, 1003, 1008, 1000, 2, 1004, 1006, 1004, 50, 1101,
	255, 0, 1003, 4, 1003, 3, 1005, 4, 1001, 4, 1002, 1105, 1, 20}

// faulty: node 1 faults at boot. Node 2 sends (5, 5) to node 1 and (6, 6) to
// node 77, then polls. Node 0 polls once, sends (7, 7) to 255, then polls.
var faulty = vm.Image{3, 1000, 1008, 1000, 1, 1004, 1005, 1004, 44, 1008, 1000, 0,
	1004, 1006, 1004, 29, 3, 1001, 104, 255, 104, 7, 104, 7, 3, 1001, 1105, 1, 24, 104,
	1, 104, 5, 104, 5, 104, 77, 104, 6, 104, 6, 1105, 1, 24, 0}

// poll reads its address and polls forever.
var poll = vm.Image{3, 1000, 3, 1001, 1105, 1, 2}

type ev struct {
	kind circuit.EventKind
	x, y vm.Cell
}

func TestNetwork(t *testing.T) {
	n, err := circuit.NewNetwork(relay, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, n.Size())

	var evs []ev
	err = n.Run(context.Background(), func(e circuit.Event) bool {
		evs = append(evs, ev{e.Kind, e.Packet.X, e.Packet.Y})
		return e.Kind == circuit.NATReceive && e.Packet.Y >= 8
	})
	require.NoError(t, err)
	assert.Equal(t, []ev{
		{circuit.NATReceive, 100, 2},
		{circuit.NATWake, 100, 2},
		{circuit.NATReceive, 100, 5},
		{circuit.NATWake, 100, 5},
		{circuit.NATReceive, 100, 8},
	}, evs)
	p, ok := n.NAT()
	require.True(t, ok)
	assert.Equal(t, circuit.Packet{Src: 2, Dst: 255, X: 100, Y: 8}, p)
	assert.Empty(t, n.Faults())
	assert.Zero(t, n.Dropped())
}

func TestNetworkResume(t *testing.T) {
	n, err := circuit.NewNetwork(relay, 3)
	require.NoError(t, err)
	var evs []ev
	watch := func(e circuit.Event) bool {
		evs = append(evs, ev{e.Kind, e.Packet.X, e.Packet.Y})
		return true
	}
	for k := 0; k < 4; k++ {
		require.NoError(t, n.Run(context.Background(), watch))
	}
	assert.Equal(t, []ev{
		{circuit.NATReceive, 100, 2},
		{circuit.NATWake, 100, 2},
		{circuit.NATReceive, 100, 5},
		{circuit.NATWake, 100, 5},
	}, evs)
}

// burst: node 1 sends (1, 2) to 255 and (7, 8) to node 0 at boot, then polls.
// Node 0 forwards any packet it receives to 255.
var burst = vm.Image{3, 1000, 1005, 1000, 25, 3, 1001, 1008, 1001, -1, 1004, 1005, 1004,
	5, 3, 1002, 104, 255, 4, 1001, 4, 1002, 1105, 1, 5, 1008, 1000, 1, 1004, 1006, 1004,
	44, 104, 255, 104, 1, 104, 2, 104, 0, 104, 7, 104, 8, 3, 1001, 1105, 1, 44}

func TestNetworkResumeHeldPackets(t *testing.T) {
	type rev struct {
		ev
		round int
	}
	want := []rev{
		{ev{circuit.NATReceive, 1, 2}, 0},
		{ev{circuit.NATReceive, 7, 8}, 1},
		{ev{circuit.NATWake, 7, 8}, 2},
	}

	n, err := circuit.NewNetwork(burst, 3)
	require.NoError(t, err)
	var all []rev
	err = n.Run(context.Background(), func(e circuit.Event) bool {
		all = append(all, rev{ev{e.Kind, e.Packet.X, e.Packet.Y}, e.Round})
		return len(all) == len(want)
	})
	require.NoError(t, err)
	assert.Equal(t, want, all)

	// stopping on each event must not delay packets sent to lower addresses
	n, err = circuit.NewNetwork(burst, 3)
	require.NoError(t, err)
	var evs []rev
	for k := 0; k < len(want); k++ {
		require.NoError(t, n.Run(context.Background(), func(e circuit.Event) bool {
			evs = append(evs, rev{ev{e.Kind, e.Packet.X, e.Packet.Y}, e.Round})
			return true
		}))
	}
	assert.Equal(t, want, evs)
}

func TestNetworkNATAddress(t *testing.T) {
	_, err := circuit.NewNetwork(relay, 3, circuit.NATAddress(2))
	assert.Error(t, err)
	_, err = circuit.NewNetwork(relay, 0)
	assert.Error(t, err)

	// node 2 forwards to 255, which is now an unknown address.
	n, err := circuit.NewNetwork(relay, 3, circuit.NATAddress(-2))
	require.NoError(t, err)
	err = n.Run(context.Background(), nil)
	assert.ErrorIs(t, err, circuit.ErrIdle)
	assert.Equal(t, 1, n.Dropped())
}

func TestNetworkFault(t *testing.T) {
	n, err := circuit.NewNetwork(faulty, 3)
	require.NoError(t, err)
	var got []circuit.Event
	err = n.Run(context.Background(), func(e circuit.Event) bool {
		got = append(got, e)
		return true
	})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, circuit.Packet{Src: 0, Dst: 255, X: 7, Y: 7}, got[0].Packet)
	assert.Equal(t, 1, got[0].Round)

	faults := n.Faults()
	require.Len(t, faults, 1)
	f, ok := vm.AsFault(faults[1])
	require.True(t, ok)
	assert.Equal(t, vm.InvalidOpcode, f.Kind)
	assert.Equal(t, faults[1], n.Err(1))
	assert.NoError(t, n.Err(0))
	assert.Equal(t, vm.Faulted, n.Node(1).Status())
	// to the faulted node and to address 77
	assert.Equal(t, 2, n.Dropped())
}

func TestNetworkDown(t *testing.T) {
	n, err := circuit.NewNetwork(vm.Image{0}, 3)
	require.NoError(t, err)
	err = n.Run(context.Background(), nil)
	assert.ErrorIs(t, err, circuit.ErrNetworkDown)
	assert.Len(t, n.Faults(), 3)

	// halted nodes are down too
	n, err = circuit.NewNetwork(vm.Image{3, 0, 99}, 2)
	require.NoError(t, err)
	err = n.Run(context.Background(), nil)
	assert.ErrorIs(t, err, circuit.ErrNetworkDown)
}

func TestNetworkIdle(t *testing.T) {
	n, err := circuit.NewNetwork(poll, 2)
	require.NoError(t, err)
	err = n.Run(context.Background(), nil)
	assert.ErrorIs(t, err, circuit.ErrIdle)
}

func TestNetworkStepBudget(t *testing.T) {
	// node spins forever without reading input
	n, err := circuit.NewNetwork(vm.Image{3, 100, 1105, 1, 2}, 2, circuit.NodeOptions(vm.MaxSteps(100)))
	require.NoError(t, err)
	err = n.Run(context.Background(), nil)
	assert.ErrorIs(t, err, circuit.ErrNetworkDown)
	assert.Len(t, n.Faults(), 2)
}

func TestNetworkCancel(t *testing.T) {
	n, err := circuit.NewNetwork(poll, 2)
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, n.Run(ctx, nil), context.Canceled)
}

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

type C []vm.Cell

var (
	// reads phase and signal, outputs signal*10+phase.
	amp = vm.Image{3, 100, 3, 101, 1002, 101, 10, 102, 1, 102, 100, 102, 4, 102, 99}
	// reads phase, then three times: reads signal, outputs signal+phase.
	loop = vm.Image{3, 100, 3, 101, 1, 101, 100, 102, 4, 102, 1001, 103, 1, 103, 1007, 103, 3, 104, 1005, 104, 2, 99}
	// consumes input forever without output.
	sink = vm.Image{3, 100, 3, 101, 1105, 1, 2}
)

func TestChain(t *testing.T) {
	v, err := circuit.Chain(amp, C{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(123), v)

	v, err = circuit.Chain(amp, C{4}, 1)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(14), v)

	_, err = circuit.Chain(amp, nil, 0)
	assert.Equal(t, circuit.ErrNoStages, err)

	_, err = circuit.Chain(sink, C{1, 2}, 0)
	assert.ErrorIs(t, err, circuit.ErrNoOutput)

	_, err = circuit.Chain(vm.Image{3, 0, 3, 0, 42}, C{1}, 0)
	f, ok := vm.AsFault(err)
	require.True(t, ok)
	assert.Equal(t, vm.InvalidOpcode, f.Kind)
}

func TestFeedback(t *testing.T) {
	v, err := circuit.Feedback(loop, C{1, 2, 3}, 0)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(18), v)

	// single stage feeding itself
	v, err = circuit.Feedback(loop, C{5}, 10)
	require.NoError(t, err)
	assert.Equal(t, vm.Cell(25), v)

	_, err = circuit.Feedback(sink, C{1, 2}, 0)
	assert.ErrorIs(t, err, circuit.ErrDeadlock)

	_, err = circuit.Feedback(loop, nil, 0)
	assert.Equal(t, circuit.ErrNoStages, err)
}

func TestSweep(t *testing.T) {
	sets := []C{{1, 2, 3}, {3, 2, 1}, {2, 1, 3}}
	phaseSets := make([][]vm.Cell, len(sets))
	for k := range sets {
		phaseSets[k] = sets[k]
	}
	res, err := circuit.Sweep(context.Background(), amp, phaseSets, 0, false)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{123, 321, 213}, res)
	idx, v := circuit.Max(res)
	assert.Equal(t, 1, idx)
	assert.Equal(t, vm.Cell(321), v)

	res, err = circuit.Sweep(context.Background(), loop, [][]vm.Cell{{1, 2, 3}, {3, 3, 3}}, 0, true)
	require.NoError(t, err)
	assert.Equal(t, []vm.Cell{18, 27}, res)

	_, err = circuit.Sweep(context.Background(), amp, [][]vm.Cell{{1}, nil, {2}}, 0, false)
	assert.ErrorIs(t, err, circuit.ErrNoStages)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = circuit.Sweep(ctx, amp, phaseSets, 0, false)
	assert.ErrorIs(t, err, context.Canceled)

	idx, _ = circuit.Max(nil)
	assert.Equal(t, -1, idx)
}

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

package vm

import "github.com/pkg/errors"

// addresses below denseLimit may be stored in the dense part of a Memory.
const denseLimit = 1 << 20

// Memory is a sparse, auto-growing store of Cells. Any address that was never
// written reads as 0. Reading an address never allocates storage.
//
// Low addresses are kept in a slice that grows on demand. Writes far past its
// end go to an overflow map so that a single large address does not force a
// huge allocation.
//
// Addresses must not be negative. The VM checks this before accessing memory
// and reports a NegativeAddress fault; direct callers passing a negative
// address will cause a panic.
type Memory struct {
	dense []Cell
	far   map[Cell]Cell
}

// NewMemory returns a new Memory initialized with a copy of img at address 0.
func NewMemory(img Image) *Memory {
	m := &Memory{dense: make([]Cell, len(img))}
	copy(m.dense, img)
	return m
}

// Get returns the value stored at address addr.
func (m *Memory) Get(addr Cell) Cell {
	if addr < 0 {
		panic(errors.Errorf("memory read at negative address %d", addr))
	}
	if addr < Cell(len(m.dense)) {
		return m.dense[addr]
	}
	return m.far[addr]
}

// Set stores v at address addr.
func (m *Memory) Set(addr, v Cell) {
	if addr < 0 {
		panic(errors.Errorf("memory write at negative address %d", addr))
	}
	l := Cell(len(m.dense))
	switch {
	case addr < l:
		m.dense[addr] = v
	case addr < denseLimit && addr < 2*l+1024:
		m.grow(addr)
		m.dense[addr] = v
	default:
		if m.far == nil {
			m.far = make(map[Cell]Cell)
		}
		m.far[addr] = v
	}
}

// grow extends the dense part to include addr and migrates overflow entries
// that now fall inside it.
func (m *Memory) grow(addr Cell) {
	n := 2 * len(m.dense)
	if n <= int(addr) {
		n = int(addr) + 1
	}
	if n > denseLimit {
		n = denseLimit
	}
	if n <= cap(m.dense) {
		m.dense = m.dense[:n]
	} else {
		t := make([]Cell, n)
		copy(t, m.dense)
		m.dense = t
	}
	for a, v := range m.far {
		if a < Cell(n) {
			m.dense[a] = v
			delete(m.far, a)
		}
	}
}

// Len returns one past the highest address that may hold a non-zero value.
func (m *Memory) Len() Cell {
	l := Cell(len(m.dense))
	for a := range m.far {
		if a >= l {
			l = a + 1
		}
	}
	return l
}

// Slice returns a copy of the cells in the range [from, to).
func (m *Memory) Slice(from, to Cell) []Cell {
	if from < 0 {
		from = 0
	}
	if to <= from {
		return nil
	}
	s := make([]Cell, to-from)
	for a := from; a < to; a++ {
		s[a-from] = m.Get(a)
	}
	return s
}

// Clone returns an independent copy of m.
func (m *Memory) Clone() *Memory {
	c := &Memory{dense: make([]Cell, len(m.dense))}
	copy(c.dense, m.dense)
	if len(m.far) > 0 {
		c.far = make(map[Cell]Cell, len(m.far))
		for a, v := range m.far {
			c.far[a] = v
		}
	}
	return c
}

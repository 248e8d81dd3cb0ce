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

// Package circuit composes several Intcode VM instances running the same
// program.
//
// Chain and Feedback connect instances in a pipeline: each stage is booted
// with a phase setting, and the output of a stage is the input of the next.
// In a Feedback circuit the output of the last stage is routed back to the
// first one until the last stage halts. Sweep evaluates many phase settings
// concurrently.
//
// A Network connects instances by address. Each node is booted with its
// address and then exchanges packets of three values (destination, X, Y).
// Nodes are scheduled in strict round-robin order; a node with no pending
// packet reads -1. Packets sent to the NAT address are kept by the network;
// when the network goes idle, the last one is sent to node 0.
//
// VM instances are never run concurrently within a circuit: scheduling is
// explicit and deterministic. A node that faults is isolated from the network
// while the other nodes keep running.
package circuit

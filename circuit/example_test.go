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
	"fmt"

	"github.com/db47h/intcode/circuit"
	"github.com/db47h/intcode/vm"
)

func ExampleChain() {
	// each stage outputs signal*10+phase
	amp := vm.Image{3, 100, 3, 101, 1002, 101, 10, 102, 1, 102, 100, 102, 4, 102, 99}
	v, err := circuit.Chain(amp, []vm.Cell{4, 2}, 1)
	if err != nil {
		panic(err)
	}
	fmt.Println(v)

	// Output:
	// 142
}

// Watch NAT traffic until the NAT wakes node 0 with a Y value above 5.
func ExampleNetwork_Run() {
	n, err := circuit.NewNetwork(relay, 3)
	if err != nil {
		panic(err)
	}
	err = n.Run(context.Background(), func(e circuit.Event) bool {
		fmt.Println(e.Kind, e.Packet)
		return e.Kind == circuit.NATWake && e.Packet.Y > 5
	})
	if err != nil {
		panic(err)
	}

	// Output:
	// receive 2->255 (100, 2)
	// wake 2->255 (100, 2)
	// receive 2->255 (100, 5)
	// wake 2->255 (100, 5)
	// receive 2->255 (100, 8)
	// wake 2->255 (100, 8)
}

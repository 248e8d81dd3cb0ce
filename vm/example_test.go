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

package vm_test

import (
	"fmt"
	"strings"

	"github.com/db47h/intcode/vm"
)

// Shows how to drive a VM like a coroutine: run until it needs input, feed it,
// resume.
func ExampleInstance_Resume() {
	// echo input values, add them up until a 0 is read, then output the sum.
	img, err := vm.Parse(strings.NewReader("3,100,1006,100,14,4,100,1,100,101,101,1105,1,0,4,101,99\n"))
	if err != nil {
		panic(err)
	}
	i, err := vm.New(img)
	if err != nil {
		panic(err)
	}

	r, err := i.Run()
	for _, v := range []vm.Cell{3, 4, 5, 0} {
		if err != nil {
			break
		}
		fmt.Printf("%v @pc=%d\n", r.Status, r.Continuation.PC)
		r, err = i.Resume(r.Continuation, v)
		fmt.Println(r.Output)
	}
	if err != nil {
		panic(err)
	}
	fmt.Println(r.Status)

	// Output:
	// awaiting input @pc=0
	// [3]
	// awaiting input @pc=0
	// [4]
	// awaiting input @pc=0
	// [5]
	// awaiting input @pc=0
	// [12]
	// halted
}

// Faults are returned as errors and stop only the faulting instance.
func ExampleFault() {
	i, _ := vm.New(vm.Image{104, 7, 11101, 1, 1, 0, 99})
	r, err := i.Run()
	fmt.Println(r.Output, r.Status)
	if f, ok := vm.AsFault(err); ok {
		fmt.Println(f.Kind, "at", f.PC)
	}

	// Output:
	// [7] faulted
	// write through immediate parameter at 2
}

// Clone branches execution: both copies continue independently from the same
// state.
func ExampleInstance_Clone() {
	i, _ := vm.New(vm.Image{3, 0, 1002, 0, 10, 0, 4, 0, 99})
	i.Run()
	c := i.Clone()
	r1, _ := i.Continue(1)
	r2, _ := c.Continue(2)
	fmt.Println(r1.Output, r2.Output)

	// Output:
	// [10] [20]
}

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

package ascii_test

import (
	"fmt"
	"os"

	"github.com/db47h/intcode/lang/ascii"
	"github.com/db47h/intcode/vm"
)

func ExampleSession() {
	s, err := ascii.NewSession(echo)
	if err != nil {
		panic(err)
	}
	r, _ := s.Start()
	fmt.Print(r.Text)
	for _, cmd := range []string{"north", "take lamp", ""} {
		r, err = s.Send(cmd)
		if err != nil {
			panic(err)
		}
		fmt.Print(r.Text)
	}
	fmt.Println(r.Values, r.Status)

	// Output:
	// ?
	// north
	// ?
	// take lamp
	// ?
	// [42] halted
}

// Interact works with any line reader.
func ExampleSession_Interact() {
	s, _ := ascii.NewSession(echo)
	s.Interact(&lines{"hello", ""}, os.Stdout)

	// Output:
	// ?
	// hello
	// ?
	// 42
}

func ExampleDecode() {
	text, rest := ascii.Decode([]vm.Cell{'o', 'k', '\n', 1125899906842624})
	fmt.Printf("%q %v\n", text, rest)

	// Output:
	// "ok\n" [1125899906842624]
}

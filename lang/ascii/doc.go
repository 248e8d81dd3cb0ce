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

// Package ascii provides helpers for programs that talk to their user in
// text: each input or output value holds one character.
//
// Encode and EncodeCommand convert strings to input values. Decode converts
// output back to text, setting aside values that do not fit in a byte. Such
// values are typically a final numeric answer printed after some text.
//
// A Session wraps a VM instance and exchanges one command line for the text
// printed until the program asks for the next line:
//
//	s, err := ascii.NewSession(img)
//	if err != nil {
//		return err
//	}
//	r, err := s.Start()
//	// ...
//	r, err = s.Send("north")
//
// Sessions can be cloned to try a command without committing to it.
package ascii

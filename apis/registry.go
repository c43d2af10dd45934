/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package apis

import "reflect"

// Aliases names holder types explicitly, ahead of their reflected names.
// It follows the key registry lifecycle: written at start-up, then frozen.
type Aliases interface {
	// Register names the nearest named type of t. Re-registering the same
	// name is a no-op; a different name or a frozen table fails.
	Register(t reflect.Type, name string) error

	// Lookup returns the name registered for t.
	Lookup(t reflect.Type) (name string, ok bool)

	// Entries returns the aliases in registration order.
	Entries() []Entry

	// Count returns the number of registered entries.
	Count() int

	// Freeze closes the table for further registration. It is idempotent.
	Freeze()

	// Frozen reports whether Freeze was called.
	Frozen() bool
}

// Entry is one holder type alias.
type Entry struct {
	Type reflect.Type
	Name string
}

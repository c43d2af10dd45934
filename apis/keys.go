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

import "dirpx.dev/dmx/key"

// KeyRegistry maps stable names to keys. It is written during start-up and
// read lock-free afterwards.
type KeyRegistry interface {
	// Register binds k under k.Name(). It fails when the name is taken or
	// the registry is frozen.
	Register(k key.Any) error

	// Lookup returns the key bound to name.
	Lookup(name string) (key.Any, error)

	// Keys returns all keys in registration order.
	Keys() []key.Any

	// Count returns the number of registered keys.
	Count() int

	// Freeze closes the registry for further registration. It is idempotent.
	Freeze()

	// Frozen reports whether Freeze was called.
	Frozen() bool
}

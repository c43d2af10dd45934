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

// Package value holds the datum of a single property.
//
// Every value comes in a mutable variant, whose setters replace the datum
// in place and return the receiver, and an immutable variant, whose With
// methods return a new value. Converting between the two always deep
// copies the datum through the key's clone function.
package value

import (
	"errors"
	"fmt"

	"dirpx.dev/dmx/key"
)

// ErrRange is wrapped by every RangeError.
var ErrRange = errors.New("dmx(value): value out of range")

// RangeError reports a bounded value outside [Min, Max] or inverted bounds.
type RangeError struct {
	Key      string
	Value    any
	Min, Max any
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("dmx(value): %s: %v not in [%v, %v]", e.Key, e.Value, e.Min, e.Max)
}

func (e *RangeError) Unwrap() error { return ErrRange }

// Value is the untyped view shared by all values.
type Value interface {
	// Key returns the property the value belongs to.
	Key() key.Any
	// Raw returns a copy of the datum.
	Raw() any
}

// Immutable is a value that never changes after construction. Only the
// immutable variants of this package implement it.
type Immutable interface {
	Value
	// Mutable returns a mutable deep copy.
	Mutable() Mutable
	immutable()
}

// Mutable is a value that may be changed in place.
type Mutable interface {
	Value
	// Snapshot returns an immutable deep copy.
	Snapshot() Immutable
}

// Of is a value whose datum has type T.
type Of[T any] interface {
	Value
	Typed() *key.Key[T]
	Get() T
}

// Equal reports whether a and b belong to the same key and carry equal
// datums. Mutable and immutable variants compare equal.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Key() != b.Key() {
		return false
	}
	eq, ok := a.(interface{ equalRaw(any) bool })
	return ok && eq.equalRaw(b.Raw())
}

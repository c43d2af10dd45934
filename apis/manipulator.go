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

import (
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// Manipulator is a named bundle of values describing one aspect of a
// holder. Every manipulator type exists as a mutable and an immutable
// variant; both implement this interface.
type Manipulator interface {
	// Values returns immutable snapshots of every field, in declared order.
	Values() []value.Immutable

	// ToContainer serializes the manipulator into a fresh mapping keyed by
	// its fields' key queries.
	ToContainer() *view.Node
}

// MergeFunction decides which manipulator wins when proposed is applied
// where original may already exist. original is nil when absent.
// Copier is implemented by mutable manipulators. Holders that keep
// manipulators store and return copies so no caller shares their state.
type Copier interface {
	CopyManipulator() Manipulator
}

type MergeFunction interface {
	Merge(original, proposed Manipulator) Manipulator
}

// MergeFunc adapts a plain function to MergeFunction.
type MergeFunc func(original, proposed Manipulator) Manipulator

// Merge calls f.
func (f MergeFunc) Merge(original, proposed Manipulator) Manipulator {
	return f(original, proposed)
}

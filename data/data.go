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

// Package data declares the built-in manipulators.
//
// Each manipulator is a pair of types: a mutable one whose value handles
// can be changed in place, and an immutable one returned by AsImmutable.
// Conversions deep copy. Compare orders manipulators of one type by their
// fields in declared order. ToContainer writes every field under its key
// query; the Build functions read it back.
package data

import (
	"math"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/view"
)

// Mutable is implemented by every mutable manipulator M whose immutable
// counterpart is I.
type Mutable[M, I any] interface {
	apis.Manipulator
	apis.Copier
	Copy() M
	AsImmutable() I
	Compare(M) int
}

// Immutable is implemented by every immutable manipulator I whose mutable
// counterpart is M.
type Immutable[I, M any] interface {
	apis.Manipulator
	AsMutable() M
	Compare(I) int
}

// Bounds of the built-in bounded values.
const (
	MinSlimeSize = 0
	MaxSlimeSize = math.MaxInt32
	MinMoisture  = 0
	MaxMoisture  = 7
	MinPower     = 0
	MaxPower     = 15
)

func compareBool(a, b bool) int {
	switch {
	case a == b:
		return 0
	case a:
		return 1
	default:
		return -1
	}
}

// readInt reads a bounded int field and validates it against [min, max].
func readInt(n *view.Node, k *key.Key[int], min, max int) (int, bool, error) {
	v, ok, err := n.GetInt(k.Query())
	if err != nil || !ok {
		return 0, ok, err
	}
	if v < int64(min) || v > int64(max) {
		return 0, false, view.Invalid(k.Query(), "%d not in [%d, %d]", v, min, max)
	}
	return int(v), true, nil
}

// readID reads a string field and parses it with parse.
func readID[T any](n *view.Node, k *key.Key[T], parse func(string) (T, error)) (T, bool, error) {
	var zero T
	s, ok, err := n.GetString(k.Query())
	if err != nil || !ok {
		return zero, ok, err
	}
	v, err := parse(s)
	if err != nil {
		return zero, false, view.Invalid(k.Query(), "%v", err)
	}
	return v, true, nil
}

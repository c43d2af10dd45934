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

// Package catalog holds the closed sets of identifiers (skull types, horse
// traits, careers, block and item types, ...) that built-in keys carry.
//
// Every enumerated type has a stable textual ID used by the document tree,
// and an ordinal used by manipulators for deterministic ordering.
package catalog

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownID is returned when parsing an identifier that is not part of
// a catalog.
var ErrUnknownID = errors.New("dmx(catalog): unknown id")

// table maps ordinals of a small enumerated type to their IDs.
type table[T ~uint8] struct {
	kind string
	ids  []string
}

func (t table[T]) id(v T) string {
	if int(v) < len(t.ids) {
		return t.ids[v]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(v))
}

func (t table[T]) valid(v T) bool { return int(v) < len(t.ids) }

func (t table[T]) parse(s string) (T, error) {
	trimmed := strings.ToLower(strings.TrimSpace(s))
	for i, id := range t.ids {
		if id == trimmed {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %s %q", ErrUnknownID, t.kind, s)
}

func (t table[T]) marshal(v T) ([]byte, error) {
	if !t.valid(v) {
		return nil, fmt.Errorf("%w: %s %d", ErrUnknownID, t.kind, uint8(v))
	}
	return []byte(t.ids[v]), nil
}

func (t table[T]) all() []T {
	out := make([]T, len(t.ids))
	for i := range t.ids {
		out[i] = T(i)
	}
	return out
}

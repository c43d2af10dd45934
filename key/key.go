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

// Package key defines typed property identifiers.
//
// A Key names one property, carries the Go type of its datum and the
// value kind it pairs with, and addresses the datum inside a document
// tree. Collection keys also carry clone and equality functions so that
// values built from them never share backing storage.
package key

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"dirpx.dev/dmx/view"
)

// Kind is the shape of value a key pairs with.
type Kind uint8

const (
	KindPlain Kind = iota
	KindBounded
	KindList
	KindSet
	KindMap
)

func (k Kind) String() string {
	switch k {
	case KindPlain:
		return "plain"
	case KindBounded:
		return "bounded"
	case KindList:
		return "list"
	case KindSet:
		return "set"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Any is the untyped view of a Key, used by registries.
type Any interface {
	Name() string
	Query() view.Query
	Kind() Kind
	Type() reflect.Type
}

// Key identifies a property whose datum has type T.
type Key[T any] struct {
	name  string
	query view.Query
	kind  Kind
	clone func(T) T
	equal func(a, b T) bool
}

var _ Any = (*Key[int])(nil)

func newKey[T any](name, query string, kind Kind, clone func(T) T, equal func(a, b T) bool) *Key[T] {
	if name == "" {
		panic("dmx(key): empty key name")
	}
	q := view.Parse(query)
	if q.IsEmpty() {
		q = view.Of(name)
	}
	if clone == nil {
		clone = cloneOf[T]
	}
	if equal == nil {
		equal = equalOf[T]
	}
	return &Key[T]{name: name, query: q, kind: kind, clone: clone, equal: equal}
}

// New returns a plain key. An empty query defaults to the name.
func New[T any](name, query string) *Key[T] {
	return newKey[T](name, query, KindPlain, nil, nil)
}

// NewBounded returns a key for bounded ordered values.
func NewBounded[T cmp.Ordered](name, query string) *Key[T] {
	return newKey[T](name, query, KindBounded, nil, nil)
}

// NewList returns a key for ordered sequences of E.
func NewList[E any](name, query string) *Key[[]E] {
	return newKey(name, query, KindList,
		func(s []E) []E {
			if s == nil {
				return nil
			}
			out := make([]E, len(s))
			for i, e := range s {
				out[i] = cloneOf(e)
			}
			return out
		},
		func(a, b []E) bool {
			return slices.EqualFunc(a, b, equalOf[E])
		})
}

// NewSet returns a key for unordered unique collections of E.
func NewSet[E comparable](name, query string) *Key[map[E]struct{}] {
	return newKey(name, query, KindSet,
		func(s map[E]struct{}) map[E]struct{} {
			if s == nil {
				return nil
			}
			out := make(map[E]struct{}, len(s))
			for e := range s {
				out[e] = struct{}{}
			}
			return out
		},
		func(a, b map[E]struct{}) bool {
			if len(a) != len(b) {
				return false
			}
			for e := range a {
				if _, ok := b[e]; !ok {
					return false
				}
			}
			return true
		})
}

// NewMap returns a key for maps from K to V.
func NewMap[K comparable, V any](name, query string) *Key[map[K]V] {
	return newKey(name, query, KindMap,
		func(m map[K]V) map[K]V {
			if m == nil {
				return nil
			}
			out := make(map[K]V, len(m))
			for k, v := range m {
				out[k] = cloneOf(v)
			}
			return out
		},
		func(a, b map[K]V) bool {
			if len(a) != len(b) {
				return false
			}
			for k, av := range a {
				bv, ok := b[k]
				if !ok || !equalOf(av, bv) {
					return false
				}
			}
			return true
		})
}

func (k *Key[T]) Name() string      { return k.name }
func (k *Key[T]) Query() view.Query { return k.query }
func (k *Key[T]) Kind() Kind        { return k.kind }

// Type returns the datum type.
func (k *Key[T]) Type() reflect.Type { return reflect.TypeFor[T]() }

// Clone returns a copy of v that shares no mutable storage with it.
func (k *Key[T]) Clone(v T) T { return k.clone(v) }

// Equal reports whether two datums of this key are structurally equal.
func (k *Key[T]) Equal(a, b T) bool { return k.equal(a, b) }

func (k *Key[T]) String() string {
	return fmt.Sprintf("Key(%s: %s %s)", k.name, k.kind, k.Type())
}

// cloner is implemented by datums with their own deep copy.
type cloner[T any] interface{ Clone() T }

// equaler is implemented by datums with their own equality.
type equaler[T any] interface{ Equal(T) bool }

func cloneOf[T any](v T) T {
	if c, ok := any(v).(cloner[T]); ok {
		return c.Clone()
	}
	return v
}

func equalOf[T any](a, b T) bool {
	if e, ok := any(a).(equaler[T]); ok {
		return e.Equal(b)
	}
	return reflect.DeepEqual(a, b)
}

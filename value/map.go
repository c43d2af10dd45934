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

package value

import (
	"fmt"

	"dirpx.dev/dmx/key"
)

// Map is a mutable value mapping unique keys to elements.
type Map[K comparable, V any] struct {
	k *key.Key[map[K]V]
	v map[K]V
}

// NewMap returns a map value holding a copy of m.
func NewMap[K comparable, V any](k *key.Key[map[K]V], m map[K]V) *Map[K, V] {
	return (&Map[K, V]{k: k}).Set(m)
}

func (m *Map[K, V]) Key() key.Any { return m.k }

func (m *Map[K, V]) Typed() *key.Key[map[K]V] { return m.k }

func (m *Map[K, V]) Get() map[K]V { return m.k.Clone(m.v) }

func (m *Map[K, V]) Raw() any { return m.Get() }

func (m *Map[K, V]) Len() int { return len(m.v) }

// Lookup returns the element stored under k.
func (m *Map[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.v[k]
	return v, ok
}

func (m *Map[K, V]) Snapshot() Immutable { return m.AsImmutable() }

// Set replaces all entries.
func (m *Map[K, V]) Set(src map[K]V) *Map[K, V] {
	m.v = m.k.Clone(src)
	if m.v == nil {
		m.v = map[K]V{}
	}
	return m
}

func (m *Map[K, V]) Put(k K, v V) *Map[K, V] {
	m.v[k] = v
	return m
}

func (m *Map[K, V]) Delete(k K) *Map[K, V] {
	delete(m.v, k)
	return m
}

func (m *Map[K, V]) AsImmutable() *ImmutableMap[K, V] {
	return &ImmutableMap[K, V]{k: m.k, v: m.k.Clone(m.v)}
}

func (m *Map[K, V]) equalRaw(o any) bool {
	t, ok := o.(map[K]V)
	return ok && m.k.Equal(m.v, t)
}

func (m *Map[K, V]) String() string { return fmt.Sprintf("%s=%v", m.k.Name(), m.v) }

// ImmutableMap is the immutable counterpart of Map.
type ImmutableMap[K comparable, V any] struct {
	k *key.Key[map[K]V]
	v map[K]V
}

// NewImmutableMap returns an immutable map holding a copy of m.
func NewImmutableMap[K comparable, V any](k *key.Key[map[K]V], m map[K]V) *ImmutableMap[K, V] {
	return NewMap(k, m).AsImmutable()
}

func (m *ImmutableMap[K, V]) Key() key.Any { return m.k }

func (m *ImmutableMap[K, V]) Typed() *key.Key[map[K]V] { return m.k }

func (m *ImmutableMap[K, V]) Get() map[K]V { return m.k.Clone(m.v) }

func (m *ImmutableMap[K, V]) Raw() any { return m.Get() }

func (m *ImmutableMap[K, V]) Len() int { return len(m.v) }

func (m *ImmutableMap[K, V]) Lookup(k K) (V, bool) {
	v, ok := m.v[k]
	return v, ok
}

func (m *ImmutableMap[K, V]) Mutable() Mutable { return m.AsMutable() }

func (*ImmutableMap[K, V]) immutable() {}

// With returns a new map with k bound to v.
func (m *ImmutableMap[K, V]) With(k K, v V) *ImmutableMap[K, V] {
	return m.AsMutable().Put(k, v).AsImmutable()
}

// Without returns a new map lacking k.
func (m *ImmutableMap[K, V]) Without(k K) *ImmutableMap[K, V] {
	return m.AsMutable().Delete(k).AsImmutable()
}

func (m *ImmutableMap[K, V]) AsMutable() *Map[K, V] { return NewMap(m.k, m.v) }

func (m *ImmutableMap[K, V]) equalRaw(o any) bool {
	t, ok := o.(map[K]V)
	return ok && m.k.Equal(m.v, t)
}

func (m *ImmutableMap[K, V]) String() string { return fmt.Sprintf("%s=%v", m.k.Name(), m.v) }

var (
	_ Mutable   = (*Map[string, int])(nil)
	_ Immutable = (*ImmutableMap[string, int])(nil)
)

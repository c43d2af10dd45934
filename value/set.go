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
	"cmp"
	"fmt"
	"maps"
	"slices"

	"dirpx.dev/dmx/key"
)

// Set is a mutable collection of unique elements.
type Set[E comparable] struct {
	k *key.Key[map[E]struct{}]
	v map[E]struct{}
}

// NewSet returns a set value holding items.
func NewSet[E comparable](k *key.Key[map[E]struct{}], items ...E) *Set[E] {
	s := &Set[E]{k: k, v: make(map[E]struct{}, len(items))}
	return s.Add(items...)
}

func (s *Set[E]) Key() key.Any { return s.k }

func (s *Set[E]) Typed() *key.Key[map[E]struct{}] { return s.k }

func (s *Set[E]) Get() map[E]struct{} { return s.k.Clone(s.v) }

func (s *Set[E]) Raw() any { return s.Get() }

func (s *Set[E]) Len() int { return len(s.v) }

func (s *Set[E]) Contains(e E) bool {
	_, ok := s.v[e]
	return ok
}

func (s *Set[E]) Snapshot() Immutable { return s.AsImmutable() }

// Set replaces all elements.
func (s *Set[E]) Set(items map[E]struct{}) *Set[E] {
	s.v = s.k.Clone(items)
	if s.v == nil {
		s.v = map[E]struct{}{}
	}
	return s
}

func (s *Set[E]) Add(items ...E) *Set[E] {
	for _, e := range items {
		s.v[e] = struct{}{}
	}
	return s
}

func (s *Set[E]) Remove(items ...E) *Set[E] {
	for _, e := range items {
		delete(s.v, e)
	}
	return s
}

func (s *Set[E]) AsImmutable() *ImmutableSet[E] {
	return &ImmutableSet[E]{k: s.k, v: s.k.Clone(s.v)}
}

func (s *Set[E]) equalRaw(o any) bool {
	t, ok := o.(map[E]struct{})
	return ok && s.k.Equal(s.v, t)
}

func (s *Set[E]) String() string { return fmt.Sprintf("%s=%v", s.k.Name(), slices.Collect(maps.Keys(s.v))) }

// ImmutableSet is the immutable counterpart of Set.
type ImmutableSet[E comparable] struct {
	k *key.Key[map[E]struct{}]
	v map[E]struct{}
}

// NewImmutableSet returns an immutable set holding items.
func NewImmutableSet[E comparable](k *key.Key[map[E]struct{}], items ...E) *ImmutableSet[E] {
	return NewSet(k, items...).AsImmutable()
}

func (s *ImmutableSet[E]) Key() key.Any { return s.k }

func (s *ImmutableSet[E]) Typed() *key.Key[map[E]struct{}] { return s.k }

func (s *ImmutableSet[E]) Get() map[E]struct{} { return s.k.Clone(s.v) }

func (s *ImmutableSet[E]) Raw() any { return s.Get() }

func (s *ImmutableSet[E]) Len() int { return len(s.v) }

func (s *ImmutableSet[E]) Contains(e E) bool {
	_, ok := s.v[e]
	return ok
}

func (s *ImmutableSet[E]) Mutable() Mutable { return s.AsMutable() }

func (*ImmutableSet[E]) immutable() {}

// With returns a new set that also holds items.
func (s *ImmutableSet[E]) With(items ...E) *ImmutableSet[E] {
	return s.AsMutable().Add(items...).AsImmutable()
}

// Without returns a new set lacking items.
func (s *ImmutableSet[E]) Without(items ...E) *ImmutableSet[E] {
	return s.AsMutable().Remove(items...).AsImmutable()
}

func (s *ImmutableSet[E]) AsMutable() *Set[E] {
	return &Set[E]{k: s.k, v: s.k.Clone(s.v)}
}

func (s *ImmutableSet[E]) equalRaw(o any) bool {
	t, ok := o.(map[E]struct{})
	return ok && s.k.Equal(s.v, t)
}

func (s *ImmutableSet[E]) String() string {
	return fmt.Sprintf("%s=%v", s.k.Name(), slices.Collect(maps.Keys(s.v)))
}

// Sorted returns the elements of an ordered set in ascending order.
func Sorted[E cmp.Ordered](set map[E]struct{}) []E {
	return slices.Sorted(maps.Keys(set))
}

var (
	_ Mutable   = (*Set[int])(nil)
	_ Immutable = (*ImmutableSet[int])(nil)
)

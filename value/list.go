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
	"slices"

	"dirpx.dev/dmx/key"
)

// List is a mutable ordered sequence value.
type List[E any] struct {
	k *key.Key[[]E]
	v []E
}

// NewList returns a list value holding a copy of items.
func NewList[E any](k *key.Key[[]E], items ...E) *List[E] {
	return &List[E]{k: k, v: k.Clone(items)}
}

func (l *List[E]) Key() key.Any { return l.k }

func (l *List[E]) Typed() *key.Key[[]E] { return l.k }

func (l *List[E]) Get() []E { return l.k.Clone(l.v) }

func (l *List[E]) Raw() any { return l.Get() }

func (l *List[E]) Len() int { return len(l.v) }

// At returns a copy of the element at i.
func (l *List[E]) At(i int) E { return l.k.Clone(l.v[i : i+1])[0] }

func (l *List[E]) Snapshot() Immutable { return l.AsImmutable() }

// Set replaces all elements.
func (l *List[E]) Set(items []E) *List[E] {
	l.v = l.k.Clone(items)
	return l
}

// Add appends elements.
func (l *List[E]) Add(items ...E) *List[E] {
	l.v = append(l.v, l.k.Clone(items)...)
	return l
}

// SetAt replaces the element at i.
func (l *List[E]) SetAt(i int, e E) *List[E] {
	l.v[i] = l.k.Clone([]E{e})[0]
	return l
}

// RemoveAt deletes the element at i, keeping order.
func (l *List[E]) RemoveAt(i int) *List[E] {
	l.v = slices.Delete(l.v, i, i+1)
	return l
}

func (l *List[E]) AsImmutable() *ImmutableList[E] {
	return &ImmutableList[E]{k: l.k, v: l.k.Clone(l.v)}
}

func (l *List[E]) equalRaw(o any) bool {
	t, ok := o.([]E)
	return ok && l.k.Equal(l.v, t)
}

func (l *List[E]) String() string { return fmt.Sprintf("%s=%v", l.k.Name(), l.v) }

// ImmutableList is the immutable counterpart of List.
type ImmutableList[E any] struct {
	k *key.Key[[]E]
	v []E
}

// NewImmutableList returns an immutable list holding a copy of items.
func NewImmutableList[E any](k *key.Key[[]E], items ...E) *ImmutableList[E] {
	return &ImmutableList[E]{k: k, v: k.Clone(items)}
}

func (l *ImmutableList[E]) Key() key.Any { return l.k }

func (l *ImmutableList[E]) Typed() *key.Key[[]E] { return l.k }

func (l *ImmutableList[E]) Get() []E { return l.k.Clone(l.v) }

func (l *ImmutableList[E]) Raw() any { return l.Get() }

func (l *ImmutableList[E]) Len() int { return len(l.v) }

func (l *ImmutableList[E]) At(i int) E { return l.k.Clone(l.v[i : i+1])[0] }

func (l *ImmutableList[E]) Mutable() Mutable { return l.AsMutable() }

func (*ImmutableList[E]) immutable() {}

// With returns a new list holding items.
func (l *ImmutableList[E]) With(items []E) *ImmutableList[E] {
	return NewImmutableList(l.k, items...)
}

// WithAppended returns a new list with items appended.
func (l *ImmutableList[E]) WithAppended(items ...E) *ImmutableList[E] {
	return NewImmutableList(l.k, append(slices.Clip(l.v), items...)...)
}

func (l *ImmutableList[E]) AsMutable() *List[E] { return NewList(l.k, l.v...) }

func (l *ImmutableList[E]) equalRaw(o any) bool {
	t, ok := o.([]E)
	return ok && l.k.Equal(l.v, t)
}

func (l *ImmutableList[E]) String() string { return fmt.Sprintf("%s=%v", l.k.Name(), l.v) }

var (
	_ Mutable   = (*List[int])(nil)
	_ Immutable = (*ImmutableList[int])(nil)
)

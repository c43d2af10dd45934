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

	"dirpx.dev/dmx/key"
)

type bounds[T cmp.Ordered] struct {
	min, max, def T
}

// check also rejects NaN, which fails every ordered comparison.
func (b bounds[T]) check(k *key.Key[T], v T) error {
	if !(b.min <= b.max) || !(v >= b.min && v <= b.max) {
		return &RangeError{Key: k.Name(), Value: v, Min: b.min, Max: b.max}
	}
	return nil
}

// Bounded is a mutable ordered value constrained to [Min, Max].
type Bounded[T cmp.Ordered] struct {
	k *key.Key[T]
	v T
	b bounds[T]
}

// NewBounded returns a bounded value. It fails with a *RangeError when
// min > max or v lies outside [min, max]. def is not range checked.
func NewBounded[T cmp.Ordered](k *key.Key[T], v, min, max, def T) (*Bounded[T], error) {
	b := bounds[T]{min: min, max: max, def: def}
	if err := b.check(k, v); err != nil {
		return nil, err
	}
	return &Bounded[T]{k: k, v: v, b: b}, nil
}

// MustBounded is NewBounded for static tables; it panics on error.
func MustBounded[T cmp.Ordered](k *key.Key[T], v, min, max, def T) *Bounded[T] {
	b, err := NewBounded(k, v, min, max, def)
	if err != nil {
		panic(err)
	}
	return b
}

func (b *Bounded[T]) Key() key.Any { return b.k }

func (b *Bounded[T]) Typed() *key.Key[T] { return b.k }

func (b *Bounded[T]) Get() T { return b.v }

func (b *Bounded[T]) Raw() any { return b.v }

func (b *Bounded[T]) Min() T { return b.b.min }

func (b *Bounded[T]) Max() T { return b.b.max }

func (b *Bounded[T]) Default() T { return b.b.def }

func (b *Bounded[T]) Snapshot() Immutable { return b.AsImmutable() }

// Set replaces the datum. Out of range values fail with a *RangeError and
// leave the datum unchanged.
func (b *Bounded[T]) Set(v T) (*Bounded[T], error) {
	if err := b.b.check(b.k, v); err != nil {
		return b, err
	}
	b.v = v
	return b, nil
}

// Reset restores the default.
func (b *Bounded[T]) Reset() *Bounded[T] {
	b.v = b.b.def
	return b
}

func (b *Bounded[T]) AsImmutable() *ImmutableBounded[T] {
	return &ImmutableBounded[T]{k: b.k, v: b.v, b: b.b}
}

func (b *Bounded[T]) equalRaw(o any) bool {
	t, ok := o.(T)
	return ok && t == b.v
}

func (b *Bounded[T]) String() string {
	return fmt.Sprintf("%s=%v[%v..%v]", b.k.Name(), b.v, b.b.min, b.b.max)
}

// ImmutableBounded is the immutable counterpart of Bounded.
type ImmutableBounded[T cmp.Ordered] struct {
	k *key.Key[T]
	v T
	b bounds[T]
}

// NewImmutableBounded validates like NewBounded.
func NewImmutableBounded[T cmp.Ordered](k *key.Key[T], v, min, max, def T) (*ImmutableBounded[T], error) {
	b, err := NewBounded(k, v, min, max, def)
	if err != nil {
		return nil, err
	}
	return b.AsImmutable(), nil
}

func (b *ImmutableBounded[T]) Key() key.Any { return b.k }

func (b *ImmutableBounded[T]) Typed() *key.Key[T] { return b.k }

func (b *ImmutableBounded[T]) Get() T { return b.v }

func (b *ImmutableBounded[T]) Raw() any { return b.v }

func (b *ImmutableBounded[T]) Min() T { return b.b.min }

func (b *ImmutableBounded[T]) Max() T { return b.b.max }

func (b *ImmutableBounded[T]) Default() T { return b.b.def }

func (b *ImmutableBounded[T]) Mutable() Mutable { return b.AsMutable() }

func (*ImmutableBounded[T]) immutable() {}

// With returns a new value holding v, or a *RangeError.
func (b *ImmutableBounded[T]) With(v T) (*ImmutableBounded[T], error) {
	if err := b.b.check(b.k, v); err != nil {
		return nil, err
	}
	return &ImmutableBounded[T]{k: b.k, v: v, b: b.b}, nil
}

func (b *ImmutableBounded[T]) AsMutable() *Bounded[T] {
	return &Bounded[T]{k: b.k, v: b.v, b: b.b}
}

func (b *ImmutableBounded[T]) equalRaw(o any) bool {
	t, ok := o.(T)
	return ok && t == b.v
}

func (b *ImmutableBounded[T]) String() string {
	return fmt.Sprintf("%s=%v[%v..%v]", b.k.Name(), b.v, b.b.min, b.b.max)
}

var (
	_ Mutable   = (*Bounded[int])(nil)
	_ Immutable = (*ImmutableBounded[int])(nil)
)

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

// Plain is a mutable value of a plain key.
type Plain[T any] struct {
	k *key.Key[T]
	v T
}

// New returns a mutable value holding a copy of v.
func New[T any](k *key.Key[T], v T) *Plain[T] {
	return &Plain[T]{k: k, v: k.Clone(v)}
}

func (p *Plain[T]) Key() key.Any { return p.k }

func (p *Plain[T]) Typed() *key.Key[T] { return p.k }

// Get returns a copy of the datum.
func (p *Plain[T]) Get() T { return p.k.Clone(p.v) }

func (p *Plain[T]) Raw() any { return p.Get() }

func (p *Plain[T]) Snapshot() Immutable { return p.AsImmutable() }

// Set replaces the datum and returns the receiver.
func (p *Plain[T]) Set(v T) *Plain[T] {
	p.v = p.k.Clone(v)
	return p
}

// Transform replaces the datum with f applied to it.
func (p *Plain[T]) Transform(f func(T) T) *Plain[T] {
	return p.Set(f(p.Get()))
}

// AsImmutable returns an immutable deep copy.
func (p *Plain[T]) AsImmutable() *ImmutablePlain[T] {
	return NewImmutable(p.k, p.v)
}

func (p *Plain[T]) equalRaw(o any) bool {
	t, ok := o.(T)
	return ok && p.k.Equal(p.v, t)
}

func (p *Plain[T]) String() string { return fmt.Sprintf("%s=%v", p.k.Name(), p.v) }

// ImmutablePlain is the immutable counterpart of Plain.
type ImmutablePlain[T any] struct {
	k *key.Key[T]
	v T
}

// NewImmutable returns an immutable value holding a copy of v.
func NewImmutable[T any](k *key.Key[T], v T) *ImmutablePlain[T] {
	return &ImmutablePlain[T]{k: k, v: k.Clone(v)}
}

func (p *ImmutablePlain[T]) Key() key.Any { return p.k }

func (p *ImmutablePlain[T]) Typed() *key.Key[T] { return p.k }

func (p *ImmutablePlain[T]) Get() T { return p.k.Clone(p.v) }

func (p *ImmutablePlain[T]) Raw() any { return p.Get() }

func (p *ImmutablePlain[T]) Mutable() Mutable { return p.AsMutable() }

func (*ImmutablePlain[T]) immutable() {}

// With returns a new value holding v.
func (p *ImmutablePlain[T]) With(v T) *ImmutablePlain[T] { return NewImmutable(p.k, v) }

// AsMutable returns a mutable deep copy.
func (p *ImmutablePlain[T]) AsMutable() *Plain[T] { return New(p.k, p.v) }

func (p *ImmutablePlain[T]) equalRaw(o any) bool {
	t, ok := o.(T)
	return ok && p.k.Equal(p.v, t)
}

func (p *ImmutablePlain[T]) String() string { return fmt.Sprintf("%s=%v", p.k.Name(), p.v) }

var (
	_ Mutable   = (*Plain[int])(nil)
	_ Of[int]   = (*Plain[int])(nil)
	_ Immutable = (*ImmutablePlain[int])(nil)
	_ Of[int]   = (*ImmutablePlain[int])(nil)
)

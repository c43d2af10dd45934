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

// Package custom stores manipulators on holders that no processor
// understands. Holders embed Store to carry arbitrary data alongside
// their native state.
package custom

import (
	"reflect"
	"slices"
	"sync"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/merge"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
)

// Holder is implemented by objects that accept custom data.
type Holder interface {
	// OfferCustom stores m, merging with a manipulator of the same type
	// already held. A nil f keeps the held manipulator (merge.IgnoreAll).
	OfferCustom(m apis.Manipulator, f apis.MergeFunction) *transaction.Result
	// GetCustom returns the manipulator of dynamic type t.
	GetCustom(t reflect.Type) (apis.Manipulator, bool)
	// RemoveCustom drops the manipulator of dynamic type t.
	RemoveCustom(t reflect.Type) *transaction.Result
	HasManipulators() bool
	CustomManipulators() []apis.Manipulator
	// OfferCustomValue stores a single value outside any manipulator.
	OfferCustomValue(v value.Immutable) *transaction.Result
	// CustomValue returns the value held for k, loose or inside a manipulator.
	CustomValue(k key.Any) (value.Immutable, bool)
	// RemoveCustomKey drops the loose value for k and every manipulator
	// carrying k.
	RemoveCustomKey(k key.Any) *transaction.Result
}

// Store is the stock Holder. The zero value is empty and ready to use.
// Mutable manipulators implementing apis.Copier are copied on the way in
// and out.
type Store struct {
	mu     sync.RWMutex
	manips []apis.Manipulator
	loose  []value.Immutable
}

var _ Holder = (*Store)(nil)

// copyOf deep copies mutable manipulators. Immutable ones are shared.
func copyOf(m apis.Manipulator) apis.Manipulator {
	if c, ok := m.(apis.Copier); ok {
		return c.CopyManipulator()
	}
	return m
}

func (s *Store) indexOf(t reflect.Type) int {
	return slices.IndexFunc(s.manips, func(m apis.Manipulator) bool { return reflect.TypeOf(m) == t })
}

func (s *Store) OfferCustom(m apis.Manipulator, f apis.MergeFunction) *transaction.Result {
	if m == nil {
		return transaction.FailNoData()
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(reflect.TypeOf(m))
	var held apis.Manipulator
	if i >= 0 {
		held = s.manips[i]
	}
	merged := merge.Or(f, merge.IgnoreAll).Merge(held, m)
	if merged == nil {
		return transaction.FailResult(m.Values()...)
	}
	if reflect.TypeOf(merged) != reflect.TypeOf(m) {
		return transaction.FailResult(m.Values()...)
	}
	merged = copyOf(merged)
	if i >= 0 {
		s.manips[i] = merged
		return transaction.SuccessResult(merged.Values(), held.Values())
	}
	s.manips = append(s.manips, merged)
	return transaction.SuccessResult(merged.Values(), nil)
}

func (s *Store) GetCustom(t reflect.Type) (apis.Manipulator, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(t); i >= 0 {
		return copyOf(s.manips[i]), true
	}
	return nil, false
}

func (s *Store) RemoveCustom(t reflect.Type) *transaction.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := s.indexOf(t)
	if i < 0 {
		return transaction.FailNoData()
	}
	held := s.manips[i]
	s.manips = slices.Delete(s.manips, i, i+1)
	return transaction.SuccessResult(nil, held.Values())
}

func (s *Store) HasManipulators() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.manips) > 0
}

// CustomManipulators returns the held manipulators in offer order.
func (s *Store) CustomManipulators() []apis.Manipulator {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]apis.Manipulator, len(s.manips))
	for i, m := range s.manips {
		out[i] = copyOf(m)
	}
	return out
}

func (s *Store) OfferCustomValue(v value.Immutable) *transaction.Result {
	if v == nil {
		return transaction.FailNoData()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.loose, func(o value.Immutable) bool { return o.Key() == v.Key() })
	if i >= 0 {
		old := s.loose[i]
		s.loose[i] = v
		return transaction.SuccessResult([]value.Immutable{v}, []value.Immutable{old})
	}
	s.loose = append(s.loose, v)
	return transaction.SuccessResult([]value.Immutable{v}, nil)
}

func (s *Store) CustomValue(k key.Any) (value.Immutable, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, v := range s.loose {
		if v.Key() == k {
			return v, true
		}
	}
	for _, m := range s.manips {
		for _, v := range m.Values() {
			if v.Key() == k {
				return v, true
			}
		}
	}
	return nil, false
}

func (s *Store) RemoveCustomKey(k key.Any) *transaction.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	var removed []value.Immutable
	s.loose = slices.DeleteFunc(s.loose, func(v value.Immutable) bool {
		if v.Key() == k {
			removed = append(removed, v)
			return true
		}
		return false
	})
	s.manips = slices.DeleteFunc(s.manips, func(m apis.Manipulator) bool {
		vals := m.Values()
		if slices.ContainsFunc(vals, func(v value.Immutable) bool { return v.Key() == k }) {
			removed = append(removed, vals...)
			return true
		}
		return false
	})
	if len(removed) == 0 {
		return transaction.FailNoData()
	}
	return transaction.SuccessResult(nil, removed)
}

// Get returns the manipulator of type M held by h.
func Get[M apis.Manipulator](h Holder) (M, bool) {
	var zero M
	m, ok := h.GetCustom(reflect.TypeFor[M]())
	if !ok {
		return zero, false
	}
	typed, ok := m.(M)
	return typed, ok
}

// Remove drops the manipulator of type M held by h.
func Remove[M apis.Manipulator](h Holder) *transaction.Result {
	return h.RemoveCustom(reflect.TypeFor[M]())
}

// Value returns the datum held for k.
func Value[T any](h Holder, k *key.Key[T]) (T, bool) {
	var zero T
	v, ok := h.CustomValue(k)
	if !ok {
		return zero, false
	}
	t, ok := v.Raw().(T)
	return t, ok
}

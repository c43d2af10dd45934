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

package processor

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/resolver"
)

// ErrNilProcessor is returned when a nil processor is registered.
var ErrNilProcessor = errors.New("dmx(processor): nil processor provided")

// table is an immutable snapshot of the registered processors.
type table struct {
	values map[key.Any][]any
	data   map[reflect.Type][]any
	frozen bool
}

func (t *table) clone() *table {
	next := &table{
		values: make(map[key.Any][]any, len(t.values)),
		data:   make(map[reflect.Type][]any, len(t.data)),
		frozen: t.frozen,
	}
	for k, ps := range t.values {
		next.values[k] = append([]any(nil), ps...)
	}
	for typ, ps := range t.data {
		next.data[typ] = append([]any(nil), ps...)
	}
	return next
}

// Registry holds Value and Data processors. Registration is serialized;
// dispatch reads an atomically published snapshot and never locks.
type Registry struct {
	cfg   apis.Config
	log   *slog.Logger
	keys  apis.KeyRegistry
	names apis.Resolver

	mu    sync.Mutex
	state atomic.Pointer[table]
}

// NewRegistry constructs an empty registry. When keys is non-nil, Value
// processors may only be registered for keys bound in it. names labels
// holders in logs and errors; it may be nil.
func NewRegistry(cfg apis.Config, keys apis.KeyRegistry, names apis.Resolver) *Registry {
	r := &Registry{cfg: cfg, log: cfg.Log(), keys: keys, names: names}
	r.state.Store(&table{values: map[key.Any][]any{}, data: map[reflect.Type][]any{}})
	return r
}

// update applies fn to a copy of the current table and publishes it.
func (r *Registry) update(what string, fn func(*table)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if cur.frozen {
		return fmt.Errorf("%w: register %s", registry.ErrRegistryClosed, what)
	}
	next := cur.clone()
	fn(next)
	r.state.Store(next)
	return nil
}

// RegisterValue appends p to the processors of its key.
func RegisterValue[T any](r *Registry, p Value[T]) error {
	if p == nil {
		return ErrNilProcessor
	}
	k := p.Key()
	if k == nil {
		return registry.ErrNilKey
	}
	if r.Frozen() {
		return fmt.Errorf("%w: register %s", registry.ErrRegistryClosed, k.Name())
	}
	if r.keys != nil {
		bound, err := r.keys.Lookup(k.Name())
		if err != nil {
			return err
		}
		if bound != key.Any(k) {
			return fmt.Errorf("%w: %s is bound to another key", registry.ErrUnknownKey, k.Name())
		}
	}
	err := r.update(k.Name(), func(t *table) {
		t.values[k] = append(t.values[k], p)
	})
	if err != nil {
		return err
	}
	r.log.Debug("value processor registered", "key", k.Name(), "processor", fmt.Sprintf("%T", p))
	return nil
}

// RegisterData appends p to the processors of manipulator type M.
func RegisterData[M apis.Manipulator](r *Registry, p Data[M]) error {
	if p == nil {
		return ErrNilProcessor
	}
	typ := reflect.TypeFor[M]()
	err := r.update(typ.String(), func(t *table) {
		t.data[typ] = append(t.data[typ], p)
	})
	if err != nil {
		return err
	}
	r.log.Debug("data processor registered", "manipulator", typ.String(), "processor", fmt.Sprintf("%T", p))
	return nil
}

// Inherit appends every processor of prev after the ones already held.
func (r *Registry) Inherit(prev *Registry) error {
	if prev == nil {
		return nil
	}
	src := prev.state.Load()
	return r.update("inherited processors", func(t *table) {
		for k, ps := range src.values {
			t.values[k] = append(t.values[k], ps...)
		}
		for typ, ps := range src.data {
			t.data[typ] = append(t.data[typ], ps...)
		}
	})
}

// Freeze rejects further registrations with registry.ErrRegistryClosed.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if cur.frozen {
		return
	}
	next := *cur
	next.frozen = true
	r.state.Store(&next)
	r.log.Debug("processor registry frozen", "keys", len(cur.values), "manipulators", len(cur.data))
}

func (r *Registry) Frozen() bool { return r.state.Load().frozen }

// Count returns the number of registered processors.
func (r *Registry) Count() int {
	t := r.state.Load()
	n := 0
	for _, ps := range t.values {
		n += len(ps)
	}
	for _, ps := range t.data {
		n += len(ps)
	}
	return n
}

// SupportsKey reports whether some processor of k supports holder.
func (r *Registry) SupportsKey(holder any, k key.Any) bool {
	return first(r.state.Load().values[k], holder) != nil
}

// SupportsData reports whether some processor of manipulator type t
// supports holder.
func (r *Registry) SupportsData(holder any, t reflect.Type) bool {
	return first(r.state.Load().data[t], holder) != nil
}

// HasData reports whether any processor is registered for t.
func (r *Registry) HasData(t reflect.Type) bool {
	return len(r.state.Load().data[t]) > 0
}

// holder labels v for logs and errors.
func (r *Registry) holder(v any) string {
	return resolver.Holder(r.names, v, r.cfg)
}

func first(ps []any, holder any) any {
	for _, p := range ps {
		if p.(supporter).Supports(holder) {
			return p
		}
	}
	return nil
}

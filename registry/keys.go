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

package registry

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
)

var (
	// ErrNilKey is returned when a nil key is registered.
	ErrNilKey = errors.New("dmx(registry): nil key provided")
	// ErrDuplicateKey is returned when a key name is already bound.
	ErrDuplicateKey = errors.New("dmx(registry): duplicate key")
	// ErrUnknownKey is returned when no key is bound to a name.
	ErrUnknownKey = errors.New("dmx(registry): unknown key")
	// ErrKeyType is returned when a bound key has a different datum type.
	ErrKeyType = errors.New("dmx(registry): key type mismatch")
	// ErrRegistryClosed is returned by writes after Freeze.
	ErrRegistryClosed = errors.New("dmx(registry): registry closed")
)

// keyTable is an immutable snapshot of the key registry.
type keyTable struct {
	byName map[string]key.Any
	order  []key.Any
	frozen bool
}

// NewKeys constructs an empty key registry.
func NewKeys(cfg apis.Config) apis.KeyRegistry {
	r := &keys{log: cfg.Log()}
	r.state.Store(&keyTable{byName: map[string]key.Any{}})
	return r
}

// keys publishes a fresh keyTable on every write; readers never lock.
type keys struct {
	log *slog.Logger
	// mu serializes writers so no registration is lost between
	// load and store.
	mu    sync.Mutex
	state atomic.Pointer[keyTable]
}

func (r *keys) Register(k key.Any) error {
	if k == nil {
		return ErrNilKey
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if cur.frozen {
		return fmt.Errorf("%w: register %s", ErrRegistryClosed, k.Name())
	}
	if _, ok := cur.byName[k.Name()]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKey, k.Name())
	}

	next := &keyTable{
		byName: make(map[string]key.Any, len(cur.byName)+1),
		order:  make([]key.Any, 0, len(cur.order)+1),
	}
	for n, v := range cur.byName {
		next.byName[n] = v
	}
	next.byName[k.Name()] = k
	next.order = append(append(next.order, cur.order...), k)
	r.state.Store(next)

	r.log.Debug("key registered", "key", k.Name(), "kind", k.Kind().String(), "type", k.Type().String())
	return nil
}

func (r *keys) Lookup(name string) (key.Any, error) {
	if k, ok := r.state.Load().byName[name]; ok {
		return k, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKey, name)
}

func (r *keys) Keys() []key.Any {
	order := r.state.Load().order
	out := make([]key.Any, len(order))
	copy(out, order)
	return out
}

func (r *keys) Count() int { return len(r.state.Load().order) }

func (r *keys) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if cur.frozen {
		return
	}
	next := *cur
	next.frozen = true
	r.state.Store(&next)
	r.log.Debug("key registry frozen", "keys", len(cur.order))
}

func (r *keys) Frozen() bool { return r.state.Load().frozen }

// LookupAs returns the key bound to name, asserting its datum type.
func LookupAs[T any](r apis.KeyRegistry, name string) (*key.Key[T], error) {
	k, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	typed, ok := k.(*key.Key[T])
	if !ok {
		return nil, fmt.Errorf("%w: %s holds %s", ErrKeyType, name, k.Type())
	}
	return typed, nil
}

// RegisterAll registers ks in order and stops at the first failure.
func RegisterAll(r apis.KeyRegistry, ks ...key.Any) error {
	for _, k := range ks {
		if err := r.Register(k); err != nil {
			return err
		}
	}
	return nil
}

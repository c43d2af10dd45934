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
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/config"
	uref "dirpx.dev/dmx/utils/reflect"
)

var (
	// ErrNilType is returned when a nil holder type is aliased.
	ErrNilType = errors.New("dmx(registry): nil holder type")
	// ErrEmptyName is returned when an alias name is empty.
	ErrEmptyName = errors.New("dmx(registry): empty alias name")
	// ErrConflictingRegistration is returned when a holder type already
	// carries a different alias.
	ErrConflictingRegistration = errors.New("dmx(registry): conflicting holder alias")
)

// aliasTable is an immutable snapshot of the alias registry.
type aliasTable struct {
	byType map[reflect.Type]string
	order  []apis.Entry
	frozen bool
}

// NewAliases constructs an empty alias table. Holder types are normalized
// with cfg's MaxUnwrap and MapPreferElem, so *Sign and []Sign share the
// alias of Sign.
func NewAliases(cfg apis.Config) apis.Aliases {
	if cfg.MaxUnwrap <= 0 {
		cfg.MaxUnwrap = config.DefaultMaxUnwrap
	}
	r := &aliases{cfg: cfg, log: cfg.Log()}
	r.state.Store(&aliasTable{byType: map[reflect.Type]string{}})
	return r
}

// aliases publishes a fresh aliasTable on every write, like the key
// registry; the resolver reads it on every log line without locking.
type aliases struct {
	cfg   apis.Config
	log   *slog.Logger
	mu    sync.Mutex
	state atomic.Pointer[aliasTable]
}

func (r *aliases) Register(t reflect.Type, name string) error {
	if t == nil {
		return ErrNilType
	}
	if name == "" {
		return ErrEmptyName
	}
	holder, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if old, ok := cur.byType[holder]; ok {
		if old == name {
			return nil
		}
		return fmt.Errorf("%w: %s is %q, not %q", ErrConflictingRegistration, holder, old, name)
	}
	if cur.frozen {
		return fmt.Errorf("%w: alias %s", ErrRegistryClosed, holder)
	}

	next := &aliasTable{
		byType: make(map[reflect.Type]string, len(cur.byType)+1),
		order:  append(slices.Clip(cur.order), apis.Entry{Type: holder, Name: name}),
	}
	for typ, n := range cur.byType {
		next.byType[typ] = n
	}
	next.byType[holder] = name
	r.state.Store(next)

	r.log.Debug("holder alias registered", "type", holder.String(), "alias", name)
	return nil
}

func (r *aliases) Lookup(t reflect.Type) (string, bool) {
	if t == nil {
		return "", false
	}
	holder, err := uref.Normalize(t, r.cfg)
	if err != nil {
		return "", false
	}
	name, ok := r.state.Load().byType[holder]
	return name, ok
}

func (r *aliases) Entries() []apis.Entry { return slices.Clone(r.state.Load().order) }

func (r *aliases) Count() int { return len(r.state.Load().order) }

func (r *aliases) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur := r.state.Load()
	if cur.frozen {
		return
	}
	next := *cur
	next.frozen = true
	r.state.Store(&next)
	r.log.Debug("alias table frozen", "aliases", len(cur.order))
}

func (r *aliases) Frozen() bool { return r.state.Load().frozen }

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

package dmx

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/builder"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/resolver"
)

// ErrNilResolver is returned when a builder returns a nil resolver.
var ErrNilResolver = errors.New("dmx: builder returned nil resolver")

// Context owns the registries, resolver and cache of one dmx instance.
// It is safe for concurrent use.
type Context struct {
	// mu serializes writers so registrations never race a rebuild.
	mu  sync.Mutex
	bld *builder.Builder
	st  atomic.Pointer[state]
}

// state is an immutable snapshot; the registries inside it are not.
type state struct {
	cfg     apis.Config
	keys    apis.KeyRegistry
	aliases apis.Aliases
	names   apis.Resolver
	procs   *processor.Registry
	cache   *intern.Cache
}

// New builds a context holding the built-in keys and processors. With
// cfg.FreezeOnBuild set, the key, alias and processor registries are frozen
// before New returns.
func New(cfg apis.Config) (*Context, error) {
	c := &Context{bld: builder.New()}
	s, err := c.build(cfg, nil)
	if err != nil {
		return nil, err
	}
	c.st.Store(s)
	cfg.Log().Debug("dmx context built",
		"keys", s.keys.Count(), "processors", s.procs.Count(), "frozen", cfg.FreezeOnBuild)
	return c, nil
}

// build derives a snapshot for cfg from prev, which may be nil.
func (c *Context) build(cfg apis.Config, prev *state) (*state, error) {
	var (
		pkeys    apis.KeyRegistry
		paliases apis.Aliases
		pnames   apis.Resolver
		pprocs   *processor.Registry
		cache    *intern.Cache
	)
	if prev != nil {
		pkeys, paliases, pnames, pprocs, cache = prev.keys, prev.aliases, prev.names, prev.procs, prev.cache
	} else {
		cache = c.bld.BuildCache(cfg)
	}

	keys, err := c.bld.BuildKeys(cfg, pkeys)
	if err != nil {
		return nil, err
	}
	aliases := c.bld.BuildAliases(cfg, paliases)
	names := c.bld.BuildResolver(cfg, aliases, pnames)
	if names == nil {
		return nil, ErrNilResolver
	}
	procs, err := c.bld.BuildProcessors(cfg, keys, names, cache, pprocs)
	if err != nil {
		return nil, err
	}
	// A frozen context stays frozen across rebuilds.
	frozen := prev != nil && (prev.keys.Frozen() || prev.procs.Frozen() || prev.aliases.Frozen())
	if cfg.FreezeOnBuild || frozen {
		keys.Freeze()
		aliases.Freeze()
		procs.Freeze()
	}
	return &state{cfg: cfg, keys: keys, aliases: aliases, names: names, procs: procs, cache: cache}, nil
}

// SetConfig rebuilds the context under cfg. Registered keys, aliases and
// processors carry over; the interning cache keeps the shape it had at New.
// A frozen context stays frozen whatever cfg.FreezeOnBuild says.
func (c *Context) SetConfig(cfg apis.Config) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	s, err := c.build(cfg, c.st.Load())
	if err != nil {
		return fmt.Errorf("dmx: rebuild: %w", err)
	}
	c.st.Store(s)
	return nil
}

// Config returns the active configuration.
func (c *Context) Config() apis.Config { return c.st.Load().cfg }

// Keys returns the key registry.
func (c *Context) Keys() apis.KeyRegistry { return c.st.Load().keys }

// Aliases returns the holder alias table.
func (c *Context) Aliases() apis.Aliases { return c.st.Load().aliases }

// Resolver returns the holder name resolver.
func (c *Context) Resolver() apis.Resolver { return c.st.Load().names }

// Processors returns the processor registry.
func (c *Context) Processors() *processor.Registry { return c.st.Load().procs }

// Cache returns the interning cache.
func (c *Context) Cache() *intern.Cache { return c.st.Load().cache }

// Name returns the display name of holder.
func (c *Context) Name(holder any) string {
	s := c.st.Load()
	return resolver.Holder(s.names, holder, s.cfg)
}

// RegisterKey binds k in the key registry.
func (c *Context) RegisterKey(k key.Any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Load().keys.Register(k)
}

// Lookup returns the key bound to name.
func (c *Context) Lookup(name string) (key.Any, error) {
	return c.st.Load().keys.Lookup(name)
}

// RegisterAlias names holders of type t.
func (c *Context) RegisterAlias(t reflect.Type, name string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.st.Load().aliases.Register(t, name)
}

// Freeze closes the key, alias and processor registries.
func (c *Context) Freeze() {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.st.Load()
	s.keys.Freeze()
	s.aliases.Freeze()
	s.procs.Freeze()
}

// RegisterValue adds a value processor after those already registered
// for its key.
func RegisterValue[T any](c *Context, p processor.Value[T]) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return processor.RegisterValue(c.st.Load().procs, p)
}

// RegisterData adds a data processor after those already registered for M.
func RegisterData[M apis.Manipulator](c *Context, p processor.Data[M]) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return processor.RegisterData(c.st.Load().procs, p)
}

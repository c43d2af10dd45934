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

// Package builder constructs the registries, resolver and cache behind a
// dmx context for a given configuration.
//
// Every Build method accepts the previous instance so a rebuilt context
// keeps what callers registered at runtime.
package builder

import (
	"fmt"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/builtin"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/resolver"
	"dirpx.dev/dmx/strategy"
)

// Builder is the stock apis.Builder.
type Builder struct{}

var _ apis.Builder = (*Builder)(nil)

// New creates and returns a new Builder.
func New() *Builder {
	return &Builder{}
}

// BuildKeys returns a key registry holding every key of prev, or the
// built-in key table when prev is nil.
func (b *Builder) BuildKeys(cfg apis.Config, prev apis.KeyRegistry) (apis.KeyRegistry, error) {
	nkeys := registry.NewKeys(cfg)
	if prev == nil {
		if err := keys.RegisterAll(nkeys); err != nil {
			return nil, fmt.Errorf("dmx(builder): built-in keys: %w", err)
		}
		return nkeys, nil
	}
	if err := registry.RegisterAll(nkeys, prev.Keys()...); err != nil {
		return nil, fmt.Errorf("dmx(builder): copy keys: %w", err)
	}
	return nkeys, nil
}

// BuildAliases returns an alias table holding the entries of prev, if any.
func (b *Builder) BuildAliases(cfg apis.Config, prev apis.Aliases) apis.Aliases {
	naliases := registry.NewAliases(cfg)
	if prev != nil {
		for _, e := range prev.Entries() {
			_ = naliases.Register(e.Type, e.Name)
		}
	}
	return naliases
}

// BuildResolver returns the holder name resolver. The chain tries
// apis.Namer first, then aliases, then the reflected type name.
func (b *Builder) BuildResolver(_ apis.Config, aliases apis.Aliases, _ apis.Resolver) apis.Resolver {
	return resolver.New(
		strategy.NewNamerStrategy(),
		strategy.NewAliasStrategy(aliases),
		strategy.NewReflectStrategy(),
	)
}

// BuildCache returns an empty interning cache shaped by cfg.
func (b *Builder) BuildCache(cfg apis.Config) *intern.Cache {
	return intern.New(cfg)
}

// BuildProcessors returns a processor registry bound to ks and names. With
// a nil prev it holds the built-in processors; otherwise it inherits every
// processor of prev in order.
func (b *Builder) BuildProcessors(cfg apis.Config, ks apis.KeyRegistry, names apis.Resolver, cache *intern.Cache, prev *processor.Registry) (*processor.Registry, error) {
	procs := processor.NewRegistry(cfg, ks, names)
	if prev == nil {
		if err := builtin.Register(procs, cache); err != nil {
			return nil, fmt.Errorf("dmx(builder): built-in processors: %w", err)
		}
		return procs, nil
	}
	if err := procs.Inherit(prev); err != nil {
		return nil, fmt.Errorf("dmx(builder): inherit processors: %w", err)
	}
	return procs, nil
}

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

package builder_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/builder"
	"dirpx.dev/dmx/config"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/world"
)

type crate struct{}

type golem struct{}

func (golem) HolderName() string { return "golem" }

func TestBuildKeys_Builtins(t *testing.T) {
	b := builder.New()
	ks, err := b.BuildKeys(config.DefaultConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, len(keys.All()), ks.Count())

	got, err := ks.Lookup("IS_SCREAMING")
	require.NoError(t, err)
	assert.Same(t, keys.IsScreaming, got)
}

func TestBuildKeys_CopiesPrevious(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	prev, err := b.BuildKeys(cfg, nil)
	require.NoError(t, err)
	extra := key.New[int]("CHARGE", "Charge")
	require.NoError(t, prev.Register(extra))
	prev.Freeze()

	next, err := b.BuildKeys(cfg, prev)
	require.NoError(t, err)
	assert.Equal(t, prev.Count(), next.Count())
	assert.False(t, next.Frozen())

	got, err := registry.LookupAs[int](next, "CHARGE")
	require.NoError(t, err)
	assert.Same(t, extra, got)
}

func TestBuildAliases_CopiesPrevious(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	prev := b.BuildAliases(cfg, nil)
	assert.Zero(t, prev.Count())
	require.NoError(t, prev.Register(reflect.TypeFor[crate](), "crate"))

	next := b.BuildAliases(cfg, prev)
	name, ok := next.Lookup(reflect.TypeFor[crate]())
	require.True(t, ok)
	assert.Equal(t, "crate", name)
}

func TestBuildResolver_Order(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	aliases := b.BuildAliases(cfg, nil)
	require.NoError(t, aliases.Register(reflect.TypeFor[crate](), "crate"))
	require.NoError(t, aliases.Register(reflect.TypeFor[golem](), "alias-golem"))
	res := b.BuildResolver(cfg, aliases, nil)

	assert.Equal(t, "golem", res.Resolve(golem{}, cfg), "namer wins over aliases")
	assert.Equal(t, "crate", res.Resolve(&crate{}, cfg))
	assert.Equal(t, "world.Sign", res.Resolve(&world.Sign{}, cfg))
	assert.Equal(t, "zombie", res.Resolve(world.NewLiving("zombie", 20), cfg))
}

func TestBuildProcessors_Builtins(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	ks, err := b.BuildKeys(cfg, nil)
	require.NoError(t, err)
	names := b.BuildResolver(cfg, b.BuildAliases(cfg, nil), nil)

	procs, err := b.BuildProcessors(cfg, ks, names, b.BuildCache(cfg), nil)
	require.NoError(t, err)
	assert.Positive(t, procs.Count())
	assert.True(t, procs.SupportsKey(&world.Enderman{}, keys.IsScreaming))
	assert.False(t, procs.SupportsKey(&world.Slime{}, keys.IsScreaming))
}

func TestBuildProcessors_InheritsPrevious(t *testing.T) {
	b := builder.New()
	cfg := config.DefaultConfig()
	ks, err := b.BuildKeys(cfg, nil)
	require.NoError(t, err)
	names := b.BuildResolver(cfg, b.BuildAliases(cfg, nil), nil)
	cache := b.BuildCache(cfg)

	prev, err := b.BuildProcessors(cfg, ks, names, cache, nil)
	require.NoError(t, err)
	prev.Freeze()

	next, err := b.BuildProcessors(cfg, ks, names, cache, prev)
	require.NoError(t, err)
	assert.Equal(t, prev.Count(), next.Count())
	assert.False(t, next.Frozen())

	e := &world.Enderman{}
	require.True(t, processor.Offer(next, e, keys.IsScreaming, true).IsSuccessful())
	assert.True(t, e.Screaming)
}

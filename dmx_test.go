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

package dmx_test

import (
	"reflect"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx"
	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/config"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/merge"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/world"
)

func newContext(t *testing.T, opts ...config.Option) *dmx.Context {
	t.Helper()
	ctx, err := dmx.New(config.NewConfig(opts...))
	require.NoError(t, err)
	return ctx
}

// glowing is a key with no processors.
var glowing = key.New[bool]("GLOWING", "Glowing")

// bare has neither processors nor custom storage.
type bare struct{}

func TestNew_BindsBuiltins(t *testing.T) {
	ctx := newContext(t)
	assert.Equal(t, len(keys.All()), ctx.Keys().Count())
	assert.Positive(t, ctx.Processors().Count())
	assert.False(t, ctx.Keys().Frozen())

	got, err := ctx.Lookup("SIGN_LINES")
	require.NoError(t, err)
	assert.Same(t, keys.SignLines, got)
}

func TestNew_FreezeOnBuild(t *testing.T) {
	ctx := newContext(t, config.WithFreezeOnBuild(true))
	assert.True(t, ctx.Keys().Frozen())
	assert.True(t, ctx.Processors().Frozen())
	assert.ErrorIs(t, ctx.RegisterKey(glowing), registry.ErrRegistryClosed)
}

func TestRegisterKey(t *testing.T) {
	ctx := newContext(t)
	require.NoError(t, ctx.RegisterKey(glowing))
	assert.ErrorIs(t, ctx.RegisterKey(key.New[bool]("GLOWING", "")), registry.ErrDuplicateKey)

	ctx.Freeze()
	assert.ErrorIs(t, ctx.RegisterKey(key.New[int]("CHARGE", "")), registry.ErrRegistryClosed)
}

func TestName(t *testing.T) {
	ctx := newContext(t)
	assert.Equal(t, "skeleton", ctx.Name(world.NewLiving("skeleton", 20)))
	assert.Equal(t, "world.Sign", ctx.Name(&world.Sign{}))

	require.NoError(t, ctx.RegisterAlias(reflect.TypeFor[world.Sign](), "sign"))
	assert.Equal(t, "sign", ctx.Name(&world.Sign{}))
}

func TestSetConfig_KeepsRegistrations(t *testing.T) {
	ctx := newContext(t)
	require.NoError(t, ctx.RegisterKey(glowing))
	require.NoError(t, ctx.RegisterAlias(reflect.TypeFor[bare](), "bare"))
	procs := ctx.Processors().Count()
	cache := ctx.Cache()

	require.NoError(t, ctx.SetConfig(config.NewConfig(config.WithFreezeOnBuild(true))))
	assert.True(t, ctx.Config().FreezeOnBuild)
	assert.True(t, ctx.Keys().Frozen())
	assert.Same(t, cache, ctx.Cache())
	assert.Equal(t, procs, ctx.Processors().Count())
	assert.Equal(t, "bare", ctx.Name(bare{}))

	got, err := ctx.Lookup("GLOWING")
	require.NoError(t, err)
	assert.Same(t, glowing, got)

	e := &world.Enderman{}
	require.True(t, dmx.Offer(ctx, e, keys.IsScreaming, true).IsSuccessful())
	assert.True(t, e.Screaming)
}

func TestSetConfig_StaysFrozen(t *testing.T) {
	t.Run("frozen on build", func(t *testing.T) {
		ctx := newContext(t, config.WithFreezeOnBuild(true))
		require.NoError(t, ctx.SetConfig(config.NewConfig()))
		assert.True(t, ctx.Keys().Frozen())
		assert.True(t, ctx.Aliases().Frozen())
		assert.True(t, ctx.Processors().Frozen())
		assert.ErrorIs(t, ctx.RegisterKey(glowing), registry.ErrRegistryClosed)
	})
	t.Run("frozen by call", func(t *testing.T) {
		ctx := newContext(t)
		ctx.Freeze()
		require.NoError(t, ctx.SetConfig(config.NewConfig()))
		assert.ErrorIs(t, ctx.RegisterKey(glowing), registry.ErrRegistryClosed)
		assert.ErrorIs(t, ctx.RegisterAlias(reflect.TypeFor[bare](), "bare"), registry.ErrRegistryClosed)
		assert.ErrorIs(t, dmx.RegisterValue[bool](ctx, glowingProcessor{}), registry.ErrRegistryClosed)
	})
}

func TestValues_ProcessorBacked(t *testing.T) {
	ctx := newContext(t)
	sign := &world.Sign{}

	res := dmx.Offer(ctx, sign, keys.SignLines, []text.Text{text.Of("hi")})
	require.True(t, res.IsSuccessful())
	lines, ok := dmx.Get(ctx, sign, keys.SignLines)
	require.True(t, ok)
	require.Len(t, lines, 4)
	assert.Equal(t, "hi", lines[0].Plain())

	res, err := dmx.Transform(ctx, &world.Slime{Size: 2}, keys.SlimeSize, func(n int) int { return n * 2 })
	require.NoError(t, err)
	assert.True(t, res.IsSuccessful())

	res = dmx.OfferValue[bool](ctx, &world.Enderman{}, value.New(keys.IsScreaming, true))
	assert.True(t, res.IsSuccessful())
}

func TestValues_Unsupported(t *testing.T) {
	ctx := newContext(t)

	_, ok := dmx.Get(ctx, bare{}, keys.IsScreaming)
	assert.False(t, ok)

	res := dmx.Offer(ctx, bare{}, keys.IsScreaming, true)
	assert.Equal(t, transaction.Failure, res.Outcome())
	assert.ErrorIs(t, res.Err(), apis.ErrUnsupportedData)
	require.Len(t, res.Rejected(), 1)

	_, err := dmx.Transform(ctx, bare{}, keys.IsScreaming, func(b bool) bool { return !b })
	assert.ErrorIs(t, err, apis.ErrUnsupportedData)
}

func TestValues_CustomFallback(t *testing.T) {
	ctx := newContext(t)
	zombie := world.NewLiving("zombie", 20)

	_, err := dmx.Transform(ctx, zombie, glowing, func(b bool) bool { return !b })
	assert.ErrorIs(t, err, apis.ErrNoData)

	require.True(t, dmx.Offer(ctx, zombie, glowing, false).IsSuccessful())
	res, err := dmx.Transform(ctx, zombie, glowing, func(b bool) bool { return !b })
	require.NoError(t, err)
	require.True(t, res.IsSuccessful())
	require.Len(t, res.Replaced(), 1)

	on, ok := dmx.Get(ctx, zombie, glowing)
	require.True(t, ok)
	assert.True(t, on)

	// Health still goes through its processor.
	require.True(t, dmx.Offer(ctx, zombie, keys.Health, 5.0).IsSuccessful())
	assert.InDelta(t, 5.0, zombie.Health, 1e-9)
	_, ok = zombie.CustomValue(keys.Health)
	assert.False(t, ok)

	require.True(t, dmx.Remove(ctx, zombie, glowing).IsSuccessful())
	_, ok = dmx.Get(ctx, zombie, glowing)
	assert.False(t, ok)
	assert.Equal(t, transaction.Failure, dmx.Remove(ctx, zombie, glowing).Outcome())
}

func TestData_ProcessorBacked(t *testing.T) {
	ctx := newContext(t)
	e := &world.Enderman{}

	m, ok := dmx.CreateData[*data.Screaming](ctx, e)
	require.True(t, ok)
	assert.False(t, m.Screaming().Get())

	require.True(t, dmx.OfferData(ctx, e, data.NewScreaming(true), nil).IsSuccessful())
	assert.True(t, e.Screaming)

	got, ok := dmx.GetData[*data.Screaming](ctx, e)
	require.True(t, ok)
	assert.True(t, got.Screaming().Get())

	built, ok, err := dmx.BuildData[*data.Screaming](ctx, got.ToContainer())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Zero(t, built.Compare(got))
}

func TestData_CustomFallback(t *testing.T) {
	ctx := newContext(t)
	chest := world.NewChest(27)

	_, ok := dmx.GetData[*data.Screaming](ctx, chest)
	assert.False(t, ok)

	require.True(t, dmx.OfferData(ctx, chest, data.NewScreaming(false), nil).IsSuccessful())
	require.True(t, dmx.OfferData(ctx, chest, data.NewScreaming(true), nil).IsSuccessful())
	got, ok := dmx.GetData[*data.Screaming](ctx, chest)
	require.True(t, ok)
	assert.True(t, got.Screaming().Get(), "nil merge lets the offered data win")

	res := dmx.OfferData(ctx, chest, data.NewScreaming(false), merge.IgnoreAll)
	require.True(t, res.IsSuccessful())
	got, _ = dmx.GetData[*data.Screaming](ctx, chest)
	assert.True(t, got.Screaming().Get())

	on, ok := dmx.Get(ctx, chest, keys.IsScreaming)
	require.True(t, ok)
	assert.True(t, on)

	filled, ok := dmx.FillData(ctx, chest, data.NewScreaming(false), nil)
	require.True(t, ok)
	assert.True(t, filled.Screaming().Get())

	require.True(t, dmx.RemoveData[*data.Screaming](ctx, chest).IsSuccessful())
	_, ok = dmx.CreateData[*data.Screaming](ctx, chest)
	assert.False(t, ok)
}

func TestData_Unsupported(t *testing.T) {
	ctx := newContext(t)
	res := dmx.OfferData(ctx, bare{}, data.NewScreaming(true), nil)
	assert.ErrorIs(t, res.Err(), apis.ErrUnsupportedData)
	assert.ErrorIs(t, dmx.RemoveData[*data.Screaming](ctx, bare{}).Err(), apis.ErrUnsupportedData)
}

func TestRegisterValue_AfterBuiltins(t *testing.T) {
	ctx := newContext(t)
	require.NoError(t, ctx.RegisterKey(glowing))
	require.NoError(t, dmx.RegisterValue[bool](ctx, glowingProcessor{}))

	e := &world.Enderman{}
	require.True(t, dmx.Offer(ctx, e, glowing, true).IsSuccessful())
	assert.True(t, e.Screaming)
}

func TestContext_Concurrent(t *testing.T) {
	ctx := newContext(t)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			e := &world.Enderman{}
			for range 100 {
				assert.True(t, dmx.Offer(ctx, e, keys.IsScreaming, true).IsSuccessful())
			}
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, ctx.SetConfig(config.NewConfig(config.WithInternShards(i+1))))
		}()
	}
	wg.Wait()
}

// glowingProcessor maps GLOWING onto an enderman's screaming flag.
type glowingProcessor struct{}

func (glowingProcessor) Key() *key.Key[bool] { return glowing }

func (glowingProcessor) Supports(holder any) bool {
	_, ok := holder.(*world.Enderman)
	return ok
}

func (glowingProcessor) Get(holder any) (bool, bool) {
	return holder.(*world.Enderman).Screaming, true
}

func (glowingProcessor) Offer(holder any, v bool) *transaction.Result {
	e := holder.(*world.Enderman)
	old := e.Screaming
	e.Screaming = v
	return transaction.SuccessResult(
		[]value.Immutable{value.NewImmutable(glowing, v)},
		[]value.Immutable{value.NewImmutable(glowing, old)},
	)
}

func (glowingProcessor) Remove(any) *transaction.Result {
	return transaction.Unsupported(apis.ErrUnsupportedData)
}

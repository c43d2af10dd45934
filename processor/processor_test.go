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

package processor_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/config"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/merge"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
	"dirpx.dev/dmx/world"
)

var count = key.New[int]("COUNT", "Count")

type counter struct {
	n   int
	has bool
}

func counterProc(tag int) *processor.ValueFuncs[*counter, int] {
	return &processor.ValueFuncs[*counter, int]{
		K: count,
		Read: func(c *counter) (int, bool) {
			return c.n, c.has
		},
		Write: func(c *counter, v int) error {
			if v < 0 {
				return fmt.Errorf("negative: %w", value.ErrRange)
			}
			c.n, c.has = v+tag, true
			return nil
		},
		Delete: func(c *counter) error {
			c.n, c.has = 0, false
			return nil
		},
	}
}

func newRegistry(t *testing.T) *processor.Registry {
	t.Helper()
	return processor.NewRegistry(config.DefaultConfig(), nil, nil)
}

func TestDispatch_FirstSupportingProcessorWins(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(100)))
	require.NoError(t, processor.RegisterValue[int](r, counterProc(200)))

	c := &counter{}
	res := processor.Offer(r, c, count, 1)
	require.True(t, res.IsSuccessful())
	assert.Equal(t, 101, c.n)
}

func TestDispatch_SkipsProcessorsThatDoNotSupport(t *testing.T) {
	r := newRegistry(t)
	picky := counterProc(100)
	picky.Check = func(c *counter) bool { return c.has }
	require.NoError(t, processor.RegisterValue[int](r, picky))
	require.NoError(t, processor.RegisterValue[int](r, counterProc(200)))

	c := &counter{}
	processor.Offer(r, c, count, 1)
	assert.Equal(t, 201, c.n)
}

func TestOffer_ReportsReplacedValue(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	c := &counter{n: 3, has: true}
	res := processor.Offer(r, c, count, 4)
	require.True(t, res.IsSuccessful())
	require.Len(t, res.Success(), 1)
	require.Len(t, res.Replaced(), 1)
	assert.Equal(t, 4, res.Success()[0].Raw())
	assert.Equal(t, 3, res.Replaced()[0].Raw())
	assert.Empty(t, res.Rejected())
}

func TestOffer_RangeErrorFails(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	c := &counter{n: 3, has: true}
	res := processor.Offer(r, c, count, -1)
	assert.Equal(t, transaction.Failure, res.Outcome())
	assert.ErrorIs(t, res.Err(), value.ErrRange)
	assert.Equal(t, 3, c.n)
}

func TestUnsupportedHolder(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))
	stranger := &world.Slime{Size: 2}

	res := processor.Offer(r, stranger, count, 5)
	assert.Equal(t, transaction.Failure, res.Outcome())
	assert.Empty(t, res.Success())
	require.Len(t, res.Rejected(), 1)
	assert.Equal(t, 5, res.Rejected()[0].Raw())
	assert.ErrorIs(t, res.Err(), processor.ErrUnsupportedData)

	v, ok := processor.Get(r, stranger, count)
	assert.False(t, ok)
	assert.Zero(t, v)

	_, err := processor.Transform(r, stranger, count, func(n int) int { return n + 1 })
	assert.ErrorIs(t, err, processor.ErrUnsupportedData)

	res = processor.Remove(r, stranger, count)
	assert.ErrorIs(t, res.Err(), processor.ErrUnsupportedData)
	assert.Equal(t, 2, stranger.Size)
}

func TestOfferValue_RejectsOriginalHandle(t *testing.T) {
	r := newRegistry(t)
	v := value.NewImmutable(count, 9)
	res := processor.OfferValue[int](r, struct{}{}, v)
	require.Len(t, res.Rejected(), 1)
	assert.Same(t, v, res.Rejected()[0])

	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))
	c := &counter{}
	assert.True(t, processor.OfferValue[int](r, c, value.New(count, 2)).IsSuccessful())
	assert.Equal(t, 2, c.n)
}

func TestTransform(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	c := &counter{n: 2, has: true}
	res, err := processor.Transform(r, c, count, func(n int) int { return n * 10 })
	require.NoError(t, err)
	assert.True(t, res.IsSuccessful())
	assert.Equal(t, 20, c.n)
}

func TestTransform_AbsentDataLeavesHolderUntouched(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	called := false
	c := &counter{}
	res, err := processor.Transform(r, c, count, func(n int) int {
		called = true
		return n + 1
	})
	assert.Nil(t, res)
	assert.ErrorIs(t, err, processor.ErrNoData)
	assert.False(t, called)
	assert.Equal(t, counter{}, *c)
}

type doubling struct {
	*processor.ValueFuncs[*counter, int]
}

func (d doubling) Transform(holder any, f func(int) int) (*transaction.Result, error) {
	c := holder.(*counter)
	c.n, c.has = f(c.n)*2, true
	return transaction.SuccessNoData(), nil
}

func TestTransform_UsesTransformer(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, doubling{counterProc(0)}))

	c := &counter{n: 1}
	_, err := processor.Transform(r, c, count, func(n int) int { return n + 1 })
	require.NoError(t, err)
	assert.Equal(t, 4, c.n)
}

func TestRemove(t *testing.T) {
	r := newRegistry(t)
	ro := counterProc(0)
	ro.Delete = nil
	require.NoError(t, processor.RegisterValue[int](r, ro))

	res := processor.Remove(r, &counter{n: 1, has: true}, count)
	assert.ErrorIs(t, res.Err(), processor.ErrUnsupportedData)

	r = newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))
	c := &counter{n: 1, has: true}
	res = processor.Remove(r, c, count)
	require.True(t, res.IsSuccessful())
	require.Len(t, res.Replaced(), 1)
	assert.Equal(t, 1, res.Replaced()[0].Raw())
	assert.False(t, c.has)

	res = processor.Remove(r, c, count)
	assert.ErrorIs(t, res.Err(), processor.ErrNoData)
}

func TestRegister_KeyMustBeBound(t *testing.T) {
	cfg := config.DefaultConfig()
	ks := registry.NewKeys(cfg)
	r := processor.NewRegistry(cfg, ks, nil)

	err := processor.RegisterValue[int](r, counterProc(0))
	assert.ErrorIs(t, err, registry.ErrUnknownKey)

	require.NoError(t, ks.Register(count))
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	impostor := counterProc(0)
	impostor.K = key.New[int]("COUNT", "Count")
	assert.ErrorIs(t, processor.RegisterValue[int](r, impostor), registry.ErrUnknownKey)
}

func TestFreeze(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))
	r.Freeze()
	r.Freeze()
	assert.True(t, r.Frozen())

	assert.ErrorIs(t, processor.RegisterValue[int](r, counterProc(1)), registry.ErrRegistryClosed)
	assert.ErrorIs(t, processor.RegisterData[*data.Screaming](r, screamingProc()), registry.ErrRegistryClosed)
	assert.Equal(t, 1, r.Count())

	c := &counter{}
	assert.True(t, processor.Offer(r, c, count, 1).IsSuccessful())
}

func TestRegister_Nil(t *testing.T) {
	r := newRegistry(t)
	assert.ErrorIs(t, processor.RegisterValue[int](r, nil), processor.ErrNilProcessor)
	assert.ErrorIs(t, processor.RegisterData[*data.Screaming](r, nil), processor.ErrNilProcessor)
}

func screamingProc() *processor.DataFuncs[*world.Enderman, *data.Screaming] {
	return &processor.DataFuncs[*world.Enderman, *data.Screaming]{
		Read: func(e *world.Enderman) (*data.Screaming, bool) {
			return data.NewScreaming(e.Screaming), true
		},
		Write: func(e *world.Enderman, m *data.Screaming) error {
			e.Screaming = m.Screaming().Get()
			return nil
		},
		Default: func() *data.Screaming { return data.NewScreaming(false) },
		Decode:  data.BuildScreaming,
	}
}

func TestDataDispatch(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterData[*data.Screaming](r, screamingProc()))

	e := &world.Enderman{}
	m, ok := processor.From[*data.Screaming](r, e)
	require.True(t, ok)
	assert.False(t, m.Screaming().Get())

	res := processor.SetData(r, e, data.NewScreaming(true), nil)
	require.True(t, res.IsSuccessful())
	assert.True(t, e.Screaming)
	require.Len(t, res.Replaced(), 1)
	assert.Equal(t, false, res.Replaced()[0].Raw())

	res = processor.SetData(r, e, data.NewScreaming(false), merge.IgnoreAll)
	require.True(t, res.IsSuccessful())
	assert.True(t, e.Screaming, "IgnoreAll keeps the holder's state")

	filled, ok := processor.Fill(r, e, data.NewScreaming(false), nil)
	require.True(t, ok)
	assert.True(t, filled.Screaming().Get())

	kept, ok := processor.Fill(r, e, data.NewScreaming(false), merge.IgnoreAll)
	require.True(t, ok)
	assert.False(t, kept.Screaming().Get())

	created, ok := processor.CreateFrom[*data.Screaming](r, e)
	require.True(t, ok)
	assert.True(t, created.Screaming().Get())

	res = processor.RemoveData[*data.Screaming](r, e)
	assert.ErrorIs(t, res.Err(), processor.ErrUnsupportedData)

	_, ok = processor.From[*data.Screaming](r, &counter{})
	assert.False(t, ok)
	res = processor.SetData(r, &counter{}, data.NewScreaming(true), nil)
	assert.ErrorIs(t, res.Err(), processor.ErrUnsupportedData)
	assert.Len(t, res.Rejected(), 1)
}

func TestBuild(t *testing.T) {
	r := newRegistry(t)
	n := view.NewMap().Set(keys.IsScreaming.Query(), true)

	_, _, err := processor.Build[*data.Screaming](r, n)
	assert.ErrorIs(t, err, processor.ErrUnsupportedData)

	require.NoError(t, processor.RegisterData[*data.Screaming](r, screamingProc()))
	m, ok, err := processor.Build[*data.Screaming](r, n)
	require.NoError(t, err)
	require.True(t, ok)
	assert.True(t, m.Screaming().Get())

	_, _, err = processor.Build[*data.Screaming](r, view.NewMap().Set(keys.IsScreaming.Query(), 1))
	assert.ErrorIs(t, err, view.ErrInvalidData)
}

func TestInherit(t *testing.T) {
	prev := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](prev, counterProc(0)))
	require.NoError(t, processor.RegisterData[*data.Screaming](prev, screamingProc()))

	next := newRegistry(t)
	require.NoError(t, next.Inherit(prev))
	require.NoError(t, next.Inherit(nil))
	assert.Equal(t, 2, next.Count())
	assert.True(t, next.SupportsKey(&counter{}, count))
}

func TestRegistry_Concurrent(t *testing.T) {
	r := newRegistry(t)
	require.NoError(t, processor.RegisterValue[int](r, counterProc(0)))

	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for i := range 32 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := processor.RegisterValue[int](r, counterProc(i)); err != nil {
				errs <- err
			}
		}()
		go func() {
			defer wg.Done()
			c := &counter{}
			if res := processor.Offer(r, c, count, 1); !res.IsSuccessful() || c.n != 1 {
				errs <- errors.New("first processor lost its place")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
	assert.Equal(t, 33, r.Count())
}

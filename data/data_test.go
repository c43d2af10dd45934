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

package data_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

func mustSlime(t *testing.T, n int) *data.Slime {
	t.Helper()
	s, err := data.NewSlime(n)
	require.NoError(t, err)
	return s
}

func mustMoisture(t *testing.T, n int) *data.Moisture {
	t.Helper()
	m, err := data.NewMoisture(n)
	require.NoError(t, err)
	return m
}

func mustPower(t *testing.T, n int) *data.RedstonePowered {
	t.Helper()
	p, err := data.NewRedstonePowered(n)
	require.NoError(t, err)
	return p
}

// roundTrip serializes m, passes it through the YAML codec and rebuilds it.
func roundTrip[M apis.Manipulator](t *testing.T, m M, build func(*view.Node) (M, bool, error)) M {
	t.Helper()
	b, err := view.Marshal(m.ToContainer())
	require.NoError(t, err)
	n, err := view.Unmarshal(b)
	require.NoError(t, err)
	got, ok, err := build(n)
	require.NoError(t, err)
	require.True(t, ok)
	return got
}

var (
	wheatForEmerald = catalog.TradeOffer{Buy: catalog.ItemWheat, BuyCount: 20, Sell: catalog.ItemEmerald, SellCount: 1, MaxUses: 7}
	emeraldsForBook = catalog.TradeOffer{Buy: catalog.ItemEmerald, BuyCount: 9, Sell: catalog.ItemBook, SellCount: 1, MaxUses: 3}
)

func TestRoundTrip(t *testing.T) {
	steve := catalog.GameProfile{ID: uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"), Name: "Notch"}

	t.Run("sign", func(t *testing.T) {
		in := data.NewSign(text.Of("a"), text.Text{Content: "b", Color: text.Red, Bold: true}, text.Of(""), text.Of("d"))
		got := roundTrip(t, in, data.BuildSign)
		assert.Zero(t, in.Compare(got))
		assert.True(t, in.ToContainer().Equal(got.ToContainer()))
	})
	t.Run("horse", func(t *testing.T) {
		in := data.NewHorse(catalog.HorseBlack, catalog.StyleWhiteDots, catalog.VariantMule)
		got := roundTrip(t, in, data.BuildHorse)
		assert.Zero(t, in.Compare(got))
		assert.Equal(t, catalog.VariantMule, got.Variant().Get())
	})
	t.Run("screaming", func(t *testing.T) {
		got := roundTrip(t, data.NewScreaming(true), data.BuildScreaming)
		assert.True(t, got.Screaming().Get())
	})
	t.Run("slime", func(t *testing.T) {
		got := roundTrip(t, mustSlime(t, 4), data.BuildSlime)
		assert.Equal(t, 4, got.Size().Get())
	})
	t.Run("moisture", func(t *testing.T) {
		got := roundTrip(t, mustMoisture(t, 7), data.BuildMoisture)
		assert.Equal(t, 7, got.Moisture().Get())
	})
	t.Run("power", func(t *testing.T) {
		got := roundTrip(t, mustPower(t, 15), data.BuildRedstonePowered)
		assert.Equal(t, 15, got.Power().Get())
	})
	t.Run("placeable", func(t *testing.T) {
		in := data.NewPlaceable(catalog.BlockStone, catalog.BlockDirt)
		got := roundTrip(t, in, data.BuildPlaceable)
		assert.Zero(t, in.Compare(got))
		assert.True(t, got.Blocks().Contains(catalog.BlockDirt))
	})
	t.Run("represented player", func(t *testing.T) {
		got := roundTrip(t, data.NewRepresentedPlayer(steve), data.BuildRepresentedPlayer)
		assert.Equal(t, steve, got.Owner().Get())
	})
	t.Run("trade offers", func(t *testing.T) {
		in := data.NewTradeOffers(wheatForEmerald, emeraldsForBook)
		got := roundTrip(t, in, data.BuildTradeOffers)
		assert.Zero(t, in.Compare(got))
		assert.Equal(t, emeraldsForBook, got.Offers().At(1))
	})
	t.Run("no trade offers", func(t *testing.T) {
		got := roundTrip(t, data.NewTradeOffers(), data.BuildTradeOffers)
		assert.Zero(t, got.Offers().Len())
	})
}

func TestSign_DefaultsToBlankLines(t *testing.T) {
	s := data.NewSign()
	require.Equal(t, data.SignLineCount, s.Lines().Len())
	for _, l := range s.Lines().Get() {
		assert.True(t, l.IsEmpty())
	}
}

func TestSign_ContainerLayout(t *testing.T) {
	n := data.NewSign(text.Of("x")).ToContainer()
	seq, ok, err := n.GetSequence(keys.SignLines.Query())
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, seq, 1)
	s, ok, err := seq[0].GetString(view.Of("text"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "x", s)
}

func TestConversions_Idempotent(t *testing.T) {
	sign := data.NewSign(text.Of("1"), text.Of("2"))
	assert.Zero(t, sign.AsImmutable().Compare(sign.AsImmutable().AsMutable().AsImmutable()))

	horse := data.NewHorse(catalog.HorseGray, catalog.StyleWhite, catalog.VariantDonkey)
	assert.Zero(t, horse.AsImmutable().Compare(horse.AsImmutable().AsMutable().AsImmutable()))

	slime := mustSlime(t, 3)
	assert.Zero(t, slime.AsImmutable().Compare(slime.AsImmutable().AsMutable().AsImmutable()))

	placeable := data.NewPlaceable(catalog.BlockGrass)
	assert.Zero(t, placeable.AsImmutable().Compare(placeable.AsImmutable().AsMutable().AsImmutable()))

	player := data.NewRepresentedPlayer(catalog.GameProfile{Name: "alex"})
	assert.Zero(t, player.AsImmutable().Compare(player.AsImmutable().AsMutable().AsImmutable()))

	trades := data.NewTradeOffers(wheatForEmerald)
	assert.Zero(t, trades.AsImmutable().Compare(trades.AsImmutable().AsMutable().AsImmutable()))
}

func TestConversions_DeepCopy(t *testing.T) {
	sign := data.NewSign(text.Of("before"))
	frozen := sign.AsImmutable()
	sign.Lines().SetAt(0, text.Of("after"))
	assert.Equal(t, "before", frozen.Lines().At(0).Plain())

	placeable := data.NewPlaceable(catalog.BlockStone)
	snap := placeable.AsImmutable()
	placeable.Blocks().Add(catalog.BlockDirt)
	assert.False(t, snap.Blocks().Contains(catalog.BlockDirt))

	cp := placeable.Copy()
	cp.Blocks().Remove(catalog.BlockStone)
	assert.True(t, placeable.Blocks().Contains(catalog.BlockStone))

	trades := data.NewTradeOffers(wheatForEmerald)
	before := trades.AsImmutable()
	trades.AddOffer(emeraldsForBook)
	assert.Equal(t, 1, before.Offers().Len())
	assert.Equal(t, 2, trades.Offers().Len())

	extended := before.WithOffer(emeraldsForBook)
	assert.Equal(t, 1, before.Offers().Len())
	assert.Zero(t, extended.Compare(trades.AsImmutable()))

	cpTrades := trades.Copy()
	cpTrades.SetOffers(nil)
	assert.Equal(t, 2, trades.Offers().Len())
}

func TestCompare(t *testing.T) {
	a := data.NewHorse(catalog.HorseWhite, catalog.StyleNone, catalog.VariantHorse)
	b := data.NewHorse(catalog.HorseWhite, catalog.StyleNone, catalog.VariantMule)
	c := data.NewHorse(catalog.HorseCreamy, catalog.StyleNone, catalog.VariantHorse)
	assert.Negative(t, a.Compare(b))
	assert.Positive(t, b.Compare(a))
	assert.Negative(t, b.Compare(c))

	assert.Negative(t, data.NewScreaming(false).Compare(data.NewScreaming(true)))
	assert.Negative(t, mustMoisture(t, 1).Compare(mustMoisture(t, 2)))
	assert.Negative(t, data.NewSign(text.Of("a")).Compare(data.NewSign(text.Of("b"))))
	assert.Negative(t, data.NewPlaceable(catalog.BlockDirt).Compare(data.NewPlaceable(catalog.BlockStone)))
	assert.Negative(t, data.NewTradeOffers(wheatForEmerald).Compare(data.NewTradeOffers(wheatForEmerald, emeraldsForBook)))
	assert.Positive(t, data.NewTradeOffers(wheatForEmerald).Compare(data.NewTradeOffers(emeraldsForBook)))
}

func TestCompare_SignStyles(t *testing.T) {
	red := data.NewSign(text.Text{Content: "x", Color: text.Red})
	blue := data.NewSign(text.Text{Content: "x", Color: text.Blue})
	bold := data.NewSign(text.Text{Content: "x", Color: text.Red, Bold: true})

	assert.Positive(t, red.Compare(blue))
	assert.Negative(t, blue.Compare(red))
	assert.Negative(t, red.Compare(bold))
	assert.Zero(t, red.Compare(red.Copy()))
	assert.Positive(t, red.AsImmutable().Compare(blue.AsImmutable()))
}

func TestBoundedManipulators_RejectOutOfRange(t *testing.T) {
	_, err := data.NewMoisture(data.MaxMoisture + 1)
	assert.ErrorIs(t, err, value.ErrRange)
	_, err = data.NewRedstonePowered(-1)
	assert.ErrorIs(t, err, value.ErrRange)
	_, err = data.NewImmutableSlime(-5)
	assert.ErrorIs(t, err, value.ErrRange)
}

func TestBuild_Absent(t *testing.T) {
	empty := view.NewMap()
	_, ok, err := data.BuildSign(empty)
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = data.BuildHorse(view.NewMap().Set(keys.HorseColor.Query(), "white"))
	assert.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = data.BuildRepresentedPlayer(empty)
	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestBuild_Invalid(t *testing.T) {
	cases := []struct {
		name  string
		node  *view.Node
		build func(*view.Node) (bool, error)
	}{
		{
			name: "moisture wrong kind",
			node: view.NewMap().Set(keys.Moisture.Query(), "wet"),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildMoisture(n)
				return ok, err
			},
		},
		{
			name: "power out of range",
			node: view.NewMap().Set(keys.Power.Query(), 16),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildRedstonePowered(n)
				return ok, err
			},
		},
		{
			name: "unknown horse color",
			node: view.NewMap().
				Set(keys.HorseColor.Query(), "purple").
				Set(keys.HorseStyle.Query(), "none").
				Set(keys.HorseVariant.Query(), "horse"),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildHorse(n)
				return ok, err
			},
		},
		{
			name: "sign lines not a sequence",
			node: view.NewMap().Set(keys.SignLines.Query(), 3),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildSign(n)
				return ok, err
			},
		},
		{
			name: "placeable entry not a string",
			node: view.NewMap().Set(keys.PlaceableBlocks.Query(), []int{1}),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildPlaceable(n)
				return ok, err
			},
		},
		{
			name: "bad profile uuid",
			node: view.NewMap().Set(keys.RepresentedPlayer.Query().Child("Id"), "nope"),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildRepresentedPlayer(n)
				return ok, err
			},
		},
		{
			name: "trade offer not a map",
			node: view.NewMap().Set(keys.TradeOffers.Query(), []string{"wheat"}),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildTradeOffers(n)
				return ok, err
			},
		},
		{
			name: "trade offer without a sale",
			node: view.NewMap().Set(keys.TradeOffers.Query(), []*view.Node{
				view.NewMap().Set(view.Of("Buy"), "wheat"),
			}),
			build: func(n *view.Node) (bool, error) {
				_, ok, err := data.BuildTradeOffers(n)
				return ok, err
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := tc.build(tc.node)
			assert.False(t, ok)
			assert.ErrorIs(t, err, view.ErrInvalidData)
		})
	}
}

func TestImmutableOf_SharesValues(t *testing.T) {
	v := value.NewImmutable(keys.IsScreaming, true)
	s := data.ImmutableScreamingOf(v)
	assert.Same(t, v, s.Screaming())
	assert.Equal(t, []value.Immutable{v}, s.Values())
}

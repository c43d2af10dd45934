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

package catalog_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/view"
)

func TestEnums_TextRoundTrip(t *testing.T) {
	for _, c := range catalog.AllHorseColors() {
		b, err := c.MarshalText()
		require.NoError(t, err)
		var back catalog.HorseColor
		require.NoError(t, back.UnmarshalText(b))
		assert.Equal(t, c, back)
	}
	for _, s := range catalog.AllSkullTypes() {
		p, err := catalog.ParseSkullType(" " + s.ID() + " ")
		require.NoError(t, err)
		assert.Equal(t, s, p)
	}
}

func TestEnums_Unknown(t *testing.T) {
	_, err := catalog.ParseCareer("astronaut")
	assert.ErrorIs(t, err, catalog.ErrUnknownID)

	_, err = catalog.HorseStyle(99).MarshalText()
	assert.ErrorIs(t, err, catalog.ErrUnknownID)
	assert.Equal(t, "Unknown(99)", catalog.HorseStyle(99).String())
}

func TestBlockType_Namespacing(t *testing.T) {
	b, err := catalog.ParseBlockType("Stone")
	require.NoError(t, err)
	assert.Equal(t, catalog.BlockStone, b)

	_, err = catalog.ParseItemType("  ")
	assert.ErrorIs(t, err, catalog.ErrUnknownID)
}

func TestColor_Text(t *testing.T) {
	c := catalog.Color{R: 0xff, G: 0x10, B: 0x00}
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "#ff1000", string(b))

	var back catalog.Color
	require.NoError(t, back.UnmarshalText(b))
	assert.Equal(t, c, back)
	assert.Error(t, back.UnmarshalText([]byte("#zz")))
}

func TestGameProfile_Container(t *testing.T) {
	p := catalog.GameProfile{ID: uuid.MustParse("069a79f4-44e9-4726-a5be-fca90e38aaf5"), Name: "Notch"}
	back, err := catalog.ProfileFromView(p.ToContainer())
	require.NoError(t, err)
	assert.Equal(t, p, back)

	null, err := catalog.ProfileFromView(catalog.NullProfile.ToContainer())
	require.NoError(t, err)
	assert.True(t, null.IsNull())

	_, err = catalog.ProfileFromView(view.NewMap().Set(view.Of("Id"), "nope"))
	assert.ErrorIs(t, err, view.ErrInvalidData)
}

func TestTradeOffer_Container(t *testing.T) {
	single := catalog.TradeOffer{Buy: catalog.ItemWheat, BuyCount: 20, Sell: catalog.ItemEmerald, SellCount: 1, MaxUses: 7}
	double := catalog.TradeOffer{
		Buy: catalog.ItemEmerald, BuyCount: 5,
		SecondBuy: catalog.ItemBook, SecondBuyCount: 1,
		Sell: catalog.ItemBread, SellCount: 3, Uses: 2, MaxUses: 2,
	}
	for _, o := range []catalog.TradeOffer{single, double} {
		back, err := catalog.TradeOfferFromView(o.ToContainer())
		require.NoError(t, err)
		assert.Equal(t, o, back)
	}

	_, ok := single.ToContainer().Get(view.Of("BuySecond"))
	assert.False(t, ok)
	assert.False(t, single.Exhausted())
	assert.True(t, double.Exhausted())
	assert.Negative(t, double.Compare(single))
	assert.Zero(t, single.Compare(single))
}

func TestTradeOffer_Invalid(t *testing.T) {
	_, err := catalog.TradeOfferFromView(view.NewMap().Set(view.Of("Sell"), "bread"))
	assert.ErrorIs(t, err, view.ErrInvalidData)

	_, err = catalog.TradeOfferFromView(view.NewMap().
		Set(view.Of("Buy"), "wheat").
		Set(view.Of("Sell"), "emerald").
		Set(view.Of("SellCount"), -1))
	assert.ErrorIs(t, err, view.ErrInvalidData)

	o, err := catalog.TradeOfferFromView(view.NewMap().Set(view.Of("Buy"), "wheat").Set(view.Of("Sell"), "emerald"))
	require.NoError(t, err)
	assert.Equal(t, catalog.ItemWheat, o.Buy)
	assert.Zero(t, o.BuyCount)
}

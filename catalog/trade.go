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

package catalog

import (
	"cmp"
	"strings"

	"dirpx.dev/dmx/view"
)

// Extra item types traded by villagers or dyed by players.
const (
	ItemEmerald      ItemType = "minecraft:emerald"
	ItemWheat        ItemType = "minecraft:wheat"
	ItemBread        ItemType = "minecraft:bread"
	ItemBook         ItemType = "minecraft:book"
	ItemLeatherTunic ItemType = "minecraft:leather_chestplate"
)

// TradeOffer is one villager trade: up to two stacks bought for one sold.
// SecondBuy is empty when the trade takes a single stack.
type TradeOffer struct {
	Buy            ItemType
	BuyCount       int
	SecondBuy      ItemType
	SecondBuyCount int
	Sell           ItemType
	SellCount      int
	Uses           int
	MaxUses        int
}

var (
	offerBuy            = view.Of("Buy")
	offerBuyCount       = view.Of("BuyCount")
	offerSecondBuy      = view.Of("BuySecond")
	offerSecondBuyCount = view.Of("BuySecondCount")
	offerSell           = view.Of("Sell")
	offerSellCount      = view.Of("SellCount")
	offerUses           = view.Of("Uses")
	offerMaxUses        = view.Of("MaxUses")
)

// Exhausted reports whether the offer has no uses left.
func (o TradeOffer) Exhausted() bool { return o.Uses >= o.MaxUses }

// Compare orders offers field by field in declared order.
func (o TradeOffer) Compare(p TradeOffer) int {
	return cmp.Or(
		strings.Compare(string(o.Buy), string(p.Buy)),
		cmp.Compare(o.BuyCount, p.BuyCount),
		strings.Compare(string(o.SecondBuy), string(p.SecondBuy)),
		cmp.Compare(o.SecondBuyCount, p.SecondBuyCount),
		strings.Compare(string(o.Sell), string(p.Sell)),
		cmp.Compare(o.SellCount, p.SellCount),
		cmp.Compare(o.Uses, p.Uses),
		cmp.Compare(o.MaxUses, p.MaxUses),
	)
}

// ToContainer writes the offer; the second stack only when present.
func (o TradeOffer) ToContainer() *view.Node {
	n := view.NewMap().
		Set(offerBuy, o.Buy.ID()).
		Set(offerBuyCount, o.BuyCount)
	if o.SecondBuy != "" {
		n.Set(offerSecondBuy, o.SecondBuy.ID()).Set(offerSecondBuyCount, o.SecondBuyCount)
	}
	return n.
		Set(offerSell, o.Sell.ID()).
		Set(offerSellCount, o.SellCount).
		Set(offerUses, o.Uses).
		Set(offerMaxUses, o.MaxUses)
}

// TradeOfferFromView reads an offer written by ToContainer. Buy and Sell
// are required; counts default to zero.
func TradeOfferFromView(n *view.Node) (TradeOffer, error) {
	var o TradeOffer
	var err error
	if o.Buy, err = itemAt(n, offerBuy, true); err != nil {
		return o, err
	}
	if o.SecondBuy, err = itemAt(n, offerSecondBuy, false); err != nil {
		return o, err
	}
	if o.Sell, err = itemAt(n, offerSell, true); err != nil {
		return o, err
	}
	for _, f := range []struct {
		q   view.Query
		dst *int
	}{
		{offerBuyCount, &o.BuyCount},
		{offerSecondBuyCount, &o.SecondBuyCount},
		{offerSellCount, &o.SellCount},
		{offerUses, &o.Uses},
		{offerMaxUses, &o.MaxUses},
	} {
		v, _, err := n.GetInt(f.q)
		if err != nil {
			return o, err
		}
		if v < 0 {
			return o, view.Invalid(f.q, "negative count %d", v)
		}
		*f.dst = int(v)
	}
	return o, nil
}

func itemAt(n *view.Node, q view.Query, required bool) (ItemType, error) {
	s, ok, err := n.GetString(q)
	if err != nil {
		return "", err
	}
	if !ok {
		if required {
			return "", view.Invalid(q, "missing item")
		}
		return "", nil
	}
	it, err := ParseItemType(s)
	if err != nil {
		return "", view.Invalid(q, "%v", err)
	}
	return it, nil
}

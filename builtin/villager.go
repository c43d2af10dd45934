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

package builtin

import (
	"fmt"
	"slices"

	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/world"
)

func registerVillager(reg *processor.Registry, cache *intern.Cache) error {
	err := registerValue[catalog.Career](reg, &processor.ValueFuncs[*world.Villager, catalog.Career]{
		K:    keys.Career,
		Read: func(v *world.Villager) (catalog.Career, bool) { return v.Career, true },
		Write: func(v *world.Villager, c catalog.Career) error {
			v.Career = c
			return nil
		},
		Snapshot: interned(cache, keys.Career),
	})
	if err != nil {
		return err
	}
	err = registerValue[[]catalog.TradeOffer](reg, &processor.ValueFuncs[*world.Villager, []catalog.TradeOffer]{
		K:    keys.TradeOffers,
		Read: func(v *world.Villager) ([]catalog.TradeOffer, bool) { return slices.Clone(v.Offers), true },
		Write: func(v *world.Villager, offers []catalog.TradeOffer) error {
			return writeOffers(v, offers)
		},
		Delete: func(v *world.Villager) error {
			v.Offers = nil
			return nil
		},
		Snapshot: func(offers []catalog.TradeOffer) value.Immutable {
			return value.NewImmutableList(keys.TradeOffers, offers...)
		},
	})
	if err != nil {
		return err
	}
	return registerData[*data.TradeOffers](reg, &processor.DataFuncs[*world.Villager, *data.TradeOffers]{
		Read: func(v *world.Villager) (*data.TradeOffers, bool) {
			return data.NewTradeOffers(v.Offers...), true
		},
		Write: func(v *world.Villager, m *data.TradeOffers) error {
			return writeOffers(v, m.Offers().Get())
		},
		Delete: func(v *world.Villager) error {
			v.Offers = nil
			return nil
		},
		Default: func() *data.TradeOffers { return data.NewTradeOffers() },
		Decode:  data.BuildTradeOffers,
	})
}

func writeOffers(v *world.Villager, offers []catalog.TradeOffer) error {
	for i, o := range offers {
		if o.BuyCount < 0 || o.SecondBuyCount < 0 || o.SellCount < 0 || o.Uses < 0 || o.MaxUses < 0 {
			return fmt.Errorf("%w: offer %d has a negative count", processor.ErrUnsupportedData, i)
		}
	}
	v.Offers = slices.Clone(offers)
	return nil
}

func registerLog(reg *processor.Registry, cache *intern.Cache) error {
	return registerValue[catalog.Axis](reg, &processor.ValueFuncs[*world.Log, catalog.Axis]{
		K:    keys.Axis,
		Read: func(l *world.Log) (catalog.Axis, bool) { return l.Axis, true },
		Write: func(l *world.Log, a catalog.Axis) error {
			l.Axis = a
			return nil
		},
		Snapshot: interned(cache, keys.Axis),
	})
}

// Dyed leather stores its color as a packed 0xRRGGBB integer.
func isDyeable(s *world.ItemStack) bool { return s.Type == catalog.ItemLeatherTunic }

func itemColor(s *world.ItemStack) (catalog.Color, bool) {
	if s.Tag == nil {
		return catalog.Color{}, false
	}
	rgb, ok, err := s.Tag.GetInt(world.TagDyeColor)
	if err != nil || !ok || rgb < 0 || rgb > 0xffffff {
		return catalog.Color{}, false
	}
	return catalog.Color{R: uint8(rgb >> 16), G: uint8(rgb >> 8), B: uint8(rgb)}, true
}

func registerDye(reg *processor.Registry, cache *intern.Cache) error {
	return registerValue[catalog.Color](reg, &processor.ValueFuncs[*world.ItemStack, catalog.Color]{
		K:     keys.Color,
		Check: isDyeable,
		Read:  itemColor,
		Write: func(s *world.ItemStack, c catalog.Color) error {
			s.EnsureTag().Set(world.TagDyeColor, int64(c.R)<<16|int64(c.G)<<8|int64(c.B))
			return nil
		},
		Delete: func(s *world.ItemStack) error {
			s.Tag.Remove(world.TagDyeColor)
			return nil
		},
		Snapshot: interned(cache, keys.Color),
	})
}

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

package data

import (
	"fmt"
	"slices"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// TradeOffers holds the ordered trades of a villager.
type TradeOffers struct {
	offers *value.List[catalog.TradeOffer]
}

func NewTradeOffers(offers ...catalog.TradeOffer) *TradeOffers {
	return &TradeOffers{offers: value.NewList(keys.TradeOffers, offers...)}
}

func (d *TradeOffers) Offers() *value.List[catalog.TradeOffer] { return d.offers }

// AddOffer appends o and returns the receiver.
func (d *TradeOffers) AddOffer(o catalog.TradeOffer) *TradeOffers {
	d.offers.Add(o)
	return d
}

// SetOffers replaces every offer and returns the receiver.
func (d *TradeOffers) SetOffers(offers []catalog.TradeOffer) *TradeOffers {
	d.offers.Set(offers)
	return d
}

func (d *TradeOffers) Values() []value.Immutable {
	return []value.Immutable{d.offers.AsImmutable()}
}

func (d *TradeOffers) Copy() *TradeOffers {
	return &TradeOffers{offers: d.offers.AsImmutable().AsMutable()}
}

func (d *TradeOffers) CopyManipulator() apis.Manipulator { return d.Copy() }

func (d *TradeOffers) AsImmutable() *ImmutableTradeOffers {
	return &ImmutableTradeOffers{offers: d.offers.AsImmutable()}
}

func (d *TradeOffers) Compare(o *TradeOffers) int {
	return compareOffers(d.offers.Get(), o.offers.Get())
}

func (d *TradeOffers) ToContainer() *view.Node { return offersContainer(d.offers.Get()) }

func (d *TradeOffers) String() string { return fmt.Sprintf("TradeOffers{%d}", d.offers.Len()) }

// ImmutableTradeOffers is the immutable counterpart of TradeOffers.
type ImmutableTradeOffers struct {
	offers *value.ImmutableList[catalog.TradeOffer]
}

func NewImmutableTradeOffers(offers ...catalog.TradeOffer) *ImmutableTradeOffers {
	return NewTradeOffers(offers...).AsImmutable()
}

func (d *ImmutableTradeOffers) Offers() *value.ImmutableList[catalog.TradeOffer] { return d.offers }

// WithOffer returns trades extended by o.
func (d *ImmutableTradeOffers) WithOffer(o catalog.TradeOffer) *ImmutableTradeOffers {
	return &ImmutableTradeOffers{offers: d.offers.WithAppended(o)}
}

func (d *ImmutableTradeOffers) Values() []value.Immutable { return []value.Immutable{d.offers} }

func (d *ImmutableTradeOffers) AsMutable() *TradeOffers {
	return &TradeOffers{offers: d.offers.AsMutable()}
}

func (d *ImmutableTradeOffers) Compare(o *ImmutableTradeOffers) int {
	return compareOffers(d.offers.Get(), o.offers.Get())
}

func (d *ImmutableTradeOffers) ToContainer() *view.Node { return offersContainer(d.offers.Get()) }

func (d *ImmutableTradeOffers) String() string {
	return fmt.Sprintf("ImmutableTradeOffers{%d}", d.offers.Len())
}

// BuildTradeOffers reads trades written by ToContainer.
func BuildTradeOffers(n *view.Node) (*TradeOffers, bool, error) {
	q := keys.TradeOffers.Query()
	seq, ok, err := n.GetSequence(q)
	if err != nil || !ok {
		return nil, false, err
	}
	offers := make([]catalog.TradeOffer, 0, len(seq))
	for i, item := range seq {
		if item.Kind() != view.KindMap {
			return nil, false, view.Invalid(q, "offer %d is a %s", i, item.Kind())
		}
		o, err := catalog.TradeOfferFromView(item)
		if err != nil {
			return nil, false, fmt.Errorf("%s[%d]: %w", q, i, err)
		}
		offers = append(offers, o)
	}
	return NewTradeOffers(offers...), true, nil
}

func offersContainer(offers []catalog.TradeOffer) *view.Node {
	seq := make([]*view.Node, 0, len(offers))
	for _, o := range offers {
		seq = append(seq, o.ToContainer())
	}
	return view.NewMap().Set(keys.TradeOffers.Query(), seq)
}

func compareOffers(a, b []catalog.TradeOffer) int {
	return slices.CompareFunc(a, b, catalog.TradeOffer.Compare)
}

var (
	_ Mutable[*TradeOffers, *ImmutableTradeOffers]   = (*TradeOffers)(nil)
	_ Immutable[*ImmutableTradeOffers, *TradeOffers] = (*ImmutableTradeOffers)(nil)
)

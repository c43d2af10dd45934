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

// Package world provides reference host objects. They stand in for the
// native objects of an engine: plain structs with no knowledge of keys or
// manipulators, which the builtin processors read and write.
package world

import (
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/custom"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/view"
)

// Tag paths used by item stacks.
var (
	TagBlockEntity = view.Of("BlockEntityTag")
	TagBlockID     = view.Of("id")
	TagCanPlaceOn  = view.Of("CanPlaceOn")
	TagDisplayName = view.Of("display", "Name")
	TagSkullOwner  = view.Of("SkullOwner")
	TagDyeColor    = view.Of("display", "color")
)

// SignID is the block entity id written into sign item tags.
const SignID = "Sign"

// SignTextTags are the legacy line fields of a sign block entity tag.
var SignTextTags = [4]view.Query{view.Of("Text1"), view.Of("Text2"), view.Of("Text3"), view.Of("Text4")}

// Sign is a placed sign block.
type Sign struct {
	Lines [4]text.Text
}

// Skull is a placed head block.
type Skull struct {
	Type  catalog.SkullType
	Owner catalog.GameProfile
}

// Item stack container queries.
var (
	QueryItemType = view.Of("ItemType")
	QueryCount    = view.Of("Count")
	QueryDamage   = view.Of("UnsafeDamage")
	QueryTag      = view.Of("UnsafeData")
)

// ItemStack is a stack of items with an optional free-form tag.
type ItemStack struct {
	Type   catalog.ItemType
	Count  int
	Damage int
	Tag    *view.Node
}

// NewItemStack returns a single item of type t.
func NewItemStack(t catalog.ItemType) *ItemStack {
	return &ItemStack{Type: t, Count: 1}
}

// EnsureTag returns the tag, creating it when absent.
func (s *ItemStack) EnsureTag() *view.Node {
	if s.Tag == nil {
		s.Tag = view.NewMap()
	}
	return s.Tag
}

// ToContainer serializes the stack; the tag is copied.
func (s *ItemStack) ToContainer() *view.Node {
	n := view.NewMap().
		Set(QueryItemType, s.Type.ID()).
		Set(QueryCount, s.Count).
		Set(QueryDamage, s.Damage)
	if s.Tag != nil {
		n.Set(QueryTag, s.Tag)
	}
	return n
}

// Log is a wooden log block, oriented along an axis.
type Log struct {
	Axis catalog.Axis
}

// Villager is a trading villager.
type Villager struct {
	Career catalog.Career
	Offers []catalog.TradeOffer
}

// Horse is a horse entity.
type Horse struct {
	Color   catalog.HorseColor
	Style   catalog.HorseStyle
	Variant catalog.HorseVariant
}

// Enderman is an enderman entity.
type Enderman struct {
	Screaming bool
}

// Slime is a slime entity.
type Slime struct {
	Size int
}

// Farmland is a farmland block.
type Farmland struct {
	Moisture int
}

// RedstoneWire is a redstone dust block.
type RedstoneWire struct {
	Power int
}

// Living is a generic living entity. It accepts custom data.
type Living struct {
	custom.Store

	// Kind names the entity for logs, such as "zombie".
	Kind        string
	Health      float64
	MaxHealth   float64
	Name        *text.Text
	NameVisible bool
}

// NewLiving returns an entity of kind at full health.
func NewLiving(kind string, maxHealth float64) *Living {
	return &Living{Kind: kind, Health: maxHealth, MaxHealth: maxHealth}
}

// HolderName reports the entity kind.
func (l *Living) HolderName() string { return l.Kind }

// Chest is a lockable container block. It accepts custom data.
type Chest struct {
	custom.Store

	Lock  string
	Slots []*ItemStack
}

// NewChest returns an empty chest with size slots.
func NewChest(size int) *Chest {
	return &Chest{Slots: make([]*ItemStack, size)}
}

// Container queries of lockable blocks.
var (
	QueryLock     = view.Of("Lock")
	QueryContents = view.Of("Contents")
	QuerySlot     = view.Of("Slot")
	QuerySlotItem = view.Of("Item")
)

// ToContainer writes the lock code when set and every occupied slot with
// its index.
func (c *Chest) ToContainer() *view.Node {
	n := view.NewMap()
	if c.Lock != "" {
		n.Set(QueryLock, c.Lock)
	}
	items := make([]*view.Node, 0, len(c.Slots))
	for i, s := range c.Slots {
		if s == nil {
			continue
		}
		items = append(items, view.NewMap().Set(QuerySlot, i).Set(QuerySlotItem, s.ToContainer()))
	}
	n.Set(QueryContents, items)
	return n
}

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
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"dirpx.dev/dmx/view"
)

// BlockType is a namespaced block identifier such as "minecraft:stone".
type BlockType string

// Common block types.
const (
	BlockStone        BlockType = "minecraft:stone"
	BlockDirt         BlockType = "minecraft:dirt"
	BlockGrass        BlockType = "minecraft:grass"
	BlockPlanks       BlockType = "minecraft:planks"
	BlockFarmland     BlockType = "minecraft:farmland"
	BlockRedstone     BlockType = "minecraft:redstone_wire"
	BlockStandingSign BlockType = "minecraft:standing_sign"
	BlockSkull        BlockType = "minecraft:skull"
	BlockChest        BlockType = "minecraft:chest"
)

// ParseBlockType normalizes an ID, adding the default namespace when absent.
func ParseBlockType(s string) (BlockType, error) {
	id, err := namespaced(s)
	return BlockType(id), err
}

// ID returns the namespaced identifier.
func (b BlockType) ID() string { return string(b) }

// ItemType is a namespaced item identifier.
type ItemType string

// Item types the built-in processors understand.
const (
	ItemSign  ItemType = "minecraft:sign"
	ItemSkull ItemType = "minecraft:skull"
	ItemStone ItemType = "minecraft:stone"
	ItemDirt  ItemType = "minecraft:dirt"
	ItemPick  ItemType = "minecraft:diamond_pickaxe"
)

// ParseItemType normalizes an ID, adding the default namespace when absent.
func ParseItemType(s string) (ItemType, error) {
	id, err := namespaced(s)
	return ItemType(id), err
}

// ID returns the namespaced identifier.
func (i ItemType) ID() string { return string(i) }

func namespaced(s string) (string, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("%w: empty id", ErrUnknownID)
	}
	if !strings.Contains(s, ":") {
		s = "minecraft:" + s
	}
	return s, nil
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// MarshalText renders "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte("#" + hex.EncodeToString([]byte{c.R, c.G, c.B})), nil
}

// UnmarshalText parses "#rrggbb".
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 3 {
		return fmt.Errorf("%w: color %q", ErrUnknownID, string(text))
	}
	c.R, c.G, c.B = b[0], b[1], b[2]
	return nil
}

// GameProfile identifies a player.
type GameProfile struct {
	ID   uuid.UUID
	Name string
}

// NullProfile is the profile of a head with no owner.
var NullProfile = GameProfile{}

var (
	profileID   = view.Of("Id")
	profileName = view.Of("Name")
)

// IsNull reports whether p carries neither id nor name.
func (p GameProfile) IsNull() bool { return p.ID == uuid.Nil && p.Name == "" }

// Compare orders profiles by unique id, then name.
func (p GameProfile) Compare(o GameProfile) int {
	if c := strings.Compare(p.ID.String(), o.ID.String()); c != 0 {
		return c
	}
	return strings.Compare(p.Name, o.Name)
}

// ToContainer writes the present fields only.
func (p GameProfile) ToContainer() *view.Node {
	n := view.NewMap()
	if p.ID != uuid.Nil {
		n.Set(profileID, p.ID.String())
	}
	if p.Name != "" {
		n.Set(profileName, p.Name)
	}
	return n
}

// ProfileFromView reads a profile written by ToContainer. An empty mapping
// yields NullProfile.
func ProfileFromView(n *view.Node) (GameProfile, error) {
	var p GameProfile
	id, ok, err := n.GetString(profileID)
	if err != nil {
		return p, err
	}
	if ok {
		p.ID, err = uuid.Parse(id)
		if err != nil {
			return p, view.Invalid(profileID, "bad uuid %q", id)
		}
	}
	name, _, err := n.GetString(profileName)
	if err != nil {
		return p, err
	}
	p.Name = name
	return p, nil
}

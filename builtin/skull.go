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
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/world"
)

func isSkullItem(s *world.ItemStack) bool { return s.Type == catalog.ItemSkull }

// itemSkullType decodes the damage of a skull item.
func itemSkullType(s *world.ItemStack) (catalog.SkullType, bool) {
	all := catalog.AllSkullTypes()
	if s.Damage < 0 || s.Damage >= len(all) {
		return 0, false
	}
	return all[s.Damage], true
}

func tileOwner(s *world.Skull) (catalog.GameProfile, bool) {
	return s.Owner, s.Type == catalog.SkullPlayer && !s.Owner.IsNull()
}

func writeTileOwner(s *world.Skull, p catalog.GameProfile) error {
	s.Type, s.Owner = catalog.SkullPlayer, p
	return nil
}

func deleteTileOwner(s *world.Skull) error {
	s.Owner = catalog.NullProfile
	return nil
}

func itemOwner(s *world.ItemStack) (catalog.GameProfile, bool) {
	if s.Tag == nil || s.Damage != catalog.SkullPlayer.Ordinal() {
		return catalog.NullProfile, false
	}
	n, ok, err := s.Tag.GetMap(world.TagSkullOwner)
	if err != nil || !ok {
		return catalog.NullProfile, false
	}
	p, err := catalog.ProfileFromView(n)
	if err != nil || p.IsNull() {
		return catalog.NullProfile, false
	}
	return p, true
}

func writeItemOwner(s *world.ItemStack, p catalog.GameProfile) error {
	s.Damage = catalog.SkullPlayer.Ordinal()
	s.EnsureTag().Set(world.TagSkullOwner, p.ToContainer())
	return nil
}

func deleteItemOwner(s *world.ItemStack) error {
	s.Tag.Remove(world.TagSkullOwner)
	return nil
}

func registerSkull(reg *processor.Registry, cache *intern.Cache) error {
	skullSnap := interned(cache, keys.SkullType)
	err := registerValue[catalog.SkullType](reg,
		&processor.ValueFuncs[*world.Skull, catalog.SkullType]{
			K:    keys.SkullType,
			Read: func(s *world.Skull) (catalog.SkullType, bool) { return s.Type, true },
			Write: func(s *world.Skull, t catalog.SkullType) error {
				s.Type = t
				return nil
			},
			Snapshot: skullSnap,
		},
		&processor.ValueFuncs[*world.ItemStack, catalog.SkullType]{
			K:    keys.SkullType,
			Read: itemSkullType,
			Write: func(s *world.ItemStack, t catalog.SkullType) error {
				s.Damage = t.Ordinal()
				return nil
			},
			Check:    isSkullItem,
			Snapshot: skullSnap,
		},
	)
	if err != nil {
		return err
	}

	ownerSnap := interned(cache, keys.RepresentedPlayer)
	err = registerValue[catalog.GameProfile](reg,
		&processor.ValueFuncs[*world.Skull, catalog.GameProfile]{
			K:        keys.RepresentedPlayer,
			Read:     tileOwner,
			Write:    writeTileOwner,
			Delete:   deleteTileOwner,
			Snapshot: ownerSnap,
		},
		&processor.ValueFuncs[*world.ItemStack, catalog.GameProfile]{
			K:        keys.RepresentedPlayer,
			Read:     itemOwner,
			Write:    writeItemOwner,
			Delete:   deleteItemOwner,
			Check:    isSkullItem,
			Snapshot: ownerSnap,
		},
	)
	if err != nil {
		return err
	}

	defaultOwner := func() *data.RepresentedPlayer { return data.NewRepresentedPlayer(catalog.NullProfile) }
	return registerData[*data.RepresentedPlayer](reg,
		&processor.DataFuncs[*world.Skull, *data.RepresentedPlayer]{
			Read: func(s *world.Skull) (*data.RepresentedPlayer, bool) {
				p, ok := tileOwner(s)
				if !ok {
					return nil, false
				}
				return data.NewRepresentedPlayer(p), true
			},
			Write: func(s *world.Skull, m *data.RepresentedPlayer) error {
				return writeTileOwner(s, m.Owner().Get())
			},
			Delete:  deleteTileOwner,
			Default: defaultOwner,
			Decode:  data.BuildRepresentedPlayer,
		},
		&processor.DataFuncs[*world.ItemStack, *data.RepresentedPlayer]{
			Read: func(s *world.ItemStack) (*data.RepresentedPlayer, bool) {
				p, ok := itemOwner(s)
				if !ok {
					return nil, false
				}
				return data.NewRepresentedPlayer(p), true
			},
			Write: func(s *world.ItemStack, m *data.RepresentedPlayer) error {
				return writeItemOwner(s, m.Owner().Get())
			},
			Delete:  deleteItemOwner,
			Default: defaultOwner,
			Decode:  data.BuildRepresentedPlayer,
			Check:   isSkullItem,
		},
	)
}

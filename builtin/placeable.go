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
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/world"
)

type blockSet = map[catalog.BlockType]struct{}

// itemPlaceable reads the CanPlaceOn tag. Malformed entries are skipped.
func itemPlaceable(s *world.ItemStack) (blockSet, bool) {
	if s.Tag == nil {
		return nil, false
	}
	ids, ok, err := s.Tag.GetStrings(world.TagCanPlaceOn)
	if err != nil || !ok {
		return nil, false
	}
	out := make(blockSet, len(ids))
	for _, id := range ids {
		if b, err := catalog.ParseBlockType(id); err == nil {
			out[b] = struct{}{}
		}
	}
	return out, true
}

func writeItemPlaceable(s *world.ItemStack, blocks blockSet) error {
	ids := make([]string, 0, len(blocks))
	for _, b := range value.Sorted(blocks) {
		ids = append(ids, b.ID())
	}
	s.EnsureTag().Set(world.TagCanPlaceOn, ids)
	return nil
}

func deleteItemPlaceable(s *world.ItemStack) error {
	s.Tag.Remove(world.TagCanPlaceOn)
	return nil
}

func registerPlaceable(reg *processor.Registry, _ *intern.Cache) error {
	err := registerValue[blockSet](reg, &processor.ValueFuncs[*world.ItemStack, blockSet]{
		K:      keys.PlaceableBlocks,
		Read:   itemPlaceable,
		Write:  writeItemPlaceable,
		Delete: deleteItemPlaceable,
		Snapshot: func(v blockSet) value.Immutable {
			return value.NewImmutableSet(keys.PlaceableBlocks, value.Sorted(v)...)
		},
	})
	if err != nil {
		return err
	}
	return registerData[*data.Placeable](reg, &processor.DataFuncs[*world.ItemStack, *data.Placeable]{
		Read: func(s *world.ItemStack) (*data.Placeable, bool) {
			blocks, ok := itemPlaceable(s)
			if !ok {
				return nil, false
			}
			return data.NewPlaceable(value.Sorted(blocks)...), true
		},
		Write: func(s *world.ItemStack, m *data.Placeable) error {
			return writeItemPlaceable(s, m.Blocks().Get())
		},
		Delete:  deleteItemPlaceable,
		Default: func() *data.Placeable { return data.NewPlaceable() },
		Decode:  data.BuildPlaceable,
	})
}

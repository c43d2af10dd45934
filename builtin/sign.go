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
	"strings"

	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/data"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
	"dirpx.dev/dmx/world"
)

func signSnapshot(lines []text.Text) value.Immutable {
	return value.NewImmutableList(keys.SignLines, lines...)
}

func tileLines(s *world.Sign) ([]text.Text, bool) {
	out := make([]text.Text, len(s.Lines))
	for i, l := range s.Lines {
		out[i] = l.Clone()
	}
	return out, true
}

func writeTileLines(s *world.Sign, lines []text.Text) error {
	if len(lines) > len(s.Lines) {
		return fmt.Errorf("%w: a sign holds %d lines, got %d", processor.ErrUnsupportedData, len(s.Lines), len(lines))
	}
	for i := range s.Lines {
		s.Lines[i] = text.Text{}
		if i < len(lines) {
			s.Lines[i] = lines[i].Clone()
		}
	}
	return nil
}

func isSignItem(s *world.ItemStack) bool { return s.Type == catalog.ItemSign }

// itemLines reads the legacy lines of a sign item's block entity tag.
func itemLines(s *world.ItemStack) ([]text.Text, bool) {
	if s.Tag == nil {
		return nil, false
	}
	tile, ok, err := s.Tag.GetMap(world.TagBlockEntity)
	if err != nil || !ok {
		return nil, false
	}
	id, _, err := tile.GetString(world.TagBlockID)
	if err != nil || !strings.EqualFold(id, world.SignID) {
		return nil, false
	}
	lines := make([]text.Text, len(world.SignTextTags))
	for i, q := range world.SignTextTags {
		raw, _, err := tile.GetString(q)
		if err != nil {
			return nil, false
		}
		lines[i] = text.ParseLegacy(raw)
	}
	return lines, true
}

func writeItemLines(s *world.ItemStack, lines []text.Text) error {
	if len(lines) > len(world.SignTextTags) {
		return fmt.Errorf("%w: a sign holds %d lines, got %d", processor.ErrUnsupportedData, len(world.SignTextTags), len(lines))
	}
	tile := view.NewMap().Set(world.TagBlockID, world.SignID)
	for i, q := range world.SignTextTags {
		var line text.Text
		if i < len(lines) {
			line = lines[i]
		}
		tile.Set(q, text.Legacy(line))
	}
	s.EnsureTag().Set(world.TagBlockEntity, tile)
	return nil
}

func deleteItemLines(s *world.ItemStack) error {
	s.Tag.Remove(world.TagBlockEntity)
	return nil
}

func registerSign(reg *processor.Registry, _ *intern.Cache) error {
	err := registerValue[[]text.Text](reg,
		&processor.ValueFuncs[*world.Sign, []text.Text]{
			K:        keys.SignLines,
			Read:     tileLines,
			Write:    writeTileLines,
			Snapshot: signSnapshot,
		},
		&processor.ValueFuncs[*world.ItemStack, []text.Text]{
			K:        keys.SignLines,
			Read:     itemLines,
			Write:    writeItemLines,
			Delete:   deleteItemLines,
			Check:    isSignItem,
			Snapshot: signSnapshot,
		},
	)
	if err != nil {
		return err
	}
	return registerData[*data.Sign](reg,
		&processor.DataFuncs[*world.Sign, *data.Sign]{
			Read: func(s *world.Sign) (*data.Sign, bool) {
				lines, _ := tileLines(s)
				return data.NewSign(lines...), true
			},
			Write: func(s *world.Sign, m *data.Sign) error {
				return writeTileLines(s, m.Lines().Get())
			},
			Default: func() *data.Sign { return data.NewSign() },
			Decode:  data.BuildSign,
		},
		&processor.DataFuncs[*world.ItemStack, *data.Sign]{
			Read: func(s *world.ItemStack) (*data.Sign, bool) {
				lines, ok := itemLines(s)
				if !ok {
					return nil, false
				}
				return data.NewSign(lines...), true
			},
			Write: func(s *world.ItemStack, m *data.Sign) error {
				return writeItemLines(s, m.Lines().Get())
			},
			Delete:  deleteItemLines,
			Default: func() *data.Sign { return data.NewSign() },
			Decode:  data.BuildSign,
			Check:   isSignItem,
		},
	)
}

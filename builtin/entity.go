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

func registerHorse(reg *processor.Registry, cache *intern.Cache) error {
	err := registerValue[catalog.HorseColor](reg, &processor.ValueFuncs[*world.Horse, catalog.HorseColor]{
		K:    keys.HorseColor,
		Read: func(h *world.Horse) (catalog.HorseColor, bool) { return h.Color, true },
		Write: func(h *world.Horse, v catalog.HorseColor) error {
			h.Color = v
			return nil
		},
		Snapshot: interned(cache, keys.HorseColor),
	})
	if err != nil {
		return err
	}
	err = registerValue[catalog.HorseStyle](reg, &processor.ValueFuncs[*world.Horse, catalog.HorseStyle]{
		K:    keys.HorseStyle,
		Read: func(h *world.Horse) (catalog.HorseStyle, bool) { return h.Style, true },
		Write: func(h *world.Horse, v catalog.HorseStyle) error {
			h.Style = v
			return nil
		},
		Snapshot: interned(cache, keys.HorseStyle),
	})
	if err != nil {
		return err
	}
	err = registerValue[catalog.HorseVariant](reg, &processor.ValueFuncs[*world.Horse, catalog.HorseVariant]{
		K:    keys.HorseVariant,
		Read: func(h *world.Horse) (catalog.HorseVariant, bool) { return h.Variant, true },
		Write: func(h *world.Horse, v catalog.HorseVariant) error {
			h.Variant = v
			return nil
		},
		Snapshot: interned(cache, keys.HorseVariant),
	})
	if err != nil {
		return err
	}
	return registerData[*data.Horse](reg, &processor.DataFuncs[*world.Horse, *data.Horse]{
		Read: func(h *world.Horse) (*data.Horse, bool) {
			return data.NewHorse(h.Color, h.Style, h.Variant), true
		},
		Write: func(h *world.Horse, m *data.Horse) error {
			h.Color, h.Style, h.Variant = m.Color().Get(), m.Style().Get(), m.Variant().Get()
			return nil
		},
		Default: func() *data.Horse {
			return data.NewHorse(catalog.HorseWhite, catalog.StyleNone, catalog.VariantHorse)
		},
		Decode: data.BuildHorse,
	})
}

func registerScreaming(reg *processor.Registry, cache *intern.Cache) error {
	err := registerValue[bool](reg, &processor.ValueFuncs[*world.Enderman, bool]{
		K:    keys.IsScreaming,
		Read: func(e *world.Enderman) (bool, bool) { return e.Screaming, true },
		Write: func(e *world.Enderman, v bool) error {
			e.Screaming = v
			return nil
		},
		Snapshot: interned(cache, keys.IsScreaming),
	})
	if err != nil {
		return err
	}
	return registerData[*data.Screaming](reg, &processor.DataFuncs[*world.Enderman, *data.Screaming]{
		Read: func(e *world.Enderman) (*data.Screaming, bool) {
			return data.NewScreaming(e.Screaming), true
		},
		Write: func(e *world.Enderman, m *data.Screaming) error {
			e.Screaming = m.Screaming().Get()
			return nil
		},
		Default: func() *data.Screaming { return data.NewScreaming(false) },
		Decode:  data.BuildScreaming,
	})
}

// registerSizes wires the bounded integers of slimes, farmland and
// redstone wire.
func registerSizes(reg *processor.Registry, cache *intern.Cache) error {
	err := registerValue[int](reg, &processor.ValueFuncs[*world.Slime, int]{
		K:    keys.SlimeSize,
		Read: func(s *world.Slime) (int, bool) { return s.Size, true },
		Write: func(s *world.Slime, v int) error {
			if err := checkRange(keys.SlimeSize, v, data.MinSlimeSize, data.MaxSlimeSize); err != nil {
				return err
			}
			s.Size = v
			return nil
		},
		Snapshot: boundedSnapshot(cache, keys.SlimeSize, data.MinSlimeSize, data.MaxSlimeSize, data.MinSlimeSize),
	})
	if err != nil {
		return err
	}
	err = registerData[*data.Slime](reg, &processor.DataFuncs[*world.Slime, *data.Slime]{
		Read: func(s *world.Slime) (*data.Slime, bool) {
			m, err := data.NewSlime(s.Size)
			return m, err == nil
		},
		Write: func(s *world.Slime, m *data.Slime) error {
			s.Size = m.Size().Get()
			return nil
		},
		Default: func() *data.Slime {
			m, _ := data.NewSlime(data.MinSlimeSize)
			return m
		},
		Decode: data.BuildSlime,
	})
	if err != nil {
		return err
	}

	err = registerValue[int](reg, &processor.ValueFuncs[*world.Farmland, int]{
		K:    keys.Moisture,
		Read: func(f *world.Farmland) (int, bool) { return f.Moisture, true },
		Write: func(f *world.Farmland, v int) error {
			if err := checkRange(keys.Moisture, v, data.MinMoisture, data.MaxMoisture); err != nil {
				return err
			}
			f.Moisture = v
			return nil
		},
		Snapshot: boundedSnapshot(cache, keys.Moisture, data.MinMoisture, data.MaxMoisture, data.MinMoisture),
	})
	if err != nil {
		return err
	}
	err = registerData[*data.Moisture](reg, &processor.DataFuncs[*world.Farmland, *data.Moisture]{
		Read: func(f *world.Farmland) (*data.Moisture, bool) {
			m, err := data.NewMoisture(f.Moisture)
			return m, err == nil
		},
		Write: func(f *world.Farmland, m *data.Moisture) error {
			f.Moisture = m.Moisture().Get()
			return nil
		},
		Default: func() *data.Moisture {
			m, _ := data.NewMoisture(data.MinMoisture)
			return m
		},
		Decode: data.BuildMoisture,
	})
	if err != nil {
		return err
	}

	err = registerValue[int](reg, &processor.ValueFuncs[*world.RedstoneWire, int]{
		K:    keys.Power,
		Read: func(w *world.RedstoneWire) (int, bool) { return w.Power, true },
		Write: func(w *world.RedstoneWire, v int) error {
			if err := checkRange(keys.Power, v, data.MinPower, data.MaxPower); err != nil {
				return err
			}
			w.Power = v
			return nil
		},
		Snapshot: boundedSnapshot(cache, keys.Power, data.MinPower, data.MaxPower, data.MinPower),
	})
	if err != nil {
		return err
	}
	return registerData[*data.RedstonePowered](reg, &processor.DataFuncs[*world.RedstoneWire, *data.RedstonePowered]{
		Read: func(w *world.RedstoneWire) (*data.RedstonePowered, bool) {
			m, err := data.NewRedstonePowered(w.Power)
			return m, err == nil
		},
		Write: func(w *world.RedstoneWire, m *data.RedstonePowered) error {
			w.Power = m.Power().Get()
			return nil
		},
		Default: func() *data.RedstonePowered {
			m, _ := data.NewRedstonePowered(data.MinPower)
			return m
		},
		Decode: data.BuildRedstonePowered,
	})
}

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
	"cmp"
	"fmt"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// Horse holds the appearance traits of a horse.
type Horse struct {
	color   *value.Plain[catalog.HorseColor]
	style   *value.Plain[catalog.HorseStyle]
	variant *value.Plain[catalog.HorseVariant]
}

// NewHorse returns horse data with the given traits.
func NewHorse(c catalog.HorseColor, s catalog.HorseStyle, v catalog.HorseVariant) *Horse {
	return &Horse{
		color:   value.New(keys.HorseColor, c),
		style:   value.New(keys.HorseStyle, s),
		variant: value.New(keys.HorseVariant, v),
	}
}

func (h *Horse) Color() *value.Plain[catalog.HorseColor] { return h.color }

func (h *Horse) Style() *value.Plain[catalog.HorseStyle] { return h.style }

func (h *Horse) Variant() *value.Plain[catalog.HorseVariant] { return h.variant }

func (h *Horse) Values() []value.Immutable {
	return []value.Immutable{h.color.AsImmutable(), h.style.AsImmutable(), h.variant.AsImmutable()}
}

func (h *Horse) Copy() *Horse { return NewHorse(h.color.Get(), h.style.Get(), h.variant.Get()) }

func (h *Horse) CopyManipulator() apis.Manipulator { return h.Copy() }

func (h *Horse) AsImmutable() *ImmutableHorse {
	return NewImmutableHorse(h.color.Get(), h.style.Get(), h.variant.Get())
}

func (h *Horse) Compare(o *Horse) int {
	return compareHorse(h.color.Get(), h.style.Get(), h.variant.Get(), o.color.Get(), o.style.Get(), o.variant.Get())
}

func (h *Horse) ToContainer() *view.Node {
	return horseContainer(h.color.Get(), h.style.Get(), h.variant.Get())
}

func (h *Horse) String() string {
	return fmt.Sprintf("Horse{%s %s %s}", h.color.Get(), h.style.Get(), h.variant.Get())
}

// ImmutableHorse is the immutable counterpart of Horse.
type ImmutableHorse struct {
	color   *value.ImmutablePlain[catalog.HorseColor]
	style   *value.ImmutablePlain[catalog.HorseStyle]
	variant *value.ImmutablePlain[catalog.HorseVariant]
}

// NewImmutableHorse returns immutable horse data with the given traits.
func NewImmutableHorse(c catalog.HorseColor, s catalog.HorseStyle, v catalog.HorseVariant) *ImmutableHorse {
	return &ImmutableHorse{
		color:   value.NewImmutable(keys.HorseColor, c),
		style:   value.NewImmutable(keys.HorseStyle, s),
		variant: value.NewImmutable(keys.HorseVariant, v),
	}
}

// ImmutableHorseOf assembles immutable horse data from existing values,
// typically canonical ones from an interning cache.
func ImmutableHorseOf(
	c *value.ImmutablePlain[catalog.HorseColor],
	s *value.ImmutablePlain[catalog.HorseStyle],
	v *value.ImmutablePlain[catalog.HorseVariant],
) *ImmutableHorse {
	return &ImmutableHorse{color: c, style: s, variant: v}
}

func (h *ImmutableHorse) Color() *value.ImmutablePlain[catalog.HorseColor] { return h.color }

func (h *ImmutableHorse) Style() *value.ImmutablePlain[catalog.HorseStyle] { return h.style }

func (h *ImmutableHorse) Variant() *value.ImmutablePlain[catalog.HorseVariant] { return h.variant }

func (h *ImmutableHorse) Values() []value.Immutable {
	return []value.Immutable{h.color, h.style, h.variant}
}

func (h *ImmutableHorse) AsMutable() *Horse {
	return NewHorse(h.color.Get(), h.style.Get(), h.variant.Get())
}

func (h *ImmutableHorse) Compare(o *ImmutableHorse) int {
	return compareHorse(h.color.Get(), h.style.Get(), h.variant.Get(), o.color.Get(), o.style.Get(), o.variant.Get())
}

func (h *ImmutableHorse) ToContainer() *view.Node {
	return horseContainer(h.color.Get(), h.style.Get(), h.variant.Get())
}

func (h *ImmutableHorse) String() string {
	return fmt.Sprintf("ImmutableHorse{%s %s %s}", h.color.Get(), h.style.Get(), h.variant.Get())
}

// BuildHorse reads horse data; all three traits are required.
func BuildHorse(n *view.Node) (*Horse, bool, error) {
	c, ok, err := readID(n, keys.HorseColor, catalog.ParseHorseColor)
	if err != nil || !ok {
		return nil, false, err
	}
	s, ok, err := readID(n, keys.HorseStyle, catalog.ParseHorseStyle)
	if err != nil || !ok {
		return nil, false, err
	}
	v, ok, err := readID(n, keys.HorseVariant, catalog.ParseHorseVariant)
	if err != nil || !ok {
		return nil, false, err
	}
	return NewHorse(c, s, v), true, nil
}

func horseContainer(c catalog.HorseColor, s catalog.HorseStyle, v catalog.HorseVariant) *view.Node {
	return view.NewMap().
		Set(keys.HorseColor.Query(), c.ID()).
		Set(keys.HorseStyle.Query(), s.ID()).
		Set(keys.HorseVariant.Query(), v.ID())
}

func compareHorse(c1 catalog.HorseColor, s1 catalog.HorseStyle, v1 catalog.HorseVariant,
	c2 catalog.HorseColor, s2 catalog.HorseStyle, v2 catalog.HorseVariant) int {
	return cmp.Or(
		cmp.Compare(c1.Ordinal(), c2.Ordinal()),
		cmp.Compare(s1.Ordinal(), s2.Ordinal()),
		cmp.Compare(v1.Ordinal(), v2.Ordinal()),
	)
}

var (
	_ Mutable[*Horse, *ImmutableHorse]   = (*Horse)(nil)
	_ Immutable[*ImmutableHorse, *Horse] = (*ImmutableHorse)(nil)
)

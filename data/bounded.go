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
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// Slime holds the size of a slime.
type Slime struct {
	size *value.Bounded[int]
}

// NewSlime fails with a *value.RangeError outside [MinSlimeSize, MaxSlimeSize].
func NewSlime(size int) (*Slime, error) {
	v, err := value.NewBounded(keys.SlimeSize, size, MinSlimeSize, MaxSlimeSize, MinSlimeSize)
	if err != nil {
		return nil, err
	}
	return &Slime{size: v}, nil
}

func (d *Slime) Size() *value.Bounded[int] { return d.size }

func (d *Slime) Values() []value.Immutable { return []value.Immutable{d.size.AsImmutable()} }

func (d *Slime) Copy() *Slime { return &Slime{size: d.size.AsImmutable().AsMutable()} }

func (d *Slime) CopyManipulator() apis.Manipulator { return d.Copy() }

func (d *Slime) AsImmutable() *ImmutableSlime { return &ImmutableSlime{size: d.size.AsImmutable()} }

func (d *Slime) Compare(o *Slime) int { return cmp.Compare(d.size.Get(), o.size.Get()) }

func (d *Slime) ToContainer() *view.Node {
	return view.NewMap().Set(keys.SlimeSize.Query(), d.size.Get())
}

func (d *Slime) String() string { return fmt.Sprintf("Slime{%d}", d.size.Get()) }

// ImmutableSlime is the immutable counterpart of Slime.
type ImmutableSlime struct {
	size *value.ImmutableBounded[int]
}

func NewImmutableSlime(size int) (*ImmutableSlime, error) {
	d, err := NewSlime(size)
	if err != nil {
		return nil, err
	}
	return d.AsImmutable(), nil
}

// ImmutableSlimeOf wraps an existing, possibly interned, value.
func ImmutableSlimeOf(v *value.ImmutableBounded[int]) *ImmutableSlime {
	return &ImmutableSlime{size: v}
}

func (d *ImmutableSlime) Size() *value.ImmutableBounded[int] { return d.size }

func (d *ImmutableSlime) Values() []value.Immutable { return []value.Immutable{d.size} }

func (d *ImmutableSlime) AsMutable() *Slime { return &Slime{size: d.size.AsMutable()} }

func (d *ImmutableSlime) Compare(o *ImmutableSlime) int { return cmp.Compare(d.size.Get(), o.size.Get()) }

func (d *ImmutableSlime) ToContainer() *view.Node {
	return view.NewMap().Set(keys.SlimeSize.Query(), d.size.Get())
}

func (d *ImmutableSlime) String() string { return fmt.Sprintf("ImmutableSlime{%d}", d.size.Get()) }

// BuildSlime reads slime data; out of range values are invalid.
func BuildSlime(n *view.Node) (*Slime, bool, error) {
	v, ok, err := readInt(n, keys.SlimeSize, MinSlimeSize, MaxSlimeSize)
	if err != nil || !ok {
		return nil, false, err
	}
	d, err := NewSlime(v)
	return d, err == nil, err
}

// Moisture holds the moisture of farmland.
type Moisture struct {
	moisture *value.Bounded[int]
}

// NewMoisture fails with a *value.RangeError outside [MinMoisture, MaxMoisture].
func NewMoisture(moisture int) (*Moisture, error) {
	v, err := value.NewBounded(keys.Moisture, moisture, MinMoisture, MaxMoisture, MinMoisture)
	if err != nil {
		return nil, err
	}
	return &Moisture{moisture: v}, nil
}

func (d *Moisture) Moisture() *value.Bounded[int] { return d.moisture }

func (d *Moisture) Values() []value.Immutable { return []value.Immutable{d.moisture.AsImmutable()} }

func (d *Moisture) Copy() *Moisture { return &Moisture{moisture: d.moisture.AsImmutable().AsMutable()} }

func (d *Moisture) CopyManipulator() apis.Manipulator { return d.Copy() }

func (d *Moisture) AsImmutable() *ImmutableMoisture { return &ImmutableMoisture{moisture: d.moisture.AsImmutable()} }

func (d *Moisture) Compare(o *Moisture) int { return cmp.Compare(d.moisture.Get(), o.moisture.Get()) }

func (d *Moisture) ToContainer() *view.Node {
	return view.NewMap().Set(keys.Moisture.Query(), d.moisture.Get())
}

func (d *Moisture) String() string { return fmt.Sprintf("Moisture{%d}", d.moisture.Get()) }

// ImmutableMoisture is the immutable counterpart of Moisture.
type ImmutableMoisture struct {
	moisture *value.ImmutableBounded[int]
}

func NewImmutableMoisture(moisture int) (*ImmutableMoisture, error) {
	d, err := NewMoisture(moisture)
	if err != nil {
		return nil, err
	}
	return d.AsImmutable(), nil
}

// ImmutableMoistureOf wraps an existing, possibly interned, value.
func ImmutableMoistureOf(v *value.ImmutableBounded[int]) *ImmutableMoisture {
	return &ImmutableMoisture{moisture: v}
}

func (d *ImmutableMoisture) Moisture() *value.ImmutableBounded[int] { return d.moisture }

func (d *ImmutableMoisture) Values() []value.Immutable { return []value.Immutable{d.moisture} }

func (d *ImmutableMoisture) AsMutable() *Moisture { return &Moisture{moisture: d.moisture.AsMutable()} }

func (d *ImmutableMoisture) Compare(o *ImmutableMoisture) int { return cmp.Compare(d.moisture.Get(), o.moisture.Get()) }

func (d *ImmutableMoisture) ToContainer() *view.Node {
	return view.NewMap().Set(keys.Moisture.Query(), d.moisture.Get())
}

func (d *ImmutableMoisture) String() string { return fmt.Sprintf("ImmutableMoisture{%d}", d.moisture.Get()) }

// BuildMoisture reads moisture data; out of range values are invalid.
func BuildMoisture(n *view.Node) (*Moisture, bool, error) {
	v, ok, err := readInt(n, keys.Moisture, MinMoisture, MaxMoisture)
	if err != nil || !ok {
		return nil, false, err
	}
	d, err := NewMoisture(v)
	return d, err == nil, err
}

// RedstonePowered holds the redstone power level of a block.
type RedstonePowered struct {
	power *value.Bounded[int]
}

// NewRedstonePowered fails with a *value.RangeError outside [MinPower, MaxPower].
func NewRedstonePowered(power int) (*RedstonePowered, error) {
	v, err := value.NewBounded(keys.Power, power, MinPower, MaxPower, MinPower)
	if err != nil {
		return nil, err
	}
	return &RedstonePowered{power: v}, nil
}

func (d *RedstonePowered) Power() *value.Bounded[int] { return d.power }

func (d *RedstonePowered) Values() []value.Immutable { return []value.Immutable{d.power.AsImmutable()} }

func (d *RedstonePowered) Copy() *RedstonePowered { return &RedstonePowered{power: d.power.AsImmutable().AsMutable()} }

func (d *RedstonePowered) CopyManipulator() apis.Manipulator { return d.Copy() }

func (d *RedstonePowered) AsImmutable() *ImmutableRedstonePowered { return &ImmutableRedstonePowered{power: d.power.AsImmutable()} }

func (d *RedstonePowered) Compare(o *RedstonePowered) int { return cmp.Compare(d.power.Get(), o.power.Get()) }

func (d *RedstonePowered) ToContainer() *view.Node {
	return view.NewMap().Set(keys.Power.Query(), d.power.Get())
}

func (d *RedstonePowered) String() string { return fmt.Sprintf("RedstonePowered{%d}", d.power.Get()) }

// ImmutableRedstonePowered is the immutable counterpart of RedstonePowered.
type ImmutableRedstonePowered struct {
	power *value.ImmutableBounded[int]
}

func NewImmutableRedstonePowered(power int) (*ImmutableRedstonePowered, error) {
	d, err := NewRedstonePowered(power)
	if err != nil {
		return nil, err
	}
	return d.AsImmutable(), nil
}

// ImmutableRedstonePoweredOf wraps an existing, possibly interned, value.
func ImmutableRedstonePoweredOf(v *value.ImmutableBounded[int]) *ImmutableRedstonePowered {
	return &ImmutableRedstonePowered{power: v}
}

func (d *ImmutableRedstonePowered) Power() *value.ImmutableBounded[int] { return d.power }

func (d *ImmutableRedstonePowered) Values() []value.Immutable { return []value.Immutable{d.power} }

func (d *ImmutableRedstonePowered) AsMutable() *RedstonePowered { return &RedstonePowered{power: d.power.AsMutable()} }

func (d *ImmutableRedstonePowered) Compare(o *ImmutableRedstonePowered) int { return cmp.Compare(d.power.Get(), o.power.Get()) }

func (d *ImmutableRedstonePowered) ToContainer() *view.Node {
	return view.NewMap().Set(keys.Power.Query(), d.power.Get())
}

func (d *ImmutableRedstonePowered) String() string { return fmt.Sprintf("ImmutableRedstonePowered{%d}", d.power.Get()) }

// BuildRedstonePowered reads power data; out of range values are invalid.
func BuildRedstonePowered(n *view.Node) (*RedstonePowered, bool, error) {
	v, ok, err := readInt(n, keys.Power, MinPower, MaxPower)
	if err != nil || !ok {
		return nil, false, err
	}
	d, err := NewRedstonePowered(v)
	return d, err == nil, err
}

var (
	_ Mutable[*Slime, *ImmutableSlime]                       = (*Slime)(nil)
	_ Immutable[*ImmutableSlime, *Slime]                     = (*ImmutableSlime)(nil)
	_ Mutable[*Moisture, *ImmutableMoisture]                 = (*Moisture)(nil)
	_ Immutable[*ImmutableMoisture, *Moisture]               = (*ImmutableMoisture)(nil)
	_ Mutable[*RedstonePowered, *ImmutableRedstonePowered]   = (*RedstonePowered)(nil)
	_ Immutable[*ImmutableRedstonePowered, *RedstonePowered] = (*ImmutableRedstonePowered)(nil)
)

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

// SkullType is the kind of head a skull block or item shows. The ordinal
// doubles as the item damage value.
type SkullType uint8

const (
	SkullSkeleton SkullType = iota
	SkullWitherSkeleton
	SkullZombie
	SkullPlayer
	SkullCreeper
)

var skullTypes = table[SkullType]{kind: "skull type", ids: []string{
	"skeleton", "wither_skeleton", "zombie", "player", "creeper",
}}

// ID returns the stable identifier.
func (v SkullType) ID() string { return skullTypes.id(v) }

// String implements fmt.Stringer.
func (v SkullType) String() string { return skullTypes.id(v) }

// Ordinal returns the declaration index.
func (v SkullType) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v SkullType) MarshalText() ([]byte, error) { return skullTypes.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SkullType) UnmarshalText(text []byte) error {
	p, err := skullTypes.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseSkullType parses an ID case-insensitively.
func ParseSkullType(s string) (SkullType, error) { return skullTypes.parse(s) }

// AllSkullTypes lists every skull type in declaration order.
func AllSkullTypes() []SkullType { return skullTypes.all() }

// HorseColor is the coat color of a horse.
type HorseColor uint8

const (
	HorseWhite HorseColor = iota
	HorseCreamy
	HorseChestnut
	HorseBrown
	HorseBlack
	HorseGray
	HorseDarkBrown
)

var horseColors = table[HorseColor]{kind: "horse color", ids: []string{
	"white", "creamy", "chestnut", "brown", "black", "gray", "dark_brown",
}}

// ID returns the stable identifier.
func (v HorseColor) ID() string { return horseColors.id(v) }

// String implements fmt.Stringer.
func (v HorseColor) String() string { return horseColors.id(v) }

// Ordinal returns the declaration index.
func (v HorseColor) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v HorseColor) MarshalText() ([]byte, error) { return horseColors.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *HorseColor) UnmarshalText(text []byte) error {
	p, err := horseColors.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseHorseColor parses an ID case-insensitively.
func ParseHorseColor(s string) (HorseColor, error) { return horseColors.parse(s) }

// AllHorseColors lists every horse color in declaration order.
func AllHorseColors() []HorseColor { return horseColors.all() }

// HorseStyle is the marking pattern of a horse.
type HorseStyle uint8

const (
	StyleNone HorseStyle = iota
	StyleWhite
	StyleWhitefield
	StyleWhiteDots
	StyleBlackDots
)

var horseStyles = table[HorseStyle]{kind: "horse style", ids: []string{
	"none", "white", "whitefield", "white_dots", "black_dots",
}}

// ID returns the stable identifier.
func (v HorseStyle) ID() string { return horseStyles.id(v) }

// String implements fmt.Stringer.
func (v HorseStyle) String() string { return horseStyles.id(v) }

// Ordinal returns the declaration index.
func (v HorseStyle) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v HorseStyle) MarshalText() ([]byte, error) { return horseStyles.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *HorseStyle) UnmarshalText(text []byte) error {
	p, err := horseStyles.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseHorseStyle parses an ID case-insensitively.
func ParseHorseStyle(s string) (HorseStyle, error) { return horseStyles.parse(s) }

// AllHorseStyles lists every horse style in declaration order.
func AllHorseStyles() []HorseStyle { return horseStyles.all() }

// HorseVariant is the species variant of a horse.
type HorseVariant uint8

const (
	VariantHorse HorseVariant = iota
	VariantDonkey
	VariantMule
	VariantUndeadHorse
	VariantSkeletonHorse
)

var horseVariants = table[HorseVariant]{kind: "horse variant", ids: []string{
	"horse", "donkey", "mule", "undead_horse", "skeleton_horse",
}}

// ID returns the stable identifier.
func (v HorseVariant) ID() string { return horseVariants.id(v) }

// String implements fmt.Stringer.
func (v HorseVariant) String() string { return horseVariants.id(v) }

// Ordinal returns the declaration index.
func (v HorseVariant) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v HorseVariant) MarshalText() ([]byte, error) { return horseVariants.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *HorseVariant) UnmarshalText(text []byte) error {
	p, err := horseVariants.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseHorseVariant parses an ID case-insensitively.
func ParseHorseVariant(s string) (HorseVariant, error) { return horseVariants.parse(s) }

// AllHorseVariants lists every horse variant in declaration order.
func AllHorseVariants() []HorseVariant { return horseVariants.all() }

// Axis is a block orientation axis.
type Axis uint8

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

var axes = table[Axis]{kind: "axis", ids: []string{"x", "y", "z"}}

// ID returns the stable identifier.
func (v Axis) ID() string { return axes.id(v) }

// String implements fmt.Stringer.
func (v Axis) String() string { return axes.id(v) }

// Ordinal returns the declaration index.
func (v Axis) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v Axis) MarshalText() ([]byte, error) { return axes.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Axis) UnmarshalText(text []byte) error {
	p, err := axes.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseAxis parses an ID case-insensitively.
func ParseAxis(s string) (Axis, error) { return axes.parse(s) }

// AllAxes lists every axis in declaration order.
func AllAxes() []Axis { return axes.all() }

// Career is a villager profession specialisation.
type Career uint8

const (
	CareerFarmer Career = iota
	CareerFisherman
	CareerShepherd
	CareerFletcher
	CareerLibrarian
	CareerCleric
	CareerArmorer
	CareerWeaponSmith
	CareerToolSmith
	CareerButcher
	CareerLeatherworker
)

var careers = table[Career]{kind: "career", ids: []string{
	"farmer", "fisherman", "shepherd", "fletcher", "librarian", "cleric",
	"armorer", "weapon_smith", "tool_smith", "butcher", "leatherworker",
}}

// ID returns the stable identifier.
func (v Career) ID() string { return careers.id(v) }

// String implements fmt.Stringer.
func (v Career) String() string { return careers.id(v) }

// Ordinal returns the declaration index.
func (v Career) Ordinal() int { return int(v) }

// MarshalText implements encoding.TextMarshaler.
func (v Career) MarshalText() ([]byte, error) { return careers.marshal(v) }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Career) UnmarshalText(text []byte) error {
	p, err := careers.parse(string(text))
	if err != nil {
		return err
	}
	*v = p
	return nil
}

// ParseCareer parses an ID case-insensitively.
func ParseCareer(s string) (Career, error) { return careers.parse(s) }

// AllCareers lists every career in declaration order.
func AllCareers() []Career { return careers.all() }

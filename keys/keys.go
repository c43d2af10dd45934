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

// Package keys declares the built-in keys. Keys are immutable, so the
// table is plain package state; registries are per Context.
package keys

import (
	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/registry"
	"dirpx.dev/dmx/text"
)

var (
	Axis              = key.New[catalog.Axis]("AXIS", "Axis")
	Color             = key.New[catalog.Color]("COLOR", "Color")
	Health            = key.NewBounded[float64]("HEALTH", "Health")
	MaxHealth         = key.NewBounded[float64]("MAX_HEALTH", "MaxHealth")
	ShowsDisplayName  = key.New[bool]("SHOWS_DISPLAY_NAME", "ShowDisplayName")
	DisplayName       = key.New[text.Text]("DISPLAY_NAME", "DisplayName")
	Career            = key.New[catalog.Career]("CAREER", "Career")
	SignLines         = key.NewList[text.Text]("SIGN_LINES", "SignLines")
	SkullType         = key.New[catalog.SkullType]("SKULL_TYPE", "SkullType")
	HorseColor        = key.New[catalog.HorseColor]("HORSE_COLOR", "HorseColor")
	HorseStyle        = key.New[catalog.HorseStyle]("HORSE_STYLE", "HorseStyle")
	HorseVariant      = key.New[catalog.HorseVariant]("HORSE_VARIANT", "HorseVariant")
	IsScreaming       = key.New[bool]("IS_SCREAMING", "Screaming")
	SlimeSize         = key.NewBounded[int]("SLIME_SIZE", "SlimeSize")
	Moisture          = key.NewBounded[int]("MOISTURE", "Moisture")
	Power             = key.NewBounded[int]("POWER", "Power")
	PlaceableBlocks   = key.NewSet[catalog.BlockType]("PLACEABLE_BLOCKS", "CanPlaceOn")
	RepresentedPlayer = key.New[catalog.GameProfile]("REPRESENTED_PLAYER", "RepresentedPlayer")
	TradeOffers       = key.NewList[catalog.TradeOffer]("TRADE_OFFERS", "Offers")
)

// All returns the built-in keys in registration order.
func All() []key.Any {
	return []key.Any{
		Axis, Color, Health, MaxHealth, ShowsDisplayName, DisplayName, Career,
		SignLines, SkullType, HorseColor, HorseStyle, HorseVariant, IsScreaming,
		SlimeSize, Moisture, Power, PlaceableBlocks, RepresentedPlayer,
		TradeOffers,
	}
}

// RegisterAll registers every built-in key with r.
func RegisterAll(r apis.KeyRegistry) error {
	return registry.RegisterAll(r, All()...)
}

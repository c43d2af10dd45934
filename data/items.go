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
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/catalog"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// Placeable lists the blocks an item may be placed on.
type Placeable struct {
	blocks *value.Set[catalog.BlockType]
}

func NewPlaceable(blocks ...catalog.BlockType) *Placeable {
	return &Placeable{blocks: value.NewSet(keys.PlaceableBlocks, blocks...)}
}

func (p *Placeable) Blocks() *value.Set[catalog.BlockType] { return p.blocks }

func (p *Placeable) Values() []value.Immutable { return []value.Immutable{p.blocks.AsImmutable()} }

func (p *Placeable) Copy() *Placeable { return &Placeable{blocks: p.blocks.AsImmutable().AsMutable()} }

func (p *Placeable) CopyManipulator() apis.Manipulator { return p.Copy() }

func (p *Placeable) AsImmutable() *ImmutablePlaceable {
	return &ImmutablePlaceable{blocks: p.blocks.AsImmutable()}
}

func (p *Placeable) Compare(o *Placeable) int {
	return slices.Compare(value.Sorted(p.blocks.Get()), value.Sorted(o.blocks.Get()))
}

func (p *Placeable) ToContainer() *view.Node { return blocksContainer(p.blocks.Get()) }

func (p *Placeable) String() string { return fmt.Sprintf("Placeable%v", value.Sorted(p.blocks.Get())) }

// ImmutablePlaceable is the immutable counterpart of Placeable.
type ImmutablePlaceable struct {
	blocks *value.ImmutableSet[catalog.BlockType]
}

func NewImmutablePlaceable(blocks ...catalog.BlockType) *ImmutablePlaceable {
	return NewPlaceable(blocks...).AsImmutable()
}

func (p *ImmutablePlaceable) Blocks() *value.ImmutableSet[catalog.BlockType] { return p.blocks }

func (p *ImmutablePlaceable) Values() []value.Immutable { return []value.Immutable{p.blocks} }

func (p *ImmutablePlaceable) AsMutable() *Placeable { return &Placeable{blocks: p.blocks.AsMutable()} }

func (p *ImmutablePlaceable) Compare(o *ImmutablePlaceable) int {
	return slices.Compare(value.Sorted(p.blocks.Get()), value.Sorted(o.blocks.Get()))
}

func (p *ImmutablePlaceable) ToContainer() *view.Node { return blocksContainer(p.blocks.Get()) }

func (p *ImmutablePlaceable) String() string {
	return fmt.Sprintf("ImmutablePlaceable%v", value.Sorted(p.blocks.Get()))
}

// BuildPlaceable reads block IDs; unknown namespaces are accepted as-is.
func BuildPlaceable(n *view.Node) (*Placeable, bool, error) {
	q := keys.PlaceableBlocks.Query()
	ids, ok, err := n.GetStrings(q)
	if err != nil || !ok {
		return nil, false, err
	}
	blocks := make([]catalog.BlockType, 0, len(ids))
	for _, id := range ids {
		b, err := catalog.ParseBlockType(id)
		if err != nil {
			return nil, false, view.Invalid(q, "%v", err)
		}
		blocks = append(blocks, b)
	}
	return NewPlaceable(blocks...), true, nil
}

func blocksContainer(blocks map[catalog.BlockType]struct{}) *view.Node {
	ids := make([]string, 0, len(blocks))
	for _, b := range value.Sorted(blocks) {
		ids = append(ids, b.ID())
	}
	return view.NewMap().Set(keys.PlaceableBlocks.Query(), ids)
}

// RepresentedPlayer is the player a skull depicts.
type RepresentedPlayer struct {
	owner *value.Plain[catalog.GameProfile]
}

func NewRepresentedPlayer(p catalog.GameProfile) *RepresentedPlayer {
	return &RepresentedPlayer{owner: value.New(keys.RepresentedPlayer, p)}
}

func (r *RepresentedPlayer) Owner() *value.Plain[catalog.GameProfile] { return r.owner }

func (r *RepresentedPlayer) Values() []value.Immutable {
	return []value.Immutable{r.owner.AsImmutable()}
}

func (r *RepresentedPlayer) Copy() *RepresentedPlayer { return NewRepresentedPlayer(r.owner.Get()) }

func (r *RepresentedPlayer) CopyManipulator() apis.Manipulator { return r.Copy() }

func (r *RepresentedPlayer) AsImmutable() *ImmutableRepresentedPlayer {
	return &ImmutableRepresentedPlayer{owner: r.owner.AsImmutable()}
}

func (r *RepresentedPlayer) Compare(o *RepresentedPlayer) int {
	return r.owner.Get().Compare(o.owner.Get())
}

func (r *RepresentedPlayer) ToContainer() *view.Node { return ownerContainer(r.owner.Get()) }

func (r *RepresentedPlayer) String() string {
	return fmt.Sprintf("RepresentedPlayer{%s}", profileString(r.owner.Get()))
}

// ImmutableRepresentedPlayer is the immutable counterpart of RepresentedPlayer.
type ImmutableRepresentedPlayer struct {
	owner *value.ImmutablePlain[catalog.GameProfile]
}

func NewImmutableRepresentedPlayer(p catalog.GameProfile) *ImmutableRepresentedPlayer {
	return NewRepresentedPlayer(p).AsImmutable()
}

func (r *ImmutableRepresentedPlayer) Owner() *value.ImmutablePlain[catalog.GameProfile] {
	return r.owner
}

func (r *ImmutableRepresentedPlayer) Values() []value.Immutable {
	return []value.Immutable{r.owner}
}

func (r *ImmutableRepresentedPlayer) AsMutable() *RepresentedPlayer {
	return NewRepresentedPlayer(r.owner.Get())
}

func (r *ImmutableRepresentedPlayer) Compare(o *ImmutableRepresentedPlayer) int {
	return r.owner.Get().Compare(o.owner.Get())
}

func (r *ImmutableRepresentedPlayer) ToContainer() *view.Node { return ownerContainer(r.owner.Get()) }

func (r *ImmutableRepresentedPlayer) String() string {
	return fmt.Sprintf("ImmutableRepresentedPlayer{%s}", profileString(r.owner.Get()))
}

// BuildRepresentedPlayer reads the owner profile mapping.
func BuildRepresentedPlayer(n *view.Node) (*RepresentedPlayer, bool, error) {
	q := keys.RepresentedPlayer.Query()
	m, ok, err := n.GetMap(q)
	if err != nil || !ok {
		return nil, false, err
	}
	p, err := catalog.ProfileFromView(m)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", q, err)
	}
	return NewRepresentedPlayer(p), true, nil
}

func ownerContainer(p catalog.GameProfile) *view.Node {
	return view.NewMap().Set(keys.RepresentedPlayer.Query(), p.ToContainer())
}

func profileString(p catalog.GameProfile) string {
	if p.IsNull() {
		return "null"
	}
	return strings.TrimSpace(p.Name + " " + p.ID.String())
}

var (
	_ Mutable[*Placeable, *ImmutablePlaceable]                   = (*Placeable)(nil)
	_ Immutable[*ImmutablePlaceable, *Placeable]                 = (*ImmutablePlaceable)(nil)
	_ Mutable[*RepresentedPlayer, *ImmutableRepresentedPlayer]   = (*RepresentedPlayer)(nil)
	_ Immutable[*ImmutableRepresentedPlayer, *RepresentedPlayer] = (*ImmutableRepresentedPlayer)(nil)
)

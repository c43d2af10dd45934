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

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// Screaming marks an enderman as screaming.
type Screaming struct {
	screaming *value.Plain[bool]
}

func NewScreaming(on bool) *Screaming {
	return &Screaming{screaming: value.New(keys.IsScreaming, on)}
}

func (s *Screaming) Screaming() *value.Plain[bool] { return s.screaming }

func (s *Screaming) Values() []value.Immutable {
	return []value.Immutable{s.screaming.AsImmutable()}
}

func (s *Screaming) Copy() *Screaming { return NewScreaming(s.screaming.Get()) }

func (s *Screaming) CopyManipulator() apis.Manipulator { return s.Copy() }

func (s *Screaming) AsImmutable() *ImmutableScreaming {
	return &ImmutableScreaming{screaming: s.screaming.AsImmutable()}
}

func (s *Screaming) Compare(o *Screaming) int {
	return compareBool(s.screaming.Get(), o.screaming.Get())
}

func (s *Screaming) ToContainer() *view.Node {
	return view.NewMap().Set(keys.IsScreaming.Query(), s.screaming.Get())
}

func (s *Screaming) String() string { return fmt.Sprintf("Screaming{%t}", s.screaming.Get()) }

// ImmutableScreaming is the immutable counterpart of Screaming.
type ImmutableScreaming struct {
	screaming *value.ImmutablePlain[bool]
}

func NewImmutableScreaming(on bool) *ImmutableScreaming {
	return ImmutableScreamingOf(value.NewImmutable(keys.IsScreaming, on))
}

// ImmutableScreamingOf wraps an existing, possibly interned, value.
func ImmutableScreamingOf(v *value.ImmutablePlain[bool]) *ImmutableScreaming {
	return &ImmutableScreaming{screaming: v}
}

func (s *ImmutableScreaming) Screaming() *value.ImmutablePlain[bool] { return s.screaming }

func (s *ImmutableScreaming) Values() []value.Immutable {
	return []value.Immutable{s.screaming}
}

func (s *ImmutableScreaming) AsMutable() *Screaming { return NewScreaming(s.screaming.Get()) }

func (s *ImmutableScreaming) Compare(o *ImmutableScreaming) int {
	return compareBool(s.screaming.Get(), o.screaming.Get())
}

func (s *ImmutableScreaming) ToContainer() *view.Node {
	return view.NewMap().Set(keys.IsScreaming.Query(), s.screaming.Get())
}

func (s *ImmutableScreaming) String() string {
	return fmt.Sprintf("ImmutableScreaming{%t}", s.screaming.Get())
}

func BuildScreaming(n *view.Node) (*Screaming, bool, error) {
	on, ok, err := n.GetBool(keys.IsScreaming.Query())
	if err != nil || !ok {
		return nil, false, err
	}
	return NewScreaming(on), true, nil
}

var (
	_ Mutable[*Screaming, *ImmutableScreaming]   = (*Screaming)(nil)
	_ Immutable[*ImmutableScreaming, *Screaming] = (*ImmutableScreaming)(nil)
)

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
	"math"

	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/world"
)

// MinMaxHealth is the lowest maximum health a living entity may have.
const MinMaxHealth = 1.0

// health reads and writes the health of living entities. Its bounds
// depend on the entity, so it snapshots with the entity's own maximum.
type health struct {
	cache *intern.Cache
}

var _ processor.Value[float64] = health{}

func (health) Key() *key.Key[float64] { return keys.Health }

func (health) Supports(holder any) bool {
	_, ok := holder.(*world.Living)
	return ok
}

func (health) Get(holder any) (float64, bool) {
	l, ok := holder.(*world.Living)
	if !ok {
		return 0, false
	}
	return l.Health, true
}

func (p health) snapshot(l *world.Living, v float64) value.Immutable {
	return boundedSnapshot(p.cache, keys.Health, 0, l.MaxHealth, l.MaxHealth)(v)
}

func (p health) Offer(holder any, v float64) *transaction.Result {
	l, ok := holder.(*world.Living)
	if !ok {
		return transaction.Unsupported(fmt.Errorf("%s: holder %T", keys.Health.Name(), holder), value.NewImmutable(keys.Health, v))
	}
	if err := checkRange(keys.Health, v, 0, l.MaxHealth); err != nil {
		return transaction.NewBuilder().Reject(value.NewImmutable(keys.Health, v)).Cause(err).Result(transaction.Failure)
	}
	old := p.snapshot(l, l.Health)
	l.Health = v
	return transaction.SuccessResult([]value.Immutable{p.snapshot(l, v)}, []value.Immutable{old})
}

func (health) Remove(any) *transaction.Result {
	return transaction.Unsupported(fmt.Errorf("%s cannot be removed", keys.Health.Name()))
}

// Transform clamps f's result to the entity's bounds instead of failing.
func (p health) Transform(holder any, f func(float64) float64) (*transaction.Result, error) {
	l, ok := holder.(*world.Living)
	if !ok {
		return nil, fmt.Errorf("%w: %s on %T", processor.ErrUnsupportedData, keys.Health.Name(), holder)
	}
	return p.Offer(holder, math.Min(math.Max(f(l.Health), 0), l.MaxHealth)), nil
}

func isNamed(l *world.Living) bool { return l.Name != nil }

func registerLiving(reg *processor.Registry, cache *intern.Cache) error {
	if err := processor.RegisterValue[float64](reg, health{cache: cache}); err != nil {
		return err
	}
	err := registerValue[float64](reg, &processor.ValueFuncs[*world.Living, float64]{
		K:    keys.MaxHealth,
		Read: func(l *world.Living) (float64, bool) { return l.MaxHealth, true },
		// Lowering the maximum lowers health with it.
		Write: func(l *world.Living, v float64) error {
			if err := checkRange(keys.MaxHealth, v, MinMaxHealth, math.MaxFloat64); err != nil {
				return err
			}
			l.MaxHealth = v
			l.Health = math.Min(l.Health, v)
			return nil
		},
		Snapshot: boundedSnapshot(cache, keys.MaxHealth, MinMaxHealth, math.MaxFloat64, 20),
	})
	if err != nil {
		return err
	}
	err = registerValue[bool](reg, &processor.ValueFuncs[*world.Living, bool]{
		K:    keys.ShowsDisplayName,
		Read: func(l *world.Living) (bool, bool) { return l.NameVisible, true },
		Write: func(l *world.Living, v bool) error {
			l.NameVisible = v
			return nil
		},
		Snapshot: interned(cache, keys.ShowsDisplayName),
	})
	if err != nil {
		return err
	}
	return registerValue[text.Text](reg,
		&processor.ValueFuncs[*world.Living, text.Text]{
			K: keys.DisplayName,
			Read: func(l *world.Living) (text.Text, bool) {
				if !isNamed(l) {
					return text.Text{}, false
				}
				return l.Name.Clone(), true
			},
			Write: func(l *world.Living, v text.Text) error {
				name := v.Clone()
				l.Name = &name
				return nil
			},
			Delete: func(l *world.Living) error {
				l.Name, l.NameVisible = nil, false
				return nil
			},
		},
		&processor.ValueFuncs[*world.ItemStack, text.Text]{
			K: keys.DisplayName,
			Read: func(s *world.ItemStack) (text.Text, bool) {
				if s.Tag == nil {
					return text.Text{}, false
				}
				raw, ok, err := s.Tag.GetString(world.TagDisplayName)
				if err != nil || !ok {
					return text.Text{}, false
				}
				return text.ParseLegacy(raw), true
			},
			Write: func(s *world.ItemStack, v text.Text) error {
				s.EnsureTag().Set(world.TagDisplayName, text.Legacy(v))
				return nil
			},
			Delete: func(s *world.ItemStack) error {
				s.Tag.Remove(world.TagDisplayName)
				return nil
			},
		},
	)
}

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

// Package builtin wires the built-in keys and manipulators to the world
// host objects.
//
// Result values are drawn from the interning cache, so repeated offers of
// one datum share a single immutable instance.
package builtin

import (
	"cmp"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/intern"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/value"
)

// Register adds every built-in processor to reg. cache may be nil.
func Register(reg *processor.Registry, cache *intern.Cache) error {
	steps := []func(*processor.Registry, *intern.Cache) error{
		registerSign,
		registerSkull,
		registerHorse,
		registerScreaming,
		registerSizes,
		registerLiving,
		registerPlaceable,
		registerVillager,
		registerLog,
		registerDye,
	}
	for _, step := range steps {
		if err := step(reg, cache); err != nil {
			return err
		}
	}
	return nil
}

// registerValue registers each processor of one key in order.
func registerValue[T any](reg *processor.Registry, ps ...processor.Value[T]) error {
	for _, p := range ps {
		if err := processor.RegisterValue(reg, p); err != nil {
			return err
		}
	}
	return nil
}

func registerData[M apis.Manipulator](reg *processor.Registry, ps ...processor.Data[M]) error {
	for _, p := range ps {
		if err := processor.RegisterData(reg, p); err != nil {
			return err
		}
	}
	return nil
}

// interned snapshots comparable data through cache.
func interned[T comparable](cache *intern.Cache, k *key.Key[T]) func(T) value.Immutable {
	return func(v T) value.Immutable { return intern.Value(cache, k, v) }
}

// boundedSnapshot snapshots data through cache as bounded values. Data
// outside the bounds, which only appears in rejected sets, is kept plain.
func boundedSnapshot[T cmp.Ordered](cache *intern.Cache, k *key.Key[T], min, max, def T) func(T) value.Immutable {
	return func(v T) value.Immutable {
		b, err := intern.Bounded(cache, k, v, min, max, def)
		if err != nil {
			return value.NewImmutable(k, v)
		}
		return b
	}
}

// checkRange fails with a *value.RangeError outside [min, max] and for NaN.
func checkRange[T cmp.Ordered](k *key.Key[T], v, min, max T) error {
	if !(v >= min && v <= max) {
		return &value.RangeError{Key: k.Name(), Value: v, Min: min, Max: max}
	}
	return nil
}

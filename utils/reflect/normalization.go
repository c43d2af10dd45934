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

// Package reflect holds the type normalization shared by holder aliases
// and the reflect naming strategy.
package reflect

import (
	"errors"
	"reflect"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/config"
)

var (
	// ErrReflectNilType is returned when a nil reflect.Type is provided.
	ErrReflectNilType = errors.New("reflect: nil reflect.Type provided")
	// ErrReflectTypeNotNamed indicates that the provided type (after unwrapping
	// containers) does not contain a named type.
	ErrReflectTypeNotNamed = errors.New("reflect: type has no registered name")
)

// Normalize unwraps holder containers according to cfg and returns the
// nearest named inner type.
//
// Unwrapping policy:
//   - ptr/slice/array/chan: Elem()
//   - map[K]V: the preferred side (V if MapPreferElem) if named, else the
//     other side if named, else keep unwrapping V
//   - anything else: itself if named, otherwise ErrReflectTypeNotNamed
//
// If MaxUnwrap <= 0, config.DefaultMaxUnwrap is used.
func Normalize(t reflect.Type, cfg apis.Config) (reflect.Type, error) {
	if t == nil {
		return nil, ErrReflectNilType
	}
	depth := cfg.MaxUnwrap
	if depth <= 0 {
		depth = config.DefaultMaxUnwrap
	}

	for ; depth > 0; depth-- {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan:
			t = t.Elem()
		case reflect.Map:
			if named := mapSide(t, cfg.MapPreferElem); named != nil {
				return named, nil
			}
			t = t.Elem()
		default:
			return named(t)
		}
	}
	return named(t)
}

// mapSide returns the first named side of a map type in preference order.
func mapSide(t reflect.Type, preferElem bool) reflect.Type {
	first, second := t.Key(), t.Elem()
	if preferElem {
		first, second = second, first
	}
	for _, side := range [...]reflect.Type{first, second} {
		if side.Name() != "" {
			return side
		}
	}
	return nil
}

func named(t reflect.Type) (reflect.Type, error) {
	if t.Name() != "" {
		return t, nil
	}
	return nil, ErrReflectTypeNotNamed
}

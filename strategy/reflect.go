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

package strategy

import (
	"path"
	"reflect"
	"strings"
	"sync"

	"dirpx.dev/dmx/apis"
	uref "dirpx.dev/dmx/utils/reflect"
)

// NewReflectStrategy returns the fallback strategy deriving "pkg.Type"
// from the holder's Go type. Results are memoized per strategy instance.
func NewReflectStrategy() apis.Strategy {
	return &reflectStrategy{}
}

// reflectStrategy unwraps containers via Normalize, strips generic
// instantiation parameters, and can hide builtin names.
type reflectStrategy struct {
	names sync.Map // memoKey -> string
}

var _ apis.Strategy = (*reflectStrategy)(nil)

// memoKey covers every config knob that changes the result.
type memoKey struct {
	t              reflect.Type
	includeBuiltin bool
	maxUnwrap      int
	mapPreferElem  bool
}

func (s *reflectStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

func (s *reflectStrategy) TryResolveType(t reflect.Type, cfg apis.Config) (string, bool) {
	if t == nil {
		return "", false
	}
	k := memoKey{t: t, includeBuiltin: cfg.IncludeBuiltins, maxUnwrap: cfg.MaxUnwrap, mapPreferElem: cfg.MapPreferElem}
	if v, ok := s.names.Load(k); ok {
		return v.(string), true
	}
	name, _ := s.names.LoadOrStore(k, typeName(t, cfg))
	return name.(string), true
}

// typeName returns "" when t has no reachable named type.
func typeName(t reflect.Type, cfg apis.Config) string {
	base, err := uref.Normalize(t, cfg)
	if err != nil {
		return ""
	}
	name := base.Name()
	if i := strings.IndexByte(name, '['); i >= 0 {
		name = name[:i]
	}
	switch p := base.PkgPath(); {
	case p != "":
		return path.Base(p) + "." + name
	case cfg.IncludeBuiltins:
		return name
	default:
		return ""
	}
}

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
	"reflect"

	"dirpx.dev/dmx/apis"
)

// NewAliasStrategy returns a strategy that consults explicit aliases.
func NewAliasStrategy(aliases apis.Aliases) apis.Strategy {
	return &aliasStrategy{aliases: aliases}
}

// aliasStrategy is the reflection-free lookup step.
type aliasStrategy struct {
	aliases apis.Aliases
}

var _ apis.Strategy = (*aliasStrategy)(nil)

func (s *aliasStrategy) TryResolve(v any, cfg apis.Config) (string, bool) {
	if v == nil {
		return "", false
	}
	return s.TryResolveType(reflect.TypeOf(v), cfg)
}

func (s *aliasStrategy) TryResolveType(t reflect.Type, _ apis.Config) (string, bool) {
	if t == nil || s.aliases == nil {
		return "", false
	}
	return s.aliases.Lookup(t)
}

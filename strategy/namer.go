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

// Package strategy holds the name resolution steps used to label holders
// in logs, metrics and errors.
package strategy

import (
	"reflect"

	"dirpx.dev/dmx/apis"
)

// NewNamerStrategy returns a strategy that asks the holder for its name.
func NewNamerStrategy() apis.Strategy {
	return namerStrategy{}
}

// namerStrategy handles holders implementing apis.Namer. An empty
// HolderName falls through to the next strategy.
type namerStrategy struct{}

var _ apis.Strategy = namerStrategy{}

func (namerStrategy) TryResolve(v any, _ apis.Config) (string, bool) {
	n, ok := v.(apis.Namer)
	if !ok {
		return "", false
	}
	if name := n.HolderName(); name != "" {
		return name, true
	}
	return "", false
}

// TryResolveType never handles: Namer requires an instance.
func (namerStrategy) TryResolveType(reflect.Type, apis.Config) (string, bool) {
	return "", false
}

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

package apis

import (
	"reflect"
)

// Resolver coordinates strategies to resolve holder names for values and
// types. Typical chain: NamerStrategy -> AliasStrategy -> ReflectStrategy.
type Resolver interface {
	// Resolve returns a stable name for v, or "" if none can be determined.
	Resolve(v any, cfg Config) string

	// ResolveType returns a stable name for t, or "" if none can be determined.
	ResolveType(t reflect.Type, cfg Config) string
}

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

// Package merge provides the stock merge policies.
package merge

import "dirpx.dev/dmx/apis"

var (
	// IgnoreAll keeps the original manipulator when present.
	IgnoreAll apis.MergeFunction = apis.MergeFunc(func(original, proposed apis.Manipulator) apis.Manipulator {
		if original != nil {
			return original
		}
		return proposed
	})

	// ForceNotation always takes the proposed manipulator.
	ForceNotation apis.MergeFunction = apis.MergeFunc(func(_, proposed apis.Manipulator) apis.Manipulator {
		return proposed
	})
)

// Or returns f, or def when f is nil.
func Or(f, def apis.MergeFunction) apis.MergeFunction {
	if f == nil {
		return def
	}
	return f
}

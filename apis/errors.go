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

import "errors"

var (
	// ErrUnsupportedData is wrapped when no processor supports a holder, or
	// the chosen processor cannot perform the operation.
	ErrUnsupportedData = errors.New("dmx: unsupported data")

	// ErrNoData is wrapped when an operation needs a value the holder does
	// not carry.
	ErrNoData = errors.New("dmx: no data")
)

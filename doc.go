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

// Package dmx is a typed data framework for game-world objects.
//
// Data is addressed by keys (key.Key), carried as immutable values
// (value.Immutable) or grouped into manipulators (apis.Manipulator), and
// applied to holders through processors that know how a particular host
// object stores a particular datum. Every write reports a
// transaction.Result naming what succeeded, what it replaced and what was
// rejected.
//
// # Design
//
// A Context is a read-mostly snapshot holding five things:
//
//   - Config: resolver, interning and freezing knobs (see config).
//
//   - Keys: the key registry. Built-in keys from package keys are bound
//     when the context is created; more can be added with RegisterKey
//     until the registry is frozen.
//
//   - Resolver: names holders for logs and errors. It tries apis.Namer,
//     then aliases registered with RegisterAlias, then the reflected type
//     name.
//
//   - Processors: the processor registry. Lookups pick the first
//     processor registered for a key (or manipulator type) that supports
//     the holder.
//
//   - Cache: interns immutable results so equal values share an instance.
//
// Readers load the current snapshot and never mutate it. SetConfig builds
// a new snapshot from the previous one and swaps it in atomically, so
// lookups stay lock-free while configuration changes.
//
// # Usage
//
//	ctx, err := dmx.New(config.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	sign := &world.Sign{}
//	res := dmx.Offer(ctx, sign, keys.SignLines, lines)
//	if !res.IsSuccessful() {
//		return res.Err()
//	}
//
// Holders no processor understands may embed custom.Store; the typed
// helpers then keep data on the holder as-is.
package dmx

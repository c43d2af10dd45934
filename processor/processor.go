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

// Package processor routes key and manipulator operations to the backend
// that understands a given holder.
//
// Processors are registered per key (Value) or per manipulator type (Data)
// and consulted in registration order; the first one whose Supports
// accepts the holder handles the call. When none does, reads report
// absence and writes return a failing result whose cause wraps
// ErrUnsupportedData.
package processor

import (
	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/view"
)

var (
	// ErrUnsupportedData is the cause of operations no processor can
	// perform on a holder.
	ErrUnsupportedData = apis.ErrUnsupportedData
	// ErrNoData is returned when an operation needs a value the holder
	// does not have.
	ErrNoData = apis.ErrNoData
)

// Value reads and writes the datum of one key on the holders it supports.
type Value[T any] interface {
	Key() *key.Key[T]
	Supports(holder any) bool
	// Get returns the current datum, or false when the holder has none.
	Get(holder any) (T, bool)
	// Offer applies v. The result lists v as success and the previous
	// datum, if any, as replaced.
	Offer(holder any, v T) *transaction.Result
	// Remove clears the datum. Processors that cannot remove return an
	// ErrUnsupportedData failure.
	Remove(holder any) *transaction.Result
}

// Transformer is implemented by Value processors that transform in one
// step. Others are transformed by Get, f, Offer.
type Transformer[T any] interface {
	Transform(holder any, f func(T) T) (*transaction.Result, error)
}

// Data reads and writes a whole manipulator of type M.
type Data[M apis.Manipulator] interface {
	Supports(holder any) bool
	// From reads a fresh manipulator from the holder.
	From(holder any) (M, bool)
	// Fill merges the holder's state into m and returns the merged
	// manipulator. A nil f lets the holder's state win.
	Fill(holder any, m M, f apis.MergeFunction) (M, bool)
	// Set writes m to the holder, merging with its current state. A nil f
	// lets m win.
	Set(holder any, m M, f apis.MergeFunction) *transaction.Result
	Remove(holder any) *transaction.Result
	// CreateFrom returns the holder's state, or defaults when it has none.
	CreateFrom(holder any) (M, bool)
	// Build reads a manipulator written by its ToContainer.
	Build(n *view.Node) (M, bool, error)
}

type supporter interface {
	Supports(holder any) bool
}

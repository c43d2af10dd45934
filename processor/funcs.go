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

package processor

import (
	"errors"
	"fmt"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/merge"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// ValueFuncs adapts accessor functions over holders of type H into a
// Value processor for key K.
type ValueFuncs[H, T any] struct {
	K *key.Key[T]
	// Read returns the datum, or false when h has none.
	Read func(h H) (T, bool)
	// Write stores v. Errors wrapping value.ErrRange or ErrUnsupportedData
	// yield a Failure; any other error yields an Error result. A nil Write
	// makes the key read-only.
	Write func(h H, v T) error
	// Delete clears the datum. A nil Delete makes the key non-removable.
	Delete func(h H) error
	// Check narrows support beyond the type assertion to H.
	Check func(h H) bool
	// Snapshot builds result values. Defaults to value.NewImmutable.
	Snapshot func(v T) value.Immutable
}

var _ Value[int] = (*ValueFuncs[struct{}, int])(nil)

func (p *ValueFuncs[H, T]) Key() *key.Key[T] { return p.K }

func (p *ValueFuncs[H, T]) Supports(holder any) bool {
	h, ok := holder.(H)
	return ok && (p.Check == nil || p.Check(h))
}

func (p *ValueFuncs[H, T]) Get(holder any) (T, bool) {
	var zero T
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return zero, false
	}
	return p.Read(h)
}

func (p *ValueFuncs[H, T]) snap(v T) value.Immutable {
	if p.Snapshot != nil {
		return p.Snapshot(v)
	}
	return value.NewImmutable(p.K, v)
}

func (p *ValueFuncs[H, T]) Offer(holder any, v T) *transaction.Result {
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return transaction.Unsupported(fmt.Errorf("%s: holder %T", p.K.Name(), holder), p.snap(v))
	}
	if p.Write == nil {
		return transaction.Unsupported(fmt.Errorf("%s is read-only", p.K.Name()), p.snap(v))
	}
	old, had := p.Read(h)
	if err := p.Write(h, v); err != nil {
		return writeFailure(err, p.snap(v))
	}
	b := transaction.NewBuilder().Success(p.snap(v))
	if had {
		b.Replace(p.snap(old))
	}
	return b.Result(transaction.Success)
}

func (p *ValueFuncs[H, T]) Remove(holder any) *transaction.Result {
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return transaction.Unsupported(fmt.Errorf("%s: holder %T", p.K.Name(), holder))
	}
	if p.Delete == nil {
		return transaction.Unsupported(fmt.Errorf("%s cannot be removed", p.K.Name()))
	}
	old, had := p.Read(h)
	if !had {
		return transaction.FailNoData()
	}
	if err := p.Delete(h); err != nil {
		return writeFailure(err)
	}
	return transaction.SuccessResult(nil, []value.Immutable{p.snap(old)})
}

func writeFailure(err error, vals ...value.Immutable) *transaction.Result {
	if errors.Is(err, value.ErrRange) || errors.Is(err, ErrUnsupportedData) {
		return transaction.NewBuilder().Reject(vals...).Cause(err).Result(transaction.Failure)
	}
	return transaction.Errored(err, vals...)
}

// DataFuncs adapts accessor functions over holders of type H into a Data
// processor for manipulator M.
type DataFuncs[H any, M apis.Manipulator] struct {
	// Read returns the holder's state, or false when it has none.
	Read func(h H) (M, bool)
	// Write stores m. Error handling follows ValueFuncs.Write. A nil
	// Write makes the manipulator read-only.
	Write func(h H, m M) error
	// Delete clears the state. A nil Delete makes it non-removable.
	Delete func(h H) error
	// Default returns the manipulator used by CreateFrom when the holder
	// has no state. It may be nil.
	Default func() M
	// Decode reads a manipulator written by ToContainer.
	Decode func(n *view.Node) (M, bool, error)
	// Check narrows support beyond the type assertion to H.
	Check func(h H) bool
}

var _ Data[apis.Manipulator] = (*DataFuncs[struct{}, apis.Manipulator])(nil)

func (p *DataFuncs[H, M]) Supports(holder any) bool {
	h, ok := holder.(H)
	return ok && (p.Check == nil || p.Check(h))
}

func (p *DataFuncs[H, M]) From(holder any) (M, bool) {
	var zero M
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return zero, false
	}
	return p.Read(h)
}

func (p *DataFuncs[H, M]) Fill(holder any, m M, f apis.MergeFunction) (M, bool) {
	var zero M
	cur, ok := p.From(holder)
	if !ok {
		return zero, false
	}
	merged := merge.Or(f, merge.ForceNotation).Merge(m, cur)
	out, ok := merged.(M)
	return out, ok
}

func (p *DataFuncs[H, M]) Set(holder any, m M, f apis.MergeFunction) *transaction.Result {
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return transaction.Unsupported(fmt.Errorf("holder %T", holder), m.Values()...)
	}
	if p.Write == nil {
		return transaction.Unsupported(fmt.Errorf("%T is read-only", m), m.Values()...)
	}
	var original apis.Manipulator
	cur, had := p.Read(h)
	if had {
		original = cur
	}
	merged, ok := merge.Or(f, merge.ForceNotation).Merge(original, m).(M)
	if !ok {
		return transaction.FailResult(m.Values()...)
	}
	if err := p.Write(h, merged); err != nil {
		return writeFailure(err, merged.Values()...)
	}
	b := transaction.NewBuilder().Success(merged.Values()...)
	if had {
		b.Replace(cur.Values()...)
	}
	return b.Result(transaction.Success)
}

func (p *DataFuncs[H, M]) Remove(holder any) *transaction.Result {
	h, ok := holder.(H)
	if !ok || !p.Supports(holder) {
		return transaction.Unsupported(fmt.Errorf("holder %T", holder))
	}
	if p.Delete == nil {
		var m M
		return transaction.Unsupported(fmt.Errorf("%T cannot be removed", m))
	}
	cur, had := p.Read(h)
	if !had {
		return transaction.FailNoData()
	}
	if err := p.Delete(h); err != nil {
		return writeFailure(err)
	}
	return transaction.SuccessResult(nil, cur.Values())
}

func (p *DataFuncs[H, M]) CreateFrom(holder any) (M, bool) {
	if m, ok := p.From(holder); ok {
		return m, true
	}
	var zero M
	if p.Default == nil || !p.Supports(holder) {
		return zero, false
	}
	return p.Default(), true
}

func (p *DataFuncs[H, M]) Build(n *view.Node) (M, bool, error) {
	if p.Decode == nil {
		var zero M
		return zero, false, fmt.Errorf("%w: %T has no decoder", ErrUnsupportedData, zero)
	}
	return p.Decode(n)
}

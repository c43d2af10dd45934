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

// Package transaction records what happened when data was applied to a
// holder.
//
// Every mutating operation returns a *Result holding three value sets:
// success (values now in effect), replaced (values that held before and
// were overwritten or removed) and rejected (values that could not be
// applied), plus an Outcome. Results are immutable and safe to share.
package transaction

import (
	"errors"
	"fmt"
	"slices"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/value"
)

// Outcome classifies a Result.
type Outcome uint8

const (
	Undefined Outcome = iota
	Success
	Failure
	Cancelled
	Error
)

func (o Outcome) String() string {
	switch o {
	case Undefined:
		return "UNDEFINED"
	case Success:
		return "SUCCESS"
	case Failure:
		return "FAILURE"
	case Cancelled:
		return "CANCELLED"
	case Error:
		return "ERROR"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(o))
	}
}

// failing reports whether rejected values are allowed and successes are not.
func (o Outcome) failing() bool {
	return o == Failure || o == Cancelled || o == Error
}

// Result is the frozen record of one operation.
type Result struct {
	outcome  Outcome
	success  []value.Immutable
	replaced []value.Immutable
	rejected []value.Immutable
	err      error
}

func (r *Result) Outcome() Outcome { return r.outcome }

// IsSuccessful reports whether the outcome is Success.
func (r *Result) IsSuccessful() bool { return r.outcome == Success }

// Success returns the values now in effect.
func (r *Result) Success() []value.Immutable { return slices.Clone(r.success) }

// Replaced returns the values that were overwritten or removed.
func (r *Result) Replaced() []value.Immutable { return slices.Clone(r.replaced) }

// Rejected returns the values that could not be applied.
func (r *Result) Rejected() []value.Immutable { return slices.Clone(r.rejected) }

// Err returns the cause recorded for a failing result, if any.
func (r *Result) Err() error { return r.err }

// Cancel returns a Cancelled copy of r whose successes are moved to
// rejected. Replaced values are kept so callers can restore them.
func (r *Result) Cancel() *Result {
	return &Result{
		outcome:  Cancelled,
		replaced: slices.Clone(r.replaced),
		rejected: slices.Concat(r.rejected, r.success),
		err:      r.err,
	}
}

func (r *Result) String() string {
	return fmt.Sprintf("Result{%s success=%d replaced=%d rejected=%d}",
		r.outcome, len(r.success), len(r.replaced), len(r.rejected))
}

// Builder accumulates a Result. A builder is single use: Result freezes
// it and any further call panics.
type Builder struct {
	success  []value.Immutable
	replaced []value.Immutable
	rejected []value.Immutable
	err      error
	done     bool
}

// NewBuilder returns an empty builder.
func NewBuilder() *Builder { return &Builder{} }

func (b *Builder) live() {
	if b.done {
		panic("dmx(transaction): builder reused after Result")
	}
}

// Success appends values now in effect.
func (b *Builder) Success(vals ...value.Immutable) *Builder {
	b.live()
	b.success = appendValues(b.success, vals)
	return b
}

// Replace appends values that were overwritten or removed.
func (b *Builder) Replace(vals ...value.Immutable) *Builder {
	b.live()
	b.replaced = appendValues(b.replaced, vals)
	return b
}

// Reject appends values that could not be applied.
func (b *Builder) Reject(vals ...value.Immutable) *Builder {
	b.live()
	b.rejected = appendValues(b.rejected, vals)
	return b
}

// Cause records why the operation failed.
func (b *Builder) Cause(err error) *Builder {
	b.live()
	b.err = err
	return b
}

// Result freezes the builder. It panics when rejected values accompany a
// non-failing outcome or successes accompany a failing one.
func (b *Builder) Result(o Outcome) *Result {
	b.live()
	if o.failing() && len(b.success) > 0 {
		panic(fmt.Sprintf("dmx(transaction): %s result with %d successes", o, len(b.success)))
	}
	if !o.failing() && len(b.rejected) > 0 {
		panic(fmt.Sprintf("dmx(transaction): %s result with %d rejected values", o, len(b.rejected)))
	}
	b.done = true
	return &Result{
		outcome:  o,
		success:  b.success,
		replaced: b.replaced,
		rejected: b.rejected,
		err:      b.err,
	}
}

// appendValues skips nil values.
func appendValues(dst, vals []value.Immutable) []value.Immutable {
	for _, v := range vals {
		if v != nil {
			dst = append(dst, v)
		}
	}
	return dst
}

// SuccessResult reports vals as applied, replacing old.
func SuccessResult(vals []value.Immutable, old []value.Immutable) *Result {
	return NewBuilder().Success(vals...).Replace(old...).Result(Success)
}

// SuccessNoData is a Success with empty sets, used when nothing needed to
// change.
func SuccessNoData() *Result {
	return NewBuilder().Result(Success)
}

// FailResult reports vals as rejected.
func FailResult(vals ...value.Immutable) *Result {
	return NewBuilder().Reject(vals...).Result(Failure)
}

// FailNoData reports a failure caused by absent data.
func FailNoData() *Result {
	return NewBuilder().Cause(apis.ErrNoData).Result(Failure)
}

// Unsupported reports vals as rejected with a cause wrapping
// apis.ErrUnsupportedData.
func Unsupported(err error, vals ...value.Immutable) *Result {
	cause := apis.ErrUnsupportedData
	switch {
	case errors.Is(err, apis.ErrUnsupportedData):
		cause = err
	case err != nil:
		cause = fmt.Errorf("%w: %w", apis.ErrUnsupportedData, err)
	}
	return NewBuilder().Reject(vals...).Cause(cause).Result(Failure)
}

// Errored reports an unexpected error while applying vals.
func Errored(err error, vals ...value.Immutable) *Result {
	return NewBuilder().Reject(vals...).Cause(err).Result(Error)
}

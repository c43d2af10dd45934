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

package dmx

import (
	"fmt"
	"reflect"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/custom"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/merge"
	"dirpx.dev/dmx/processor"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// customFor returns holder as a custom.Holder when no processor of k
// supports it.
func customFor[T any](procs *processor.Registry, holder any, k *key.Key[T]) (custom.Holder, bool) {
	if k == nil || procs.SupportsKey(holder, k) {
		return nil, false
	}
	h, ok := holder.(custom.Holder)
	return h, ok
}

// customData returns holder as a custom.Holder when no processor of M
// supports it.
func customData[M apis.Manipulator](procs *processor.Registry, holder any) (custom.Holder, bool) {
	if procs.SupportsData(holder, reflect.TypeFor[M]()) {
		return nil, false
	}
	h, ok := holder.(custom.Holder)
	return h, ok
}

// Get reads the datum of k from holder.
func Get[T any](c *Context, holder any, k *key.Key[T]) (T, bool) {
	procs := c.Processors()
	if h, ok := customFor(procs, holder, k); ok {
		return custom.Value(h, k)
	}
	return processor.Get(procs, holder, k)
}

// Offer writes v for k to holder.
func Offer[T any](c *Context, holder any, k *key.Key[T], v T) *transaction.Result {
	procs := c.Processors()
	if h, ok := customFor(procs, holder, k); ok {
		return h.OfferCustomValue(value.NewImmutable(k, v))
	}
	return processor.Offer(procs, holder, k, v)
}

// OfferValue writes a value handle to holder.
func OfferValue[T any](c *Context, holder any, v value.Of[T]) *transaction.Result {
	procs := c.Processors()
	if v != nil {
		if h, ok := customFor(procs, holder, v.Typed()); ok {
			return h.OfferCustomValue(processor.Snapshot(v))
		}
	}
	return processor.OfferValue(procs, holder, v)
}

// Remove clears the datum of k on holder.
func Remove[T any](c *Context, holder any, k *key.Key[T]) *transaction.Result {
	procs := c.Processors()
	if h, ok := customFor(procs, holder, k); ok {
		return h.RemoveCustomKey(k)
	}
	return processor.Remove(procs, holder, k)
}

// Transform replaces the datum of k with f applied to it. Holder is left
// untouched and the error wraps apis.ErrNoData when it has no datum for k.
func Transform[T any](c *Context, holder any, k *key.Key[T], f func(T) T) (*transaction.Result, error) {
	procs := c.Processors()
	if h, ok := customFor(procs, holder, k); ok {
		cur, ok := custom.Value(h, k)
		if !ok {
			return nil, fmt.Errorf("%w: %s on %s", apis.ErrNoData, k.Name(), c.Name(holder))
		}
		return h.OfferCustomValue(value.NewImmutable(k, f(cur))), nil
	}
	return processor.Transform(procs, holder, k, f)
}

// GetData reads manipulator M from holder.
func GetData[M apis.Manipulator](c *Context, holder any) (M, bool) {
	procs := c.Processors()
	if h, ok := customData[M](procs, holder); ok {
		return custom.Get[M](h)
	}
	return processor.From[M](procs, holder)
}

// FillData merges holder's state into m. A nil f lets the holder's state
// win.
func FillData[M apis.Manipulator](c *Context, holder any, m M, f apis.MergeFunction) (M, bool) {
	procs := c.Processors()
	if h, ok := customData[M](procs, holder); ok {
		held, ok := custom.Get[M](h)
		if !ok {
			var zero M
			return zero, false
		}
		out, ok := merge.Or(f, merge.ForceNotation).Merge(m, held).(M)
		return out, ok
	}
	return processor.Fill(procs, holder, m, f)
}

// OfferData writes m to holder, resolving a clash with held data through
// f. A nil f lets m win.
func OfferData[M apis.Manipulator](c *Context, holder any, m M, f apis.MergeFunction) *transaction.Result {
	procs := c.Processors()
	f = merge.Or(f, merge.ForceNotation)
	if h, ok := customData[M](procs, holder); ok {
		return h.OfferCustom(m, f)
	}
	return processor.SetData(procs, holder, m, f)
}

// RemoveData removes manipulator M from holder.
func RemoveData[M apis.Manipulator](c *Context, holder any) *transaction.Result {
	procs := c.Processors()
	if h, ok := customData[M](procs, holder); ok {
		return custom.Remove[M](h)
	}
	return processor.RemoveData[M](procs, holder)
}

// CreateData returns holder's state as M. Processor-backed holders
// without the data yield M's defaults.
func CreateData[M apis.Manipulator](c *Context, holder any) (M, bool) {
	procs := c.Processors()
	if h, ok := customData[M](procs, holder); ok {
		return custom.Get[M](h)
	}
	return processor.CreateFrom[M](procs, holder)
}

// BuildData decodes M from a container.
func BuildData[M apis.Manipulator](c *Context, n *view.Node) (M, bool, error) {
	return processor.Build[M](c.Processors(), n)
}

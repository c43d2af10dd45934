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
	"fmt"
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/transaction"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

var dispatchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "dmx_dispatch_total",
	Help: "Processor dispatches by operation and outcome.",
}, []string{"op", "outcome"})

// Read outcomes; writes are labelled with their transaction.Outcome.
const (
	outcomeFound       = "FOUND"
	outcomeAbsent      = "ABSENT"
	outcomeUnsupported = "UNSUPPORTED"
)

func observeRead(op string, found bool) {
	if found {
		dispatchTotal.WithLabelValues(op, outcomeFound).Inc()
		return
	}
	dispatchTotal.WithLabelValues(op, outcomeAbsent).Inc()
}

func observeWrite(op string, res *transaction.Result) *transaction.Result {
	dispatchTotal.WithLabelValues(op, res.Outcome().String()).Inc()
	return res
}

// unsupported logs and counts a dispatch no processor accepted and
// returns the error describing it.
func (r *Registry) unsupported(op, what string, holder any) error {
	dispatchTotal.WithLabelValues(op, outcomeUnsupported).Inc()
	name := r.holder(holder)
	r.log.Debug("no processor supports holder", "op", op, "data", what, "holder", name)
	return fmt.Errorf("%w: %s on %s", ErrUnsupportedData, what, name)
}

func valueProcessor[T any](r *Registry, holder any, k *key.Key[T]) Value[T] {
	if k == nil {
		return nil
	}
	if p := first(r.state.Load().values[k], holder); p != nil {
		return p.(Value[T])
	}
	return nil
}

func dataProcessor[M apis.Manipulator](r *Registry, holder any) Data[M] {
	if p := first(r.state.Load().data[reflect.TypeFor[M]()], holder); p != nil {
		return p.(Data[M])
	}
	return nil
}

// Get reads the datum of k from holder.
func Get[T any](r *Registry, holder any, k *key.Key[T]) (T, bool) {
	p := valueProcessor(r, holder, k)
	if p == nil {
		var zero T
		_ = r.unsupported("get", keyName(k), holder)
		return zero, false
	}
	v, ok := p.Get(holder)
	observeRead("get", ok)
	return v, ok
}

// Offer writes v for k to holder.
func Offer[T any](r *Registry, holder any, k *key.Key[T], v T) *transaction.Result {
	p := valueProcessor(r, holder, k)
	if p == nil {
		err := r.unsupported("offer", keyName(k), holder)
		if k == nil {
			return transaction.Unsupported(err)
		}
		return transaction.Unsupported(err, value.NewImmutable(k, v))
	}
	return observeWrite("offer", p.Offer(holder, v))
}

// OfferValue writes a value handle. Rejected results carry v itself.
func OfferValue[T any](r *Registry, holder any, v value.Of[T]) *transaction.Result {
	if v == nil {
		return observeWrite("offer", transaction.FailNoData())
	}
	k := v.Typed()
	p := valueProcessor(r, holder, k)
	if p == nil {
		return transaction.Unsupported(r.unsupported("offer", keyName(k), holder), Snapshot(v))
	}
	return observeWrite("offer", p.Offer(holder, v.Get()))
}

// Remove clears the datum of k on holder.
func Remove[T any](r *Registry, holder any, k *key.Key[T]) *transaction.Result {
	p := valueProcessor(r, holder, k)
	if p == nil {
		return transaction.Unsupported(r.unsupported("remove", keyName(k), holder))
	}
	return observeWrite("remove", p.Remove(holder))
}

// Transform replaces the datum of k with f applied to it. It fails with
// ErrUnsupportedData when no processor supports holder and with ErrNoData,
// leaving holder untouched, when holder has no datum for k.
func Transform[T any](r *Registry, holder any, k *key.Key[T], f func(T) T) (*transaction.Result, error) {
	p := valueProcessor(r, holder, k)
	if p == nil {
		return nil, r.unsupported("transform", keyName(k), holder)
	}
	if t, ok := p.(Transformer[T]); ok {
		res, err := t.Transform(holder, f)
		if err != nil {
			return nil, err
		}
		return observeWrite("transform", res), nil
	}
	cur, ok := p.Get(holder)
	if !ok {
		observeRead("transform", false)
		return nil, fmt.Errorf("%w: %s on %s", ErrNoData, k.Name(), r.holder(holder))
	}
	return observeWrite("transform", p.Offer(holder, f(cur))), nil
}

// From reads manipulator M from holder.
func From[M apis.Manipulator](r *Registry, holder any) (M, bool) {
	p := dataProcessor[M](r, holder)
	if p == nil {
		var zero M
		_ = r.unsupported("from", typeName[M](), holder)
		return zero, false
	}
	m, ok := p.From(holder)
	observeRead("from", ok)
	return m, ok
}

// Fill merges holder's state into m.
func Fill[M apis.Manipulator](r *Registry, holder any, m M, f apis.MergeFunction) (M, bool) {
	p := dataProcessor[M](r, holder)
	if p == nil {
		var zero M
		_ = r.unsupported("fill", typeName[M](), holder)
		return zero, false
	}
	out, ok := p.Fill(holder, m, f)
	observeRead("fill", ok)
	return out, ok
}

// SetData writes m to holder.
func SetData[M apis.Manipulator](r *Registry, holder any, m M, f apis.MergeFunction) *transaction.Result {
	p := dataProcessor[M](r, holder)
	if p == nil {
		return transaction.Unsupported(r.unsupported("set", typeName[M](), holder), m.Values()...)
	}
	return observeWrite("set", p.Set(holder, m, f))
}

// RemoveData removes manipulator M from holder.
func RemoveData[M apis.Manipulator](r *Registry, holder any) *transaction.Result {
	p := dataProcessor[M](r, holder)
	if p == nil {
		return transaction.Unsupported(r.unsupported("remove", typeName[M](), holder))
	}
	return observeWrite("remove", p.Remove(holder))
}

// CreateFrom returns holder's state as M, or M's defaults.
func CreateFrom[M apis.Manipulator](r *Registry, holder any) (M, bool) {
	p := dataProcessor[M](r, holder)
	if p == nil {
		var zero M
		_ = r.unsupported("create", typeName[M](), holder)
		return zero, false
	}
	m, ok := p.CreateFrom(holder)
	observeRead("create", ok)
	return m, ok
}

// Build decodes M with the first processor registered for it.
func Build[M apis.Manipulator](r *Registry, n *view.Node) (M, bool, error) {
	var zero M
	ps := r.state.Load().data[reflect.TypeFor[M]()]
	if len(ps) == 0 {
		dispatchTotal.WithLabelValues("build", outcomeUnsupported).Inc()
		return zero, false, fmt.Errorf("%w: no builder for %s", ErrUnsupportedData, typeName[M]())
	}
	m, ok, err := ps[0].(Data[M]).Build(n)
	if err != nil {
		return zero, false, err
	}
	observeRead("build", ok)
	return m, ok, nil
}

// Snapshot returns an immutable view of v.
func Snapshot(v value.Value) value.Immutable {
	switch x := v.(type) {
	case value.Immutable:
		return x
	case value.Mutable:
		return x.Snapshot()
	}
	return nil
}

func keyName(k key.Any) string {
	if k == nil || reflect.ValueOf(k).IsNil() {
		return "<nil key>"
	}
	return k.Name()
}

func typeName[M any]() string { return reflect.TypeFor[M]().String() }

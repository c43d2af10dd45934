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

package view

import (
	"bytes"
	"encoding"
	"fmt"
	"math"
	"reflect"
	"sort"
)

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// KindInvalid is the zero Kind; no valid node carries it.
	KindInvalid Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBlob
	KindSequence
	KindMap
)

// String returns a short lowercase name.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBlob:
		return "blob"
	case KindSequence:
		return "sequence"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(k))
	}
}

// Serializable is implemented by anything that renders itself as a subtree.
type Serializable interface {
	ToContainer() *Node
}

// Node is a document tree node: a leaf primitive, an ordered sequence,
// or an ordered mapping from path segment to child.
//
// A Node is exclusively owned by whoever built it. Inserting a node into
// another tree copies it.
type Node struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	blob []byte
	seq  []*Node
	keys []string
	kids map[string]*Node
}

// NewMap returns an empty mapping node.
func NewMap() *Node {
	return &Node{kind: KindMap, kids: make(map[string]*Node)}
}

// Bool returns a boolean leaf.
func Bool(v bool) *Node { return &Node{kind: KindBool, b: v} }

// Int returns an integer leaf.
func Int(v int64) *Node { return &Node{kind: KindInt, i: v} }

// Float returns a floating point leaf.
func Float(v float64) *Node { return &Node{kind: KindFloat, f: v} }

// String returns a string leaf.
func String(v string) *Node { return &Node{kind: KindString, s: v} }

// Blob returns a binary leaf holding a copy of v.
func Blob(v []byte) *Node {
	return &Node{kind: KindBlob, blob: append([]byte(nil), v...)}
}

// Sequence returns a sequence node adopting copies of items.
func Sequence(items ...*Node) *Node {
	n := &Node{kind: KindSequence, seq: make([]*Node, 0, len(items))}
	for _, it := range items {
		n.seq = append(n.seq, it.Copy())
	}
	return n
}

// Kind returns the variant tag.
func (n *Node) Kind() Kind {
	if n == nil {
		return KindInvalid
	}
	return n.kind
}

// From converts a Go value into a node.
//
// Supported inputs: *Node, Serializable, bool, integers, floats, string,
// []byte, encoding.TextMarshaler (as string), slices and arrays (as
// sequences) and maps with string or TextMarshaler keys (as mappings
// sorted by key).
func From(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedType)
	case *Node:
		return x.Copy(), nil
	case Serializable:
		return x.ToContainer(), nil
	case bool:
		return Bool(x), nil
	case string:
		return String(x), nil
	case []byte:
		return Blob(x), nil
	case int:
		return Int(int64(x)), nil
	case int8:
		return Int(int64(x)), nil
	case int16:
		return Int(int64(x)), nil
	case int32:
		return Int(int64(x)), nil
	case int64:
		return Int(x), nil
	case uint8:
		return Int(int64(x)), nil
	case uint16:
		return Int(int64(x)), nil
	case uint32:
		return Int(int64(x)), nil
	case float32:
		return Float(float64(x)), nil
	case float64:
		return Float(x), nil
	case []*Node:
		return Sequence(x...), nil
	case encoding.TextMarshaler:
		b, err := x.MarshalText()
		if err != nil {
			return nil, err
		}
		return String(string(b)), nil
	}
	return fromReflect(reflect.ValueOf(v))
}

// fromReflect handles container shapes not matched by the type switch.
func fromReflect(rv reflect.Value) (*Node, error) {
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		out := &Node{kind: KindSequence, seq: make([]*Node, 0, rv.Len())}
		for i := 0; i < rv.Len(); i++ {
			c, err := From(rv.Index(i).Interface())
			if err != nil {
				return nil, err
			}
			out.seq = append(out.seq, c)
		}
		return out, nil
	case reflect.Map:
		type entry struct {
			k string
			v reflect.Value
		}
		entries := make([]entry, 0, rv.Len())
		it := rv.MapRange()
		for it.Next() {
			k, err := mapKey(it.Key())
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry{k: k, v: it.Value()})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].k < entries[j].k })
		out := NewMap()
		for _, e := range entries {
			c, err := From(e.v.Interface())
			if err != nil {
				return nil, err
			}
			out.put(e.k, c)
		}
		return out, nil
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
		}
		return Int(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		return Float(rv.Float()), nil
	}
	if !rv.IsValid() {
		return nil, fmt.Errorf("%w: invalid value", ErrUnsupportedType)
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, rv.Type())
}

func mapKey(k reflect.Value) (string, error) {
	if tm, ok := k.Interface().(encoding.TextMarshaler); ok {
		b, err := tm.MarshalText()
		return string(b), err
	}
	if k.Kind() == reflect.String {
		return k.String(), nil
	}
	return "", fmt.Errorf("%w: map key %s", ErrUnsupportedType, k.Type())
}

// Set stores v at q, creating intermediate mappings, and returns n for
// chaining. It panics if n is not a mapping, if q is empty, or if v has no
// document representation: all three are programming errors.
func (n *Node) Set(q Query, v any) *Node {
	if err := n.TrySet(q, v); err != nil {
		panic(err)
	}
	return n
}

// TrySet is Set reporting failures as errors.
func (n *Node) TrySet(q Query, v any) error {
	if n.Kind() != KindMap {
		return ErrNotMap
	}
	if q.IsEmpty() {
		return fmt.Errorf("dmx(view): empty query")
	}
	child, err := From(v)
	if err != nil {
		return fmt.Errorf("set %q: %w", q.String(), err)
	}
	cur := n
	for _, seg := range q.parts[:len(q.parts)-1] {
		next, ok := cur.kids[seg]
		if !ok || next.kind != KindMap {
			next = NewMap()
			cur.put(seg, next)
		}
		cur = next
	}
	cur.put(q.Last(), child)
	return nil
}

// put inserts or replaces a direct child keeping first-insertion order.
func (n *Node) put(seg string, child *Node) {
	if _, ok := n.kids[seg]; !ok {
		n.keys = append(n.keys, seg)
	}
	n.kids[seg] = child
}

// Get returns the node at q.
func (n *Node) Get(q Query) (*Node, bool) {
	cur := n
	for _, seg := range q.parts {
		if cur.Kind() != KindMap {
			return nil, false
		}
		next, ok := cur.kids[seg]
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, cur != nil
}

// Contains reports whether a node exists at q.
func (n *Node) Contains(q Query) bool {
	_, ok := n.Get(q)
	return ok
}

// Remove deletes the node at q and reports whether it existed.
func (n *Node) Remove(q Query) bool {
	if q.IsEmpty() {
		return false
	}
	parent, ok := n.Get(q.Parent())
	if !ok || parent.kind != KindMap {
		return false
	}
	seg := q.Last()
	if _, ok := parent.kids[seg]; !ok {
		return false
	}
	delete(parent.kids, seg)
	for i, k := range parent.keys {
		if k == seg {
			parent.keys = append(parent.keys[:i], parent.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the direct child segments of a mapping in insertion order.
func (n *Node) Keys() []string {
	if n.Kind() != KindMap {
		return nil
	}
	return append([]string(nil), n.keys...)
}

// Len returns the number of children of a mapping or sequence.
func (n *Node) Len() int {
	switch n.Kind() {
	case KindMap:
		return len(n.keys)
	case KindSequence:
		return len(n.seq)
	}
	return 0
}

// Items returns the elements of a sequence node.
func (n *Node) Items() []*Node {
	if n.Kind() != KindSequence {
		return nil
	}
	return append([]*Node(nil), n.seq...)
}

// Append adds copies of items to a sequence node.
func (n *Node) Append(items ...*Node) *Node {
	if n.Kind() != KindSequence {
		panic(fmt.Errorf("dmx(view): append to %s node", n.Kind()))
	}
	for _, it := range items {
		n.seq = append(n.seq, it.Copy())
	}
	return n
}

// Bool returns the leaf boolean.
func (n *Node) Bool() (bool, bool) { return n.b, n.Kind() == KindBool }

// Int returns the leaf integer.
func (n *Node) Int() (int64, bool) { return n.i, n.Kind() == KindInt }

// Float returns the leaf number; integers are widened.
func (n *Node) Float() (float64, bool) {
	switch n.Kind() {
	case KindFloat:
		return n.f, true
	case KindInt:
		return float64(n.i), true
	}
	return 0, false
}

// Str returns the leaf string.
func (n *Node) Str() (string, bool) { return n.s, n.Kind() == KindString }

// Bytes returns a copy of the leaf blob.
func (n *Node) Bytes() ([]byte, bool) {
	if n.Kind() != KindBlob {
		return nil, false
	}
	return append([]byte(nil), n.blob...), true
}

// Copy returns a deep copy of n.
func (n *Node) Copy() *Node {
	if n == nil {
		return nil
	}
	out := &Node{kind: n.kind, b: n.b, i: n.i, f: n.f, s: n.s}
	if n.blob != nil {
		out.blob = append([]byte(nil), n.blob...)
	}
	switch n.kind {
	case KindSequence:
		out.seq = make([]*Node, len(n.seq))
		for i, c := range n.seq {
			out.seq[i] = c.Copy()
		}
	case KindMap:
		out.keys = append([]string(nil), n.keys...)
		out.kids = make(map[string]*Node, len(n.kids))
		for k, c := range n.kids {
			out.kids[k] = c.Copy()
		}
	}
	return out
}

// Equal reports structural equality. Mapping order is significant.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.kind != o.kind {
		return false
	}
	switch n.kind {
	case KindBool:
		return n.b == o.b
	case KindInt:
		return n.i == o.i
	case KindFloat:
		return n.f == o.f
	case KindString:
		return n.s == o.s
	case KindBlob:
		return bytes.Equal(n.blob, o.blob)
	case KindSequence:
		if len(n.seq) != len(o.seq) {
			return false
		}
		for i := range n.seq {
			if !n.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(n.keys) != len(o.keys) {
			return false
		}
		for i, k := range n.keys {
			if o.keys[i] != k || !n.kids[k].Equal(o.kids[k]) {
				return false
			}
		}
		return true
	}
	return true
}

// String renders the node as YAML for diagnostics.
func (n *Node) String() string {
	b, err := Marshal(n)
	if err != nil {
		return fmt.Sprintf("<%s node: %v>", n.Kind(), err)
	}
	return string(b)
}

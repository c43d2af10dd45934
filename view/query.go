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

import "strings"

// Separator joins query segments in their textual form.
const Separator = "."

// Query is an immutable, dotted path into a document tree.
// The zero Query addresses the node it is applied to.
type Query struct {
	parts []string
}

// Of builds a Query from raw segments. Empty segments are dropped.
func Of(parts ...string) Query {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}
	return Query{parts: out}
}

// Parse splits a dotted path such as "BlockEntityTag.Text1".
func Parse(dotted string) Query {
	return Of(strings.Split(dotted, Separator)...)
}

// Then returns a new query with other appended to q.
func (q Query) Then(other Query) Query {
	out := make([]string, 0, len(q.parts)+len(other.parts))
	out = append(out, q.parts...)
	out = append(out, other.parts...)
	return Query{parts: out}
}

// Child returns a new query with the given segments appended.
func (q Query) Child(parts ...string) Query {
	return q.Then(Of(parts...))
}

// Parts returns a copy of the segments.
func (q Query) Parts() []string {
	return append([]string(nil), q.parts...)
}

// Len returns the number of segments.
func (q Query) Len() int { return len(q.parts) }

// IsEmpty reports whether q addresses the root.
func (q Query) IsEmpty() bool { return len(q.parts) == 0 }

// Last returns the final segment, or "" for the empty query.
func (q Query) Last() string {
	if len(q.parts) == 0 {
		return ""
	}
	return q.parts[len(q.parts)-1]
}

// Parent returns q without its final segment.
func (q Query) Parent() Query {
	if len(q.parts) <= 1 {
		return Query{}
	}
	return Query{parts: append([]string(nil), q.parts[:len(q.parts)-1]...)}
}

// Equal reports segment-wise equality.
func (q Query) Equal(other Query) bool {
	if len(q.parts) != len(other.parts) {
		return false
	}
	for i := range q.parts {
		if q.parts[i] != other.parts[i] {
			return false
		}
	}
	return true
}

// String returns the dotted form.
func (q Query) String() string {
	return strings.Join(q.parts, Separator)
}

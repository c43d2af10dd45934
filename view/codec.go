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
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Marshal encodes n as YAML, keeping mapping order and leaf kinds.
func Marshal(n *Node) ([]byte, error) {
	if n == nil {
		return nil, fmt.Errorf("dmx(view): marshal nil node")
	}
	return yaml.Marshal(n)
}

// Unmarshal decodes YAML produced by Marshal (or written by hand) into a
// fresh tree.
func Unmarshal(b []byte) (*Node, error) {
	n := &Node{}
	if err := yaml.Unmarshal(b, n); err != nil {
		return nil, err
	}
	if n.kind == KindInvalid {
		return NewMap(), nil
	}
	return n, nil
}

// MarshalYAML implements yaml.Marshaler.
func (n *Node) MarshalYAML() (any, error) {
	return n.toYAML()
}

func (n *Node) toYAML() (*yaml.Node, error) {
	switch n.Kind() {
	case KindBool:
		return scalar("!!bool", strconv.FormatBool(n.b)), nil
	case KindInt:
		return scalar("!!int", strconv.FormatInt(n.i, 10)), nil
	case KindFloat:
		return scalar("!!float", formatFloat(n.f)), nil
	case KindString:
		return scalar("!!str", n.s), nil
	case KindBlob:
		return scalar("!!binary", base64.StdEncoding.EncodeToString(n.blob)), nil
	case KindSequence:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, c := range n.seq {
			y, err := c.toYAML()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, y)
		}
		return out, nil
	case KindMap:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range n.keys {
			y, err := n.kids[k].toYAML()
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, scalar("!!str", k), y)
		}
		return out, nil
	}
	return nil, fmt.Errorf("dmx(view): cannot encode %s node", n.Kind())
}

func scalar(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return ".inf"
	case math.IsInf(f, -1):
		return "-.inf"
	case math.IsNaN(f):
		return ".nan"
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (n *Node) UnmarshalYAML(v *yaml.Node) error {
	dec, err := fromYAML(v, Query{})
	if err != nil {
		return err
	}
	*n = *dec
	return nil
}

func fromYAML(v *yaml.Node, at Query) (*Node, error) {
	switch v.Kind {
	case yaml.DocumentNode:
		if len(v.Content) == 0 {
			return NewMap(), nil
		}
		return fromYAML(v.Content[0], at)
	case yaml.AliasNode:
		return fromYAML(v.Alias, at)
	case yaml.SequenceNode:
		out := &Node{kind: KindSequence, seq: make([]*Node, 0, len(v.Content))}
		for i, c := range v.Content {
			child, err := fromYAML(c, at.Child(itoa(i)))
			if err != nil {
				return nil, err
			}
			out.seq = append(out.seq, child)
		}
		return out, nil
	case yaml.MappingNode:
		out := NewMap()
		for i := 0; i+1 < len(v.Content); i += 2 {
			k := v.Content[i].Value
			child, err := fromYAML(v.Content[i+1], at.Child(k))
			if err != nil {
				return nil, err
			}
			out.put(k, child)
		}
		return out, nil
	case yaml.ScalarNode:
		return scalarFromYAML(v, at)
	}
	return nil, Invalid(at, "unsupported yaml node kind %d", v.Kind)
}

func scalarFromYAML(v *yaml.Node, at Query) (*Node, error) {
	switch v.ShortTag() {
	case "!!bool":
		var b bool
		if err := v.Decode(&b); err != nil {
			return nil, Invalid(at, "bad bool %q", v.Value)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := v.Decode(&i); err != nil {
			return nil, Invalid(at, "bad int %q", v.Value)
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := v.Decode(&f); err != nil {
			return nil, Invalid(at, "bad float %q", v.Value)
		}
		return Float(f), nil
	case "!!binary":
		b, err := base64.StdEncoding.DecodeString(v.Value)
		if err != nil {
			return nil, Invalid(at, "bad binary: %v", err)
		}
		return &Node{kind: KindBlob, blob: b}, nil
	case "!!null":
		return nil, Invalid(at, "null is not a document value")
	}
	return String(v.Value), nil
}

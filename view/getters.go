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

// The typed getters below share one contract: (zero, false, nil) when
// nothing is stored at q, (zero, false, *InvalidDataError) when the stored
// node has the wrong kind, (v, true, nil) otherwise.

func (n *Node) lookup(q Query, want Kind) (*Node, bool, error) {
	c, ok := n.Get(q)
	if !ok {
		return nil, false, nil
	}
	if c.kind != want {
		if want == KindFloat && c.kind == KindInt {
			return c, true, nil
		}
		return nil, false, &InvalidDataError{Path: q, Want: want, Got: c.kind}
	}
	return c, true, nil
}

// GetBool reads a boolean at q.
func (n *Node) GetBool(q Query) (bool, bool, error) {
	c, ok, err := n.lookup(q, KindBool)
	if !ok {
		return false, false, err
	}
	return c.b, true, nil
}

// GetInt reads an integer at q.
func (n *Node) GetInt(q Query) (int64, bool, error) {
	c, ok, err := n.lookup(q, KindInt)
	if !ok {
		return 0, false, err
	}
	return c.i, true, nil
}

// GetFloat reads a number at q; integers are widened.
func (n *Node) GetFloat(q Query) (float64, bool, error) {
	c, ok, err := n.lookup(q, KindFloat)
	if !ok {
		return 0, false, err
	}
	f, _ := c.Float()
	return f, true, nil
}

// GetString reads a string at q.
func (n *Node) GetString(q Query) (string, bool, error) {
	c, ok, err := n.lookup(q, KindString)
	if !ok {
		return "", false, err
	}
	return c.s, true, nil
}

// GetBlob reads a binary leaf at q.
func (n *Node) GetBlob(q Query) ([]byte, bool, error) {
	c, ok, err := n.lookup(q, KindBlob)
	if !ok {
		return nil, false, err
	}
	b, _ := c.Bytes()
	return b, true, nil
}

// GetSequence reads the elements of a sequence at q.
func (n *Node) GetSequence(q Query) ([]*Node, bool, error) {
	c, ok, err := n.lookup(q, KindSequence)
	if !ok {
		return nil, false, err
	}
	return c.Items(), true, nil
}

// GetMap reads a mapping at q.
func (n *Node) GetMap(q Query) (*Node, bool, error) {
	return n.lookup(q, KindMap)
}

// GetStrings reads a sequence of strings at q.
func (n *Node) GetStrings(q Query) ([]string, bool, error) {
	items, ok, err := n.GetSequence(q)
	if !ok {
		return nil, false, err
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		s, isStr := it.Str()
		if !isStr {
			return nil, false, &InvalidDataError{Path: q.Child(itoa(i)), Want: KindString, Got: it.Kind()}
		}
		out = append(out, s)
	}
	return out, true, nil
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	var buf [20]byte
	pos := len(buf)
	for i > 0 {
		pos--
		buf[pos] = byte('0' + i%10)
		i /= 10
	}
	return string(buf[pos:])
}

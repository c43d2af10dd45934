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

package data

import (
	"fmt"
	"slices"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/keys"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/value"
	"dirpx.dev/dmx/view"
)

// SignLineCount is the number of lines a sign carries.
const SignLineCount = 4

// Sign holds the text lines of a sign.
type Sign struct {
	lines *value.List[text.Text]
}

// NewSign returns sign data holding lines. With no lines it holds
// SignLineCount blank lines.
func NewSign(lines ...text.Text) *Sign {
	if len(lines) == 0 {
		lines = BlankLines()
	}
	return &Sign{lines: value.NewList(keys.SignLines, lines...)}
}

// BlankLines returns SignLineCount empty lines.
func BlankLines() []text.Text {
	return make([]text.Text, SignLineCount)
}

func (s *Sign) Lines() *value.List[text.Text] { return s.lines }

func (s *Sign) Values() []value.Immutable {
	return []value.Immutable{s.lines.AsImmutable()}
}

func (s *Sign) Copy() *Sign { return &Sign{lines: s.lines.AsImmutable().AsMutable()} }

func (s *Sign) CopyManipulator() apis.Manipulator { return s.Copy() }

func (s *Sign) AsImmutable() *ImmutableSign {
	return &ImmutableSign{lines: s.lines.AsImmutable()}
}

func (s *Sign) Compare(o *Sign) int { return compareLines(s.lines.Get(), o.lines.Get()) }

func (s *Sign) ToContainer() *view.Node { return linesContainer(s.lines.Get()) }

func (s *Sign) String() string { return fmt.Sprintf("Sign%v", plainLines(s.lines.Get())) }

// ImmutableSign is the immutable counterpart of Sign.
type ImmutableSign struct {
	lines *value.ImmutableList[text.Text]
}

// NewImmutableSign is NewSign(lines...).AsImmutable().
func NewImmutableSign(lines ...text.Text) *ImmutableSign {
	return NewSign(lines...).AsImmutable()
}

func (s *ImmutableSign) Lines() *value.ImmutableList[text.Text] { return s.lines }

func (s *ImmutableSign) Values() []value.Immutable { return []value.Immutable{s.lines} }

func (s *ImmutableSign) AsMutable() *Sign { return &Sign{lines: s.lines.AsMutable()} }

// WithLines returns sign data holding lines.
func (s *ImmutableSign) WithLines(lines ...text.Text) *ImmutableSign {
	return &ImmutableSign{lines: s.lines.With(lines)}
}

func (s *ImmutableSign) Compare(o *ImmutableSign) int {
	return compareLines(s.lines.Get(), o.lines.Get())
}

func (s *ImmutableSign) ToContainer() *view.Node { return linesContainer(s.lines.Get()) }

func (s *ImmutableSign) String() string {
	return fmt.Sprintf("ImmutableSign%v", plainLines(s.lines.Get()))
}

// BuildSign reads sign data written by ToContainer.
func BuildSign(n *view.Node) (*Sign, bool, error) {
	q := keys.SignLines.Query()
	seq, ok, err := n.GetSequence(q)
	if err != nil || !ok {
		return nil, false, err
	}
	lines := make([]text.Text, 0, len(seq))
	for i, item := range seq {
		line, err := text.FromView(item)
		if err != nil {
			return nil, false, fmt.Errorf("%s[%d]: %w", q, i, err)
		}
		lines = append(lines, line)
	}
	return &Sign{lines: value.NewList(keys.SignLines, lines...)}, true, nil
}

func linesContainer(lines []text.Text) *view.Node {
	seq := make([]*view.Node, 0, len(lines))
	for _, l := range lines {
		seq = append(seq, l.ToContainer())
	}
	return view.NewMap().Set(keys.SignLines.Query(), seq)
}

func compareLines(a, b []text.Text) int {
	return slices.CompareFunc(a, b, text.Compare)
}

func plainLines(lines []text.Text) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Plain()
	}
	return out
}

var (
	_ Mutable[*Sign, *ImmutableSign]   = (*Sign)(nil)
	_ Immutable[*ImmutableSign, *Sign] = (*ImmutableSign)(nil)
)

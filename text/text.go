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

// Package text implements the rich text values carried by keys such as
// SIGN_LINES and DISPLAY_NAME.
package text

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"dirpx.dev/dmx/view"
)

// Color is one of the sixteen legacy chat colors, or ColorNone.
type Color uint8

const (
	ColorNone Color = iota
	Black
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
)

var colorNames = [...]string{
	"", "black", "dark_blue", "dark_green", "dark_aqua", "dark_red",
	"dark_purple", "gold", "gray", "dark_gray", "blue", "green", "aqua",
	"red", "light_purple", "yellow", "white",
}

// String returns the color name; ColorNone renders as "".
func (c Color) String() string {
	if int(c) < len(colorNames) {
		return colorNames[c]
	}
	return fmt.Sprintf("Unknown(%d)", uint8(c))
}

// ParseColor parses a color name.
func ParseColor(s string) (Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range colorNames {
		if i > 0 && n == s {
			return Color(i), nil
		}
	}
	return ColorNone, fmt.Errorf("dmx(text): unknown color %q", s)
}

// Text is a styled text component with optional children. Children
// inherit the style of their parent when rendered.
type Text struct {
	Content       string
	Color         Color
	Bold          bool
	Italic        bool
	Underlined    bool
	Strikethrough bool
	Obfuscated    bool
	Children      []Text
}

// Of returns an unstyled text.
func Of(s string) Text { return Text{Content: s} }

// Empty is the blank text.
var Empty = Text{}

// IsEmpty reports whether t renders nothing.
func (t Text) IsEmpty() bool { return t.Plain() == "" }

// Plain returns the concatenated content without styling.
func (t Text) Plain() string {
	var b strings.Builder
	t.plain(&b)
	return b.String()
}

func (t Text) plain(b *strings.Builder) {
	b.WriteString(t.Content)
	for _, c := range t.Children {
		c.plain(b)
	}
}

// Equal compares structurally; nil and empty children are equivalent.
func (t Text) Equal(o Text) bool {
	if t.Content != o.Content || t.style() != o.style() || len(t.Children) != len(o.Children) {
		return false
	}
	for i := range t.Children {
		if !t.Children[i].Equal(o.Children[i]) {
			return false
		}
	}
	return true
}

// Compare orders texts by plain rendering, then by the root's content,
// color and style flags, then by children. It returns 0 only for texts
// that are Equal.
func Compare(a, b Text) int {
	return cmp.Or(
		strings.Compare(a.Plain(), b.Plain()),
		strings.Compare(a.Content, b.Content),
		cmp.Compare(a.Color, b.Color),
		compareFlags(a, b),
		slices.CompareFunc(a.Children, b.Children, Compare),
	)
}

func compareFlags(a, b Text) int {
	for _, f := range [...][2]bool{
		{a.Bold, b.Bold},
		{a.Italic, b.Italic},
		{a.Underlined, b.Underlined},
		{a.Strikethrough, b.Strikethrough},
		{a.Obfuscated, b.Obfuscated},
	} {
		if f[0] != f[1] {
			if f[1] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Clone returns a deep copy.
func (t Text) Clone() Text {
	out := t
	if t.Children != nil {
		out.Children = make([]Text, len(t.Children))
		for i, c := range t.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}

type style struct {
	color                                           Color
	bold, italic, underlined, strikethrough, obfusc bool
}

func (t Text) style() style {
	return style{t.Color, t.Bold, t.Italic, t.Underlined, t.Strikethrough, t.Obfuscated}
}

func (s style) apply(t *Text) {
	t.Color, t.Bold, t.Italic, t.Underlined, t.Strikethrough, t.Obfuscated =
		s.color, s.bold, s.italic, s.underlined, s.strikethrough, s.obfusc
}

var (
	qText          = view.Of("text")
	qColor         = view.Of("color")
	qBold          = view.Of("bold")
	qItalic        = view.Of("italic")
	qUnderlined    = view.Of("underlined")
	qStrikethrough = view.Of("strikethrough")
	qObfuscated    = view.Of("obfuscated")
	qExtra         = view.Of("extra")
)

// ToContainer renders t as a mapping; unset style flags are omitted.
func (t Text) ToContainer() *view.Node {
	n := view.NewMap().Set(qText, t.Content)
	if t.Color != ColorNone {
		n.Set(qColor, t.Color.String())
	}
	for _, f := range []struct {
		q  view.Query
		on bool
	}{
		{qBold, t.Bold}, {qItalic, t.Italic}, {qUnderlined, t.Underlined},
		{qStrikethrough, t.Strikethrough}, {qObfuscated, t.Obfuscated},
	} {
		if f.on {
			n.Set(f.q, true)
		}
	}
	if len(t.Children) > 0 {
		extra := make([]*view.Node, 0, len(t.Children))
		for _, c := range t.Children {
			extra = append(extra, c.ToContainer())
		}
		n.Set(qExtra, extra)
	}
	return n
}

// FromView decodes a mapping written by ToContainer. A bare string leaf is
// accepted as unstyled content.
func FromView(n *view.Node) (Text, error) {
	if s, ok := n.Str(); ok {
		return Of(s), nil
	}
	if n.Kind() != view.KindMap {
		return Text{}, &view.InvalidDataError{Want: view.KindMap, Got: n.Kind()}
	}
	var t Text
	var err error
	if t.Content, _, err = n.GetString(qText); err != nil {
		return Text{}, err
	}
	name, ok, err := n.GetString(qColor)
	if err != nil {
		return Text{}, err
	}
	if ok {
		if t.Color, err = ParseColor(name); err != nil {
			return Text{}, view.Invalid(qColor, "%v", err)
		}
	}
	for _, f := range []struct {
		q   view.Query
		dst *bool
	}{
		{qBold, &t.Bold}, {qItalic, &t.Italic}, {qUnderlined, &t.Underlined},
		{qStrikethrough, &t.Strikethrough}, {qObfuscated, &t.Obfuscated},
	} {
		if *f.dst, _, err = n.GetBool(f.q); err != nil {
			return Text{}, err
		}
	}
	extra, ok, err := n.GetSequence(qExtra)
	if err != nil {
		return Text{}, err
	}
	if ok && len(extra) > 0 {
		t.Children = make([]Text, 0, len(extra))
		for i, e := range extra {
			c, err := FromView(e)
			if err != nil {
				return Text{}, fmt.Errorf("extra[%d]: %w", i, err)
			}
			t.Children = append(t.Children, c)
		}
	}
	return t, nil
}

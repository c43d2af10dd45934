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

package text

import "strings"

// SectionSign introduces a legacy formatting code.
const SectionSign = '§'

const legacyColors = "0123456789abcdef"

// Legacy renders t in the section-sign format used by item tags. Nested
// components are flattened with inherited styles.
func Legacy(t Text) string {
	var b strings.Builder
	var prev style
	first := true
	for _, seg := range t.flatten(style{}) {
		if seg.Content == "" {
			continue
		}
		s := seg.style()
		if !first && s != prev && prev != (style{}) {
			b.WriteRune(SectionSign)
			b.WriteByte('r')
			prev = style{}
		}
		if s != prev {
			writeCodes(&b, s)
		}
		b.WriteString(seg.Content)
		prev = s
		first = false
	}
	return b.String()
}

func writeCodes(b *strings.Builder, s style) {
	if s.color != ColorNone {
		b.WriteRune(SectionSign)
		b.WriteByte(legacyColors[s.color-1])
	}
	for _, f := range []struct {
		on   bool
		code byte
	}{{s.obfusc, 'k'}, {s.bold, 'l'}, {s.strikethrough, 'm'}, {s.underlined, 'n'}, {s.italic, 'o'}} {
		if f.on {
			b.WriteRune(SectionSign)
			b.WriteByte(f.code)
		}
	}
}

// flatten returns leaf segments with effective styles and no children.
func (t Text) flatten(parent style) []Text {
	s := t.style()
	if s.color == ColorNone {
		s.color = parent.color
	}
	s.bold = s.bold || parent.bold
	s.italic = s.italic || parent.italic
	s.underlined = s.underlined || parent.underlined
	s.strikethrough = s.strikethrough || parent.strikethrough
	s.obfusc = s.obfusc || parent.obfusc

	seg := Text{Content: t.Content}
	s.apply(&seg)
	out := []Text{seg}
	for _, c := range t.Children {
		out = append(out, c.flatten(s)...)
	}
	return out
}

// ParseLegacy decodes section-sign formatted text. Unknown codes are kept
// verbatim. A single segment is returned as-is; several segments become
// children of an unstyled root.
func ParseLegacy(s string) Text {
	var segs []Text
	var cur strings.Builder
	var st style
	flush := func() {
		if cur.Len() == 0 {
			return
		}
		seg := Text{Content: cur.String()}
		st.apply(&seg)
		segs = append(segs, seg)
		cur.Reset()
	}

	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r != SectionSign || i+1 >= len(runes) {
			cur.WriteRune(r)
			continue
		}
		code := runes[i+1]
		if code >= 'A' && code <= 'Z' {
			code += 'a' - 'A'
		}
		next := st
		switch {
		case strings.ContainsRune(legacyColors, code):
			next = style{color: Color(strings.IndexRune(legacyColors, code) + 1)}
		case code == 'k':
			next.obfusc = true
		case code == 'l':
			next.bold = true
		case code == 'm':
			next.strikethrough = true
		case code == 'n':
			next.underlined = true
		case code == 'o':
			next.italic = true
		case code == 'r':
			next = style{}
		default:
			cur.WriteRune(r)
			continue
		}
		if next != st {
			flush()
			st = next
		}
		i++
	}
	flush()

	switch len(segs) {
	case 0:
		return Text{}
	case 1:
		return segs[0]
	}
	return Text{Children: segs}
}

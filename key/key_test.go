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

package key_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/view"
)

func TestNew_QueryDefaultsToName(t *testing.T) {
	k := key.New[bool]("IS_SCREAMING", "")
	assert.Equal(t, "IS_SCREAMING", k.Query().String())
	assert.Equal(t, key.KindPlain, k.Kind())
	assert.Equal(t, reflect.TypeFor[bool](), k.Type())

	k2 := key.New[string]("DISPLAY_NAME", "Display.Name")
	assert.True(t, k2.Query().Equal(view.Of("Display", "Name")))
}

func TestNew_EmptyNamePanics(t *testing.T) {
	assert.Panics(t, func() { key.New[int]("", "x") })
}

func TestList_CloneDoesNotAlias(t *testing.T) {
	k := key.NewList[text.Text]("SIGN_LINES", "Lines")
	assert.Equal(t, key.KindList, k.Kind())

	src := []text.Text{text.Of("a"), {Content: "b", Children: []text.Text{text.Of("c")}}}
	cp := k.Clone(src)
	require.True(t, k.Equal(src, cp))

	cp[0] = text.Of("z")
	cp[1].Children[0] = text.Of("y")
	assert.Equal(t, "a", src[0].Content)
	assert.Equal(t, "c", src[1].Children[0].Content)
	assert.False(t, k.Equal(src, cp))
	assert.Nil(t, k.Clone(nil))
}

func TestSet_EqualityIgnoresOrder(t *testing.T) {
	k := key.NewSet[string]("PLACEABLE_BLOCKS", "CanPlaceOn")
	a := map[string]struct{}{"x": {}, "y": {}}
	b := map[string]struct{}{"y": {}, "x": {}}
	assert.True(t, k.Equal(a, b))

	c := k.Clone(a)
	delete(c, "x")
	assert.Len(t, a, 2)
	assert.False(t, k.Equal(a, c))
}

func TestMap_CloneAndEqual(t *testing.T) {
	k := key.NewMap[string, []int]("SCORES", "")
	assert.Equal(t, key.KindMap, k.Kind())
	a := map[string][]int{"a": {1, 2}}
	b := k.Clone(a)
	assert.True(t, k.Equal(a, b))
	b["b"] = nil
	assert.False(t, k.Equal(a, b))
}

func TestKind_String(t *testing.T) {
	cases := map[key.Kind]string{
		key.KindPlain:   "plain",
		key.KindBounded: "bounded",
		key.KindList:    "list",
		key.KindSet:     "set",
		key.KindMap:     "map",
		key.Kind(42):    "Unknown(42)",
	}
	for k, want := range cases {
		assert.Equal(t, want, k.String())
	}
}

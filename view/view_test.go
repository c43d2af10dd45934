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

package view_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/view"
)

type stamp string

func (s stamp) MarshalText() ([]byte, error) { return []byte("stamp:" + string(s)), nil }

func TestQuery_ParseAndCompose(t *testing.T) {
	q := view.Parse("BlockEntityTag..Text1")
	assert.Equal(t, []string{"BlockEntityTag", "Text1"}, q.Parts())
	assert.Equal(t, "BlockEntityTag.Text1", q.String())
	assert.Equal(t, "Text1", q.Last())
	assert.True(t, q.Parent().Equal(view.Of("BlockEntityTag")))

	joined := view.Of("a").Then(view.Of("b", "c"))
	assert.Equal(t, "a.b.c", joined.String())
	assert.Equal(t, "a.b.c.d", joined.Child("d").String())
	assert.True(t, view.Query{}.IsEmpty())
	assert.Equal(t, "", view.Query{}.Last())
}

func TestNode_SetGetNested(t *testing.T) {
	n := view.NewMap().
		Set(view.Parse("Owner.Id"), "abc").
		Set(view.Parse("Owner.Name"), "Notch").
		Set(view.Of("Count"), 3).
		Set(view.Of("Ratio"), 0.5).
		Set(view.Of("Flag"), true)

	s, ok, err := n.GetString(view.Parse("Owner.Name"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Notch", s)

	i, ok, err := n.GetInt(view.Of("Count"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.EqualValues(t, 3, i)

	f, ok, err := n.GetFloat(view.Of("Count"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 3.0, f)

	assert.Equal(t, []string{"Owner", "Count", "Ratio", "Flag"}, n.Keys())
}

func TestNode_TypedGetterContract(t *testing.T) {
	n := view.NewMap().Set(view.Of("Name"), 12)

	_, ok, err := n.GetString(view.Of("Missing"))
	assert.False(t, ok)
	assert.NoError(t, err)

	_, ok, err = n.GetString(view.Of("Name"))
	assert.False(t, ok)
	require.Error(t, err)
	assert.True(t, errors.Is(err, view.ErrInvalidData))

	var ide *view.InvalidDataError
	require.True(t, errors.As(err, &ide))
	assert.Equal(t, view.KindString, ide.Want)
	assert.Equal(t, view.KindInt, ide.Got)
	assert.Equal(t, "Name", ide.Path.String())
}

func TestNode_GetStringsRejectsMixedSequence(t *testing.T) {
	n := view.NewMap().Set(view.Of("Ids"), []any{"a", 2})
	_, _, err := n.GetStrings(view.Of("Ids"))
	require.ErrorIs(t, err, view.ErrInvalidData)
}

func TestNode_RemoveKeepsOrder(t *testing.T) {
	n := view.NewMap().Set(view.Of("a"), 1).Set(view.Of("b"), 2).Set(view.Of("c"), 3)
	assert.True(t, n.Remove(view.Of("b")))
	assert.False(t, n.Remove(view.Of("b")))
	assert.Equal(t, []string{"a", "c"}, n.Keys())
}

func TestNode_CopyIsIndependent(t *testing.T) {
	inner := view.NewMap().Set(view.Of("x"), 1)
	outer := view.NewMap().Set(view.Of("inner"), inner)

	inner.Set(view.Of("x"), 2)
	got, _, _ := outer.GetInt(view.Parse("inner.x"))
	assert.EqualValues(t, 1, got, "Set must copy adopted nodes")

	cp := outer.Copy()
	cp.Set(view.Parse("inner.x"), 9)
	got, _, _ = outer.GetInt(view.Parse("inner.x"))
	assert.EqualValues(t, 1, got)
	assert.False(t, cp.Equal(outer))
}

func TestFrom_ContainersAndMarshalers(t *testing.T) {
	n, err := view.From(map[string][]stamp{"b": {"x"}, "a": {"y", "z"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, n.Keys())

	items, ok, err := n.GetStrings(view.Of("a"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []string{"stamp:y", "stamp:z"}, items)

	_, err = view.From(struct{}{})
	assert.ErrorIs(t, err, view.ErrUnsupportedType)
}

func TestFrom_UnsignedRange(t *testing.T) {
	n, err := view.From(uint64(math.MaxInt64))
	require.NoError(t, err)
	v, ok := n.Int()
	require.True(t, ok)
	assert.Equal(t, int64(math.MaxInt64), v)

	_, err = view.From(uint64(math.MaxInt64) + 1)
	assert.ErrorIs(t, err, view.ErrUnsupportedType)
	_, err = view.From([]uint64{math.MaxUint64})
	assert.ErrorIs(t, err, view.ErrUnsupportedType)
}

func TestSetPanicsOnNonMap(t *testing.T) {
	assert.Panics(t, func() { view.String("x").Set(view.Of("a"), 1) })
}

func TestYAML_RoundTrip(t *testing.T) {
	n := view.NewMap().
		Set(view.Of("Flag"), true).
		Set(view.Of("Int"), 7).
		Set(view.Of("Whole"), 2.0).
		Set(view.Of("Frac"), 0.25).
		Set(view.Of("Numeric"), "42").
		Set(view.Of("Blob"), []byte{0, 1, 2}).
		Set(view.Of("Lines"), []string{"a", "b"}).
		Set(view.Parse("Nested.Deep"), "v")

	b, err := view.Marshal(n)
	require.NoError(t, err)

	back, err := view.Unmarshal(b)
	require.NoError(t, err)
	assert.True(t, back.Equal(n), "round trip mismatch:\n%s", string(b))

	whole, ok := mustGet(t, back, "Whole").Float()
	require.True(t, ok)
	assert.Equal(t, 2.0, whole)
	assert.Equal(t, view.KindFloat, mustGet(t, back, "Whole").Kind())
	assert.Equal(t, view.KindString, mustGet(t, back, "Numeric").Kind())
}

func TestUnmarshal_RejectsNull(t *testing.T) {
	_, err := view.Unmarshal([]byte("a: null\n"))
	require.ErrorIs(t, err, view.ErrInvalidData)
}

func TestUnmarshal_EmptyDocument(t *testing.T) {
	n, err := view.Unmarshal(nil)
	require.NoError(t, err)
	assert.Equal(t, view.KindMap, n.Kind())
	assert.Zero(t, n.Len())
}

func mustGet(t *testing.T, n *view.Node, path string) *view.Node {
	t.Helper()
	c, ok := n.Get(view.Parse(path))
	require.True(t, ok, "missing %s", path)
	return c
}

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

package value_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/text"
	"dirpx.dev/dmx/value"
)

var (
	health  = key.NewBounded[float64]("HEALTH", "Health")
	lines   = key.NewList[text.Text]("SIGN_LINES", "Lines")
	blocks  = key.NewSet[string]("PLACEABLE_BLOCKS", "CanPlaceOn")
	scores  = key.NewMap[string, int]("SCORES", "Scores")
	flag    = key.New[bool]("IS_SCREAMING", "Screaming")
	comment = key.New[string]("COMMENT", "")
)

func TestBounded_Construction(t *testing.T) {
	cases := []struct {
		name      string
		v, lo, hi float64
		wantErr   bool
	}{
		{"inside", 10, 0, 20, false},
		{"at min", 0, 0, 20, false},
		{"at max", 20, 0, 20, false},
		{"below", -1, 0, 20, true},
		{"above", 20.5, 0, 20, true},
		{"inverted", 5, 10, 0, true},
		{"nan", math.NaN(), 0, 20, true},
		{"nan bound", 5, math.NaN(), 20, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, err := value.NewBounded(health, tc.v, tc.lo, tc.hi, 20)
			if tc.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, value.ErrRange)
				var re *value.RangeError
				require.ErrorAs(t, err, &re)
				assert.Equal(t, "HEALTH", re.Key)
				assert.Nil(t, b)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.v, b.Get())
		})
	}
}

func TestBounded_SetOutOfRangeKeepsValue(t *testing.T) {
	b := value.MustBounded(health, 10, 0, 20, 20)

	got, err := b.Set(25)
	assert.ErrorIs(t, err, value.ErrRange)
	assert.Same(t, b, got)
	assert.Equal(t, 10.0, b.Get())

	got, err = b.Set(15)
	require.NoError(t, err)
	assert.Same(t, b, got)
	assert.Equal(t, 15.0, b.Get())
	assert.Equal(t, 20.0, b.Reset().Get())
}

func TestImmutableBounded_With(t *testing.T) {
	ib, err := value.NewImmutableBounded(health, 5, 0, 20, 20)
	require.NoError(t, err)

	next, err := ib.With(6)
	require.NoError(t, err)
	assert.NotSame(t, ib, next)
	assert.Equal(t, 5.0, ib.Get())
	assert.Equal(t, 6.0, next.Get())
	assert.Equal(t, 0.0, next.Min())
	assert.Equal(t, 20.0, next.Max())

	_, err = ib.With(21)
	assert.ErrorIs(t, err, value.ErrRange)
}

func TestPlain_SetReturnsSelfAndWithReturnsNew(t *testing.T) {
	p := value.New(comment, "a")
	assert.Same(t, p, p.Set("b"))
	assert.Equal(t, "b", p.Get())
	assert.Equal(t, "B!", p.Transform(func(s string) string { return "B!" }).Get())

	ip := p.AsImmutable()
	next := ip.With("c")
	assert.NotSame(t, ip, next)
	assert.Equal(t, "B!", ip.Get())
	assert.Equal(t, "c", next.Get())
}

func TestList_ConversionsDeepCopy(t *testing.T) {
	l := value.NewList(lines, text.Of("a"), text.Of("b"))
	il := l.AsImmutable()

	l.SetAt(0, text.Of("z")).Add(text.Of("c"))
	assert.Equal(t, 2, il.Len())
	assert.Equal(t, "a", il.At(0).Content)

	back := il.AsMutable()
	back.RemoveAt(0)
	assert.Equal(t, 2, il.Len())
	assert.Equal(t, []text.Text{text.Of("b")}, back.Get())

	got := il.Get()
	got[0] = text.Of("mutated")
	assert.Equal(t, "a", il.At(0).Content)

	appended := il.WithAppended(text.Of("x"))
	assert.Equal(t, 3, appended.Len())
	assert.Equal(t, 2, il.Len())
}

func TestSet_Uniqueness(t *testing.T) {
	s := value.NewSet(blocks, "minecraft:stone", "minecraft:stone", "minecraft:dirt")
	assert.Equal(t, 2, s.Len())
	assert.True(t, s.Contains("minecraft:dirt"))

	is := s.AsImmutable()
	s.Remove("minecraft:dirt")
	assert.True(t, is.Contains("minecraft:dirt"))
	assert.Equal(t, 3, is.With("minecraft:grass").Len())
	assert.Equal(t, 1, is.Without("minecraft:stone").Len())
	assert.Equal(t, []string{"minecraft:dirt", "minecraft:stone"}, value.Sorted(is.Get()))
}

func TestMap_PutAndWith(t *testing.T) {
	m := value.NewMap(scores, map[string]int{"a": 1})
	im := m.AsImmutable()
	m.Put("b", 2).Delete("a")

	v, ok := im.Lookup("a")
	assert.True(t, ok)
	assert.Equal(t, 1, v)
	assert.Equal(t, 1, im.Len())
	assert.Equal(t, 2, im.With("c", 3).Len())
	assert.Equal(t, 0, im.Without("a").Len())
}

func TestEqual(t *testing.T) {
	a := value.New(flag, true)
	b := value.NewImmutable(flag, true)
	c := value.NewImmutable(flag, false)
	other := value.NewImmutable(key.New[bool]("IS_SCREAMING", "Screaming"), true)

	assert.True(t, value.Equal(a, b))
	assert.False(t, value.Equal(a, c))
	assert.False(t, value.Equal(b, other), "distinct key instances never compare equal")
	assert.True(t, value.Equal(nil, nil))
	assert.False(t, value.Equal(a, nil))

	var snap value.Immutable = a.Snapshot()
	assert.True(t, value.Equal(snap, b))
	assert.True(t, value.Equal(snap.Mutable(), a))
}

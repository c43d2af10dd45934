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

package reflect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/dmx/config"
	uref "dirpx.dev/dmx/utils/reflect"
)

type (
	Horse          struct{}
	Slime          struct{}
	Generic[T any] struct{ V T }
)

func TestNormalize_Containers(t *testing.T) {
	conf := config.DefaultConfig()
	horse := reflect.TypeOf(Horse{})

	cases := []struct {
		name string
		typ  reflect.Type
		want reflect.Type
	}{
		{"named", horse, horse},
		{"ptr", reflect.TypeOf(&Horse{}), horse},
		{"slice", reflect.TypeOf([]Horse{}), horse},
		{"array", reflect.TypeOf([3]*Horse{}), horse},
		{"chan", reflect.TypeOf(make(chan Horse)), horse},
		{"map prefers elem", reflect.TypeOf(map[string]Horse{}), horse},
		{"map falls back to key", reflect.TypeOf(map[Horse][]int{}), horse},
		{"map unwraps elem", reflect.TypeOf(map[[2]int][]Slime{}), reflect.TypeOf(Slime{})},
		{"generic", reflect.TypeOf(Generic[int]{}), reflect.TypeOf(Generic[int]{})},
		{"builtin", reflect.TypeOf(0), reflect.TypeOf(0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := uref.Normalize(tc.typ, conf)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalize_MapPreferKey(t *testing.T) {
	conf := config.NewConfig(config.WithMapPreferElem(false))
	got, err := uref.Normalize(reflect.TypeOf(map[string]Horse{}), conf)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(""), got)
}

func TestNormalize_Errors(t *testing.T) {
	conf := config.DefaultConfig()

	_, err := uref.Normalize(nil, conf)
	assert.ErrorIs(t, err, uref.ErrReflectNilType)

	_, err = uref.Normalize(reflect.TypeOf(struct{}{}), conf)
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)

	_, err = uref.Normalize(reflect.TypeOf(func() {}), conf)
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)

	_, err = uref.Normalize(reflect.TypeOf((***Horse)(nil)), config.NewConfig(config.WithMaxUnwrap(2)))
	assert.ErrorIs(t, err, uref.ErrReflectTypeNotNamed)
}

func TestNormalize_ZeroMaxUnwrapUsesDefault(t *testing.T) {
	conf := config.DefaultConfig()
	conf.MaxUnwrap = 0
	got, err := uref.Normalize(reflect.TypeOf((***Horse)(nil)), conf)
	require.NoError(t, err)
	assert.Equal(t, reflect.TypeOf(Horse{}), got)
}

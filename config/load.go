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

package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/cache/strategy"
)

// Settings is the externally loadable subset of apis.Config. Fields left
// unset by the environment or the file keep their current values.
type Settings struct {
	IncludeBuiltins bool              `env:"DMX_INCLUDE_BUILTINS" yaml:"include_builtins"`
	MaxUnwrap       int               `env:"DMX_MAX_UNWRAP" yaml:"max_unwrap"`
	MapPreferElem   bool              `env:"DMX_MAP_PREFER_ELEM" yaml:"map_prefer_elem"`
	InternStrategy  strategy.Strategy `env:"DMX_INTERN_STRATEGY" yaml:"intern_strategy"`
	InternCapacity  int               `env:"DMX_INTERN_CAPACITY" yaml:"intern_capacity"`
	InternShards    int               `env:"DMX_INTERN_SHARDS" yaml:"intern_shards"`
	FreezeOnBuild   bool              `env:"DMX_FREEZE" yaml:"freeze_on_build"`
}

func settingsOf(c apis.Config) Settings {
	return Settings{
		IncludeBuiltins: c.IncludeBuiltins,
		MaxUnwrap:       c.MaxUnwrap,
		MapPreferElem:   c.MapPreferElem,
		InternStrategy:  c.InternStrategy,
		InternCapacity:  c.InternCapacity,
		InternShards:    c.InternShards,
		FreezeOnBuild:   c.FreezeOnBuild,
	}
}

// Option returns an Option applying s.
func (s Settings) Option() Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = s.IncludeBuiltins
		c.MaxUnwrap = s.MaxUnwrap
		c.MapPreferElem = s.MapPreferElem
		c.InternStrategy = s.InternStrategy
		c.InternCapacity = s.InternCapacity
		c.InternShards = s.InternShards
		c.FreezeOnBuild = s.FreezeOnBuild
	}
}

// FromEnv builds a config from opts and then overrides it with DMX_*
// environment variables.
func FromEnv(opts ...Option) (apis.Config, error) {
	cfg := NewConfig(opts...)
	s := settingsOf(cfg)
	if err := env.Parse(&s); err != nil {
		return apis.Config{}, fmt.Errorf("dmx(config): parse env: %w", err)
	}
	s.Option()(&cfg)
	return sanitize(cfg), nil
}

// Load builds a config from opts and then overrides it with the YAML file
// at path.
func Load(path string, opts ...Option) (apis.Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return apis.Config{}, fmt.Errorf("dmx(config): read config: %w", err)
	}
	return Decode(b, opts...)
}

// Decode is Load for an in-memory YAML document.
func Decode(b []byte, opts ...Option) (apis.Config, error) {
	cfg := NewConfig(opts...)
	s := settingsOf(cfg)
	if err := yaml.Unmarshal(b, &s); err != nil {
		return apis.Config{}, fmt.Errorf("dmx(config): parse config: %w", err)
	}
	s.Option()(&cfg)
	return sanitize(cfg), nil
}

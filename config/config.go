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
	"log/slog"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/cache/strategy"
)

const (
	// DefaultIncludeBuiltins represents the default for IncludeBuiltins.
	DefaultIncludeBuiltins = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMapPreferElem represents the default for MapPreferElem.
	DefaultMapPreferElem = true
	// DefaultInternStrategy represents the default for InternStrategy.
	DefaultInternStrategy = strategy.LRU
	// DefaultInternCapacity represents the default for InternCapacity.
	DefaultInternCapacity = 4096
	// DefaultInternShards represents the default for InternShards.
	DefaultInternShards = 16
	// DefaultFreezeOnBuild represents the default for FreezeOnBuild.
	DefaultFreezeOnBuild = false
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	return sanitize(cfg)
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IncludeBuiltins: DefaultIncludeBuiltins,
		MaxUnwrap:       DefaultMaxUnwrap,
		MapPreferElem:   DefaultMapPreferElem,
		InternStrategy:  DefaultInternStrategy,
		InternCapacity:  DefaultInternCapacity,
		InternShards:    DefaultInternShards,
		FreezeOnBuild:   DefaultFreezeOnBuild,
	}
}

// sanitize resets out-of-range numeric knobs to their defaults.
func sanitize(cfg apis.Config) apis.Config {
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.InternCapacity <= 0 {
		cfg.InternCapacity = DefaultInternCapacity
	}
	if cfg.InternShards <= 0 {
		cfg.InternShards = DefaultInternShards
	}
	return cfg
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIncludeBuiltins sets the IncludeBuiltins option.
func WithIncludeBuiltins(include bool) Option {
	return func(c *apis.Config) {
		c.IncludeBuiltins = include
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMapPreferElem sets the MapPreferElem option.
func WithMapPreferElem(prefer bool) Option {
	return func(c *apis.Config) {
		c.MapPreferElem = prefer
	}
}

// WithInternStrategy sets the interning cache policy.
func WithInternStrategy(s strategy.Strategy) Option {
	return func(c *apis.Config) {
		c.InternStrategy = s
	}
}

// WithInternCapacity sets the LRU capacity. Non-positive values reset to
// the default.
func WithInternCapacity(n int) Option {
	return func(c *apis.Config) {
		c.InternCapacity = n
	}
}

// WithInternShards sets the shard count. Non-positive values reset to the
// default.
func WithInternShards(n int) Option {
	return func(c *apis.Config) {
		c.InternShards = n
	}
}

// WithFreezeOnBuild sets the FreezeOnBuild option.
func WithFreezeOnBuild(freeze bool) Option {
	return func(c *apis.Config) {
		c.FreezeOnBuild = freeze
	}
}

// WithLogger sets the diagnostics logger.
func WithLogger(l *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = l
	}
}

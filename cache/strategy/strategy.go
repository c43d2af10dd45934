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

package strategy

import (
	"fmt"
	"strings"
)

// Strategy controls how the interning cache retains canonical values.
//
// # Overview
//
// Strategy selects a broad class of retention behavior for intern.Cache.
// It does not carry capacity or shard counts; those are configured
// separately through apis.Config.
//
// # Values
//
//   - LRU       Capacity-bounded, least recently used entries are evicted.
//   - Unbounded Entries are retained for the life of the cache.
//   - None      Interning disabled; every lookup constructs a fresh value.
//
// # Contract
//
// Existing values MUST NOT change meaning. Strategy is a plain integer and
// is safe to share across goroutines.
type Strategy int

const (
	// LRU evicts the least recently used entry of a shard once the shard
	// holds its share of the configured capacity. Hits and inserts both
	// count as use.
	LRU Strategy = iota

	// Unbounded never evicts. Suitable when the set of distinct interned
	// values is small and closed (enum flags, booleans).
	Unbounded

	// None disables interning. Lookups always miss and nothing is stored,
	// which makes it useful for comparing behavior with and without the
	// cache in tests.
	None
)

// String returns the stable token for s, or a diagnostic form for unknown
// values.
func (s Strategy) String() string {
	switch s {
	case LRU:
		return "LRU"
	case Unbounded:
		return "Unbounded"
	case None:
		return "None"
	default:
		return fmt.Sprintf("Unknown(%d)", s)
	}
}

// Parse converts a case-insensitive token into a Strategy.
func Parse(s string) (Strategy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return None, fmt.Errorf("intern: empty strategy")
	}

	switch strings.ToUpper(trimmed) {
	case "LRU":
		return LRU, nil
	case "UNBOUNDED":
		return Unbounded, nil
	case "NONE":
		return None, nil
	default:
		return None, fmt.Errorf("intern: unknown strategy %q", s)
	}
}

// MustParse is like Parse but panics on error. Intended for static
// configuration.
func MustParse(s string) Strategy {
	strategy, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return strategy
}

// MarshalText implements encoding.TextMarshaler.
func (s Strategy) MarshalText() ([]byte, error) {
	switch s {
	case LRU, Unbounded, None:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("intern: cannot marshal unknown strategy %d", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It is used by both
// the env and YAML configuration loaders.
func (s *Strategy) UnmarshalText(text []byte) error {
	value, err := Parse(string(text))
	if err != nil {
		return err
	}
	*s = value
	return nil
}

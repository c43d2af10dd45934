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

// Package intern canonicalizes immutable values.
//
// Two lookups with the same kind, key and constructor arguments return the
// same *instance* while it stays cached. Misses always succeed by
// constructing a fresh value. Entries are inserted once and never mutated,
// so callers may share them freely.
//
// The cache is split into shards selected by xxhash of the entry
// fingerprint. Each shard has its own mutex and LRU list; concurrent misses
// for one fingerprint are coalesced with singleflight.
package intern

import (
	"cmp"
	"container/list"
	"fmt"
	"log/slog"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/sync/singleflight"

	"dirpx.dev/dmx/apis"
	"dirpx.dev/dmx/cache/strategy"
	"dirpx.dev/dmx/key"
	"dirpx.dev/dmx/value"
)

var (
	lookupsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dmx_intern_lookups_total",
		Help: "Interning cache lookups by result (hit, miss, bypass).",
	}, []string{"result"})

	evictionsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dmx_intern_evictions_total",
		Help: "Values evicted from the interning cache.",
	})
)

// Cache maps value fingerprints to canonical immutable instances.
type Cache struct {
	policy   strategy.Strategy
	perShard int
	shards   []*shard
	flight   singleflight.Group
	log      *slog.Logger
}

type shard struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	lru     *list.List
}

type entry struct {
	fp  string
	val value.Immutable
}

// New constructs a cache from cfg's intern knobs.
func New(cfg apis.Config) *Cache {
	// Never more shards than capacity, so the shards together hold at
	// most InternCapacity entries.
	n := max(min(cfg.InternShards, cfg.InternCapacity), 1)
	c := &Cache{
		policy:   cfg.InternStrategy,
		perShard: max(cfg.InternCapacity/n, 1),
		shards:   make([]*shard, n),
		log:      cfg.Log(),
	}
	for i := range c.shards {
		c.shards[i] = &shard{entries: map[string]*list.Element{}, lru: list.New()}
	}
	return c
}

// Policy returns the retention strategy.
func (c *Cache) Policy() strategy.Strategy { return c.policy }

// Capacity returns the most entries the cache retains under LRU.
func (c *Cache) Capacity() int { return c.perShard * len(c.shards) }

func (c *Cache) shardFor(fp string) *shard {
	return c.shards[xxhash.Sum64String(fp)%uint64(len(c.shards))]
}

// Intern returns the cached value for fp or stores the result of build.
// build errors are returned and nothing is cached.
func (c *Cache) Intern(fp string, build func() (value.Immutable, error)) (value.Immutable, error) {
	if c == nil || c.policy == strategy.None {
		lookupsTotal.WithLabelValues("bypass").Inc()
		return build()
	}

	s := c.shardFor(fp)
	if v, ok := s.get(fp); ok {
		lookupsTotal.WithLabelValues("hit").Inc()
		return v, nil
	}

	res, err, _ := c.flight.Do(fp, func() (any, error) {
		if v, ok := s.get(fp); ok {
			return v, nil
		}
		v, err := build()
		if err != nil {
			return nil, err
		}
		return c.put(s, fp, v), nil
	})
	if err != nil {
		return nil, err
	}
	lookupsTotal.WithLabelValues("miss").Inc()
	return res.(value.Immutable), nil
}

func (s *shard) get(fp string) (value.Immutable, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	el, ok := s.entries[fp]
	if !ok {
		return nil, false
	}
	s.lru.MoveToFront(el)
	return el.Value.(*entry).val, true
}

// put stores v unless another writer already did, returning the winner.
func (c *Cache) put(s *shard, fp string, v value.Immutable) value.Immutable {
	s.mu.Lock()
	defer s.mu.Unlock()
	if el, ok := s.entries[fp]; ok {
		s.lru.MoveToFront(el)
		return el.Value.(*entry).val
	}
	s.entries[fp] = s.lru.PushFront(&entry{fp: fp, val: v})

	if c.policy != strategy.LRU {
		return v
	}
	for s.lru.Len() > c.perShard {
		oldest := s.lru.Back()
		s.lru.Remove(oldest)
		delete(s.entries, oldest.Value.(*entry).fp)
		evictionsTotal.Inc()
	}
	return v
}

// Len returns the number of cached values.
func (c *Cache) Len() int {
	n := 0
	for _, s := range c.shards {
		s.mu.Lock()
		n += s.lru.Len()
		s.mu.Unlock()
	}
	return n
}

// Purge drops every cached value.
func (c *Cache) Purge() {
	for _, s := range c.shards {
		s.mu.Lock()
		clear(s.entries)
		s.lru.Init()
		s.mu.Unlock()
	}
	c.log.Debug("intern cache purged")
}

// Fingerprint identifies a constructor call. The key's address is part of
// it so distinct keys sharing a name never alias.
func Fingerprint(kind key.Kind, k key.Any, args ...any) string {
	return fmt.Sprintf("%s|%s@%p|%#v", kind, k.Name(), k, args)
}

// Value returns the canonical immutable value of k holding v.
func Value[T comparable](c *Cache, k *key.Key[T], v T) *value.ImmutablePlain[T] {
	got, _ := c.Intern(Fingerprint(key.KindPlain, k, v), func() (value.Immutable, error) {
		return value.NewImmutable(k, v), nil
	})
	return got.(*value.ImmutablePlain[T])
}

// Bounded returns the canonical bounded value, or the construction error.
func Bounded[T cmp.Ordered](c *Cache, k *key.Key[T], v, min, max, def T) (*value.ImmutableBounded[T], error) {
	got, err := c.Intern(Fingerprint(key.KindBounded, k, v, min, max, def), func() (value.Immutable, error) {
		return value.NewImmutableBounded(k, v, min, max, def)
	})
	if err != nil {
		return nil, err
	}
	return got.(*value.ImmutableBounded[T]), nil
}

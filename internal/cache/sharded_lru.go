package cache

import (
	"hash/maphash"
)

const numShards = 64

// Sharded is a sharded LRU cache for high-concurrency workloads.
// It distributes entries across 64 shards to reduce lock contention.
type Sharded[K comparable, V any] struct {
	shards [numShards]*LRU[K, V]
	seed   maphash.Seed
}

// NewSharded creates a new sharded LRU cache.
// The capacity is divided evenly across all shards.
func NewSharded[K comparable, V any](capacity int) *Sharded[K, V] {
	shardCapacity := capacity / numShards
	if shardCapacity < 1 {
		shardCapacity = 1
	}

	s := &Sharded[K, V]{
		seed: maphash.MakeSeed(),
	}

	for i := range numShards {
		s.shards[i] = NewLRU[K, V](shardCapacity)
	}

	return s
}

func (s *Sharded[K, V]) shard(key K) *LRU[K, V] {
	return s.shards[maphash.Comparable(s.seed, key)%numShards]
}

// Get returns a cached value.
func (s *Sharded[K, V]) Get(key K) (V, bool) {
	return s.shard(key).Get(key)
}

// Set caches a value.
func (s *Sharded[K, V]) Set(key K, value V) {
	s.shard(key).Set(key, value)
}

// Invalidate removes entries matching the predicate from every shard.
func (s *Sharded[K, V]) Invalidate(predicate func(key K) bool) {
	for i := range numShards {
		s.shards[i].Invalidate(predicate)
	}
}

// Len returns the total number of entries across all shards.
func (s *Sharded[K, V]) Len() int {
	var total int
	for i := range numShards {
		total += s.shards[i].Len()
	}
	return total
}

// Stats returns aggregated hit/miss statistics.
func (s *Sharded[K, V]) Stats() (hits, misses int64) {
	for i := range numShards {
		h, m := s.shards[i].Stats()
		hits += h
		misses += m
	}
	return hits, misses
}

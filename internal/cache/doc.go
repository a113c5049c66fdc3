// Package cache provides in-memory LRU caches for memoized cost values.
//
// # LRU
//
// LRU is a mutex-guarded least-recently-used map with a fixed entry
// capacity and hit/miss counters.
//
// # Sharded LRU
//
// Sharded distributes keys over 64 independent LRU shards to reduce lock
// contention when many goroutines evaluate costs concurrently. Shard
// selection uses hash/maphash over the comparable key.
package cache

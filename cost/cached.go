package cost

import (
	"github.com/hupe1980/unitsel/internal/cache"
	"github.com/hupe1980/unitsel/lattice"
)

type joinKey struct {
	left, right uint64
}

// CachedJoinCost memoizes a join cost calculator by unit IDs.
//
// The wrapped calculator must depend only on the two units, not on the
// targets: the first computed value for a pair is reused for every later
// column. CachedJoinCost is safe for concurrent use if the wrapped
// calculator is, so it can back a search with parallel rows.
type CachedJoinCost struct {
	next  lattice.JoinCoster[Target, Unit]
	cache *cache.Sharded[joinKey, float64]
}

var _ lattice.JoinCoster[Target, Unit] = (*CachedJoinCost)(nil)

// CachedJoin wraps jc with an LRU memo holding up to capacity unit pairs.
func CachedJoin(jc lattice.JoinCoster[Target, Unit], capacity int) *CachedJoinCost {
	return &CachedJoinCost{
		next:  jc,
		cache: cache.NewSharded[joinKey, float64](capacity),
	}
}

// JoinCost implements lattice.JoinCoster.
func (c *CachedJoinCost) JoinCost(leftTarget, rightTarget Target, left, right Unit) float64 {
	key := joinKey{left: left.ID, right: right.ID}
	if v, ok := c.cache.Get(key); ok {
		return v
	}
	v := c.next.JoinCost(leftTarget, rightTarget, left, right)
	c.cache.Set(key, v)
	return v
}

// Stats returns the cache hit and miss counts.
func (c *CachedJoinCost) Stats() (hits, misses int64) {
	return c.cache.Stats()
}

// Len returns the number of memoized pairs.
func (c *CachedJoinCost) Len() int {
	return c.cache.Len()
}

// Forget drops every memoized pair involving the unit with the given ID.
func (c *CachedJoinCost) Forget(id uint64) {
	c.cache.Invalidate(func(k joinKey) bool {
		return k.left == id || k.right == id
	})
}

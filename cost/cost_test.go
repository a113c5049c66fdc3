package cost

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitsel/distance"
	"github.com/hupe1980/unitsel/lattice"
	"github.com/hupe1980/unitsel/testutil"
)

func TestFeatureTargetCost(t *testing.T) {
	tc, err := NewFeatureTargetCost(distance.MetricSquaredL2, 2)
	require.NoError(t, err)
	assert.Equal(t, distance.MetricSquaredL2, tc.Metric())
	assert.Equal(t, 2.0, tc.Weight())

	unit := Unit{ID: 1, Start: []float64{0, 0}, End: []float64{2, 4}}

	// Mean frame is {1, 2}.
	assert.Equal(t, 0.0, tc.TargetCost(Target{Features: []float64{1, 2}}, unit))
	assert.Equal(t, 2*(1.0+4.0), tc.TargetCost(Target{Features: []float64{2, 4}}, unit))
}

func TestFeatureJoinCost(t *testing.T) {
	jc, err := NewFeatureJoinCost(distance.MetricL2, 0.5)
	require.NoError(t, err)

	left := Unit{ID: 10, Start: []float64{9, 9}, End: []float64{0, 0}}
	right := Unit{ID: 20, Start: []float64{3, 4}, End: []float64{9, 9}}
	next := Unit{ID: 11, Start: []float64{3, 4}, End: []float64{9, 9}}

	assert.Equal(t, 2.5, jc.JoinCost(Target{}, Target{}, left, right))
	assert.Equal(t, 0.0, jc.JoinCost(Target{}, Target{}, left, next))

	plain, err := NewFeatureJoinCost(distance.MetricL2, 0.5, WithContiguousBonus(false))
	require.NoError(t, err)
	assert.Equal(t, 2.5, plain.JoinCost(Target{}, Target{}, left, next))
}

func TestNewCost_UnknownMetric(t *testing.T) {
	_, err := NewFeatureTargetCost(distance.Metric(99), 1)
	assert.Error(t, err)

	_, err = NewFeatureJoinCost(distance.Metric(99), 1)
	assert.Error(t, err)
}

// countingJoin counts calls to the wrapped calculator.
type countingJoin struct {
	mu    sync.Mutex
	calls int
	next  lattice.JoinCoster[Target, Unit]
}

func (c *countingJoin) JoinCost(lt, rt Target, left, right Unit) float64 {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()
	return c.next.JoinCost(lt, rt, left, right)
}

func TestCachedJoin(t *testing.T) {
	jc, err := NewFeatureJoinCost(distance.MetricSquaredL2, 1)
	require.NoError(t, err)
	counting := &countingJoin{next: jc}
	cached := CachedJoin(counting, 1024)

	a := Unit{ID: 1, End: []float64{0, 0}}
	b := Unit{ID: 5, Start: []float64{1, 1}}

	assert.Equal(t, 2.0, cached.JoinCost(Target{}, Target{}, a, b))
	assert.Equal(t, 2.0, cached.JoinCost(Target{}, Target{}, a, b))
	assert.Equal(t, 1, counting.calls)

	hits, misses := cached.Stats()
	assert.Equal(t, int64(1), hits)
	assert.Equal(t, int64(1), misses)
	assert.Equal(t, 1, cached.Len())

	cached.Forget(b.ID)
	assert.Equal(t, 0, cached.Len())
	cached.JoinCost(Target{}, Target{}, a, b)
	assert.Equal(t, 2, counting.calls)
}

func TestCachedJoin_Search(t *testing.T) {
	rng := testutil.NewRNG(17)

	const columns, rows, dim = 6, 8, 4
	frames := rng.UniformVectors(2*rows, dim)
	inventory := make([]Unit, rows)
	for r := range rows {
		// Even IDs keep every join non-contiguous.
		inventory[r] = Unit{ID: uint64(r * 2), Start: frames[2*r], End: frames[2*r+1]}
	}

	targets := make([]Target, columns)
	candidates := make([][]Unit, columns)
	for c := range columns {
		targets[c] = Target{Features: rng.UniformVectors(1, dim)[0]}
		candidates[c] = inventory
	}

	lat, err := lattice.NewTable(targets, candidates)
	require.NoError(t, err)

	tc, err := NewFeatureTargetCost(distance.MetricSquaredL2, 1)
	require.NoError(t, err)
	jc, err := NewFeatureJoinCost(distance.MetricSquaredL2, 1)
	require.NoError(t, err)

	ctx := context.Background()
	plain, err := lattice.Search[Target, Unit](ctx, lat, tc, jc)
	require.NoError(t, err)

	cached := CachedJoin(jc, 4096)
	memo, err := lattice.Search[Target, Unit](ctx, lat, tc, cached, lattice.WithParallelRows(4))
	require.NoError(t, err)

	assert.Equal(t, plain.TotalCost(), memo.TotalCost())
	for i := range plain {
		assert.Equal(t, plain[i].Candidate.ID, memo[i].Candidate.ID)
	}

	// rows×rows distinct pairs, reused across the remaining columns.
	hits, misses := cached.Stats()
	assert.Equal(t, int64(rows*rows), misses)
	assert.Equal(t, int64((columns-2)*rows*rows), hits)
}

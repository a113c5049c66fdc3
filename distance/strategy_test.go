package distance_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/unitsel/cluster"
	"github.com/hupe1980/unitsel/distance"
	"github.com/hupe1980/unitsel/testutil"
)

func TestVectorStrategy_Center(t *testing.T) {
	s, err := distance.NewVectorStrategy(distance.MetricSquaredL2)
	require.NoError(t, err)
	assert.Equal(t, distance.MetricSquaredL2, s.Metric())

	c, err := s.Center([][]float64{{1, 1}, {3, 3}})
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 2}, c)

	_, err = s.Center(nil)
	assert.ErrorIs(t, err, cluster.ErrNoSamples)

	_, err = distance.NewVectorStrategy(distance.Metric(42))
	assert.Error(t, err)
}

func TestVectorStrategy_KMeans(t *testing.T) {
	rng := testutil.NewRNG(99)
	centers := testutil.GridCenters(5, 13, 20)
	vecs, labels := rng.GaussianBlobs(centers, 60, 0.5)

	for _, m := range []distance.Metric{distance.MetricSquaredL2, distance.MetricL2, distance.MetricManhattan} {
		t.Run(m.String(), func(t *testing.T) {
			s, err := distance.NewVectorStrategy(m)
			require.NoError(t, err)

			samples := cluster.NewSamples(vecs)
			km, err := cluster.New[[]float64](s, 5, cluster.WithChunkSize(32))
			require.NoError(t, err)
			require.NoError(t, km.Cluster(context.Background(), samples))

			assert.Len(t, km.Centroids(), 5)

			groups := cluster.Group(samples)
			require.Len(t, groups, 5)
			for _, members := range groups {
				assert.Len(t, members, 60)
			}

			// Samples with the same label share a centroid.
			first := make(map[int]*cluster.Sample[[]float64])
			for i, sm := range samples {
				if c, ok := first[labels[i]]; ok {
					assert.Same(t, c, sm.Centroid())
				} else {
					first[labels[i]] = sm.Centroid()
				}
			}
		})
	}
}

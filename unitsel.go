package unitsel

import (
	"context"

	"github.com/hupe1980/unitsel/cluster"
	"github.com/hupe1980/unitsel/lattice"
)

// Search returns the minimum-cost path through lat.
//
// Empty lattices and columns are reported as *CallerDataError before any
// cost is evaluated.
func Search[T, C any](ctx context.Context, lat lattice.Lattice[T, C], tc lattice.TargetCoster[T, C], jc lattice.JoinCoster[T, C], opts ...Option) (lattice.Path[C], error) {
	o := applyOptions(opts)

	path, err := lattice.Search(ctx, lat, tc, jc, o.latticeOptions()...)
	err = translateError("search", err)
	o.logger.LogSearch(ctx, lat.Columns(), path.TotalCost(), err)
	if err != nil {
		return nil, err
	}
	return path, nil
}

// Clusterer is a k-means engine wired to the configured logger and metrics
// collector. Caller data errors are returned as *CallerDataError.
//
// Clusterer is not safe for concurrent use.
type Clusterer[P any] struct {
	km     *cluster.KMeans[P]
	logger *Logger
}

// NewClusterer creates a Clusterer producing at most k clusters.
func NewClusterer[P any](strategy cluster.Strategy[P], k int, opts ...Option) (*Clusterer[P], error) {
	o := applyOptions(opts)

	km, err := cluster.New(strategy, k, o.clusterOptions()...)
	if err != nil {
		return nil, translateError("new clusterer", err)
	}

	return &Clusterer[P]{
		km:     km,
		logger: o.logger.WithK(k),
	}, nil
}

// Cluster partitions samples; see cluster.KMeans.Cluster.
func (c *Clusterer[P]) Cluster(ctx context.Context, samples []*cluster.Sample[P]) error {
	err := translateError("cluster", c.km.Cluster(ctx, samples))
	c.logger.LogCluster(ctx, len(samples), c.km.Stats(), err)
	return err
}

// Assign runs one assignment pass; see cluster.KMeans.Assign.
func (c *Clusterer[P]) Assign(ctx context.Context, samples []*cluster.Sample[P]) (float64, error) {
	total, err := c.km.Assign(ctx, samples)
	return total, translateError("assign", err)
}

// BuildRepresentativeIndex builds the representative index over the
// current centroids.
func (c *Clusterer[P]) BuildRepresentativeIndex(ctx context.Context) error {
	err := translateError("build index", c.km.BuildRepresentativeIndex(ctx))
	c.logger.LogIndexBuild(ctx, len(c.km.Centroids()), err)
	return err
}

// DropRepresentativeIndex discards the representative index.
func (c *Clusterer[P]) DropRepresentativeIndex() { c.km.DropRepresentativeIndex() }

// Centroids returns a snapshot of the current centroids.
func (c *Clusterer[P]) Centroids() []*cluster.Sample[P] { return c.km.Centroids() }

// Stats returns a summary of the last clustering run.
func (c *Clusterer[P]) Stats() cluster.Stats { return c.km.Stats() }

// Engine returns the underlying k-means engine.
func (c *Clusterer[P]) Engine() *cluster.KMeans[P] { return c.km }

package cluster

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// KMeans partitions samples into at most K clusters.
type KMeans[P any] struct {
	strategy Strategy[P]
	k        int
	opts     options

	centroids []*Sample[P]
	index     *representativeIndex[P]

	iterations    int
	totalDistance float64
	dropped       int

	// progress throttles per-chunk debug lines.
	progress rate.Sometimes
}

// Stats summarizes the state of the last clustering run.
type Stats struct {
	Iterations    int     // Assignment passes executed by the last Cluster call.
	TotalDistance float64 // Summed nearest distance of the last assignment pass.
	Centroids     int     // Current centroid count.
	Dropped       int     // Centroids dropped as empty during the last Cluster call.
	Indexed       bool    // Whether a representative index is currently built.
}

// New creates a k-means engine that will produce at most k clusters.
func New[P any](strategy Strategy[P], k int, opts ...Option) (*KMeans[P], error) {
	if strategy == nil {
		return nil, ErrNilStrategy
	}
	if k <= 0 {
		return nil, ErrInvalidK
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &KMeans[P]{
		strategy: strategy,
		k:        k,
		opts:     o,
		progress: rate.Sometimes{Interval: time.Second},
	}, nil
}

// K returns the requested cluster count.
func (km *KMeans[P]) K() int { return km.k }

// Centroids returns a snapshot of the current centroids.
func (km *KMeans[P]) Centroids() []*Sample[P] {
	out := make([]*Sample[P], len(km.centroids))
	copy(out, km.centroids)
	return out
}

// Iterations returns the number of assignment passes of the last Cluster call.
func (km *KMeans[P]) Iterations() int { return km.iterations }

// Stats returns a summary of the last clustering run.
func (km *KMeans[P]) Stats() Stats {
	return Stats{
		Iterations:    km.iterations,
		TotalDistance: km.totalDistance,
		Centroids:     len(km.centroids),
		Dropped:       km.dropped,
		Indexed:       km.index != nil,
	}
}

// Init picks the initial centroids by uniform stride through samples:
// centroid k is a copy of samples[k*floor(n/K)]. K is clamped to n.
// Any previous centroids and representative index are discarded.
func (km *KMeans[P]) Init(samples []*Sample[P]) error {
	n := len(samples)
	if n == 0 {
		return ErrNoSamples
	}

	k := km.k
	if k > n {
		km.opts.logger.Warn("fewer samples than clusters, clamping k",
			"k", km.k,
			"samples", n,
		)
		k = n
	}

	stride := n / k
	centroids := make([]*Sample[P], k)
	for i := range k {
		// Engine-owned copies: input samples are never used as centroids.
		centroids[i] = &Sample[P]{Value: samples[i*stride].Value}
	}

	km.centroids = centroids
	km.index = nil
	km.iterations = 0
	km.totalDistance = 0
	km.dropped = 0
	return nil
}

// Cluster initializes centroids and refines them until convergence or the
// iteration cap. On return every sample references one of Centroids().
//
// On error the centroid list of the failed step is not committed.
func (km *KMeans[P]) Cluster(ctx context.Context, samples []*Sample[P]) error {
	if err := km.Init(samples); err != nil {
		return err
	}

	prev := math.Inf(1)
	for iter := 1; ; iter++ {
		start := time.Now()

		assign, total, err := km.assignPass(ctx, samples)
		if err != nil {
			return err
		}
		km.commit(samples, assign)

		empty := km.dropEmpty(assign)
		if empty > 0 {
			km.index = nil
		}

		km.iterations = iter
		km.totalDistance = total
		km.dropped += empty

		km.opts.logger.Info("kmeans iteration",
			"iteration", iter,
			"total_distance", total,
			"centroids", len(km.centroids),
			"empty", empty,
		)
		km.opts.metrics.OnIteration(iter, total, len(km.centroids), empty, time.Since(start))

		if total == 0 || prev-total < prev*km.opts.convergence {
			km.opts.logger.Info("kmeans converged",
				"iterations", iter,
				"total_distance", total,
				"centroids", len(km.centroids),
			)
			return nil
		}
		if iter >= km.opts.maxIterations {
			km.opts.logger.Info("kmeans reached max iterations",
				"iterations", iter,
				"total_distance", total,
				"centroids", len(km.centroids),
			)
			return nil
		}

		if err := km.update(ctx, samples, assign); err != nil {
			return err
		}

		if km.opts.autoIndexMin > 0 && len(km.centroids) >= km.opts.autoIndexMin {
			if err := km.BuildRepresentativeIndex(ctx); err != nil {
				return err
			}
		}

		prev = total
	}
}

// Assign attaches every sample to its nearest centroid and returns the summed
// nearest distance. If a representative index is built, the nearest centroid
// is searched approximately through it.
func (km *KMeans[P]) Assign(ctx context.Context, samples []*Sample[P]) (float64, error) {
	if len(km.centroids) == 0 {
		return 0, ErrNoCentroids
	}

	assign, total, err := km.assignPass(ctx, samples)
	if err != nil {
		return 0, err
	}
	km.commit(samples, assign)
	return total, nil
}

// assignPass computes the nearest centroid position for every sample.
// Chunks write disjoint ranges of assign; distance sums are reduced after
// the barrier in chunk order so the total is deterministic.
func (km *KMeans[P]) assignPass(ctx context.Context, samples []*Sample[P]) ([]int, float64, error) {
	n := len(samples)
	assign := make([]int, n)
	if n == 0 {
		return assign, 0, nil
	}

	size := km.opts.chunkSize
	chunks := (n + size - 1) / size
	partial := make([]float64, chunks)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.workers)

	var done atomic.Int64
	for c := range chunks {
		lo := c * size
		hi := min(lo+size, n)

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			var sum float64
			for i := lo; i < hi; i++ {
				pos, d := km.nearest(samples[i].Value)
				assign[i] = pos
				sum += d
			}
			partial[c] = sum

			finished := done.Add(1)
			km.progress.Do(func() {
				km.opts.logger.Debug("kmeans assignment progress",
					"chunks_done", finished,
					"chunks_total", chunks,
				)
			})
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	var total float64
	for _, s := range partial {
		total += s
	}
	return assign, total, nil
}

// nearest returns the position of the nearest centroid and its distance.
// Ties go to the smaller position.
func (km *KMeans[P]) nearest(v P) (int, float64) {
	if km.index != nil {
		return km.index.nearest(v, km.centroids, km.strategy)
	}

	best, bestDist := -1, 0.0
	for i, c := range km.centroids {
		d := km.strategy.Distance(v, c.Value)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

func (km *KMeans[P]) commit(samples []*Sample[P], assign []int) {
	for i, s := range samples {
		s.centroid = km.centroids[assign[i]]
	}
}

// dropEmpty removes centroids no sample was assigned to, remaps assign to
// the new positions and returns the number of dropped centroids.
func (km *KMeans[P]) dropEmpty(assign []int) int {
	occupied := bitset.New(uint(len(km.centroids)))
	for _, pos := range assign {
		occupied.Set(uint(pos))
	}

	kept := int(occupied.Count())
	if kept == len(km.centroids) {
		return 0
	}

	remap := make([]int, len(km.centroids))
	survivors := make([]*Sample[P], 0, kept)
	for i, c := range km.centroids {
		if occupied.Test(uint(i)) {
			remap[i] = len(survivors)
			survivors = append(survivors, c)
		}
	}
	for i, pos := range assign {
		assign[i] = remap[pos]
	}

	dropped := len(km.centroids) - kept
	km.centroids = survivors
	return dropped
}

// update replaces every centroid by the strategy center of its members.
// Centers are computed in parallel; the new list is committed only if all
// of them succeed.
func (km *KMeans[P]) update(ctx context.Context, samples []*Sample[P], assign []int) error {
	members := make([][]P, len(km.centroids))
	for i, s := range samples {
		members[assign[i]] = append(members[assign[i]], s.Value)
	}

	next := make([]*Sample[P], len(km.centroids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.workers)
	for i := range members {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			center, err := km.strategy.Center(members[i])
			if err != nil {
				return fmt.Errorf("cluster: center of centroid %d (%d members): %w", i, len(members[i]), err)
			}
			next[i] = &Sample[P]{Value: center}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	km.centroids = next
	km.index = nil
	km.commit(samples, assign)
	return nil
}

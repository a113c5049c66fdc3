package cluster

import (
	"context"
	"math"
	"time"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/unitsel/internal/queue"
)

// representativeIndex is a coarse second tier over the centroids. Each
// representative owns the positions of the centroids clustered onto it.
// It refers to centroid positions, so it is only valid for the centroid
// list it was built from.
type representativeIndex[P any] struct {
	reps    []P
	members []*roaring.Bitmap
	want    uint64
}

// BuildRepresentativeIndex clusters the current centroids into
// max(1, len(centroids)/divisor) representatives and records which centroids
// map to each of them. Subsequent assignment passes search only the centroids
// of the representatives closest to each sample.
func (km *KMeans[P]) BuildRepresentativeIndex(ctx context.Context) error {
	n := len(km.centroids)
	if n == 0 {
		return ErrNoCentroids
	}

	start := time.Now()
	k := max(1, n/km.opts.repDivisor)

	ix, err := km.buildIndex(ctx, k)
	km.opts.metrics.OnIndexBuild(k, n, time.Since(start), err)
	if err != nil {
		return err
	}

	km.index = ix
	km.opts.logger.Info("kmeans representative index built",
		"representatives", len(ix.reps),
		"centroids", n,
		"search_min", ix.want,
		"duration", time.Since(start),
	)
	return nil
}

// DropRepresentativeIndex discards the representative index so that the
// next assignment pass searches all centroids exhaustively.
func (km *KMeans[P]) DropRepresentativeIndex() {
	km.index = nil
}

func (km *KMeans[P]) buildIndex(ctx context.Context, k int) (*representativeIndex[P], error) {
	inner, err := New(km.strategy, k,
		WithMaxIterations(km.opts.maxIterations),
		WithChunkSize(km.opts.chunkSize),
		WithWorkers(km.opts.workers),
		WithConvergence(km.opts.convergence),
		WithLogger(km.opts.logger.With("tier", "representative")),
	)
	if err != nil {
		return nil, err
	}

	// Wrap centroid values so the inner run never touches the centroids' own
	// back-references.
	points := make([]*Sample[P], len(km.centroids))
	for i, c := range km.centroids {
		points[i] = &Sample[P]{Value: c.Value}
	}

	if err := inner.Cluster(ctx, points); err != nil {
		return nil, err
	}

	reps := inner.centroids
	position := make(map[*Sample[P]]int, len(reps))
	for i, r := range reps {
		position[r] = i
	}

	ix := &representativeIndex[P]{
		reps:    make([]P, len(reps)),
		members: make([]*roaring.Bitmap, len(reps)),
		want:    uint64(math.Ceil(km.opts.repRatio * float64(len(km.centroids)))),
	}
	for i, r := range reps {
		ix.reps[i] = r.Value
		ix.members[i] = roaring.New()
	}
	for i, p := range points {
		ix.members[position[p.centroid]].Add(uint32(i))
	}
	ix.want = max(ix.want, 1)

	return ix, nil
}

// candidates collects the centroid positions of the representatives closest
// to v until at least want positions are gathered.
func (ix *representativeIndex[P]) candidates(v P, strategy Strategy[P]) *roaring.Bitmap {
	q := queue.NewMin(len(ix.reps))
	for i, r := range ix.reps {
		q.Push(queue.Item{Index: i, Distance: strategy.Distance(v, r)})
	}

	set := roaring.New()
	for set.GetCardinality() < ix.want {
		it, ok := q.Pop()
		if !ok {
			break
		}
		set.Or(ix.members[it.Index])
	}
	return set
}

// nearest searches the candidate centroids in ascending position order.
// Ties go to the smaller position.
func (ix *representativeIndex[P]) nearest(v P, centroids []*Sample[P], strategy Strategy[P]) (int, float64) {
	best, bestDist := -1, 0.0

	it := ix.candidates(v, strategy).Iterator()
	for it.HasNext() {
		i := int(it.Next())
		d := strategy.Distance(v, centroids[i].Value)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}

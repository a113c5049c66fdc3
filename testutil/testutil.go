package testutil

import (
	"math"
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// UniformVectors generates random vectors with values in range [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformVectors(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	vectors := make([][]float64, num)

	for i := range num {
		vec := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range vec {
			vec[j] = r.rand.Float64()
		}
		vectors[i] = vec
	}

	return vectors
}

// GridCenters returns count centers on an axis-aligned grid in the first two
// dimensions, spacing apart. Remaining dimensions are zero.
func GridCenters(count, dimensions int, spacing float64) [][]float64 {
	side := int(math.Ceil(math.Sqrt(float64(count))))
	centers := make([][]float64, count)
	for i := range count {
		c := make([]float64, dimensions)
		c[0] = float64(i%side) * spacing
		if dimensions > 1 {
			c[1] = float64(i/side) * spacing
		}
		centers[i] = c
	}
	return centers
}

// GaussianBlobs generates perCenter points around each center with Gaussian
// noise of the given spread. Points are ordered center by center; labels[i]
// is the center index of point i.
func (r *RNG) GaussianBlobs(centers [][]float64, perCenter int, spread float64) (points [][]float64, labels []int) {
	r.mu.Lock()
	defer r.mu.Unlock()

	points = make([][]float64, 0, len(centers)*perCenter)
	labels = make([]int, 0, len(centers)*perCenter)

	for ci, c := range centers {
		for range perCenter {
			p := make([]float64, len(c))
			for j := range c {
				p[j] = c[j] + r.rand.NormFloat64()*spread
			}
			points = append(points, p)
			labels = append(labels, ci)
		}
	}

	return points, labels
}

// NearestIndex returns the index of the nearest of candidates to v by
// exhaustive search. Ties go to the smaller index.
func NearestIndex[P any](v P, candidates []P, dist func(a, b P) float64) int {
	best, bestDist := -1, 0.0
	for i, c := range candidates {
		d := dist(v, c)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// Agreement returns the fraction of positions where exact and approx agree.
func Agreement[T comparable](exact, approx []T) float64 {
	if len(exact) == 0 || len(approx) == 0 {
		if len(exact) == 0 && len(approx) == 0 {
			return 1.0
		}
		return 0.0
	}

	n := min(len(exact), len(approx))
	hits := 0
	for i := range n {
		if exact[i] == approx[i] {
			hits++
		}
	}

	return float64(hits) / float64(n)
}

package lattice

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"
)

// Searcher finds minimum-cost paths with a fixed pair of cost calculators.
// A Searcher is safe for concurrent use if its cost calculators are.
type Searcher[T, C any] struct {
	tc   TargetCoster[T, C]
	jc   JoinCoster[T, C]
	opts options
}

// NewSearcher creates a Searcher for the given cost calculators.
func NewSearcher[T, C any](tc TargetCoster[T, C], jc JoinCoster[T, C], opts ...Option) (*Searcher[T, C], error) {
	if tc == nil || jc == nil {
		return nil, ErrNilCoster
	}

	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return &Searcher[T, C]{tc: tc, jc: jc, opts: o}, nil
}

// Search is a convenience wrapper around NewSearcher and Searcher.Search.
func Search[T, C any](ctx context.Context, lat Lattice[T, C], tc TargetCoster[T, C], jc JoinCoster[T, C], opts ...Option) (Path[C], error) {
	s, err := NewSearcher(tc, jc, opts...)
	if err != nil {
		return nil, err
	}
	return s.Search(ctx, lat)
}

// column holds the finalized Viterbi state of one lattice column.
type column[C any] struct {
	candidates []C
	score      []float64 // best cumulative cost ending at each row
	back       []int     // predecessor row in the previous column
	targetCost []float64
	joinCost   []float64
}

func newColumn[C any](rows int) *column[C] {
	return &column[C]{
		candidates: make([]C, rows),
		score:      make([]float64, rows),
		back:       make([]int, rows),
		targetCost: make([]float64, rows),
		joinCost:   make([]float64, rows),
	}
}

// Search returns the minimum-cost path through lat, one node per column.
//
// The context is checked before every column; on cancellation ctx.Err() is
// returned and no partial path.
func (s *Searcher[T, C]) Search(ctx context.Context, lat Lattice[T, C]) (Path[C], error) {
	start := time.Now()

	rows, err := validate(lat)
	if err != nil {
		s.finish(len(rows), 0, start, err)
		return nil, err
	}

	n := len(rows)
	cols := make([]*column[C], n)
	var evaluations int64

	var prevTarget T
	for c := range n {
		if err := ctx.Err(); err != nil {
			s.finish(n, evaluations, start, err)
			return nil, err
		}

		target := lat.Target(c)
		col := newColumn[C](rows[c])
		for i := range rows[c] {
			col.candidates[i] = lat.Candidate(c, i)
		}

		if c == 0 {
			for i, cand := range col.candidates {
				tc := s.tc.TargetCost(target, cand)
				col.score[i] = tc
				col.targetCost[i] = tc
				col.back[i] = -1
			}
			evaluations += int64(rows[c])
		} else {
			if err := s.fill(ctx, cols[c-1], col, prevTarget, target); err != nil {
				s.finish(n, evaluations, start, err)
				return nil, err
			}
			evaluations += int64(rows[c]) * int64(rows[c-1]+1)
		}

		cols[c] = col
		prevTarget = target
	}

	path := backtrack(cols)
	s.finish(n, evaluations, start, nil)
	s.opts.logger.Debug("lattice search completed",
		"columns", n,
		"total_cost", path.TotalCost(),
		"evaluations", evaluations,
	)
	return path, nil
}

// validate checks the lattice shape before any cost is evaluated.
func validate[T, C any](lat Lattice[T, C]) ([]int, error) {
	n := lat.Columns()
	if n <= 0 {
		return nil, ErrEmptyLattice
	}
	rows := make([]int, n)
	for c := range n {
		r := lat.Rows(c)
		if r <= 0 {
			return nil, &EmptyColumnError{Column: c}
		}
		rows[c] = r
	}
	return rows, nil
}

// fill computes the scores of cur from the finalized prev column.
func (s *Searcher[T, C]) fill(ctx context.Context, prev, cur *column[C], prevTarget, target T) error {
	rows := len(cur.candidates)
	workers := min(s.opts.workers, rows)
	if workers <= 1 {
		s.fillRange(prev, cur, prevTarget, target, 0, rows)
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	per := (rows + workers - 1) / workers
	for lo := 0; lo < rows; lo += per {
		hi := min(lo+per, rows)
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			s.fillRange(prev, cur, prevTarget, target, lo, hi)
			return nil
		})
	}
	return g.Wait()
}

// fillRange computes rows [lo, hi) of cur. Each row is written by exactly
// one goroutine; prev is read-only.
func (s *Searcher[T, C]) fillRange(prev, cur *column[C], prevTarget, target T, lo, hi int) {
	for i := lo; i < hi; i++ {
		cand := cur.candidates[i]

		best, bestScore, bestJoin := -1, 0.0, 0.0
		for j, left := range prev.candidates {
			join := s.jc.JoinCost(prevTarget, target, left, cand)
			score := prev.score[j] + join
			if best < 0 || score < bestScore {
				best, bestScore, bestJoin = j, score, join
			}
		}

		tc := s.tc.TargetCost(target, cand)
		cur.score[i] = bestScore + tc
		cur.back[i] = best
		cur.joinCost[i] = bestJoin
		cur.targetCost[i] = tc
	}
}

// backtrack follows the predecessors from the cheapest row of the last
// column. Ties go to the smallest row.
func backtrack[C any](cols []*column[C]) Path[C] {
	last := cols[len(cols)-1]
	row := 0
	for i := 1; i < len(last.score); i++ {
		if last.score[i] < last.score[row] {
			row = i
		}
	}

	path := make(Path[C], len(cols))
	for c := len(cols) - 1; c >= 0; c-- {
		col := cols[c]
		path[c] = PathNode[C]{
			Candidate:  col.candidates[row],
			TargetCost: col.targetCost[row],
			JoinCost:   col.joinCost[row],
		}
		row = col.back[row]
	}
	return path
}

func (s *Searcher[T, C]) finish(columns int, evaluations int64, start time.Time, err error) {
	if err != nil {
		s.opts.logger.Warn("lattice search failed",
			"columns", columns,
			"error", err,
		)
	}
	s.opts.metrics.OnSearch(columns, evaluations, time.Since(start), err)
}

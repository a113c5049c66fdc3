// Package lattice implements minimum-cost path search through a lattice of
// candidates (Viterbi search), as used for unit selection.
//
// A lattice has one column per target position and one row per candidate
// available at that position. The engine is generic over the target type T
// and the candidate type C and never inspects either; all knowledge about
// them lives in the caller's cost calculators.
//
// # Algorithm
//
//  1. Column 0: best[0][i] = targetCost(t0, c0i). No join term.
//  2. For each column c > 0 and row i:
//     best[c][i] = min_j(best[c-1][j] + joinCost(t(c-1), tc, c(c-1)j, cci)) + targetCost(tc, cci)
//     where the minimum is taken with strict <, so the smallest j wins ties.
//  3. The path ends at the smallest best score of the last column (smallest
//     row wins ties) and is recovered through the recorded predecessors.
//
// # Evaluation Order
//
// Targets are fetched in ascending column order, each before the candidates
// of its column, and candidates in ascending row order. Cost calculators are
// called column by column and row by row: for row i of column c, join costs
// for j ascending, then the target cost. The engine performs no caching or
// pruning; wrap calculators (see package cost) to memoize.
//
// # Complexity
//
//	Time   = O(Σ rows(c) · rows(c-1)) cost evaluations
//	Memory = O(Σ rows(c))
//
// # Errors
//
//   - ErrEmptyLattice: the lattice has no columns.
//   - *EmptyColumnError: a column has no rows (matches ErrEmptyColumn).
//
// Both are detected before any cost calculator is called.
//
// # Usage
//
//	path, err := lattice.Search[Target, Unit](ctx, lat,
//	    lattice.TargetCostFunc[Target, Unit](targetCost),
//	    lattice.JoinCostFunc[Target, Unit](joinCost),
//	)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(path.TotalCost(), path.Candidates())
package lattice

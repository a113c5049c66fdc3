package testutil

// CostTable holds explicit target and join costs for a lattice whose
// candidates are identified by their row index.
type CostTable struct {
	// Target[c][r] is the target cost of row r in column c.
	Target [][]float64
	// Join[c][l][r] is the join cost from row l of column c-1 to row r of
	// column c. Join[0] is nil.
	Join [][][]float64
}

// CostTable generates random costs in [0, maxCost) for a lattice with the
// given row counts per column.
func (r *RNG) CostTable(rows []int, maxCost float64) *CostTable {
	r.mu.Lock()
	defer r.mu.Unlock()

	t := &CostTable{
		Target: make([][]float64, len(rows)),
		Join:   make([][][]float64, len(rows)),
	}
	for c, n := range rows {
		t.Target[c] = make([]float64, n)
		for i := range n {
			t.Target[c][i] = r.rand.Float64() * maxCost
		}
		if c == 0 {
			continue
		}
		t.Join[c] = make([][]float64, rows[c-1])
		for l := range rows[c-1] {
			t.Join[c][l] = make([]float64, n)
			for i := range n {
				t.Join[c][l][i] = r.rand.Float64() * maxCost
			}
		}
	}
	return t
}

// Rows returns the row count per column.
func (t *CostTable) Rows() []int {
	rows := make([]int, len(t.Target))
	for c := range t.Target {
		rows[c] = len(t.Target[c])
	}
	return rows
}

// PathCost returns the total cost of choosing rows[c] in every column c.
func (t *CostTable) PathCost(rows []int) float64 {
	var total float64
	for c, r := range rows {
		total += t.Target[c][r]
		if c > 0 {
			total += t.Join[c][rows[c-1]][r]
		}
	}
	return total
}

// BruteForce enumerates every path and returns the cheapest one together
// with its cost.
func (t *CostTable) BruteForce() ([]int, float64) {
	n := len(t.Target)
	if n == 0 {
		return nil, 0
	}

	var (
		best     []int
		bestCost float64
	)
	cur := make([]int, n)
	var walk func(c int)
	walk = func(c int) {
		if c == n {
			cost := t.PathCost(cur)
			if best == nil || cost < bestCost {
				best = append([]int(nil), cur...)
				bestCost = cost
			}
			return
		}
		for r := range t.Target[c] {
			cur[c] = r
			walk(c + 1)
		}
	}
	walk(0)

	return best, bestCost
}

package lattice

// Lattice exposes the targets and candidates of a search. Implementations
// are read-only for the duration of a search.
type Lattice[T, C any] interface {
	// Columns returns the number of target positions.
	Columns() int
	// Rows returns the number of candidates at column.
	Rows(column int) int
	// Target returns the target of column.
	Target(column int) T
	// Candidate returns the candidate at (column, row).
	Candidate(column, row int) C
}

// TargetCoster computes the cost of choosing candidate for target.
type TargetCoster[T, C any] interface {
	TargetCost(target T, candidate C) float64
}

// JoinCoster computes the cost of placing right directly after left.
type JoinCoster[T, C any] interface {
	JoinCost(leftTarget, rightTarget T, left, right C) float64
}

// TargetCostFunc adapts a function to the TargetCoster interface.
type TargetCostFunc[T, C any] func(target T, candidate C) float64

// TargetCost implements TargetCoster.
func (f TargetCostFunc[T, C]) TargetCost(target T, candidate C) float64 {
	return f(target, candidate)
}

// JoinCostFunc adapts a function to the JoinCoster interface.
type JoinCostFunc[T, C any] func(leftTarget, rightTarget T, left, right C) float64

// JoinCost implements JoinCoster.
func (f JoinCostFunc[T, C]) JoinCost(leftTarget, rightTarget T, left, right C) float64 {
	return f(leftTarget, rightTarget, left, right)
}

// PathNode is one chosen candidate together with the costs it incurred.
type PathNode[C any] struct {
	Candidate  C
	TargetCost float64 // Target cost at the node's column.
	JoinCost   float64 // Join cost against the previous node; 0 for the first node.
}

// Equal reports whether both nodes carry the same costs and equal
// candidates according to eq.
func (n PathNode[C]) Equal(other PathNode[C], eq func(a, b C) bool) bool {
	return n.TargetCost == other.TargetCost &&
		n.JoinCost == other.JoinCost &&
		eq(n.Candidate, other.Candidate)
}

// Path is the chosen candidate of every column, in column order.
type Path[C any] []PathNode[C]

// TotalCost returns the sum of all target and join costs along the path.
func (p Path[C]) TotalCost() float64 {
	var total float64
	for _, n := range p {
		total += n.TargetCost + n.JoinCost
	}
	return total
}

// Candidates returns the chosen candidates in column order.
func (p Path[C]) Candidates() []C {
	out := make([]C, len(p))
	for i, n := range p {
		out[i] = n.Candidate
	}
	return out
}

// Table is an in-memory Lattice.
type Table[T, C any] struct {
	targets    []T
	candidates [][]C
}

// NewTable builds a lattice from one target and one candidate list per
// column. The slices are referenced, not copied.
func NewTable[T, C any](targets []T, candidates [][]C) (*Table[T, C], error) {
	if len(targets) != len(candidates) {
		return nil, ErrShapeMismatch
	}
	return &Table[T, C]{targets: targets, candidates: candidates}, nil
}

// Columns implements Lattice.
func (t *Table[T, C]) Columns() int { return len(t.targets) }

// Rows implements Lattice.
func (t *Table[T, C]) Rows(column int) int { return len(t.candidates[column]) }

// Target implements Lattice.
func (t *Table[T, C]) Target(column int) T { return t.targets[column] }

// Candidate implements Lattice.
func (t *Table[T, C]) Candidate(column, row int) C { return t.candidates[column][row] }

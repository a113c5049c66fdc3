// Package cost provides feature-vector target and join cost calculators for
// unit selection with the lattice package.
//
// A candidate Unit carries the acoustic features of its first and last
// frame. The target cost compares a Target's features against the mean of
// those frames; the join cost compares the left unit's last frame against
// the right unit's first frame and is zero for units that were adjacent in
// the source recording.
//
// Join costs dominate a search (rows × rows per column), so CachedJoin can
// memoize them by unit identity in a sharded LRU.
//
// All calculators require feature vectors of equal dimension and panic
// otherwise, as gonum/floats does.
package cost

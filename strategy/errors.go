package strategy

import "errors"

// ErrNoComplement indicates that the matrix is too small to hold two
// disjoint permutations. It wraps types.ErrInfeasible.
var ErrNoComplement = errors.New("no complementary permutation for a single target")

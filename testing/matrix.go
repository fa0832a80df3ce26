package testing

import (
	"github.com/arloliu/volley/source"
	"github.com/arloliu/volley/types"
)

// ExampleMatrix returns the 3×3 reference matrix
//
//	5 4 2
//	4 5 4
//	2 4 5
//
// Its entries sum to 35. With k = 2 the exact (1,1) schedule is the diagonal
// (assigned power 15, total 27.5), the (2,2) greedy schedule is [[0 1] [1 0]]
// (total 15) and the two-wave score is 25.
func ExampleMatrix() types.PowerMatrix {
	return types.PowerMatrix{
		{5, 4, 2},
		{4, 5, 4},
		{2, 4, 5},
	}
}

// RandomMatrix returns an n×n matrix with entries in [0, maxValue].
//
// The same seed always produces the same matrix.
func RandomMatrix(seed uint64, n int, maxValue int64) types.PowerMatrix {
	return source.Generate(seed, n, maxValue)
}

// BruteForceMax enumerates every permutation of c and returns one with the
// maximal assigned power Σ c[σ[j]][j].
//
// Intended for n ≤ 8; the cost is n!.
func BruteForceMax(c types.PowerMatrix) (types.Permutation, int64) {
	return bruteForce(c, nil)
}

// BruteForceMaxAvoiding is BruteForceMax restricted to permutations that
// differ from avoid in every period. It returns a nil permutation when no
// such permutation exists.
func BruteForceMaxAvoiding(c types.PowerMatrix, avoid types.Permutation) (types.Permutation, int64) {
	return bruteForce(c, avoid)
}

func bruteForce(c types.PowerMatrix, avoid types.Permutation) (types.Permutation, int64) {
	n := c.Size()
	perm := make(types.Permutation, n)
	for i := range perm {
		perm[i] = i
	}

	var best types.Permutation
	var bestSum int64

	var rec func(k int)
	rec = func(k int) {
		if k == n {
			for j, i := range perm {
				if avoid != nil && avoid[j] == i {
					return
				}
			}
			if s := perm.Sum(c); best == nil || s > bestSum {
				best = append(types.Permutation(nil), perm...)
				bestSum = s
			}

			return
		}
		for i := k; i < n; i++ {
			perm[k], perm[i] = perm[i], perm[k]
			rec(k + 1)
			perm[k], perm[i] = perm[i], perm[k]
		}
	}
	rec(0)

	return best, bestSum
}

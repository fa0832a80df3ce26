// Package memo provides a concurrent, bounded cache of optimizer results.
package memo

import (
	"slices"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/arloliu/volley/types"
)

// Cache stores optimizer results keyed by input fingerprint.
//
// Each entry keeps a copy of the matrix and mode it was computed for, and Get
// only reports a hit when both match, so a fingerprint collision is a miss.
// The degradation coefficient is not stored; a cache must not be shared
// between optimizers with different coefficients.
//
// Stored and returned results are deep copies, so callers may freely modify
// what they get back. When the cache is full an arbitrary entry is evicted
// to make room; the bound is approximate under concurrent writers.
type Cache struct {
	entries    *xsync.Map[uint64, entry]
	maxEntries int
}

type entry struct {
	matrix types.PowerMatrix
	mode   types.Mode
	result types.Result
}

// New creates a cache holding at most maxEntries results.
//
// A non-positive maxEntries yields an unbounded cache.
func New(maxEntries int) *Cache {
	return &Cache{
		entries:    xsync.NewMap[uint64, entry](),
		maxEntries: maxEntries,
	}
}

// Get returns the result stored under key for matrix m and mode.
//
// An entry under key that was computed for different inputs is a miss.
func (c *Cache) Get(key uint64, m types.PowerMatrix, mode types.Mode) (types.Result, bool) {
	e, ok := c.entries.Load(key)
	if !ok || e.mode != mode || !sameMatrix(e.matrix, m) {
		return types.Result{}, false
	}

	return clone(e.result), true
}

// Put stores res for matrix m and mode under key, evicting an entry first if
// the cache is full. A colliding entry under the same key is replaced.
func (c *Cache) Put(key uint64, m types.PowerMatrix, mode types.Mode, res types.Result) {
	if _, exists := c.entries.Load(key); !exists && c.maxEntries > 0 {
		for c.entries.Size() >= c.maxEntries {
			evicted := false
			c.entries.Range(func(k uint64, _ entry) bool {
				c.entries.Delete(k)
				evicted = true

				return false
			})
			if !evicted {
				break
			}
		}
	}

	c.entries.Store(key, entry{matrix: m.Clone(), mode: mode, result: clone(res)})
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// Purge removes every cached result.
func (c *Cache) Purge() {
	c.entries.Clear()
}

func sameMatrix(a, b types.PowerMatrix) bool {
	return slices.EqualFunc(a, b, func(x, y []int64) bool {
		return slices.Equal(x, y)
	})
}

func clone(res types.Result) types.Result {
	res.Schedule = res.Schedule.Clone()
	return res
}

// File: types.go
// Role: Resolver's functional options. A Resolver owns the per-query
// memoization cache and singleflight dedup group that spec.md §4.G and §5
// require ("a single query's caches must not be touched concurrently" by
// anyone but that query's own goroutines).
package condition

import "github.com/Temi-Tory/ipm/memo"

// Option configures a Resolver.
type Option func(*options)

type options struct {
	parallel bool
}

func defaultOptions() options {
	return options{}
}

// WithParallelStates enables the optional fan-out of spec.md §5 ("across
// the 2^k states of one conditioner ... embarrassingly parallel; combine by
// summation") using an errgroup.Group, one goroutine per joint state.
func WithParallelStates() Option {
	return func(o *options) { o.parallel = true }
}

// CacheCapacity is the default bound for a Resolver's DiamondCacheKey cache
// when a caller does not construct one itself; eviction is LRU per
// spec.md §4.G ("correctness does not depend on retention").
const CacheCapacity = 4096

// NewCache returns a Resolver-ready memoization cache bounded to
// CacheCapacity entries.
func NewCache() *memo.Cache[DiamondCacheKey, DiamondCacheEntry] {
	return memo.New[DiamondCacheKey, DiamondCacheEntry](CacheCapacity)
}

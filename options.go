package hinglish

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Option configures engines and transliterators.
type Option func(*options)

type options struct {
	cacheSize int
	workers   int
}

// WithCacheSize enables an LRU cache of phonetic fallback results with room
// for size words. Cached results depend on the phonetic tables only, so
// adding words to an engine never invalidates them. size <= 0 disables the
// cache, which is the default.
func WithCacheSize(size int) Option {
	return func(o *options) {
		o.cacheSize = size
	}
}

// WithWorkers limits the number of goroutines used by batch conversion.
// n <= 0 selects the number of CPUs.
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

func collectOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// newFallbackCache returns nil if caching is disabled.
func newFallbackCache(size int) *lru.Cache[string, string] {
	if size <= 0 {
		return nil
	}
	cache, err := lru.New[string, string](size)
	assert(err == nil, "cannot create fallback cache")
	return cache
}

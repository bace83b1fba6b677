package cache

import "go.uber.org/zap"

type options struct {
	logger  *zap.SugaredLogger
	onEvict func(key, value int)
}

// Option configures an LRUCache at construction.
type Option func(*options)

// WithLogger routes cache debug logs to logger. A nil logger is ignored.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithEvictCallback registers fn to run after a capacity eviction. It is
// called at the end of the Set that caused the eviction, once the new entry
// is in place, so fn may call back into an LRUCache, Set included.
// Explicit Delete and Purge do not call it. For SyncCache see its doc.
func WithEvictCallback(fn func(key, value int)) Option {
	return func(o *options) {
		o.onEvict = fn
	}
}

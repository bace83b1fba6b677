package cache

// cache/cache.go

import (
	"fmt"
	"io"

	"github.com/evanjt06/lrucache/internal"
	"go.uber.org/zap"
)

// ErrInvalidCapacity is returned by New for a capacity below one.
var ErrInvalidCapacity = internal.ErrInvalidCapacity

// LRUCache holds at most Cap() integer key/value pairs and evicts the
// least recently used pair first. Get, Set and Delete run in O(1).
//
// LRUCache is not safe for concurrent use; see SyncCache.
type LRUCache struct {
	capacity int
	index    map[int]int // key -> slot in order
	order    recencyList
	logger   *zap.SugaredLogger
	onEvict  func(key, value int)
}

// New returns an empty LRUCache holding at most capacity entries. A
// capacity below one is rejected with ErrInvalidCapacity.
func New(capacity int, opts ...Option) (*LRUCache, error) {
	if err := internal.ValidateCapacity(capacity); err != nil {
		return nil, err
	}

	o := options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(&o)
	}

	return &LRUCache{
		capacity: capacity,
		index:    make(map[int]int, capacity),
		order:    newRecencyList(capacity),
		logger:   o.logger,
		onEvict:  o.onEvict,
	}, nil
}

// Close flushes buffered logs. Flushing is best effort: syncing a terminal
// or pipe fails on most platforms, so the error is dropped.
func (c *LRUCache) Close() error {
	_ = c.logger.Sync()
	return nil
}

// Get returns the value stored for key and marks it most recently used.
// The bool is false on a miss.
func (c *LRUCache) Get(key int) (int, bool) {
	slot, ok := c.index[key]
	if !ok {
		return 0, false
	}

	c.order.moveToFront(slot)
	c.logger.Debugw("Moved entry to front of LRU", "key", key)

	return c.order.nodes[slot].value, true
}

// Peek is Get without the promotion.
func (c *LRUCache) Peek(key int) (int, bool) {
	slot, ok := c.index[key]
	if !ok {
		return 0, false
	}
	return c.order.nodes[slot].value, true
}

// Set stores value under key and marks it most recently used. Inserting
// into a full cache evicts the least recently used entry first.
func (c *LRUCache) Set(key, value int) {
	if slot, ok := c.index[key]; ok {
		c.order.nodes[slot].value = value
		c.order.moveToFront(slot)

		c.logger.Debugw("Updated entry", "key", key)
		return
	}

	var (
		evicted  node
		didEvict bool
	)
	if len(c.index) == c.capacity {
		evicted, didEvict = c.evict()
	}

	slot := c.order.alloc(key, value)
	c.order.pushFront(slot)
	c.index[key] = slot

	c.logger.Debugw("Inserted entry at front of LRU", "key", key)

	// the cache is consistent again before user code runs
	if didEvict && c.onEvict != nil {
		c.onEvict(evicted.key, evicted.value)
	}
}

// Delete removes key and reports whether it was present.
func (c *LRUCache) Delete(key int) bool {
	slot, ok := c.index[key]
	if !ok {
		return false
	}

	c.order.unlink(slot)
	delete(c.index, key)
	c.order.release(slot)

	c.logger.Debugw("Deleted entry from cache", "key", key)
	return true
}

// evict drops the back of the ordering together with its index entry and
// returns what was dropped.
func (c *LRUCache) evict() (node, bool) {
	slot := c.order.removeBack()
	if slot == nilSlot {
		return node{}, false
	}

	evicted := c.order.nodes[slot]
	delete(c.index, evicted.key)
	c.order.release(slot)

	c.logger.Debugw("Deleted entry due to capacity", "key", evicted.key)
	return evicted, true
}

// Purge drops every entry. Capacity and options are kept.
func (c *LRUCache) Purge() {
	c.index = make(map[int]int, c.capacity)
	c.order = newRecencyList(c.capacity)
	c.logger.Debugw("Purged cache")
}

// Len returns the number of live entries.
func (c *LRUCache) Len() int {
	return len(c.index)
}

// Cap returns the capacity fixed at construction.
func (c *LRUCache) Cap() int {
	return c.capacity
}

// Keys returns the live keys from most to least recently used.
func (c *LRUCache) Keys() []int {
	out := make([]int, 0, c.order.size)
	c.order.walk(func(slot int) bool {
		out = append(out, c.order.nodes[slot].key)
		return true
	})
	return out
}

// Print writes one line per entry, most recently used first.
func (c *LRUCache) Print(w io.Writer) error {
	var err error
	c.order.walk(func(slot int) bool {
		n := c.order.nodes[slot]
		_, err = fmt.Fprintf(w, "Key: %d, Value: %d\n", n.key, n.value)
		return err == nil
	})
	return err
}

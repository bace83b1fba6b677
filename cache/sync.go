package cache

import (
	"io"
	"sync"
)

// SyncCache guards an LRUCache with a single mutex so the index and the
// ordering are never observed half updated. Every method, Get included,
// takes the exclusive lock because a hit reorders the list.
//
// The evict callback runs with the lock held and must not call back into
// the cache.
type SyncCache struct {
	mu sync.Mutex
	c  *LRUCache
}

// NewSync is New wrapped in a SyncCache.
func NewSync(capacity int, opts ...Option) (*SyncCache, error) {
	c, err := New(capacity, opts...)
	if err != nil {
		return nil, err
	}
	return &SyncCache{c: c}, nil
}

func (s *SyncCache) Get(key int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Get(key)
}

func (s *SyncCache) Peek(key int) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Peek(key)
}

func (s *SyncCache) Set(key, value int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Set(key, value)
}

func (s *SyncCache) Delete(key int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Delete(key)
}

func (s *SyncCache) Purge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.c.Purge()
}

func (s *SyncCache) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Len()
}

func (s *SyncCache) Cap() int {
	return s.c.Cap()
}

func (s *SyncCache) Keys() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Keys()
}

func (s *SyncCache) Print(w io.Writer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Print(w)
}

func (s *SyncCache) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.c.Close()
}

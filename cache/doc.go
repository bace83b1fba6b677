// Package cache implements a fixed-capacity integer key/value cache with
// least-recently-used eviction.
//
// An index maps each key to a slot in an arena-backed doubly linked list
// ordered from most to least recently used, so Get, Set and eviction are
// all O(1).
package cache

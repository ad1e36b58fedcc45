// Package metrics provides lightweight, lock-free counters used to
// instrument the trie's node store. It mirrors the standalone metrics
// primitives used elsewhere in the eth2030 codebase rather than pulling in a
// full metrics client, since the instrumented surface here is narrow
// (store hits/misses/puts).
package metrics

import "sync/atomic"

// Counter is a monotonically increasing counter safe for concurrent use.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a new, zero-valued Counter.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() { c.value.Add(1) }

// Value returns the current counter value.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// StoreStats collects the counters exposed by a node Store.
type StoreStats struct {
	Hits   *Counter
	Misses *Counter
	Puts   *Counter
	Errors *Counter
}

// NewStoreStats creates a fresh, independent set of store counters.
func NewStoreStats() *StoreStats {
	return &StoreStats{
		Hits:   NewCounter("trie_store_hits"),
		Misses: NewCounter("trie_store_misses"),
		Puts:   NewCounter("trie_store_puts"),
		Errors: NewCounter("trie_store_errors"),
	}
}

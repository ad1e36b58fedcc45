package trie

import (
	"sync"

	"github.com/ethereum/go-ethereum/common"
)

// MemStore is an in-memory Backend backed by a plain map, suitable for tests
// and ephemeral tries. It is safe for concurrent use by multiple goroutines,
// though the trie package itself does not coordinate concurrent writers to
// the same logical trie.
type MemStore struct {
	mu   sync.RWMutex
	data map[common.Hash][]byte
}

// NewMemStore returns an empty MemStore.
func NewMemStore() *MemStore {
	return &MemStore{data: make(map[common.Hash][]byte)}
}

// Get implements Backend.
func (m *MemStore) Get(key common.Hash) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

// Put implements Backend.
func (m *MemStore) Put(key common.Hash, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.data[key]; ok {
		return nil
	}
	v := make([]byte, len(value))
	copy(v, value)
	m.data[key] = v
	return nil
}

// Len reports the number of distinct node encodings held by the store.
func (m *MemStore) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}

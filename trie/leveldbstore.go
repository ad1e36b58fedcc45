package trie

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/filter"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// LevelDBStore is a Backend backed by a goleveldb database on disk. Node
// encodings are content-addressed already, so no extra key prefixing or
// change-set batching is needed: every write is an idempotent put keyed by
// the encoding's own hash.
type LevelDBStore struct {
	db *leveldb.DB
}

// OpenLevelDBStore opens (creating if absent) a goleveldb database at path
// for use as a trie Backend. A bloom filter is enabled on the default table
// since node lookups are point reads keyed by hash, which bloom filters
// answer well for state database's negative-lookup volume.
func OpenLevelDBStore(path string) (*LevelDBStore, error) {
	opts := &opt.Options{
		Filter: filter.NewBloomFilter(10),
	}
	db, err := leveldb.OpenFile(path, opts)
	if err != nil {
		return nil, err
	}
	return &LevelDBStore{db: db}, nil
}

// Get implements Backend.
func (s *LevelDBStore) Get(key common.Hash) ([]byte, error) {
	v, err := s.db.Get(key[:], nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return v, nil
}

// Put implements Backend.
func (s *LevelDBStore) Put(key common.Hash, value []byte) error {
	return s.db.Put(key[:], value, nil)
}

// Close releases the underlying database handle.
func (s *LevelDBStore) Close() error {
	return s.db.Close()
}

package trie

import (
	"errors"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"

	"github.com/eth2030/mpt/internal/log"
	"github.com/eth2030/mpt/internal/metrics"
)

// ErrNotFound is returned by a Backend's Get when no value is stored under
// the given key. Store translates it into a MissingNodeError.
var ErrNotFound = errors.New("trie: key not found in backend")

// Backend is the contract a content-addressed byte-KV store must satisfy.
// Puts are idempotent: writing the same key/value pair twice, or writing a
// key that already holds identical content, must succeed silently — the
// core relies on this since node writes are content-addressed and callers
// may retry after a partial failure.
type Backend interface {
	Get(key common.Hash) ([]byte, error)
	Put(key common.Hash, value []byte) error
}

// Store mediates between logical nodes and their RLP-encoded, content
// addressed form in a Backend. It implements the inlined-vs-hashed rule
// from §4.4: encodings shorter than 32 bytes are returned to the caller
// as inline NodeRefs and never touch the backend at all.
type Store struct {
	backend Backend
	log     *log.Logger
	stats   *metrics.StoreStats
}

// NewStore wraps a Backend in a Store.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		log:     log.Default().Module("trie/store"),
		stats:   metrics.NewStoreStats(),
	}
}

// Stats exposes the store's hit/miss/put counters for callers that want to
// wire them into their own metrics registry.
func (s *Store) Stats() *metrics.StoreStats { return s.stats }

// StoreNode encodes n and returns a reference to it: inline if the encoding
// is under 32 bytes, or a hash reference after writing the encoding to the
// backend. Empty (nil) nodes always yield the empty NodeRef without
// touching the backend.
func (s *Store) StoreNode(n Node) (NodeRef, error) {
	if n == nil {
		return NodeRef{}, nil
	}
	enc, err := encodeNode(n)
	if err != nil {
		return NodeRef{}, err
	}
	if len(enc) < 32 {
		return inlineRef(enc), nil
	}
	hash := crypto.Keccak256Hash(enc)
	if err := s.backend.Put(hash, enc); err != nil {
		s.stats.Errors.Inc()
		return NodeRef{}, &BackendError{Op: "put", Err: err}
	}
	s.stats.Puts.Inc()
	return hashRef(hash), nil
}

// StoreRoot forces hashing and persistence of a root node regardless of its
// encoded size, per §6.2: the root identifier is always the Keccak-256 of
// the root's encoding, and every reachable root must be resolvable from the
// backend by that hash. An empty trie's root is the well-known empty-trie
// hash and is never written.
func (s *Store) StoreRoot(n Node) (common.Hash, error) {
	if n == nil {
		return EmptyRootHash, nil
	}
	enc, err := encodeNode(n)
	if err != nil {
		return common.Hash{}, err
	}
	hash := crypto.Keccak256Hash(enc)
	if err := s.backend.Put(hash, enc); err != nil {
		s.stats.Errors.Inc()
		return common.Hash{}, &BackendError{Op: "put", Err: err}
	}
	s.stats.Puts.Inc()
	return hash, nil
}

// Load resolves a NodeRef to its decoded Node: an inline ref is decoded
// directly, a hash ref is fetched from the backend first. A nil, nil result
// represents Empty.
func (s *Store) Load(ref NodeRef) (Node, error) {
	if ref.IsEmpty() {
		return nil, nil
	}
	if !ref.Hashed {
		return decodeNode(ref.RLP)
	}
	data, err := s.backend.Get(ref.Hash)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			s.stats.Misses.Inc()
			s.log.Warn("missing trie node", "hash", ref.Hash.Hex())
			return nil, &MissingNodeError{Hash: ref.Hash}
		}
		s.stats.Errors.Inc()
		return nil, &BackendError{Op: "get", Err: err}
	}
	s.stats.Hits.Inc()
	n, err := decodeNode(data)
	if err != nil {
		return nil, err
	}
	return n, nil
}

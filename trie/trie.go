package trie

import (
	"github.com/ethereum/go-ethereum/common"
)

// EmptyRootHash is the root identifier of a trie with no entries: the
// well-known Keccak-256 hash of the RLP encoding of the empty string, per
// §6.2. It is returned by Root() for an empty trie without ever writing
// anything to the backend.
var EmptyRootHash = common.HexToHash("56e81f171bcc55a6ff8345e692c0f86e5b48e01b996cadc001622fb5e363b421")

// Trie is the public, content-addressed hexary Merkle Patricia Trie. A Trie
// value is immutable: Put and Delete return a new Trie sharing unmodified
// structure with the receiver, leaving the receiver itself usable.
type Trie struct {
	store *Store
	root  Node
}

// New returns an empty trie writing through backend.
func New(backend Backend) *Trie {
	return &Trie{store: NewStore(backend)}
}

// NewWithRoot resolves root against backend and returns a trie positioned at
// that existing root. Passing EmptyRootHash is equivalent to New.
func NewWithRoot(backend Backend, root common.Hash) (*Trie, error) {
	store := NewStore(backend)
	if root == EmptyRootHash || root == (common.Hash{}) {
		return &Trie{store: store}, nil
	}
	n, err := store.Load(hashRef(root))
	if err != nil {
		return nil, err
	}
	return &Trie{store: store, root: n}, nil
}

// Root returns the trie's current root identifier: EmptyRootHash for an
// empty trie, or the Keccak-256 of the root node's RLP encoding. Computing
// it persists the root's encoding to the backend (per §6.2, a root is always
// hashed and stored regardless of the usual 32-byte inlining threshold).
func (t *Trie) Root() (common.Hash, error) {
	return t.store.StoreRoot(t.root)
}

// Get looks up key (raw bytes, converted internally to a nibble path) and
// returns its value, or ok=false if the key is absent.
func (t *Trie) Get(key []byte) (value []byte, ok bool, err error) {
	path := ToNibbles(key)
	n := t.root
	for {
		switch cur := n.(type) {
		case nil:
			return nil, false, nil
		case *LeafNode:
			if bytesEqual(cur.Path, path) {
				return cur.Value, true, nil
			}
			return nil, false, nil
		case *ExtensionNode:
			suffix, matches := StripPrefix(path, cur.Path)
			if !matches {
				return nil, false, nil
			}
			path = suffix
			child, err := t.store.Load(cur.Child)
			if err != nil {
				return nil, false, err
			}
			n = child
		case *BranchNode:
			if len(path) == 0 {
				if cur.Value == nil {
					return nil, false, nil
				}
				return cur.Value, true, nil
			}
			child, err := t.store.Load(cur.Children[path[0]])
			if err != nil {
				return nil, false, err
			}
			path = path[1:]
			n = child
		default:
			return nil, false, ErrCorruptNode
		}
	}
}

// Put returns a new Trie with key mapped to value. Both key and value must
// be non-empty; this implementation rejects empty values with
// ErrInvalidInput rather than treating Put("k", "") as a delete (see
// DESIGN.md for the rationale).
func (t *Trie) Put(key, value []byte) (*Trie, error) {
	if len(key) == 0 || len(value) == 0 {
		return nil, ErrInvalidInput
	}
	b := NewBuilder(t.store)
	newRoot, err := b.Put(t.root, ToNibbles(key), value)
	if err != nil {
		return nil, err
	}
	return &Trie{store: t.store, root: newRoot}, nil
}

// Delete returns a new Trie with key removed. Deleting an absent key is a
// no-op that returns an equivalent Trie.
func (t *Trie) Delete(key []byte) (*Trie, error) {
	if len(key) == 0 {
		return nil, ErrInvalidInput
	}
	d := NewDestroyer(t.store)
	newRoot, err := d.Remove(t.root, ToNibbles(key))
	if err != nil {
		return nil, err
	}
	return &Trie{store: t.store, root: newRoot}, nil
}

// Package trie implements a persistent, content-addressed hexary Merkle
// Patricia Trie: an authenticated radix-16 key-value map whose structural
// hashes commit to its entire contents, matching the node model and
// canonical RLP encoding used by Ethereum-family state stores.
package trie

import "github.com/ethereum/go-ethereum/common"

// Node is the common type of the four logical node variants: Empty (the Go
// nil value of this interface), LeafNode, ExtensionNode and BranchNode.
type Node interface {
	isNode()
}

// LeafNode terminates a path with a value. Path is a nibble sequence (no
// terminator nibble baked in — that is added only at encode time) and Value
// is the opaque, non-empty payload stored at this key.
type LeafNode struct {
	Path  []byte
	Value []byte
}

// ExtensionNode compresses a run of nibbles shared by every key below it.
// In normal form Child always resolves to a BranchNode; Path is non-empty.
type ExtensionNode struct {
	Path  []byte
	Child NodeRef
}

// BranchNode has 16 child slots, one per nibble, plus an optional terminal
// value for keys that end exactly at this node.
type BranchNode struct {
	Children [16]NodeRef
	Value    []byte
}

func (*LeafNode) isNode()      {}
func (*ExtensionNode) isNode() {}
func (*BranchNode) isNode()    {}

// clone returns a shallow copy of the branch: the Children array is copied
// by value (it holds NodeRef structs, not pointers) so callers can freely
// mutate individual slots of the copy without disturbing the original.
func (n *BranchNode) clone() *BranchNode {
	nn := *n
	return &nn
}

// NodeRef is a reference to a child node as it appears inside a parent's
// encoding: either the child's own RLP term, embedded verbatim because it is
// shorter than 32 bytes ("inlined"), or the 32-byte Keccak-256 hash of the
// child's RLP encoding ("hashed"), resolvable through a Store. The zero
// value is the empty reference (no child present).
type NodeRef struct {
	Hashed bool
	Hash   common.Hash
	RLP    []byte
}

// IsEmpty reports whether the reference points at no child at all — the
// state of an unused branch slot or an absent extension child.
func (r NodeRef) IsEmpty() bool {
	return !r.Hashed && len(r.RLP) == 0
}

func hashRef(h common.Hash) NodeRef {
	return NodeRef{Hashed: true, Hash: h}
}

func inlineRef(rlp []byte) NodeRef {
	return NodeRef{RLP: rlp}
}

package trie

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rlp"
)

// encodeNode canonically RLP-encodes a node per §4.3: Empty is the RLP
// string "", a Leaf/Extension is a 2-element list, a Branch is a
// 17-element list. Equal logical content always produces identical bytes,
// which is what makes the resulting hash a commitment to the content.
func encodeNode(n Node) ([]byte, error) {
	switch n := n.(type) {
	case nil:
		return []byte{0x80}, nil
	case *LeafNode:
		return encodeLeaf(n)
	case *ExtensionNode:
		return encodeExtension(n)
	case *BranchNode:
		return encodeBranch(n)
	default:
		return nil, fmt.Errorf("%w: unencodable node type %T", ErrCorruptNode, n)
	}
}

func encodeLeaf(n *LeafNode) ([]byte, error) {
	pathWithTerm := make([]byte, len(n.Path)+1)
	copy(pathWithTerm, n.Path)
	pathWithTerm[len(n.Path)] = terminatorNibble

	keyEnc, err := rlp.EncodeToBytes(hexToCompact(pathWithTerm))
	if err != nil {
		return nil, err
	}
	valEnc, err := rlp.EncodeToBytes(n.Value)
	if err != nil {
		return nil, err
	}
	return wrapList(append(keyEnc, valEnc...)), nil
}

func encodeExtension(n *ExtensionNode) ([]byte, error) {
	keyEnc, err := rlp.EncodeToBytes(hexToCompact(n.Path))
	if err != nil {
		return nil, err
	}
	childEnc, err := encodeRef(n.Child)
	if err != nil {
		return nil, err
	}
	return wrapList(append(keyEnc, childEnc...)), nil
}

func encodeBranch(n *BranchNode) ([]byte, error) {
	var payload []byte
	for i := 0; i < 16; i++ {
		enc, err := encodeRef(n.Children[i])
		if err != nil {
			return nil, err
		}
		payload = append(payload, enc...)
	}
	valEnc, err := rlp.EncodeToBytes(n.Value)
	if err != nil {
		return nil, err
	}
	return wrapList(append(payload, valEnc...)), nil
}

// encodeRef produces the RLP term for a NodeRef as it appears embedded in
// its parent: an empty string for an absent child, the raw hash bytes for a
// hashed child, or the child's own already-RLP-encoded bytes verbatim for an
// inlined one.
func encodeRef(ref NodeRef) ([]byte, error) {
	switch {
	case ref.IsEmpty():
		return []byte{0x80}, nil
	case ref.Hashed:
		return rlp.EncodeToBytes(ref.Hash[:])
	default:
		return ref.RLP, nil
	}
}

// wrapList prefixes an already-concatenated sequence of RLP terms with an
// RLP list header, per the standard RLP length-prefix rules.
func wrapList(payload []byte) []byte {
	n := len(payload)
	if n <= 55 {
		buf := make([]byte, 1+n)
		buf[0] = 0xc0 + byte(n)
		copy(buf[1:], payload)
		return buf
	}
	lenBytes := bigEndianMinimal(uint64(n))
	buf := make([]byte, 1+len(lenBytes)+n)
	buf[0] = 0xf7 + byte(len(lenBytes))
	copy(buf[1:], lenBytes)
	copy(buf[1+len(lenBytes):], payload)
	return buf
}

func bigEndianMinimal(u uint64) []byte {
	var tmp [8]byte
	for i := 7; i >= 0; i-- {
		tmp[i] = byte(u)
		u >>= 8
		if u == 0 {
			return tmp[i:]
		}
	}
	return tmp[:]
}

// decodeNode is the inverse of encodeNode: it classifies the top-level RLP
// term by shape (empty string, 2-element list, 17-element list) and
// reconstructs the corresponding node.
func decodeNode(data []byte) (Node, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrCorruptNode)
	}
	if len(data) == 1 && data[0] == 0x80 {
		return nil, nil
	}
	elems, err := decodeRLPList(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptNode, err)
	}
	switch len(elems) {
	case 2:
		return decodeShort(elems)
	case 17:
		return decodeFull(elems)
	default:
		return nil, fmt.Errorf("%w: expected 2 or 17 list elements, got %d", ErrCorruptNode, len(elems))
	}
}

func decodeShort(elems [][]byte) (Node, error) {
	path := compactToHex(elems[0])
	if hasTerm(path) {
		value := make([]byte, len(elems[1]))
		copy(value, elems[1])
		return &LeafNode{Path: path[:len(path)-1], Value: value}, nil
	}
	child, err := decodeRef(elems[1])
	if err != nil {
		return nil, err
	}
	return &ExtensionNode{Path: path, Child: child}, nil
}

func decodeFull(elems [][]byte) (Node, error) {
	n := &BranchNode{}
	for i := 0; i < 16; i++ {
		ref, err := decodeRef(elems[i])
		if err != nil {
			return nil, err
		}
		n.Children[i] = ref
	}
	if len(elems[16]) > 0 {
		n.Value = append([]byte(nil), elems[16]...)
	}
	return n, nil
}

// decodeRef interprets a raw element from a parent's list as a NodeRef: a
// 32-byte string is a hash reference, an empty string is no child, and
// anything else is that child's own encoding, kept inline.
func decodeRef(data []byte) (NodeRef, error) {
	switch len(data) {
	case 0:
		return NodeRef{}, nil
	case 32:
		return hashRef(common.BytesToHash(data)), nil
	default:
		return inlineRef(append([]byte(nil), data...)), nil
	}
}

package trie

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
)

// ErrCorruptNode is wrapped by any error arising from malformed RLP or
// hex-prefix input encountered while decoding a node.
var ErrCorruptNode = errors.New("trie: corrupt node encoding")

// ErrInvalidInput marks a caller-level misuse of the public API: an empty
// key, or (by this implementation's documented choice, see DESIGN.md) an
// empty value passed to Put.
var ErrInvalidInput = errors.New("trie: invalid input")

// MissingNodeError is returned when a NodeRef's hash cannot be resolved
// against the backend. It is fatal to the operation in progress; the core
// never retries.
type MissingNodeError struct {
	Hash common.Hash
}

func (e *MissingNodeError) Error() string {
	return fmt.Sprintf("trie: missing node %s", e.Hash.Hex())
}

// BackendError wraps a failure returned by the pluggable byte-KV backend.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("trie: backend %s failed: %v", e.Op, e.Err)
}

func (e *BackendError) Unwrap() error { return e.Err }

package trie

import "bytes"

// ToNibbles expands a byte string into its nibble sequence, high nibble of
// each byte first. Used to convert API-level keys into the internal path
// representation walked by the Builder and Destroyer.
func ToNibbles(key []byte) []byte {
	nibbles := make([]byte, len(key)*2)
	for i, b := range key {
		nibbles[2*i] = b >> 4
		nibbles[2*i+1] = b & 0x0f
	}
	return nibbles
}

// FromNibbles packs an even-length nibble sequence back into bytes. It
// returns false if the sequence has odd length, which cannot be represented.
func FromNibbles(nibbles []byte) ([]byte, bool) {
	if len(nibbles)%2 != 0 {
		return nil, false
	}
	out := make([]byte, len(nibbles)/2)
	packNibbles(nibbles, out)
	return out, true
}

// CommonPrefix returns the longest shared head of two nibble sequences.
func CommonPrefix(a, b []byte) []byte {
	return a[:prefixLen(a, b)]
}

// StripPrefix returns the suffix of seq following prefix, and true, iff
// prefix is actually a prefix of seq.
func StripPrefix(seq, prefix []byte) ([]byte, bool) {
	if len(prefix) > len(seq) || !bytes.Equal(seq[:len(prefix)], prefix) {
		return nil, false
	}
	return seq[len(prefix):], true
}

// concatNibbles returns a fresh slice holding a followed by b, never
// aliasing either input — node paths are shared across immutable nodes, so
// building a new path must never mutate one in place.
func concatNibbles(a, b []byte) []byte {
	out := make([]byte, len(a)+len(b))
	copy(out, a)
	copy(out[len(a):], b)
	return out
}

// prependNibble returns a fresh slice holding n followed by rest.
func prependNibble(n byte, rest []byte) []byte {
	out := make([]byte, len(rest)+1)
	out[0] = n
	copy(out[1:], rest)
	return out
}
